package main

import (
	"context"
	"fmt"
	"os"

	"github.com/freqsync/goxmodem"
	"github.com/freqsync/goxmodem/progress"
	"github.com/freqsync/goxmodem/serialtransport"
)

func runReceive(args []string) error {
	f, err := parseTransferFlags("receive", args)
	if err != nil {
		return err
	}
	cfg, err := f.config()
	if err != nil {
		return err
	}

	sink, err := os.Create(f.file)
	if err != nil {
		return fmt.Errorf("%w: %v", xmodem.ErrSink, err)
	}
	defer sink.Close()

	port, err := serialtransport.Open(f.port, f.baudrate)
	if err != nil {
		return fmt.Errorf("%w: %v", xmodem.ErrTransport, err)
	}
	defer port.Close()
	stopWatching := closeOnInterrupt(port)
	defer stopWatching()

	reporter := &fanoutReporter{}
	reporter.add(progress.NewConsole(os.Stdout))
	closeReporter, err := newReporter(f, reporter)
	if err != nil {
		return err
	}
	defer closeReporter()

	logger := newLogger(f.verbose)
	receiver := xmodem.NewReceiver(cfg, logger, reporter)
	_, err = receiver.Receive(context.Background(), port, sink)
	return err
}
