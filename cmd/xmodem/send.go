package main

import (
	"context"
	"fmt"
	"os"

	"github.com/freqsync/goxmodem"
	"github.com/freqsync/goxmodem/progress"
	"github.com/freqsync/goxmodem/serialtransport"
)

func runSend(args []string) error {
	f, err := parseTransferFlags("send", args)
	if err != nil {
		return err
	}
	cfg, err := f.config()
	if err != nil {
		return err
	}

	source, err := os.Open(f.file)
	if err != nil {
		return fmt.Errorf("%w: %v", xmodem.ErrSource, err)
	}
	defer source.Close()

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
	sender := xmodem.NewSender(cfg, logger, reporter)
	_, err = sender.Send(context.Background(), port, source)
	return err
}
