package main

import (
	"fmt"
	"time"

	"github.com/freqsync/goxmodem"
	"github.com/freqsync/goxmodem/progress"
	"github.com/spf13/pflag"
)

// transferFlags holds the flag set common to `send` and `receive`.
type transferFlags struct {
	port             string
	file             string
	baudrate         int
	checksum         string
	timeoutHandshake time.Duration
	timeoutBlock     time.Duration
	redisAddr        string
	redisPass        string
	redisDB          int
	verbose          bool
}

func parseTransferFlags(name string, args []string) (*transferFlags, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	f := &transferFlags{}
	fs.StringVar(&f.port, "port", "", "serial port name (e.g. /dev/ttyUSB0)")
	fs.StringVar(&f.file, "file", "", "file to send, or filename to save received data")
	fs.IntVar(&f.baudrate, "baudrate", 9600, "baud rate")
	fs.StringVar(&f.checksum, "checksum", "crc", "integrity mode: basic or crc")
	fs.DurationVar(&f.timeoutHandshake, "timeout-handshake", 10*time.Second, "handshake wait timeout")
	fs.DurationVar(&f.timeoutBlock, "timeout-block", time.Second, "per-block response timeout")
	fs.StringVar(&f.redisAddr, "progress-redis-addr", "", "optional Redis address for live progress (host:port)")
	fs.StringVar(&f.redisPass, "progress-redis-pass", "", "Redis password, if any")
	fs.IntVar(&f.redisDB, "progress-redis-db", 0, "Redis database index")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if f.port == "" {
		return nil, fmt.Errorf("xmodem: --port is required")
	}
	if f.file == "" {
		return nil, fmt.Errorf("xmodem: --file is required")
	}
	return f, nil
}

func (f *transferFlags) mode() (xmodem.Mode, error) {
	switch f.checksum {
	case "crc":
		return xmodem.ModeCRC, nil
	case "basic":
		return xmodem.ModeChecksum, nil
	default:
		return 0, fmt.Errorf("xmodem: --checksum must be basic or crc, got %q", f.checksum)
	}
}

func (f *transferFlags) config() (xmodem.Config, error) {
	mode, err := f.mode()
	if err != nil {
		return xmodem.Config{}, err
	}
	return xmodem.Config{
		RequestedMode:    mode,
		HandshakeTimeout: f.timeoutHandshake,
		BlockTimeout:     f.timeoutBlock,
	}, nil
}

// newReporter adds a RedisPublisher to out when --progress-redis-addr is
// set; the console reporter is added by the caller. The returned closer
// must be called on every exit path.
func newReporter(f *transferFlags, out *fanoutReporter) (closer func(), err error) {
	if f.redisAddr == "" {
		return func() {}, nil
	}
	rp, err := progress.NewRedisPublisher(f.redisAddr, f.redisPass, f.redisDB,
		"xmodem:transfer", "xmodem:events", f.file)
	if err != nil {
		return nil, err
	}
	out.add(rp)
	return func() { _ = rp.Close() }, nil
}
