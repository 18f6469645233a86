// Command xmodem is the CLI driver for the xmodem package: it binds the
// protocol core to a real serial port, a file on disk, a console status
// line, and (optionally) a Redis progress feed.
package main

import (
	"fmt"
	"log/slog"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(exitGeneric)
	}

	var err error
	switch os.Args[1] {
	case "send":
		err = runSend(os.Args[2:])
	case "receive":
		err = runReceive(os.Args[2:])
	case "list-ports":
		err = runListPorts(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "xmodem: unknown subcommand %q\n", os.Args[1])
		usage()
		os.Exit(exitGeneric)
	}

	if err != nil {
		slog.Error("xmodem session failed", "err", err)
		os.Exit(exitCodeFor(err))
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  xmodem send    --port <name> --file <path> [--baudrate 9600] [--checksum crc|basic]
  xmodem receive --port <name> --file <path> [--baudrate 9600] [--checksum crc|basic]
  xmodem list-ports`)
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
