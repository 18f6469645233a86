package main

import (
	"errors"

	"github.com/freqsync/goxmodem"
)

// Exit codes let scripts driving this binary branch on the failure
// category without parsing stderr.
const (
	exitOK              = 0
	exitGeneric         = 1
	exitHandshakeFailed = 2
	exitRetryExhausted  = 3
	exitEOTNotAcked     = 4
	exitOutOfSequence   = 5
	exitPeerCanceled    = 6
	exitTransportError  = 7
)

func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, xmodem.ErrHandshakeFailed):
		return exitHandshakeFailed
	case errors.Is(err, xmodem.ErrRetryExhausted):
		return exitRetryExhausted
	case errors.Is(err, xmodem.ErrEOTNotAcknowledged):
		return exitEOTNotAcked
	case errors.Is(err, xmodem.ErrOutOfSequence):
		return exitOutOfSequence
	case errors.Is(err, xmodem.ErrPeerCanceled):
		return exitPeerCanceled
	case errors.Is(err, xmodem.ErrTransport):
		return exitTransportError
	default:
		return exitGeneric
	}
}
