package xmodem

import "errors"

// Sentinel errors returned by Send and Receive. Integrity mismatches and
// short reads are never surfaced this way — they are always recovered
// locally via NAK and retransmission (spec §7).
var (
	// ErrHandshakeFailed means the peer did not respond with an expected
	// handshake byte within the retry/timeout budget.
	ErrHandshakeFailed = errors.New("xmodem: handshake failed")

	// ErrRetryExhausted means a single block failed MaxRetries consecutive
	// send attempts.
	ErrRetryExhausted = errors.New("xmodem: retry limit exceeded")

	// ErrEOTNotAcknowledged means the final EOT was never ACKed.
	ErrEOTNotAcknowledged = errors.New("xmodem: EOT not acknowledged")

	// ErrOutOfSequence means the receiver saw a block number that was
	// neither the expected block nor the prior (duplicate) block.
	ErrOutOfSequence = errors.New("xmodem: block received out of sequence")

	// ErrPeerCanceled means the peer sent CAN during an active transfer.
	ErrPeerCanceled = errors.New("xmodem: transfer canceled by peer")

	// ErrTransport marks an underlying I/O failure from the Transport.
	// The cause's text is appended to the message; the cause itself is
	// not wrapped, so errors.Unwrap yields ErrTransport.
	ErrTransport = errors.New("xmodem: transport error")

	// ErrSource wraps a failure reading from the file source.
	ErrSource = errors.New("xmodem: source error")

	// ErrSink wraps a failure writing to the file sink.
	ErrSink = errors.New("xmodem: sink error")
)
