package xmodem

// Reporter is the thin observer interface through which Send and Receive
// surface progress and terminal status. The core depends only on this
// interface, never on a concrete sink. A nil Reporter is valid; every
// call site guards against it.
//
// See package progress for concrete implementations (a terminal status
// line, and an optional Redis-backed publisher for remote monitoring).
type Reporter interface {
	// Progress reports bytes transferred so far after block n was sent
	// or accepted.
	Progress(block byte, bytesTransferred int64)

	// Retry reports a retransmission or re-solicitation attempt.
	Retry(block byte, attempt int, reason string)

	// Done reports the terminal outcome of the session. err is nil on
	// success.
	Done(bytesTransferred int64, err error)
}

func reportProgress(r Reporter, block byte, n int64) {
	if r != nil {
		r.Progress(block, n)
	}
}

func reportRetry(r Reporter, block byte, attempt int, reason string) {
	if r != nil {
		r.Retry(block, attempt, reason)
	}
}

func reportDone(r Reporter, n int64, err error) {
	if r != nil {
		r.Done(n, err)
	}
}
