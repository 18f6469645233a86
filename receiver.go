package xmodem

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

type receiverPhase int

const (
	rxHandshaking receiverPhase = iota
	rxReceiving
	rxDone
	rxAborted
)

// Receiver drives the receiving half of an XMODEM session. The zero
// value is not usable; construct one with NewReceiver.
type Receiver struct {
	cfg      Config
	logger   *slog.Logger
	reporter Reporter
}

// NewReceiver builds a Receiver. A nil logger defaults to slog.Default();
// a nil reporter is valid and simply receives no callbacks. cfg.
// RequestedMode selects the mode the receiver advertises during its
// handshake (NAK for checksum, 'C' for CRC).
func NewReceiver(cfg Config, logger *slog.Logger, reporter Reporter) *Receiver {
	cfg.defaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Receiver{cfg: cfg, logger: logger, reporter: reporter}
}

// Receive drives the handshake and per-frame loop over t, writing the
// reassembled, de-padded payload to sink once EOT is observed and ACKed.
func (r *Receiver) Receive(ctx context.Context, t Transport, sink io.Writer) (int64, error) {
	n, err := r.run(ctx, t, sink)
	reportDone(r.reporter, n, err)
	return n, err
}

func (r *Receiver) run(ctx context.Context, t Transport, sink io.Writer) (int64, error) {
	phase := rxHandshaking
	mode := r.cfg.RequestedMode
	handshakeByte := NAK
	if mode == ModeCRC {
		handshakeByte = CRQ
	}

	var (
		expected = byte(1)
		payload  []byte
		soh      bool // true when an SOH has already been consumed for the next iteration
	)

	for {
		if err := ctx.Err(); err != nil {
			return int64(len(payload)), err
		}

		switch phase {
		case rxHandshaking:
			ok, err := r.handshake(t, handshakeByte)
			if err != nil {
				return 0, err
			}
			if !ok {
				return 0, ErrHandshakeFailed
			}
			phase = rxReceiving
			soh = true // SOH that ended the handshake has been consumed

		case rxReceiving:
			if !soh {
				b, ok, err := readByte(t, r.cfg.BlockTimeout)
				if err != nil {
					return int64(len(payload)), err
				}
				if !ok {
					continue // no lead byte yet; keep waiting
				}
				switch b {
				case EOT:
					_ = t.Write([]byte{ACK})
					phase = rxDone
					continue
				case SOH:
					// fall through to decode below
				case CAN:
					if confirmCancel(t, r.cfg.BlockTimeout) {
						return int64(len(payload)), ErrPeerCanceled
					}
					continue
				default:
					continue // unrecognized lead byte; keep waiting
				}
			}
			soh = false

			frame, ferr := DecodeFrame(t, mode, r.cfg.BlockTimeout)
			if ferr != nil {
				reportRetry(r.reporter, expected, 0, describeFrameError(ferr))
				r.logger.Debug("frame rejected, sending NAK", "err", ferr)
				_ = t.Write([]byte{NAK})
				continue
			}

			switch {
			case frame.Block == expected:
				payload = append(payload, frame.Payload...)
				_ = t.Write([]byte{ACK})
				reportProgress(r.reporter, frame.Block, int64(len(payload)))
				expected = expected + 1
			case frame.Block == expected-1:
				// Duplicate of the prior ACKed frame: the sender missed
				// our ACK. Re-ACK without appending (idempotent).
				_ = t.Write([]byte{ACK})
			default:
				r.logger.Warn("out-of-sequence block", "expected", expected, "got", frame.Block)
				_ = t.Write([]byte{CAN, CAN})
				return int64(len(payload)), ErrOutOfSequence
			}

		case rxDone:
			trimmed := trimPadding(payload)
			if _, err := sink.Write(trimmed); err != nil {
				return int64(len(trimmed)), fmt.Errorf("%w: %v", ErrSink, err)
			}
			return int64(len(trimmed)), nil
		}
	}
}

// handshake emits b (NAK or 'C') up to cfg.MaxRetries times, waiting
// cfg.HandshakeAttemptTimeout for a reply each time. Returns true once SOH
// is observed (entry to Receiving with expected_block = 1 and SOH already
// consumed), false if the attempt budget is exhausted.
func (r *Receiver) handshake(t Transport, b byte) (bool, error) {
	for attempt := 0; attempt < r.cfg.MaxRetries; attempt++ {
		if err := t.Write([]byte{b}); err != nil {
			return false, fmt.Errorf("%w: %v", ErrTransport, err)
		}
		resp, ok, err := readByte(t, r.cfg.HandshakeAttemptTimeout)
		if err != nil {
			return false, err
		}
		if !ok {
			continue
		}
		switch resp {
		case SOH:
			return true, nil
		case CAN:
			if confirmCancel(t, r.cfg.HandshakeAttemptTimeout) {
				return false, ErrPeerCanceled
			}
		}
		// Any other byte: re-emit the handshake byte on the next attempt.
	}
	return false, nil
}

// trimPadding strips trailing SUB (0x1A) bytes — the padding ambiguity
// documented in spec §3 and §9: a genuine final payload byte of 0x1A is
// indistinguishable from padding and will be stripped too.
func trimPadding(payload []byte) []byte {
	end := len(payload)
	for end > 0 && payload[end-1] == SUB {
		end--
	}
	return payload[:end]
}

func describeFrameError(err error) string {
	fe, ok := err.(*FrameError)
	if !ok {
		return err.Error()
	}
	return fe.Kind.String()
}
