package xmodem

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

type senderPhase int

const (
	txAwaitingHandshake senderPhase = iota
	txSending
	txFinalizing
	txDone
	txAborted
)

// Sender drives the sending half of an XMODEM session. The zero value is
// not usable; construct one with NewSender.
type Sender struct {
	cfg      Config
	logger   *slog.Logger
	reporter Reporter
}

// NewSender builds a Sender. A nil logger defaults to slog.Default(); a
// nil reporter is valid and simply receives no callbacks.
func NewSender(cfg Config, logger *slog.Logger, reporter Reporter) *Sender {
	cfg.defaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Sender{cfg: cfg, logger: logger, reporter: reporter}
}

// Send reads source to completion, frames it per spec §4.3, and drives
// the handshake/data/finalize state machine over t. source must be
// finite — Send reads it fully before the handshake wait so it can
// compute the final block's padding up front. Returns the number of
// original (unpadded) file bytes sent.
func (s *Sender) Send(ctx context.Context, t Transport, source io.Reader) (int64, error) {
	data, err := io.ReadAll(source)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrSource, err)
		reportDone(s.reporter, 0, err)
		return 0, err
	}

	blocks := splitBlocks(data)
	n, err := s.run(ctx, t, blocks, int64(len(data)))
	reportDone(s.reporter, n, err)
	return n, err
}

func (s *Sender) run(ctx context.Context, t Transport, blocks [][]byte, fileLen int64) (int64, error) {
	phase := txAwaitingHandshake
	var (
		mode      Mode
		blockIdx  int
		blockNum  = byte(1)
		retries   int
		bytesSent int64
	)

	for {
		if err := ctx.Err(); err != nil {
			return bytesSent, err
		}

		switch phase {
		case txAwaitingHandshake:
			b, ok, err := readByte(t, s.cfg.HandshakeTimeout)
			if err != nil {
				return bytesSent, err
			}
			if !ok {
				return bytesSent, ErrHandshakeFailed
			}
			switch b {
			case CRQ:
				if s.cfg.RequestedMode == ModeCRC {
					mode = ModeCRC
				} else {
					mode = ModeChecksum
				}
				phase = txSending
			case NAK:
				mode = ModeChecksum
				phase = txSending
			default:
				return bytesSent, ErrHandshakeFailed
			}
			s.logger.Debug("handshake complete", "mode", mode)

		case txSending:
			block := blocks[blockIdx]
			frame := EncodeFrame(blockNum, block, mode)
			if err := t.Write(frame); err != nil {
				return bytesSent, fmt.Errorf("%w: %v", ErrTransport, err)
			}

			resp, ok, err := readByte(t, s.cfg.BlockTimeout)
			if err != nil {
				return bytesSent, err
			}
			switch {
			case ok && resp == ACK:
				retries = 0
				bytesSent = blockBytesSent(blockIdx, blocks, fileLen)
				reportProgress(s.reporter, blockNum, bytesSent)
				blockIdx++
				blockNum++
				if blockIdx >= len(blocks) {
					phase = txFinalizing
				}
			case ok && resp == CAN:
				if confirmCancel(t, s.cfg.BlockTimeout) {
					return bytesSent, ErrPeerCanceled
				}
				retries++
				reportRetry(s.reporter, blockNum, retries, "spurious CAN")
				if retries >= s.cfg.MaxRetries {
					s.sendCancel(t)
					return bytesSent, ErrRetryExhausted
				}
			default:
				reason := "timeout"
				if ok {
					reason = fmt.Sprintf("unexpected response 0x%02x", resp)
				}
				retries++
				reportRetry(s.reporter, blockNum, retries, reason)
				s.logger.Debug("retrying block", "block", blockNum, "retry", retries, "reason", reason)
				if retries >= s.cfg.MaxRetries {
					s.sendCancel(t)
					return bytesSent, ErrRetryExhausted
				}
				// stay in txSending; retransmit the same frame
			}

		case txFinalizing:
			if err := t.Write([]byte{EOT}); err != nil {
				return bytesSent, fmt.Errorf("%w: %v", ErrTransport, err)
			}
			resp, ok, err := readByte(t, s.cfg.BlockTimeout)
			if err != nil {
				return bytesSent, err
			}
			if ok && resp == ACK {
				phase = txDone
				continue
			}
			retries++
			reportRetry(s.reporter, 0, retries, "EOT not acknowledged")
			if retries >= s.cfg.MaxRetries {
				return bytesSent, ErrEOTNotAcknowledged
			}
			// stay in txFinalizing; retransmit EOT

		case txDone:
			return fileLen, nil

		case txAborted:
			return bytesSent, ErrPeerCanceled
		}
	}
}

// blockBytesSent returns the count of original file bytes covered by
// blocks[0..idx] inclusive, capped at fileLen (the last block may be
// padding-only).
func blockBytesSent(idx int, blocks [][]byte, fileLen int64) int64 {
	sent := int64(idx+1) * BlockSize
	if sent > fileLen {
		sent = fileLen
	}
	return sent
}

// sendCancel emits two CANs, the abort sequence required when the sender
// itself gives up on a block (spec §9: "MUST emit two CANs when
// cancelling").
func (s *Sender) sendCancel(t Transport) {
	_ = t.Write([]byte{CAN, CAN})
}
