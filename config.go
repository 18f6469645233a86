package xmodem

import "time"

// Config controls session behavior. The zero Config is valid;
// defaults() fills in unset fields: a struct of optional knobs plus one
// method that applies zero-value fallbacks, rather than a constructor
// with a long parameter list.
type Config struct {
	// RequestedMode is the sender's upper bound on integrity mode: if the
	// receiver asks for checksum mode, the sender honors it regardless of
	// RequestedMode (spec §4.3). The receiver uses RequestedMode directly
	// as the mode it advertises during its handshake.
	RequestedMode Mode

	// MaxRetries bounds consecutive attempts for a single block (sender)
	// or handshake byte (receiver) before the session aborts. Default 10.
	MaxRetries int

	// HandshakeTimeout bounds the sender's wait for the receiver's first
	// handshake byte. Default 10s.
	HandshakeTimeout time.Duration

	// BlockTimeout bounds each read while a block or response is in
	// flight (sender waiting for ACK/NAK, receiver waiting for a field or
	// lead byte). Default 1s; spec requires "≥1s" here.
	BlockTimeout time.Duration

	// HandshakeAttemptTimeout bounds each of the receiver's per-attempt
	// reads while emitting its handshake byte. Default 1s.
	HandshakeAttemptTimeout time.Duration
}

func (c *Config) defaults() {
	if c.MaxRetries <= 0 {
		c.MaxRetries = MaxRetries
	}
	if c.HandshakeTimeout <= 0 {
		c.HandshakeTimeout = HandshakeTimeout * time.Second
	}
	if c.BlockTimeout <= 0 {
		c.BlockTimeout = time.Second
	}
	if c.HandshakeAttemptTimeout <= 0 {
		c.HandshakeAttemptTimeout = time.Second
	}
}
