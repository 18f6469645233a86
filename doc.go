// Package xmodem implements the XMODEM file-transfer protocol: a
// byte-oriented, stop-and-wait framing protocol for carrying an opaque
// file payload over a full-duplex asynchronous serial link.
//
// The package covers the protocol core only — the two peer state
// machines (Sender and Receiver), their shared framing, block-numbering,
// and integrity algorithms (8-bit checksum and CRC-CCITT/XMODEM). The
// serial transport, file I/O, CLI front-end, and progress reporting are
// supplied by the caller through the Transport interface and the
// progress package; see cmd/xmodem for a complete driver.
//
// Wire format
//
// Every data frame is:
//
//	SOH | block number N | 255-N | 128 bytes of payload | integrity trailer
//
// The integrity trailer is one byte (additive checksum) or two bytes,
// high byte first (CRC-CCITT/XMODEM, polynomial 0x1021, seed 0),
// depending on the mode negotiated during the handshake. The final block
// of a file is padded with 0x1A (SUB) to a full 128 bytes; the receiver
// strips trailing 0x1A bytes from the reassembled payload, which makes a
// file whose genuine last byte is 0x1A indistinguishable from a file that
// needed no padding. This is a known limitation of the wire format, not a
// bug — see Receive.
package xmodem
