package xmodem

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"
)

func TestReceiverHandshakeExhausted(t *testing.T) {
	st := &scriptedTransport{} // peer never replies to NAK/'C'
	cfg := Config{MaxRetries: 3, HandshakeAttemptTimeout: 5 * time.Millisecond}
	r := NewReceiver(cfg, nil, nil)

	var out bytes.Buffer
	_, err := r.Receive(context.Background(), st, &out)
	if !errors.Is(err, ErrHandshakeFailed) {
		t.Fatalf("err = %v, want ErrHandshakeFailed", err)
	}
	if len(st.writes) != 3 {
		t.Fatalf("handshake byte written %d times, want MaxRetries=3", len(st.writes))
	}
}

func TestReceiverAdvertisesCRCWhenConfigured(t *testing.T) {
	block := padBlock([]byte("hi"))
	frame := EncodeFrame(1, block, ModeCRC)
	st := &scriptedTransport{inbound: [][]byte{frame, {EOT}}}
	cfg := Config{RequestedMode: ModeCRC, BlockTimeout: 20 * time.Millisecond, HandshakeAttemptTimeout: 20 * time.Millisecond}
	r := NewReceiver(cfg, nil, nil)

	var out bytes.Buffer
	n, err := r.Receive(context.Background(), st, &out)
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}
	if n != 2 || out.String() != "hi" {
		t.Fatalf("got (%d, %q), want (2, \"hi\")", n, out.String())
	}
	if st.writes[0][0] != CRQ {
		t.Fatalf("first handshake write = 0x%02x, want 'C'", st.writes[0][0])
	}
}

func TestReceiverRejectsCorruptFrameThenAcceptsRetransmit(t *testing.T) {
	block := padBlock([]byte("ok"))
	goodFrame := EncodeFrame(1, block, ModeChecksum)
	badFrame := append([]byte(nil), goodFrame...)
	badFrame[len(badFrame)-1] ^= 0xFF

	st := &scriptedTransport{inbound: [][]byte{badFrame, goodFrame, {EOT}}}
	cfg := Config{BlockTimeout: 20 * time.Millisecond, HandshakeAttemptTimeout: 20 * time.Millisecond}
	r := NewReceiver(cfg, nil, nil)

	var out bytes.Buffer
	n, err := r.Receive(context.Background(), st, &out)
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}
	if n != 2 || out.String() != "ok" {
		t.Fatalf("got (%d, %q), want (2, \"ok\")", n, out.String())
	}
	// writes: NAK (handshake), NAK (bad frame), ACK (good frame), ACK (EOT)
	if len(st.writes) != 4 {
		t.Fatalf("wrote %d responses, want 4", len(st.writes))
	}
	if st.writes[1][0] != NAK {
		t.Fatalf("response to corrupt frame = 0x%02x, want NAK", st.writes[1][0])
	}
}

func TestReceiverOutOfSequenceCancels(t *testing.T) {
	block := padBlock([]byte("zz"))
	frame := EncodeFrame(9, block, ModeChecksum) // expected block is 1
	st := &scriptedTransport{inbound: [][]byte{frame}}
	cfg := Config{BlockTimeout: 20 * time.Millisecond, HandshakeAttemptTimeout: 20 * time.Millisecond}
	r := NewReceiver(cfg, nil, nil)

	var out bytes.Buffer
	_, err := r.Receive(context.Background(), st, &out)
	if !errors.Is(err, ErrOutOfSequence) {
		t.Fatalf("err = %v, want ErrOutOfSequence", err)
	}
	last := st.writes[len(st.writes)-1]
	if len(last) != 2 || last[0] != CAN || last[1] != CAN {
		t.Fatalf("last write = %v, want [CAN CAN]", last)
	}
}

func TestReceiverDuplicateBlockReACKsWithoutAppending(t *testing.T) {
	block1 := padBlock([]byte("A"))
	block2 := padBlock([]byte("B"))
	frame1 := EncodeFrame(1, block1, ModeChecksum)
	dupFrame1 := EncodeFrame(1, block1, ModeChecksum) // sender's retransmit after a lost ACK
	frame2 := EncodeFrame(2, block2, ModeChecksum)

	st := &scriptedTransport{inbound: [][]byte{frame1, dupFrame1, frame2, {EOT}}}
	cfg := Config{BlockTimeout: 20 * time.Millisecond, HandshakeAttemptTimeout: 20 * time.Millisecond}
	r := NewReceiver(cfg, nil, nil)

	var out bytes.Buffer
	n, err := r.Receive(context.Background(), st, &out)
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}
	// block1 is not the final block, so its SUB padding stays in the
	// output; only the padding after "B" is trailing and gets stripped.
	want := string(block1) + "B"
	if n != int64(len(want)) || out.String() != want {
		t.Fatalf("got (%d, %q), want (%d, %q) — duplicate must not be appended", n, out.String(), len(want), want)
	}
}
