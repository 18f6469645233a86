package progress

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestConsoleProgressWritesCarriageReturn(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.Progress(3, 384)

	got := buf.String()
	if !strings.Contains(got, "block 3") || !strings.Contains(got, "384 bytes") {
		t.Errorf("Progress output = %q, missing block/byte count", got)
	}
	if !strings.HasSuffix(got, "\r") {
		t.Errorf("Progress output = %q, want trailing \\r", got)
	}
}

func TestConsoleRetryMentionsReason(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.Retry(4, 2, "checksum mismatch")

	got := buf.String()
	if !strings.Contains(got, "retry 2") || !strings.Contains(got, "checksum mismatch") {
		t.Errorf("Retry output = %q, missing attempt/reason", got)
	}
}

func TestConsoleDoneReportsSuccess(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.Done(1024, nil)

	if !strings.Contains(buf.String(), "transfer complete: 1024 bytes") {
		t.Errorf("Done output = %q, want success message", buf.String())
	}
}

func TestConsoleDoneReportsFailure(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.Done(0, errors.New("boom"))

	got := buf.String()
	if !strings.Contains(got, "transfer failed") || !strings.Contains(got, "boom") {
		t.Errorf("Done output = %q, want failure message", got)
	}
}
