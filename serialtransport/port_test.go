package serialtransport

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.bug.st/serial"
)

// fakeSerialPort is a minimal go.bug.st/serial.Port double: it records the
// timeout passed to SetReadTimeout and returns (0, nil) from Read whenever
// no data is queued, matching the real
// library's documented timeout behavior that Read relies on.
type fakeSerialPort struct {
	lastTimeout time.Duration
	queued      []byte
	writes      [][]byte
	closed      bool
}

func (f *fakeSerialPort) SetMode(*serial.Mode) error { return nil }
func (f *fakeSerialPort) GetModemStatusBits() (*serial.ModemStatusBits, error) {
	return &serial.ModemStatusBits{}, nil
}
func (f *fakeSerialPort) Read(p []byte) (int, error) {
	if len(f.queued) == 0 {
		return 0, nil // timeout elapsed with nothing to read
	}
	n := copy(p, f.queued)
	f.queued = f.queued[n:]
	return n, nil
}
func (f *fakeSerialPort) Write(p []byte) (int, error) {
	f.writes = append(f.writes, append([]byte(nil), p...))
	return len(p), nil
}
func (f *fakeSerialPort) ResetInputBuffer() error  { return nil }
func (f *fakeSerialPort) ResetOutputBuffer() error { return nil }
func (f *fakeSerialPort) SetDTR(bool) error        { return nil }
func (f *fakeSerialPort) SetRTS(bool) error        { return nil }
func (f *fakeSerialPort) Close() error             { f.closed = true; return nil }
func (f *fakeSerialPort) Break(time.Duration) error {
	return nil
}
func (f *fakeSerialPort) Drain() error { return nil }
func (f *fakeSerialPort) SetReadTimeout(t time.Duration) error {
	f.lastTimeout = t
	return nil
}

func TestPortReadAppliesTimeoutThenReturnsZeroOnElapse(t *testing.T) {
	fake := &fakeSerialPort{}
	p := &Port{port: fake}

	buf := make([]byte, 16)
	n, err := p.Read(buf, 250*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "want 0 on an elapsed timeout with nothing queued")
	assert.Equal(t, 250*time.Millisecond, fake.lastTimeout)
}

func TestPortReadReturnsQueuedData(t *testing.T) {
	fake := &fakeSerialPort{queued: []byte("hello")}
	p := &Port{port: fake}

	buf := make([]byte, 16)
	n, err := p.Read(buf, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(buf[:n]))
}

func TestPortWritePassesThroughAllBytes(t *testing.T) {
	fake := &fakeSerialPort{}
	p := &Port{port: fake}

	err := p.Write([]byte{0x01, 0x02, 0x03})
	require.NoError(t, err)
	require.Len(t, fake.writes, 1)
	assert.Len(t, fake.writes[0], 3)
}

func TestPortCloseClosesUnderlyingPort(t *testing.T) {
	fake := &fakeSerialPort{}
	p := &Port{port: fake}

	require.NoError(t, p.Close())
	assert.True(t, fake.closed)
}

func TestPortReadPropagatesSetReadTimeoutError(t *testing.T) {
	fake := &erroringTimeoutPort{}
	p := &Port{port: fake}

	_, err := p.Read(make([]byte, 4), time.Second)
	assert.Error(t, err)
}

type erroringTimeoutPort struct{ fakeSerialPort }

func (e *erroringTimeoutPort) SetReadTimeout(time.Duration) error {
	return errors.New("unsupported on this platform")
}
