// Package serialtransport adapts a go.bug.st/serial port to the
// xmodem.Transport interface: 8 data bits, no parity, 1 stop bit, no
// software or hardware flow control. Baud rate is the only
// caller-configurable line parameter.
package serialtransport

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// Port wraps an open go.bug.st/serial.Port as an xmodem.Transport.
type Port struct {
	port serial.Port
}

// Open opens name at baud with the line parameters XMODEM requires.
func Open(name string, baud int) (*Port, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	sp, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("serialtransport: open %s: %w", name, err)
	}
	return &Port{port: sp}, nil
}

// Close releases the underlying serial port.
func (p *Port) Close() error {
	return p.port.Close()
}

// Write writes all of data to the port. go.bug.st/serial ports are
// unbuffered at the OS level, so a successful Write has already reached
// the line.
func (p *Port) Write(data []byte) error {
	_, err := p.port.Write(data)
	return err
}

// Read sets the port's read timeout and performs a single read into p.
// A timeout with no data available returns (0, nil), matching
// xmodem.Transport's contract — go.bug.st/serial returns (0, nil) in
// that case natively once SetReadTimeout has been applied.
func (p *Port) Read(buf []byte, timeout time.Duration) (int, error) {
	if err := p.port.SetReadTimeout(timeout); err != nil {
		return 0, fmt.Errorf("serialtransport: set read timeout: %w", err)
	}
	return p.port.Read(buf)
}

// ListPorts enumerates available serial ports.
func ListPorts() ([]string, error) {
	names, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("serialtransport: list ports: %w", err)
	}
	return names, nil
}
