package progress

import (
	"fmt"
	"io"
)

// Console prints one terminal status line per event, per spec §7's
// "User-visible behavior" requirement. Block-by-block progress overwrites
// the same line with \r, matching the reference implementation's
// fmt.Printf("...\r") convention; retries and the final outcome each get
// their own line.
type Console struct {
	Out io.Writer
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{Out: w}
}

func (c *Console) Progress(block byte, bytesTransferred int64) {
	fmt.Fprintf(c.Out, "block %d, %d bytes transferred\r", block, bytesTransferred)
}

func (c *Console) Retry(block byte, attempt int, reason string) {
	fmt.Fprintf(c.Out, "\nblock %d: retry %d (%s)\n", block, attempt, reason)
}

func (c *Console) Done(bytesTransferred int64, err error) {
	if err != nil {
		fmt.Fprintf(c.Out, "\ntransfer failed after %d bytes: %v\n", bytesTransferred, err)
		return
	}
	fmt.Fprintf(c.Out, "\ntransfer complete: %d bytes\n", bytesTransferred)
}
