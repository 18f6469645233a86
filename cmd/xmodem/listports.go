package main

import (
	"fmt"

	"github.com/freqsync/goxmodem/serialtransport"
)

// runListPorts is a thin CLI subcommand with no involvement from the
// protocol package.
func runListPorts(args []string) error {
	names, err := serialtransport.ListPorts()
	if err != nil {
		return err
	}
	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}
