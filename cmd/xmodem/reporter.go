package main

import "github.com/freqsync/goxmodem"

// fanoutReporter forwards every event to each attached xmodem.Reporter.
// The console reporter is always present; a RedisPublisher is appended
// only when --progress-redis-addr was given.
type fanoutReporter struct {
	reporters []xmodem.Reporter
}

func (f *fanoutReporter) add(r xmodem.Reporter) {
	f.reporters = append(f.reporters, r)
}

func (f *fanoutReporter) Progress(block byte, bytesTransferred int64) {
	for _, r := range f.reporters {
		r.Progress(block, bytesTransferred)
	}
}

func (f *fanoutReporter) Retry(block byte, attempt int, reason string) {
	for _, r := range f.reporters {
		r.Retry(block, attempt, reason)
	}
}

func (f *fanoutReporter) Done(bytesTransferred int64, err error) {
	for _, r := range f.reporters {
		r.Done(bytesTransferred, err)
	}
}
