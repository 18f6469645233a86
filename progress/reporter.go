// Package progress provides concrete implementations of xmodem.Reporter:
// a terminal status line and an optional Redis-backed publisher for
// remote monitoring.
package progress

// Event names published by RedisPublisher, kept as constants so
// downstream consumers of RedisPublisher's pub/sub messages can match on
// them without depending on this package.
const (
	EventProgress = "progress"
	EventRetry    = "retry"
	EventDone     = "done"
)
