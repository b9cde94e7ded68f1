// internal/poller/types.go
package poller

import (
	"time"

	"github.com/tamzrod/esolar-ble/internal/registers"
)

// PollResult is a snapshot produced by one poll cycle.
type PollResult struct {
	DeviceID string
	At       time.Time

	// Info is the cached device identity; Data is the fresh realtime
	// read. Both are nil when the cycle failed.
	Info *registers.DeviceInfo
	Data *registers.RealtimeData

	Err error // non-nil means the poll cycle failed
}
