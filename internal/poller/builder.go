// internal/poller/builder.go
package poller

import (
	"time"

	"github.com/tamzrod/esolar-ble/internal/ble"
	cfg "github.com/tamzrod/esolar-ble/internal/config"
	"github.com/tamzrod/esolar-ble/internal/dtu"
)

// Build constructs a Poller wired to a DTU client on the given adapter.
// Assumes config has already been validated and normalized.
func Build(c *cfg.Config, adapter ble.Adapter) (*Poller, error) {
	client, err := dtu.New(adapter, dtu.Config{
		Address:  c.Device.Address,
		Password: c.Device.Password,
		Timeout:  time.Duration(c.Device.TimeoutS) * time.Second,
	})
	if err != nil {
		return nil, err
	}

	return New(
		Config{
			DeviceID: c.Device.Address,
			Interval: time.Duration(c.Poll.IntervalS) * time.Second,
		},
		client,
	)
}
