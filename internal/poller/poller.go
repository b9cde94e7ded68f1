// internal/poller/poller.go
package poller

import (
	"context"
	"errors"
	"time"

	"github.com/tamzrod/esolar-ble/internal/registers"
)

// Client abstracts the DTU operations the poller needs.
// The poller depends on the two read operations only.
type Client interface {
	ReadDeviceInfo(ctx context.Context) (registers.DeviceInfo, error)
	ReadRealtimeData(ctx context.Context) (registers.RealtimeData, error)
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	DeviceID string
	Interval time.Duration
}

// Poller is a dumb, clock-driven reader.
type Poller struct {
	cfg    Config
	client Client
}

// New creates a poller with immutable config.
func New(cfg Config, client Client) (*Poller, error) {
	if cfg.DeviceID == "" {
		return nil, errors.New("poller: device id required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if client == nil {
		return nil, errors.New("poller: client required")
	}
	return &Poller{cfg: cfg, client: client}, nil
}

// PollOnce performs exactly one poll cycle: device info (served from the
// client's cache after the first success), then a fresh realtime read.
// All-or-nothing: any failure aborts the cycle.
func (p *Poller) PollOnce(ctx context.Context) PollResult {
	res := PollResult{
		DeviceID: p.cfg.DeviceID,
		At:       time.Now(),
	}

	info, err := p.client.ReadDeviceInfo(ctx)
	if err != nil {
		res.Err = err
		return res
	}

	data, err := p.client.ReadRealtimeData(ctx)
	if err != nil {
		res.Err = err
		return res
	}

	// Commit only if both reads succeeded
	res.Info = &info
	res.Data = &data
	return res
}
