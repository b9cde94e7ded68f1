// internal/dtu/client.go
package dtu

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/tamzrod/esolar-ble/internal/ble"
	"github.com/tamzrod/esolar-ble/internal/frame"
	"github.com/tamzrod/esolar-ble/internal/registers"
)

// DefaultPassword is used when the caller supplies none. It is only
// transmitted by the out-of-band pairing flow, never by the read
// operations here.
const DefaultPassword = "123456"

const (
	// DefaultTimeout bounds one whole read, connect included.
	DefaultTimeout = 15 * time.Second

	// DefaultSettleDelay is the grace period after connect; the radio
	// firmware answers unreliably before it (~0.8s empirically).
	DefaultSettleDelay = 800 * time.Millisecond

	// DefaultPollInterval spaces direct reads in the poll fallback.
	DefaultPollInterval = 300 * time.Millisecond
)

// Config is the per-device client configuration.
type Config struct {
	Address  string
	Password string

	// Zero values take the package defaults.
	Timeout      time.Duration
	SettleDelay  time.Duration
	PollInterval time.Duration
}

// Client reads one DTU. Each operation opens a transient link and
// guarantees teardown on every exit path; at most one link is open at a
// time. Device info is fetched once and cached for the client lifetime.
type Client struct {
	adapter ble.Adapter
	cfg     Config

	mu   sync.Mutex
	info *registers.DeviceInfo
}

// New creates a Client. Missing config fields take defaults.
func New(adapter ble.Adapter, cfg Config) (*Client, error) {
	if cfg.Address == "" {
		return nil, errors.New("dtu: device address required")
	}
	if cfg.Password == "" {
		cfg.Password = DefaultPassword
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.SettleDelay == 0 {
		cfg.SettleDelay = DefaultSettleDelay
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	return &Client{adapter: adapter, cfg: cfg}, nil
}

// ReadDeviceInfo fetches the identity registers. The first successful
// result is cached; later calls do not touch the radio.
func (c *Client) ReadDeviceInfo(ctx context.Context) (registers.DeviceInfo, error) {
	c.mu.Lock()
	if c.info != nil {
		info := *c.info
		c.mu.Unlock()
		return info, nil
	}
	c.mu.Unlock()

	var info registers.DeviceInfo
	err := c.withLink(ctx, func(ctx context.Context, ch ble.Characteristic, desc ble.Descriptor) error {
		resp, err := c.exchange(ctx, ch, desc, frame.CmdDeviceInfo)
		if err != nil {
			return err
		}
		info, err = registers.ParseDeviceInfo(resp)
		return err
	})
	if err != nil {
		return registers.DeviceInfo{}, err
	}

	log.Printf("dtu: device info sn=%s type=%d comm=%s", info.SerialNumber, info.DeviceTypeCode, info.CommVersion)

	c.mu.Lock()
	c.info = &info
	c.mu.Unlock()
	return info, nil
}

// ReadRealtimeData fetches a fresh realtime snapshot, trying the gen2
// register layout first and falling back to r6 on the same link.
func (c *Client) ReadRealtimeData(ctx context.Context) (registers.RealtimeData, error) {
	var data registers.RealtimeData
	err := c.withLink(ctx, func(ctx context.Context, ch ble.Characteristic, desc ble.Descriptor) error {
		resp, err := c.exchange(ctx, ch, desc, frame.CmdRealtimeGen2)
		if err != nil {
			return err
		}
		if d := registers.ParseRealtimeGen2(resp); d != nil {
			data = *d
			return nil
		}

		resp, err = c.exchange(ctx, ch, desc, frame.CmdRealtimeR6)
		if err != nil {
			return err
		}
		if d := registers.ParseRealtimeR6(resp); d != nil {
			data = *d
			return nil
		}
		return fmt.Errorf("%w: both realtime dialects rejected the reply", ErrParseFailure)
	})
	if err != nil {
		return registers.RealtimeData{}, err
	}
	return data, nil
}

// withLink opens the link, resolves the vendor characteristic, waits the
// settle delay, runs fn, and always disconnects. The context handed to
// fn carries the overall per-request deadline.
func (c *Client) withLink(ctx context.Context, fn func(context.Context, ble.Characteristic, ble.Descriptor) error) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	conn, err := c.adapter.Connect(ctx, c.cfg.Address)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectionFailure, err)
	}
	defer func() {
		if err := conn.Disconnect(); err != nil {
			log.Printf("dtu: disconnect failed: %v", err)
		}
	}()

	ch, err := findCharacteristic(conn)
	if err != nil {
		return err
	}
	desc := findDescriptor(ch)

	select {
	case <-time.After(c.cfg.SettleDelay):
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
	}

	return fn(ctx, ch, desc)
}
