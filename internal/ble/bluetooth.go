// internal/ble/bluetooth.go
package ble

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tinygo.org/x/bluetooth"
)

// Backend is the production Adapter, backed by tinygo.org/x/bluetooth.
type Backend struct {
	adapter *bluetooth.Adapter

	enableOnce sync.Once
	enableErr  error
}

// NewBackend wraps the platform default Bluetooth adapter.
func NewBackend() *Backend {
	return &Backend{adapter: bluetooth.DefaultAdapter}
}

func (b *Backend) Connect(ctx context.Context, address string) (Conn, error) {
	b.enableOnce.Do(func() {
		b.enableErr = b.adapter.Enable()
	})
	if b.enableErr != nil {
		return nil, fmt.Errorf("ble: enable adapter: %w", b.enableErr)
	}

	mac, err := bluetooth.ParseMAC(address)
	if err != nil {
		return nil, fmt.Errorf("ble: bad address %q: %w", address, err)
	}

	params := bluetooth.ConnectionParams{}
	if deadline, ok := ctx.Deadline(); ok {
		params.ConnectionTimeout = bluetooth.NewDuration(time.Until(deadline))
	}

	dev, err := b.adapter.Connect(bluetooth.Address{MACAddress: bluetooth.MACAddress{MAC: mac}}, params)
	if err != nil {
		return nil, fmt.Errorf("ble: connect %s: %w", address, err)
	}
	return &deviceConn{dev: dev}, nil
}

type deviceConn struct {
	dev bluetooth.Device
}

func (c *deviceConn) Characteristics() ([]Characteristic, error) {
	svcs, err := c.dev.DiscoverServices(nil)
	if err != nil {
		return nil, fmt.Errorf("ble: discover services: %w", err)
	}

	var out []Characteristic
	for _, svc := range svcs {
		chars, err := svc.DiscoverCharacteristics(nil)
		if err != nil {
			return nil, fmt.Errorf("ble: discover characteristics: %w", err)
		}
		for i := range chars {
			out = append(out, &deviceChar{ch: chars[i]})
		}
	}
	return out, nil
}

func (c *deviceConn) Disconnect() error {
	return c.dev.Disconnect()
}

type deviceChar struct {
	ch bluetooth.DeviceCharacteristic
}

func (d *deviceChar) UUID() string {
	return d.ch.UUID().String()
}

func (d *deviceChar) Write(data []byte) error {
	_, err := d.ch.WriteWithoutResponse(data)
	return err
}

func (d *deviceChar) Read() ([]byte, error) {
	buf := make([]byte, 512)
	n, err := d.ch.Read(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

func (d *deviceChar) Subscribe(cb func([]byte)) error {
	return d.ch.EnableNotifications(cb)
}

// SubscribeLegacy is unsupported here: the library does not expose the
// BlueZ StartNotify/AcquireNotify toggle.
func (d *deviceChar) SubscribeLegacy(cb func([]byte)) error {
	return ErrNotSupported
}

func (d *deviceChar) Unsubscribe() error {
	return d.ch.EnableNotifications(nil)
}

// Descriptor always reports not-found: the library does not surface
// GATT descriptors. The negotiator's descriptor-reset strategy is then
// skipped, which matches its last-resort role.
func (d *deviceChar) Descriptor(uuid string) (Descriptor, bool) {
	return nil, false
}
