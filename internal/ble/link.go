// internal/ble/link.go
package ble

import (
	"context"
	"errors"
)

// ErrNotSupported signals a capability the link backend does not expose.
// The notification negotiator treats it as "move to the next strategy",
// not as a failure.
var ErrNotSupported = errors.New("ble: not supported")

// Adapter opens links to BLE peripherals.
type Adapter interface {
	// Connect opens a link to the peripheral at the given address.
	// The context bounds the connection attempt.
	Connect(ctx context.Context, address string) (Conn, error)
}

// Conn is one live link. It is exclusively owned by the in-flight
// request and must be disconnected on every exit path.
type Conn interface {
	// Characteristics returns every characteristic on the discovered
	// service tree, flattened.
	Characteristics() ([]Characteristic, error)
	Disconnect() error
}

// Characteristic is a readable/writable/notifiable GATT value.
type Characteristic interface {
	UUID() string

	// Write transmits without response.
	Write(data []byte) error

	// Read fetches the current value directly (poll fallback path).
	Read() ([]byte, error)

	// Subscribe enables notifications with default semantics.
	Subscribe(cb func(data []byte)) error

	// SubscribeLegacy enables notifications requesting the vendor
	// "force legacy start" behavior. Backends without the capability
	// return ErrNotSupported.
	SubscribeLegacy(cb func(data []byte)) error

	Unsubscribe() error

	// Descriptor finds a descriptor by case-insensitive UUID substring.
	// Absence is not an error.
	Descriptor(uuid string) (Descriptor, bool)
}

// Descriptor is GATT characteristic metadata, writable for the
// descriptor-reset remedial strategy.
type Descriptor interface {
	Write(data []byte) error
}
