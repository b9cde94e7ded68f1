// internal/dtu/resolve.go
package dtu

import (
	"fmt"
	"strings"

	"github.com/tamzrod/esolar-ble/internal/ble"
)

// Vendor UUIDs on the DTU. The descriptor is non-standard (0x2913, not
// the conventional CCCD 0x2902).
const (
	ServiceUUID    = "00001834-0000-1000-8000-00805f9b34fb"
	DescriptorUUID = "00002913-0000-1000-8000-00805f9b34fb"
)

// findCharacteristic locates the vendor application characteristic by
// case-insensitive substring match over the discovered service tree.
func findCharacteristic(conn ble.Conn) (ble.Characteristic, error) {
	chars, err := conn.Characteristics()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCharacteristicNotFound, err)
	}
	want := strings.ToLower(ServiceUUID)
	for _, ch := range chars {
		if strings.Contains(strings.ToLower(ch.UUID()), want) {
			return ch, nil
		}
	}
	return nil, fmt.Errorf("%w: no characteristic matches %s", ErrCharacteristicNotFound, ServiceUUID)
}

// findDescriptor looks up the 0x2913 descriptor on the vendor
// characteristic. Absence is a nil result, not an error; the descriptor
// only serves the last-resort reset strategy.
func findDescriptor(ch ble.Characteristic) ble.Descriptor {
	desc, ok := ch.Descriptor(DescriptorUUID)
	if !ok {
		return nil
	}
	return desc
}
