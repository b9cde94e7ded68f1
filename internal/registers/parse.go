// internal/registers/parse.go
package registers

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrTooShort means a device-info reply did not carry the minimum
// register block.
var ErrTooShort = errors.New("registers: response too short")

// sentinel16 is the device's "unused input" marker. A scaled register
// holding this value decodes to absent, never to 65535 or zero.
const sentinel16 = 0xFFFF

// Minimum reply sizes in hex digits (2 per byte), after prefix strip.
const (
	deviceInfoMinHex = 58  // 29 bytes: header + identity registers
	deviceInfoExtHex = 110 // 55 bytes: extended firmware version block
	gen2MinHex       = 210 // 105 bytes
	r6MinHex         = 114 // 57 bytes
)

// StripPrefix drops the optional 0x32 transport prefix from a
// hex-encoded reply. All fixed offsets below index the stripped string.
func StripPrefix(h string) string {
	if strings.HasPrefix(h, "32") {
		return h[2:]
	}
	return h
}

// ParseDeviceInfo decodes the 0x8F00 identity block.
func ParseDeviceInfo(respHex string) (DeviceInfo, error) {
	h := StripPrefix(respHex)
	if len(h) < deviceInfoMinHex {
		return DeviceInfo{}, fmt.Errorf("%w: device info reply is %d hex digits, need %d",
			ErrTooShort, len(h), deviceInfoMinHex)
	}

	typeRaw, ok := field(h, 6, 10)
	if !ok {
		return DeviceInfo{}, fmt.Errorf("registers: bad device type field in %q", h[6:10])
	}
	subRaw, _ := field(h, 10, 14)
	commRaw, _ := field(h, 14, 18)

	snBytes, err := hex.DecodeString(h[18:58])
	if err != nil {
		return DeviceInfo{}, fmt.Errorf("registers: bad serial field: %w", err)
	}
	serial := strings.TrimSpace(strings.Trim(string(snBytes), "\x00"))

	info := DeviceInfo{
		SerialNumber:   serial,
		DeviceTypeCode: uint16(typeRaw),
		SubType:        uint16(subRaw),
		CommVersion:    fmt.Sprintf("STV%.3f", float64(commRaw)/1000),
	}

	// Extended firmware versions only exist on longer replies; a short
	// reply is not an error.
	info.DisplayVersion = versionField(h, 98, 102)
	info.MainCtrlVersion = versionField(h, 102, 106)
	info.SlaveCtrlVersion = versionField(h, 106, 110)

	return info, nil
}

// ParseRealtimeGen2 decodes the 0x0100 layout (59 registers). A nil
// result means the reply is not this dialect; the caller falls back to
// the r6 command.
func ParseRealtimeGen2(respHex string) *RealtimeData {
	h := StripPrefix(respHex)
	if len(h) < gen2MinHex {
		return nil
	}

	powerRaw, ok := field(h, 82, 86)
	if !ok {
		return nil
	}
	power := float64(powerRaw) // watts, unscaled

	d := &RealtimeData{
		Protocol:      ProtocolGen2,
		CurrentPowerW: &power,
		PV1Voltage:    scaled(h, 34, 38, 10),
		PV1Current:    scaled(h, 38, 42, 100),
		PV2Voltage:    scaled(h, 46, 50, 10),
		PV2Current:    scaled(h, 50, 54, 100),
		GridVoltage:   scaled(h, 94, 98, 10),
		GridCurrent:   scaled(h, 98, 102, 100),
		GridFrequency: scaled(h, 102, 106, 100),
		TodayKWh:      scaled(h, 182, 186, 100),
		MonthKWh:      energy32(h, 186, 194),
		YearKWh:       energy32(h, 194, 202),
		TotalKWh:      energy32(h, 202, 210),
	}
	if raw, ok := field(h, 6, 10); ok {
		rs := uint16(raw)
		d.RunStatus = &rs
	}
	return d
}

// ParseRealtimeR6 decodes the 0x6004 layout (95 registers). A nil result
// means the reply is not this dialect.
func ParseRealtimeR6(respHex string) *RealtimeData {
	h := StripPrefix(respHex)
	if len(h) < r6MinHex {
		return nil
	}

	powerRaw, ok := field(h, 106, 114)
	if !ok {
		return nil
	}
	power := float64(powerRaw) // watts, unscaled

	return &RealtimeData{
		Protocol:      ProtocolR6,
		CurrentPowerW: &power,
		TotalKWh:      energy32(h, 6, 14),
		YearKWh:       energy32(h, 14, 22),
		MonthKWh:      energy32(h, 22, 30),
		TodayKWh:      energy32(h, 30, 38),
	}
}

// field reads a big-endian register field from the hex string. ok is
// false when the reply is too short for the field.
func field(h string, start, end int) (uint64, bool) {
	if end > len(h) {
		return 0, false
	}
	v, err := strconv.ParseUint(h[start:end], 16, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// scaled reads a uint16 register and divides by divisor, mapping the
// 0xFFFF sentinel to absent.
func scaled(h string, start, end int, divisor float64) *float64 {
	raw, ok := field(h, start, end)
	if !ok || raw == sentinel16 {
		return nil
	}
	v := float64(raw) / divisor
	return &v
}

// energy32 reads a uint32 energy register in centi-kWh.
func energy32(h string, start, end int) *float64 {
	raw, ok := field(h, start, end)
	if !ok {
		return nil
	}
	v := float64(raw) / 100
	return &v
}

// versionField formats a raw firmware version register, absent when the
// reply does not reach it.
func versionField(h string, start, end int) *string {
	raw, ok := field(h, start, end)
	if !ok {
		return nil
	}
	s := fmt.Sprintf("V%.3f", float64(raw)/1000)
	return &s
}
