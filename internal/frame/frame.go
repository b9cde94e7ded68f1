// internal/frame/frame.go
package frame

import (
	"encoding/hex"
	"fmt"
)

// Modbus read commands (function 0x03) understood by the DTU.
// Hex payloads: unit id, function, start register, register count.
const (
	CmdDeviceInfo   = "01038F00000D" // 13 registers at 0x8F00
	CmdRealtimeGen2 = "01030100003B" // 59 registers at 0x0100
	CmdRealtimeR6   = "01036004005F" // 95 registers at 0x6004
)

// PrefixByte optionally precedes replies on some DTU firmware revisions.
// It is not part of the Modbus frame and is stripped before parsing.
const PrefixByte = 0x32

// authReply is the literal handshake reply the DTU sends after pairing.
// It is a complete exchange on its own, not a Modbus frame.
var authReply = []byte("Authenticated")

// CRC16 computes the Modbus CRC (polynomial 0xA001, init 0xFFFF).
func CRC16(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc ^= uint16(b)
		for i := 0; i < 8; i++ {
			if crc&1 != 0 {
				crc = crc>>1 ^ 0xA001
			} else {
				crc >>= 1
			}
		}
	}
	return crc
}

// BuildRequest decodes a hex command payload and appends the CRC,
// low byte first. The result is the exact byte sequence to transmit.
func BuildRequest(payloadHex string) ([]byte, error) {
	payload, err := hex.DecodeString(payloadHex)
	if err != nil {
		return nil, fmt.Errorf("frame: bad command payload %q: %w", payloadHex, err)
	}
	crc := CRC16(payload)
	return append(payload, byte(crc), byte(crc>>8)), nil
}
