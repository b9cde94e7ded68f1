// internal/frame/assemble.go
package frame

import (
	"bytes"
	"encoding/hex"
)

// Assembler accumulates response fragments from the notification channel
// (or poll reads) and decides, after every fragment, whether the frame is
// complete. One Assembler serves exactly one command/response exchange.
// Not safe for concurrent use; callers serialize Push.
type Assembler struct {
	buf      []byte
	expected int // -1 until the byte-count field has been seen
}

// NewAssembler returns an empty Assembler.
func NewAssembler() *Assembler {
	return &Assembler{expected: -1}
}

// Push appends a fragment and reports whether the frame is now complete.
func (a *Assembler) Push(data []byte) bool {
	a.buf = append(a.buf, data...)
	return a.Complete()
}

// Complete reports whether the buffered bytes form a full reply.
//
// The "Authenticated" handshake reply is complete as soon as it is fully
// buffered. Otherwise the reply is a Modbus frame, optionally preceded by
// the 0x32 prefix byte: once at least 4 bytes are buffered the expected
// length is offset + 3 header bytes + byte count + 2 CRC bytes, where the
// byte count is the third byte after the optional prefix.
func (a *Assembler) Complete() bool {
	if bytes.HasPrefix(a.buf, authReply) {
		return true
	}
	if a.expected < 0 && len(a.buf) >= 4 {
		offset := 0
		if a.buf[0] == PrefixByte {
			offset = 1
		}
		byteCount := int(a.buf[offset+2])
		a.expected = offset + 3 + byteCount + 2
	}
	return a.expected > 0 && len(a.buf) >= a.expected
}

// Len returns the number of buffered bytes.
func (a *Assembler) Len() int {
	return len(a.buf)
}

// Hex returns the buffered bytes hex-encoded, the form the register
// parsers consume.
func (a *Assembler) Hex() string {
	return hex.EncodeToString(a.buf)
}
