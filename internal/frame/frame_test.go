// internal/frame/frame_test.go
package frame

import (
	"encoding/hex"
	"testing"
)

func TestCRC16_ReferenceVectors(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want uint16
	}{
		{"classic check", []byte("123456789"), 0x4B37},
		{"device info cmd", mustHex(t, CmdDeviceInfo), 0xDBAE},
		{"realtime gen2 cmd", mustHex(t, CmdRealtimeGen2), 0xE505},
		{"realtime r6 cmd", mustHex(t, CmdRealtimeR6), 0x335A},
	}
	for _, tc := range cases {
		if got := CRC16(tc.data); got != tc.want {
			t.Errorf("%s: CRC16=0x%04X want 0x%04X", tc.name, got, tc.want)
		}
	}
}

func TestBuildRequest_AppendsCRCLowByteFirst(t *testing.T) {
	cases := []struct {
		payload string
		want    string
	}{
		{CmdDeviceInfo, "01038f00000daedb"},
		{CmdRealtimeGen2, "01030100003b05e5"},
		{CmdRealtimeR6, "01036004005f5a33"},
	}
	for _, tc := range cases {
		got, err := BuildRequest(tc.payload)
		if err != nil {
			t.Fatalf("BuildRequest(%s) err=%v", tc.payload, err)
		}
		if hex.EncodeToString(got) != tc.want {
			t.Errorf("BuildRequest(%s)=%x want %s", tc.payload, got, tc.want)
		}
	}
}

func TestBuildRequest_RejectsBadHex(t *testing.T) {
	if _, err := BuildRequest("01zz"); err == nil {
		t.Fatal("expected error for non-hex payload")
	}
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex fixture %q: %v", s, err)
	}
	return b
}
