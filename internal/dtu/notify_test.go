// internal/dtu/notify_test.go
package dtu

import (
	"errors"
	"testing"

	"github.com/tamzrod/esolar-ble/internal/ble"
)

func discard([]byte) {}

func TestNegotiate_LegacyStartWins(t *testing.T) {
	ch := &fakeChar{uuid: ServiceUUID}
	if !negotiate(ch, nil, discard) {
		t.Fatal("negotiate=false want true")
	}
	if len(ch.calls) != 1 || ch.calls[0] != "legacy" {
		t.Errorf("calls=%v want [legacy]", ch.calls)
	}
}

func TestNegotiate_UnsupportedLegacyFallsThroughQuietly(t *testing.T) {
	ch := &fakeChar{uuid: ServiceUUID, legacyErr: ble.ErrNotSupported}
	if !negotiate(ch, nil, discard) {
		t.Fatal("negotiate=false want true")
	}
	want := []string{"legacy", "subscribe"}
	assertCalls(t, ch.calls, want)
}

func TestNegotiate_DescriptorResetIsLastResort(t *testing.T) {
	desc := &fakeDescriptor{}
	ch := &fakeChar{
		uuid:              ServiceUUID,
		legacyErr:         errors.New("att error 0x0e"),
		subscribeFailures: 1, // plain subscribe refused once; retry after reset succeeds
		desc:              desc,
	}
	if !negotiate(ch, desc, discard) {
		t.Fatal("negotiate=false want true")
	}
	assertCalls(t, ch.calls, []string{"legacy", "subscribe", "subscribe"})
	if len(desc.writes) != 2 || desc.writes[0] != "0000" || desc.writes[1] != "0100" {
		t.Errorf("descriptor writes=%v want [0000 0100]", desc.writes)
	}
}

func TestNegotiate_AllStrategiesExhausted(t *testing.T) {
	ch := &fakeChar{
		uuid:              ServiceUUID,
		legacyErr:         errors.New("att error 0x0e"),
		subscribeFailures: 2,
	}
	if negotiate(ch, nil, discard) {
		t.Fatal("negotiate=true want false")
	}
	// No descriptor: the reset strategy is skipped, not attempted.
	assertCalls(t, ch.calls, []string{"legacy", "subscribe"})
}

func assertCalls(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("calls=%v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("calls=%v want %v", got, want)
		}
	}
}
