// internal/writer/writer_test.go
package writer

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/tamzrod/esolar-ble/internal/poller"
	"github.com/tamzrod/esolar-ble/internal/registers"
	"github.com/tamzrod/esolar-ble/internal/status"
)

// ---- fake publisher ----

type fakePublisher struct {
	published []publishCall
}

type publishCall struct {
	topic    string
	retained bool
	payload  []byte
}

func (f *fakePublisher) Publish(topic string, retained bool, payload []byte) error {
	f.published = append(f.published, publishCall{topic, retained, payload})
	return nil
}

// ---- helpers ----

func okResult() poller.PollResult {
	power := 500.0
	today := 1.0
	rs := uint16(2)
	return poller.PollResult{
		DeviceID: "AA:BB:CC:DD:EE:FF",
		At:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Info: &registers.DeviceInfo{
			SerialNumber:   "SN12345",
			DeviceTypeCode: 1,
			CommVersion:    "STV1.234",
		},
		Data: &registers.RealtimeData{
			Protocol:      registers.ProtocolGen2,
			CurrentPowerW: &power,
			TodayKWh:      &today,
			RunStatus:     &rs,
		},
	}
}

// ---- tests ----

func TestWrite_PublishesDeviceOnceAndRealtimeAlways(t *testing.T) {
	fake := &fakePublisher{}
	w := New(Plan{DeviceID: "AA:BB:CC:DD:EE:FF", TopicPrefix: "esolar"}, fake)

	if err := w.Write(okResult()); err != nil {
		t.Fatalf("first Write err=%v", err)
	}
	if err := w.Write(okResult()); err != nil {
		t.Fatalf("second Write err=%v", err)
	}

	if len(fake.published) != 3 {
		t.Fatalf("published %d messages, want 3 (device once + realtime twice)", len(fake.published))
	}

	dev := fake.published[0]
	if dev.topic != "esolar/device" || !dev.retained {
		t.Errorf("device publish topic=%q retained=%v", dev.topic, dev.retained)
	}
	var devDoc map[string]any
	if err := json.Unmarshal(dev.payload, &devDoc); err != nil {
		t.Fatalf("device payload not JSON: %v", err)
	}
	if devDoc["serial_number"] != "SN12345" {
		t.Errorf("device serial=%v want SN12345", devDoc["serial_number"])
	}

	rt := fake.published[1]
	if rt.topic != "esolar/realtime" || rt.retained {
		t.Errorf("realtime publish topic=%q retained=%v", rt.topic, rt.retained)
	}
	var rtDoc map[string]any
	if err := json.Unmarshal(rt.payload, &rtDoc); err != nil {
		t.Fatalf("realtime payload not JSON: %v", err)
	}
	if rtDoc["current_power_w"] != 500.0 {
		t.Errorf("current_power_w=%v want 500", rtDoc["current_power_w"])
	}
	if rtDoc["run_status_name"] != "Running" {
		t.Errorf("run_status_name=%v want Running", rtDoc["run_status_name"])
	}
	if rtDoc["at"] != "2025-06-01T12:00:00Z" {
		t.Errorf("at=%v want RFC3339 UTC", rtDoc["at"])
	}
}

func TestWrite_FailedCycleDeliversNothing(t *testing.T) {
	fake := &fakePublisher{}
	w := New(Plan{DeviceID: "AA:BB:CC:DD:EE:FF", TopicPrefix: "esolar"}, fake)

	res := okResult()
	res.Err = errTest
	res.Info = nil
	res.Data = nil

	if err := w.Write(res); err != nil {
		t.Fatalf("Write err=%v", err)
	}
	if len(fake.published) != 0 {
		t.Fatalf("published %d messages on failed cycle, want 0", len(fake.published))
	}
}

func TestWriteStatus_RetainedOnStatusTopic(t *testing.T) {
	fake := &fakePublisher{}
	w := New(Plan{DeviceID: "AA:BB:CC:DD:EE:FF", TopicPrefix: "esolar"}, fake)

	snap := status.Snapshot{Health: status.HealthError, LastErrorCode: status.CodeTimeout, SecondsInError: 7}
	if err := w.WriteStatus(snap); err != nil {
		t.Fatalf("WriteStatus err=%v", err)
	}

	if len(fake.published) != 1 {
		t.Fatalf("published %d messages, want 1", len(fake.published))
	}
	call := fake.published[0]
	if call.topic != "esolar/status" || !call.retained {
		t.Errorf("status publish topic=%q retained=%v", call.topic, call.retained)
	}
	var doc map[string]any
	if err := json.Unmarshal(call.payload, &doc); err != nil {
		t.Fatalf("status payload not JSON: %v", err)
	}
	if doc["health"] != "error" {
		t.Errorf("health=%v want error", doc["health"])
	}
	if doc["last_error_code"] != float64(status.CodeTimeout) {
		t.Errorf("last_error_code=%v want %d", doc["last_error_code"], status.CodeTimeout)
	}
}

var errTest = errors.New("poll failed")
