// internal/writer/writer.go
package writer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tamzrod/esolar-ble/internal/poller"
	"github.com/tamzrod/esolar-ble/internal/registers"
	"github.com/tamzrod/esolar-ble/internal/status"
)

// Writer delivers poll snapshots to the MQTT topic tree.
type Writer struct {
	plan Plan
	pub  Publisher

	infoPublished bool
}

// New creates a Writer for the given plan.
func New(plan Plan, pub Publisher) *Writer {
	return &Writer{plan: plan, pub: pub}
}

// realtimeDoc is the wire form on the realtime topic.
type realtimeDoc struct {
	registers.RealtimeData
	RunStatusName string `json:"run_status_name,omitempty"`
	At            string `json:"at"`
}

// deviceDoc is the wire form on the retained device topic.
type deviceDoc struct {
	registers.DeviceInfo
	Address string `json:"address"`
}

// Write delivers one successful poll cycle. Device identity is published
// retained, once per process; realtime goes out on every cycle. Failed
// cycles deliver nothing (status carries the error state).
func (w *Writer) Write(res poller.PollResult) error {
	if res.Err != nil || res.Data == nil {
		return nil
	}

	if !w.infoPublished && res.Info != nil {
		payload, err := json.Marshal(deviceDoc{DeviceInfo: *res.Info, Address: res.DeviceID})
		if err != nil {
			return fmt.Errorf("writer: encode device info: %w", err)
		}
		if err := w.pub.Publish(w.plan.deviceTopic(), true, payload); err != nil {
			return fmt.Errorf("writer: publish device info: %w", err)
		}
		w.infoPublished = true
	}

	doc := realtimeDoc{
		RealtimeData: *res.Data,
		At:           res.At.UTC().Format(time.RFC3339),
	}
	if res.Data.RunStatus != nil {
		doc.RunStatusName = registers.RunStatusName(*res.Data.RunStatus)
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("writer: encode realtime: %w", err)
	}
	if err := w.pub.Publish(w.plan.realtimeTopic(), false, payload); err != nil {
		return fmt.Errorf("writer: publish realtime: %w", err)
	}
	return nil
}

// WriteStatus delivers the link health snapshot verbatim, retained so
// consumers see the last known state on subscribe.
func (w *Writer) WriteStatus(s status.Snapshot) error {
	if err := w.pub.Publish(w.plan.statusTopic(), true, status.Encode(s)); err != nil {
		return fmt.Errorf("writer: publish status: %w", err)
	}
	return nil
}
