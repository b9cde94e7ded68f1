// internal/dtu/notify.go
package dtu

import (
	"errors"
	"log"
	"time"

	"github.com/tamzrod/esolar-ble/internal/ble"
)

// descriptorResetPause separates the disable and enable writes of the
// descriptor-reset strategy.
const descriptorResetPause = 100 * time.Millisecond

// Descriptor control values for the reset strategy.
var (
	descriptorDisable = []byte{0x00, 0x00}
	descriptorEnable  = []byte{0x01, 0x00}
)

type strategyResult int

const (
	strategyOK strategyResult = iota
	strategyUnsupported
	strategyFailed
)

// negotiate establishes a notification channel delivering fragments to
// cb, trying ordered strategies. The DTU's descriptor is non-standard
// and rewriting it can make the transport drop the connection, so the
// reset strategy runs only after the cheaper ones are exhausted. A false
// return means no channel could be established; the caller falls back to
// poll reads. No retries inside a strategy.
func negotiate(ch ble.Characteristic, desc ble.Descriptor, cb func([]byte)) bool {
	strategies := []func() strategyResult{
		func() strategyResult {
			err := ch.SubscribeLegacy(cb)
			if errors.Is(err, ble.ErrNotSupported) {
				return strategyUnsupported
			}
			if err != nil {
				log.Printf("dtu: subscribe legacy-start failed: %v", err)
				return strategyFailed
			}
			return strategyOK
		},
		func() strategyResult {
			if err := ch.Subscribe(cb); err != nil {
				log.Printf("dtu: subscribe failed: %v", err)
				return strategyFailed
			}
			return strategyOK
		},
		func() strategyResult {
			if desc == nil {
				return strategyUnsupported
			}
			if err := desc.Write(descriptorDisable); err != nil {
				log.Printf("dtu: descriptor disable failed: %v", err)
				return strategyFailed
			}
			time.Sleep(descriptorResetPause)
			if err := desc.Write(descriptorEnable); err != nil {
				log.Printf("dtu: descriptor enable failed: %v", err)
				return strategyFailed
			}
			if err := ch.Subscribe(cb); err != nil {
				log.Printf("dtu: subscribe after descriptor reset failed: %v", err)
				return strategyFailed
			}
			return strategyOK
		},
	}

	for _, run := range strategies {
		if run() == strategyOK {
			return true
		}
	}

	log.Printf("dtu: no notification channel, falling back to poll reads")
	return false
}
