// internal/config/validate.go
package config

import (
	"fmt"
	"strings"
)

// Update interval bounds in seconds. The radio link monopolizes the DTU
// for the whole exchange; faster polling starves the vendor app.
const (
	MinIntervalS = 10
	MaxIntervalS = 300
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {

	// ------------------------------------------------------------
	// DEVICE
	// ------------------------------------------------------------

	if cfg.Device.Address == "" {
		return fmt.Errorf("device: address is required")
	}
	if !looksLikeMAC(cfg.Device.Address) {
		return fmt.Errorf("device: address %q is not a MAC address (AA:BB:CC:DD:EE:FF)", cfg.Device.Address)
	}
	for i := 0; i < len(cfg.Device.Password); i++ {
		if cfg.Device.Password[i] > 0x7F {
			return fmt.Errorf("device: password must contain ASCII characters only")
		}
	}
	if cfg.Device.TimeoutS < 0 {
		return fmt.Errorf("device: timeout_s must be >= 0")
	}

	// ------------------------------------------------------------
	// POLL
	// ------------------------------------------------------------

	// interval is opt-in; 0 takes the default in Normalize
	if cfg.Poll.IntervalS != 0 {
		if cfg.Poll.IntervalS < MinIntervalS || cfg.Poll.IntervalS > MaxIntervalS {
			return fmt.Errorf(
				"poll: interval_s %d out of range [%d, %d]",
				cfg.Poll.IntervalS, MinIntervalS, MaxIntervalS,
			)
		}
	}

	// ------------------------------------------------------------
	// MQTT SINK
	// ------------------------------------------------------------

	if cfg.MQTT.BrokerURL == "" {
		return fmt.Errorf("mqtt: broker_url is required")
	}
	if strings.ContainsAny(cfg.MQTT.TopicPrefix, "#+") {
		return fmt.Errorf("mqtt: topic_prefix %q must not contain wildcards", cfg.MQTT.TopicPrefix)
	}
	if strings.HasSuffix(cfg.MQTT.TopicPrefix, "/") {
		return fmt.Errorf("mqtt: topic_prefix %q must not end with a slash", cfg.MQTT.TopicPrefix)
	}

	return nil
}

// looksLikeMAC accepts six colon-separated hex octet pairs.
func looksLikeMAC(s string) bool {
	parts := strings.Split(s, ":")
	if len(parts) != 6 {
		return false
	}
	for _, p := range parts {
		if len(p) != 2 {
			return false
		}
		for i := 0; i < 2; i++ {
			c := p[i]
			isHex := c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
			if !isHex {
				return false
			}
		}
	}
	return true
}
