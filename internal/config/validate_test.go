// internal/config/validate_test.go
package config

import "testing"

func validConfig() *Config {
	return &Config{
		Device: DeviceConfig{Address: "AA:BB:CC:DD:EE:FF"},
		MQTT:   MQTTConfig{BrokerURL: "tcp://localhost:1883"},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := Validate(validConfig()); err != nil {
		t.Fatalf("Validate err=%v", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing address", func(c *Config) { c.Device.Address = "" }},
		{"malformed address", func(c *Config) { c.Device.Address = "not-a-mac" }},
		{"short address", func(c *Config) { c.Device.Address = "AA:BB:CC:DD:EE" }},
		{"non-ascii password", func(c *Config) { c.Device.Password = "pässword" }},
		{"negative timeout", func(c *Config) { c.Device.TimeoutS = -1 }},
		{"interval below minimum", func(c *Config) { c.Poll.IntervalS = 5 }},
		{"interval above maximum", func(c *Config) { c.Poll.IntervalS = 301 }},
		{"missing broker", func(c *Config) { c.MQTT.BrokerURL = "" }},
		{"wildcard prefix", func(c *Config) { c.MQTT.TopicPrefix = "esolar/#" }},
		{"trailing slash prefix", func(c *Config) { c.MQTT.TopicPrefix = "esolar/" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			if err := Validate(cfg); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestValidate_IntervalBoundsInclusive(t *testing.T) {
	for _, interval := range []int{MinIntervalS, MaxIntervalS} {
		cfg := validConfig()
		cfg.Poll.IntervalS = interval
		if err := Validate(cfg); err != nil {
			t.Errorf("interval_s=%d rejected: %v", interval, err)
		}
	}
}

func TestNormalize_Defaults(t *testing.T) {
	cfg := validConfig()
	Normalize(cfg)

	if cfg.Device.Password != DefaultPassword {
		t.Errorf("password=%q want %q", cfg.Device.Password, DefaultPassword)
	}
	if cfg.Device.TimeoutS != DefaultTimeoutS {
		t.Errorf("timeout_s=%d want %d", cfg.Device.TimeoutS, DefaultTimeoutS)
	}
	if cfg.Poll.IntervalS != DefaultIntervalS {
		t.Errorf("interval_s=%d want %d", cfg.Poll.IntervalS, DefaultIntervalS)
	}
	if cfg.MQTT.ClientID != DefaultClientID || cfg.MQTT.TopicPrefix != DefaultTopicPrefix {
		t.Errorf("mqtt defaults not applied: %+v", cfg.MQTT)
	}
}

func TestNormalize_KeepsExplicitValues(t *testing.T) {
	cfg := validConfig()
	cfg.Device.Password = "secret"
	cfg.Poll.IntervalS = 60
	Normalize(cfg)

	if cfg.Device.Password != "secret" {
		t.Errorf("password=%q want secret", cfg.Device.Password)
	}
	if cfg.Poll.IntervalS != 60 {
		t.Errorf("interval_s=%d want 60", cfg.Poll.IntervalS)
	}
}
