// internal/config/normalize.go
package config

// Defaults applied by Normalize.
const (
	DefaultPassword  = "123456"
	DefaultIntervalS = 30
	DefaultTimeoutS  = 15

	DefaultClientID    = "esolarble"
	DefaultTopicPrefix = "esolar"
	DefaultMQTTTimeout = 5
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Device.Password == "" {
		cfg.Device.Password = DefaultPassword
	}
	if cfg.Device.TimeoutS == 0 {
		cfg.Device.TimeoutS = DefaultTimeoutS
	}

	if cfg.Poll.IntervalS == 0 {
		cfg.Poll.IntervalS = DefaultIntervalS
	}

	if cfg.MQTT.ClientID == "" {
		cfg.MQTT.ClientID = DefaultClientID
	}
	if cfg.MQTT.TopicPrefix == "" {
		cfg.MQTT.TopicPrefix = DefaultTopicPrefix
	}
	if cfg.MQTT.TimeoutS == 0 {
		cfg.MQTT.TimeoutS = DefaultMQTTTimeout
	}
}
