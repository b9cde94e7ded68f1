// internal/config/config.go
package config

type Config struct {
	Device DeviceConfig `yaml:"device"`
	Poll   PollConfig   `yaml:"poll"`
	MQTT   MQTTConfig   `yaml:"mqtt"`
}

// ---- DEVICE ----

type DeviceConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	TimeoutS int    `yaml:"timeout_s"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalS int `yaml:"interval_s"`
}

// ---- MQTT SINK ----

type MQTTConfig struct {
	BrokerURL   string `yaml:"broker_url"`
	ClientID    string `yaml:"client_id"`
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	TopicPrefix string `yaml:"topic_prefix"`
	TimeoutS    int    `yaml:"timeout_s"`
}
