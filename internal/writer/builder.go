// internal/writer/builder.go
package writer

import (
	"errors"
	"time"

	cfg "github.com/tamzrod/esolar-ble/internal/config"
	wmqtt "github.com/tamzrod/esolar-ble/internal/writer/mqtt"
)

// BuildPlan converts config into a Writer Plan.
// Assumes config has already passed validation.
func BuildPlan(c *cfg.Config) (Plan, error) {
	if c.MQTT.TopicPrefix == "" {
		return Plan{}, errors.New("writer: mqtt.topic_prefix required")
	}
	return Plan{
		DeviceID:    c.Device.Address,
		TopicPrefix: c.MQTT.TopicPrefix,
	}, nil
}

// Build creates the MQTT-backed Writer and its closer.
func Build(c *cfg.Config) (*Writer, func() error, error) {
	plan, err := BuildPlan(c)
	if err != nil {
		return nil, nil, err
	}

	cli, err := wmqtt.NewClient(wmqtt.Config{
		BrokerURL: c.MQTT.BrokerURL,
		ClientID:  c.MQTT.ClientID,
		Username:  c.MQTT.Username,
		Password:  c.MQTT.Password,
		Timeout:   time.Duration(c.MQTT.TimeoutS) * time.Second,
	})
	if err != nil {
		return nil, nil, err
	}

	return New(plan, cli), cli.Close, nil
}
