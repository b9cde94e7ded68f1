// internal/writer/mqtt/client.go
package mqtt

import (
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Client is a thin publish-only wrapper on one broker connection.
type Client struct {
	cli     mqtt.Client
	timeout time.Duration
}

// Config is minimal broker config.
type Config struct {
	BrokerURL string
	ClientID  string
	Username  string
	Password  string
	Timeout   time.Duration
}

// NewClient creates a connected MQTT client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BrokerURL == "" {
		return nil, errors.New("writer mqtt: broker url required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.BrokerURL)
	opts.SetClientID(cfg.ClientID)
	opts.SetUsername(cfg.Username)
	opts.SetPassword(cfg.Password)
	opts.SetConnectRetry(true)

	cli := mqtt.NewClient(opts)
	tok := cli.Connect()
	if !tok.WaitTimeout(cfg.Timeout) {
		return nil, errors.New("writer mqtt: connect timeout")
	}
	if err := tok.Error(); err != nil {
		return nil, fmt.Errorf("writer mqtt: connect: %w", err)
	}

	return &Client{cli: cli, timeout: cfg.Timeout}, nil
}

// Publish implements writer.Publisher at QoS 0.
func (c *Client) Publish(topic string, retained bool, payload []byte) error {
	tok := c.cli.Publish(topic, 0, retained, payload)
	if !tok.WaitTimeout(c.timeout) {
		return fmt.Errorf("writer mqtt: publish %s: timeout", topic)
	}
	return tok.Error()
}

// Close disconnects from the broker.
func (c *Client) Close() error {
	c.cli.Disconnect(250)
	return nil
}
