// internal/writer/types.go
package writer

// Publisher is the exact contract the writer uses.
// IMPORTANT: There must be NO other version of this interface anywhere.
type Publisher interface {
	Publish(topic string, retained bool, payload []byte) error
}

// Plan is the fully-built topic plan for one device.
type Plan struct {
	DeviceID    string
	TopicPrefix string
}

func (p Plan) deviceTopic() string   { return p.TopicPrefix + "/device" }
func (p Plan) realtimeTopic() string { return p.TopicPrefix + "/realtime" }
func (p Plan) statusTopic() string   { return p.TopicPrefix + "/status" }
