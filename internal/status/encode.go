// internal/status/encode.go
package status

import "encoding/json"

// statusDoc is the wire form published on the status topic.
type statusDoc struct {
	Health         string `json:"health"`
	LastErrorCode  uint16 `json:"last_error_code"`
	SecondsInError uint16 `json:"seconds_in_error"`
}

// Encode converts a Snapshot into the status topic payload.
// No IO. No side effects.
func Encode(s Snapshot) []byte {
	doc := statusDoc{
		Health:         HealthName(s.Health),
		LastErrorCode:  s.LastErrorCode,
		SecondsInError: s.SecondsInError,
	}
	b, err := json.Marshal(doc)
	if err != nil {
		// statusDoc has no unmarshalable fields
		panic(err)
	}
	return b
}
