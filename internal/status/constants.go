// internal/status/constants.go
package status

// Link health states published on the status topic.

// HealthUnknown represents the boot state, before the first poll.
const HealthUnknown uint16 = 0

// HealthOK represents a healthy link with fresh data.
const HealthOK uint16 = 1

// HealthError represents a failed poll cycle.
const HealthError uint16 = 2

// ---- LAST-ERROR CODES ----

// Codes carried in Snapshot.LastErrorCode. 0 means no error.
const (
	CodeNone           uint16 = 0
	CodeGeneric        uint16 = 1
	CodeConnection     uint16 = 2
	CodeCharacteristic uint16 = 3
	CodeTimeout        uint16 = 4
	CodeParse          uint16 = 5
)

// HealthName returns the wire name of a health state.
func HealthName(h uint16) string {
	switch h {
	case HealthOK:
		return "ok"
	case HealthError:
		return "error"
	default:
		return "unknown"
	}
}
