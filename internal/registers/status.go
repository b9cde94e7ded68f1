// internal/registers/status.go
package registers

// runStatusNames maps the gen2 run-status register to a display name.
var runStatusNames = map[uint16]string{
	0: "Offline",
	1: "Standby",
	2: "Running",
	3: "Running",
	4: "Running",
	5: "Fault",
	6: "Offline",
}

// RunStatusName returns the display name for a run-status code. Unknown
// codes report Offline.
func RunStatusName(code uint16) string {
	if name, ok := runStatusNames[code]; ok {
		return name
	}
	return "Offline"
}
