// internal/registers/types.go
package registers

// Protocol tags identifying which register layout produced a RealtimeData.
const (
	ProtocolGen2 = "gen2"
	ProtocolR6   = "r6"
)

// DeviceInfo holds the identity registers of the inverter. It is parsed
// once per client lifetime and never mutated afterwards.
type DeviceInfo struct {
	SerialNumber   string `json:"serial_number"`
	DeviceTypeCode uint16 `json:"device_type_code"`
	SubType        uint16 `json:"sub_type"`
	CommVersion    string `json:"comm_version"`

	// Only present when the reply carries the extended block.
	DisplayVersion   *string `json:"display_version,omitempty"`
	MainCtrlVersion  *string `json:"main_ctrl_version,omitempty"`
	SlaveCtrlVersion *string `json:"slave_ctrl_version,omitempty"`
}

// RealtimeData is one decoded realtime snapshot. Nil fields mean the
// value is absent in the dialect that produced it, or the device flagged
// the input as unused; never conflate with a measured zero.
type RealtimeData struct {
	CurrentPowerW *float64 `json:"current_power_w,omitempty"`
	TodayKWh      *float64 `json:"today_kwh,omitempty"`
	MonthKWh      *float64 `json:"month_kwh,omitempty"`
	YearKWh       *float64 `json:"year_kwh,omitempty"`
	TotalKWh      *float64 `json:"total_kwh,omitempty"`

	// Protocol is ProtocolGen2 or ProtocolR6.
	Protocol string `json:"protocol"`

	// Gen2-only fields.
	RunStatus     *uint16  `json:"run_status,omitempty"`
	PV1Voltage    *float64 `json:"pv1_voltage,omitempty"`
	PV1Current    *float64 `json:"pv1_current,omitempty"`
	PV2Voltage    *float64 `json:"pv2_voltage,omitempty"`
	PV2Current    *float64 `json:"pv2_current,omitempty"`
	GridVoltage   *float64 `json:"grid_voltage,omitempty"`
	GridCurrent   *float64 `json:"grid_current,omitempty"`
	GridFrequency *float64 `json:"grid_frequency,omitempty"`
}
