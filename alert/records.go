package alert

import "fmt"

// Threat levels carried by a TacticalRecord.
const (
	LevelHigh = "High"
	LevelLow  = "Low"
)

// StatusAirAlert is the fixed notification status literal.
const StatusAirAlert = "ПОВІТРЯНА ТРИВОГА!"

// ErrInvalidRecord is returned when a record fails boundary validation
// between stages.
var ErrInvalidRecord = fmt.Errorf("invalid record")

// TacticalRecord is the fixed-schema output of the signal-analysis stage.
// Apart from Source (the dominant stage-1 node) every field is a fixed
// assessment constant.
type TacticalRecord struct {
	Source     string `json:"source"`
	ThreatType string `json:"threat_type"`
	Level      string `json:"level"`
	Sector     string `json:"sector"`
}

// Validate checks the record at the stage boundary.
func (r TacticalRecord) Validate() error {
	if r.Source == "" {
		return fmt.Errorf("tactical record missing source: %w", ErrInvalidRecord)
	}
	if r.Level != LevelHigh && r.Level != LevelLow {
		return fmt.Errorf("tactical record level %q: %w", r.Level, ErrInvalidRecord)
	}
	return nil
}

// Assessment is the nested synthesis summary inside a NotificationRecord.
type Assessment struct {
	DominantNode string  `json:"dominant_node"`
	Activation   float64 `json:"activation"`
	Directive    string  `json:"directive"`
}

// NotificationRecord is the fixed-schema output of the synthesis stage.
// Status is always StatusAirAlert; Energy is the high/low branch value.
type NotificationRecord struct {
	Status     string     `json:"status"`
	Level      string     `json:"level"`
	Energy     float64    `json:"energy"`
	Assessment Assessment `json:"assessment"`
	Channels   []string   `json:"channels"`
}
