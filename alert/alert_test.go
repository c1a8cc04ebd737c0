package alert

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusmind/nexus/knowledge"
)

func TestStage1_FixedTacticalRecord(t *testing.T) {
	s := NewStage1(nil)

	rec, err := s.Run(100.0)
	require.NoError(t, err)

	assert.Equal(t, knowledge.NodeRadarContact, rec.Source)
	assert.Equal(t, "cruise_missile", rec.ThreatType)
	assert.Equal(t, LevelHigh, rec.Level)
	assert.Equal(t, "north", rec.Sector)
	require.NoError(t, rec.Validate())
}

func TestStage1_DeterministicAcrossRuns(t *testing.T) {
	s := NewStage1(nil)
	first, err := s.Run(42.0)
	require.NoError(t, err)
	second, err := s.Run(42.0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStage2_HighEnergyBranch(t *testing.T) {
	s := NewStage2(nil)

	notif, err := s.Run(TacticalRecord{Source: "any", ThreatType: "x", Level: LevelHigh, Sector: "s"})
	require.NoError(t, err)

	assert.Equal(t, StatusAirAlert, notif.Status)
	assert.Equal(t, LevelHigh, notif.Level)
	assert.Equal(t, BranchHighEnergy, notif.Energy)
	// will gets 150 plus half of the 100 branch via the assessment neighbor
	assert.Equal(t, knowledge.NodeWill, notif.Assessment.DominantNode)
	assert.InDelta(t, 200.0, notif.Assessment.Activation, 1e-9)
	assert.Equal(t, []string{"siren", "broadcast", "mobile"}, notif.Channels)
}

func TestStage2_LowEnergyBranch(t *testing.T) {
	s := NewStage2(nil)

	notif, err := s.Run(TacticalRecord{Source: "any", ThreatType: "x", Level: LevelLow, Sector: "s"})
	require.NoError(t, err)

	assert.Equal(t, StatusAirAlert, notif.Status)
	assert.Equal(t, BranchLowEnergy, notif.Energy)
	assert.Equal(t, knowledge.NodeWill, notif.Assessment.DominantNode)
	assert.InDelta(t, 175.0, notif.Assessment.Activation, 1e-9)
}

func TestStage2_IgnoresStage1Dominant(t *testing.T) {
	s := NewStage2(nil)

	a, err := s.Run(TacticalRecord{Source: "radar_contact", ThreatType: "x", Level: LevelHigh, Sector: "s"})
	require.NoError(t, err)
	b, err := s.Run(TacticalRecord{Source: "launch_site", ThreatType: "y", Level: LevelHigh, Sector: "z"})
	require.NoError(t, err)

	// the notification only depends on the level branch
	a.Level, b.Level = "", ""
	assert.Equal(t, a, b)
}

func TestStage2_RejectsInvalidRecord(t *testing.T) {
	s := NewStage2(nil)

	_, err := s.Run(TacticalRecord{Source: "", Level: LevelHigh})
	assert.ErrorIs(t, err, ErrInvalidRecord)

	_, err = s.Run(TacticalRecord{Source: "ok", Level: "Severe"})
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestOrchestrator_Activate(t *testing.T) {
	o := NewOrchestrator()

	notif, err := o.Activate(100.0)
	require.NoError(t, err)

	assert.Equal(t, StatusAirAlert, notif.Status)
	assert.Equal(t, LevelHigh, notif.Level)
	assert.Equal(t, BranchHighEnergy, notif.Energy)
	assert.InDelta(t, 200.0, notif.Assessment.Activation, 1e-9)
}

func TestOrchestrator_Stateless(t *testing.T) {
	o := NewOrchestrator()
	first, err := o.Activate(100.0)
	require.NoError(t, err)
	second, err := o.Activate(100.0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNotificationRecord_JSONShape(t *testing.T) {
	o := NewOrchestrator()
	notif, err := o.Activate(100.0)
	require.NoError(t, err)

	data, err := json.Marshal(notif)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, StatusAirAlert, decoded["status"])

	nested, ok := decoded["assessment"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, knowledge.NodeWill, nested["dominant_node"])
}
