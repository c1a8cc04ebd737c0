package alert

import (
	"fmt"

	"github.com/nexusmind/nexus/graph"
	"github.com/nexusmind/nexus/knowledge"
	"github.com/nexusmind/nexus/logging"
)

// Stage-1 settling parameters.
const (
	stage1SettleIterations = 2
	stage1SettleThreshold  = 1.0
	stage1DecayFactor      = 0.2
)

// Stage1 is the signal-analysis stage. Each Run builds a fresh fixed graph,
// injects the raw energy at the radar contact, settles and reports the
// dominant node inside an otherwise fixed tactical record.
type Stage1 struct {
	logger logging.Logger
}

// NewStage1 creates the signal-analysis stage.
func NewStage1(logger logging.Logger) *Stage1 {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Stage1{logger: logger}
}

// Run propagates energy through the signal-analysis graph and returns the
// tactical record. The record's assessment fields are fixed constants; only
// Source is taken from the graph.
func (s *Stage1) Run(energy float64) (TacticalRecord, error) {
	g := knowledge.SignalAnalysisGraph(func(o *graph.Options) { o.Logger = s.logger })

	if err := g.Resonate(knowledge.NodeRadarContact, energy); err != nil {
		return TacticalRecord{}, fmt.Errorf("signal analysis: %w", err)
	}
	g.Settle(stage1SettleIterations, stage1SettleThreshold, stage1DecayFactor)

	dominant, ok := g.Dominant()
	if !ok {
		return TacticalRecord{}, fmt.Errorf("signal analysis: empty graph: %w", ErrInvalidRecord)
	}
	s.logger.Debug("signal analysis settled dominant=%s activation=%.3f", dominant.ID, dominant.Activation)

	return TacticalRecord{
		Source:     dominant.ID,
		ThreatType: "cruise_missile",
		Level:      LevelHigh,
		Sector:     "north",
	}, nil
}
