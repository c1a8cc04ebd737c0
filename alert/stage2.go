package alert

import (
	"fmt"

	"github.com/nexusmind/nexus/graph"
	"github.com/nexusmind/nexus/knowledge"
	"github.com/nexusmind/nexus/logging"
)

// Stage-2 energy constants. The will node always receives WillEnergy; the
// threat assessment node receives the branch value selected by the tactical
// record's level.
const (
	WillEnergy       = 150.0
	BranchHighEnergy = 100.0
	BranchLowEnergy  = 50.0
)

// Stage2 is the synthesis stage. Each Run builds a fresh fixed graph and
// produces the air-alert notification; the input only selects the high/low
// branch energy.
type Stage2 struct {
	logger logging.Logger
}

// NewStage2 creates the synthesis stage.
func NewStage2(logger logging.Logger) *Stage2 {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Stage2{logger: logger}
}

// Run validates the tactical record, resonates the synthesis graph and
// returns the notification record.
func (s *Stage2) Run(rec TacticalRecord) (NotificationRecord, error) {
	if err := rec.Validate(); err != nil {
		return NotificationRecord{}, fmt.Errorf("synthesis: %w", err)
	}

	branch := BranchLowEnergy
	if rec.Level == LevelHigh {
		branch = BranchHighEnergy
	}

	g := knowledge.SynthesisGraph(func(o *graph.Options) { o.Logger = s.logger })
	if err := g.Resonate(knowledge.NodeWill, WillEnergy); err != nil {
		return NotificationRecord{}, fmt.Errorf("synthesis: %w", err)
	}
	if err := g.Resonate(knowledge.NodeThreatAssessment, branch); err != nil {
		return NotificationRecord{}, fmt.Errorf("synthesis: %w", err)
	}

	dominant, ok := g.Dominant()
	if !ok {
		return NotificationRecord{}, fmt.Errorf("synthesis: empty graph: %w", ErrInvalidRecord)
	}
	s.logger.Debug("synthesis resonated dominant=%s activation=%.3f branch=%.1f", dominant.ID, dominant.Activation, branch)

	return NotificationRecord{
		Status: StatusAirAlert,
		Level:  rec.Level,
		Energy: branch,
		Assessment: Assessment{
			DominantNode: dominant.ID,
			Activation:   dominant.Activation,
			Directive:    "Proceed to the nearest shelter",
		},
		Channels: []string{"siren", "broadcast", "mobile"},
	}, nil
}
