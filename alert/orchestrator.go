package alert

import (
	"github.com/nexusmind/nexus/logging"
)

// Options configures an Orchestrator.
type Options struct {
	// Logger defaults to NoOp and is shared by both stages.
	Logger logging.Logger
}

// Orchestrator chains the two stages: signal analysis feeds its tactical
// record into synthesis. It holds no state between Activate calls.
type Orchestrator struct {
	stage1 *Stage1
	stage2 *Stage2
	logger logging.Logger
}

// NewOrchestrator wires the pipeline with optional overrides.
func NewOrchestrator(optFns ...func(o *Options)) *Orchestrator {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &Orchestrator{
		stage1: NewStage1(opts.Logger),
		stage2: NewStage2(opts.Logger),
		logger: opts.Logger,
	}
}

// Activate runs one full pipeline pass for the given raw signal energy.
func (o *Orchestrator) Activate(energy float64) (NotificationRecord, error) {
	rec, err := o.stage1.Run(energy)
	if err != nil {
		return NotificationRecord{}, err
	}
	o.logger.Info("signal analysis complete source=%s level=%s", rec.Source, rec.Level)

	notif, err := o.stage2.Run(rec)
	if err != nil {
		return NotificationRecord{}, err
	}
	o.logger.Info("notification synthesized status=%s energy=%.1f", notif.Status, notif.Energy)
	return notif, nil
}
