package cycle

import (
	"fmt"
	"time"

	"github.com/nexusmind/nexus/graph"
	"github.com/nexusmind/nexus/internal/util"
	"github.com/nexusmind/nexus/logging"
	"github.com/nexusmind/nexus/pattern"
)

// Default tuning constants for a cycle. Threshold and decay match the
// observed source constants; the settling bounds keep re-resonance from
// amplifying small graphs indefinitely.
const (
	// DefaultThreshold is the confidence level a candidate must exceed to be
	// accepted as a principle.
	DefaultThreshold = 0.7
	// DefaultSettleIterations bounds the settling rounds per cycle.
	DefaultSettleIterations = 2
	// DefaultSettleThreshold is the activation level above which a node
	// re-resonates during settling.
	DefaultSettleThreshold = 1.0
	// DefaultDecayFactor scales the energy of settling re-resonance.
	DefaultDecayFactor = 0.2
)

// Options configures a Controller.
type Options struct {
	// Threshold gates principle acceptance. Defaults to DefaultThreshold.
	Threshold float64
	// SettleIterations, SettleThreshold and DecayFactor parameterize the
	// settling pass after energy injection.
	SettleIterations int
	SettleThreshold  float64
	DecayFactor      float64
	// ResetActivations zeroes all activations at the start of each Step.
	// Off by default: activation accumulates across cycles, matching the
	// observed cumulative semantics.
	ResetActivations bool
	// Logger defaults to NoOp.
	Logger logging.Logger
}

// Outcome reports the result of one reasoning cycle. Principle and Confidence
// are set for every terminal state except StateAwaitingData; Hypothesis is
// non-nil only for StateAccepted.
type Outcome struct {
	ID         string      `json:"id"`
	Cycle      int         `json:"cycle"`
	State      State       `json:"state"`
	Principle  string      `json:"principle,omitempty"`
	Confidence float64     `json:"confidence,omitempty"`
	Hypothesis *Hypothesis `json:"hypothesis,omitempty"`
}

// Controller drives the inject -> settle -> score -> threshold-check cycle
// over a single graph. It owns no principle state; Memory is supplied by the
// caller and shared across controllers if desired.
//
// Not safe for concurrent Step calls on the same instance: the underlying
// graph mutates activations without locking.
type Controller struct {
	graph     *graph.Graph
	memory    Memory
	formatter Formatter
	opts      Options
	count     int
	state     State
}

// NewController wires a controller to a graph, a caller-owned memory and a
// hypothesis formatter.
func NewController(g *graph.Graph, mem Memory, formatter Formatter, optFns ...func(o *Options)) *Controller {
	opts := Options{
		Threshold:        DefaultThreshold,
		SettleIterations: DefaultSettleIterations,
		SettleThreshold:  DefaultSettleThreshold,
		DecayFactor:      DefaultDecayFactor,
		Logger:           logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &Controller{graph: g, memory: mem, formatter: formatter, opts: opts, state: StateAwaitingData}
}

// State returns the controller's current machine state.
func (c *Controller) State() State { return c.state }

// Count returns the number of completed cycles.
func (c *Controller) Count() int { return c.count }

// Step runs exactly one reasoning cycle: inject the raw signal energy into
// every node, settle, score, then accept, skip or reject the top candidate.
// Repeated Steps without ResetActivations accumulate activation monotonically;
// that is documented behavior, opted out of via Options.ResetActivations.
func (c *Controller) Step(energy float64) (Outcome, error) {
	c.count++
	out := Outcome{ID: util.NewID(), Cycle: c.count}

	if c.opts.ResetActivations {
		c.graph.ResetActivations()
	}

	// Entry: every node receives the raw signal.
	for _, n := range c.graph.Nodes() {
		if err := c.graph.Resonate(n.ID, energy); err != nil {
			return out, fmt.Errorf("inject cycle %d: %w", c.count, err)
		}
	}
	c.graph.Settle(c.opts.SettleIterations, c.opts.SettleThreshold, c.opts.DecayFactor)

	c.state = StateScoring
	scored := pattern.ScoreAll(c.graph)
	top, ok := pattern.TopCandidate(scored)
	if !ok {
		// Degenerate input, not an error: report and end the cycle early.
		c.opts.Logger.Info("no patterns found, awaiting more data cycle=%d", c.count)
		out.State = StateAwaitingData
		c.state = StateIdle
		return out, nil
	}

	out.Principle = top.ID
	out.Confidence = pattern.Confidence(c.graph, top.ID, top.Score)

	switch {
	case c.memory.Confirmed(top.ID):
		c.opts.Logger.Info("principle already confirmed principle=%s cycle=%d", top.ID, c.count)
		out.State = StateAlreadyConfirmed

	case out.Confidence > c.opts.Threshold:
		if err := c.memory.Accept(Principle{ID: top.ID, Confidence: out.Confidence, AcceptedAt: time.Now()}); err != nil {
			return out, fmt.Errorf("accept principle %q: %w", top.ID, err)
		}
		h := c.generateHypothesis(top.ID)
		if err := c.memory.AddHypothesis(h); err != nil {
			return out, fmt.Errorf("record hypothesis for %q: %w", top.ID, err)
		}
		c.opts.Logger.Info("principle accepted principle=%s confidence=%.2f cycle=%d", top.ID, out.Confidence, c.count)
		out.State = StateAccepted
		out.Hypothesis = &h

	default:
		c.opts.Logger.Info("confidence below threshold principle=%s confidence=%.2f cycle=%d", top.ID, out.Confidence, c.count)
		out.State = StateBelowThreshold
	}

	c.state = StateIdle
	return out, nil
}

// generateHypothesis builds the hypothesis artifact for an accepted
// principle. Domains are the distinct domain tags among the principle's
// in-neighbors, in edge insertion order.
func (c *Controller) generateHypothesis(principle string) Hypothesis {
	seen := make(map[string]bool)
	var domains []string
	for _, e := range c.graph.InEdges(principle) {
		n, ok := c.graph.Node(e.Source)
		if !ok || n.Domain == "" || seen[n.Domain] {
			continue
		}
		seen[n.Domain] = true
		domains = append(domains, n.Domain)
	}
	return Hypothesis{
		ID:        util.NewID(),
		Principle: principle,
		Domains:   domains,
		Text:      c.formatter.FormatHypothesis(principle, domains),
		CreatedAt: time.Now(),
	}
}
