// Package nexus provides a high-level façade over the activation graph, the
// pattern scorer and the cycle controller, enabling rapid construction of
// small reasoning pipelines. Most applications interact with this package by:
//  1. Creating a Nexus via New() (optionally overriding the graph, memory or
//     formatter)
//  2. Running one or more reasoning cycles via Step()
//  3. Rendering the accumulated Report()
//
// The façade delegates computation to the cycle.Controller while keeping
// setup and usage ergonomics concise. All defaults are safe for local use:
// the built-in knowledge seed graph, an in-memory principle store, the
// default hypothesis template and a no-op logger.
package nexus

import (
	"github.com/nexusmind/nexus/cycle"
	"github.com/nexusmind/nexus/graph"
	"github.com/nexusmind/nexus/hypothesis"
	"github.com/nexusmind/nexus/knowledge"
	"github.com/nexusmind/nexus/logging"
	"github.com/nexusmind/nexus/memory"
)

// Options configures the Nexus instance.
type Options struct {
	// Graph is the knowledge graph to reason over. Defaults to the built-in
	// seed knowledge base.
	Graph *graph.Graph

	// Memory records accepted principles and hypotheses across cycles.
	// Defaults to a fresh in-memory store.
	Memory cycle.Memory

	// Formatter renders hypothesis text. Defaults to the built-in template.
	Formatter cycle.Formatter

	// Threshold gates principle acceptance (default cycle.DefaultThreshold).
	Threshold float64

	// ResetActivations zeroes activations at the start of each cycle instead
	// of the default cumulative semantics.
	ResetActivations bool

	// SynthesisTrigger is the principle whose acceptance unlocks creative
	// synthesis in the report. Defaults to the golden ratio concept.
	SynthesisTrigger string

	// Logger defaults to NoOp.
	Logger logging.Logger
}

// Nexus is the high-level façade aggregating the graph, the controller and
// the caller-owned memory.
type Nexus struct {
	opts       Options
	controller *cycle.Controller
}

// New creates a new Nexus instance with optional overrides. Any unset
// dependency is initialized with its built-in default.
func New(optFns ...func(o *Options)) *Nexus {
	opts := Options{
		Memory:           memory.NewInMemoryStore(),
		Formatter:        hypothesis.NewTemplateFormatter(),
		Threshold:        cycle.DefaultThreshold,
		SynthesisTrigger: knowledge.ConceptGoldenRatio,
		Logger:           logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Graph == nil {
		opts.Graph = knowledge.SeedGraph(func(o *graph.Options) { o.Logger = opts.Logger })
	}

	ctrl := cycle.NewController(opts.Graph, opts.Memory, opts.Formatter, func(o *cycle.Options) {
		o.Threshold = opts.Threshold
		o.ResetActivations = opts.ResetActivations
		o.Logger = opts.Logger
	})

	return &Nexus{opts: opts, controller: ctrl}
}

// Graph returns the underlying knowledge graph.
func (n *Nexus) Graph() *graph.Graph { return n.opts.Graph }

// Memory returns the caller-owned principle memory.
func (n *Nexus) Memory() cycle.Memory { return n.opts.Memory }

// Step runs exactly one reasoning cycle with the given raw signal energy.
func (n *Nexus) Step(energy float64) (cycle.Outcome, error) {
	return n.controller.Step(energy)
}

// Report summarizes everything derived so far, including the creative
// synthesis melody when the trigger principle has been accepted.
func (n *Nexus) Report() hypothesis.Report {
	r := hypothesis.Report{
		Principles: n.opts.Memory.Principles(),
		Hypotheses: n.opts.Memory.Hypotheses(),
	}
	if m, ok := hypothesis.Synthesize(r.Principles, n.opts.SynthesisTrigger); ok {
		r.Melody = m
	}
	return r
}
