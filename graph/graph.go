package graph

import (
	"fmt"

	"github.com/nexusmind/nexus/logging"
)

// PropagationFactor is the fraction of injected energy passed to each direct
// neighbor during a Resonate call.
const PropagationFactor = 0.5

// Edge is a directed, weighted, labeled connection used for confluence
// scoring. A node's in-edges are all edges whose Target is that node.
type Edge struct {
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Weight   float64 `json:"weight"`
	Relation string  `json:"relation,omitempty"`
}

// Options configures a Graph instance.
type Options struct {
	// Logger receives debug output for propagation steps. Defaults to NoOp.
	Logger logging.Logger
}

// Graph owns a set of nodes plus their neighbor links and directed edges.
// Nodes iterate in insertion order everywhere (settling, scoring, dominance)
// so repeated runs over the same construction sequence are reproducible.
type Graph struct {
	nodes map[string]*Node
	order []*Node
	edges []Edge

	// Metadata carries informational graph-level attributes (name, version).
	Metadata map[string]string

	logger logging.Logger
}

// New creates an empty graph with optional overrides.
func New(optFns ...func(o *Options)) *Graph {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &Graph{
		nodes:    make(map[string]*Node),
		Metadata: make(map[string]string),
		logger:   opts.Logger,
	}
}

// AddNode registers a new node with the given id and base parameter. The id
// must be unique within the graph; reuse returns ErrDuplicateNode.
func (g *Graph) AddNode(id string, base float64, optFns ...func(o *NodeOptions)) (*Node, error) {
	if _, exists := g.nodes[id]; exists {
		return nil, fmt.Errorf("add node %q: %w", id, ErrDuplicateNode)
	}
	opts := NodeOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	n := &Node{ID: id, Domain: opts.Domain, Type: opts.Type, BaseParam: base}
	g.nodes[id] = n
	g.order = append(g.order, n)
	return n, nil
}

// Connect registers a symmetric neighbor link between two existing nodes so
// that energy injected into either propagates to the other. Idempotent for an
// already linked pair.
func (g *Graph) Connect(a, b string) error {
	na, ok := g.nodes[a]
	if !ok {
		return fmt.Errorf("connect %q: %w", a, ErrUnknownNode)
	}
	nb, ok := g.nodes[b]
	if !ok {
		return fmt.Errorf("connect %q: %w", b, ErrUnknownNode)
	}
	g.link(na, nb)
	return nil
}

// AddEdge registers a directed, weighted edge for confluence scoring. The
// endpoints are also linked as neighbors so scoring and propagation operate
// on one structure. Weights are expected to be positive; non-positive weights
// never contribute to a candidate score.
func (g *Graph) AddEdge(source, target string, weight float64, relation string) error {
	ns, ok := g.nodes[source]
	if !ok {
		return fmt.Errorf("edge source %q: %w", source, ErrUnknownNode)
	}
	nt, ok := g.nodes[target]
	if !ok {
		return fmt.Errorf("edge target %q: %w", target, ErrUnknownNode)
	}
	g.edges = append(g.edges, Edge{Source: source, Target: target, Weight: weight, Relation: relation})
	g.link(ns, nt)
	return nil
}

func (g *Graph) link(a, b *Node) {
	if !a.linked(b) {
		a.neighbors = append(a.neighbors, b)
	}
	if !b.linked(a) {
		b.neighbors = append(b.neighbors, a)
	}
}

// Resonate injects energy into a node and propagates half of it to each
// direct neighbor. The propagation is a single hop: it never cascades through
// a neighbor's own neighbors within one call.
func (g *Graph) Resonate(id string, energy float64) error {
	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("resonate %q: %w", id, ErrUnknownNode)
	}
	n.Activation += energy
	for _, nb := range n.neighbors {
		nb.Activation += energy * PropagationFactor
	}
	g.logger.Debug("resonated node=%s energy=%.3f neighbors=%d", id, energy, len(n.neighbors))
	return nil
}

// Settle runs a fixed number of re-resonance rounds. In each round every node
// whose activation exceeds threshold re-resonates with activation*decay.
// Nodes are visited in insertion order, keeping results deterministic.
func (g *Graph) Settle(iterations int, threshold, decay float64) {
	for i := 0; i < iterations; i++ {
		for _, n := range g.order {
			if n.Activation > threshold {
				// Error impossible: n is always a member of g.
				_ = g.Resonate(n.ID, n.Activation*decay)
			}
		}
	}
}

// Node returns the node for the given id.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns the graph's nodes in insertion order. The slice is a copy;
// the pointed-to nodes are the live graph nodes.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.order))
	copy(out, g.order)
	return out
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.order) }

// Edges returns a copy of all directed edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// InEdges returns the directed edges targeting the given node, in insertion
// order.
func (g *Graph) InEdges(id string) []Edge {
	var in []Edge
	for _, e := range g.edges {
		if e.Target == id {
			in = append(in, e)
		}
	}
	return in
}

// InDegree returns the number of directed edges targeting the given node.
func (g *Graph) InDegree(id string) int { return len(g.InEdges(id)) }

// Dominant returns the node with the highest activation, preferring the
// earlier-inserted node on ties. Returns false for an empty graph.
func (g *Graph) Dominant() (*Node, bool) {
	if len(g.order) == 0 {
		return nil, false
	}
	best := g.order[0]
	for _, n := range g.order[1:] {
		if n.Activation > best.Activation {
			best = n
		}
	}
	return best, true
}

// ResetActivations zeroes every node's activation. Callers that want
// per-cycle rather than cumulative activation semantics invoke this between
// cycles; the graph never resets itself.
func (g *Graph) ResetActivations() {
	for _, n := range g.order {
		n.Activation = 0
	}
}
