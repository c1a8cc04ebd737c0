package graph

// Node is a named concept in the activation graph. Activation is a scalar
// accumulator: it starts at zero, only grows within a run (no automatic decay
// or clamping) and is reset solely through Graph.ResetActivations.
//
// BaseParam is fixed at construction; Domain and Type are informational tags.
// A node with a non-empty Type participates in confluence scoring.
type Node struct {
	ID         string
	Domain     string
	Type       string
	BaseParam  float64
	Activation float64

	neighbors []*Node // non-owning references, insertion order
}

// NodeOptions configures optional node attributes at creation time.
type NodeOptions struct {
	// Domain tags the knowledge domain the concept belongs to (informational).
	Domain string
	// Type marks the node kind (Constant, Structure, Principle, ...). Nodes
	// without a type are excluded from confluence scoring.
	Type string
}

// Neighbors returns a copy of the node's direct neighbor list in registration
// order. The copy prevents callers from reordering internal propagation state.
func (n *Node) Neighbors() []*Node {
	out := make([]*Node, len(n.neighbors))
	copy(out, n.neighbors)
	return out
}

// linked reports whether other is already a direct neighbor.
func (n *Node) linked(other *Node) bool {
	for _, nb := range n.neighbors {
		if nb == other {
			return true
		}
	}
	return false
}
