package graph

import "fmt"

var (
	// ErrDuplicateNode is returned when a node id is added twice to the same
	// graph. Node ids are unique within a graph.
	ErrDuplicateNode = fmt.Errorf("duplicate node")

	// ErrUnknownNode is returned when an operation references a node id that
	// was never added to the graph.
	ErrUnknownNode = fmt.Errorf("unknown node")
)
