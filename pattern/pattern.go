package pattern

import (
	"sort"

	"github.com/nexusmind/nexus/graph"
)

// Candidate pairs a node id with its confluence score.
type Candidate struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// ScoreAll computes the confluence score for every typed node: the sum of
// weights over all in-edges. Untyped nodes and nodes scoring <= 0 (including
// every node with in-degree 0) are excluded. The result is sorted descending
// by score with a stable, insertion-order tie-break, and is identical across
// repeated calls on an unmutated graph.
func ScoreAll(g *graph.Graph) []Candidate {
	var out []Candidate
	for _, n := range g.Nodes() {
		if n.Type == "" {
			continue
		}
		var total float64
		for _, e := range g.InEdges(n.ID) {
			total += e.Weight
		}
		if total > 0 {
			out = append(out, Candidate{ID: n.ID, Score: total})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// TopCandidate returns the highest-scored candidate, or false when the scored
// list is empty (no patterns found).
func TopCandidate(scored []Candidate) (Candidate, bool) {
	if len(scored) == 0 {
		return Candidate{}, false
	}
	return scored[0], true
}

// Confidence normalizes a confluence score by the node's in-degree. A node
// with in-degree 0 has no meaningful confidence; the zero guard returns 0
// rather than dividing.
func Confidence(g *graph.Graph, id string, score float64) float64 {
	deg := g.InDegree(id)
	if deg == 0 {
		return 0
	}
	return score / float64(deg)
}
