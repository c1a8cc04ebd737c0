package knowledge

import "github.com/nexusmind/nexus/graph"

// Concept ids of the built-in knowledge base.
const (
	ConceptGoldenRatio    = "Golden Ratio"
	ConceptDNAStructure   = "DNA Structure"
	ConceptFibonacci      = "Fibonacci Sequence"
	ConceptMusicalHarmony = "Musical Harmony"
	ConceptPerfectFifth   = "Perfect Fifth (Ratio 3:2)"
)

// SeedGraph builds the built-in interdisciplinary knowledge base: five
// concepts across geometry, biology, mathematics and music, connected by four
// weighted relations converging on the golden ratio.
func SeedGraph(optFns ...func(o *graph.Options)) *graph.Graph {
	g := graph.New(optFns...)
	g.Metadata["name"] = "nexus-seed"
	g.Metadata["domains"] = "Science, Geometry, Music"

	// Construction over a fixed node set cannot fail.
	must(g.AddNode(ConceptGoldenRatio, 1.0, func(o *graph.NodeOptions) {
		o.Domain = "Geometry"
		o.Type = "Constant"
	}))
	must(g.AddNode(ConceptDNAStructure, 1.0, func(o *graph.NodeOptions) {
		o.Domain = "Biology"
		o.Type = "Structure"
	}))
	must(g.AddNode(ConceptFibonacci, 1.0, func(o *graph.NodeOptions) {
		o.Domain = "Mathematics"
		o.Type = "Sequence"
	}))
	must(g.AddNode(ConceptMusicalHarmony, 1.0, func(o *graph.NodeOptions) {
		o.Domain = "Music"
		o.Type = "Principle"
	}))
	must(g.AddNode(ConceptPerfectFifth, 1.0, func(o *graph.NodeOptions) {
		o.Domain = "Music"
		o.Type = "Constant"
	}))

	mustErr(g.AddEdge(ConceptDNAStructure, ConceptGoldenRatio, 0.8, "exhibits proportions of"))
	mustErr(g.AddEdge(ConceptFibonacci, ConceptGoldenRatio, 1.0, "converges to"))
	mustErr(g.AddEdge(ConceptPerfectFifth, ConceptMusicalHarmony, 1.0, "is a cornerstone of"))
	mustErr(g.AddEdge(ConceptMusicalHarmony, ConceptGoldenRatio, 0.6, "is aesthetically linked to"))

	return g
}

func must(_ *graph.Node, err error) {
	if err != nil {
		panic(err)
	}
}

func mustErr(err error) {
	if err != nil {
		panic(err)
	}
}
