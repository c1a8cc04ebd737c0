package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedGraph_Shape(t *testing.T) {
	g := SeedGraph()

	assert.Equal(t, 5, g.Len())
	assert.Len(t, g.Edges(), 4)

	golden, ok := g.Node(ConceptGoldenRatio)
	require.True(t, ok)
	assert.Equal(t, "Geometry", golden.Domain)
	assert.Equal(t, "Constant", golden.Type)
	assert.Zero(t, golden.Activation)

	assert.Equal(t, 3, g.InDegree(ConceptGoldenRatio))
	assert.Equal(t, 1, g.InDegree(ConceptMusicalHarmony))
	assert.Equal(t, 0, g.InDegree(ConceptDNAStructure))

	var total float64
	for _, e := range g.InEdges(ConceptGoldenRatio) {
		total += e.Weight
	}
	assert.InDelta(t, 2.4, total, 1e-9)
}

func TestSignalAnalysisGraph_Shape(t *testing.T) {
	g := SignalAnalysisGraph()
	assert.Equal(t, 4, g.Len())

	radar, ok := g.Node(NodeRadarContact)
	require.True(t, ok)
	assert.Len(t, radar.Neighbors(), 2)
}

func TestSynthesisGraph_Shape(t *testing.T) {
	g := SynthesisGraph()
	assert.Equal(t, 3, g.Len())

	will, ok := g.Node(NodeWill)
	require.True(t, ok)
	require.Len(t, will.Neighbors(), 1)
	assert.Equal(t, NodeThreatAssessment, will.Neighbors()[0].ID)
}

const sampleDefinition = `
name: test-base
nodes:
  - id: alpha
    domain: Physics
    type: Constant
  - id: beta
    domain: Biology
    type: Structure
    base: 0.5
  - id: gamma
links:
  - a: alpha
    b: gamma
edges:
  - source: beta
    target: alpha
    weight: 0.9
    relation: supports
`

func TestLoad_Definition(t *testing.T) {
	g, err := Load(strings.NewReader(sampleDefinition))
	require.NoError(t, err)

	assert.Equal(t, "test-base", g.Metadata["name"])
	assert.Equal(t, 3, g.Len())

	alpha, ok := g.Node("alpha")
	require.True(t, ok)
	assert.Equal(t, "Physics", alpha.Domain)
	assert.Equal(t, 1.0, alpha.BaseParam) // default base

	beta, ok := g.Node("beta")
	require.True(t, ok)
	assert.Equal(t, 0.5, beta.BaseParam)

	assert.Equal(t, 1, g.InDegree("alpha"))
	require.NoError(t, g.Resonate("alpha", 2.0))
	gamma, _ := g.Node("gamma")
	assert.Equal(t, 1.0, gamma.Activation) // linked neighbor received half
}

func TestLoad_UnknownLinkEndpoint(t *testing.T) {
	bad := `
name: broken
nodes:
  - id: only
links:
  - a: only
    b: ghost
`
	_, err := Load(strings.NewReader(bad))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(strings.NewReader("nodes: [unclosed"))
	assert.Error(t, err)
}

func TestLoad_DuplicateNode(t *testing.T) {
	dup := `
name: dup
nodes:
  - id: twice
  - id: twice
`
	_, err := Load(strings.NewReader(dup))
	assert.Error(t, err)
}
