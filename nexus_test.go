package nexus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusmind/nexus/cycle"
	"github.com/nexusmind/nexus/graph"
	"github.com/nexusmind/nexus/hypothesis"
	"github.com/nexusmind/nexus/knowledge"
	"github.com/nexusmind/nexus/memory"
)

func TestNew_DefaultsDeriveGoldenRatio(t *testing.T) {
	n := New()

	out, err := n.Step(10.0)
	require.NoError(t, err)
	assert.Equal(t, cycle.StateAccepted, out.State)
	assert.Equal(t, knowledge.ConceptGoldenRatio, out.Principle)
	assert.InDelta(t, 0.8, out.Confidence, 1e-9)

	r := n.Report()
	require.Len(t, r.Principles, 1)
	require.Len(t, r.Hypotheses, 1)
	assert.NotEmpty(t, r.Melody) // golden ratio unlocks synthesis
}

func TestStep_RepeatedIsAlreadyConfirmed(t *testing.T) {
	n := New()

	_, err := n.Step(10.0)
	require.NoError(t, err)
	out, err := n.Step(10.0)
	require.NoError(t, err)

	assert.Equal(t, cycle.StateAlreadyConfirmed, out.State)
	assert.Len(t, n.Memory().Hypotheses(), 1)
}

func TestNew_SharedMemoryAcrossInstances(t *testing.T) {
	mem := memory.NewInMemoryStore()

	first := New(func(o *Options) { o.Memory = mem })
	_, err := first.Step(10.0)
	require.NoError(t, err)

	second := New(func(o *Options) { o.Memory = mem })
	out, err := second.Step(10.0)
	require.NoError(t, err)
	assert.Equal(t, cycle.StateAlreadyConfirmed, out.State)
}

func TestNew_CustomGraph(t *testing.T) {
	g := graph.New()
	_, err := g.AddNode("solo", 1.0, func(o *graph.NodeOptions) { o.Type = "Concept" })
	require.NoError(t, err)

	n := New(func(o *Options) { o.Graph = g })
	out, err := n.Step(5.0)
	require.NoError(t, err)
	assert.Equal(t, cycle.StateAwaitingData, out.State)

	r := n.Report()
	assert.Empty(t, r.Principles)
	assert.Empty(t, r.Melody)
}

func TestReport_RendersText(t *testing.T) {
	n := New()
	_, err := n.Step(10.0)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, hypothesis.RenderText(&sb, n.Report()))
	out := sb.String()
	assert.Contains(t, out, "'Golden Ratio' (Confidence: 80.00%)")
	assert.Contains(t, out, "HYPOTHESIS:")
	assert.Contains(t, out, "Creative Synthesis")
}

func TestNew_CustomThreshold(t *testing.T) {
	n := New(func(o *Options) { o.Threshold = 0.9 })

	out, err := n.Step(10.0)
	require.NoError(t, err)
	assert.Equal(t, cycle.StateBelowThreshold, out.State) // 0.8 < 0.9
	assert.Empty(t, n.Memory().Principles())
}
