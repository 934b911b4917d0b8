package components_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chway/components"
	"github.com/katalvlaran/chway/model"
)

func TestAnalyze_TwoComponents(t *testing.T) {
	// nodes 0-2 form one path, nodes 3-4 a separate pair.
	edges := []model.ImportEdge{
		{Source: 0, Target: 1, Flags: model.EdgeFlags{Forward: true}},
		{Source: 1, Target: 2, Flags: model.EdgeFlags{Forward: true}},
		{Source: 3, Target: 4, Flags: model.EdgeFlags{Backward: true}},
	}

	result := components.Analyze(5, edges)

	require.Len(t, result.Size, 2)
	assert.Equal(t, result.ComponentOf[0], result.ComponentOf[1])
	assert.Equal(t, result.ComponentOf[1], result.ComponentOf[2])
	assert.Equal(t, result.ComponentOf[3], result.ComponentOf[4])
	assert.NotEqual(t, result.ComponentOf[0], result.ComponentOf[3])
}

func TestAnalyze_IsolatedNodeIsOwnComponent(t *testing.T) {
	edges := []model.ImportEdge{
		{Source: 0, Target: 1, Flags: model.EdgeFlags{Forward: true}},
	}
	result := components.Analyze(3, edges)

	require.Len(t, result.Size, 2)
	assert.Equal(t, uint32(1), result.Size[result.ComponentOf[2]])
}

func TestTinyNodes_DefaultThreshold(t *testing.T) {
	edges := []model.ImportEdge{
		{Source: 0, Target: 1, Flags: model.EdgeFlags{Forward: true}},
	}
	result := components.Analyze(3, edges)

	tiny := components.TinyNodes(result, components.Options{})
	assert.True(t, tiny[0])
	assert.True(t, tiny[1])
	assert.True(t, tiny[2]) // isolated node 2 is also tiny under the 1000 default
}

func TestTinyNodes_CustomThreshold(t *testing.T) {
	edges := []model.ImportEdge{
		{Source: 0, Target: 1, Flags: model.EdgeFlags{Forward: true}},
		{Source: 1, Target: 2, Flags: model.EdgeFlags{Forward: true}},
	}
	result := components.Analyze(3, edges)

	tiny := components.TinyNodes(result, components.Options{TinyComponentMaxSize: 2})
	assert.False(t, tiny[0]) // component size 3 >= 2, not tiny
}

func TestResult_IsTiny(t *testing.T) {
	result := components.Result{
		ComponentOf: []uint32{0, 0, 1},
		Size:        []uint32{2, 1},
	}
	assert.False(t, result.IsTiny(0, 2))
	assert.True(t, result.IsTiny(2, 2))
}
