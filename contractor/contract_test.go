package contractor_test

import (
	"testing"

	"github.com/katalvlaran/chway/bulkvector"
	"github.com/katalvlaran/chway/contractor"
	"github.com/katalvlaran/chway/model"
	"github.com/stretchr/testify/require"
)

// square builds A(0)<->B(1)<->C(2)<->D(3)<->A(0), unit weight, bidirectional.
func square() []model.EdgeBasedEdge {
	mk := func(a, b uint32) []model.EdgeBasedEdge {
		return []model.EdgeBasedEdge{
			{Source: a, Target: b, Weight: 1},
			{Source: b, Target: a, Weight: 1},
		}
	}
	var edges []model.EdgeBasedEdge
	edges = append(edges, mk(0, 1)...)
	edges = append(edges, mk(1, 2)...)
	edges = append(edges, mk(2, 3)...)
	edges = append(edges, mk(3, 0)...)
	return edges
}

func TestContractAssignsDistinctRanks(t *testing.T) {
	result, err := contractor.Contract(4, square(), contractor.NewOptions())
	require.NoError(t, err)
	seen := make(map[uint32]bool)
	for _, r := range result.Rank {
		require.False(t, seen[r], "duplicate rank")
		seen[r] = true
	}
	require.Len(t, seen, 4)
}

func TestContractZeroNodesErrors(t *testing.T) {
	_, err := contractor.Contract(0, nil, contractor.NewOptions())
	require.ErrorIs(t, err, contractor.ErrNoNodes)
}

func TestBuildGraphsUpwardOnly(t *testing.T) {
	result, err := contractor.Contract(4, square(), contractor.NewOptions())
	require.NoError(t, err)
	fwd, bwd, _, _ := contractor.BuildGraphs(result, 4)
	require.EqualValues(t, 4, fwd.NumNodes())
	require.EqualValues(t, 4, bwd.NumNodes())

	for u := uint32(0); u < 4; u++ {
		for e := fwd.BeginEdges(u); e < fwd.EndEdges(u); e++ {
			require.Less(t, result.Rank[u], result.Rank[fwd.Target(e)])
		}
	}
}

func TestContractConsumingMatchesSliceContract(t *testing.T) {
	edges := square()

	vec := bulkvector.New[model.EdgeBasedEdge](2)
	for _, e := range edges {
		vec.PushBack(e)
	}

	fromSlice, err := contractor.Contract(4, edges, contractor.NewOptions())
	require.NoError(t, err)
	fromVector, err := contractor.ContractConsuming(4, vec, contractor.NewOptions())
	require.NoError(t, err)

	require.Equal(t, fromSlice.Rank, fromVector.Rank)
	require.Zero(t, vec.Len(), "the edge vector must be fully consumed")
}
