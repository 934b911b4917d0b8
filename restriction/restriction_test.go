package restriction_test

import (
	"testing"

	"github.com/katalvlaran/chway/model"
	"github.com/katalvlaran/chway/restriction"
	"github.com/stretchr/testify/require"
)

func TestIsNotRestriction(t *testing.T) {
	m := restriction.New([]model.TurnRestriction{
		{FromNode: 1, ViaNode: 2, ToNode: 3, IsOnly: false},
	})
	require.Equal(t, 1, m.Len())
	require.True(t, m.IsRestricted(1, 2, 3))
	require.False(t, m.IsRestricted(1, 2, 4))
	require.Equal(t, restriction.NoNode, m.EmanatingIsOnly(1, 2))
}

func TestIsOnlySupersedesIsNot(t *testing.T) {
	m := restriction.New([]model.TurnRestriction{
		{FromNode: 1, ViaNode: 2, ToNode: 3, IsOnly: false},
		{FromNode: 1, ViaNode: 2, ToNode: 4, IsOnly: false},
		{FromNode: 1, ViaNode: 2, ToNode: 5, IsOnly: true},
	})
	require.Equal(t, 1, m.Len())
	require.EqualValues(t, 5, m.EmanatingIsOnly(1, 2))
	require.False(t, m.IsRestricted(1, 2, 3))
	require.False(t, m.IsRestricted(1, 2, 4))
}

func TestOnlyOneIsOnlyPerSource(t *testing.T) {
	m := restriction.New([]model.TurnRestriction{
		{FromNode: 1, ViaNode: 2, ToNode: 5, IsOnly: true},
		{FromNode: 1, ViaNode: 2, ToNode: 6, IsOnly: true},
	})
	require.Equal(t, 1, m.Len())
	require.EqualValues(t, 5, m.EmanatingIsOnly(1, 2))
}

func TestUnrelatedSourceUnaffected(t *testing.T) {
	m := restriction.New([]model.TurnRestriction{
		{FromNode: 1, ViaNode: 2, ToNode: 3, IsOnly: false},
	})
	require.Equal(t, restriction.NoNode, m.EmanatingIsOnly(9, 9))
	require.False(t, m.IsRestricted(9, 9, 9))
}
