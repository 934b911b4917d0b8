package bulkvector_test

import (
	"testing"

	"github.com/katalvlaran/chway/bulkvector"
	"github.com/stretchr/testify/require"
)

func TestVectorPushBackAndIndex(t *testing.T) {
	v := bulkvector.New[int](4)
	for i := 0; i < 10; i++ {
		v.PushBack(i)
	}
	require.Equal(t, 10, v.Len())
	for i := 0; i < 10; i++ {
		require.Equal(t, i, v.Index(i))
	}
}

func TestVectorSpansMultipleBlocks(t *testing.T) {
	v := bulkvector.New[int](3)
	for i := 0; i < 7; i++ {
		v.PushBack(i * i)
	}
	require.Equal(t, 7, v.Len())
	require.Equal(t, 36, v.Index(6))
}

func TestVectorSwap(t *testing.T) {
	a := bulkvector.New[string](2)
	a.PushBack("a0")
	a.PushBack("a1")
	b := bulkvector.New[string](2)
	b.PushBack("b0")

	a.Swap(b)
	require.Equal(t, 1, a.Len())
	require.Equal(t, "b0", a.Index(0))
	require.Equal(t, 2, b.Len())
	require.Equal(t, "a1", b.Index(1))
}

func TestVectorConsumeTo(t *testing.T) {
	v := bulkvector.New[int](2)
	for i := 0; i < 5; i++ {
		v.PushBack(i)
	}
	var got []int
	v.ConsumeTo(func(block []int) {
		got = append(got, block...)
	})
	require.Equal(t, []int{0, 1, 2, 3, 4}, got)
	require.Equal(t, 0, v.Len())
}

func TestVectorClear(t *testing.T) {
	v := bulkvector.New[int](4)
	v.PushBack(1)
	v.Clear()
	require.Equal(t, 0, v.Len())
}
