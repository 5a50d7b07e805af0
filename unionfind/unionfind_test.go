package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coregraph/unionfind"
)

// TestDSU_UnionsMergeIntoExpectedComponents checks 10 elements, unions
// (0,1),(2,3),(1,3),(4,5); find(0)==find(3), find(0)!=find(4), and the
// element set splits into six components: {0,1,2,3}, {4,5}, {6}, {7}, {8}, {9}.
func TestDSU_UnionsMergeIntoExpectedComponents(t *testing.T) {
	d := unionfind.New(10)
	d.Union(0, 1)
	d.Union(2, 3)
	d.Union(1, 3)
	d.Union(4, 5)

	require.True(t, d.Connected(0, 3))
	require.False(t, d.Connected(0, 4))
	require.Equal(t, 6, d.Components())
}

func TestDSU_UnionIdempotent(t *testing.T) {
	d := unionfind.New(4)
	require.True(t, d.Union(0, 1))
	require.False(t, d.Union(0, 1))
	require.Equal(t, 3, d.Components())
}

func TestSplitFindMin_BasicSegments(t *testing.T) {
	seq := []int{10, 11, 12, 13, 14}
	labels := map[int]int64{10: 5, 11: 2, 12: 9, 13: 1, 14: 7}
	sfm := unionfind.NewSplitFindMin(seq, labels)

	// One segment initially: min over the whole sequence is element 13 (label 1).
	require.Equal(t, 13, sfm.GetMin(sfm.Find(10)))

	sfm.Split(11) // segments: [10,11] | [12,13,14]
	require.Equal(t, 11, sfm.GetMin(sfm.Find(10))) // min(5,2) -> label 2
	require.Equal(t, 13, sfm.GetMin(sfm.Find(12))) // min(9,1,7) -> label 1

	sfm.Split(12) // segments: [10,11] | [12] | [13,14]
	require.Equal(t, 12, sfm.GetMin(sfm.Find(12)))
	require.Equal(t, 13, sfm.GetMin(sfm.Find(13)))
}
