package sortutil

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dsgo/testutil"
)

func TestQuickSort(t *testing.T) {
	s := []int{64, 34, 25, 12, 22, 11, 90}
	QuickSort(s)
	assert.Equal(t, []int{11, 12, 22, 25, 34, 64, 90}, s)
}

func TestMergeSort(t *testing.T) {
	s := []int{64, 34, 25, 12, 22, 11, 90}
	MergeSort(s)
	assert.Equal(t, []int{11, 12, 22, 25, 34, 64, 90}, s)
}

func TestSort_EdgeCases(t *testing.T) {
	for name, sort := range map[string]func([]int){
		"quick": QuickSort[int],
		"merge": MergeSort[int],
	} {
		t.Run(name, func(t *testing.T) {
			var empty []int
			sort(empty)
			assert.Empty(t, empty)

			single := []int{5}
			sort(single)
			assert.Equal(t, []int{5}, single)

			dups := []int{3, 3, 3, 1, 1, 2}
			sort(dups)
			assert.Equal(t, []int{1, 1, 2, 3, 3, 3}, dups)

			sorted := []int{1, 2, 3, 4}
			sort(sorted)
			assert.Equal(t, []int{1, 2, 3, 4}, sorted)

			reversed := []int{4, 3, 2, 1}
			sort(reversed)
			assert.Equal(t, []int{1, 2, 3, 4}, reversed)
		})
	}
}

func TestSort_RandomAgainstOracle(t *testing.T) {
	rng := testutil.NewRNG(21)
	for _, n := range []int{2, 17, 100, 5000} {
		data := make([]int, n)
		for i := range data {
			data[i] = rng.Intn(1000)
		}
		want := slices.Clone(data)
		slices.Sort(want)

		q := slices.Clone(data)
		QuickSort(q)
		require.Equal(t, want, q, "quicksort, n=%d", n)

		m := slices.Clone(data)
		MergeSort(m)
		require.Equal(t, want, m, "mergesort, n=%d", n)
	}
}

func TestBinarySearch(t *testing.T) {
	s := []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}

	for i, v := range s {
		idx, ok := BinarySearch(s, v)
		require.True(t, ok, "value %d", v)
		assert.Equal(t, i, idx)
	}

	for _, v := range []int{0, 2, 10, 20} {
		_, ok := BinarySearch(s, v)
		assert.False(t, ok, "value %d should be absent", v)
	}

	_, ok := BinarySearch(nil, 1)
	assert.False(t, ok)

	idx, ok := BinarySearch([]string{"x"}, "x")
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}
