package bonsai

import (
	"testing"

	"github.com/pbanos/bonsai/dataset"
	"github.com/pbanos/bonsai/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDataset(t *testing.T, samples []dataset.Sample, labels []int) *dataset.Dataset {
	s, err := dataset.New(samples, labels)
	require.NoError(t, err)
	return s
}

func rootOf(t *testing.T, tr *tree.Tree) *tree.Node {
	n, err := tr.Get(tr.RootID)
	require.NoError(t, err)
	return n
}

func TestGrowSeparableDataset(t *testing.T) {
	s := mustDataset(t, []dataset.Sample{{1}, {2}, {8}, {9}}, []int{0, 0, 1, 1})
	tr, err := Grow(s, 1)
	require.NoError(t, err)
	root := rootOf(t, tr)
	assert.False(t, root.Leaf)
	assert.Equal(t, 0, root.Feature)
	assert.Equal(t, 2.0, root.Threshold)
	assert.Equal(t, 3, tr.Count())

	p, err := tr.Predict(dataset.Sample{1})
	require.NoError(t, err)
	assert.Equal(t, 0, p)
	p, err = tr.Predict(dataset.Sample{9})
	require.NoError(t, err)
	assert.Equal(t, 1, p)
}

func TestGrowSingleRow(t *testing.T) {
	s := mustDataset(t, []dataset.Sample{{5}}, []int{1})
	for _, maxDepth := range []int{0, 1, 5} {
		tr, err := Grow(s, maxDepth)
		require.NoError(t, err)
		root := rootOf(t, tr)
		assert.True(t, root.Leaf)
		assert.Equal(t, 1, root.Label)
		assert.Equal(t, 1, tr.Count())
	}
}

func TestGrowPureDataset(t *testing.T) {
	s := mustDataset(t,
		[]dataset.Sample{{1, 4, 2}, {3, 0, 7}, {5, 5, 5}, {0, 2, 9}},
		[]int{0, 0, 0, 0},
	)
	for _, maxDepth := range []int{0, 2, DefaultMaxDepth} {
		tr, err := Grow(s, maxDepth)
		require.NoError(t, err)
		root := rootOf(t, tr)
		assert.True(t, root.Leaf)
		assert.Equal(t, 0, root.Label)
	}
}

func TestGrowIdenticalSamples(t *testing.T) {
	for _, tc := range []struct {
		labels   []int
		expected int
	}{
		{[]int{1, 0, 1}, 1},
		{[]int{0, 1, 0}, 0},
		{[]int{1, 0, 0, 1}, 0},
	} {
		samples := make([]dataset.Sample, len(tc.labels))
		for i := range samples {
			samples[i] = dataset.Sample{3, 3}
		}
		tr, err := Grow(mustDataset(t, samples, tc.labels), DefaultMaxDepth)
		require.NoError(t, err)
		root := rootOf(t, tr)
		assert.True(t, root.Leaf)
		assert.Equal(t, tc.expected, root.Label, "majority label for %v", tc.labels)
	}
}

func TestGrowMaxDepthLeafTakesFirstLabel(t *testing.T) {
	s := mustDataset(t, []dataset.Sample{{1}, {2}, {3}}, []int{0, 1, 1})
	tr, err := Grow(s, 0)
	require.NoError(t, err)
	root := rootOf(t, tr)
	assert.True(t, root.Leaf)
	assert.Equal(t, 0, root.Label)
}

func TestGrowRespectsMaxDepth(t *testing.T) {
	samples := make([]dataset.Sample, 0, 32)
	labels := make([]int, 0, 32)
	for i := 0; i < 32; i++ {
		samples = append(samples, dataset.Sample{float64(i), float64(i % 3)})
		labels = append(labels, (i/2)%2)
	}
	s := mustDataset(t, samples, labels)
	for _, maxDepth := range []int{0, 1, 2, 3, 5} {
		tr, err := Grow(s, maxDepth)
		require.NoError(t, err)
		depth, err := tr.Depth()
		require.NoError(t, err)
		assert.True(t, depth <= maxDepth, "depth %d exceeds %d", depth, maxDepth)
		assert.Equal(t, maxDepth, tr.MaxDepth)
	}
}

func TestGrowFitsTrainingData(t *testing.T) {
	s := mustDataset(t,
		[]dataset.Sample{{1, 1}, {1, 9}, {9, 1}, {9, 9}},
		[]int{0, 1, 1, 0},
	)
	tr, err := Grow(s, DefaultMaxDepth)
	require.NoError(t, err)
	e, err := tr.Test(s)
	require.NoError(t, err)
	assert.Equal(t, 1.0, e.Accuracy())
}

func TestGrowEmptyDataset(t *testing.T) {
	s := mustDataset(t, nil, nil)
	tr, err := Grow(s, DefaultMaxDepth)
	assert.Nil(t, tr)
	assert.Equal(t, ErrCannotGrowFromEmptyDataset, err)

	_, err = tr.Predict(dataset.Sample{1})
	assert.Equal(t, tree.ErrNilTree, err)
}
