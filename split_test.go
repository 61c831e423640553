package bonsai

import (
	"testing"

	"github.com/pbanos/bonsai/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestSplit(t *testing.T) {
	s := mustDataset(t, []dataset.Sample{{1}, {2}, {8}, {9}}, []int{0, 0, 1, 1})
	sp, ok, err := BestSplit(s)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Split{Feature: 0, Threshold: 2, Score: 0}, sp)
}

func TestBestSplitPicksBestFeature(t *testing.T) {
	s := mustDataset(t,
		[]dataset.Sample{{4, 10}, {1, 20}, {3, 30}, {2, 40}},
		[]int{0, 0, 1, 1},
	)
	sp, ok, err := BestSplit(s)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, sp.Feature)
	assert.Equal(t, 20.0, sp.Threshold)
	assert.Equal(t, 0.0, sp.Score)
}

func TestBestSplitFirstCandidateWinsTies(t *testing.T) {
	// both features separate the labels perfectly, as do several
	// thresholds of the second one
	s := mustDataset(t,
		[]dataset.Sample{{5, 1}, {6, 1}, {7, 2}},
		[]int{0, 0, 1},
	)
	sp, ok, err := BestSplit(s)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0, sp.Feature)
	assert.Equal(t, 6.0, sp.Threshold)

	s = mustDataset(t,
		[]dataset.Sample{{3}, {1}, {2}, {4}},
		[]int{0, 1, 0, 1},
	)
	sp, ok, err = BestSplit(s)
	require.NoError(t, err)
	require.True(t, ok)
	// thresholds 3 and 1 both score 1/3, 3 is seen first
	assert.Equal(t, 3.0, sp.Threshold)
	assert.InDelta(t, 1.0/3.0, sp.Score, 1e-9)
}

func TestBestSplitNeverLeavesAnEmptySide(t *testing.T) {
	s := mustDataset(t,
		[]dataset.Sample{{1, 7}, {2, 7}, {2, 7}, {3, 7}, {9, 7}},
		[]int{1, 0, 1, 0, 0},
	)
	sp, ok, err := BestSplit(s)
	require.NoError(t, err)
	require.True(t, ok)
	left, right := s.Partition(sp.Feature, sp.Threshold)
	assert.NotZero(t, left.Count())
	assert.NotZero(t, right.Count())
	assert.Equal(t, 0, sp.Feature)
}

func TestBestSplitWithoutValidSplit(t *testing.T) {
	s := mustDataset(t, []dataset.Sample{{2, 2}, {2, 2}}, []int{0, 1})
	_, ok, err := BestSplit(s)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = BestSplit(mustDataset(t, nil, nil))
	assert.Equal(t, dataset.ErrEmptyLabels, err)
	assert.False(t, ok)
}
