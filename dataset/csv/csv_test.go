package csv

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pbanos/bonsai/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDataset(t *testing.T) {
	ds, err := ReadDataset(strings.NewReader("35,1,0,2,300,1\n52, 0,1,1,4200,0\n\n28,1,1,0,-12.5,1.0\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Count())
	assert.Equal(t, 5, ds.FeatureCount())
	assert.Equal(t, dataset.Sample{28, 1, 1, 0, -12.5}, ds.Sample(2))
	assert.Equal(t, []int{1, 0, 1}, ds.Labels())
}

func TestReadDatasetEmpty(t *testing.T) {
	ds, err := ReadDataset(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Count())
}

func TestReadDatasetMalformed(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		line int
	}{
		{"ragged row", "1,2,0\n3,4,1\n5,1\n", 3},
		{"not a number", "1,2,0\n3,x,1\n", 2},
		{"label out of range", "1,2,0\n3,4,2\n", 2},
		{"fractional label", "1,2,0.5\n", 1},
		{"no features", "1\n", 1},
		{"line after blank", "1,2,0\n\n3,4\n", 3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadDataset(strings.NewReader(tc.in))
			require.Error(t, err)
			fe, ok := err.(*dataset.FormatError)
			require.True(t, ok, "expected a *dataset.FormatError, got %T", err)
			assert.Equal(t, tc.line, fe.Line)
		})
	}
}

func TestReadDatasetBySampleStops(t *testing.T) {
	read := 0
	err := ReadDatasetBySample(strings.NewReader("1,0\n2,1\n3,1\n"), func(i int, s dataset.Sample, label int) (bool, error) {
		read++
		return i < 1, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, read)
}

func TestReadSample(t *testing.T) {
	s, err := ReadSample("35,1,0,2,300")
	require.NoError(t, err)
	assert.Equal(t, dataset.Sample{35, 1, 0, 2, 300}, s)

	_, err = ReadSample("35,,0")
	assert.Error(t, err)
	_, err = ReadSample("  ")
	assert.Error(t, err)
}

func TestWriteDataset(t *testing.T) {
	ds, err := dataset.New([]dataset.Sample{{35, 1.5}, {-2, 0}}, []int{1, 0})
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	require.NoError(t, WriteDataset(context.Background(), buf, ds))
	assert.Equal(t, "35,1.5,1\n-2,0,0\n", buf.String())

	rds, err := ReadDataset(buf)
	require.NoError(t, err)
	assert.Equal(t, ds.Samples(), rds.Samples())
	assert.Equal(t, ds.Labels(), rds.Labels())
}

func TestWriterCount(t *testing.T) {
	ds, err := dataset.New([]dataset.Sample{{1}, {2}, {3}}, []int{1, 0, 1})
	require.NoError(t, err)
	w := NewWriter(&bytes.Buffer{})
	n, err := w.Write(context.Background(), ds)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	n, err = w.Write(context.Background(), ds)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 6, w.Count())
	assert.NoError(t, w.Flush())
}
