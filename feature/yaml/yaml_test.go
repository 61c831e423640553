package yaml

import (
	"testing"

	"github.com/pbanos/bonsai/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFeatures(t *testing.T) {
	md := []byte(`
features:
  - age
  - married
  - balance
label: subscribed
`)
	features, label, err := ReadFeatures(md)
	require.NoError(t, err)
	assert.Equal(t, "subscribed", label)
	assert.Equal(t, []string{"age", "married", "balance"}, feature.Names(features))
	assert.Equal(t, 2, features[2].Index())
}

func TestReadFeaturesDefaultLabel(t *testing.T) {
	features, label, err := ReadFeatures([]byte("features: [a, b]\n"))
	require.NoError(t, err)
	assert.Equal(t, feature.DefaultLabelName, label)
	assert.Len(t, features, 2)
}

func TestReadFeaturesInvalid(t *testing.T) {
	tests := []struct {
		name string
		md   string
	}{
		{"no features", "label: y\n"},
		{"duplicated feature", "features: [a, a]\n"},
		{"label among features", "features: [a, y]\nlabel: y\n"},
		{"not yaml", "features: [a,\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ReadFeatures([]byte(tt.md))
			assert.Error(t, err)
		})
	}
}

func TestReadFeaturesFromMissingFile(t *testing.T) {
	_, _, err := ReadFeaturesFromFile("does-not-exist.yml")
	assert.Error(t, err)
}
