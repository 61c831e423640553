package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	features := Default(3)
	assert.Equal(t, []string{"X0", "X1", "X2"}, Names(features))
	assert.Equal(t, 1, features[1].Index())
}

func TestNameFor(t *testing.T) {
	features := []Feature{New("age", 0), New("balance", 1)}
	assert.Equal(t, "balance", NameFor(features, 1))
	assert.Equal(t, "X4", NameFor(features, 4))
	assert.Equal(t, "X0", NameFor(nil, 0))
}
