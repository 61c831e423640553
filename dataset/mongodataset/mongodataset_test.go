package mongodataset

import (
	"testing"

	"github.com/pbanos/bonsai/dataset"
	"github.com/pbanos/bonsai/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/mgo.v2/bson"
)

var testFeatures = []feature.Feature{feature.New("age", 0), feature.New("balance", 1)}

func TestValidateFieldNames(t *testing.T) {
	assert.NoError(t, validateFieldNames(testFeatures, "subscribed"))
	for _, tc := range []struct {
		features []feature.Feature
		label    string
	}{
		{[]feature.Feature{feature.New("_id", 0)}, "label"},
		{[]feature.Feature{feature.New("a.b", 0)}, "label"},
		{[]feature.Feature{feature.New("$a", 0)}, "label"},
		{testFeatures, "balance"},
		{testFeatures, ""},
	} {
		assert.Error(t, validateFieldNames(tc.features, tc.label), "features %v label %q", tc.features, tc.label)
	}
}

func TestSampleDocument(t *testing.T) {
	doc := sampleDocument(dataset.Sample{35, 300}, 1, testFeatures, "label")
	assert.Equal(t, 35.0, doc["age"])
	assert.Equal(t, 300.0, doc["balance"])
	assert.Equal(t, 1, doc["label"])
	next := sampleDocument(dataset.Sample{52, 4200}, 0, testFeatures, "label")
	assert.True(t, doc["_id"].(bson.ObjectId) < next["_id"].(bson.ObjectId))

	s, l, err := sampleFromDocument(doc, testFeatures, "label")
	require.NoError(t, err)
	assert.Equal(t, dataset.Sample{35, 300}, s)
	assert.Equal(t, 1, l)
}

func TestSampleFromDocument(t *testing.T) {
	s, l, err := sampleFromDocument(bson.M{"age": 35, "balance": int64(300), "label": int32(0)}, testFeatures, "label")
	require.NoError(t, err)
	assert.Equal(t, dataset.Sample{35, 300}, s)
	assert.Equal(t, 0, l)

	for _, doc := range []bson.M{
		{"age": 35.0, "label": 1},
		{"age": 35.0, "balance": "300", "label": 1},
		{"age": 35.0, "balance": 300.0},
		{"age": 35.0, "balance": 300.0, "label": 0.5},
	} {
		_, _, err = sampleFromDocument(doc, testFeatures, "label")
		assert.Error(t, err, "document %v", doc)
	}
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("mongodb://localhost/bank"))
	assert.False(t, IsURL("bank.db"))
}
