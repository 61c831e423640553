/*
Package mongodataset reads and writes datasets on a MongoDB
database.

Every sample is stored as a document of the samples collection
of the session's default database, with a field for every feature
and one for the label. Samples are read in the order of their
_id, which grows with every sample written.
*/
package mongodataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/bonsai/dataset"
	"github.com/pbanos/bonsai/feature"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const (
	samplesCollectionName = "samples"

	// MaxDocumentsPerInsert is the maximum number of samples
	// inserted with a single insert command by Write
	MaxDocumentsPerInsert = 1000
)

var log = logrus.WithField("component", "mongodataset")

/*
IsURL returns whether the given string is a MongoDB connection URL.
*/
func IsURL(url string) bool {
	return strings.HasPrefix(url, "mongodb://")
}

/*
Dial takes a MongoDB connection URL and returns a session for it,
or an error if the server cannot be reached.
*/
func Dial(url string) (*mgo.Session, error) {
	session, err := mgo.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to MongoDB")
	}
	return session, nil
}

/*
Read takes a context, a MongoDB session, a slice of features and the
name of the label field and returns the dataset stored on the samples
collection of the session's default database, with its samples in
_id order. The values of every sample are read from the fields named
after the given features, in the order of the slice.

An error is returned if the features or label cannot be used as field
names, the collection cannot be read or a document lacks a numeric
value for a feature or the label.
*/
func Read(ctx context.Context, session *mgo.Session, features []feature.Feature, label string) (ds *dataset.Dataset, err error) {
	err = validateFieldNames(features, label)
	if err != nil {
		return nil, err
	}
	s := session.Copy()
	defer s.Close()
	iter := samplesCollection(s).Find(nil).Sort("_id").Iter()
	defer func() {
		err = multierr.Append(err, iter.Close())
	}()
	samples := []dataset.Sample{}
	labels := []int{}
	var doc bson.M
	for iter.Next(&doc) {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		sample, l, err := sampleFromDocument(doc, features, label)
		if err != nil {
			return nil, errors.Wrapf(err, "reading document %d", len(samples)+1)
		}
		samples = append(samples, sample)
		labels = append(labels, l)
		doc = nil
	}
	if err = iter.Err(); err != nil {
		return nil, errors.Wrap(err, "reading samples collection")
	}
	log.Debugf("read %d samples", len(samples))
	ds, err = dataset.New(samples, labels)
	if err != nil {
		return nil, errors.Wrap(err, "reading samples collection")
	}
	return ds, nil
}

/*
Write takes a context, a MongoDB session, a slice of features, the name
of the label field and a dataset and inserts the samples of the dataset
as documents on the samples collection of the session's default database.
Feature i is stored on the field named after the i-th feature of the
slice. It returns an error if the features or label cannot be used as
field names or the documents cannot be inserted.
*/
func Write(ctx context.Context, session *mgo.Session, features []feature.Feature, label string, ds *dataset.Dataset) error {
	err := validateFieldNames(features, label)
	if err != nil {
		return err
	}
	if ds.Count() > 0 && ds.FeatureCount() != len(features) {
		return errors.Errorf("writing dataset with %d features as %d fields", ds.FeatureCount(), len(features))
	}
	s := session.Copy()
	defer s.Close()
	c := samplesCollection(s)
	err = ensureIndexes(c, features)
	if err != nil {
		return err
	}
	for start := 0; start < ds.Count(); start += MaxDocumentsPerInsert {
		if err = ctx.Err(); err != nil {
			return err
		}
		end := start + MaxDocumentsPerInsert
		if end > ds.Count() {
			end = ds.Count()
		}
		docs := make([]interface{}, 0, end-start)
		for i := start; i < end; i++ {
			docs = append(docs, sampleDocument(ds.Sample(i), ds.Label(i), features, label))
		}
		err = c.Insert(docs...)
		if err != nil {
			return errors.Wrapf(err, "inserting samples %d to %d", start+1, end)
		}
		log.Debugf("inserted samples %d to %d", start+1, end)
	}
	return nil
}

func validateFieldNames(features []feature.Feature, label string) error {
	seen := make(map[string]bool)
	for _, name := range append(feature.Names(features), label) {
		if name == "" {
			return errors.New("invalid field name: empty")
		}
		if name == "_id" {
			return errors.Errorf("invalid field name %q: reserved collection field", "_id")
		}
		if strings.ContainsAny(name, ".$") {
			return errors.Errorf("invalid field name %q: contains reserved characters %q or %q", name, ".", "$")
		}
		if seen[name] {
			return errors.Errorf("invalid field name %q: repeated", name)
		}
		seen[name] = true
	}
	return nil
}

func ensureIndexes(c *mgo.Collection, features []feature.Feature) error {
	for _, f := range features {
		index := mgo.Index{
			Key:        []string{f.Name()},
			Background: true,
			Sparse:     true,
		}
		err := c.EnsureIndex(index)
		if err != nil {
			return errors.Wrapf(err, "ensuring index on %s", f.Name())
		}
	}
	return nil
}

func samplesCollection(session *mgo.Session) *mgo.Collection {
	return session.DB("").C(samplesCollectionName)
}

// sampleDocument returns the document for a sample. Its _id is
// generated here so that documents sort in insertion order.
func sampleDocument(s dataset.Sample, l int, features []feature.Feature, label string) bson.M {
	doc := bson.M{"_id": bson.NewObjectId(), label: l}
	for i, f := range features {
		doc[f.Name()] = s[i]
	}
	return doc
}

func sampleFromDocument(doc bson.M, features []feature.Feature, label string) (dataset.Sample, int, error) {
	s := make(dataset.Sample, len(features))
	for i, f := range features {
		v, err := toFloat(doc[f.Name()])
		if err != nil {
			return nil, 0, errors.Wrapf(err, "field %s", f.Name())
		}
		s[i] = v
	}
	l, err := toFloat(doc[label])
	if err != nil {
		return nil, 0, errors.Wrapf(err, "field %s", label)
	}
	if l != float64(int(l)) {
		return nil, 0, errors.Errorf("field %s: label %v is not an integer", label, l)
	}
	return s, int(l), nil
}

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case nil:
		return 0.0, fmt.Errorf("missing value")
	default:
		return 0.0, fmt.Errorf("value %v of type %T is not a number", v, v)
	}
}
