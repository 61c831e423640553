package feature

import "fmt"

/*
Feature represents a property that can be observed on a sample: a
named column of real values at a given position of the samples.
*/
type Feature struct {
	name  string
	index int
}

// DefaultLabelName is the name given to the label column of a dataset
// when no metadata names it.
const DefaultLabelName = "label"

/*
New takes a name string and an index and returns a feature with the
given name for the values at that index of the samples.
*/
func New(name string, index int) Feature {
	return Feature{name, index}
}

/*
Default takes a number of features n and returns a slice of n features
named X0, X1, ... Xn-1 for the columns of samples lacking metadata.
*/
func Default(n int) []Feature {
	features := make([]Feature, n)
	for i := range features {
		features[i] = Feature{fmt.Sprintf("X%d", i), i}
	}
	return features
}

/*
Name returns a string with the name of the feature
*/
func (f Feature) Name() string {
	return f.name
}

/*
Index returns the position of the feature's value on samples
*/
func (f Feature) Index() int {
	return f.index
}

func (f Feature) String() string {
	return f.name
}

/*
Names returns a string slice with the names of the given features
in the same order.
*/
func Names(features []Feature) []string {
	names := make([]string, len(features))
	for i, f := range features {
		names[i] = f.name
	}
	return names
}

/*
NameFor takes a slice of features and an index and returns the name of
the feature for that index, or the default name for it if it is out of
the slice.
*/
func NameFor(features []Feature, index int) string {
	if index >= 0 && index < len(features) {
		return features[index].name
	}
	return fmt.Sprintf("X%d", index)
}
