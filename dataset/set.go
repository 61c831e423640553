package dataset

import (
	"fmt"
)

/*
Dataset represents a collection of labeled samples used to grow
a tree or to test it.

Every sample in a dataset has the same number of features and is
paired with a class label that is either 0 or 1. Datasets are not
modified once built: Partition returns new datasets holding copies
of the samples.
*/
type Dataset struct {
	samples []Sample
	labels  []int
}

// FormatError is the error returned when rows and labels do not
// make up a valid dataset.
type FormatError struct {
	// Line is the 1-based number of the offending row, 0 when the
	// error does not concern a single row.
	Line   int
	Reason string
}

func (fe *FormatError) Error() string {
	if fe.Line == 0 {
		return fmt.Sprintf("invalid dataset: %s", fe.Reason)
	}
	return fmt.Sprintf("invalid dataset: line %d: %s", fe.Line, fe.Reason)
}

/*
New takes a slice of samples and a slice of labels and returns a
dataset built with them, or a *FormatError if they do not hold the
same number of items, the samples do not all have the same number
of features (at least one) or a label is not 0 or 1.

The dataset keeps the given slices, callers should not modify them
afterwards.
*/
func New(samples []Sample, labels []int) (*Dataset, error) {
	if len(samples) != len(labels) {
		return nil, &FormatError{Reason: fmt.Sprintf("%d samples but %d labels", len(samples), len(labels))}
	}
	for i, s := range samples {
		if len(s) == 0 {
			return nil, &FormatError{Line: i + 1, Reason: "sample has no features"}
		}
		if len(s) != len(samples[0]) {
			return nil, &FormatError{Line: i + 1, Reason: fmt.Sprintf("expected %d features, got %d", len(samples[0]), len(s))}
		}
		if labels[i] != 0 && labels[i] != 1 {
			return nil, &FormatError{Line: i + 1, Reason: fmt.Sprintf("label %d is not 0 or 1", labels[i])}
		}
	}
	return &Dataset{samples, labels}, nil
}

// Count returns the number of samples in the dataset.
func (s *Dataset) Count() int {
	return len(s.samples)
}

// FeatureCount returns the number of features every sample in
// the dataset has, 0 for an empty dataset.
func (s *Dataset) FeatureCount() int {
	if len(s.samples) == 0 {
		return 0
	}
	return len(s.samples[0])
}

// Sample returns the i-th sample of the dataset.
func (s *Dataset) Sample(i int) Sample {
	return s.samples[i]
}

// Label returns the label of the i-th sample of the dataset.
func (s *Dataset) Label(i int) int {
	return s.labels[i]
}

// Samples returns the samples in the dataset.
func (s *Dataset) Samples() []Sample {
	return s.samples
}

// Labels returns the labels of the samples in the dataset, in the
// same order.
func (s *Dataset) Labels() []int {
	return s.labels
}

/*
Partition takes a feature index and a threshold and splits the
dataset in two: left holds the samples whose value for the feature
is lower or equal to the threshold and right holds the rest. Both
keep the relative order of the samples and their labels and hold
copies of them, so they share no memory with the dataset.
Any of them may be empty.

The feature index is not validated, it must be lower than the
number of features of the samples.
*/
func (s *Dataset) Partition(feature int, threshold float64) (left, right *Dataset) {
	left, right = &Dataset{}, &Dataset{}
	for i, sample := range s.samples {
		if sample[feature] <= threshold {
			left.samples = append(left.samples, sample.Copy())
			left.labels = append(left.labels, s.labels[i])
		} else {
			right.samples = append(right.samples, sample.Copy())
			right.labels = append(right.labels, s.labels[i])
		}
	}
	return left, right
}

// Gini returns the Gini impurity of the labels in the dataset, or
// ErrEmptyLabels if the dataset is empty.
func (s *Dataset) Gini() (float64, error) {
	return Gini(s.labels)
}

// MajorityLabel returns 1 when there are more samples labeled 1
// than samples labeled 0 in the dataset, and 0 otherwise.
func (s *Dataset) MajorityLabel() int {
	count0, count1 := countLabels(s.labels)
	if count1 > count0 {
		return 1
	}
	return 0
}

func (s *Dataset) String() string {
	return fmt.Sprintf("[ %v ]", s.Count())
}
