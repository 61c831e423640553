package tree

import (
	"fmt"
)

// PredictionError represents an error related with predictions
type PredictionError string

/*
ErrNilTree is the error returned by the Predict method of a tree
when called on a nil tree, that is, the result of growing a tree
from an empty dataset.
*/
const ErrNilTree = PredictionError("nil tree cannot predict samples")

/*
ErrFeatureOutOfRange is the error returned by the Predict method of a tree
when a node on the path of the sample evaluates a feature the sample does
not have.
*/
const ErrFeatureOutOfRange = PredictionError("sample does not have the feature evaluated by the tree")

/*
ErrNodeNotFound is the error returned when a node ID does not correspond
to any node on a NodeStore.
*/
const ErrNodeNotFound = PredictionError("node not found")

func (pe PredictionError) Error() string {
	return string(pe)
}

/*
Evaluation holds the results of testing a tree against a dataset.
Confusion is indexed first by the actual label of the samples and then by
the label predicted for them, so Confusion[1][0] is the number of samples
labeled 1 that the tree predicted as 0.
*/
type Evaluation struct {
	Confusion [2][2]int
}

// Count returns the number of samples evaluated.
func (e *Evaluation) Count() int {
	return e.Confusion[0][0] + e.Confusion[0][1] + e.Confusion[1][0] + e.Confusion[1][1]
}

// Correct returns the number of samples whose label was predicted.
func (e *Evaluation) Correct() int {
	return e.Confusion[0][0] + e.Confusion[1][1]
}

// Accuracy returns the rate of samples whose label was predicted, 0.0
// if no samples were evaluated.
func (e *Evaluation) Accuracy() float64 {
	count := e.Count()
	if count == 0 {
		return 0.0
	}
	return float64(e.Correct()) / float64(count)
}

func (e *Evaluation) String() string {
	return fmt.Sprintf("%f success rate over %d samples", e.Accuracy(), e.Count())
}
