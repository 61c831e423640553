package bonsai

import (
	"fmt"
	"math"

	"github.com/pbanos/bonsai/dataset"
)

/*
Split represents a binary partition of a dataset: samples whose value
for Feature is lower or equal to Threshold on one side, the rest on the
other. Score is the weighted Gini impurity of both sides.
*/
type Split struct {
	Feature   int
	Threshold float64
	Score     float64
}

func (sp Split) String() string {
	return fmt.Sprintf("X%d <= %f (score %f)", sp.Feature, sp.Threshold, sp.Score)
}

/*
BestSplit takes a dataset and returns the split with the lowest weighted
Gini impurity among those that leave samples on both sides, using every
value of every feature as threshold candidate. Features are evaluated in
order and, for every feature, the values of the samples in order; the
first candidate found wins ties.

The returned boolean is false if no candidate leaves samples on both
sides. An error is returned if the dataset is empty.
*/
func BestSplit(s *dataset.Dataset) (Split, bool, error) {
	labels := s.Labels()
	if len(labels) == 0 {
		return Split{}, false, dataset.ErrEmptyLabels
	}
	total := float64(len(labels))
	best := Split{Score: math.MaxFloat64}
	found := false
	for f := 0; f < s.FeatureCount(); f++ {
		tried := make(map[float64]bool)
		for i := 0; i < s.Count(); i++ {
			threshold := s.Sample(i)[f]
			// a repeated threshold yields the same partition and can never
			// strictly improve on its first evaluation
			if tried[threshold] {
				continue
			}
			tried[threshold] = true
			left, right := s.Partition(f, threshold)
			if left.Count() == 0 || right.Count() == 0 {
				continue
			}
			score, err := weightedGini(left, right, total)
			if err != nil {
				return Split{}, false, err
			}
			if score < best.Score {
				best = Split{Feature: f, Threshold: threshold, Score: score}
				found = true
			}
		}
	}
	if !found {
		return Split{}, false, nil
	}
	return best, true, nil
}

func weightedGini(left, right *dataset.Dataset, total float64) (float64, error) {
	lGini, err := left.Gini()
	if err != nil {
		return 0.0, err
	}
	rGini, err := right.Gini()
	if err != nil {
		return 0.0, err
	}
	return (float64(left.Count())*lGini + float64(right.Count())*rGini) / total, nil
}
