package dataset

import (
	"fmt"
)

/*
Sample represents an item to classify or from which to learn how to
classify them: an ordered list of real-valued features.
*/
type Sample []float64

// Copy returns a new Sample with the same feature values.
func (s Sample) Copy() Sample {
	return append(Sample(nil), s...)
}

func (s Sample) String() string {
	return fmt.Sprintf("%v", []float64(s))
}
