package dataset

// DatasetError represents an error related with dataset computations
type DatasetError string

/*
ErrEmptyLabels is the error returned when computing the impurity of
an empty collection of labels, which is undefined.
*/
const ErrEmptyLabels = DatasetError("cannot compute impurity of an empty set of labels")

func (de DatasetError) Error() string {
	return string(de)
}

/*
Gini takes a slice of labels and returns their Gini impurity, that is
1 - (p0² + p1²) with p0 and p1 being the fractions of labels of class 0
and class 1. Any label other than 0 is counted as class 1.

The result is 0 for a slice with a single class and 0.5 for a slice
evenly split between both. An empty slice has no impurity and
ErrEmptyLabels is returned instead.
*/
func Gini(labels []int) (float64, error) {
	if len(labels) == 0 {
		return 0.0, ErrEmptyLabels
	}
	count0, count1 := countLabels(labels)
	p0 := float64(count0) / float64(len(labels))
	p1 := float64(count1) / float64(len(labels))
	return 1.0 - (p0*p0 + p1*p1), nil
}

func countLabels(labels []int) (count0, count1 int) {
	for _, l := range labels {
		if l == 0 {
			count0++
		} else {
			count1++
		}
	}
	return
}
