/*
Package inputsample reads samples interactively from an io.Reader,
one feature value per line.
*/
package inputsample

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pbanos/bonsai/dataset"
	"github.com/pbanos/bonsai/feature"
	"github.com/pkg/errors"
)

/*
FeatureValueRequester represents a way to ask
for feature values and reject the given values.
*/
type FeatureValueRequester interface {
	RequestValueFor(feature.Feature) error
	RejectValueFor(feature.Feature, string) error
}

/*
Reader reads samples from an io.Reader, requesting the value
of every feature before reading it.
*/
type Reader struct {
	scanner               *bufio.Scanner
	featureValueRequester FeatureValueRequester
	features              []feature.Feature
}

/*
New takes an io.Reader, a slice of features and a FeatureValueRequester
and returns a Reader of samples with those features.

The parsing expects each value to be presented ending with the
'\n' character, that is in new lines. Lines will be read from the
reader until one containing a valid float64 number is found, those
that do not are rejected with the FeatureValueRequester's
RejectValueFor method.
*/
func New(r io.Reader, features []feature.Feature, featureValueRequester FeatureValueRequester) *Reader {
	return &Reader{bufio.NewScanner(r), featureValueRequester, features}
}

/*
Read requests and reads the value of every feature of the Reader, in
order, and returns the sample they make up. It returns io.EOF if the
reader ends before the first value is read, or an error if it ends
before the rest of the values are read.
*/
func (rs *Reader) Read() (dataset.Sample, error) {
	s := make(dataset.Sample, len(rs.features))
	for i, f := range rs.features {
		v, err := rs.readValue(f)
		if err == io.EOF && i > 0 {
			err = errors.Errorf("EOF when requesting value for %s", f.Name())
		}
		if err != nil {
			return nil, err
		}
		s[i] = v
	}
	return s, nil
}

func (rs *Reader) readValue(f feature.Feature) (float64, error) {
	err := rs.featureValueRequester.RequestValueFor(f)
	if err != nil {
		return 0.0, err
	}
	for rs.scanner.Scan() {
		line := strings.TrimSpace(rs.scanner.Text())
		value, perr := strconv.ParseFloat(line, 64)
		if perr == nil {
			return value, nil
		}
		err = rs.featureValueRequester.RejectValueFor(f, line)
		if err != nil {
			return 0.0, err
		}
	}
	err = rs.scanner.Err()
	if err != nil {
		return 0.0, err
	}
	return 0.0, io.EOF
}
