/*
Package csv reads and writes datasets as headerless CSV: one sample per
line, its feature values as real numbers followed by its class label
as last field.

	35,1,0,2,300,1
	52,0,1,1,4200,0
*/
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pbanos/bonsai/dataset"
	"github.com/pkg/errors"
)

/*
Writer is an interface for a CSV stream to which datasets
can be written to.
*/
type Writer interface {
	// Write will attempt to write the samples of the given dataset
	// with their labels and will return the actually written number
	// of samples and an error (if not all samples could be written)
	Write(context.Context, *dataset.Dataset) (int, error)
	// Count returns the total number of samples written
	// to the writer
	Count() int
	// Flush ensures any pending written operations finish
	// before returning. It returns an error if that cannot
	// be ensured.
	Flush() error
}

type csvWriter struct {
	count int
	w     *csv.Writer
}

/*
ReadDataset takes an io.Reader for a CSV stream and returns the dataset
parsed from it or an error. Malformed lines are reported with a
*dataset.FormatError carrying their line number.
*/
func ReadDataset(reader io.Reader) (*dataset.Dataset, error) {
	samples := []dataset.Sample{}
	labels := []int{}
	err := ReadDatasetBySample(reader, func(_ int, s dataset.Sample, label int) (bool, error) {
		samples = append(samples, s)
		labels = append(labels, label)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return dataset.New(samples, labels)
}

/*
ReadDatasetBySample takes an io.Reader for a CSV stream and a lambda function
on an integer, a dataset.Sample and its label that returns a boolean value.
It parses the samples from the reader and for each it calls the lambda function
with its index, the sample and its label as parameters. If the lambda function
returns true, it will continue processing the next sample, otherwise it will
stop. An error is returned if something goes wrong when reading the stream or
parsing a sample, the latter being a *dataset.FormatError.
*/
func ReadDatasetBySample(reader io.Reader, lambda func(int, dataset.Sample, int) (bool, error)) error {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	r.ReuseRecord = true
	fields := 0
	for i := 0; ; i++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "reading CSV")
		}
		line, _ := r.FieldPos(0)
		if fields == 0 {
			fields = len(row)
		}
		if len(row) != fields {
			return &dataset.FormatError{Line: line, Reason: fmt.Sprintf("expected %d fields, got %d", fields, len(row))}
		}
		if len(row) < 2 {
			return &dataset.FormatError{Line: line, Reason: "expected at least one feature and a label"}
		}
		sample, err := parseValues(row[:len(row)-1])
		if err != nil {
			return &dataset.FormatError{Line: line, Reason: err.Error()}
		}
		label, err := parseLabel(row[len(row)-1])
		if err != nil {
			return &dataset.FormatError{Line: line, Reason: err.Error()}
		}
		ok, err := lambda(i, sample, label)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

/*
ReadDatasetFromFilePath takes a filepath string, opens the file to which
it points to and uses ReadDataset to return a dataset or an error read
from it. If the filepath is "" os.Stdin is read instead. It will return
an error if the given filepath cannot be opened for reading.
*/
func ReadDatasetFromFilePath(filepath string) (*dataset.Dataset, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, errors.Wrap(err, "opening dataset")
		}
		defer f.Close()
	}
	ds, err := ReadDataset(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing CSV file %s", filepath)
	}
	return ds, nil
}

/*
ReadSample takes a line of comma separated real values and returns
the sample they make up, or an error if a value cannot be parsed.
Unlike dataset lines, the line carries no label.
*/
func ReadSample(line string) (dataset.Sample, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, errors.New("parsing sample: no values")
	}
	s, err := parseValues(strings.Split(line, ","))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing sample %q", line)
	}
	return s, nil
}

/*
NewWriter takes an io.Writer and returns a Writer that will write any
datasets on the io.Writer.
*/
func NewWriter(writer io.Writer) Writer {
	return &csvWriter{w: csv.NewWriter(writer)}
}

/*
WriteDataset takes a writer and a dataset and dumps the dataset to the
writer in CSV format. It returns an error if something went wrong when
writing to the writer.
*/
func WriteDataset(ctx context.Context, writer io.Writer, ds *dataset.Dataset) error {
	cw := NewWriter(writer)
	_, err := cw.Write(ctx, ds)
	if err != nil {
		return err
	}
	return cw.Flush()
}

func parseValues(fields []string) (dataset.Sample, error) {
	s := make(dataset.Sample, len(fields))
	for i, v := range fields {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("converting %q to float64: %v", v, err)
		}
		s[i] = f
	}
	return s, nil
}

func parseLabel(v string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("converting label %q to integer: %v", v, err)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("label %q is not an integer", v)
	}
	if f != 0 && f != 1 {
		return 0, fmt.Errorf("label %q is not 0 or 1", v)
	}
	return int(f), nil
}

func (cw *csvWriter) Count() int {
	return cw.count
}

func (cw *csvWriter) Write(ctx context.Context, ds *dataset.Dataset) (int, error) {
	for i := 0; i < ds.Count(); i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		err := cw.writeSample(ds.Sample(i), ds.Label(i))
		if err != nil {
			return i, err
		}
	}
	return ds.Count(), nil
}

func (cw *csvWriter) writeSample(s dataset.Sample, label int) error {
	record := make([]string, len(s)+1)
	for j, v := range s {
		record[j] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	record[len(s)] = strconv.Itoa(label)
	err := cw.w.Write(record)
	if err != nil {
		return errors.Wrapf(err, "writing CSV row for sample %d", cw.count+1)
	}
	cw.count++
	return nil
}

func (cw *csvWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}
