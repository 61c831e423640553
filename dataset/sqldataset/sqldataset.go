package sqldataset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/bonsai/dataset"
	"github.com/pbanos/bonsai/feature"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const (
	// DefaultTable is the name of the table datasets are stored on
	// unless told otherwise
	DefaultTable = "samples"

	// MaxSampleInsertionsPerStatement is the maximum number
	// of samples that are inserted with a single insert
	// command by Write. Writing more will result in making
	// more insertion commands
	MaxSampleInsertionsPerStatement = 10
)

var log = logrus.WithField("component", "sqldataset")

/*
Read takes a context, a database, a table name, a slice of features and
the name of the label column and returns the dataset stored in the table,
with the samples in the order of their ids. The values of every sample
are read from the columns named after the given features, in the order
of the slice.

An error is returned if the query fails or its results do not make up a
valid dataset.
*/
func Read(ctx context.Context, db *sql.DB, table string, features []feature.Feature, label string) (ds *dataset.Dataset, err error) {
	columns, err := columnNames(table, features, label)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY "id"`, strings.Join(columns[1:], ", "), columns[0])
	log.Debugf("reading dataset: %s", query)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrapf(err, "querying table %s", table)
	}
	defer func() {
		err = multierr.Append(err, rows.Close())
	}()
	samples := []dataset.Sample{}
	labels := []int{}
	for rows.Next() {
		s := make(dataset.Sample, len(features))
		var l int
		values := make([]interface{}, 0, len(features)+1)
		for i := range s {
			values = append(values, &s[i])
		}
		values = append(values, &l)
		err = rows.Scan(values...)
		if err != nil {
			return nil, errors.Wrapf(err, "scanning sample %d from table %s", len(samples)+1, table)
		}
		samples = append(samples, s)
		labels = append(labels, l)
	}
	err = rows.Err()
	if err != nil {
		return nil, errors.Wrapf(err, "reading table %s", table)
	}
	ds, err = dataset.New(samples, labels)
	if err != nil {
		return nil, errors.Wrapf(err, "reading table %s", table)
	}
	return ds, nil
}

/*
Write takes a context, a database, its dialect, a table name, a slice of
features, the name of the label column and a dataset and stores the samples
of the dataset on the table, creating it if it does not exist. Feature i is
stored on the column named after the i-th feature of the slice.

The samples are inserted in a single transaction: either all of them are
stored or none are and an error is returned.
*/
func Write(ctx context.Context, db *sql.DB, d Dialect, table string, features []feature.Feature, label string, ds *dataset.Dataset) (err error) {
	if ds.Count() > 0 && ds.FeatureCount() != len(features) {
		return errors.Errorf("writing dataset with %d features as %d columns", ds.FeatureCount(), len(features))
	}
	columns, err := columnNames(table, features, label)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, createTableStatement(d, columns))
	if err != nil {
		return errors.Wrapf(err, "ensuring table %s exists", table)
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, tx.Rollback())
		}
	}()
	for start := 0; start < ds.Count(); start += MaxSampleInsertionsPerStatement {
		end := start + MaxSampleInsertionsPerStatement
		if end > ds.Count() {
			end = ds.Count()
		}
		args := make([]interface{}, 0, (end-start)*len(columns[1:]))
		for i := start; i < end; i++ {
			for _, v := range ds.Sample(i) {
				args = append(args, v)
			}
			args = append(args, ds.Label(i))
		}
		_, err = tx.ExecContext(ctx, insertStatement(d, columns, end-start), args...)
		if err != nil {
			return errors.Wrapf(err, "inserting samples %d to %d", start+1, end)
		}
		log.Debugf("inserted samples %d to %d into %s", start+1, end, table)
	}
	err = tx.Commit()
	if err != nil {
		return errors.Wrap(err, "committing transaction")
	}
	return nil
}

// columnNames returns the quoted names of the table, the feature columns
// and the label column, in that order.
func columnNames(table string, features []feature.Feature, label string) ([]string, error) {
	names := append([]string{table}, feature.Names(features)...)
	names = append(names, label)
	seen := make(map[string]bool)
	result := make([]string, len(names))
	for i, name := range names {
		if name == "" {
			return nil, errors.New("empty names cannot be used as table or column names")
		}
		if strings.ContainsAny(name, `"`) {
			return nil, errors.Errorf(`name '%s' contains invalid character '"'`, name)
		}
		if i > 0 {
			if name == "id" {
				return nil, errors.Errorf("'%s' is reserved and cannot be used as column name", name)
			}
			if seen[name] {
				return nil, errors.Errorf("column '%s' is repeated", name)
			}
			seen[name] = true
		}
		result[i] = fmt.Sprintf(`"%s"`, name)
	}
	return result, nil
}

func createTableStatement(d Dialect, columns []string) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (", columns[0]))
	for _, c := range columns[1 : len(columns)-1] {
		buf.WriteString(fmt.Sprintf("%s REAL NOT NULL, ", c))
	}
	buf.WriteString(fmt.Sprintf("%s INTEGER NOT NULL, ", columns[len(columns)-1]))
	buf.WriteString(d.IDColumn())
	buf.WriteString(")")
	return buf.String()
}

func insertStatement(d Dialect, columns []string, samples int) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("INSERT INTO %s (%s) VALUES ", columns[0], strings.Join(columns[1:], ", ")))
	n := 1
	for i := 0; i < samples; i++ {
		if i > 0 {
			buf.WriteString(", ")
		}
		placeholders := make([]string, len(columns)-1)
		for j := range placeholders {
			placeholders[j] = d.Placeholder(n)
			n++
		}
		buf.WriteString(fmt.Sprintf("(%s)", strings.Join(placeholders, ", ")))
	}
	return buf.String()
}
