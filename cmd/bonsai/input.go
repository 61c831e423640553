package main

import (
	"context"
	"os"

	"github.com/pbanos/bonsai/dataset"
	"github.com/pbanos/bonsai/dataset/csv"
	"github.com/pbanos/bonsai/dataset/mongodataset"
	"github.com/pbanos/bonsai/dataset/sqldataset"
	"github.com/pbanos/bonsai/feature"
	"github.com/pbanos/bonsai/feature/yaml"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

const datasetLocationHelp = "a CSV file, a SQLite3 (.db) file, a PostgreSQL (postgres://) or MongoDB (mongodb://) URL"

// datasetConfig holds the flags describing how datasets are stored
type datasetConfig struct {
	metadataInput string
	table         string
}

// metadata names the features and label of a dataset
type metadata struct {
	features []feature.Feature
	label    string
}

func (dc *datasetConfig) addFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&(dc.metadataInput), "metadata", "m", "", "path to a YML file naming the features and label of the datasets (required for databases, features are named X0, X1... otherwise)")
	cmd.PersistentFlags().StringVar(&(dc.table), "table", sqldataset.DefaultTable, "name of the table holding the samples on SQL databases")
}

// metadata returns the metadata read from the metadata flag, or nil
// if it was not set
func (dc *datasetConfig) metadata() (*metadata, error) {
	if dc.metadataInput == "" {
		return nil, nil
	}
	log.Infof("Reading features from metadata at %s...", dc.metadataInput)
	features, label, err := yaml.ReadFeaturesFromFile(dc.metadataInput)
	if err != nil {
		return nil, err
	}
	return &metadata{features, label}, nil
}

// namesFor returns the features and label of the metadata, or default
// ones for the given dataset if there is no metadata
func (md *metadata) namesFor(ds *dataset.Dataset) ([]feature.Feature, string) {
	if md == nil {
		return feature.Default(ds.FeatureCount()), feature.DefaultLabelName
	}
	return md.features, md.label
}

func (md *metadata) featureList() []feature.Feature {
	if md == nil {
		return nil
	}
	return md.features
}

/*
readDataset takes a context, an input location, the metadata and the SQL
table name and returns the dataset read from the location, which may be
empty for STDIN or any of the locations described by datasetLocationHelp.
*/
func readDataset(ctx context.Context, input string, md *metadata, table string) (*dataset.Dataset, error) {
	var ds *dataset.Dataset
	var err error
	switch {
	case input == "":
		log.Infof("Reading dataset from STDIN...")
		ds, err = csv.ReadDataset(os.Stdin)
	case mongodataset.IsURL(input):
		if md == nil {
			return nil, errors.Errorf("metadata is required to read a dataset from %s", input)
		}
		log.Infof("Reading dataset from MongoDB at %s...", input)
		ds, err = readMongoDataset(ctx, input, md)
	case sqldataset.IsURL(input):
		if md == nil {
			return nil, errors.Errorf("metadata is required to read a dataset from %s", input)
		}
		log.Infof("Reading dataset from table %s of %s...", table, input)
		ds, err = readSQLDataset(ctx, input, md, table)
	default:
		log.Infof("Reading dataset from %s...", input)
		ds, err = csv.ReadDatasetFromFilePath(input)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading dataset from %s", locationName(input))
	}
	if md != nil && ds.Count() > 0 && ds.FeatureCount() != len(md.features) {
		return nil, errors.Errorf("dataset from %s has %d features but metadata describes %d", locationName(input), ds.FeatureCount(), len(md.features))
	}
	log.Infof("Read dataset with %d samples and %d features", ds.Count(), ds.FeatureCount())
	return ds, nil
}

func readMongoDataset(ctx context.Context, url string, md *metadata) (*dataset.Dataset, error) {
	session, err := mongodataset.Dial(url)
	if err != nil {
		return nil, err
	}
	defer session.Close()
	return mongodataset.Read(ctx, session, md.features, md.label)
}

func readSQLDataset(ctx context.Context, url string, md *metadata, table string) (*dataset.Dataset, error) {
	db, _, err := sqldataset.Open(url)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return sqldataset.Read(ctx, db, table, md.features, md.label)
}

/*
writeDataset takes a context, an output location, the metadata, the SQL
table name and a dataset and writes the dataset on the location, which may
be empty for STDOUT or any of the locations described by datasetLocationHelp.
Without metadata, features and label get default names.
*/
func writeDataset(ctx context.Context, output string, md *metadata, table string, ds *dataset.Dataset) error {
	features, label := md.namesFor(ds)
	var err error
	switch {
	case output == "":
		log.Infof("Writing dataset to STDOUT...")
		err = csv.WriteDataset(ctx, os.Stdout, ds)
	case mongodataset.IsURL(output):
		log.Infof("Writing dataset to MongoDB at %s...", output)
		err = writeMongoDataset(ctx, output, features, label, ds)
	case sqldataset.IsURL(output):
		log.Infof("Writing dataset to table %s of %s...", table, output)
		err = writeSQLDataset(ctx, output, features, label, table, ds)
	default:
		log.Infof("Writing dataset to %s...", output)
		err = writeCSVDataset(ctx, output, ds)
	}
	if err != nil {
		return errors.Wrapf(err, "writing dataset to %s", locationName(output))
	}
	log.Infof("Wrote %d samples to %s", ds.Count(), locationName(output))
	return nil
}

func writeMongoDataset(ctx context.Context, url string, features []feature.Feature, label string, ds *dataset.Dataset) error {
	session, err := mongodataset.Dial(url)
	if err != nil {
		return err
	}
	defer session.Close()
	return mongodataset.Write(ctx, session, features, label, ds)
}

func writeSQLDataset(ctx context.Context, url string, features []feature.Feature, label, table string, ds *dataset.Dataset) error {
	db, d, err := sqldataset.Open(url)
	if err != nil {
		return err
	}
	defer db.Close()
	return sqldataset.Write(ctx, db, d, table, features, label, ds)
}

func writeCSVDataset(ctx context.Context, path string, ds *dataset.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = csv.WriteDataset(ctx, f, ds)
	return multierr.Append(err, f.Close())
}

func locationName(location string) string {
	if location == "" {
		return "standard streams"
	}
	return location
}
