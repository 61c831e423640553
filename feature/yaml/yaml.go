/*
Package yaml provides methods to parse feature.Feature specifications
also known as metadata, from YAML documents.
*/
package yaml

import (
	"io/ioutil"

	"github.com/pbanos/bonsai/feature"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadFeatures takes a slice of bytes with a feature specification in YML and
returns a slice of features parsed from it, the name of the label, or an error.
The YML is expected to be an object containing a features property with the
list of feature names, in the order their values appear on samples, and
optionally a label property with the name of the label column. When no label
is given feature.DefaultLabelName is returned.
*/
func ReadFeatures(md []byte) ([]feature.Feature, string, error) {
	metadata := struct {
		Features []string
		Label    string
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, "", errors.Wrap(err, "parsing yml features")
	}
	if len(metadata.Features) == 0 {
		return nil, "", errors.New("metadata file has no feature information")
	}
	encountered := make(map[string]bool)
	features := make([]feature.Feature, 0, len(metadata.Features))
	for i, fn := range metadata.Features {
		if fn == "" {
			return nil, "", errors.Errorf("feature %d has no name", i)
		}
		if encountered[fn] {
			return nil, "", errors.Errorf("feature %s is declared more than once", fn)
		}
		encountered[fn] = true
		features = append(features, feature.New(fn, i))
	}
	label := metadata.Label
	if label == "" {
		label = feature.DefaultLabelName
	}
	if encountered[label] {
		return nil, "", errors.Errorf("label %s cannot also be a feature", label)
	}
	return features, label, nil
}

/*
ReadFeaturesFromFile takes a filepath string, reads its contents and uses
ReadFeatures to parse it and return a slice of parsed features and label name
or an error. If the file indicated by the filepath cannot be opened for reading
an error will be returned.
*/
func ReadFeaturesFromFile(filepath string) ([]feature.Feature, string, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, "", errors.Wrapf(err, "reading features yml file %s", filepath)
	}
	features, label, err := ReadFeatures(md)
	if err != nil {
		err = errors.Wrapf(err, "parsing features yml file %s", filepath)
	}
	return features, label, err
}
