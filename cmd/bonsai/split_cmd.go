package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/pbanos/bonsai/dataset"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type splitCmdConfig struct {
	*setCmdConfig
	splitOutput      string
	splitProbability int
	seed             int64
}

func splitCmd(setConfig *setCmdConfig) *cobra.Command {
	config := &splitCmdConfig{setCmdConfig: setConfig}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a dataset into two datasets",
		Long:  `Split a dataset randomly into an output dataset and a split dataset, to hold out samples for testing`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fail(1, err)
			}
			ctx := context.Background()
			md, err := config.metadata()
			if err != nil {
				fail(2, err)
			}
			ds, err := readDataset(ctx, config.setInput, md, config.table)
			if err != nil {
				fail(3, err)
			}
			output, split, err := randomSplit(ds, config.splitProbability, config.randomizer())
			if err != nil {
				fail(4, err)
			}
			err = writeDataset(ctx, config.setOutput, md, config.table, output)
			if err != nil {
				fail(5, err)
			}
			err = writeDataset(ctx, config.splitOutput, md, config.table, split)
			if err != nil {
				fail(6, err)
			}
			log.Infof("Input dataset with %d samples was split into datasets with %d and %d samples", ds.Count(), output.Count(), split.Count())
		},
	}
	cmd.PersistentFlags().IntVarP(&(config.splitProbability), "split-probability", "p", 20, "probability as percent integer that a sample of the dataset will be assigned to the split dataset")
	cmd.PersistentFlags().StringVarP(&(config.splitOutput), "split-output", "s", "", fmt.Sprintf("path to %s to dump the split dataset (required)", datasetLocationHelp))
	cmd.PersistentFlags().Int64Var(&(config.seed), "seed", 0, "seed for the random assignment of samples (defaults to 0: a time based seed)")
	return cmd
}

func (scc *splitCmdConfig) Validate() error {
	err := scc.setCmdConfig.Validate()
	if err != nil {
		return err
	}
	if scc.splitOutput == "" {
		return fmt.Errorf("required split-output flag was not set")
	}
	if scc.splitOutput == scc.setOutput {
		return fmt.Errorf("output and split-output flags cannot refer to the same dataset")
	}
	if scc.splitProbability <= 0 || scc.splitProbability > 100 {
		return fmt.Errorf("split-probability flag was set to an invalid value: it must be set to an integer between 1 and 100")
	}
	return nil
}

func (scc *splitCmdConfig) randomizer() *rand.Rand {
	seed := scc.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// randomSplit assigns every sample of the dataset to the split dataset
// with the given percent probability, and to the output dataset otherwise.
// Both keep the relative order of the samples.
func randomSplit(ds *dataset.Dataset, splitProbability int, r *rand.Rand) (output, split *dataset.Dataset, err error) {
	var outSamples, splitSamples []dataset.Sample
	var outLabels, splitLabels []int
	for i := 0; i < ds.Count(); i++ {
		if (100 * r.Float32()) > float32(splitProbability) {
			outSamples = append(outSamples, ds.Sample(i))
			outLabels = append(outLabels, ds.Label(i))
		} else {
			splitSamples = append(splitSamples, ds.Sample(i))
			splitLabels = append(splitLabels, ds.Label(i))
		}
	}
	output, err = dataset.New(outSamples, outLabels)
	if err != nil {
		return nil, nil, err
	}
	split, err = dataset.New(splitSamples, splitLabels)
	if err != nil {
		return nil, nil, err
	}
	return output, split, nil
}
