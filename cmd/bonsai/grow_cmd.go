package main

import (
	"context"
	"fmt"

	"github.com/pbanos/bonsai"
	"github.com/pbanos/bonsai/tree"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*rootCmdConfig
	datasetConfig
	dataInput string
	maxDepth  int
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a dataset",
		Long:  `Grow a binary classification tree from a dataset and print it.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fail(1, err)
			}
			md, err := config.metadata()
			if err != nil {
				fail(2, err)
			}
			t, err := config.grow(context.Background(), md)
			if err != nil {
				fail(3, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), t.Format(md.featureList()))
		},
	}
	config.addFlags(cmd)
	config.addGrowFlags(cmd)
	return cmd
}

func (gcc *growCmdConfig) addGrowFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&(gcc.dataInput), "input", "i", "", fmt.Sprintf("path to %s with the data to grow the tree from (defaults to STDIN, interpreted as CSV)", datasetLocationHelp))
	cmd.PersistentFlags().IntVarP(&(gcc.maxDepth), "max-depth", "d", bonsai.DefaultMaxDepth, "maximum depth the tree is allowed to grow to")
}

func (gcc *growCmdConfig) Validate() error {
	if gcc.maxDepth < 0 {
		return fmt.Errorf("max-depth flag was set to an invalid value: it must be a non-negative integer")
	}
	return nil
}

// grow reads the training dataset and grows a tree from it
func (gcc *growCmdConfig) grow(ctx context.Context, md *metadata) (*tree.Tree, error) {
	trainingSet, err := readDataset(ctx, gcc.dataInput, md, gcc.table)
	if err != nil {
		return nil, err
	}
	log.Infof("Growing tree from a dataset with %d samples and %d features up to depth %d...", trainingSet.Count(), trainingSet.FeatureCount(), gcc.maxDepth)
	t, err := bonsai.Grow(trainingSet, gcc.maxDepth)
	if err != nil {
		return nil, errors.Wrap(err, "growing the tree")
	}
	log.Infof("Done, tree has %d nodes", t.Count())
	return t, nil
}
