package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pbanos/bonsai/tree"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	growCmdConfig
	testInput string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{growCmdConfig: growCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Grow a tree from a training dataset and test its performance against a testing dataset`,
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
			t, err := config.grow(ctx, md)
			if err != nil {
				fail(3, err)
			}
			testingSet, err := readDataset(ctx, config.testInput, md, config.table)
			if err != nil {
				fail(4, err)
			}
			log.Infof("Testing tree against testing dataset with %d samples...", testingSet.Count())
			e, err := t.Test(testingSet)
			if err != nil {
				fail(5, errors.Wrap(err, "testing tree"))
			}
			log.Infof("Done")
			renderEvaluation(cmd.OutOrStdout(), e)
		},
	}
	config.addFlags(cmd)
	config.addGrowFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.testInput), "test-input", "t", "", fmt.Sprintf("path to %s with the data to test the tree against (required)", datasetLocationHelp))
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	err := tcc.growCmdConfig.Validate()
	if err != nil {
		return err
	}
	if tcc.testInput == "" {
		return fmt.Errorf("required test-input flag was not set")
	}
	return nil
}

// renderEvaluation writes the confusion matrix and accuracy of the
// evaluation as a table
func renderEvaluation(out io.Writer, e *tree.Evaluation) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	t.SetTitle("%d samples", e.Count())
	t.AppendHeader(table.Row{"actual \\ predicted", 0, 1})
	for actual, predictions := range e.Confusion {
		t.AppendRow(table.Row{actual, predictions[0], predictions[1]})
	}
	t.AppendFooter(table.Row{"accuracy", fmt.Sprintf("%f", e.Accuracy()), ""})
	t.Render()
}
