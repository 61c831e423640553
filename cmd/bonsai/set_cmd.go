package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

type setCmdConfig struct {
	*rootCmdConfig
	datasetConfig
	setInput  string
	setOutput string
}

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &setCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Manage datasets",
		Long:  `Copy a dataset from one location to another, converting it between formats`,
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
			err = writeDataset(ctx, config.setOutput, md, config.table, ds)
			if err != nil {
				fail(4, err)
			}
		},
	}
	config.addFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.setInput), "input", "i", "", fmt.Sprintf("path to %s with the input dataset (defaults to STDIN, interpreted as CSV)", datasetLocationHelp))
	cmd.PersistentFlags().StringVarP(&(config.setOutput), "output", "o", "", fmt.Sprintf("path to %s to dump the output dataset (defaults to STDOUT in CSV)", datasetLocationHelp))
	cmd.AddCommand(splitCmd(config))
	return cmd
}

func (scc *setCmdConfig) Validate() error {
	if scc.setInput != "" && scc.setInput == scc.setOutput {
		return fmt.Errorf("input and output flags cannot refer to the same dataset")
	}
	return nil
}
