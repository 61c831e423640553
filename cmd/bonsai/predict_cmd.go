package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pbanos/bonsai/dataset"
	"github.com/pbanos/bonsai/dataset/csv"
	"github.com/pbanos/bonsai/dataset/inputsample"
	"github.com/pbanos/bonsai/feature"
	"github.com/pbanos/bonsai/tree"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	growCmdConfig
	samples     []string
	interactive bool
}

type stdoutFeatureValueRequester struct {
	out io.Writer
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{growCmdConfig: growCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the label of samples",
		Long:  `Grow a tree from a dataset and use it to predict the label of the given samples, or of samples read from STDIN`,
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
			err = config.predict(t, md.featureList(), cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				fail(4, err)
			}
		},
	}
	config.addFlags(cmd)
	config.addGrowFlags(cmd)
	cmd.PersistentFlags().StringArrayVarP(&(config.samples), "sample", "s", nil, `comma separated feature values of a sample to predict the label for, as in "35,1,0,2,300" (can be repeated, defaults to reading a sample per line from STDIN)`)
	cmd.PersistentFlags().BoolVar(&(config.interactive), "interactive", false, "ask for the value of every feature of the samples to predict on STDIN")
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	err := pcc.growCmdConfig.Validate()
	if err != nil {
		return err
	}
	if pcc.dataInput == "" && len(pcc.samples) == 0 {
		return fmt.Errorf("input flag is required when samples are read from STDIN")
	}
	if pcc.interactive && len(pcc.samples) > 0 {
		return fmt.Errorf("cannot set both sample and interactive flags at the same time")
	}
	return nil
}

// predict writes to out the prediction of the tree for every sample
// given with the sample flag or, if there are none, read from in
func (pcc *predictCmdConfig) predict(t *tree.Tree, features []feature.Feature, in io.Reader, out io.Writer) error {
	for _, line := range pcc.samples {
		err := printPrediction(t, line, out)
		if err != nil {
			return err
		}
	}
	if len(pcc.samples) > 0 {
		return nil
	}
	if pcc.interactive {
		return predictInteractively(t, features, in, out)
	}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		err := printPrediction(t, line, out)
		if err != nil {
			return err
		}
	}
	return scanner.Err()
}

func printPrediction(t *tree.Tree, line string, out io.Writer) error {
	s, err := csv.ReadSample(line)
	if err != nil {
		return err
	}
	return printSamplePrediction(t, s, out)
}

func printSamplePrediction(t *tree.Tree, s dataset.Sample, out io.Writer) error {
	p, err := t.Predict(s)
	if err != nil {
		return errors.Wrapf(err, "predicting label for %v", s)
	}
	fmt.Fprintf(out, "Prediction: %d\n", p)
	return nil
}

func predictInteractively(t *tree.Tree, features []feature.Feature, in io.Reader, out io.Writer) error {
	if len(features) == 0 {
		n, err := requiredFeatures(t)
		if err != nil {
			return err
		}
		// a single leaf tree still takes a value per sample
		if n == 0 {
			n = 1
		}
		features = feature.Default(n)
	}
	r := inputsample.New(in, features, stdoutFeatureValueRequester{out})
	for {
		s, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		err = printSamplePrediction(t, s, out)
		if err != nil {
			return err
		}
	}
}

// requiredFeatures returns the number of features a sample needs
// for the tree to predict its label
func requiredFeatures(t *tree.Tree) (int, error) {
	n := 0
	err := t.Traverse(false, func(node *tree.Node, _ int) error {
		if !node.Leaf && node.Feature+1 > n {
			n = node.Feature + 1
		}
		return nil
	})
	return n, err
}

func (sfvr stdoutFeatureValueRequester) RequestValueFor(f feature.Feature) error {
	_, err := fmt.Fprintf(sfvr.out, "Please provide the sample's %s:\n(valid values are real numbers)\n", f.Name())
	return err
}

func (sfvr stdoutFeatureValueRequester) RejectValueFor(f feature.Feature, value string) error {
	_, err := fmt.Fprintf(sfvr.out, "%q is not a valid value for the sample's %s. Please provide a real number.\n", value, f.Name())
	return err
}
