package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type rootCmdConfig struct {
	verbose    bool
	configFile string
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:   "bonsai",
		Short: "bonsai is a tool to grow binary decision trees",
		Long:  `A tool to grow binary classification trees from your numeric data, test them, and use them to make predictions`,
		// SilenceUsage is an option to silence usage when an error occurs.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.load(cmd)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log what is being done, including every node grown")
	rootCmd.PersistentFlags().StringVar(&(config.configFile), "config", "", "path to a YAML file with default values for the flags")
	rootCmd.AddCommand(versionCmd(), growCmd(config), predictCmd(config), testCmd(config), setCmd(config))
	return rootCmd
}

// load sets up logging and fills the flags of the command that
// were not given in the command line with the values set for them
// on the environment (BONSAI_MAX_DEPTH for --max-depth) or on the
// config file.
func (rcc *rootCmdConfig) load(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix("bonsai")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	configFile := rcc.configFile
	if configFile == "" {
		configFile = os.Getenv("BONSAI_CONFIG")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config file %s", configFile)
		}
	}
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || f.Name == "config" || !v.IsSet(f.Name) {
			return
		}
		values := []string{v.GetString(f.Name)}
		if t := f.Value.Type(); t == "stringArray" || t == "stringSlice" {
			values = v.GetStringSlice(f.Name)
		}
		for _, value := range values {
			if serr := cmd.Flags().Set(f.Name, value); serr != nil {
				err = errors.Wrapf(serr, "setting %s from environment or config file", f.Name)
				return
			}
		}
	})
	if err != nil {
		return err
	}
	setupLogging(rcc.verbose)
	log.Debugf("running %s", cmd.CommandPath())
	return nil
}
