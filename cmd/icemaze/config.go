package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/icemaze/internal/config"
)

var flagDefaultConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the config file and flags are applied.
With --default, print the built-in configuration file instead; redirect it
to ~/.icemaze/config.yaml to start customizing.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaultConfig, "default", false, "Print the built-in config file")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaultConfig {
		os.Stdout.Write(config.GetDefaultYAML())
		return
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		fail("%v", err)
	}
	fmt.Print(string(data))
}
