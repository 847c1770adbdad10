package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tidal-drop/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in surf configuration as YAML.

Save it as ~/.tidaldrop/configs/surf.yaml or ./configs/surf.yaml and edit
the values you want to change; missing keys keep their defaults.

Examples:
  tidaldrop config > ~/.tidaldrop/configs/surf.yaml
  tidaldrop config --check ./my-surf.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagCheck string

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate a config file instead of printing defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagCheck != "" {
		if _, err := config.Load(flagCheck); err != nil {
			return err
		}
		fmt.Printf("%s: ok\n", flagCheck)
		return nil
	}

	_, err := os.Stdout.Write(config.DefaultYAML())
	return err
}
