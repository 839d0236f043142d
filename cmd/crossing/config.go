package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bug-crossing/internal/config"
)

var (
	flagDumpConfig     string
	flagDumpDifficulty string
	flagDumpDefault    bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the config a game would start with, after the search order and
any difficulty preset are applied. Save the output to
~/.arcade/configs/crossing.yaml or ./configs/crossing.yaml to customise it.

Search order:
  1. --config path
  2. ~/.arcade/configs/crossing.yaml
  3. ./configs/crossing.yaml
  4. built-in defaults

Examples:
  crossing config > ~/.arcade/configs/crossing.yaml
  crossing config --difficulty hard
  crossing config --config ./my-crossing.yaml
  crossing config --default`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagDumpConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDumpDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.Flags().BoolVar(&flagDumpDefault, "default", false, "Print the built-in default file as shipped")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDumpDefault {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck // Nothing to do if stdout is gone
		return
	}

	preset, err := config.ParsePreset(flagDumpDifficulty)
	if err != nil {
		fail("%v", err)
	}

	cfg, err := config.LoadCrossing(flagDumpConfig)
	if err != nil {
		fail("%v", err)
	}
	config.ApplyPreset(&cfg, preset)

	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	fmt.Print(string(data))
}
