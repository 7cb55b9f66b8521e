package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arena/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the arena configuration as YAML.

The config is resolved in this order: --config, ~/.arena/configs/arena.yaml,
./configs/arena.yaml, then the built-in defaults. Any file may set only the
fields it wants to change.

Examples:
  arena config
  arena config --defaults > ~/.arena/configs/arena.yaml
  arena config --config ./my-arena.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead of the resolved config")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
