package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/birthday-runner/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the runner configuration",
	Long: `Print the embedded default configuration as YAML.

With --resolved, print the configuration the game would actually use after
searching --config, ~/.runner/configs/runner.yaml and ./configs/runner.yaml.

Examples:
  runner config > configs/runner.yaml
  runner config --resolved
  runner config --resolved --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration instead of the defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagResolved {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, source, err := config.LoadRunner(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("# source: %s\n", source)
	os.Stdout.Write(out)
}
