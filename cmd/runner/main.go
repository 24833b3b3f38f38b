// runner is a terminal endless runner: jump over the enemies until the
// score reaches the clear threshold.
//
// Usage:
//
//	runner [play]          - Play the game (default)
//	runner sim             - Run the simulation headless and print the result
//	runner config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a custom runner YAML
//	--log-file <path>   - Log file (default: ~/.runner/runner.log)
//	--debug             - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Birthday Runner - jump over enemies in your terminal",
	Long: `Birthday Runner is a small endless runner for the terminal.

The runner stands still while enemies scroll towards it. Jump over them
until the score reaches the clear threshold.

Available commands:
  play     - Play the game (default)
  sim      - Run the simulation without a terminal UI
  config   - Print the default configuration

Examples:
  runner
  runner play --seed 42
  runner sim --ticks 2000 --jump-every 70
  runner config > configs/runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.runner/runner.log", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
