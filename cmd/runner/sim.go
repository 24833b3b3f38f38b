package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/birthday-runner/internal/config"
	"github.com/vovakirdan/birthday-runner/internal/games/runner"
)

var (
	flagTicks     int
	flagJumpEvery int
	flagTrace     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation without a terminal UI",
	Long: `Run the game headless for a number of ticks and print the result.

The run starts from the title screen with a press on the first tick.
With --jump-every N the runner also presses every N ticks. Each press is a
single edge, exactly as delivered by the terminal UI.

Examples:
  runner sim
  runner sim --seed 7 --ticks 3000 --jump-every 70
  runner sim --seed 7 --jump-every 70 --trace`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 2500, "Maximum number of ticks to simulate")
	simCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 0, "Press every N ticks (0 = only the first press)")
	simCmd.Flags().BoolVar(&flagTrace, "trace", false, "Print every state change")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, _, err := config.LoadRunner(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sim := runner.NewSim(runner.NewParams(cfg), runner.NewAssets(cfg),
		runner.WithRand(rand.New(rand.NewSource(seed))))

	st := sim.InitialState()
	tick := 0
	for ; tick < flagTicks; tick++ {
		pressed := tick == 0 || (flagJumpEvery > 0 && tick%flagJumpEvery == 0)
		next := sim.Step(st, pressed)
		if flagTrace && next.Kind != st.Kind {
			fmt.Printf("  tick %-6d %-10s -> %-10s score %d\n", tick, st.Kind, next.Kind, next.Score)
		}
		st = next
		if st.Ended() {
			tick++
			break
		}
	}

	snap := runner.SnapshotOf(st)
	fmt.Printf("Seed:     %d\n", seed)
	fmt.Printf("Ticks:    %d\n", tick)
	fmt.Printf("Result:   %s\n", snap.Kind)
	fmt.Printf("Score:    %d\n", snap.Score)
	fmt.Printf("Frame:    %d\n", snap.Frame)
	fmt.Printf("Enemies:  %d %v\n", snap.Enemies, snap.EnemyXs)
	fmt.Printf("Player Y: %d (%s)\n", snap.PlayerY, snap.Visual)
}
