package runner

import (
	"math/rand"

	"github.com/vovakirdan/birthday-runner/internal/config"
	"github.com/vovakirdan/birthday-runner/internal/core"
)

// Game hosts the runner simulation on the terminal platform.
type Game struct {
	cfg     config.RunnerConfig
	sim     *Sim
	state   State
	paused  bool
	runtime core.RuntimeConfig
	opts    []Option
}

// New creates a runner game from a loaded configuration.
// Extra options are passed to every Sim the game builds.
func New(cfg config.RunnerConfig, opts ...Option) *Game {
	g := &Game{
		cfg:  cfg,
		opts: opts,
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Birthday Runner"
}

// Reset rebuilds the simulation and returns to the title screen.
// The spawn random source is seeded from runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	opts := make([]Option, 0, len(g.opts)+1)
	opts = append(opts, WithRand(rand.New(rand.NewSource(runtime.Seed))))
	opts = append(opts, g.opts...)

	g.sim = NewSim(NewParams(g.cfg), NewAssets(g.cfg), opts...)
	g.state = g.sim.InitialState()
	g.paused = false
}

// Step advances the game by one tick.
//
// ActionJump must already be edge-triggered by the platform. ActionRestart is
// treated as a press once the game has ended.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.state.Phase() == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	pressed := in.Has(core.ActionJump)
	if in.Has(core.ActionRestart) && g.state.Ended() {
		pressed = true
	}

	g.state = g.sim.Step(g.state, pressed)
	return core.StepResult{State: g.State()}
}

// Current returns the underlying simulation state.
func (g *Game) Current() State {
	return g.state
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Phase:    g.state.Phase().String(),
		GameOver: g.state.Ended(),
		Cleared:  g.state.Kind == KindGameClear,
		Paused:   g.paused,
	}
}
