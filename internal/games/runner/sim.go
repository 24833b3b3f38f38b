// Package runner implements the birthday endless runner.
//
// The player stands at a fixed column and can jump while enemies scroll past
// from the left edge. The game is lost on contact and cleared once the score
// reaches a threshold. Sim contains the whole rule set as a pure transition
// function; Game hosts it on the terminal platform.
package runner

import (
	"math/rand"
)

// Rand is the random source used for spawn timing.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Spawner decides whether an enemy enters the canvas on a given frame.
type Spawner interface {
	ShouldSpawn(frame int) bool
}

// SpawnerFunc adapts a function to the Spawner interface.
type SpawnerFunc func(frame int) bool

// ShouldSpawn calls f(frame).
func (f SpawnerFunc) ShouldSpawn(frame int) bool {
	return f(frame)
}

// RandomPeriodSpawner draws one of Periods at random on every call and
// spawns when the frame is a multiple of the drawn period.
//
// The period is re-drawn each frame rather than fixed per game, so spawn
// timing is irregular: any multiple of the smallest period may spawn.
type RandomPeriodSpawner struct {
	Periods []int
	Rand    Rand
}

// ShouldSpawn draws a period and tests the frame against it.
func (s RandomPeriodSpawner) ShouldSpawn(frame int) bool {
	if len(s.Periods) == 0 {
		return false
	}
	period := s.Periods[s.Rand.Intn(len(s.Periods))]
	return frame%period == 0
}

// Collider reports whether an enemy hits the player.
type Collider func(player, enemy Entity) bool

// Option configures a Sim.
type Option func(*Sim)

// WithRand sets the random source used by the default spawner.
func WithRand(r Rand) Option {
	return func(s *Sim) {
		s.rng = r
	}
}

// WithSpawner replaces the spawn policy.
func WithSpawner(sp Spawner) Option {
	return func(s *Sim) {
		s.spawner = sp
	}
}

// WithCollider replaces the collision predicate.
func WithCollider(c Collider) Option {
	return func(s *Sim) {
		s.collide = c
	}
}

// Sim advances runner states one fixed tick at a time.
type Sim struct {
	params  Params
	assets  Assets
	rng     Rand
	spawner Spawner
	collide Collider
}

// NewSim creates a simulation from constants and template entities.
// Without options spawn timing uses a math/rand source seeded with 1.
func NewSim(params Params, assets Assets, opts ...Option) *Sim {
	s := &Sim{
		params: params,
		assets: assets,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(1))
	}
	if s.spawner == nil {
		s.spawner = RandomPeriodSpawner{Periods: params.SpawnPeriods, Rand: s.rng}
	}
	if s.collide == nil {
		factor := params.HitboxFactor
		s.collide = func(player, enemy Entity) bool {
			return Overlaps(enemy, player, factor)
		}
	}
	return s
}

// Params returns the simulation constants.
func (s *Sim) Params() Params {
	return s.params
}

// Assets returns the template entities.
func (s *Sim) Assets() Assets {
	return s.assets
}

// InitialState returns the title screen state.
func (s *Sim) InitialState() State {
	return State{
		Kind:   KindStart,
		Player: s.assets.PlayerStage1,
	}
}

// NewGame returns a fresh running state.
func (s *Sim) NewGame() State {
	return State{
		Kind:   KindRunning,
		Player: s.assets.PlayerStage1,
	}
}

// Step advances the simulation by one tick.
//
// pressed must be a fresh press edge, not a held key. The press is applied
// first; if the result is a playing state the frame is then simulated.
func (s *Sim) Step(st State, pressed bool) State {
	if pressed {
		st = s.press(st)
	}
	if st.Phase() != PhasePlaying {
		return st
	}
	return s.advance(st)
}

// press applies the action transition for the current kind.
func (s *Sim) press(st State) State {
	switch st.Kind {
	case KindStart:
		return s.NewGame()
	case KindRunning:
		st.Kind = KindJumping
		st.JumpT = 0
		return st
	case KindGameOver, KindGameClear:
		return s.InitialState()
	default:
		// Already airborne
		return st
	}
}

// advance simulates one playing frame.
func (s *Sim) advance(st State) State {
	next := s.movePlayer(st)
	next.Enemies = s.moveEnemies(st.Enemies, st.Frame)
	next.Frame = st.Frame + 1
	next.Score = st.Score + 1

	// Collision wins over clearing on the same frame. The moved entities are
	// kept so the overlap stays visible; frame and score do not count the hit.
	for _, e := range next.Enemies {
		if s.collide(next.Player, e) {
			next.Kind = KindGameOver
			next.JumpT = 0
			next.Frame = st.Frame
			next.Score = st.Score
			return next
		}
	}

	if next.Score >= s.params.ClearScore {
		next.Kind = KindGameClear
		next.JumpT = 0
		next.Player = next.Player.At(s.params.PlayerX, s.params.GroundY)
	}
	return next
}

// movePlayer applies jump kinematics and picks the evolution pose.
func (s *Sim) movePlayer(st State) State {
	pose := s.assets.PlayerStage1
	if st.Score >= s.params.EvolutionScore {
		pose = s.assets.PlayerStage2
	}

	ground := pose.At(s.params.PlayerX, s.params.GroundY)
	if st.Kind != KindJumping {
		return State{Kind: KindRunning, Player: ground}
	}

	y := s.params.JumpHeight(st.JumpT)
	if y <= float64(s.params.GroundY) {
		return State{
			Kind:   KindJumping,
			Player: pose.At(s.params.PlayerX, int(y)),
			JumpT:  st.JumpT + 1,
		}
	}

	// Landed
	return State{Kind: KindRunning, Player: ground}
}

// moveEnemies scrolls enemies, drops those past the right edge and spawns.
// The input slice is never modified.
func (s *Sim) moveEnemies(enemies []Entity, frame int) []Entity {
	next := make([]Entity, 0, len(enemies)+1)
	for _, e := range enemies {
		moved := e.Moved(s.params.EnemySpeed, 0)
		if moved.X < s.params.CanvasW {
			next = append(next, moved)
		}
	}

	if s.spawner.ShouldSpawn(frame) {
		next = append(next, s.assets.Enemy.At(0, s.params.GroundY))
	}
	return next
}
