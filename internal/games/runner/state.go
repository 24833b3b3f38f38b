package runner

// Kind tags the variant held by a State.
type Kind int

const (
	KindStart     Kind = iota // Title screen, waiting for the first press
	KindRunning               // Playing, player on the ground
	KindJumping               // Playing, player airborne
	KindGameOver              // Ended by a collision
	KindGameClear             // Ended by reaching the clear score
)

// String returns the snake-cased name of the kind.
func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindRunning:
		return "running"
	case KindJumping:
		return "jumping"
	case KindGameOver:
		return "game_over"
	case KindGameClear:
		return "game_clear"
	default:
		return "unknown"
	}
}

// Phase groups kinds the way the presentation layer sees them.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseEnd
)

// String returns the lower-case name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Phase returns the phase the kind belongs to.
func (k Kind) Phase() Phase {
	switch k {
	case KindRunning, KindJumping:
		return PhasePlaying
	case KindGameOver, KindGameClear:
		return PhaseEnd
	default:
		return PhaseStart
	}
}

// State is one immutable snapshot of the simulation.
//
// Step never modifies a State or its Enemies slice; it returns a new value.
// JumpT counts frames since the jump started and is only meaningful for
// KindJumping.
type State struct {
	Kind    Kind
	Player  Entity
	Enemies []Entity // Spawn order, which is also draw order
	Frame   int
	Score   int
	JumpT   int
}

// Phase returns the phase of the state's kind.
func (s State) Phase() Phase {
	return s.Kind.Phase()
}

// Ended reports whether the state is terminal.
func (s State) Ended() bool {
	return s.Phase() == PhaseEnd
}
