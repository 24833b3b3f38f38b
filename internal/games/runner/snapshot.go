package runner

// Snapshot captures the observable game state for determinism testing and
// for headless runs.
type Snapshot struct {
	Kind     string
	Frame    int
	Score    int
	PlayerY  int
	Visual   VisualID
	JumpT    int
	Enemies  int
	EnemyXs  []int
	Paused   bool
	Finished bool
}

// SnapshotOf summarizes a simulation state.
func SnapshotOf(st State) Snapshot {
	xs := make([]int, len(st.Enemies))
	for i, e := range st.Enemies {
		xs[i] = e.X
	}

	return Snapshot{
		Kind:     st.Kind.String(),
		Frame:    st.Frame,
		Score:    st.Score,
		PlayerY:  st.Player.Y,
		Visual:   st.Player.Visual,
		JumpT:    st.JumpT,
		Enemies:  len(st.Enemies),
		EnemyXs:  xs,
		Finished: st.Ended(),
	}
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := SnapshotOf(g.state)
	snap.Paused = g.paused
	return snap
}
