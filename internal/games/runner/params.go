package runner

import "github.com/vovakirdan/birthday-runner/internal/config"

// Params holds the constants that drive the simulation.
type Params struct {
	CanvasW, CanvasH int
	GroundY          int
	PlayerX          int
	EnemySpeed       int // Pixels per tick, towards +x

	Gravity      float64
	JumpVelocity float64

	SpawnPeriods   []int
	EvolutionScore int
	ClearScore     int
	HitboxFactor   float64
}

// NewParams extracts simulation constants from a runner config.
func NewParams(cfg config.RunnerConfig) Params {
	periods := make([]int, len(cfg.Spawn.Periods))
	copy(periods, cfg.Spawn.Periods)

	return Params{
		CanvasW:        cfg.Canvas.Width,
		CanvasH:        cfg.Canvas.Height,
		GroundY:        cfg.GroundY,
		PlayerX:        cfg.Player.X,
		EnemySpeed:     cfg.Enemy.Speed,
		Gravity:        cfg.Physics.Gravity,
		JumpVelocity:   cfg.Physics.JumpVelocity,
		SpawnPeriods:   periods,
		EvolutionScore: cfg.Scoring.EvolutionScore,
		ClearScore:     cfg.Scoring.ClearScore,
		HitboxFactor:   cfg.Hitbox.Factor,
	}
}

// JumpHeight returns the player's y coordinate t frames into a jump.
// Canvas y grows downwards, so the value dips below GroundY while airborne.
func (p Params) JumpHeight(t int) float64 {
	ft := float64(t)
	return 0.5*p.Gravity*ft*ft - p.JumpVelocity*ft + float64(p.GroundY)
}

// Assets holds the template entities the simulation places on the canvas.
type Assets struct {
	PlayerStage1 Entity // Pose before the evolution score
	PlayerStage2 Entity // Pose from the evolution score on
	Enemy        Entity // Spawn template, placed at the left edge
	Chicken      Entity // Celebration sprite shown on game clear
}

// NewAssets builds the template entities from a runner config.
func NewAssets(cfg config.RunnerConfig) Assets {
	player := Entity{
		X: cfg.Player.X,
		Y: cfg.GroundY,
		W: cfg.Player.Width,
		H: cfg.Player.Height,
	}

	stage1 := player
	stage1.Visual = VisualPlayerStage1
	stage2 := player
	stage2.Visual = VisualPlayerStage2

	return Assets{
		PlayerStage1: stage1,
		PlayerStage2: stage2,
		Enemy: Entity{
			X:      0,
			Y:      cfg.GroundY,
			W:      cfg.Enemy.Width,
			H:      cfg.Enemy.Height,
			Visual: VisualEnemy,
		},
		Chicken: Entity{
			X:      cfg.Canvas.Width/2 - cfg.Celebration.Width/2,
			Y:      cfg.Canvas.Height / 2,
			W:      cfg.Celebration.Width,
			H:      cfg.Celebration.Height,
			Visual: VisualChicken,
		},
	}
}
