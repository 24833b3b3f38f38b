package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		GroundY: 400,
		Player: PlayerConfig{
			X:      600,
			Width:  100,
			Height: 100,
		},
		Enemy: EnemyConfig{
			Width:  100,
			Height: 100,
			Speed:  8,
		},
		Celebration: SpriteConfig{
			Width:  200,
			Height: 200,
		},
		Physics: PhysicsConfig{
			Gravity:      0.4,
			JumpVelocity: 13,
		},
		Spawn: SpawnConfig{
			Periods: []int{100, 200},
		},
		Scoring: ScoringConfig{
			EvolutionScore: 1000,
			ClearScore:     2000,
		},
		Hitbox: HitboxConfig{
			Factor: 0.7,
		},
	}
}

// DefaultYAML returns the embedded default runner YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
