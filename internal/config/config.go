// Package config provides YAML-based configuration loading for the runner.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all configuration for the runner game.
// Every field has a default taken from the embedded runner.yaml.
type RunnerConfig struct {
	Canvas      CanvasConfig  `yaml:"canvas"`
	GroundY     int           `yaml:"ground_y"`
	Player      PlayerConfig  `yaml:"player"`
	Enemy       EnemyConfig   `yaml:"enemy"`
	Celebration SpriteConfig  `yaml:"celebration"`
	Physics     PhysicsConfig `yaml:"physics"`
	Spawn       SpawnConfig   `yaml:"spawn"`
	Scoring     ScoringConfig `yaml:"scoring"`
	Hitbox      HitboxConfig  `yaml:"hitbox"`
}

// CanvasConfig defines the logical drawing surface in pixels.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player's fixed column and size.
type PlayerConfig struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// EnemyConfig defines enemy size and scroll speed.
type EnemyConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"` // Pixels per tick
}

// SpriteConfig defines the size of a decorative sprite.
type SpriteConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines jump kinematics.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"`
}

// SpawnConfig defines the candidate spawn periods re-drawn every tick.
type SpawnConfig struct {
	Periods []int `yaml:"periods"`
}

// ScoringConfig defines score thresholds.
type ScoringConfig struct {
	EvolutionScore int `yaml:"evolution_score"` // Score at which the player switches to its second pose
	ClearScore     int `yaml:"clear_score"`     // Score that ends the game as cleared
}

// HitboxConfig defines the collision forgiveness margin.
type HitboxConfig struct {
	Factor float64 `yaml:"factor"` // Fraction of the summed half extents that counts as overlap
}

// Validate reports every problem in the configuration at once.
func (c RunnerConfig) Validate() error {
	var errs []error

	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	positive("canvas.width", c.Canvas.Width)
	positive("canvas.height", c.Canvas.Height)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("enemy.width", c.Enemy.Width)
	positive("enemy.height", c.Enemy.Height)
	positive("celebration.width", c.Celebration.Width)
	positive("celebration.height", c.Celebration.Height)
	positive("enemy.speed", c.Enemy.Speed)
	positive("scoring.clear_score", c.Scoring.ClearScore)

	if c.GroundY < 0 || c.GroundY >= c.Canvas.Height {
		errs = append(errs, fmt.Errorf("ground_y must be within the canvas, got %d", c.GroundY))
	}
	if c.Player.X < 0 || c.Player.X >= c.Canvas.Width {
		errs = append(errs, fmt.Errorf("player.x must be within the canvas, got %d", c.Player.X))
	}
	if len(c.Spawn.Periods) == 0 {
		errs = append(errs, errors.New("spawn.periods must not be empty"))
	}
	for i, p := range c.Spawn.Periods {
		if p <= 0 {
			errs = append(errs, fmt.Errorf("spawn.periods[%d] must be positive, got %d", i, p))
		}
	}
	positiveF := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}
	positiveF("physics.gravity", c.Physics.Gravity)
	positiveF("physics.jump_velocity", c.Physics.JumpVelocity)
	positiveF("hitbox.factor", c.Hitbox.Factor)

	return errors.Join(errs...)
}
