// Package config provides YAML-based configuration loading and difficulty
// presets for the breakout game.
package config

import (
	"errors"
	"fmt"
	"math"
)

// launchTolerance bounds how far the launch direction may stray from unit length.
const launchTolerance = 1e-6

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("config: invalid breakout config")

// BreakoutConfig contains every tunable constant of the simulation.
// A value of this type is treated as immutable once a game is created.
type BreakoutConfig struct {
	Canvas  BreakoutCanvas  `yaml:"canvas"`
	Ball    BreakoutBall    `yaml:"ball"`
	Paddle  BreakoutPaddle  `yaml:"paddle"`
	Bricks  BreakoutBricks  `yaml:"bricks"`
	Physics BreakoutPhysics `yaml:"physics"`
}

// BreakoutCanvas defines the play field in canvas units (origin top-left, y down).
type BreakoutCanvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BreakoutBall defines ball size and launch speed.
type BreakoutBall struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // units per second
}

// BreakoutPaddle defines paddle geometry and keyboard speed.
type BreakoutPaddle struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // units per second
	BottomOffset float64 `yaml:"bottom_offset"` // distance from canvas bottom to paddle top
}

// BreakoutBricks defines the brick grid layout.
type BreakoutBricks struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Points  int     `yaml:"points"`
	Padding float64 `yaml:"padding"`
	OffsetY float64 `yaml:"offset_y"`
	Height  float64 `yaml:"height"`
}

// BreakoutPhysics holds the empirical tuning values of the collision response.
type BreakoutPhysics struct {
	MaxStep          float64 `yaml:"max_step"`           // seconds, caps a single update
	LaunchX          float64 `yaml:"launch_x"`           // fraction of ball speed, rightward
	LaunchY          float64 `yaml:"launch_y"`           // fraction of ball speed, upward
	PaddleDeflection float64 `yaml:"paddle_deflection"`  // vx = offset * speed * deflection
	MinVerticalRatio float64 `yaml:"min_vertical_ratio"` // floor for |vy| after a paddle hit
}

// BrickWidth returns the width that makes Cols bricks and Cols+1 gaps fill the canvas.
func (c BreakoutConfig) BrickWidth() float64 {
	if c.Bricks.Cols <= 0 {
		return 0
	}
	return (c.Canvas.Width - c.Bricks.Padding*float64(c.Bricks.Cols+1)) / float64(c.Bricks.Cols)
}

// Validate reports every problem that would make the simulation ill-defined.
func (c BreakoutConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Canvas.Width > 0 && c.Canvas.Height > 0, "canvas must be positive, got %gx%g", c.Canvas.Width, c.Canvas.Height)
	check(c.Ball.Radius > 0, "ball radius must be positive, got %g", c.Ball.Radius)
	check(c.Ball.Speed > 0, "ball speed must be positive, got %g", c.Ball.Speed)
	check(c.Ball.Radius*2 < c.Canvas.Width, "ball diameter %g must be narrower than the canvas", c.Ball.Radius*2)
	check(c.Paddle.Width > 0 && c.Paddle.Width <= c.Canvas.Width, "paddle width %g out of range", c.Paddle.Width)
	check(c.Paddle.Height > 0, "paddle height must be positive, got %g", c.Paddle.Height)
	check(c.Paddle.Speed >= 0, "paddle speed must not be negative, got %g", c.Paddle.Speed)
	check(c.Paddle.BottomOffset > 0 && c.Paddle.BottomOffset < c.Canvas.Height, "paddle bottom_offset %g out of range", c.Paddle.BottomOffset)
	check(c.Bricks.Rows > 0 && c.Bricks.Cols > 0, "brick grid must be at least 1x1, got %dx%d", c.Bricks.Rows, c.Bricks.Cols)
	check(c.Bricks.Points >= 0, "brick points must not be negative, got %d", c.Bricks.Points)
	check(c.Bricks.Padding >= 0, "brick padding must not be negative, got %g", c.Bricks.Padding)
	check(c.Bricks.Height > 0, "brick height must be positive, got %g", c.Bricks.Height)
	check(c.BrickWidth() > 0, "bricks do not fit: computed width %g", c.BrickWidth())
	check(c.Physics.MaxStep > 0, "physics max_step must be positive, got %g", c.Physics.MaxStep)

	// The launch vector is a direction: Start scales it by Ball.Speed.
	p := c.Physics
	check(p.LaunchX > 0 && p.LaunchY > 0, "physics launch_x and launch_y must be positive, got %g, %g", p.LaunchX, p.LaunchY)
	check(math.Abs(math.Hypot(p.LaunchX, p.LaunchY)-1) <= launchTolerance,
		"physics launch vector (%g, %g) must have length 1", p.LaunchX, p.LaunchY)
	check(p.PaddleDeflection >= 0 && !math.IsInf(p.PaddleDeflection, 0),
		"physics paddle_deflection must be finite and not negative, got %g", p.PaddleDeflection)
	check(p.MinVerticalRatio >= 0 && p.MinVerticalRatio < 1,
		"physics min_vertical_ratio must be in [0, 1), got %g", p.MinVerticalRatio)

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a CLI value into a preset. The empty string means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyBreakoutPreset adjusts ball speed and paddle width for a preset.
// Normal leaves the config untouched.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ball.Speed *= 0.8
		cfg.Paddle.Width *= 1.25
	case DifficultyHard:
		cfg.Ball.Speed *= 1.25
		cfg.Paddle.Width *= 0.8
	}
	if cfg.Paddle.Width > cfg.Canvas.Width {
		cfg.Paddle.Width = cfg.Canvas.Width
	}
}
