package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Canvas: BreakoutCanvas{
			Width:  480,
			Height: 600,
		},
		Ball: BreakoutBall{
			Radius: 8,
			Speed:  300,
		},
		Paddle: BreakoutPaddle{
			Width:        80,
			Height:       12,
			Speed:        400,
			BottomOffset: 40,
		},
		Bricks: BreakoutBricks{
			Rows:    6,
			Cols:    10,
			Points:  10,
			Padding: 5,
			OffsetY: 60,
			Height:  20,
		},
		Physics: BreakoutPhysics{
			MaxStep:          0.05,
			LaunchX:          0.6,
			LaunchY:          0.8,
			PaddleDeflection: 0.75,
			MinVerticalRatio: 0.3,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
