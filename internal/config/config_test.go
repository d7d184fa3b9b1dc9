package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultBreakoutConfig(t *testing.T) {
	cfg := DefaultBreakoutConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.BrickWidth() != 42.5 {
		t.Errorf("BrickWidth() = %g, expected 42.5", cfg.BrickWidth())
	}

	// 10 bricks plus 11 gaps fill the canvas exactly
	total := float64(cfg.Bricks.Cols)*cfg.BrickWidth() + float64(cfg.Bricks.Cols+1)*cfg.Bricks.Padding
	if total != cfg.Canvas.Width {
		t.Errorf("brick row spans %g, expected %g", total, cfg.Canvas.Width)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := decode(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultBreakoutConfig())
	}
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("ball:\n  speed: 450\nbricks:\n  rows: 2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %q, expected %q", src, SourceCustom)
	}
	if cfg.Ball.Speed != 450 {
		t.Errorf("Ball.Speed = %g, expected 450", cfg.Ball.Speed)
	}
	if cfg.Bricks.Rows != 2 {
		t.Errorf("Bricks.Rows = %d, expected 2", cfg.Bricks.Rows)
	}
	// Keys absent from the file keep their defaults
	if cfg.Ball.Radius != 8 || cfg.Bricks.Cols != 10 {
		t.Errorf("unspecified keys should keep defaults, got radius=%g cols=%d", cfg.Ball.Radius, cfg.Bricks.Cols)
	}
}

func TestLoadBreakoutErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		create  bool
		invalid bool
	}{
		{name: "missing file", create: false},
		{name: "bad yaml", content: "ball: [unclosed", create: true},
		{name: "invalid values", content: "ball:\n  radius: -1\n", create: true, invalid: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if tc.create {
				if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
					t.Fatal(err)
				}
			}

			_, _, err := LoadBreakout(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.invalid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	cfg.Ball.Speed = 0
	cfg.Bricks.Rows = 0
	cfg.Physics.MaxStep = -1

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	for _, want := range []string{"ball speed", "brick grid", "max_step"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestValidatePhysics(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *BreakoutPhysics)
		want   string
	}{
		{"launch too long", func(p *BreakoutPhysics) { p.LaunchX, p.LaunchY = 1, 1 }, "length 1"},
		{"launch too short", func(p *BreakoutPhysics) { p.LaunchX, p.LaunchY = 0.3, 0.4 }, "length 1"},
		{"launch downward", func(p *BreakoutPhysics) { p.LaunchX, p.LaunchY = 0.6, -0.8 }, "launch_x and launch_y"},
		{"launch leftward", func(p *BreakoutPhysics) { p.LaunchX, p.LaunchY = -0.6, 0.8 }, "launch_x and launch_y"},
		{"launch NaN", func(p *BreakoutPhysics) { p.LaunchX = math.NaN() }, "launch"},
		{"negative deflection", func(p *BreakoutPhysics) { p.PaddleDeflection = -0.75 }, "paddle_deflection"},
		{"NaN deflection", func(p *BreakoutPhysics) { p.PaddleDeflection = math.NaN() }, "paddle_deflection"},
		{"infinite deflection", func(p *BreakoutPhysics) { p.PaddleDeflection = math.Inf(1) }, "paddle_deflection"},
		{"negative vertical ratio", func(p *BreakoutPhysics) { p.MinVerticalRatio = -0.3 }, "min_vertical_ratio"},
		{"NaN vertical ratio", func(p *BreakoutPhysics) { p.MinVerticalRatio = math.NaN() }, "min_vertical_ratio"},
		{"vertical ratio one", func(p *BreakoutPhysics) { p.MinVerticalRatio = 1 }, "min_vertical_ratio"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.modify(&cfg.Physics)

			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateAcceptsUnitLaunch(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	cfg.Physics.LaunchX, cfg.Physics.LaunchY = math.Sqrt(0.5), math.Sqrt(0.5)
	cfg.Physics.PaddleDeflection = 0
	cfg.Physics.MinVerticalRatio = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestLoadBreakoutRejectsNonUnitLaunch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launch.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  launch_x: 1\n  launch_y: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, _, err := LoadBreakout(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadBreakout() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	normal := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&normal, DifficultyNormal)
	if normal != DefaultBreakoutConfig() {
		t.Error("normal preset should not change the config")
	}

	easy := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&easy, DifficultyEasy)
	if easy.Ball.Speed >= normal.Ball.Speed || easy.Paddle.Width <= normal.Paddle.Width {
		t.Errorf("easy should be slower with a wider paddle, got speed=%g width=%g", easy.Ball.Speed, easy.Paddle.Width)
	}

	hard := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&hard, DifficultyHard)
	if hard.Ball.Speed <= normal.Ball.Speed || hard.Paddle.Width >= normal.Paddle.Width {
		t.Errorf("hard should be faster with a narrower paddle, got speed=%g width=%g", hard.Ball.Speed, hard.Paddle.Width)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}
}

func TestMarshalRoundTripsThroughDecode(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, DifficultyHard)

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "paddle_deflection: 0.75") {
		t.Errorf("marshalled YAML should use snake_case keys:\n%s", data)
	}
}
