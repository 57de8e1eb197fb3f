package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const minimalLevelYAML = `id: test
palette: ["#ff0000", "#00ff00"]
balls:
  count: 2
spawnArea:
  extents: { x: 2, y: 0.05, z: 2 }
arena:
  extents: { x: 10, y: 0, z: 10 }
zones:
  - center: { x: -5, y: 0.5, z: 5 }
    extents: { x: 1, y: 1, z: 1 }
  - center: { x: 5, y: 0.5, z: 5 }
    extents: { x: 1, y: 1, z: 1 }
`

func TestLoadLevelConfig(t *testing.T) {
	t.Run("bundled main level", func(t *testing.T) {
		cfg, err := LoadLevelConfig("../../data/levels/main.yaml")
		if err != nil {
			t.Fatalf("LoadLevelConfig() error: %v", err)
		}
		if cfg.ID != "main" {
			t.Errorf("ID = %q, want main", cfg.ID)
		}
		if err := cfg.CheckCounts(); err != nil {
			t.Errorf("Bundled level should have matching counts: %v", err)
		}
		if cfg.Duration() != 60*time.Second {
			t.Errorf("Duration = %v, want 60s", cfg.Duration())
		}
	})

	t.Run("file on disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "level.yaml")
		if err := os.WriteFile(path, []byte(minimalLevelYAML), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
		if _, err := LoadLevelConfig(path); err != nil {
			t.Errorf("LoadLevelConfig() error: %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadLevelConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("Expected error for missing file")
		}
	})
}

// TestParseLevelConfigDefaults 缺失的可选字段使用默认值
func TestParseLevelConfigDefaults(t *testing.T) {
	cfg, err := ParseLevelConfig([]byte(minimalLevelYAML))
	if err != nil {
		t.Fatalf("ParseLevelConfig() error: %v", err)
	}

	checks := []struct {
		name      string
		got, want float64
	}{
		{"durationSeconds", cfg.DurationSeconds, 60},
		{"balls.radius", cfg.Balls.Radius, 0.35},
		{"vehicle.wheelBase", cfg.Vehicle.WheelBase, 1.6},
		{"vehicle.maxSteerAngleDeg", cfg.Vehicle.MaxSteerAngleDeg, 35},
		{"carry.pickupRange", cfg.Carry.PickupRange, 1.2},
		{"carry.holdingOffset.z", cfg.Carry.HoldingOffset.Z, 1.6},
		{"physics.gravity", cfg.Physics.Gravity, -9.81},
		{"camera.maxZoom", cfg.Camera.MaxZoom, 2},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if cfg.Balls.MaxSpawnAttempts != 10000 {
		t.Errorf("balls.maxSpawnAttempts = %d, want 10000", cfg.Balls.MaxSpawnAttempts)
	}
	if cfg.Messages.Win != "You Win!\n(press ESCAPE)" || cfg.Messages.Lose != "You lose!\n(press ESCAPE)" {
		t.Errorf("Unexpected default messages %+v", cfg.Messages)
	}
}

func TestParseLevelConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"缺少 ID", `balls: {count: 0}
spawnArea: {extents: {x: 1, z: 1}}
arena: {extents: {x: 1, z: 1}}`},
		{"重复颜色", `id: x
palette: ["#ff0000", "#FF0000"]
spawnArea: {extents: {x: 1, z: 1}}
arena: {extents: {x: 1, z: 1}}`},
		{"非法颜色", `id: x
palette: ["red"]
spawnArea: {extents: {x: 1, z: 1}}
arena: {extents: {x: 1, z: 1}}`},
		{"生成区域为空", `id: x
spawnArea: {extents: {x: 0, z: 1}}
arena: {extents: {x: 1, z: 1}}`},
		{"转向角过大", `id: x
spawnArea: {extents: {x: 1, z: 1}}
arena: {extents: {x: 1, z: 1}}
vehicle: {maxSteerAngleDeg: 90}`},
		{"缩放范围颠倒", `id: x
spawnArea: {extents: {x: 1, z: 1}}
arena: {extents: {x: 1, z: 1}}
camera: {minZoom: 3, maxZoom: 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevelConfig([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	if _, err := ParseLevelConfig([]byte("id: [unclosed")); err == nil {
		t.Error("Expected YAML syntax error")
	}
}

// TestCheckCounts 计数不一致不阻止加载，但 CheckCounts 报错
func TestCheckCounts(t *testing.T) {
	cfg, err := ParseLevelConfig([]byte(minimalLevelYAML))
	if err != nil {
		t.Fatalf("ParseLevelConfig() error: %v", err)
	}
	if err := cfg.CheckCounts(); err != nil {
		t.Errorf("CheckCounts() error: %v", err)
	}

	cfg.Zones = cfg.Zones[:1]
	if err := cfg.CheckCounts(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected zone count error, got %v", err)
	}

	cfg, _ = ParseLevelConfig([]byte(minimalLevelYAML))
	cfg.Palette = append(cfg.Palette, "#0000ff")
	if err := cfg.CheckCounts(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected color count error, got %v", err)
	}
}

func TestAngleConversions(t *testing.T) {
	v := VehicleConfig{HeadingDeg: 180, MaxSteerAngleDeg: 45}
	if got := v.HeadingRad(); got < 3.14159 || got > 3.14160 {
		t.Errorf("HeadingRad() = %v, want π", got)
	}
	if got := v.MaxSteerAngleRad(); got < 0.78539 || got > 0.78540 {
		t.Errorf("MaxSteerAngleRad() = %v, want π/4", got)
	}
}
