package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/forklift/pkg/config"
)

func TestMoveVector(t *testing.T) {
	diag := 1 / math.Sqrt2
	tests := []struct {
		name                  string
		up, down, left, right bool
		want                  mgl64.Vec2
	}{
		{"无输入", false, false, false, false, mgl64.Vec2{}},
		{"前进", true, false, false, false, mgl64.Vec2{0, 1}},
		{"倒车", false, true, false, false, mgl64.Vec2{0, -1}},
		{"上下抵消", true, true, false, false, mgl64.Vec2{}},
		{"右前方归一化", true, false, false, true, mgl64.Vec2{diag, diag}},
		{"左转", false, false, true, false, mgl64.Vec2{-1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveVector(tt.up, tt.down, tt.left, tt.right)
			if !got.ApproxEqual(tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("Space")
	if err != nil || k != ebiten.KeySpace {
		t.Errorf("Expected KeySpace, got %v (%v)", k, err)
	}
	k, err = ParseKey("arrowup")
	if err != nil || k != ebiten.KeyArrowUp {
		t.Errorf("Expected case-insensitive ArrowUp, got %v (%v)", k, err)
	}
	if _, err := ParseKey("NotAKey"); err == nil {
		t.Error("Expected error for unknown key")
	}
}

func TestResolveBindings_SkipsUnknownKeys(t *testing.T) {
	b := config.DefaultInputBindings()
	b.Grab = []string{"Space", "Bogus"}

	resolved := ResolveBindings(b)

	if len(resolved.Grab) != 1 || resolved.Grab[0] != ebiten.KeySpace {
		t.Errorf("Expected only Space bound to Grab, got %v", resolved.Grab)
	}
	if len(resolved.Up) != 2 {
		t.Errorf("Expected 2 keys for Move.up, got %d", len(resolved.Up))
	}
}
