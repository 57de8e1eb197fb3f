package core

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		left, right, want int
	}{
		{1, 0, 1},
		{10, 10, 20},
		{-3, 5, 2},
	}
	for _, tt := range tests {
		if got := Add(tt.left, tt.right); got != tt.want {
			t.Errorf("Add(%d, %d): expected %d, got %d", tt.left, tt.right, tt.want, got)
		}
	}
}

func TestLibName(t *testing.T) {
	name := LibName()
	want := "core_" + Target + "_" + Mode + "_" + Version
	if name != want {
		t.Errorf("Expected %q, got %q", want, name)
	}
	if !strings.HasPrefix(name, "core_") {
		t.Errorf("Expected core_ prefix, got %q", name)
	}
}

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion(Version)
	if err != nil {
		t.Fatalf("Current version should parse: %v", err)
	}
	if v.String() != Version {
		t.Errorf("Expected round trip %q, got %q", Version, v.String())
	}

	v, err = ParseVersion("1-2-3-00042")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if v.Base != "1-2-3" || v.Build != 42 {
		t.Errorf("Expected base 1-2-3 build 42, got %s %d", v.Base, v.Build)
	}

	for _, bad := range []string{"", "1-2-3", "1-2-3-42", "a-2-3-00001", "1-2-3-0000x"} {
		if _, err := ParseVersion(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

func TestMovePlayer(t *testing.T) {
	// 无输入：向 0 减速
	v := MovePlayer(mgl64.Vec3{}, 5, 2, mgl64.Vec3{4, 0, 0}, 0.25)
	if math.Abs(v.X()-2) > 1e-9 {
		t.Errorf("Expected X=2 after deceleration, got %v", v)
	}

	// 有输入：Y 分量映射到 Z
	v = MovePlayer(mgl64.Vec3{0, 1, 0}, 5, 2, mgl64.Vec3{}, 0)
	if v != (mgl64.Vec3{0, 0, 1}) {
		t.Errorf("Expected (0,0,1), got %v", v)
	}
}
