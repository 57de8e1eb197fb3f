package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadBundledInputBindings(t *testing.T) {
	b, err := LoadInputBindings("../../data/input_bindings.yaml")
	if err != nil {
		t.Fatalf("LoadInputBindings() error: %v", err)
	}
	if !reflect.DeepEqual(b, DefaultInputBindings()) {
		t.Errorf("Bundled bindings should match defaults, got %+v", b)
	}
}

// TestParseInputBindingsFillsMissing 未配置的动作使用默认按键
func TestParseInputBindingsFillsMissing(t *testing.T) {
	b, err := ParseInputBindings([]byte("grab: [G]\nmove:\n  up: [I]\n"))
	if err != nil {
		t.Fatalf("ParseInputBindings() error: %v", err)
	}
	if !reflect.DeepEqual(b.Grab, []string{"G"}) {
		t.Errorf("Grab = %v, want [G]", b.Grab)
	}
	if !reflect.DeepEqual(b.Move.Up, []string{"I"}) {
		t.Errorf("Move.Up = %v, want [I]", b.Move.Up)
	}
	defaults := DefaultInputBindings()
	if !reflect.DeepEqual(b.Move.Down, defaults.Move.Down) || !reflect.DeepEqual(b.Continue, defaults.Continue) {
		t.Error("Missing actions should fall back to defaults")
	}

	// 默认值是副本，修改不影响下一次
	b.Continue[0] = "Q"
	if DefaultInputBindings().Continue[0] != "Escape" {
		t.Error("Defaults must not be shared with parsed bindings")
	}
}

func TestParseInputBindingsErrors(t *testing.T) {
	if _, err := ParseInputBindings([]byte("grab: {")); err == nil {
		t.Error("Expected YAML error")
	}
	if _, err := LoadInputBindings(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected missing file error")
	}

	path := filepath.Join(t.TempDir(), "b.yaml")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInputBindings(path); err != nil {
		t.Errorf("Empty bindings file should load with defaults: %v", err)
	}
}
