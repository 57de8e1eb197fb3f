package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func openTestStore(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.SoundVolume != 0.6 {
		t.Errorf("SoundVolume: got %v, want 0.6", s.SoundVolume)
	}
	if !s.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if s.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestSettingsManagerNilStore 存储不可用时使用默认设置，保存不报错
func TestSettingsManagerNilStore(t *testing.T) {
	sm := NewSettingsManager(nil)
	if *sm.GetSettings() != *DefaultSettings() {
		t.Errorf("Expected defaults in degraded mode, got %+v", sm.GetSettings())
	}
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
}

func TestSettingsLoadSave(t *testing.T) {
	store := openTestStore(t, "forklift_test_settings")

	sm1 := NewSettingsManager(store)
	sm1.SetSoundVolume(0.25)
	sm1.SetSoundEnabled(false)
	sm1.SetFullscreen(true)
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got := NewSettingsManager(store).GetSettings()
	want := GameSettings{SoundVolume: 0.25, SoundEnabled: false, Fullscreen: true}
	if *got != want {
		t.Errorf("Reloaded settings = %+v, want %+v", *got, want)
	}
}

func TestSetSoundVolumeClamp(t *testing.T) {
	sm := NewSettingsManager(nil)

	tests := []struct {
		input    float64
		expected float64
	}{
		{0.5, 0.5},
		{0.0, 0.0},
		{1.0, 1.0},
		{-0.5, 0.0},
		{1.5, 1.0},
	}
	for _, tt := range tests {
		sm.SetSoundVolume(tt.input)
		if sm.GetSettings().SoundVolume != tt.expected {
			t.Errorf("SetSoundVolume(%v): got %v, want %v", tt.input, sm.GetSettings().SoundVolume, tt.expected)
		}
	}
}

func TestApplyAudio(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetSoundEnabled(false)
	sm.SetSoundVolume(0.3)

	am := NewAudioManager(nil)
	sm.ApplyAudio(am)

	if am.Volume() != 0.3 || am.Enabled() {
		t.Errorf("Expected volume 0.3 and muted, got %v / %v", am.Volume(), am.Enabled())
	}
	sm.ApplyAudio(nil)
}
