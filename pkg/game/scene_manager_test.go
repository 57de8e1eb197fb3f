package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	tornDown     int
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// OnTeardown records teardown calls.
func (m *MockScene) OnTeardown() {
	m.tornDown++
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.currentScene != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerSwitchTo verifies that SwitchTo changes the scene and tears down the old one.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	first := &MockScene{}
	second := &MockScene{}

	sm.SwitchTo(first)
	sm.SwitchTo(second)

	if sm.currentScene != second {
		t.Error("SwitchTo did not set the current scene correctly")
	}
	if first.tornDown != 1 {
		t.Errorf("Expected previous scene torn down once, got %d", first.tornDown)
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %f, got %f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerLoadSceneIsDeferred verifies that LoadScene takes effect on the next Update.
func TestSceneManagerLoadSceneIsDeferred(t *testing.T) {
	sm := NewSceneManager()
	menu := &MockScene{}
	created := 0
	sm.Register("MainMenu", func(*SceneManager) Scene {
		created++
		return menu
	})

	sm.LoadScene("MainMenu")
	if sm.GetCurrentScene() != nil || created != 0 {
		t.Fatal("Expected scene creation to wait for Update")
	}

	sm.Update(0.016)
	if sm.GetCurrentScene() != menu {
		t.Error("Expected MainMenu to be active after Update")
	}
	if sm.CurrentSceneName() != "MainMenu" {
		t.Errorf("Expected current scene name MainMenu, got %q", sm.CurrentSceneName())
	}
	if !menu.updateCalled {
		t.Error("Expected the new scene to be updated in the same frame")
	}
}

// TestSceneManagerUnknownScene verifies that unknown scene names keep the current scene.
func TestSceneManagerUnknownScene(t *testing.T) {
	sm := NewSceneManager()
	current := &MockScene{}
	sm.SwitchTo(current)

	sm.LoadScene("Nowhere")
	sm.Update(0.016)

	if sm.GetCurrentScene() != current {
		t.Error("Expected current scene to stay active for an unknown scene name")
	}
	if current.tornDown != 0 {
		t.Error("Expected no teardown for a failed scene load")
	}
}
