package game

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/forklift/pkg/config"
)

type fakeLoader struct {
	loaded []string
}

func (f *fakeLoader) LoadScene(name string) { f.loaded = append(f.loaded, name) }

type countingObserver struct {
	scored   int
	outcomes []Outcome
}

func (c *countingObserver) OnScored(score, total int)   { c.scored++ }
func (c *countingObserver) OnMatchOver(outcome Outcome) { c.outcomes = append(c.outcomes, outcome) }

func newTestMatch(total int) (*MatchController, *HUDState, *ActionMap, *fakeLoader) {
	hud := NewHUDState()
	actions := NewActionMap(config.ActionMove, config.ActionZoom, config.ActionGrab, config.ActionContinue)
	for _, name := range []string{config.ActionMove, config.ActionZoom, config.ActionGrab} {
		actions.FindAction(name).Enable()
	}
	loader := &fakeLoader{}
	m := NewMatchController(MatchConfig{
		Total:         total,
		UI:            hud,
		Actions:       actions,
		Loader:        loader,
		ContinueScene: config.SceneMainMenu,
		WinMessage:    "You Win!\n(press ESCAPE)",
		LoseMessage:   "You lose!\n(press ESCAPE)",
	})
	m.Start()
	return m, hud, actions, loader
}

func TestMatchController_WinAfterAllZones(t *testing.T) {
	m, hud, actions, loader := newTestMatch(4)
	obs := &countingObserver{}
	m.AddObserver(obs)

	if hud.ScoreText != "0/4" {
		t.Errorf("Expected initial score 0/4, got %s", hud.ScoreText)
	}

	for i := 0; i < 4; i++ {
		m.OnZoneScored(0, 0)
	}

	if m.Score() != 4 || m.Outcome() != OutcomeWin {
		t.Fatalf("Expected win with score 4, got %d (%v)", m.Score(), m.Outcome())
	}
	if !m.GoalAchieved() {
		t.Error("Expected goal achieved")
	}
	if hud.ScoreText != "4/4" || !hud.FinalVisible || hud.FinalMessage != "You Win!\n(press ESCAPE)" {
		t.Errorf("Unexpected HUD state: %+v", hud)
	}

	// 结算后不再计分
	m.OnZoneScored(0, 0)
	if m.Score() != 4 {
		t.Errorf("Expected score frozen at 4, got %d", m.Score())
	}

	// 输入被冻结，只有 Continue 可用
	enabled := actions.EnabledActions()
	if len(enabled) != 1 || enabled[0] != config.ActionContinue {
		t.Errorf("Expected only Continue enabled, got %v", enabled)
	}

	actions.FindAction(config.ActionContinue).Perform(mgl64.Vec2{1, 0})
	if len(loader.loaded) != 1 || loader.loaded[0] != config.SceneMainMenu {
		t.Errorf("Expected MainMenu load request, got %v", loader.loaded)
	}

	if obs.scored != 4 || len(obs.outcomes) != 1 || obs.outcomes[0] != OutcomeWin {
		t.Errorf("Unexpected observer events: %+v", obs)
	}
}

func TestMatchController_LoseOnExpiry(t *testing.T) {
	m, hud, actions, _ := newTestMatch(4)
	m.OnZoneScored(0, 0)

	m.OnTimerUpdated(0)
	m.OnTimerExpired()

	if m.Outcome() != OutcomeLose {
		t.Fatalf("Expected lose, got %v", m.Outcome())
	}
	if hud.TimerText != "00:00:0000" {
		t.Errorf("Expected timer 00:00:0000, got %s", hud.TimerText)
	}
	if hud.FinalMessage != "You lose!\n(press ESCAPE)" {
		t.Errorf("Unexpected lose message %q", hud.FinalMessage)
	}
	if actions.FindAction(config.ActionGrab).Enabled() {
		t.Error("Expected Grab disabled after losing")
	}
	if !m.ContinueArmed() {
		t.Error("Expected Continue armed after losing")
	}
}

func TestMatchController_ExpiryAfterWinIsIgnored(t *testing.T) {
	m, _, _, _ := newTestMatch(1)
	m.OnZoneScored(0, 0)
	m.OnTimerExpired()

	if m.Outcome() != OutcomeWin {
		t.Errorf("Expected win to stand, got %v", m.Outcome())
	}
}

func TestMatchController_TeardownDisarmsContinue(t *testing.T) {
	m, _, actions, loader := newTestMatch(1)
	m.OnTimerExpired()

	m.Teardown()

	cont := actions.FindAction(config.ActionContinue)
	if cont.Enabled() {
		t.Error("Expected Continue disabled after teardown")
	}
	if cont.ListenerCount() != 0 {
		t.Errorf("Expected Continue listener removed, got %d", cont.ListenerCount())
	}

	// 即使重新启用，旧回调也不会触发
	cont.Enable()
	cont.Perform(mgl64.Vec2{1, 0})
	if len(loader.loaded) != 0 {
		t.Errorf("Expected no scene load after teardown, got %v", loader.loaded)
	}
}

func TestHUDStateTimerFormat(t *testing.T) {
	hud := NewHUDState()
	hud.UpdateTimer(61*time.Second + 234500*time.Microsecond)
	if hud.TimerText != "01:01:2345" {
		t.Errorf("Expected 01:01:2345, got %s", hud.TimerText)
	}
}
