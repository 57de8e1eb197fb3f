package game

import (
	"log"
	"time"

	"github.com/gonewx/forklift/pkg/config"
	"github.com/gonewx/forklift/pkg/ecs"
)

// Outcome 比赛结果
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeWin
	OutcomeLose
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "Pending"
	case OutcomeWin:
		return "Win"
	case OutcomeLose:
		return "Lose"
	default:
		return "Unknown"
	}
}

// MatchObserver 比赛事件观察者（音效、事件日志）
type MatchObserver interface {
	OnScored(score, total int)
	OnMatchOver(outcome Outcome)
}

// MatchConfig 比赛协调者的依赖和参数
type MatchConfig struct {
	Total         int         // 彩球总数
	UI            UISink      // 界面
	Actions       *ActionMap  // 输入动作表
	Loader        SceneLoader // 场景切换
	ContinueScene string      // Continue 动作切换到的场景
	WinMessage    string
	LoseMessage   string
}

// MatchController 比赛协调者
//
// 职责：
//   - 累计分数，分数达到总数时判胜
//   - 倒计时耗尽且未达成目标时判负
//   - 结算时冻结所有输入，并挂上 Continue 回调（切换场景）
//   - 拆除时移除 Continue 回调并禁用该动作
//
// 结算后分数和计时都不再变化。
type MatchController struct {
	cfg MatchConfig

	score   int
	outcome Outcome

	observers []MatchObserver

	continueArmed    bool
	continueListener ListenerID
}

// NewMatchController 创建比赛协调者
func NewMatchController(cfg MatchConfig) *MatchController {
	return &MatchController{cfg: cfg}
}

// AddObserver 注册观察者
func (m *MatchController) AddObserver(o MatchObserver) {
	if o != nil {
		m.observers = append(m.observers, o)
	}
}

// Start 初始化界面（分数 0/N）
func (m *MatchController) Start() {
	if m.cfg.UI != nil {
		m.cfg.UI.UpdateScore(m.score, m.cfg.Total)
	}
}

// Score 当前分数
func (m *MatchController) Score() int { return m.score }

// Total 彩球总数
func (m *MatchController) Total() int { return m.cfg.Total }

// Outcome 比赛结果
func (m *MatchController) Outcome() Outcome { return m.outcome }

// ContinueArmed Continue 回调是否已挂上
func (m *MatchController) ContinueArmed() bool { return m.continueArmed }

// OnZoneScored 区域计分事件（ZoneScoringSystem 调用）
func (m *MatchController) OnZoneScored(zone, ball ecs.EntityID) {
	if m.outcome != OutcomePending {
		return
	}

	m.score++
	if m.cfg.UI != nil {
		m.cfg.UI.UpdateScore(m.score, m.cfg.Total)
	}
	for _, o := range m.observers {
		o.OnScored(m.score, m.cfg.Total)
	}

	if m.score == m.cfg.Total {
		m.finish(OutcomeWin, m.cfg.WinMessage)
	}
}

// GoalAchieved 是否已达成目标（CountdownSystem 每帧检查）
func (m *MatchController) GoalAchieved() bool {
	return m.outcome == OutcomeWin
}

// OnTimerUpdated 倒计时更新
func (m *MatchController) OnTimerUpdated(remaining time.Duration) {
	if m.cfg.UI != nil {
		m.cfg.UI.UpdateTimer(remaining)
	}
}

// OnTimerExpired 倒计时耗尽（目标未达成）
func (m *MatchController) OnTimerExpired() {
	if m.outcome != OutcomePending {
		return
	}
	m.finish(OutcomeLose, m.cfg.LoseMessage)
}

func (m *MatchController) finish(outcome Outcome, message string) {
	m.outcome = outcome
	log.Printf("[MatchController] 比赛结束: %s (%d/%d)", outcome, m.score, m.cfg.Total)

	if m.cfg.UI != nil {
		m.cfg.UI.SetGameOver(message)
	}
	m.freezeInput()
	m.armContinue()

	for _, o := range m.observers {
		o.OnMatchOver(outcome)
	}
}

func (m *MatchController) freezeInput() {
	if m.cfg.Actions != nil {
		m.cfg.Actions.DisableAll()
	}
}

func (m *MatchController) armContinue() {
	cont := m.cfg.Actions.FindAction(config.ActionContinue)
	if cont == nil {
		log.Printf("[MatchController] ERROR: no %s action", config.ActionContinue)
		return
	}
	if m.continueArmed {
		return
	}

	cont.Enable()
	m.continueListener = cont.OnPerformed(func(ActionContext) {
		if m.cfg.Loader != nil {
			m.cfg.Loader.LoadScene(m.cfg.ContinueScene)
		}
	})
	m.continueArmed = true
}

// Teardown 移除 Continue 回调并禁用该动作
func (m *MatchController) Teardown() {
	cont := m.cfg.Actions.FindAction(config.ActionContinue)
	if cont == nil {
		return
	}
	if m.continueArmed {
		cont.RemoveListener(m.continueListener)
		m.continueArmed = false
	}
	cont.Disable()
}
