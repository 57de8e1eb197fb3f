package game

import (
	"fmt"
	"time"

	"github.com/gonewx/forklift/pkg/utils"
)

// UISink 界面边界：比赛协调者只通过它更新界面
type UISink interface {
	UpdateScore(score, total int)
	UpdateTimer(remaining time.Duration)
	SetGameOver(message string)
}

// HUDState 保存界面要显示的文本
// Ebitengine 场景和终端前端都从这里读取
type HUDState struct {
	ScoreText    string
	TimerText    string
	FinalMessage string
	FinalVisible bool
}

// NewHUDState 创建初始界面状态（结算面板隐藏）
func NewHUDState() *HUDState {
	return &HUDState{
		ScoreText: "0/0",
		TimerText: utils.FormatTimer(0),
	}
}

// UpdateScore 更新分数文本 "当前/总数"
func (h *HUDState) UpdateScore(score, total int) {
	h.ScoreText = fmt.Sprintf("%d/%d", score, total)
}

// UpdateTimer 更新倒计时文本 "mm:ss:ffff"
func (h *HUDState) UpdateTimer(remaining time.Duration) {
	h.TimerText = utils.FormatTimer(remaining)
}

// SetGameOver 显示结算面板
func (h *HUDState) SetGameOver(message string) {
	h.FinalMessage = message
	h.FinalVisible = true
}
