// Package tui 终端前端：用 tcell 驱动和 Ebitengine 版本相同的关卡逻辑
//
// 终端没有按键抬起事件，方向键按下后保持 holdDuration 秒，
// 终端的按键自动重复会不断刷新这个时间，松开后输入自然归零。
package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/forklift/pkg/config"
	"github.com/gonewx/forklift/pkg/game"
	"github.com/gonewx/forklift/pkg/level"
	"github.com/gonewx/forklift/pkg/systems"
)

const (
	frameInterval = 16 * time.Millisecond
	holdDuration  = 0.25
)

// direction 方向键
type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
	dirCount
)

// Options 终端前端启动参数
type Options struct {
	Level *config.LevelConfig
	Seed  int64
}

// Frontend 终端前端
// 同时实现 game.SceneLoader：Continue 之后重开一局
type Frontend struct {
	screen tcell.Screen
	opts   Options

	level   *level.Level
	actions *game.ActionMap
	hud     *game.HUDState
	clock   *game.FixedStepClock

	held     [dirCount]float64 // 每个方向键剩余的保持时间
	lastMove mgl64.Vec2
	restart  bool
	now      float64
}

// New 创建终端前端（screen 由调用方初始化和释放）
func New(screen tcell.Screen, opts Options) (*Frontend, error) {
	f := &Frontend{screen: screen, opts: opts}
	if err := f.startLevel(); err != nil {
		return nil, err
	}
	return f, nil
}

// LoadScene 结算后的 Continue：下一帧重开一局
func (f *Frontend) LoadScene(name string) {
	log.Printf("[TUI] 请求场景 %s，重开关卡", name)
	f.restart = true
}

func (f *Frontend) startLevel() error {
	if f.level != nil {
		f.level.OnTeardown()
	}

	f.actions = game.NewActionMap(config.ActionMove, config.ActionZoom, config.ActionGrab, config.ActionContinue)
	f.hud = game.NewHUDState()
	f.clock = game.NewFixedStepClock(config.FixedTimeStep, config.MaxFixedStepsPerFrame)
	f.held = [dirCount]float64{}
	f.lastMove = mgl64.Vec2{}

	f.level = level.New(f.opts.Level, level.Deps{
		Actions: f.actions,
		UI:      f.hud,
		Loader:  f,
		Seed:    f.opts.Seed,
	})
	if err := f.level.OnInit(); err != nil {
		return fmt.Errorf("failed to init level: %w", err)
	}
	return nil
}

// HandleEvent 处理一个终端事件，返回 false 表示退出
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true
}

func (f *Frontend) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		f.held[dirUp] = holdDuration
	case tcell.KeyDown:
		f.held[dirDown] = holdDuration
	case tcell.KeyLeft:
		f.held[dirLeft] = holdDuration
	case tcell.KeyRight:
		f.held[dirRight] = holdDuration
	case tcell.KeyEnter, tcell.KeyEscape:
		f.actions.FindAction(config.ActionContinue).Perform(mgl64.Vec2{1, 0})
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case 'w':
			f.held[dirUp] = holdDuration
		case 's':
			f.held[dirDown] = holdDuration
		case 'a':
			f.held[dirLeft] = holdDuration
		case 'd':
			f.held[dirRight] = holdDuration
		case ' ', 'e':
			f.actions.FindAction(config.ActionGrab).Perform(mgl64.Vec2{1, 0})
		case '+', '=':
			f.actions.FindAction(config.ActionZoom).Perform(mgl64.Vec2{0, 1})
		case '-':
			f.actions.FindAction(config.ActionZoom).Perform(mgl64.Vec2{0, -1})
		}
	}
	return true
}

// Step 推进一帧：方向键衰减 → Move 动作 → 关卡帧
func (f *Frontend) Step(deltaTime float64) {
	if f.restart {
		f.restart = false
		if err := f.startLevel(); err != nil {
			log.Printf("[TUI] ERROR: %v", err)
		}
	}

	f.now += deltaTime
	for i := range f.held {
		f.held[i] -= deltaTime
	}
	f.updateMove()

	game.RunFrame(f.level, f.clock, deltaTime)
}

func (f *Frontend) updateMove() {
	move := systems.MoveVector(f.held[dirUp] > 0, f.held[dirDown] > 0, f.held[dirLeft] > 0, f.held[dirRight] > 0)
	if move == f.lastMove {
		return
	}
	f.lastMove = move
	a := f.actions.FindAction(config.ActionMove)
	if move == (mgl64.Vec2{}) {
		a.Cancel()
		return
	}
	a.Perform(move)
}

// Run 事件循环，直到按下 q 或 Ctrl+C
func (f *Frontend) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !f.HandleEvent(ev) {
				f.level.OnTeardown()
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > config.MaxFrameDelta {
				dt = config.MaxFrameDelta
			}
			f.Step(dt)
			f.Draw()
		}
	}
}
