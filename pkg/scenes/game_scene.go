package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/forklift/pkg/config"
	"github.com/gonewx/forklift/pkg/game"
	"github.com/gonewx/forklift/pkg/level"
	"github.com/gonewx/forklift/pkg/systems"
	"github.com/gonewx/forklift/pkg/utils"
)

// GameScene 主关卡场景
//
// 每帧：输入 → 若干固定步长（车辆、抓取、物理、触发器）→ 倒计时 → 绘制。
// 游戏逻辑全部在 level.Level 中，本场景只负责驱动和绘制。
type GameScene struct {
	level   *level.Level
	actions *game.ActionMap
	input   *systems.InputSystem
	hud     *game.HUDState
	clock   *game.FixedStepClock

	camera utils.TopDownCamera

	hudFace   *text.GoTextFace
	finalFace *text.GoTextFace

	debug        bool
	finalElapsed float64 // 结算面板显示后经过的时间
	initErr      error
}

// NewGameScene 创建主关卡场景
//
// 参数:
//   - loader: 场景切换（结算后 Continue 回到主菜单）
//   - deps: 关卡配置、按键绑定、音效
func NewGameScene(loader game.SceneLoader, deps Deps) *GameScene {
	s := &GameScene{
		actions: game.NewActionMap(config.ActionMove, config.ActionZoom, config.ActionGrab, config.ActionContinue),
		hud:     game.NewHUDState(),
		clock:   game.NewFixedStepClock(config.FixedTimeStep, config.MaxFixedStepsPerFrame),
		camera: utils.TopDownCamera{
			ScreenWidth:  config.GameWindowWidth,
			ScreenHeight: config.GameWindowHeight,
		},
	}
	s.input = systems.NewInputSystem(s.actions, deps.Bindings)

	var err error
	if s.hudFace, err = loadFace(config.HUDFontSize); err != nil {
		log.Printf("Warning: Failed to load HUD font: %v", err)
	}
	if s.finalFace, err = loadFace(config.FinalFontSize); err != nil {
		log.Printf("Warning: Failed to load final panel font: %v", err)
	}

	var observers []game.MatchObserver
	if deps.Audio != nil {
		observers = append(observers, deps.Audio)
	}

	s.level = level.New(deps.Level, level.Deps{
		Actions:   s.actions,
		UI:        s.hud,
		Loader:    loader,
		Observers: observers,
		Seed:      deps.Seed,
	})
	if err := s.level.OnInit(); err != nil {
		log.Printf("[GameScene] ERROR: 关卡初始化失败: %v", err)
		s.initErr = err
	}

	log.Printf("[GameScene] Initialized")
	return s
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) {
	s.input.Update(deltaTime)
	if s.input.DebugToggled() {
		s.debug = !s.debug
		log.Printf("[GameScene] 调试绘制: %v", s.debug)
	}

	game.RunFrame(s.level, s.clock, deltaTime)

	if s.hud.FinalVisible {
		s.finalElapsed += deltaTime
	} else {
		s.finalElapsed = 0
	}
}

// Draw 绘制场地、区域、彩球、叉车和 HUD
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(groundColor)

	cfg := s.level.Config()
	if cfg != nil {
		s.camera.Focus = s.level.CameraFocus()
		s.camera.PixelsPerMeter = cfg.Camera.PixelsPerMeter * s.level.DisplayZoom()
	}

	if em := s.level.EntityManager(); em != nil {
		s.drawArena(screen, em)
		s.drawZones(screen, em)
		s.drawPulses(screen, em)
		s.drawBalls(screen, em)
		s.drawVehicle(screen, em)
		if s.debug {
			s.drawDebug(screen, em)
		}
	}

	s.drawHUD(screen)
	s.drawFinalPanel(screen)
}

// OnTeardown 拆除关卡（移除输入回调）
func (s *GameScene) OnTeardown() {
	s.level.OnTeardown()
}
