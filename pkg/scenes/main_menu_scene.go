package scenes

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/forklift/pkg/config"
	"github.com/gonewx/forklift/pkg/core"
	"github.com/gonewx/forklift/pkg/game"
	"github.com/gonewx/forklift/pkg/systems"
	"github.com/gonewx/forklift/pkg/utils"
)

// 主菜单布局
const (
	menuDemoButtonWidth  = 220.0
	menuDemoButtonHeight = 48.0
	menuDemoButtonY      = 440.0
)

var (
	menuBackground  = color.RGBA{R: 24, G: 32, B: 40, A: 255}
	menuTitleColor  = color.RGBA{R: 244, G: 162, B: 97, A: 255}
	menuHintColor   = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	menuButtonColor = color.RGBA{R: 69, G: 123, B: 157, A: 255}
)

// MainMenuScene 主菜单
// Continue 动作进入主关卡；点击下方按钮进入 add 演示
type MainMenuScene struct {
	loader  game.SceneLoader
	actions *game.ActionMap
	input   *systems.InputSystem

	continueAction   *game.Action
	continueListener game.ListenerID

	titleFace *text.GoTextFace
	hintFace  *text.GoTextFace
}

// NewMainMenuScene 创建主菜单场景
func NewMainMenuScene(loader game.SceneLoader, deps Deps) *MainMenuScene {
	m := &MainMenuScene{
		loader:  loader,
		actions: game.NewActionMap(config.ActionContinue),
	}
	m.input = systems.NewInputSystem(m.actions, deps.Bindings)

	var err error
	if m.titleFace, err = loadFace(56); err != nil {
		log.Printf("Warning: Failed to load title font: %v", err)
	}
	if m.hintFace, err = loadFace(config.HUDFontSize); err != nil {
		log.Printf("Warning: Failed to load hint font: %v", err)
	}

	m.continueAction = m.actions.FindAction(config.ActionContinue)
	m.continueAction.Enable()
	m.continueListener = m.continueAction.OnPerformed(func(game.ActionContext) {
		m.loader.LoadScene(config.SceneMain)
	})

	log.Printf("[MainMenuScene] Initialized")
	return m
}

// Update 轮询输入
func (m *MainMenuScene) Update(deltaTime float64) {
	m.input.Update(deltaTime)

	if p, ok := utils.JustPressedPointer(); ok && demoButtonContains(p.X(), p.Y()) {
		m.loader.LoadScene(config.SceneAddDemo)
	}
}

// demoButtonContains 点是否落在 add 演示按钮上
func demoButtonContains(x, y float64) bool {
	left := (config.GameWindowWidth - menuDemoButtonWidth) / 2
	return x >= left && x < left+menuDemoButtonWidth &&
		y >= menuDemoButtonY && y < menuDemoButtonY+menuDemoButtonHeight
}

// Draw 绘制主菜单
func (m *MainMenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(menuBackground)

	cx := float64(config.GameWindowWidth) / 2
	drawText(screen, "Forklift Yard", m.titleFace, cx, 150, text.AlignCenter, menuTitleColor)
	drawText(screen, "Press ENTER to start", m.hintFace, cx, 300, text.AlignCenter, menuHintColor)

	left := float32((config.GameWindowWidth - menuDemoButtonWidth) / 2)
	vector.DrawFilledRect(screen, left, menuDemoButtonY, menuDemoButtonWidth, menuDemoButtonHeight, menuButtonColor, false)
	drawText(screen, "Add demo", m.hintFace, cx, menuDemoButtonY+10, text.AlignCenter, menuHintColor)

	drawText(screen, core.LibName(), m.hintFace, config.HUDMargin, float64(config.GameWindowHeight)-config.HUDMargin-config.HUDFontSize, text.AlignStart, menuHintColor)
}

// OnTeardown 移除 Continue 回调并禁用动作
func (m *MainMenuScene) OnTeardown() {
	m.continueAction.RemoveListener(m.continueListener)
	m.actions.DisableAll()
}
