package scenes

import (
	"image/color"
	"log"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/forklift/pkg/config"
	"github.com/gonewx/forklift/pkg/core"
	"github.com/gonewx/forklift/pkg/game"
	"github.com/gonewx/forklift/pkg/systems"
	"github.com/gonewx/forklift/pkg/utils"
)

// addOperandModulus 两个加数在 [0, 10] 内循环
const addOperandModulus = 11

// 加号漂移参数（方向键移动加号，松开后减速停下）
const (
	plusMoveSpeed    = 5.0
	plusDeceleration = 2.0
	plusDriftPixels  = 120.0 // 单位速度对应的像素/秒
)

var (
	addDemoBackground = color.RGBA{R: 16, G: 16, B: 16, A: 255}
	addDemoForeground = color.RGBA{R: 240, G: 240, B: 240, A: 255}
)

// AddDemoScene 两个数字和它们的和
// 点击屏幕左半边左数加一，右半边右数加一（模 11），结果由 core.Add 计算
// 方向键通过 core.MovePlayer 推动加号
type AddDemoScene struct {
	loader  game.SceneLoader
	actions *game.ActionMap
	input   *systems.InputSystem

	continueAction   *game.Action
	continueListener game.ListenerID

	left, right, result int

	moveAction   *game.Action
	plusOffset   mgl64.Vec2
	plusVelocity mgl64.Vec3

	headerFace *text.GoTextFace
	numberFace *text.GoTextFace
	plusFace   *text.GoTextFace
}

// NewAddDemoScene 创建 add 演示场景
func NewAddDemoScene(loader game.SceneLoader, deps Deps) *AddDemoScene {
	s := &AddDemoScene{
		loader:  loader,
		actions: game.NewActionMap(config.ActionMove, config.ActionContinue),
		left:    1,
		right:   0,
	}
	s.input = systems.NewInputSystem(s.actions, deps.Bindings)
	s.result = core.Add(s.left, s.right)

	h := float64(config.GameWindowHeight)
	var err error
	if s.headerFace, err = loadFace(20); err != nil {
		log.Printf("Warning: Failed to load header font: %v", err)
	}
	if s.numberFace, err = loadFace(h * 0.4); err != nil {
		log.Printf("Warning: Failed to load number font: %v", err)
	}
	if s.plusFace, err = loadFace(h * 0.2); err != nil {
		log.Printf("Warning: Failed to load plus font: %v", err)
	}

	s.moveAction = s.actions.FindAction(config.ActionMove)
	s.moveAction.Enable()

	s.continueAction = s.actions.FindAction(config.ActionContinue)
	s.continueAction.Enable()
	s.continueListener = s.continueAction.OnPerformed(func(game.ActionContext) {
		s.loader.LoadScene(config.SceneMainMenu)
	})
	return s
}

// nextOperands 根据点击位置递增对应的加数
func nextOperands(left, right, x, width int) (int, int) {
	if x < width/2 {
		return (left + 1) % addOperandModulus, right
	}
	return left, (right + 1) % addOperandModulus
}

// stepPlusDrift 推进加号的速度和屏幕偏移
// move 为方向键合成向量（Y 向上为正），偏移限制在 ±limit 内
func stepPlusDrift(offset mgl64.Vec2, velocity mgl64.Vec3, move, limit mgl64.Vec2, dt float64) (mgl64.Vec2, mgl64.Vec3) {
	velocity = core.MovePlayer(mgl64.Vec3{move.X(), move.Y(), 0}, plusMoveSpeed, plusDeceleration, velocity, dt)
	offset = offset.Add(mgl64.Vec2{velocity.X(), -velocity.Z()}.Mul(plusDriftPixels * dt))
	offset[0] = utils.Clamp(offset.X(), -limit.X(), limit.X())
	offset[1] = utils.Clamp(offset.Y(), -limit.Y(), limit.Y())
	return offset, velocity
}

// Update 处理点击和加号移动
func (s *AddDemoScene) Update(deltaTime float64) {
	s.input.Update(deltaTime)

	limit := mgl64.Vec2{float64(config.GameWindowWidth) / 8, float64(config.GameWindowHeight) / 8}
	s.plusOffset, s.plusVelocity = stepPlusDrift(s.plusOffset, s.plusVelocity, s.moveAction.Value(), limit, deltaTime)

	if p, ok := utils.JustPressedPointer(); ok {
		s.left, s.right = nextOperands(s.left, s.right, int(p.X()), config.GameWindowWidth)
		s.result = core.Add(s.left, s.right)
	}
}

// Draw 左数 + 右数，结果在下方
func (s *AddDemoScene) Draw(screen *ebiten.Image) {
	screen.Fill(addDemoBackground)

	w := float64(config.GameWindowWidth)
	h := float64(config.GameWindowHeight)
	numberSize := h * 0.5

	drawText(screen, core.LibName(), s.headerFace, 10, 10, text.AlignStart, addDemoForeground)
	drawText(screen, strconv.Itoa(s.left), s.numberFace, w/4, h/2-numberSize/2, text.AlignCenter, addDemoForeground)
	drawText(screen, strconv.Itoa(s.right), s.numberFace, 3*w/4, h/2-numberSize/2, text.AlignCenter, addDemoForeground)
	drawText(screen, "+", s.plusFace, w/2+s.plusOffset.X(), h/2-numberSize/4+s.plusOffset.Y(), text.AlignCenter, addDemoForeground)
	drawText(screen, strconv.Itoa(s.result), s.numberFace, w/2, h/2+numberSize/8, text.AlignCenter, addDemoForeground)
}

// OnTeardown 移除 Continue 回调并禁用动作
func (s *AddDemoScene) OnTeardown() {
	s.continueAction.RemoveListener(s.continueListener)
	s.actions.DisableAll()
}
