package systems

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/forklift/pkg/config"
	"github.com/gonewx/forklift/pkg/game"
)

// keyNames 配置文件中可用的按键名
var keyNames = map[string]ebiten.Key{
	"A": ebiten.KeyA, "B": ebiten.KeyB, "C": ebiten.KeyC, "D": ebiten.KeyD,
	"E": ebiten.KeyE, "F": ebiten.KeyF, "G": ebiten.KeyG, "H": ebiten.KeyH,
	"I": ebiten.KeyI, "J": ebiten.KeyJ, "K": ebiten.KeyK, "L": ebiten.KeyL,
	"M": ebiten.KeyM, "N": ebiten.KeyN, "O": ebiten.KeyO, "P": ebiten.KeyP,
	"Q": ebiten.KeyQ, "R": ebiten.KeyR, "S": ebiten.KeyS, "T": ebiten.KeyT,
	"U": ebiten.KeyU, "V": ebiten.KeyV, "W": ebiten.KeyW, "X": ebiten.KeyX,
	"Y": ebiten.KeyY, "Z": ebiten.KeyZ,

	"Digit0": ebiten.KeyDigit0, "Digit1": ebiten.KeyDigit1, "Digit2": ebiten.KeyDigit2,
	"Digit3": ebiten.KeyDigit3, "Digit4": ebiten.KeyDigit4, "Digit5": ebiten.KeyDigit5,
	"Digit6": ebiten.KeyDigit6, "Digit7": ebiten.KeyDigit7, "Digit8": ebiten.KeyDigit8,
	"Digit9": ebiten.KeyDigit9,

	"ArrowUp": ebiten.KeyArrowUp, "ArrowDown": ebiten.KeyArrowDown,
	"ArrowLeft": ebiten.KeyArrowLeft, "ArrowRight": ebiten.KeyArrowRight,

	"Space": ebiten.KeySpace, "Enter": ebiten.KeyEnter, "Escape": ebiten.KeyEscape,
	"Tab": ebiten.KeyTab, "Backspace": ebiten.KeyBackspace,
	"ShiftLeft": ebiten.KeyShiftLeft, "ShiftRight": ebiten.KeyShiftRight,
	"ControlLeft": ebiten.KeyControlLeft, "ControlRight": ebiten.KeyControlRight,
	"Equal": ebiten.KeyEqual, "Minus": ebiten.KeyMinus,
	"NumpadAdd": ebiten.KeyNumpadAdd, "NumpadSubtract": ebiten.KeyNumpadSubtract,
	"NumpadEnter": ebiten.KeyNumpadEnter,

	"F1": ebiten.KeyF1, "F2": ebiten.KeyF2, "F3": ebiten.KeyF3, "F4": ebiten.KeyF4,
	"F5": ebiten.KeyF5, "F6": ebiten.KeyF6, "F7": ebiten.KeyF7, "F8": ebiten.KeyF8,
	"F9": ebiten.KeyF9, "F10": ebiten.KeyF10, "F11": ebiten.KeyF11, "F12": ebiten.KeyF12,
}

// ParseKey 按名称解析按键（大小写不敏感）
func ParseKey(name string) (ebiten.Key, error) {
	if k, ok := keyNames[name]; ok {
		return k, nil
	}
	for n, k := range keyNames {
		if strings.EqualFold(n, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown key name %q", name)
}

// parseKeys 解析按键列表，无法识别的按键记录警告后跳过
func parseKeys(action string, names []string) []ebiten.Key {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		k, err := ParseKey(name)
		if err != nil {
			log.Printf("[InputSystem] Warning: %s: %v", action, err)
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

// KeyBindings 解析后的按键绑定
type KeyBindings struct {
	Up, Down, Left, Right []ebiten.Key
	ZoomIn, ZoomOut       []ebiten.Key
	Grab                  []ebiten.Key
	Continue              []ebiten.Key
	DebugToggle           []ebiten.Key
}

// ResolveBindings 将配置中的按键名解析为 ebiten.Key
func ResolveBindings(b *config.InputBindings) KeyBindings {
	if b == nil {
		b = config.DefaultInputBindings()
	}
	return KeyBindings{
		Up:          parseKeys("Move.up", b.Move.Up),
		Down:        parseKeys("Move.down", b.Move.Down),
		Left:        parseKeys("Move.left", b.Move.Left),
		Right:       parseKeys("Move.right", b.Move.Right),
		ZoomIn:      parseKeys("ZoomIn", b.ZoomIn),
		ZoomOut:     parseKeys("ZoomOut", b.ZoomOut),
		Grab:        parseKeys("Grab", b.Grab),
		Continue:    parseKeys("Continue", b.Continue),
		DebugToggle: parseKeys("DebugToggle", b.DebugToggle),
	}
}

// InputSystem 把键盘/鼠标输入翻译为逻辑动作
// 在每帧最开始运行（先于固定步长）
type InputSystem struct {
	actions      *game.ActionMap
	bindings     KeyBindings
	lastMove     mgl64.Vec2
	debugToggled bool
}

// NewInputSystem 创建输入系统
func NewInputSystem(actions *game.ActionMap, bindings KeyBindings) *InputSystem {
	return &InputSystem{actions: actions, bindings: bindings}
}

// Update 轮询输入并触发动作
func (s *InputSystem) Update(deltaTime float64) {
	s.updateMove()

	if anyJustPressed(s.bindings.Grab) {
		s.perform(config.ActionGrab, mgl64.Vec2{1, 0})
	}
	if anyJustPressed(s.bindings.Continue) {
		s.perform(config.ActionContinue, mgl64.Vec2{1, 0})
	}

	zoom := 0.0
	if anyJustPressed(s.bindings.ZoomIn) {
		zoom++
	}
	if anyJustPressed(s.bindings.ZoomOut) {
		zoom--
	}
	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		zoom += wheelY
	}
	if zoom != 0 {
		s.perform(config.ActionZoom, mgl64.Vec2{0, zoom})
	}

	s.debugToggled = anyJustPressed(s.bindings.DebugToggle)
}

// DebugToggled 本帧是否按下了调试开关
func (s *InputSystem) DebugToggled() bool {
	return s.debugToggled
}

func (s *InputSystem) updateMove() {
	move := MoveVector(
		anyPressed(s.bindings.Up), anyPressed(s.bindings.Down),
		anyPressed(s.bindings.Left), anyPressed(s.bindings.Right),
	)
	if move == s.lastMove {
		return
	}
	s.lastMove = move

	action := s.actions.FindAction(config.ActionMove)
	if action == nil {
		return
	}
	if move == (mgl64.Vec2{}) {
		action.Cancel()
	} else {
		action.Perform(move)
	}
}

func (s *InputSystem) perform(name string, value mgl64.Vec2) {
	if action := s.actions.FindAction(name); action != nil {
		action.Perform(value)
	}
}

// MoveVector 四个方向键合成 Move 向量（X 转向，Y 油门），对角方向归一化
func MoveVector(up, down, left, right bool) mgl64.Vec2 {
	var v mgl64.Vec2
	if up {
		v[1]++
	}
	if down {
		v[1]--
	}
	if right {
		v[0]++
	}
	if left {
		v[0]--
	}
	if l := v.Len(); l > 1 {
		v = v.Mul(1 / l)
	}
	return v
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
