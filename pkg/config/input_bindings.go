package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 输入动作名称
const (
	ActionMove     = "Move"
	ActionZoom     = "Zoom"
	ActionGrab     = "Grab"
	ActionContinue = "Continue"
)

// InputBindings 输入绑定配置
// 按键名使用 Ebitengine 的 Key 名称（如 "W"、"ArrowUp"、"Space"、"Escape"）
type InputBindings struct {
	Move     MoveBindings `yaml:"move"`
	ZoomIn   []string     `yaml:"zoomIn"`
	ZoomOut  []string     `yaml:"zoomOut"`
	Grab     []string     `yaml:"grab"`
	Continue []string     `yaml:"continue"`
	// DebugToggle 切换调试绘制（拾取射线、锚点）
	DebugToggle []string `yaml:"debugToggle"`
}

// MoveBindings Move 动作的四个方向
type MoveBindings struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
}

// DefaultInputBindings 默认按键绑定
func DefaultInputBindings() *InputBindings {
	return &InputBindings{
		Move: MoveBindings{
			Up:    []string{"W", "ArrowUp"},
			Down:  []string{"S", "ArrowDown"},
			Left:  []string{"A", "ArrowLeft"},
			Right: []string{"D", "ArrowRight"},
		},
		ZoomIn:      []string{"Equal", "NumpadAdd"},
		ZoomOut:     []string{"Minus", "NumpadSubtract"},
		Grab:        []string{"Space", "E"},
		Continue:    []string{"Escape", "Enter"},
		DebugToggle: []string{"F3"},
	}
}

// LoadInputBindings 从 YAML 文件加载输入绑定
func LoadInputBindings(filepath string) (*InputBindings, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read input bindings file %s: %w", filepath, err)
	}
	return ParseInputBindings(data)
}

// ParseInputBindings 解析 YAML 输入绑定，缺失的动作使用默认绑定
func ParseInputBindings(data []byte) (*InputBindings, error) {
	bindings := &InputBindings{}
	if err := yaml.Unmarshal(data, bindings); err != nil {
		return nil, fmt.Errorf("failed to parse input bindings YAML: %w", err)
	}

	defaults := DefaultInputBindings()
	fillKeys(&bindings.Move.Up, defaults.Move.Up)
	fillKeys(&bindings.Move.Down, defaults.Move.Down)
	fillKeys(&bindings.Move.Left, defaults.Move.Left)
	fillKeys(&bindings.Move.Right, defaults.Move.Right)
	fillKeys(&bindings.ZoomIn, defaults.ZoomIn)
	fillKeys(&bindings.ZoomOut, defaults.ZoomOut)
	fillKeys(&bindings.Grab, defaults.Grab)
	fillKeys(&bindings.Continue, defaults.Continue)
	fillKeys(&bindings.DebugToggle, defaults.DebugToggle)

	return bindings, nil
}

func fillKeys(keys *[]string, defaults []string) {
	if len(*keys) == 0 {
		*keys = append([]string(nil), defaults...)
	}
}
