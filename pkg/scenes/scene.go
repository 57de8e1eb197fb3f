package scenes

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gonewx/forklift/pkg/config"
	"github.com/gonewx/forklift/pkg/game"
	"github.com/gonewx/forklift/pkg/systems"
)

// Scene is a type alias for game.Scene to maintain backward compatibility.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// Deps 场景共享的依赖（由 app 在启动时注入）
type Deps struct {
	Level    *config.LevelConfig
	Bindings systems.KeyBindings
	Audio    *game.AudioManager // 可为 nil（静音）
	Seed     int64
}

// Register 注册所有场景工厂
func Register(sm *game.SceneManager, deps Deps) {
	sm.Register(config.SceneMainMenu, func(sm *game.SceneManager) game.Scene {
		return NewMainMenuScene(sm, deps)
	})
	sm.Register(config.SceneMain, func(sm *game.SceneManager) game.Scene {
		return NewGameScene(sm, deps)
	})
	sm.Register(config.SceneAddDemo, func(sm *game.SceneManager) game.Scene {
		return NewAddDemoScene(sm, deps)
	})
}

var (
	fontSourceOnce sync.Once
	fontSource     *text.GoTextFaceSource
	fontSourceErr  error
)

// loadFace 使用内置的 Go Regular 字体创建字号为 size 的 face
func loadFace(size float64) (*text.GoTextFace, error) {
	fontSourceOnce.Do(func() {
		fontSource, fontSourceErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	})
	if fontSourceErr != nil {
		return nil, fmt.Errorf("无法创建字体源: %w", fontSourceErr)
	}
	return &text.GoTextFace{
		Source:    fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}, nil
}

// drawText 绘制文本，align 控制水平对齐，多行按字号的 1.2 倍行距
func drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, align text.Align, clr color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.LineSpacing = face.Size * 1.2
	text.Draw(screen, s, face, op)
}
