package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (e.g., main menu, gameplay, add demo).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Teardowner 是一个可选接口，场景被替换或程序退出时调用
//
// 场景在 OnTeardown 中移除自己注册的输入回调、禁用动作，
// 避免旧场景的回调在新场景中被触发。
type Teardowner interface {
	OnTeardown()
}

// SceneLoader 按名称请求切换场景
// 由 SceneManager 实现，注入到需要切换场景的对象中
type SceneLoader interface {
	LoadScene(name string)
}
