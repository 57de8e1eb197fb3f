package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于按名称创建场景，避免 game 包依赖具体场景实现
type SceneFactory func(sm *SceneManager) Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// 场景切换请求（LoadScene）延迟到下一次 Update 开始时执行，
// 因此在输入回调或系统更新中请求切换是安全的。
type SceneManager struct {
	currentScene Scene
	currentName  string
	factories    map[string]SceneFactory
	pending      string
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use LoadScene or SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		factories: make(map[string]SceneFactory),
	}
}

// Register 注册场景工厂
func (sm *SceneManager) Register(name string, factory SceneFactory) {
	sm.factories[name] = factory
}

// HasScene 检查场景是否已注册
func (sm *SceneManager) HasScene(name string) bool {
	_, ok := sm.factories[name]
	return ok
}

// SwitchTo changes the active scene to the provided scene immediately.
// The previous scene is torn down if it implements Teardowner.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene != nil {
		if td, ok := sm.currentScene.(Teardowner); ok {
			td.OnTeardown()
		}
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentSceneName 返回当前场景名称
func (sm *SceneManager) CurrentSceneName() string {
	return sm.currentName
}

// LoadScene 请求切换到指定名称的场景（下一次 Update 时生效）
func (sm *SceneManager) LoadScene(name string) {
	log.Printf("[SceneManager] 请求加载场景: %s", name)
	sm.pending = name
}

// applyPending 执行延迟的场景切换
func (sm *SceneManager) applyPending() {
	if sm.pending == "" {
		return
	}
	name := sm.pending
	sm.pending = ""

	factory, ok := sm.factories[name]
	if !ok {
		log.Printf("[SceneManager] 错误: 未注册的场景: %s", name)
		return
	}

	newScene := factory(sm)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", name)
		return
	}
	sm.SwitchTo(newScene)
	sm.currentName = name
	log.Printf("[SceneManager] 成功切换到场景: %s", name)
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	sm.applyPending()
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Shutdown 程序退出时释放当前场景
func (sm *SceneManager) Shutdown() {
	sm.SwitchTo(nil)
	sm.currentName = ""
}
