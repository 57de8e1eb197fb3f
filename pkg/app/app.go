// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/forklift/pkg/config"
	"github.com/gonewx/forklift/pkg/embedded"
	"github.com/gonewx/forklift/pkg/game"
	"github.com/gonewx/forklift/pkg/scenes"
	"github.com/gonewx/forklift/pkg/systems"
	"github.com/gonewx/forklift/pkg/utils"
)

const (
	defaultLevelPath    = "data/levels/main.yaml"
	defaultBindingsPath = "data/input_bindings.yaml"

	// settingsAppName 设置存储目录名
	settingsAppName = "forklift"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// LevelPath 从磁盘加载关卡配置，为空则使用内置的 data/levels/main.yaml
	LevelPath string
	// Seed 随机种子，非 0 时覆盖关卡配置
	Seed int64
	// StartScene 启动场景，为空则进入主菜单
	StartScene string
	// NoPersist 不读写本地设置（仅使用默认设置）
	NoPersist bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	audio                    *game.AudioManager
	verbose                  bool
	lastUpdate               time.Time
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	levelConfig, err := LoadLevel(cfg.LevelPath)
	if err != nil {
		return nil, fmt.Errorf("关卡配置加载失败: %w", err)
	}
	log.Printf("[App] 关卡: %s (%s)", levelConfig.ID, levelConfig.Name)

	bindings := LoadBindings()

	audioManager := game.NewAudioManager(game.SharedAudioContext())
	log.Printf("[App] AudioManager initialized")

	var store *gdata.Manager
	if !cfg.NoPersist {
		store = game.OpenSettingsStore(settingsAppName)
	}
	settings := game.NewSettingsManager(store)
	settings.ApplyAudio(audioManager)
	if settings.GetSettings().Fullscreen && !utils.IsMobile() {
		ebiten.SetFullscreen(true)
	}

	sceneManager := game.NewSceneManager()
	scenes.Register(sceneManager, scenes.Deps{
		Level:    levelConfig,
		Bindings: systems.ResolveBindings(bindings),
		Audio:    audioManager,
		Seed:     cfg.Seed,
	})

	start := cfg.StartScene
	if start == "" {
		start = config.SceneMainMenu
	}
	if !sceneManager.HasScene(start) {
		return nil, fmt.Errorf("unknown start scene: %s", start)
	}
	log.Printf("[App] Starting scene: %s", start)
	sceneManager.LoadScene(start)

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		audio:        audioManager,
		verbose:      cfg.Verbose,
	}, nil
}

// LoadLevel 加载关卡配置：path 为空时读取内置资源
func LoadLevel(path string) (*config.LevelConfig, error) {
	if path != "" {
		return config.LoadLevelConfig(path)
	}
	data, err := embedded.ReadFile(defaultLevelPath)
	if err != nil {
		return nil, err
	}
	return config.ParseLevelConfig(data)
}

// LoadBindings 读取内置按键绑定，失败时使用默认绑定
func LoadBindings() *config.InputBindings {
	data, err := embedded.ReadFile(defaultBindingsPath)
	if err != nil {
		log.Printf("[App] Warning: %v, using default bindings", err)
		return config.DefaultInputBindings()
	}
	bindings, err := config.ParseInputBindings(data)
	if err != nil {
		log.Printf("[App] Warning: %v, using default bindings", err)
		return config.DefaultInputBindings()
	}
	return bindings
}

// frameDelta 两次 Update 之间的墙钟时间（秒），截断到 MaxFrameDelta
// 第一帧没有参照，按一个 tick 计算
func frameDelta(last, now time.Time) float64 {
	if last.IsZero() {
		return 1.0 / float64(ebiten.DefaultTPS)
	}
	dt := now.Sub(last).Seconds()
	if dt < 0 {
		return 0
	}
	return utils.Clamp(dt, 0, config.MaxFrameDelta)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		if !fullscreen {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settings.SetFullscreen(fullscreen)
		a.saveSettings()
	}

	// F10 切换音效
	if inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		s := a.settings.GetSettings()
		a.settings.SetSoundEnabled(!s.SoundEnabled)
		a.settings.ApplyAudio(a.audio)
		a.saveSettings()
		log.Printf("[App] 音效: %v", s.SoundEnabled)
	}

	now := time.Now()
	deltaTime := frameDelta(a.lastUpdate, now)
	a.lastUpdate = now

	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Shutdown 退出时拆除当前场景（移除输入回调）
func (a *App) Shutdown() {
	a.sceneManager.Shutdown()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
