package config

// 布局配置常量
// 本文件定义了窗口尺寸、时间步长和 HUD 元素位置

const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 960
	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 640

	// FixedTimeStep 物理固定步长（秒），50Hz
	FixedTimeStep = 0.02
	// MaxFixedStepsPerFrame 单帧最多执行的固定步数，防止卡顿后"追帧"雪崩
	MaxFixedStepsPerFrame = 8
	// MaxFrameDelta 单帧时间上限（秒），窗口拖动/断点恢复后截断
	MaxFrameDelta = 0.25
)

// HUD 布局
const (
	HUDMargin        = 16.0
	HUDFontSize      = 22.0
	FinalFontSize    = 40.0
	FinalPanelWidth  = 420.0
	FinalPanelHeight = 180.0
)

// 场景名称
const (
	SceneMainMenu = "MainMenu"
	SceneMain     = "Main"
	SceneAddDemo  = "AddDemo"
)
