package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/forklift/pkg/app"
	"github.com/gonewx/forklift/pkg/config"
	"github.com/gonewx/forklift/pkg/core"
	"github.com/gonewx/forklift/pkg/embedded"
)

var (
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	levelPath = flag.String("level", "", "从磁盘加载关卡配置（默认使用内置关卡）")
	seed      = flag.Int64("seed", 0, "随机种子（0 表示使用关卡配置）")
	menu      = flag.Bool("menu", true, "从主菜单启动；false 时直接进入关卡")
	demo      = flag.Bool("demo", false, "启动 add 演示场景")
	noPersist = flag.Bool("no-persist", false, "不读写本地设置")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	startScene := config.SceneMainMenu
	if !*menu {
		startScene = config.SceneMain
	}
	if *demo {
		startScene = config.SceneAddDemo
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		LevelPath:  *levelPath,
		Seed:       *seed,
		StartScene: startScene,
		NoPersist:  *noPersist,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	defer gameApp.Shutdown()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Forklift Yard - " + core.LibName())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
