// forklift-tui 在终端里玩同一关
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/forklift/pkg/config"
	"github.com/gonewx/forklift/pkg/tui"
)

var (
	levelPath = flag.String("level", "data/levels/main.yaml", "关卡配置文件")
	seed      = flag.Int64("seed", 0, "随机种子（0 表示使用关卡配置）")
	logPath   = flag.String("log", "", "日志文件（终端被占用，默认丢弃日志）")
)

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := config.LoadLevelConfig(*levelPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load level: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	frontend, err := tui.New(screen, tui.Options{Level: cfg, Seed: *seed})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start level: %v\n", err)
		os.Exit(1)
	}
	frontend.Run()
}
