// verify_gameplay 无头运行一局：自动驾驶把每个彩球送进同色区域，打印事件日志
//
//	go run ./cmd/verify_gameplay --seed 42
//	go run ./cmd/verify_gameplay --idle          # 不操作，验证超时判负
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gonewx/forklift/pkg/config"
	"github.com/gonewx/forklift/pkg/game"
	"github.com/gonewx/forklift/pkg/level"
)

const frameDelta = 1.0 / 60

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	levelPath  = flag.String("level", "data/levels/main.yaml", "关卡配置文件")
	seed       = flag.Int64("seed", 42, "随机种子")
	idle       = flag.Bool("idle", false, "不驾驶，等待倒计时结束")
	maxSeconds = flag.Float64("max-seconds", 120, "模拟时长上限（秒）")
)

// eventLog 打印比赛事件
type eventLog struct {
	clock   *float64
	outcome game.Outcome
}

func (e *eventLog) OnScored(score, total int) {
	fmt.Printf("[%7.2fs] 得分 %d/%d\n", *e.clock, score, total)
}

func (e *eventLog) OnMatchOver(outcome game.Outcome) {
	e.outcome = outcome
	fmt.Printf("[%7.2fs] 比赛结束: %s\n", *e.clock, outcome)
}

// textUI 只在计时的整秒变化时打印
type textUI struct {
	lastSecond int
}

func (u *textUI) UpdateScore(score, total int) {}

func (u *textUI) UpdateTimer(remaining time.Duration) {
	sec := int(remaining / time.Second)
	if sec != u.lastSecond && sec%10 == 0 {
		fmt.Printf("          剩余 %ds\n", sec)
	}
	u.lastSecond = sec
}

func (u *textUI) SetGameOver(message string) {
	fmt.Printf("          %q\n", message)
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadLevelConfig(*levelPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "关卡配置加载失败: %v\n", err)
		os.Exit(1)
	}

	var elapsed float64
	events := &eventLog{clock: &elapsed}
	actions := game.NewActionMap(config.ActionMove, config.ActionZoom, config.ActionGrab, config.ActionContinue)

	lvl := level.New(cfg, level.Deps{
		Actions:   actions,
		UI:        &textUI{lastSecond: -1},
		Observers: []game.MatchObserver{events},
		Seed:      *seed,
	})
	if err := lvl.OnInit(); err != nil {
		fmt.Fprintf(os.Stderr, "关卡初始化失败: %v\n", err)
		os.Exit(1)
	}
	defer lvl.OnTeardown()

	fmt.Printf("关卡 %s: %d 个彩球, 限时 %v, 种子 %d\n", cfg.ID, len(lvl.Balls()), cfg.Duration(), *seed)

	var pilot *autopilot
	if !*idle {
		pilot = newAutopilot(lvl, actions)
	}

	clock := game.NewFixedStepClock(config.FixedTimeStep, config.MaxFixedStepsPerFrame)
	for elapsed < *maxSeconds && events.outcome == game.OutcomePending {
		if pilot != nil {
			pilot.update(elapsed)
		}
		game.RunFrame(lvl, clock, frameDelta)
		elapsed += frameDelta
	}

	match := lvl.Match()
	fmt.Printf("结果: %s, 分数 %d/%d, 用时 %.2fs\n", match.Outcome(), match.Score(), match.Total(), elapsed)
	if match.Outcome() != game.OutcomeWin && !*idle {
		os.Exit(2)
	}
}
