package main

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/forklift/pkg/components"
	"github.com/gonewx/forklift/pkg/config"
	"github.com/gonewx/forklift/pkg/ecs"
	"github.com/gonewx/forklift/pkg/game"
	"github.com/gonewx/forklift/pkg/level"
	"github.com/gonewx/forklift/pkg/utils"
)

// 自动驾驶参数
const (
	grabDistance    = 2.0  // 车体中心到球心小于此距离时尝试抓取
	grabAlignment   = 0.15 // 抓取时允许的航向误差（弧度）
	releaseDistance = 0.6  // 锚点到区域中心小于此距离时释放
	phaseTimeout    = 20.0 // 单个阶段的最长时间（秒）
	steerGain       = 2.5
)

type pilotPhase int

const (
	phaseApproach pilotPhase = iota
	phaseDeliver
	phaseBackOff
	phaseDone
)

// autopilot 逐个处理彩球：开到球前 → 抓取 → 开到同色区域 → 释放 → 倒车
type autopilot struct {
	level   *level.Level
	move    *game.Action
	grab    *game.Action
	target  int
	phase   pilotPhase
	started float64
}

func newAutopilot(l *level.Level, actions *game.ActionMap) *autopilot {
	return &autopilot{
		level: l,
		move:  actions.FindAction(config.ActionMove),
		grab:  actions.FindAction(config.ActionGrab),
	}
}

func (p *autopilot) em() *ecs.EntityManager { return p.level.EntityManager() }

func (p *autopilot) setPhase(phase pilotPhase, now float64) {
	p.phase = phase
	p.started = now
}

// nextTarget 跳到下一个尚未计分的球
func (p *autopilot) nextTarget(now float64) {
	p.target++
	if p.target >= len(p.level.Balls()) {
		p.setPhase(phaseDone, now)
		p.move.Cancel()
		return
	}
	p.setPhase(phaseApproach, now)
}

func (p *autopilot) update(now float64) {
	if p.phase == phaseDone || p.target >= len(p.level.Balls()) {
		return
	}

	em := p.em()
	vehicleTr, _ := ecs.GetComponent[*components.TransformComponent](em, p.level.VehicleID())
	carry, _ := ecs.GetComponent[*components.CarryComponent](em, p.level.VehicleID())
	ball := p.level.Balls()[p.target]
	ballTr, ok := ecs.GetComponent[*components.TransformComponent](em, ball)
	if !ok || vehicleTr == nil || carry == nil {
		p.nextTarget(now)
		return
	}

	if now-p.started > phaseTimeout {
		fmt.Printf("[%7.2fs] 球 %d 阶段 %d 超时，跳过\n", now, p.target, p.phase)
		if carry.State == components.CarryHolding {
			p.grab.Perform(mgl64.Vec2{1, 0})
		}
		p.nextTarget(now)
		return
	}

	switch p.phase {
	case phaseApproach:
		errAngle := p.driveToward(vehicleTr, ballTr.Position, 0.5)
		dist := utils.HorizontalDistance(vehicleTr.Position, ballTr.Position)
		if carry.State == components.CarryHolding {
			fmt.Printf("[%7.2fs] 抓起球 %d\n", now, p.target)
			p.setPhase(phaseDeliver, now)
		} else if dist < grabDistance && math.Abs(errAngle) < grabAlignment && !carry.GrabRequested {
			p.grab.Perform(mgl64.Vec2{1, 0})
		}

	case phaseDeliver:
		if carry.State != components.CarryHolding {
			// 掉了，重新去捡
			p.setPhase(phaseApproach, now)
			return
		}
		zoneTr, _ := ecs.GetComponent[*components.TransformComponent](em, p.level.Zones()[p.target])
		anchorTr, _ := ecs.GetComponent[*components.TransformComponent](em, p.level.AnchorID())
		p.driveToward(vehicleTr, zoneTr.Position, 0.6)
		if utils.HorizontalDistance(anchorTr.Position, zoneTr.Position) < releaseDistance {
			p.grab.Perform(mgl64.Vec2{1, 0})
			fmt.Printf("[%7.2fs] 在区域 %d 释放\n", now, p.target)
			p.setPhase(phaseBackOff, now)
		}

	case phaseBackOff:
		p.move.Perform(mgl64.Vec2{0, -1})
		if now-p.started > 1.0 {
			p.nextTarget(now)
		}
	}
}

// driveToward 纯追踪：按航向误差转向，误差越大油门越小
// 返回航向误差（弧度）
func (p *autopilot) driveToward(tr *components.TransformComponent, target mgl64.Vec3, minThrottle float64) float64 {
	d := target.Sub(tr.Position)
	desired := math.Atan2(d.X(), d.Z())
	errAngle := math.Remainder(desired-tr.Heading, 2*math.Pi)

	steer := utils.Clamp(errAngle*steerGain, -1, 1)
	throttle := math.Max(minThrottle, math.Cos(errAngle))
	p.move.Perform(mgl64.Vec2{steer, throttle})
	return errAngle
}
