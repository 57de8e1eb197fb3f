package systems

import (
	"log"

	"github.com/gonewx/forklift/pkg/components"
	"github.com/gonewx/forklift/pkg/ecs"
)

// ScoreSink 接收计分事件（由比赛协调者实现）
type ScoreSink interface {
	OnZoneScored(zone, ball ecs.EntityID)
}

// ZoneScoringSystem 计分区域监视器
//
// 每个区域是单次锁存：颜色匹配的球第一次进入时标记 Passed 并上报一次计分，
// 之后任何进入都被忽略。颜色不匹配只记录日志，区域保持未通过。
type ZoneScoringSystem struct {
	entityManager *ecs.EntityManager
	sink          ScoreSink
}

// NewZoneScoringSystem 创建计分监视器
func NewZoneScoringSystem(em *ecs.EntityManager, sink ScoreSink) *ZoneScoringSystem {
	return &ZoneScoringSystem{entityManager: em, sink: sink}
}

// HandleTriggerEnter 处理触发器进入事件（注册到 TriggerSystem）
func (s *ZoneScoringSystem) HandleTriggerEnter(zoneID, otherID ecs.EntityID) {
	zone, ok := ecs.GetComponent[*components.ZoneComponent](s.entityManager, zoneID)
	if !ok {
		return
	}

	tag, ok := ecs.GetComponent[*components.TagComponent](s.entityManager, otherID)
	if !ok || tag.Tag != components.TagBall || zone.Passed {
		return
	}

	ball, ok := ecs.GetComponent[*components.BallComponent](s.entityManager, otherID)
	if !ok {
		log.Printf("[ZoneScoringSystem] Warning: entity %d tagged Ball has no BallComponent", otherID)
		return
	}

	if ball.Color != zone.Color {
		log.Printf("[ZoneScoringSystem] Ball color not matching zone color. %v != %v", ball.Color, zone.Color)
		return
	}

	zone.Passed = true
	log.Printf("[ZoneScoringSystem] 区域 %d 通过 (球 %d)", zone.Index, otherID)
	if s.sink != nil {
		s.sink.OnZoneScored(zoneID, otherID)
	}
}
