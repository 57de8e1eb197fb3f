package systems

import (
	"log"
	"time"

	"github.com/gonewx/forklift/pkg/components"
	"github.com/gonewx/forklift/pkg/ecs"
)

// CountdownListener 倒计时的观察者（由比赛协调者实现）
type CountdownListener interface {
	// GoalAchieved 每帧检查一次，为 true 时倒计时结束且不判负
	GoalAchieved() bool
	// OnTimerUpdated 每帧上报剩余时间
	OnTimerUpdated(remaining time.Duration)
	// OnTimerExpired 超时且目标未达成
	OnTimerExpired()
}

// CountdownSystem 关卡倒计时（按渲染帧推进，而不是固定步长）
//
// 每帧：先检查目标是否达成，再扣除帧时间并上报。
// 剩余时间到 0 时截断为 0（不会为负），目标未达成则判负。
type CountdownSystem struct {
	entityManager *ecs.EntityManager
	entityID      ecs.EntityID
	listener      CountdownListener
}

// NewCountdownSystem 创建倒计时系统，并创建倒计时实体
//
// 参数:
//   - em: 实体管理器
//   - duration: 总时长
//   - listener: 观察者
func NewCountdownSystem(em *ecs.EntityManager, duration time.Duration, listener CountdownListener) *CountdownSystem {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.CountdownComponent{Remaining: duration})
	return &CountdownSystem{
		entityManager: em,
		entityID:      id,
		listener:      listener,
	}
}

// Update 推进一帧
// 参数:
//   - deltaTime: 本帧经过的时间（秒），负数按 0 处理
func (s *CountdownSystem) Update(deltaTime float64) {
	cd, ok := ecs.GetComponent[*components.CountdownComponent](s.entityManager, s.entityID)
	if !ok || cd.Finished {
		return
	}

	goal := s.listener != nil && s.listener.GoalAchieved()
	if !goal && cd.Remaining > 0 {
		if deltaTime > 0 {
			cd.Remaining -= time.Duration(deltaTime * float64(time.Second))
		}
		if cd.Remaining < 0 {
			cd.Remaining = 0
		}
		if s.listener != nil {
			s.listener.OnTimerUpdated(cd.Remaining)
		}
		if cd.Remaining > 0 {
			return
		}
	}

	cd.Finished = true
	if goal {
		log.Printf("[CountdownSystem] 目标达成，剩余 %v", cd.Remaining)
		return
	}

	cd.Expired = true
	log.Printf("[CountdownSystem] 时间耗尽")
	if s.listener != nil {
		s.listener.OnTimerExpired()
	}
}

// Remaining 剩余时间
func (s *CountdownSystem) Remaining() time.Duration {
	if cd, ok := ecs.GetComponent[*components.CountdownComponent](s.entityManager, s.entityID); ok {
		return cd.Remaining
	}
	return 0
}

// Finished 倒计时是否已结束
func (s *CountdownSystem) Finished() bool {
	cd, ok := ecs.GetComponent[*components.CountdownComponent](s.entityManager, s.entityID)
	return ok && cd.Finished
}

// Expired 是否因超时结束
func (s *CountdownSystem) Expired() bool {
	cd, ok := ecs.GetComponent[*components.CountdownComponent](s.entityManager, s.entityID)
	return ok && cd.Expired
}
