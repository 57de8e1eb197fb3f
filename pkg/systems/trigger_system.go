package systems

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/forklift/pkg/components"
	"github.com/gonewx/forklift/pkg/ecs"
)

// TriggerHandler 触发器事件回调
type TriggerHandler func(trigger, other ecs.EntityID)

// TriggerSystem 盒形触发器与球形碰撞体的进入/离开检测（固定步长，物理之后）
type TriggerSystem struct {
	entityManager *ecs.EntityManager
	onEnter       []TriggerHandler
	onExit        []TriggerHandler
}

// NewTriggerSystem 创建触发器系统
func NewTriggerSystem(em *ecs.EntityManager) *TriggerSystem {
	return &TriggerSystem{entityManager: em}
}

// OnTriggerEnter 注册进入回调
func (s *TriggerSystem) OnTriggerEnter(h TriggerHandler) {
	s.onEnter = append(s.onEnter, h)
}

// OnTriggerExit 注册离开回调
func (s *TriggerSystem) OnTriggerExit(h TriggerHandler) {
	s.onExit = append(s.onExit, h)
}

// Update 检测重叠变化并分发事件
// 事件按触发器ID、再按物体ID升序分发
func (s *TriggerSystem) Update(deltaTime float64) {
	triggers := ecs.GetEntitiesWith3[
		*components.BoxColliderComponent,
		*components.TransformComponent,
		*components.TriggerComponent,
	](s.entityManager)
	if len(triggers) == 0 {
		return
	}

	others := ecs.GetEntitiesWith2[
		*components.SphereColliderComponent,
		*components.TransformComponent,
	](s.entityManager)

	for _, tid := range triggers {
		box, _ := ecs.GetComponent[*components.BoxColliderComponent](s.entityManager, tid)
		if !box.IsTrigger {
			continue
		}
		boxTransform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, tid)
		trigger, _ := ecs.GetComponent[*components.TriggerComponent](s.entityManager, tid)
		if trigger.Inside == nil {
			trigger.Inside = make(map[ecs.EntityID]bool)
		}

		current := make(map[ecs.EntityID]bool, len(trigger.Inside))
		for _, oid := range others {
			sphere, _ := ecs.GetComponent[*components.SphereColliderComponent](s.entityManager, oid)
			tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, oid)
			if SphereOverlapsBox(tr.Position, sphere.Radius, boxTransform.Position, box.HalfExtents) {
				current[oid] = true
			}
		}

		for _, oid := range others {
			if current[oid] && !trigger.Inside[oid] {
				trigger.Inside[oid] = true
				s.dispatch(s.onEnter, tid, oid)
			}
		}

		for _, oid := range sortedKeys(trigger.Inside) {
			if !current[oid] {
				delete(trigger.Inside, oid)
				s.dispatch(s.onExit, tid, oid)
			}
		}
	}
}

func (s *TriggerSystem) dispatch(handlers []TriggerHandler, trigger, other ecs.EntityID) {
	for _, h := range handlers {
		h(trigger, other)
	}
}

// SphereOverlapsBox 球与轴对齐盒是否重叠（含相切）
func SphereOverlapsBox(center mgl64.Vec3, radius float64, boxCenter, halfExtents mgl64.Vec3) bool {
	distSq := 0.0
	for i := 0; i < 3; i++ {
		lo := boxCenter[i] - halfExtents[i]
		hi := boxCenter[i] + halfExtents[i]
		closest := math.Max(lo, math.Min(center[i], hi))
		d := center[i] - closest
		distSq += d * d
	}
	return distSq <= radius*radius
}

func sortedKeys(m map[ecs.EntityID]bool) []ecs.EntityID {
	keys := make([]ecs.EntityID, 0, len(m))
	for id := range m {
		keys = append(keys, id)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
