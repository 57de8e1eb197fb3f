package entities

import (
	"fmt"
	"math"

	"github.com/gonewx/forklift/pkg/components"
	"github.com/gonewx/forklift/pkg/ecs"
)

// scorePulseDuration 得分脉冲持续时间（秒）
const scorePulseDuration = 0.6

// NewScorePulseEntity 在计分区域中心创建得分脉冲
// 脉冲颜色取区域颜色，最大半径为区域较长半边的 1.5 倍，到期后由 LifetimeSystem 删除
func NewScorePulseEntity(em *ecs.EntityManager, zoneID ecs.EntityID) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	zone, ok := ecs.GetComponent[*components.ZoneComponent](em, zoneID)
	if !ok {
		return 0, fmt.Errorf("entity %d is not a zone", zoneID)
	}
	tr, ok := ecs.GetComponent[*components.TransformComponent](em, zoneID)
	if !ok {
		return 0, fmt.Errorf("zone %d has no transform", zoneID)
	}

	radius := 1.0
	if box, ok := ecs.GetComponent[*components.BoxColliderComponent](em, zoneID); ok {
		radius = math.Max(box.HalfExtents.X(), box.HalfExtents.Z()) * 1.5
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.ScorePulseComponent{
		Center:    tr.Position,
		Color:     zone.Color,
		MaxRadius: radius,
	})
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: scorePulseDuration})
	return id, nil
}
