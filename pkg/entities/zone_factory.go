package entities

import (
	"fmt"
	"image/color"

	"github.com/gonewx/forklift/pkg/components"
	"github.com/gonewx/forklift/pkg/config"
	"github.com/gonewx/forklift/pkg/ecs"
)

// NewZoneEntity 创建计分区域实体（盒形触发器）
//
// 参数:
//   - index: 区域序号，颜色按序号从颜色表分配
//   - zc: 区域位置和尺寸
//   - c: 区域颜色
func NewZoneEntity(em *ecs.EntityManager, index int, zc config.ZoneConfig, c color.RGBA) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{Position: zc.Center.Vec3()})
	em.AddComponent(id, &components.BoxColliderComponent{
		HalfExtents: zc.Extents.Vec3(),
		IsTrigger:   true,
		Layer:       components.LayerZones,
	})
	em.AddComponent(id, &components.ZoneComponent{Color: c, Index: index})
	em.AddComponent(id, &components.TriggerComponent{Inside: make(map[ecs.EntityID]bool)})
	em.AddComponent(id, &components.TagComponent{Tag: components.TagZone})
	return id, nil
}

// NewArenaEntity 创建场地实体（地面 + 边界墙）
func NewArenaEntity(em *ecs.EntityManager, ac config.AreaConfig) ecs.EntityID {
	id := em.CreateEntity()
	center := ac.Center.Vec3()
	em.AddComponent(id, &components.ArenaComponent{
		Center:      center,
		HalfExtents: ac.Extents.Vec3(),
		GroundY:     center.Y(),
	})
	return id
}
