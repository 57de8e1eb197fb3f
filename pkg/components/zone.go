package components

import (
	"image/color"

	"github.com/gonewx/forklift/pkg/ecs"
)

// ZoneComponent 计分区域
// Passed 一旦为 true 不再复位（单次锁存）
type ZoneComponent struct {
	Color  color.RGBA
	Index  int
	Passed bool
}

// TriggerComponent 触发器当前的重叠集合
// 由 TriggerSystem 维护，用于区分"进入"和"停留"
type TriggerComponent struct {
	Inside map[ecs.EntityID]bool
}
