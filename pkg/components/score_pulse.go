package components

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// ScorePulseComponent 区域通过时的扩散光环
// 半径和透明度随 LifetimeComponent 的进度变化
type ScorePulseComponent struct {
	Center    mgl64.Vec3
	Color     color.RGBA
	MaxRadius float64 // 米
}
