package components

import "github.com/go-gl/mathgl/mgl64"

// ArenaComponent 场地边界（地面 + 四面墙）
type ArenaComponent struct {
	Center      mgl64.Vec3
	HalfExtents mgl64.Vec3 // X/Z 为半宽，Y 不使用
	GroundY     float64
}
