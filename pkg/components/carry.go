package components

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/forklift/pkg/ecs"
)

// CarryState 搬运状态
type CarryState int

const (
	// CarryEmpty 未持有物体
	CarryEmpty CarryState = iota
	// CarryHolding 正在持有物体
	CarryHolding
)

func (s CarryState) String() string {
	switch s {
	case CarryEmpty:
		return "Empty"
	case CarryHolding:
		return "Holding"
	default:
		return "Unknown"
	}
}

// CarryComponent 叉车的抓取/搬运状态
// Held 是非持有引用：球体的生命周期由关卡管理
type CarryComponent struct {
	State         CarryState
	Held          ecs.EntityID // CarryHolding 时有效
	GrabRequested bool         // Grab 动作每次触发翻转一次

	Anchor ecs.EntityID // 持物锚点实体

	PickupRange     float64 // 拾取射线长度（米）
	PickupForce     float64 // 归位力强度
	LockThreshold   float64 // 距锚点小于此距离时完全锁定
	HeldDamping     float64 // 持有期间的线性/角阻尼
	ReleasedDamping float64 // 释放后恢复的基准阻尼
}

// AnchorComponent 挂在车辆上的持物锚点
// 锚点的世界坐标 = 车辆位置 + 按车辆航向旋转后的 LocalOffset
type AnchorComponent struct {
	Owner       ecs.EntityID
	LocalOffset mgl64.Vec3
	HalfExtents mgl64.Vec3 // 调试绘制用的锚点盒尺寸
}
