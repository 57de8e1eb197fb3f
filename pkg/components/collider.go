package components

import "github.com/go-gl/mathgl/mgl64"

// Layer 物理层，用于射线检测过滤
type Layer uint32

const (
	LayerDefault Layer = 1 << iota
	LayerVehicle
	// LayerBalls 可抓取物体所在的层
	LayerBalls
	LayerZones
)

// Tag 实体标签
type Tag string

const (
	TagPlayer      Tag = "Player"
	TagBall        Tag = "Ball"
	TagZone        Tag = "Zone"
	TagHoldingArea Tag = "HoldingArea"
)

// SphereColliderComponent 球形碰撞体
type SphereColliderComponent struct {
	Radius float64
	Layer  Layer
}

// BoxColliderComponent 轴对齐盒形碰撞体
// IsTrigger 为 true 时不参与碰撞响应，只产生进入/离开事件
type BoxColliderComponent struct {
	HalfExtents mgl64.Vec3
	IsTrigger   bool
	Layer       Layer
}

// TagComponent 实体标签组件
type TagComponent struct {
	Tag Tag
}
