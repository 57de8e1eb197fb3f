package components

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/forklift/pkg/ecs"
)

// Constraints 刚体约束标志位
// 被冻结的轴在积分时速度清零，位置/朝向不由物理系统改变
type Constraints uint8

const (
	ConstraintsNone Constraints = 0

	FreezePositionX Constraints = 1 << iota
	FreezePositionY
	FreezePositionZ
	FreezeRotationX
	FreezeRotationY
	FreezeRotationZ
)

const (
	// FreezePosition 冻结全部平移
	FreezePosition = FreezePositionX | FreezePositionY | FreezePositionZ
	// FreezeRotation 冻结全部旋转
	FreezeRotation = FreezeRotationX | FreezeRotationY | FreezeRotationZ
	// FreezeAll 冻结全部平移和旋转（被锁定的货物）
	FreezeAll = FreezePosition | FreezeRotation
)

// Has 检查是否包含所有给定标志
func (c Constraints) Has(flags Constraints) bool {
	return c&flags == flags
}

// ForceMode 施力方式
type ForceMode int

const (
	// ForceModeForce 持续力，按质量和时间步长换算为速度变化
	ForceModeForce ForceMode = iota
	// ForceModeImpulse 冲量，按质量直接换算为速度变化
	ForceModeImpulse
)

// RigidBodyComponent 刚体组件
// 由 PhysicsSystem 在固定步长中积分
type RigidBodyComponent struct {
	Velocity        mgl64.Vec3 // 线速度（米/秒）
	AngularVelocity mgl64.Vec3 // 角速度（弧度/秒），只用于球体滚动显示
	Mass            float64    // 质量（千克），<= 0 按 1 处理

	UseGravity     bool
	LinearDamping  float64
	AngularDamping float64
	Constraints    Constraints

	// Kinematic 运动学刚体：位置由脚本直接设置（MovePosition），物理系统不积分
	// 车辆使用运动学刚体
	Kinematic bool

	// Parent 挂接的父实体（通常是车辆的持物锚点），NoEntity 表示未挂接
	// 挂接期间父实体的位移和旋转会带动本刚体
	Parent ecs.EntityID

	// 本帧累积的力，PhysicsSystem 积分后清零
	AccumulatedForce mgl64.Vec3

	// 累计滚动角度（弧度），渲染用
	RollAngle float64
}

// AddForce 累加力或冲量
func (rb *RigidBodyComponent) AddForce(force mgl64.Vec3, mode ForceMode) {
	switch mode {
	case ForceModeImpulse:
		rb.Velocity = rb.Velocity.Add(force.Mul(1 / rb.EffectiveMass()))
	default:
		rb.AccumulatedForce = rb.AccumulatedForce.Add(force)
	}
}

// EffectiveMass 返回有效质量（<= 0 视为 1）
func (rb *RigidBodyComponent) EffectiveMass() float64 {
	if rb.Mass <= 0 {
		return 1
	}
	return rb.Mass
}
