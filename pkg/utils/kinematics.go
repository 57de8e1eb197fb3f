package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// 坐标系约定（与场景编辑器一致）：
//   - Y 轴向上，地面为 XZ 平面
//   - 航向角 heading = 0 时车头朝向 +Z
//   - 航向角绕 +Y 轴旋转，正方向为从 +Z 转向 +X

// Up 世界坐标系的上方向
var Up = mgl64.Vec3{0, 1, 0}

// MoveTowards 将 current 向 target 移动，单次移动量不超过 maxDelta
// 线性逼近（不是指数插值），不会越过目标值
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	return current + Sign(target-current)*maxDelta
}

// Sign 返回 x 的符号
// 注意：0 视为正数（返回 1），与引擎的 Sign 语义一致，
// 速度积分中的加速/刹车判断依赖这一点
func Sign(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return -1
}

// Clamp 将 v 限制在 [lo, hi] 范围内
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Forward 返回航向角对应的前方向单位向量
func Forward(heading float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(heading), 0, math.Cos(heading)}
}

// Right 返回航向角对应的右方向单位向量
func Right(heading float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(heading), 0, -math.Sin(heading)}
}

// RotateY 将向量绕 +Y 轴旋转 angle 弧度
func RotateY(v mgl64.Vec3, angle float64) mgl64.Vec3 {
	return mgl64.Rotate3DY(angle).Mul3x1(v)
}

// HorizontalDistance 返回两点在 XZ 平面上的距离
func HorizontalDistance(a, b mgl64.Vec3) float64 {
	dx := a.X() - b.X()
	dz := a.Z() - b.Z()
	return math.Sqrt(dx*dx + dz*dz)
}
