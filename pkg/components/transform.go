package components

import "github.com/go-gl/mathgl/mgl64"

// TransformComponent 实体在世界中的位姿
// 只记录绕 Y 轴的航向角：车辆冻结了 X/Z 轴旋转，球体的滚动只影响显示
type TransformComponent struct {
	Position mgl64.Vec3 // 世界坐标（米）
	Heading  float64    // 航向角（弧度），0 表示朝向 +Z
}
