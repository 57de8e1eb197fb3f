package components

// VehicleComponent 叉车运动学状态与调校参数
//
// 状态不变量：
//   - SteerAngle 始终在 [-MaxSteerAngle, MaxSteerAngle] 内
//   - 施加阻力前 Speed 始终在 [-MaxReverseSpeed, MaxForwardSpeed] 内
type VehicleComponent struct {
	// 调校参数
	WheelBase       float64 // 车体中心到前轴的距离（米）
	MaxSteerAngle   float64 // 最大转向角（弧度）
	SteerResponse   float64 // 转向角变化速率（弧度/秒）
	MaxForwardSpeed float64 // 最大前进速度（米/秒）
	MaxReverseSpeed float64 // 最大倒车速度（米/秒，正数）
	Accel           float64 // 加速度（米/秒²）
	BrakeAccel      float64 // 刹车减速度（米/秒²）
	Drag            float64 // 线性阻力系数（1/秒）

	// 运行时状态
	SteerAngle float64 // 当前转向角（弧度）
	Speed      float64 // 当前纵向速度（米/秒，负数为倒车）
	Heading    float64 // 当前航向角（弧度）

	// BodyRadius 车身在 XZ 平面上的碰撞半径（米）
	BodyRadius float64
	// FrontOffset 车头到车体中心的距离（米），拾取射线从车头发出
	FrontOffset float64
}

// DriveInputComponent 驾驶输入
// 由 Move 动作写入：X 为转向，Y 为油门，范围 [-1, 1]
type DriveInputComponent struct {
	Steer    float64
	Throttle float64
}
