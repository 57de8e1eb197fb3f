package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/forklift/pkg/components"
	"github.com/gonewx/forklift/pkg/ecs"
	"github.com/gonewx/forklift/pkg/utils"
)

// wheelBaseEpsilon 轴距小于此值时禁用转向（只能直行）
const wheelBaseEpsilon = 0.0001

// VehicleSystem 叉车运动学系统（固定步长）
// 职责：
// - 读取 DriveInputComponent，推进转向角、速度和航向
// - 以运动学方式移动车辆，刚体速度只沿车头方向（无侧滑）
// - 场地边界由 PhysicsSystem 处理
type VehicleSystem struct {
	entityManager *ecs.EntityManager
}

// NewVehicleSystem 创建叉车运动学系统
func NewVehicleSystem(em *ecs.EntityManager) *VehicleSystem {
	return &VehicleSystem{entityManager: em}
}

// Update 推进一个固定步长
// 参数:
//   - deltaTime: 固定步长（秒），<= 0 时不做任何事
func (s *VehicleSystem) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}

	vehicles := ecs.GetEntitiesWith3[
		*components.VehicleComponent,
		*components.TransformComponent,
		*components.DriveInputComponent,
	](s.entityManager)

	for _, id := range vehicles {
		vehicle, _ := ecs.GetComponent[*components.VehicleComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		input, _ := ecs.GetComponent[*components.DriveInputComponent](s.entityManager, id)

		delta := IntegrateVehicle(vehicle, input.Steer, input.Throttle, deltaTime)

		transform.Heading = vehicle.Heading
		transform.Position = transform.Position.Add(delta)

		if rb, ok := ecs.GetComponent[*components.RigidBodyComponent](s.entityManager, id); ok {
			// 速度始终沿车头方向，不存在横向分量
			rb.Velocity = utils.Forward(vehicle.Heading).Mul(vehicle.Speed)
		}
	}
}

// IntegrateVehicle 推进叉车运动学状态一个时间步
//
// 参数:
//   - v: 叉车状态（原地修改 SteerAngle / Speed / Heading）
//   - steer: 转向输入，截断到 [-1, 1]
//   - throttle: 油门输入，截断到 [-1, 1]，负数为倒车
//   - dt: 时间步长（秒）
//
// 返回:
//   - mgl64.Vec3: 本步位移（世界坐标）
//
// 转向角和速度都按 MoveTowards 线性逼近目标值；
// 目标速度与当前速度同号时使用 Accel，否则使用 BrakeAccel（0 视为正号）。
// 阻力在每一步都会作用，与输入无关。
func IntegrateVehicle(v *components.VehicleComponent, steer, throttle, dt float64) mgl64.Vec3 {
	if v == nil || dt <= 0 {
		return mgl64.Vec3{}
	}

	steer = utils.Clamp(steer, -1, 1)
	throttle = utils.Clamp(throttle, -1, 1)

	targetSteer := steer * v.MaxSteerAngle
	v.SteerAngle = utils.MoveTowards(v.SteerAngle, targetSteer, v.SteerResponse*dt)
	v.SteerAngle = utils.Clamp(v.SteerAngle, -v.MaxSteerAngle, v.MaxSteerAngle)

	targetMax := v.MaxForwardSpeed
	if throttle < 0 {
		targetMax = v.MaxReverseSpeed
	}
	targetSpeed := targetMax * throttle

	rate := v.BrakeAccel
	if utils.Sign(targetSpeed) == utils.Sign(v.Speed) {
		rate = v.Accel
	}
	v.Speed = utils.MoveTowards(v.Speed, targetSpeed, rate*dt)
	v.Speed -= v.Speed * v.Drag * dt

	yawRate := 0.0
	if v.WheelBase > wheelBaseEpsilon {
		yawRate = (v.Speed / v.WheelBase) * math.Tan(v.SteerAngle)
	}
	v.Heading += yawRate * dt

	return utils.Forward(v.Heading).Mul(v.Speed * dt)
}
