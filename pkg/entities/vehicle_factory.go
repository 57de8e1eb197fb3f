package entities

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/forklift/pkg/components"
	"github.com/gonewx/forklift/pkg/config"
	"github.com/gonewx/forklift/pkg/ecs"
	"github.com/gonewx/forklift/pkg/utils"
)

// NewVehicleEntity 创建叉车实体及其持物锚点
//
// 参数:
//   - em: 实体管理器
//   - vc: 叉车配置
//   - cc: 抓取配置（锚点偏移、拾取距离等）
//
// 返回:
//   - vehicleID: 叉车实体ID
//   - anchorID: 持物锚点实体ID
//   - error: 参数无效时返回错误
//
// 叉车使用运动学刚体：位置由 VehicleSystem 直接移动，只冻结 X/Z 轴旋转
func NewVehicleEntity(em *ecs.EntityManager, vc config.VehicleConfig, cc config.CarryConfig) (ecs.EntityID, ecs.EntityID, error) {
	if em == nil {
		return 0, 0, fmt.Errorf("entity manager cannot be nil")
	}

	heading := vc.HeadingRad()
	vehicleID := em.CreateEntity()

	em.AddComponent(vehicleID, &components.TransformComponent{
		Position: vc.Start.Vec3(),
		Heading:  heading,
	})
	em.AddComponent(vehicleID, &components.VehicleComponent{
		WheelBase:       vc.WheelBase,
		MaxSteerAngle:   vc.MaxSteerAngleRad(),
		SteerResponse:   vc.SteerResponse,
		MaxForwardSpeed: vc.MaxForwardSpeed,
		MaxReverseSpeed: vc.MaxReverseSpeed,
		Accel:           vc.Accel,
		BrakeAccel:      vc.BrakeAccel,
		Drag:            vc.Drag,
		Heading:         heading,
		BodyRadius:      vc.BodyRadius,
		FrontOffset:     vc.FrontOffset,
	})
	em.AddComponent(vehicleID, &components.DriveInputComponent{})
	em.AddComponent(vehicleID, &components.RigidBodyComponent{
		Mass:        vc.Mass,
		Kinematic:   true,
		Constraints: components.FreezeRotationX | components.FreezeRotationZ,
	})
	em.AddComponent(vehicleID, &components.TagComponent{Tag: components.TagPlayer})

	anchorID := em.CreateEntity()
	offset := cc.HoldingOffset.Vec3()
	em.AddComponent(anchorID, &components.AnchorComponent{
		Owner:       vehicleID,
		LocalOffset: offset,
		HalfExtents: mgl64.Vec3{0.35, 0.35, 0.35},
	})
	em.AddComponent(anchorID, &components.TransformComponent{
		Position: vc.Start.Vec3().Add(utils.RotateY(offset, heading)),
		Heading:  heading,
	})
	em.AddComponent(anchorID, &components.TagComponent{Tag: components.TagHoldingArea})

	em.AddComponent(vehicleID, &components.CarryComponent{
		State:           components.CarryEmpty,
		Anchor:          anchorID,
		PickupRange:     cc.PickupRange,
		PickupForce:     cc.PickupForce,
		LockThreshold:   cc.LockThreshold,
		HeldDamping:     cc.HeldDamping,
		ReleasedDamping: cc.ReleasedDamping,
	})

	return vehicleID, anchorID, nil
}
