package systems

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/forklift/pkg/components"
	"github.com/gonewx/forklift/pkg/ecs"
	"github.com/gonewx/forklift/pkg/utils"
)

// pickupRayHeight 拾取射线离地高度（米），需低于球的直径
const pickupRayHeight = 0.35

// Raycaster 射线检测接口（由 PhysicsSystem 实现）
type Raycaster interface {
	Raycast(origin, direction mgl64.Vec3, maxDistance float64, mask components.Layer) (RaycastHit, bool)
}

// CarrySystem 叉车抓取/搬运状态机（固定步长）
//
// 状态转换（State, GrabRequested）:
//   - (Empty, false):   无操作
//   - (Empty, true):    向前发射拾取射线；命中 → Holding，未命中 → 撤销请求
//   - (Holding, true):  把球拉向锚点，足够近时完全锁定
//   - (Holding, false): 释放，恢复球的物理属性
type CarrySystem struct {
	entityManager *ecs.EntityManager
	raycaster     Raycaster
}

// NewCarrySystem 创建抓取系统
func NewCarrySystem(em *ecs.EntityManager, raycaster Raycaster) *CarrySystem {
	return &CarrySystem{entityManager: em, raycaster: raycaster}
}

// ToggleGrab 翻转抓取请求（Grab 动作 performed 时调用）
func (s *CarrySystem) ToggleGrab(vehicleID ecs.EntityID) {
	carry, ok := ecs.GetComponent[*components.CarryComponent](s.entityManager, vehicleID)
	if !ok {
		log.Printf("[CarrySystem] Warning: entity %d has no CarryComponent", vehicleID)
		return
	}
	carry.GrabRequested = !carry.GrabRequested
}

// Update 推进抓取状态机
func (s *CarrySystem) Update(deltaTime float64) {
	vehicles := ecs.GetEntitiesWith2[
		*components.CarryComponent,
		*components.TransformComponent,
	](s.entityManager)

	for _, id := range vehicles {
		carry, _ := ecs.GetComponent[*components.CarryComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		s.step(id, carry, transform)
	}
}

func (s *CarrySystem) step(vehicleID ecs.EntityID, carry *components.CarryComponent, transform *components.TransformComponent) {
	switch carry.State {
	case components.CarryEmpty:
		if carry.GrabRequested {
			s.tryPickup(vehicleID, carry, transform)
		}
	case components.CarryHolding:
		held, ok := ecs.GetComponent[*components.RigidBodyComponent](s.entityManager, carry.Held)
		if !ok {
			// 被持有的物体已不存在
			log.Printf("[CarrySystem] Warning: held entity %d vanished, resetting", carry.Held)
			carry.State = components.CarryEmpty
			carry.Held = ecs.NoEntity
			carry.GrabRequested = false
			return
		}
		if carry.GrabRequested {
			s.pullTowardAnchor(carry, held)
		} else {
			s.release(carry, held)
		}
	default:
		log.Printf("[CarrySystem] ERROR: unknown carry state %d", carry.State)
	}
}

// PickupRay 返回拾取射线的起点、方向和长度
//
// 射线从车体中心（贴近球心高度）发出，长度为 frontOffset + pickupRange，
// 有效距离仍按车头计算。车头可能伸进贴身球的内部，从车头起射会漏掉这些球。
func PickupRay(transform *components.TransformComponent, frontOffset, pickupRange float64) (mgl64.Vec3, mgl64.Vec3, float64) {
	origin := transform.Position.Add(utils.Up.Mul(pickupRayHeight))
	return origin, utils.Forward(transform.Heading), frontOffset + pickupRange
}

func (s *CarrySystem) tryPickup(vehicleID ecs.EntityID, carry *components.CarryComponent, transform *components.TransformComponent) {
	frontOffset := 0.0
	if vehicle, ok := ecs.GetComponent[*components.VehicleComponent](s.entityManager, vehicleID); ok {
		frontOffset = vehicle.FrontOffset
	}
	origin, dir, maxDistance := PickupRay(transform, frontOffset, carry.PickupRange)

	var hit RaycastHit
	found := false
	if s.raycaster != nil {
		hit, found = s.raycaster.Raycast(origin, dir, maxDistance, components.LayerBalls)
	}

	rb, hasBody := ecs.GetComponent[*components.RigidBodyComponent](s.entityManager, hit.Entity)
	if !found || !hasBody {
		// 未命中：撤销请求，保持 Empty
		carry.GrabRequested = false
		return
	}

	rb.UseGravity = false
	rb.LinearDamping = carry.HeldDamping
	rb.AngularDamping = carry.HeldDamping
	rb.Constraints = components.FreezeRotation
	rb.Parent = carry.Anchor

	carry.State = components.CarryHolding
	carry.Held = hit.Entity
	log.Printf("[CarrySystem] 抓取球 %d (距离 %.2f)", hit.Entity, hit.Distance)
}

func (s *CarrySystem) pullTowardAnchor(carry *components.CarryComponent, rb *components.RigidBodyComponent) {
	ballTransform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, carry.Held)
	if !ok {
		return
	}
	anchorTransform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, carry.Anchor)
	if !ok {
		return
	}

	toAnchor := anchorTransform.Position.Sub(ballTransform.Position)
	if toAnchor.Len() > carry.LockThreshold {
		rb.Constraints = components.FreezeRotation
		rb.AddForce(toAnchor.Mul(carry.PickupForce), components.ForceModeForce)
	} else {
		rb.Constraints = components.FreezeAll
	}
}

func (s *CarrySystem) release(carry *components.CarryComponent, rb *components.RigidBodyComponent) {
	rb.UseGravity = true
	rb.LinearDamping = carry.ReleasedDamping
	rb.AngularDamping = carry.ReleasedDamping
	rb.Constraints = components.ConstraintsNone
	rb.Parent = ecs.NoEntity

	log.Printf("[CarrySystem] 释放球 %d", carry.Held)
	carry.State = components.CarryEmpty
	carry.Held = ecs.NoEntity
}
