package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/forklift/pkg/components"
	"github.com/gonewx/forklift/pkg/config"
	"github.com/gonewx/forklift/pkg/ecs"
	"github.com/gonewx/forklift/pkg/utils"
)

// restingSpeed 低于此速度的弹跳直接归零，避免球在地面上无限抖动
const restingSpeed = 0.5

// RaycastHit 射线检测结果
type RaycastHit struct {
	Entity   ecs.EntityID
	Point    mgl64.Vec3
	Distance float64
}

// PhysicsSystem 简化的刚体物理（固定步长）
// 职责：
// - 重力、外力、阻尼和约束的积分
// - 地面和场地边界
// - 球与球、车与球之间的推挤
// - 射线检测（供抓取使用）
//
// 只处理球形碰撞体；触发器由 TriggerSystem 负责
type PhysicsSystem struct {
	entityManager *ecs.EntityManager
	gravity       float64
	restitution   float64
	friction      float64
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器
//   - pc: 物理参数（重力、恢复系数、地面摩擦）
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(em *ecs.EntityManager, pc config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{
		entityManager: em,
		gravity:       pc.Gravity,
		restitution:   pc.Restitution,
		friction:      pc.GroundFriction,
	}
}

// body 一个参与积分的球形刚体
type body struct {
	id        ecs.EntityID
	transform *components.TransformComponent
	rb        *components.RigidBodyComponent
	sphere    *components.SphereColliderComponent
}

// Update 推进一个固定步长
func (ps *PhysicsSystem) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}

	bodies := ps.collectBodies()
	arena := ps.findArena()

	for _, b := range bodies {
		ps.integrate(b, deltaTime)
		if arena != nil {
			ps.resolveArena(b, arena, deltaTime)
		}
	}

	ps.resolveSphereContacts(bodies)
	ps.resolveVehicleContacts(bodies, arena)
}

func (ps *PhysicsSystem) collectBodies() []body {
	ids := ecs.GetEntitiesWith3[
		*components.TransformComponent,
		*components.RigidBodyComponent,
		*components.SphereColliderComponent,
	](ps.entityManager)

	bodies := make([]body, 0, len(ids))
	for _, id := range ids {
		tr, _ := ecs.GetComponent[*components.TransformComponent](ps.entityManager, id)
		rb, _ := ecs.GetComponent[*components.RigidBodyComponent](ps.entityManager, id)
		sc, _ := ecs.GetComponent[*components.SphereColliderComponent](ps.entityManager, id)
		if rb.Kinematic {
			continue
		}
		// 父实体已被清理时自动解除挂接
		if rb.Parent != ecs.NoEntity && !ps.entityManager.Exists(rb.Parent) {
			rb.Parent = ecs.NoEntity
		}
		bodies = append(bodies, body{id: id, transform: tr, rb: rb, sphere: sc})
	}
	return bodies
}

func (ps *PhysicsSystem) findArena() *components.ArenaComponent {
	for _, id := range ecs.GetEntitiesWith1[*components.ArenaComponent](ps.entityManager) {
		arena, _ := ecs.GetComponent[*components.ArenaComponent](ps.entityManager, id)
		return arena
	}
	return nil
}

// integrate 重力 → 外力 → 阻尼 → 约束 → 位置
func (ps *PhysicsSystem) integrate(b body, dt float64) {
	rb := b.rb

	if rb.UseGravity {
		rb.Velocity[1] += ps.gravity * dt
	}

	if rb.AccumulatedForce != (mgl64.Vec3{}) {
		rb.Velocity = rb.Velocity.Add(rb.AccumulatedForce.Mul(dt / rb.EffectiveMass()))
		rb.AccumulatedForce = mgl64.Vec3{}
	}

	rb.Velocity = rb.Velocity.Mul(1 / (1 + rb.LinearDamping*dt))
	rb.AngularVelocity = rb.AngularVelocity.Mul(1 / (1 + rb.AngularDamping*dt))

	applyConstraints(rb)

	b.transform.Position = b.transform.Position.Add(rb.Velocity.Mul(dt))
}

// applyConstraints 清除被冻结轴上的速度
func applyConstraints(rb *components.RigidBodyComponent) {
	c := rb.Constraints
	if c.Has(components.FreezePositionX) {
		rb.Velocity[0] = 0
	}
	if c.Has(components.FreezePositionY) {
		rb.Velocity[1] = 0
	}
	if c.Has(components.FreezePositionZ) {
		rb.Velocity[2] = 0
	}
	if c.Has(components.FreezeRotationX) {
		rb.AngularVelocity[0] = 0
	}
	if c.Has(components.FreezeRotationY) {
		rb.AngularVelocity[1] = 0
	}
	if c.Has(components.FreezeRotationZ) {
		rb.AngularVelocity[2] = 0
	}
}

// resolveArena 地面支撑、滚动摩擦和四面墙
func (ps *PhysicsSystem) resolveArena(b body, arena *components.ArenaComponent, dt float64) {
	rb := b.rb
	pos := &b.transform.Position
	r := b.sphere.Radius

	floor := arena.GroundY + r
	if pos.Y() <= floor {
		pos[1] = floor
		if rb.Velocity.Y() < 0 {
			bounce := -rb.Velocity.Y() * ps.restitution
			if bounce < restingSpeed {
				bounce = 0
			}
			rb.Velocity[1] = bounce
		}
		ps.roll(b, dt)
	}

	ps.bounceOffWalls(b, arena)
}

// bounceOffWalls 把球限制在四面墙内，撞墙的速度分量按恢复系数反弹
func (ps *PhysicsSystem) bounceOffWalls(b body, arena *components.ArenaComponent) {
	rb := b.rb
	hitX, hitZ := containXZ(&b.transform.Position, arena, b.sphere.Radius)
	if hitX != 0 {
		rb.Velocity[0] = -hitX * math.Abs(rb.Velocity.X()) * ps.restitution
	}
	if hitZ != 0 {
		rb.Velocity[2] = -hitZ * math.Abs(rb.Velocity.Z()) * ps.restitution
	}
}

// containXZ 把 pos 的 XZ 限制在场地内（向内收缩 inset）
// 返回每个轴撞到的墙：-1 为负方向的墙，1 为正方向的墙，0 为未触墙
func containXZ(pos *mgl64.Vec3, arena *components.ArenaComponent, inset float64) (float64, float64) {
	minX := arena.Center.X() - arena.HalfExtents.X() + inset
	maxX := arena.Center.X() + arena.HalfExtents.X() - inset
	minZ := arena.Center.Z() - arena.HalfExtents.Z() + inset
	maxZ := arena.Center.Z() + arena.HalfExtents.Z() - inset

	hitX, hitZ := 0.0, 0.0
	if pos.X() < minX {
		pos[0] = minX
		hitX = -1
	} else if pos.X() > maxX {
		pos[0] = maxX
		hitX = 1
	}
	if pos.Z() < minZ {
		pos[2] = minZ
		hitZ = -1
	} else if pos.Z() > maxZ {
		pos[2] = maxZ
		hitZ = 1
	}
	return hitX, hitZ
}

// roll 地面上的滚动：摩擦衰减水平速度，并累计滚动角度用于绘制
func (ps *PhysicsSystem) roll(b body, dt float64) {
	rb := b.rb
	decay := 1 / (1 + ps.friction*dt)
	rb.Velocity[0] *= decay
	rb.Velocity[2] *= decay

	if rb.Constraints.Has(components.FreezeRotation) || b.sphere.Radius <= 0 {
		return
	}
	horizontal := math.Hypot(rb.Velocity.X(), rb.Velocity.Z())
	rb.RollAngle += horizontal / b.sphere.Radius * dt
}

// resolveSphereContacts 球与球之间的分离和速度交换
// 被挂接的球（正在被搬运）视为不可推动
func (ps *PhysicsSystem) resolveSphereContacts(bodies []body) {
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, b := bodies[i], bodies[j]
			delta := b.transform.Position.Sub(a.transform.Position)
			dist := delta.Len()
			minDist := a.sphere.Radius + b.sphere.Radius
			if dist >= minDist {
				continue
			}

			normal := mgl64.Vec3{1, 0, 0}
			if dist > 1e-9 {
				normal = delta.Mul(1 / dist)
			}
			overlap := minDist - dist

			aFixed := a.rb.Parent != ecs.NoEntity
			bFixed := b.rb.Parent != ecs.NoEntity
			switch {
			case aFixed && bFixed:
				continue
			case aFixed:
				b.transform.Position = b.transform.Position.Add(normal.Mul(overlap))
			case bFixed:
				a.transform.Position = a.transform.Position.Sub(normal.Mul(overlap))
			default:
				a.transform.Position = a.transform.Position.Sub(normal.Mul(overlap / 2))
				b.transform.Position = b.transform.Position.Add(normal.Mul(overlap / 2))
			}

			ps.exchangeVelocity(a, b, normal, aFixed, bFixed)
		}
	}
}

// exchangeVelocity 沿法线方向的弹性碰撞（带恢复系数）
func (ps *PhysicsSystem) exchangeVelocity(a, b body, normal mgl64.Vec3, aFixed, bFixed bool) {
	relative := b.rb.Velocity.Sub(a.rb.Velocity).Dot(normal)
	if relative >= 0 {
		return // 已在分离
	}

	invA := 1 / a.rb.EffectiveMass()
	invB := 1 / b.rb.EffectiveMass()
	if aFixed {
		invA = 0
	}
	if bFixed {
		invB = 0
	}
	if invA+invB == 0 {
		return
	}

	j := -(1 + ps.restitution) * relative / (invA + invB)
	impulse := normal.Mul(j)
	a.rb.Velocity = a.rb.Velocity.Sub(impulse.Mul(invA))
	b.rb.Velocity = b.rb.Velocity.Add(impulse.Mul(invB))
}

// resolveVehicleContacts 车身推开球（水平方向），并把车辆限制在场地内
// 车辆只在撞墙或把球顶在墙上时受阻；被搬运的球不参与
func (ps *PhysicsSystem) resolveVehicleContacts(bodies []body, arena *components.ArenaComponent) {
	vehicles := ecs.GetEntitiesWith2[
		*components.VehicleComponent,
		*components.TransformComponent,
	](ps.entityManager)

	for _, vid := range vehicles {
		vehicle, _ := ecs.GetComponent[*components.VehicleComponent](ps.entityManager, vid)
		vt, _ := ecs.GetComponent[*components.TransformComponent](ps.entityManager, vid)
		if arena != nil {
			ps.containVehicle(vid, vehicle, vt, arena)
		}
		vehicleVelocity := utils.Forward(vehicle.Heading).Mul(vehicle.Speed)

		for _, b := range bodies {
			if b.rb.Parent != ecs.NoEntity {
				continue
			}
			pos := b.transform.Position
			dist := utils.HorizontalDistance(pos, vt.Position)
			minDist := vehicle.BodyRadius + b.sphere.Radius
			if dist >= minDist {
				continue
			}

			normal := utils.Forward(vehicle.Heading)
			if dist > 1e-9 {
				normal = mgl64.Vec3{pos.X() - vt.Position.X(), 0, pos.Z() - vt.Position.Z()}.Mul(1 / dist)
			}
			b.transform.Position = pos.Add(normal.Mul(minDist - dist))

			// 球沿法线方向至少获得车辆的速度分量
			push := vehicleVelocity.Dot(normal)
			current := b.rb.Velocity.Dot(normal)
			if push > current {
				b.rb.Velocity = b.rb.Velocity.Add(normal.Mul(push - current))
			}

			if arena == nil {
				continue
			}
			// 球被顶在墙上：墙把球推回来，剩余的重叠由车辆退让
			ps.bounceOffWalls(b, arena)
			pos = b.transform.Position
			dist = utils.HorizontalDistance(pos, vt.Position)
			if overlap := minDist - dist; overlap > 1e-9 {
				if dist > 1e-9 {
					normal = mgl64.Vec3{pos.X() - vt.Position.X(), 0, pos.Z() - vt.Position.Z()}.Mul(1 / dist)
				}
				vt.Position = vt.Position.Sub(normal.Mul(overlap))
				if push > 0 {
					ps.stopVehicle(vid, vehicle)
				}
			}
		}
		if arena != nil {
			ps.containVehicle(vid, vehicle, vt, arena)
		}
	}
}

// containVehicle 把车身限制在四面墙内，朝墙行驶时速度归零
func (ps *PhysicsSystem) containVehicle(id ecs.EntityID, vehicle *components.VehicleComponent, vt *components.TransformComponent, arena *components.ArenaComponent) {
	hitX, hitZ := containXZ(&vt.Position, arena, vehicle.BodyRadius)
	if hitX == 0 && hitZ == 0 {
		return
	}
	velocity := utils.Forward(vehicle.Heading).Mul(vehicle.Speed)
	if velocity.X()*hitX > 0 || velocity.Z()*hitZ > 0 {
		ps.stopVehicle(id, vehicle)
	}
}

func (ps *PhysicsSystem) stopVehicle(id ecs.EntityID, vehicle *components.VehicleComponent) {
	vehicle.Speed = 0
	if rb, ok := ecs.GetComponent[*components.RigidBodyComponent](ps.entityManager, id); ok {
		rb.Velocity = mgl64.Vec3{}
	}
}

// Raycast 射线检测，返回最近的命中
//
// 参数:
//   - origin: 射线起点
//   - direction: 射线方向（无需归一化）
//   - maxDistance: 最大检测距离
//   - mask: 层掩码，只检测 Layer 与掩码相交的碰撞体
//
// 起点位于球体内部时不计为命中
func (ps *PhysicsSystem) Raycast(origin, direction mgl64.Vec3, maxDistance float64, mask components.Layer) (RaycastHit, bool) {
	if direction.Len() == 0 || maxDistance <= 0 {
		return RaycastHit{}, false
	}
	dir := direction.Normalize()

	best := RaycastHit{Distance: math.Inf(1)}
	found := false

	ids := ecs.GetEntitiesWith2[
		*components.TransformComponent,
		*components.SphereColliderComponent,
	](ps.entityManager)

	for _, id := range ids {
		sc, _ := ecs.GetComponent[*components.SphereColliderComponent](ps.entityManager, id)
		if sc.Layer&mask == 0 {
			continue
		}
		tr, _ := ecs.GetComponent[*components.TransformComponent](ps.entityManager, id)

		t, ok := raySphere(origin, dir, tr.Position, sc.Radius)
		if !ok || t > maxDistance || t >= best.Distance {
			continue
		}
		best = RaycastHit{Entity: id, Point: origin.Add(dir.Mul(t)), Distance: t}
		found = true
	}
	return best, found
}

// raySphere 射线与球求交，dir 必须为单位向量
// 返回进入点的参数 t（>= 0）
func raySphere(origin, dir, center mgl64.Vec3, radius float64) (float64, bool) {
	oc := origin.Sub(center)
	c := oc.Dot(oc) - radius*radius
	if c < 0 {
		return 0, false // 起点在球内
	}
	b := oc.Dot(dir)
	if b > 0 {
		return 0, false // 球在射线后方
	}
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	return -b - math.Sqrt(disc), true
}
