package systems

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/forklift/pkg/components"
	"github.com/gonewx/forklift/pkg/ecs"
	"github.com/gonewx/forklift/pkg/utils"
)

// AnchorSystem 让持物锚点跟随车辆，并带动挂接在锚点上的刚体
// 在 VehicleSystem 之后、CarrySystem 之前运行
type AnchorSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnchorSystem 创建锚点跟随系统
func NewAnchorSystem(em *ecs.EntityManager) *AnchorSystem {
	return &AnchorSystem{entityManager: em}
}

// Update 同步锚点位姿
func (s *AnchorSystem) Update(deltaTime float64) {
	anchors := ecs.GetEntitiesWith2[
		*components.AnchorComponent,
		*components.TransformComponent,
	](s.entityManager)

	for _, id := range anchors {
		anchor, _ := ecs.GetComponent[*components.AnchorComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		owner, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, anchor.Owner)
		if !ok {
			continue
		}

		oldPos := transform.Position
		turn := owner.Heading - transform.Heading

		transform.Heading = owner.Heading
		transform.Position = owner.Position.Add(utils.RotateY(anchor.LocalOffset, owner.Heading))

		s.moveChildren(id, oldPos, transform.Position, turn)
	}
}

// moveChildren 子物体保持相对锚点的局部位置
func (s *AnchorSystem) moveChildren(parent ecs.EntityID, oldPos, newPos mgl64.Vec3, turn float64) {
	bodies := ecs.GetEntitiesWith2[
		*components.RigidBodyComponent,
		*components.TransformComponent,
	](s.entityManager)

	for _, id := range bodies {
		rb, _ := ecs.GetComponent[*components.RigidBodyComponent](s.entityManager, id)
		if rb.Parent != parent {
			continue
		}
		child, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		local := child.Position.Sub(oldPos)
		child.Position = newPos.Add(utils.RotateY(local, turn))
		child.Heading += turn
	}
}
