package entities

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/forklift/pkg/components"
	"github.com/gonewx/forklift/pkg/ecs"
)

// BallSpec 彩球创建参数
type BallSpec struct {
	Index    int
	Position mgl64.Vec3
	Color    color.RGBA
	Radius   float64
	Mass     float64
	Damping  float64 // 基准线性/角阻尼
}

// NewBallEntity 创建彩球实体
// 彩球位于 LayerBalls（可抓取），标签为 Ball（可计分）
func NewBallEntity(em *ecs.EntityManager, spec BallSpec) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if spec.Radius <= 0 {
		return 0, fmt.Errorf("invalid ball radius %v", spec.Radius)
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{Position: spec.Position})
	em.AddComponent(id, &components.RigidBodyComponent{
		Mass:           spec.Mass,
		UseGravity:     true,
		LinearDamping:  spec.Damping,
		AngularDamping: spec.Damping,
	})
	em.AddComponent(id, &components.SphereColliderComponent{
		Radius: spec.Radius,
		Layer:  components.LayerBalls,
	})
	em.AddComponent(id, &components.BallComponent{Color: spec.Color, Index: spec.Index})
	em.AddComponent(id, &components.TagComponent{Tag: components.TagBall})
	return id, nil
}
