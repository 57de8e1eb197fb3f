package scenes

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/forklift/pkg/components"
	"github.com/gonewx/forklift/pkg/ecs"
	"github.com/gonewx/forklift/pkg/systems"
	"github.com/gonewx/forklift/pkg/utils"
)

var (
	rayMissColor  = color.RGBA{R: 255, G: 0, B: 0, A: 200}
	rayHitColor   = color.RGBA{R: 0, G: 255, B: 0, A: 200}
	anchorColor   = color.RGBA{R: 0, G: 200, B: 255, A: 200}
	steeringColor = color.RGBA{R: 255, G: 255, B: 0, A: 200}
)

// drawDebug 调试绘制（F3 切换）：拾取射线、持物锚点、转向方向和状态文本
func (s *GameScene) drawDebug(screen *ebiten.Image, em *ecs.EntityManager) {
	vehicleID := s.level.VehicleID()
	tr, ok := ecs.GetComponent[*components.TransformComponent](em, vehicleID)
	if !ok {
		return
	}
	v, _ := ecs.GetComponent[*components.VehicleComponent](em, vehicleID)
	carry, _ := ecs.GetComponent[*components.CarryComponent](em, vehicleID)
	if v == nil || carry == nil {
		return
	}

	// 拾取射线，命中为绿色
	origin, dir, maxDistance := systems.PickupRay(tr, v.FrontOffset, carry.PickupRange)
	end := origin.Add(dir.Mul(maxDistance))
	rayColor := rayMissColor
	if hit, found := s.level.Physics().Raycast(origin, dir, maxDistance, components.LayerBalls); found {
		end = hit.Point
		rayColor = rayHitColor
	}
	x0, y0 := s.camera.WorldToScreen(origin)
	x1, y1 := s.camera.WorldToScreen(end)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, rayColor, true)

	// 持物锚点
	if anchorTr, ok := ecs.GetComponent[*components.TransformComponent](em, s.level.AnchorID()); ok {
		if anchor, ok := ecs.GetComponent[*components.AnchorComponent](em, s.level.AnchorID()); ok {
			x, y, w, h := s.worldRect(anchorTr.Position, anchor.HalfExtents)
			vector.StrokeRect(screen, x, y, w, h, 1, anchorColor, false)
		}
	}

	// 前轮转向方向
	front := tr.Position.Add(utils.Forward(tr.Heading).Mul(v.WheelBase))
	steer := front.Add(utils.Forward(tr.Heading + v.SteerAngle).Mul(1.5))
	fx, fy := s.camera.WorldToScreen(front)
	sx, sy := s.camera.WorldToScreen(steer)
	vector.StrokeLine(screen, float32(fx), float32(fy), float32(sx), float32(sy), 2, steeringColor, true)

	info := fmt.Sprintf("FPS: %.1f\nSpeed: %.2f m/s\nSteer: %.1f deg\nCarry: %v (requested=%v)\nZoom: %.2f",
		ebiten.ActualFPS(), v.Speed, mgl64.RadToDeg(v.SteerAngle), carry.State, carry.GrabRequested, s.level.Zoom())
	ebitenutil.DebugPrintAt(screen, info, 10, 50)
}
