package scenes

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/forklift/pkg/components"
	"github.com/gonewx/forklift/pkg/config"
	"github.com/gonewx/forklift/pkg/ecs"
	"github.com/gonewx/forklift/pkg/utils"
)

var (
	groundColor   = color.RGBA{R: 58, G: 64, B: 70, A: 255}
	arenaColor    = color.RGBA{R: 86, G: 94, B: 102, A: 255}
	wallColor     = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	vehicleColor  = color.RGBA{R: 255, G: 190, B: 11, A: 255}
	forkColor     = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	shadowColor   = color.RGBA{A: 90}
	hudColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	overlayColor  = color.RGBA{A: 160}
	panelColor    = color.RGBA{R: 29, G: 53, B: 87, A: 230}
	panelEdge     = color.RGBA{R: 241, G: 250, B: 238, A: 255}
	zoneFillAlpha = uint8(70)
)

const (
	// forkLength 货叉长度（米）
	forkLength = 1.0
	// finalFadeDuration 结算面板淡入时间（秒）
	finalFadeDuration = 0.3
)

func (s *GameScene) worldRect(center, halfExtents mgl64.Vec3) (x, y, w, h float32) {
	// 世界 +Z 对应屏幕向上，左上角取 (-X, +Z)
	sx, sy := s.camera.WorldToScreen(mgl64.Vec3{center.X() - halfExtents.X(), 0, center.Z() + halfExtents.Z()})
	return float32(sx), float32(sy),
		float32(s.camera.MetersToPixels(2 * halfExtents.X())),
		float32(s.camera.MetersToPixels(2 * halfExtents.Z()))
}

func (s *GameScene) drawArena(screen *ebiten.Image, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith1[*components.ArenaComponent](em) {
		arena, _ := ecs.GetComponent[*components.ArenaComponent](em, id)
		x, y, w, h := s.worldRect(arena.Center, arena.HalfExtents)
		vector.DrawFilledRect(screen, x, y, w, h, arenaColor, false)
		vector.StrokeRect(screen, x, y, w, h, 4, wallColor, false)
	}
}

func (s *GameScene) drawZones(screen *ebiten.Image, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith3[*components.ZoneComponent, *components.TransformComponent, *components.BoxColliderComponent](em) {
		zone, _ := ecs.GetComponent[*components.ZoneComponent](em, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		box, _ := ecs.GetComponent[*components.BoxColliderComponent](em, id)

		fill := zone.Color
		fill.A = zoneFillAlpha
		if zone.Passed {
			fill.A = 200
		}
		x, y, w, h := s.worldRect(tr.Position, box.HalfExtents)
		vector.DrawFilledRect(screen, x, y, w, h, fill, false)
		vector.StrokeRect(screen, x, y, w, h, 2, zone.Color, false)
	}
}

// drawPulses 得分脉冲：半径按缓出曲线扩张，透明度线性衰减
func (s *GameScene) drawPulses(screen *ebiten.Image, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith2[*components.ScorePulseComponent, *components.LifetimeComponent](em) {
		pulse, _ := ecs.GetComponent[*components.ScorePulseComponent](em, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)

		p := lifetime.Progress()
		r := float32(s.camera.MetersToPixels(pulse.MaxRadius * utils.EaseOutCubic(p)))
		if r <= 0 {
			continue
		}
		ring := pulse.Color
		ring.A = uint8(utils.Lerp(255, 0, p))
		sx, sy := s.camera.WorldToScreen(pulse.Center)
		vector.StrokeCircle(screen, float32(sx), float32(sy), r, 3, ring, true)
	}
}

func (s *GameScene) drawBalls(screen *ebiten.Image, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith3[*components.BallComponent, *components.TransformComponent, *components.SphereColliderComponent](em) {
		ball, _ := ecs.GetComponent[*components.BallComponent](em, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		sphere, _ := ecs.GetComponent[*components.SphereColliderComponent](em, id)

		sx, sy := s.camera.WorldToScreen(tr.Position)
		r := float32(s.camera.MetersToPixels(sphere.Radius))

		// 高度越高影子偏移越大
		lift := float32(s.camera.MetersToPixels(math.Max(0, tr.Position.Y()-sphere.Radius)))
		vector.DrawFilledCircle(screen, float32(sx)+lift*0.5, float32(sy)+lift, r, shadowColor, true)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), r, ball.Color, true)

		// 滚动标记
		if rb, ok := ecs.GetComponent[*components.RigidBodyComponent](em, id); ok {
			mx := float32(sx) + r*0.6*float32(math.Cos(rb.RollAngle))
			my := float32(sy) + r*0.6*float32(math.Sin(rb.RollAngle))
			vector.DrawFilledCircle(screen, mx, my, r*0.2, color.White, true)
		}
	}
}

func (s *GameScene) drawVehicle(screen *ebiten.Image, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith2[*components.VehicleComponent, *components.TransformComponent](em) {
		v, _ := ecs.GetComponent[*components.VehicleComponent](em, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)

		sx, sy := s.camera.WorldToScreen(tr.Position)
		r := float32(s.camera.MetersToPixels(v.BodyRadius))
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), r, vehicleColor, true)

		// 两根货叉从车头沿航向伸出
		forward := utils.Forward(tr.Heading)
		right := utils.Right(tr.Heading)
		for _, side := range []float64{-0.3, 0.3} {
			base := tr.Position.Add(forward.Mul(v.FrontOffset)).Add(right.Mul(side))
			tip := base.Add(forward.Mul(forkLength))
			x0, y0 := s.camera.WorldToScreen(base)
			x1, y1 := s.camera.WorldToScreen(tip)
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 4, forkColor, true)
		}
	}
}

func (s *GameScene) drawHUD(screen *ebiten.Image) {
	drawText(screen, s.hud.ScoreText, s.hudFace, config.HUDMargin, config.HUDMargin, text.AlignStart, hudColor)
	drawText(screen, s.hud.TimerText, s.hudFace, float64(config.GameWindowWidth)-config.HUDMargin, config.HUDMargin, text.AlignEnd, hudColor)
}

func (s *GameScene) drawFinalPanel(screen *ebiten.Image) {
	if !s.hud.FinalVisible {
		return
	}
	w := float32(config.GameWindowWidth)
	h := float32(config.GameWindowHeight)
	fade := utils.EaseOutQuad(math.Min(1, s.finalElapsed/finalFadeDuration))
	overlay := overlayColor
	overlay.A = uint8(float64(overlayColor.A) * fade)
	vector.DrawFilledRect(screen, 0, 0, w, h, overlay, false)

	// 面板从上方滑入
	x := (w - config.FinalPanelWidth) / 2
	y := (h-config.FinalPanelHeight)/2 - float32(utils.Lerp(40, 0, fade))
	vector.DrawFilledRect(screen, x, y, config.FinalPanelWidth, config.FinalPanelHeight, panelColor, false)
	vector.StrokeRect(screen, x, y, config.FinalPanelWidth, config.FinalPanelHeight, 3, panelEdge, false)

	drawText(screen, s.hud.FinalMessage, s.finalFace, float64(w)/2, float64(y)+30, text.AlignCenter, panelEdge)
}
