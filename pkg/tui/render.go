package tui

import (
	"image/color"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/forklift/pkg/components"
	"github.com/gonewx/forklift/pkg/ecs"
	"github.com/gonewx/forklift/pkg/utils"
)

// cellsPerMeter 缩放为 1 时每米对应的行数，列数加倍以补偿字符高宽比
const cellsPerMeter = 1.0

var (
	styleDefault = tcell.StyleDefault
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleVehicle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleAnchor  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	stylePanel   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy).Bold(true)
)

// vehicleGlyphs 按航向（0 为 +Z，即屏幕向上）顺时针每 45° 一个字符
var vehicleGlyphs = []rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// headingGlyph 航向角对应的箭头
func headingGlyph(heading float64) rune {
	sector := int(math.Floor(heading/(math.Pi/4) + 0.5))
	sector %= len(vehicleGlyphs)
	if sector < 0 {
		sector += len(vehicleGlyphs)
	}
	return vehicleGlyphs[sector]
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// camera 当前终端尺寸下的俯视摄像机
// ScreenWidth 取列数的一半，绘制时列坐标再乘 2
func (f *Frontend) camera() utils.TopDownCamera {
	w, h := f.screen.Size()
	cam := utils.TopDownCamera{
		PixelsPerMeter: cellsPerMeter * f.level.DisplayZoom(),
		ScreenWidth:    float64(w) / 2,
		ScreenHeight:   float64(h),
	}
	if f.level.Config() != nil {
		cam.Focus = f.level.CameraFocus()
	}
	return cam
}

func worldToCell(cam utils.TopDownCamera, p mgl64.Vec3) (int, int) {
	sx, sy := cam.WorldToScreen(p)
	return int(math.Floor(sx * 2)), int(math.Floor(sy))
}

func (f *Frontend) setCell(x, y int, r rune, style tcell.Style) {
	w, h := f.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	f.screen.SetContent(x, y, r, nil, style)
}

func (f *Frontend) drawString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		f.setCell(x, y, r, style)
		x++
	}
}

// Draw 绘制一帧
func (f *Frontend) Draw() {
	f.screen.Clear()

	if em := f.level.EntityManager(); em != nil {
		cam := f.camera()
		f.drawArena(em, cam)
		f.drawZones(em, cam)
		f.drawBalls(em, cam)
		f.drawVehicle(em, cam)
	}
	f.drawHUD()

	f.screen.Show()
}

func (f *Frontend) drawBox(cam utils.TopDownCamera, center, half mgl64.Vec3, fill func(x, y int)) {
	x0, y0 := worldToCell(cam, mgl64.Vec3{center.X() - half.X(), 0, center.Z() + half.Z()})
	x1, y1 := worldToCell(cam, mgl64.Vec3{center.X() + half.X(), 0, center.Z() - half.Z()})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			fill(x, y)
		}
	}
}

func (f *Frontend) drawArena(em *ecs.EntityManager, cam utils.TopDownCamera) {
	for _, id := range ecs.GetEntitiesWith1[*components.ArenaComponent](em) {
		arena, _ := ecs.GetComponent[*components.ArenaComponent](em, id)
		x0, y0 := worldToCell(cam, mgl64.Vec3{arena.Center.X() - arena.HalfExtents.X(), 0, arena.Center.Z() + arena.HalfExtents.Z()})
		x1, y1 := worldToCell(cam, mgl64.Vec3{arena.Center.X() + arena.HalfExtents.X(), 0, arena.Center.Z() - arena.HalfExtents.Z()})
		f.drawBox(cam, arena.Center, arena.HalfExtents, func(x, y int) {
			if x == x0 || x == x1 || y == y0 || y == y1 {
				f.setCell(x, y, '#', styleWall)
			}
		})
	}
}

func (f *Frontend) drawZones(em *ecs.EntityManager, cam utils.TopDownCamera) {
	for _, id := range ecs.GetEntitiesWith3[*components.ZoneComponent, *components.TransformComponent, *components.BoxColliderComponent](em) {
		zone, _ := ecs.GetComponent[*components.ZoneComponent](em, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		box, _ := ecs.GetComponent[*components.BoxColliderComponent](em, id)

		glyph := '░'
		if zone.Passed {
			glyph = '▓'
		}
		style := styleDefault.Foreground(rgb(zone.Color))
		f.drawBox(cam, tr.Position, box.HalfExtents, func(x, y int) {
			f.setCell(x, y, glyph, style)
		})
	}
}

func (f *Frontend) drawBalls(em *ecs.EntityManager, cam utils.TopDownCamera) {
	for _, id := range ecs.GetEntitiesWith2[*components.BallComponent, *components.TransformComponent](em) {
		ball, _ := ecs.GetComponent[*components.BallComponent](em, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		x, y := worldToCell(cam, tr.Position)
		f.setCell(x, y, '●', styleDefault.Foreground(rgb(ball.Color)).Bold(true))
	}
}

func (f *Frontend) drawVehicle(em *ecs.EntityManager, cam utils.TopDownCamera) {
	if tr, ok := ecs.GetComponent[*components.TransformComponent](em, f.level.AnchorID()); ok {
		x, y := worldToCell(cam, tr.Position)
		f.setCell(x, y, '+', styleAnchor)
	}
	if tr, ok := ecs.GetComponent[*components.TransformComponent](em, f.level.VehicleID()); ok {
		x, y := worldToCell(cam, tr.Position)
		f.setCell(x, y, headingGlyph(tr.Heading), styleVehicle)
	}
}

func (f *Frontend) drawHUD() {
	w, h := f.screen.Size()
	f.drawString(1, 0, f.hud.ScoreText, styleHUD)
	f.drawString(w-len(f.hud.TimerText)-1, 0, f.hud.TimerText, styleHUD)
	f.drawString(1, h-1, "WASD/arrows drive  space grab  +/- zoom  q quit", styleWall)

	if !f.hud.FinalVisible {
		return
	}
	lines := strings.Split(f.hud.FinalMessage, "\n")
	top := h/2 - len(lines)/2
	for i, line := range lines {
		f.drawString(w/2-len([]rune(line))/2, top+i, line, stylePanel)
	}
}
