// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供俯视摄像机的坐标转换。
//
// # 坐标系统概述
//
//   - **世界坐标**：三维，Y 轴向上，地面为 XZ 平面（单位：米）
//   - **屏幕坐标**：相对于游戏窗口左上角（单位：像素）
//
// 俯视投影丢弃 Y 分量：世界 +X 对应屏幕向右，世界 +Z 对应屏幕向上。
//
// # 核心转换公式
//
//	screenX = centerX + (world.X - focus.X) * pixelsPerMeter
//	screenY = centerY - (world.Z - focus.Z) * pixelsPerMeter
package utils

import "github.com/go-gl/mathgl/mgl64"

// TopDownCamera 俯视摄像机
type TopDownCamera struct {
	Focus          mgl64.Vec3 // 画面中心对应的世界坐标
	PixelsPerMeter float64    // 缩放（每米像素数）
	ScreenWidth    float64
	ScreenHeight   float64
}

// WorldToScreen 世界坐标 → 屏幕坐标
func (c TopDownCamera) WorldToScreen(p mgl64.Vec3) (float64, float64) {
	sx := c.ScreenWidth/2 + (p.X()-c.Focus.X())*c.PixelsPerMeter
	sy := c.ScreenHeight/2 - (p.Z()-c.Focus.Z())*c.PixelsPerMeter
	return sx, sy
}

// ScreenToWorld 屏幕坐标 → 世界坐标（Y 分量为 0）
func (c TopDownCamera) ScreenToWorld(sx, sy float64) mgl64.Vec3 {
	if c.PixelsPerMeter == 0 {
		return c.Focus
	}
	x := (sx-c.ScreenWidth/2)/c.PixelsPerMeter + c.Focus.X()
	z := -(sy-c.ScreenHeight/2)/c.PixelsPerMeter + c.Focus.Z()
	return mgl64.Vec3{x, 0, z}
}

// MetersToPixels 长度换算
func (c TopDownCamera) MetersToPixels(m float64) float64 {
	return m * c.PixelsPerMeter
}
