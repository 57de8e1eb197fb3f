package components

// CameraComponent 摄像机缩放状态
//
// Zoom 是当前显示的缩放倍数，按 ZoomSpeed 平滑趋近 TargetZoom。
type CameraComponent struct {
	Zoom       float64
	TargetZoom float64

	// ZoomSpeed 每秒缩放倍数变化量
	ZoomSpeed float64

	MinZoom float64
	MaxZoom float64
}

// IsAnimating 是否仍在趋近目标
func (c *CameraComponent) IsAnimating() bool {
	return c.Zoom != c.TargetZoom
}
