package components

import "image/color"

// BallComponent 彩色球
// Color 在生成时设置一次，之后不再修改
type BallComponent struct {
	Color color.RGBA
	Index int // 生成序号，与颜色表下标一致
}
