package utils

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// JustPressedPointer 本帧新按下的指针位置（屏幕坐标）
// 触摸优先于鼠标左键；移动端和桌面端的菜单共用同一套点击逻辑
func JustPressedPointer() (mgl64.Vec2, bool) {
	if touches := inpututil.AppendJustPressedTouchIDs(nil); len(touches) > 0 {
		x, y := ebiten.TouchPosition(touches[0])
		return mgl64.Vec2{float64(x), float64(y)}, true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return mgl64.Vec2{float64(x), float64(y)}, true
	}
	return mgl64.Vec2{}, false
}
