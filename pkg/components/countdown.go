package components

import "time"

// CountdownComponent 关卡倒计时
type CountdownComponent struct {
	Remaining time.Duration
	Finished  bool // 倒计时循环已退出（超时或目标达成）
	Expired   bool // 因超时退出
}
