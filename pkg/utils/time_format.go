package utils

import (
	"fmt"
	"time"
)

// FormatTimer 将剩余时间格式化为 "mm:ss:ffff"
//
// ffff 为秒的小数部分（万分之一秒，截断不四舍五入）。
// 负数按 0 处理；超过 59 分钟时分钟位只保留两位（取模 60），与倒计时显示一致。
func FormatTimer(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d/time.Minute) % 60
	seconds := int(d/time.Second) % 60
	fraction := int((d % time.Second) / (100 * time.Microsecond))
	return fmt.Sprintf("%02d:%02d:%04d", minutes, seconds, fraction)
}
