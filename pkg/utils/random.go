package utils

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Random 游戏内使用的随机数源
// 封装 *rand.Rand，提供单位圆/单位球采样
// 单线程使用（所有调用都在游戏主循环中）
type Random struct {
	r *rand.Rand
}

// NewRandom 创建随机数源
// seed 为 0 时使用当前 Unix 秒作为种子
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().Unix()
	}
	return &Random{r: rand.New(rand.NewSource(seed))}
}

// Float64 返回 [0, 1) 的随机数
func (r *Random) Float64() float64 {
	return r.r.Float64()
}

// Range 返回 [lo, hi) 的随机数
func (r *Random) Range(lo, hi float64) float64 {
	return lo + r.r.Float64()*(hi-lo)
}

// InsideUnitCircle 返回单位圆内（含边界）的随机点
func (r *Random) InsideUnitCircle() (x, y float64) {
	for {
		x = r.Range(-1, 1)
		y = r.Range(-1, 1)
		if x*x+y*y <= 1 {
			return x, y
		}
	}
}

// InsideUnitSphere 返回单位球内（含边界）的随机点
func (r *Random) InsideUnitSphere() mgl64.Vec3 {
	for {
		v := mgl64.Vec3{r.Range(-1, 1), r.Range(-1, 1), r.Range(-1, 1)}
		if v.Dot(v) <= 1 {
			return v
		}
	}
}
