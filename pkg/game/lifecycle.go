package game

// Lifecycle 与具体引擎无关的阶段接口
//
// 宿主（Ebitengine 场景、终端前端、无头测试）按以下顺序驱动：
//
//	OnInit → 每帧 { 输入 → OnFixedTick × N → OnFrameTick } → OnTeardown
//
// 固定步长回调每帧可能执行零次或多次，但与帧回调严格串行。
type Lifecycle interface {
	OnInit() error
	OnFixedTick(dt float64)
	OnFrameTick(dt float64)
	OnTeardown()
}

// FixedStepClock 固定步长累加器
// 把可变的帧时间切分为若干个固定步长
type FixedStepClock struct {
	Step        float64 // 固定步长（秒）
	MaxSteps    int     // 单帧最多执行的步数，<= 0 表示不限
	accumulator float64
}

// NewFixedStepClock 创建固定步长累加器
func NewFixedStepClock(step float64, maxSteps int) *FixedStepClock {
	return &FixedStepClock{Step: step, MaxSteps: maxSteps}
}

// Advance 累加帧时间，返回本帧应执行的固定步数
// 超过 MaxSteps 的部分被丢弃（卡顿后不追帧）
func (c *FixedStepClock) Advance(frameDelta float64) int {
	if c.Step <= 0 || frameDelta <= 0 {
		return 0
	}
	c.accumulator += frameDelta

	steps := 0
	for c.accumulator >= c.Step {
		c.accumulator -= c.Step
		steps++
		if c.MaxSteps > 0 && steps >= c.MaxSteps {
			c.accumulator = 0
			break
		}
	}
	return steps
}

// Alpha 当前累加器相对一个步长的比例（渲染插值用）
func (c *FixedStepClock) Alpha() float64 {
	if c.Step <= 0 {
		return 0
	}
	return c.accumulator / c.Step
}

// RunFrame 用累加器驱动一帧：固定步长回调若干次，然后帧回调一次
func RunFrame(l Lifecycle, clock *FixedStepClock, frameDelta float64) {
	for i, n := 0, clock.Advance(frameDelta); i < n; i++ {
		l.OnFixedTick(clock.Step)
	}
	l.OnFrameTick(frameDelta)
}
