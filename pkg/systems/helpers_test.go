package systems

import (
	"image/color"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/forklift/pkg/components"
	"github.com/gonewx/forklift/pkg/config"
	"github.com/gonewx/forklift/pkg/ecs"
	"github.com/gonewx/forklift/pkg/entities"
)

// 测试用的颜色表
var testPalette = []color.RGBA{
	{R: 0xe6, G: 0x39, B: 0x46, A: 0xff},
	{R: 0x2a, G: 0x9d, B: 0x8f, A: 0xff},
	{R: 0xf4, G: 0xa2, B: 0x61, A: 0xff},
	{R: 0x45, G: 0x7b, B: 0x9d, A: 0xff},
}

// testVehicleConfig 与默认关卡一致的叉车参数
func testVehicleConfig() config.VehicleConfig {
	return config.VehicleConfig{
		WheelBase:        1.6,
		MaxSteerAngleDeg: 35,
		SteerResponse:    6,
		MaxForwardSpeed:  6,
		MaxReverseSpeed:  3,
		Accel:            8,
		BrakeAccel:       14,
		Drag:             0.2,
		BodyRadius:       0.9,
		FrontOffset:      1.0,
		Mass:             50,
	}
}

func testCarryConfig() config.CarryConfig {
	return config.CarryConfig{
		HoldingOffset:   config.PositionConfig{Y: 0.5, Z: 1.6},
		PickupRange:     1.2,
		PickupForce:     150,
		LockThreshold:   0.1,
		HeldDamping:     10,
		ReleasedDamping: 1,
	}
}

// createTestVehicle 在原点创建朝向 +Z 的叉车
func createTestVehicle(em *ecs.EntityManager) (ecs.EntityID, ecs.EntityID) {
	vehicleID, anchorID, err := entities.NewVehicleEntity(em, testVehicleConfig(), testCarryConfig())
	if err != nil {
		panic(err)
	}
	return vehicleID, anchorID
}

// createTestBall 在指定位置创建彩球
func createTestBall(em *ecs.EntityManager, pos mgl64.Vec3, c color.RGBA) ecs.EntityID {
	id, err := entities.NewBallEntity(em, entities.BallSpec{
		Position: pos,
		Color:    c,
		Radius:   0.35,
		Mass:     1,
		Damping:  1,
	})
	if err != nil {
		panic(err)
	}
	return id
}

// createTestZone 创建计分区域
func createTestZone(em *ecs.EntityManager, index int, center mgl64.Vec3, c color.RGBA) ecs.EntityID {
	id, err := entities.NewZoneEntity(em, index, config.ZoneConfig{
		Center:  config.PositionConfig{X: center.X(), Y: center.Y(), Z: center.Z()},
		Extents: config.PositionConfig{X: 1.5, Y: 1, Z: 1.5},
	}, c)
	if err != nil {
		panic(err)
	}
	return id
}

// fakeScoreSink 记录计分事件
type fakeScoreSink struct {
	scored []ecs.EntityID
}

func (f *fakeScoreSink) OnZoneScored(zone, ball ecs.EntityID) {
	f.scored = append(f.scored, zone)
}

// fakeCountdownListener 记录倒计时事件
type fakeCountdownListener struct {
	goal    bool
	updates []time.Duration
	expired int
}

func (f *fakeCountdownListener) GoalAchieved() bool { return f.goal }

func (f *fakeCountdownListener) OnTimerUpdated(remaining time.Duration) {
	f.updates = append(f.updates, remaining)
}

func (f *fakeCountdownListener) OnTimerExpired() { f.expired++ }

// fakeRaycaster 返回固定结果
type fakeRaycaster struct {
	hit   RaycastHit
	found bool
	calls int
}

func (f *fakeRaycaster) Raycast(origin, direction mgl64.Vec3, maxDistance float64, mask components.Layer) (RaycastHit, bool) {
	f.calls++
	return f.hit, f.found
}
