// Package level 组装一局游戏：实体、系统、比赛协调者和输入回调
//
// Level 实现 game.Lifecycle，不依赖任何渲染后端；
// Ebitengine 场景、终端前端和无头校验程序都通过它驱动同一套逻辑。
package level

import (
	"fmt"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/forklift/pkg/components"
	"github.com/gonewx/forklift/pkg/config"
	"github.com/gonewx/forklift/pkg/ecs"
	"github.com/gonewx/forklift/pkg/entities"
	"github.com/gonewx/forklift/pkg/game"
	"github.com/gonewx/forklift/pkg/systems"
	"github.com/gonewx/forklift/pkg/utils"
)

// zoomStep 每单位 Zoom 输入的缩放倍数
const zoomStep = 1.1

// Deps 由宿主注入的依赖
type Deps struct {
	Actions   *game.ActionMap     // 输入动作表（Move / Zoom / Grab / Continue）
	UI        game.UISink         // 界面
	Loader    game.SceneLoader    // 场景切换
	Observers []game.MatchObserver // 音效、事件日志等
	Seed      int64               // 非 0 时覆盖关卡配置中的种子
}

type actionBinding struct {
	action *game.Action
	id     game.ListenerID
}

// Level 一局游戏
type Level struct {
	cfg  *config.LevelConfig
	deps Deps

	entityManager *ecs.EntityManager
	rng           *utils.Random

	vehicleSystem *systems.VehicleSystem
	anchorSystem  *systems.AnchorSystem
	carrySystem   *systems.CarrySystem
	physicsSystem *systems.PhysicsSystem
	triggerSystem *systems.TriggerSystem
	scoringSystem *systems.ZoneScoringSystem
	countdown     *systems.CountdownSystem
	cameraSystem  *systems.CameraSystem
	lifetime      *systems.LifetimeSystem

	match *game.MatchController

	vehicleID ecs.EntityID
	anchorID  ecs.EntityID
	zones     []ecs.EntityID
	balls     []ecs.EntityID

	bindings []actionBinding
}

// New 创建关卡（尚未初始化，需调用 OnInit）
func New(cfg *config.LevelConfig, deps Deps) *Level {
	return &Level{cfg: cfg, deps: deps}
}

// OnInit 创建实体、系统和输入回调
//
// 配置不完整（区域/颜色数量不对、缺少输入动作）时记录错误并提前返回，
// 关卡保持部分初始化状态：之后的 tick 不会崩溃，只是缺失的部分不工作。
func (l *Level) OnInit() error {
	if l.cfg == nil {
		log.Printf("[Level] ERROR: no level config")
		return fmt.Errorf("%w: nil level config", config.ErrInvalidConfig)
	}

	l.entityManager = ecs.NewEntityManager()
	seed := l.cfg.Seed
	if l.deps.Seed != 0 {
		seed = l.deps.Seed
	}
	l.rng = utils.NewRandom(seed)

	l.physicsSystem = systems.NewPhysicsSystem(l.entityManager, l.cfg.Physics)
	l.vehicleSystem = systems.NewVehicleSystem(l.entityManager)
	l.anchorSystem = systems.NewAnchorSystem(l.entityManager)
	l.carrySystem = systems.NewCarrySystem(l.entityManager, l.physicsSystem)
	l.triggerSystem = systems.NewTriggerSystem(l.entityManager)
	l.cameraSystem = systems.NewCameraSystem(l.entityManager, l.cfg.Camera.MinZoom, l.cfg.Camera.MaxZoom)
	l.lifetime = systems.NewLifetimeSystem(l.entityManager)

	entities.NewArenaEntity(l.entityManager, l.cfg.Arena)

	if err := l.cfg.CheckCounts(); err != nil {
		log.Printf("[Level] ERROR: %v", err)
		return err
	}

	colors := l.cfg.Colors()
	for i, zc := range l.cfg.Zones {
		id, err := entities.NewZoneEntity(l.entityManager, i, zc, colors[i])
		if err != nil {
			log.Printf("[Level] ERROR: zone %d: %v", i, err)
			return err
		}
		l.zones = append(l.zones, id)
	}

	l.match = game.NewMatchController(game.MatchConfig{
		Total:         l.cfg.Balls.Count,
		UI:            l.deps.UI,
		Actions:       l.deps.Actions,
		Loader:        l.deps.Loader,
		ContinueScene: config.SceneMainMenu,
		WinMessage:    l.cfg.Messages.Win,
		LoseMessage:   l.cfg.Messages.Lose,
	})
	for _, o := range l.deps.Observers {
		l.match.AddObserver(o)
	}
	l.match.Start()

	l.scoringSystem = systems.NewZoneScoringSystem(l.entityManager, l)
	l.triggerSystem.OnTriggerEnter(l.scoringSystem.HandleTriggerEnter)

	vehicleID, anchorID, err := entities.NewVehicleEntity(l.entityManager, l.cfg.Vehicle, l.cfg.Carry)
	if err != nil {
		log.Printf("[Level] ERROR: vehicle: %v", err)
		return err
	}
	l.vehicleID, l.anchorID = vehicleID, anchorID

	if err := l.bindActions(); err != nil {
		log.Printf("[Level] ERROR: %v", err)
		return err
	}

	l.spawnBalls()
	l.countdown = systems.NewCountdownSystem(l.entityManager, l.cfg.Duration(), l.match)

	log.Printf("[Level] 关卡 %s 初始化完成: %d 个球, %d 个区域, %v", l.cfg.ID, len(l.balls), len(l.zones), l.cfg.Duration())
	return nil
}

func (l *Level) spawnBalls() {
	balls, err := systems.SpawnBalls(l.entityManager, l.rng, systems.SpawnParams{
		Count:       l.cfg.Balls.Count,
		Colors:      l.cfg.Colors(),
		AreaCenter:  l.cfg.SpawnArea.Center.Vec3(),
		AreaExtents: l.cfg.SpawnArea.Extents.Vec3(),
		BallRadius:  l.cfg.Balls.Radius,
		BallMass:    l.cfg.Balls.Mass,
		Damping:     l.cfg.Carry.ReleasedDamping,
		Tolerance:   l.cfg.Balls.SpawnTolerance,
		MaxAttempts: l.cfg.Balls.MaxSpawnAttempts,
	})
	if err != nil {
		log.Printf("[Level] ERROR: spawn: %v", err)
	}
	l.balls = balls
}

// bindActions 注册 Move / Zoom / Grab 回调并启用这些动作
func (l *Level) bindActions() error {
	move := l.deps.Actions.FindAction(config.ActionMove)
	zoom := l.deps.Actions.FindAction(config.ActionZoom)
	grab := l.deps.Actions.FindAction(config.ActionGrab)
	if move == nil {
		return fmt.Errorf("no %s action", config.ActionMove)
	}
	if zoom == nil {
		return fmt.Errorf("no %s action", config.ActionZoom)
	}
	if grab == nil {
		return fmt.Errorf("no %s action", config.ActionGrab)
	}

	l.listen(zoom, zoom.OnPerformed(l.onZoom))
	l.listen(move, move.OnPerformed(l.onMove))
	l.listen(move, move.OnCanceled(l.onMove))
	l.listen(grab, grab.OnPerformed(func(game.ActionContext) {
		l.carrySystem.ToggleGrab(l.vehicleID)
	}))

	zoom.Enable()
	move.Enable()
	grab.Enable()
	return nil
}

func (l *Level) listen(a *game.Action, id game.ListenerID) {
	l.bindings = append(l.bindings, actionBinding{action: a, id: id})
}

func (l *Level) onMove(ctx game.ActionContext) {
	input, ok := ecs.GetComponent[*components.DriveInputComponent](l.entityManager, l.vehicleID)
	if !ok {
		return
	}
	input.Steer = ctx.Value.X()
	input.Throttle = ctx.Value.Y()
}

func (l *Level) onZoom(ctx game.ActionContext) {
	l.cameraSystem.ZoomBy(math.Pow(zoomStep, ctx.Value.Y()))
}

// OnZoneScored 在区域中心放一个得分脉冲，再转交比赛协调者计分
func (l *Level) OnZoneScored(zone, ball ecs.EntityID) {
	if _, err := entities.NewScorePulseEntity(l.entityManager, zone); err != nil {
		log.Printf("[Level] Warning: score pulse: %v", err)
	}
	l.match.OnZoneScored(zone, ball)
}

// OnFixedTick 固定步长：车辆 → 锚点 → 抓取 → 物理 → 触发器（计分）
func (l *Level) OnFixedTick(dt float64) {
	if l.entityManager == nil {
		return
	}
	l.vehicleSystem.Update(dt)
	l.anchorSystem.Update(dt)
	l.carrySystem.Update(dt)
	l.physicsSystem.Update(dt)
	l.triggerSystem.Update(dt)
}

// OnFrameTick 渲染帧：倒计时、摄像机缩放、短暂特效
func (l *Level) OnFrameTick(dt float64) {
	if l.entityManager == nil {
		return
	}
	if l.countdown != nil {
		l.countdown.Update(dt)
	}
	l.cameraSystem.Update(dt)
	l.lifetime.Update(dt)
	l.entityManager.RemoveMarkedEntities()
}

// OnTeardown 移除输入回调，禁用动作
func (l *Level) OnTeardown() {
	for _, b := range l.bindings {
		b.action.RemoveListener(b.id)
		b.action.Disable()
	}
	l.bindings = nil

	if l.match != nil {
		l.match.Teardown()
	}
	log.Printf("[Level] 关卡已拆除")
}

// EntityManager 实体管理器（渲染用）
func (l *Level) EntityManager() *ecs.EntityManager { return l.entityManager }

// Config 关卡配置
func (l *Level) Config() *config.LevelConfig { return l.cfg }

// Match 比赛协调者，初始化失败时为 nil
func (l *Level) Match() *game.MatchController { return l.match }

// VehicleID 叉车实体
func (l *Level) VehicleID() ecs.EntityID { return l.vehicleID }

// AnchorID 持物锚点实体
func (l *Level) AnchorID() ecs.EntityID { return l.anchorID }

// Balls 已生成的彩球
func (l *Level) Balls() []ecs.EntityID { return l.balls }

// Zones 计分区域
func (l *Level) Zones() []ecs.EntityID { return l.zones }

// Zoom 目标缩放倍数（已夹紧）
func (l *Level) Zoom() float64 {
	if l.cameraSystem == nil {
		return 1
	}
	return l.cameraSystem.TargetZoom()
}

// DisplayZoom 当前显示的缩放倍数（平滑趋近 Zoom）
func (l *Level) DisplayZoom() float64 {
	if l.cameraSystem == nil {
		return 1
	}
	return l.cameraSystem.Zoom()
}

// Physics 物理系统（调试绘制射线用）
func (l *Level) Physics() *systems.PhysicsSystem { return l.physicsSystem }

// CameraFocus 摄像机焦点（场地中心）
func (l *Level) CameraFocus() mgl64.Vec3 { return l.cfg.Arena.Center.Vec3() }
