package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 配置校验失败
// 所有校验错误都包装此错误，调用者可使用 errors.Is 判断
var ErrInvalidConfig = errors.New("invalid level config")

// LevelConfig 关卡配置数据结构
// 定义了场地、计分区域、彩球、叉车调校和倒计时
type LevelConfig struct {
	ID              string  `yaml:"id"`              // 关卡ID，如 "main"
	Name            string  `yaml:"name"`            // 关卡名称
	DurationSeconds float64 `yaml:"durationSeconds"` // 完成关卡的总秒数，默认 60
	Seed            int64   `yaml:"seed"`            // 随机种子，0 表示使用当前时间

	Palette   []string       `yaml:"palette"`   // 颜色表（"#rrggbb"），按下标分配给彩球和区域
	Balls     BallConfig     `yaml:"balls"`     // 彩球配置
	SpawnArea AreaConfig     `yaml:"spawnArea"` // 彩球生成区域
	Arena     AreaConfig     `yaml:"arena"`     // 场地边界
	Zones     []ZoneConfig   `yaml:"zones"`     // 计分区域列表，数量必须等于彩球数
	Vehicle   VehicleConfig  `yaml:"vehicle"`   // 叉车配置
	Carry     CarryConfig    `yaml:"carry"`     // 抓取配置
	Physics   PhysicsConfig  `yaml:"physics"`   // 物理参数
	Camera    CameraConfig   `yaml:"camera"`    // 俯视摄像机
	Messages  MessagesConfig `yaml:"messages"`  // 结算文本
}

// PositionConfig 三维坐标配置
type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Vec3 转换为 mgl64.Vec3
func (p PositionConfig) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

// BallConfig 彩球配置
type BallConfig struct {
	Count            int     `yaml:"count"`            // 彩球数量，默认 4
	Radius           float64 `yaml:"radius"`           // 半径（米），即包围盒半尺寸，默认 0.35
	Mass             float64 `yaml:"mass"`             // 质量，默认 1
	SpawnTolerance   float64 `yaml:"spawnTolerance"`   // 彩球之间的最小间距（米）
	MaxSpawnAttempts int     `yaml:"maxSpawnAttempts"` // 单个彩球的最大采样次数，默认 10000
}

// AreaConfig 矩形区域（中心 + 半尺寸）
type AreaConfig struct {
	Center  PositionConfig `yaml:"center"`
	Extents PositionConfig `yaml:"extents"` // 半尺寸
}

// ZoneConfig 计分区域配置
type ZoneConfig struct {
	Center  PositionConfig `yaml:"center"`
	Extents PositionConfig `yaml:"extents"` // 触发盒半尺寸
}

// VehicleConfig 叉车配置
type VehicleConfig struct {
	Start            PositionConfig `yaml:"start"`            // 初始位置
	HeadingDeg       float64        `yaml:"headingDeg"`       // 初始航向（度）
	WheelBase        float64        `yaml:"wheelBase"`        // 轴距偏移，默认 1.6
	MaxSteerAngleDeg float64        `yaml:"maxSteerAngleDeg"` // 最大转向角（度），默认 35
	SteerResponse    float64        `yaml:"steerResponse"`    // 转向响应（弧度/秒），默认 6
	MaxForwardSpeed  float64        `yaml:"maxForwardSpeed"`  // 默认 6
	MaxReverseSpeed  float64        `yaml:"maxReverseSpeed"`  // 默认 3
	Accel            float64        `yaml:"accel"`            // 默认 8
	BrakeAccel       float64        `yaml:"brakeAccel"`       // 默认 14
	Drag             float64        `yaml:"drag"`             // 默认 0.2
	BodyRadius       float64        `yaml:"bodyRadius"`       // 车身碰撞半径，默认 0.9
	FrontOffset      float64        `yaml:"frontOffset"`      // 车头距中心距离，默认 1.0
	Mass             float64        `yaml:"mass"`             // 默认 50
}

// CarryConfig 抓取配置
type CarryConfig struct {
	HoldingOffset   PositionConfig `yaml:"holdingOffset"`   // 持物锚点相对车辆的偏移（车辆局部坐标）
	PickupRange     float64        `yaml:"pickupRange"`     // 拾取射线长度，默认 1.2
	PickupForce     float64        `yaml:"pickupForce"`     // 归位力强度，默认 150
	LockThreshold   float64        `yaml:"lockThreshold"`   // 锁定距离，默认 0.1
	HeldDamping     float64        `yaml:"heldDamping"`     // 持有阻尼，默认 10
	ReleasedDamping float64        `yaml:"releasedDamping"` // 释放后阻尼，默认 1
}

// PhysicsConfig 物理参数
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`        // 重力加速度（负数向下），默认 -9.81
	Restitution    float64 `yaml:"restitution"`    // 碰撞恢复系数，默认 0.3
	GroundFriction float64 `yaml:"groundFriction"` // 地面滚动摩擦（1/秒），默认 0.6
}

// CameraConfig 俯视摄像机配置
type CameraConfig struct {
	PixelsPerMeter float64 `yaml:"pixelsPerMeter"` // 默认 28
	MinZoom        float64 `yaml:"minZoom"`        // 缩放下限倍数，默认 0.5
	MaxZoom        float64 `yaml:"maxZoom"`        // 缩放上限倍数，默认 2
}

// MessagesConfig 结算文本
type MessagesConfig struct {
	Win  string `yaml:"win"`
	Lose string `yaml:"lose"`
}

// LoadLevelConfig 从YAML文件加载关卡配置
// 参数：
//
//	filepath - 关卡配置文件的路径（相对或绝对路径）
//
// 返回：
//
//	*LevelConfig - 解析后的关卡配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadLevelConfig(filepath string) (*LevelConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", filepath, err)
	}

	levelConfig, err := ParseLevelConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return levelConfig, nil
}

// ParseLevelConfig 从内存中的 YAML 数据解析关卡配置（用于嵌入资源）
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	var levelConfig LevelConfig
	if err := yaml.Unmarshal(data, &levelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML: %w", err)
	}

	// 应用默认值（旧配置文件可正常加载）
	applyDefaults(&levelConfig)

	if err := validateLevelConfig(&levelConfig); err != nil {
		return nil, err
	}

	return &levelConfig, nil
}

// applyDefaults 为 LevelConfig 中缺失的可选字段设置默认值
func applyDefaults(config *LevelConfig) {
	if config.DurationSeconds == 0 {
		config.DurationSeconds = 60
	}

	b := &config.Balls
	if b.Count == 0 {
		b.Count = 4
	}
	if b.Radius == 0 {
		b.Radius = 0.35
	}
	if b.Mass == 0 {
		b.Mass = 1
	}
	if b.MaxSpawnAttempts == 0 {
		b.MaxSpawnAttempts = 10000
	}

	v := &config.Vehicle
	setDefault(&v.WheelBase, 1.6)
	setDefault(&v.MaxSteerAngleDeg, 35)
	setDefault(&v.SteerResponse, 6)
	setDefault(&v.MaxForwardSpeed, 6)
	setDefault(&v.MaxReverseSpeed, 3)
	setDefault(&v.Accel, 8)
	setDefault(&v.BrakeAccel, 14)
	setDefault(&v.Drag, 0.2)
	setDefault(&v.BodyRadius, 0.9)
	setDefault(&v.FrontOffset, 1.0)
	setDefault(&v.Mass, 50)

	c := &config.Carry
	setDefault(&c.PickupRange, 1.2)
	setDefault(&c.PickupForce, 150)
	setDefault(&c.LockThreshold, 0.1)
	setDefault(&c.HeldDamping, 10)
	setDefault(&c.ReleasedDamping, 1)
	if c.HoldingOffset == (PositionConfig{}) {
		c.HoldingOffset = PositionConfig{X: 0, Y: 0.5, Z: 1.6}
	}

	p := &config.Physics
	setDefault(&p.Gravity, -9.81)
	setDefault(&p.Restitution, 0.3)
	setDefault(&p.GroundFriction, 0.6)

	cam := &config.Camera
	setDefault(&cam.PixelsPerMeter, 28)
	setDefault(&cam.MinZoom, 0.5)
	setDefault(&cam.MaxZoom, 2)

	if config.Messages.Win == "" {
		config.Messages.Win = "You Win!\n(press ESCAPE)"
	}
	if config.Messages.Lose == "" {
		config.Messages.Lose = "You lose!\n(press ESCAPE)"
	}
}

func setDefault(field *float64, value float64) {
	if *field == 0 {
		*field = value
	}
}

// validateLevelConfig 验证关卡配置的完整性和合法性
func validateLevelConfig(config *LevelConfig) error {
	if config.ID == "" {
		return fmt.Errorf("%w: level ID is required", ErrInvalidConfig)
	}
	if config.DurationSeconds < 0 {
		return fmt.Errorf("%w: durationSeconds must be >= 0, got %v", ErrInvalidConfig, config.DurationSeconds)
	}

	n := config.Balls.Count
	if n < 0 {
		return fmt.Errorf("%w: balls.count must be >= 0, got %d", ErrInvalidConfig, n)
	}
	if config.Balls.Radius <= 0 {
		return fmt.Errorf("%w: balls.radius must be positive", ErrInvalidConfig)
	}
	if config.Balls.SpawnTolerance < 0 {
		return fmt.Errorf("%w: balls.spawnTolerance must be >= 0", ErrInvalidConfig)
	}
	if config.Balls.MaxSpawnAttempts < 0 {
		return fmt.Errorf("%w: balls.maxSpawnAttempts must be >= 0", ErrInvalidConfig)
	}

	// 颜色表解析和唯一性检查（区域颜色必须一一对应）
	seen := make(map[color.RGBA]int, len(config.Palette))
	for i, hex := range config.Palette {
		c, err := ParseHexColor(hex)
		if err != nil {
			return fmt.Errorf("%w: palette[%d]: %v", ErrInvalidConfig, i, err)
		}
		if j, dup := seen[c]; dup {
			return fmt.Errorf("%w: palette[%d] duplicates palette[%d] (%s)", ErrInvalidConfig, i, j, hex)
		}
		seen[c] = i
	}

	ext := config.SpawnArea.Extents
	if ext.X <= 0 || ext.Z <= 0 {
		return fmt.Errorf("%w: spawnArea.extents x/z must be positive", ErrInvalidConfig)
	}
	arena := config.Arena.Extents
	if arena.X <= 0 || arena.Z <= 0 {
		return fmt.Errorf("%w: arena.extents x/z must be positive", ErrInvalidConfig)
	}

	for i, z := range config.Zones {
		if z.Extents.X <= 0 || z.Extents.Y <= 0 || z.Extents.Z <= 0 {
			return fmt.Errorf("%w: zones[%d].extents must be positive", ErrInvalidConfig, i)
		}
	}

	v := config.Vehicle
	if v.WheelBase < 0 {
		return fmt.Errorf("%w: vehicle.wheelBase must be >= 0", ErrInvalidConfig)
	}
	if v.MaxSteerAngleDeg < 0 || v.MaxSteerAngleDeg >= 90 {
		return fmt.Errorf("%w: vehicle.maxSteerAngleDeg must be in [0, 90), got %v", ErrInvalidConfig, v.MaxSteerAngleDeg)
	}
	if v.MaxForwardSpeed < 0 || v.MaxReverseSpeed < 0 {
		return fmt.Errorf("%w: vehicle max speeds must be >= 0", ErrInvalidConfig)
	}
	if v.Accel < 0 || v.BrakeAccel < 0 || v.Drag < 0 || v.SteerResponse < 0 {
		return fmt.Errorf("%w: vehicle rates must be >= 0", ErrInvalidConfig)
	}

	if config.Camera.MinZoom > config.Camera.MaxZoom {
		return fmt.Errorf("%w: camera.minZoom > camera.maxZoom", ErrInvalidConfig)
	}

	return nil
}

// CheckCounts 检查彩球数、区域数、颜色数是否一致
//
// 计数不一致不是解析错误：关卡仍可加载，但初始化会记录错误并提前返回
// （与场景中缺少区域时的处理一致）。
func (c *LevelConfig) CheckCounts() error {
	n := c.Balls.Count
	if len(c.Zones) != n {
		return fmt.Errorf("%w: expected %d zones, got %d", ErrInvalidConfig, n, len(c.Zones))
	}
	if len(c.Palette) != n {
		return fmt.Errorf("%w: expected %d colors, got %d", ErrInvalidConfig, n, len(c.Palette))
	}
	return nil
}

// Colors 返回解析后的颜色表（校验已保证可以解析）
func (c *LevelConfig) Colors() []color.RGBA {
	colors := make([]color.RGBA, 0, len(c.Palette))
	for _, hex := range c.Palette {
		col, err := ParseHexColor(hex)
		if err != nil {
			continue
		}
		colors = append(colors, col)
	}
	return colors
}

// MaxSteerAngleRad 最大转向角（弧度）
func (v VehicleConfig) MaxSteerAngleRad() float64 {
	return v.MaxSteerAngleDeg * math.Pi / 180
}

// HeadingRad 初始航向（弧度）
func (v VehicleConfig) HeadingRad() float64 {
	return v.HeadingDeg * math.Pi / 180
}

// Duration 倒计时总时长
func (c *LevelConfig) Duration() time.Duration {
	return time.Duration(c.DurationSeconds * float64(time.Second))
}
