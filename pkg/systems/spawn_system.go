package systems

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/forklift/pkg/components"
	"github.com/gonewx/forklift/pkg/ecs"
	"github.com/gonewx/forklift/pkg/entities"
	"github.com/gonewx/forklift/pkg/utils"
)

// ErrSpawnAttemptsExhausted 采样次数用尽仍无法放下彩球（间距相对区域过大）
var ErrSpawnAttemptsExhausted = errors.New("spawn attempts exhausted")

// SpawnParams 彩球生成参数
type SpawnParams struct {
	Count       int
	Colors      []color.RGBA // 按下标分配，长度必须 >= Count
	AreaCenter  mgl64.Vec3
	AreaExtents mgl64.Vec3 // 生成区域半尺寸
	BallRadius  float64
	BallMass    float64
	Damping     float64
	Tolerance   float64 // 彩球之间的最小间距
	MaxAttempts int     // 单个彩球的最大采样次数，<= 0 表示不限
}

// PlaceBallPositions 拒绝采样生成 n 个彩球位置
//
// 在单位圆内随机取点，按区域半尺寸（X/Z）缩放，放在 height 高度。
// 拒绝圆心（退化点）以及与已放置点距离 <= tolerance 的点。
// 返回的位置相对于区域中心。
//
// 返回:
//   - []mgl64.Vec3: 已放置的位置（出错时为已成功的部分）
//   - error: 某个彩球超过 maxAttempts 次仍未找到合法位置时返回 ErrSpawnAttemptsExhausted
func PlaceBallPositions(rng *utils.Random, n int, extents mgl64.Vec3, height, tolerance float64, maxAttempts int) ([]mgl64.Vec3, error) {
	placed := make([]mgl64.Vec3, 0, n)

	for len(placed) < n {
		pos, ok := samplePosition(rng, placed, extents, height, tolerance, maxAttempts)
		if !ok {
			return placed, fmt.Errorf("%w: placed %d of %d balls after %d attempts (tolerance %.2f)",
				ErrSpawnAttemptsExhausted, len(placed), n, maxAttempts, tolerance)
		}
		placed = append(placed, pos)
	}
	return placed, nil
}

func samplePosition(rng *utils.Random, placed []mgl64.Vec3, extents mgl64.Vec3, height, tolerance float64, maxAttempts int) (mgl64.Vec3, bool) {
	for attempt := 0; maxAttempts <= 0 || attempt < maxAttempts; attempt++ {
		x, z := rng.InsideUnitCircle()
		if x == 0 && z == 0 {
			continue
		}
		pos := mgl64.Vec3{x * extents.X(), height, z * extents.Z()}

		valid := true
		for _, p := range placed {
			if p.Sub(pos).Len() <= tolerance {
				valid = false
				break
			}
		}
		if valid {
			return pos, true
		}
	}
	return mgl64.Vec3{}, false
}

// SpawnBalls 在生成区域内放置彩球，分配颜色并施加随机冲量
//
// 冲量方向 = cross(单位球内随机向量, 区域半尺寸)，给每个球一点初始散开。
// 采样失败时已生成的球保留在场景中，并返回错误。
func SpawnBalls(em *ecs.EntityManager, rng *utils.Random, p SpawnParams) ([]ecs.EntityID, error) {
	if len(p.Colors) < p.Count {
		return nil, fmt.Errorf("need %d colors, got %d", p.Count, len(p.Colors))
	}

	// 球心离地两倍半径，落地后由物理系统处理
	height := p.BallRadius * 2
	positions, placeErr := PlaceBallPositions(rng, p.Count, p.AreaExtents, height, p.Tolerance, p.MaxAttempts)

	balls := make([]ecs.EntityID, 0, len(positions))
	for i, local := range positions {
		id, err := entities.NewBallEntity(em, entities.BallSpec{
			Index:    i,
			Position: p.AreaCenter.Add(local),
			Color:    p.Colors[i],
			Radius:   p.BallRadius,
			Mass:     p.BallMass,
			Damping:  p.Damping,
		})
		if err != nil {
			return balls, fmt.Errorf("failed to create ball %d: %w", i, err)
		}

		if rb, ok := ecs.GetComponent[*components.RigidBodyComponent](em, id); ok {
			impulse := rng.InsideUnitSphere().Cross(p.AreaExtents)
			rb.AddForce(impulse, components.ForceModeImpulse)
		}
		balls = append(balls, id)
	}

	log.Printf("[SpawnSystem] 生成 %d/%d 个彩球", len(balls), p.Count)
	return balls, placeErr
}
