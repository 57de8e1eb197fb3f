package systems

import (
	"github.com/gonewx/forklift/pkg/components"
	"github.com/gonewx/forklift/pkg/ecs"
	"github.com/gonewx/forklift/pkg/utils"
)

// defaultZoomSpeed 每秒缩放倍数变化量
const defaultZoomSpeed = 4.0

// CameraSystem 管理摄像机缩放
//
// Zoom 输入只修改目标缩放（立即夹紧到 [MinZoom, MaxZoom]），
// 显示缩放每帧匀速趋近目标，避免滚轮缩放时画面跳变。
type CameraSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID
}

// NewCameraSystem 创建摄像机系统和摄像机实体（初始缩放 1）
func NewCameraSystem(em *ecs.EntityManager, minZoom, maxZoom float64) *CameraSystem {
	cs := &CameraSystem{entityManager: em}
	cs.cameraEntity = em.CreateEntity()
	start := utils.Clamp(1, minZoom, maxZoom)
	ecs.AddComponent(em, cs.cameraEntity, &components.CameraComponent{
		Zoom:       start,
		TargetZoom: start,
		ZoomSpeed:  defaultZoomSpeed,
		MinZoom:    minZoom,
		MaxZoom:    maxZoom,
	})
	return cs
}

// Update 显示缩放趋近目标缩放
func (cs *CameraSystem) Update(dt float64) {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok || !cam.IsAnimating() {
		return
	}
	cam.Zoom = utils.MoveTowards(cam.Zoom, cam.TargetZoom, cam.ZoomSpeed*dt)
}

// ZoomBy 目标缩放乘以 factor 后夹紧
func (cs *CameraSystem) ZoomBy(factor float64) {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return
	}
	cam.TargetZoom = utils.Clamp(cam.TargetZoom*factor, cam.MinZoom, cam.MaxZoom)
}

// StopAnimation 立即跳到目标缩放
func (cs *CameraSystem) StopAnimation() {
	if cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity); ok {
		cam.Zoom = cam.TargetZoom
	}
}

// TargetZoom 目标缩放
func (cs *CameraSystem) TargetZoom() float64 {
	if cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity); ok {
		return cam.TargetZoom
	}
	return 1
}

// Zoom 当前显示缩放
func (cs *CameraSystem) Zoom() float64 {
	if cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity); ok {
		return cam.Zoom
	}
	return 1
}

// IsAnimating 显示缩放是否仍在趋近目标
func (cs *CameraSystem) IsAnimating() bool {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	return ok && cam.IsAnimating()
}
