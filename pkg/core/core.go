// Package core 构建标识与 add 示例入口
//
// 库名由目标平台、构建模式和版本号组成：core_<target>_<mode>_<version>，
// 例如 core_native_debug_0-1-0-00078。wasm 构建固定使用 "__Internal"。
package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Add 返回两数之和
func Add(left, right int) int {
	return left + right
}

// LibName 当前构建的库名
func LibName() string {
	if internalLib {
		return "__Internal"
	}
	return FormatLibName(Target, Mode, Version)
}

// FormatLibName 按 core_<target>_<mode>_<version> 拼接库名
func FormatLibName(target, mode, version string) string {
	return fmt.Sprintf("core_%s_%s_%s", target, mode, version)
}

// VersionInfo 拆分后的版本号
// Base 为 "major-minor-patch"，Build 为五位构建号
type VersionInfo struct {
	Base  string
	Build int
}

// String 格式化为 "<major>-<minor>-<patch>-<build:05d>"
func (v VersionInfo) String() string {
	return fmt.Sprintf("%s-%05d", v.Base, v.Build)
}

// ParseVersion 解析 "0-1-0-00078" 形式的版本号
func ParseVersion(s string) (VersionInfo, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 4 {
		return VersionInfo{}, fmt.Errorf("invalid version format: %q", s)
	}
	for _, p := range parts[:3] {
		if _, err := strconv.Atoi(p); err != nil {
			return VersionInfo{}, fmt.Errorf("invalid version format: %q", s)
		}
	}
	if len(parts[3]) != 5 {
		return VersionInfo{}, fmt.Errorf("invalid build number in %q", s)
	}
	build, err := strconv.Atoi(parts[3])
	if err != nil {
		return VersionInfo{}, fmt.Errorf("invalid build number in %q: %w", s, err)
	}
	return VersionInfo{Base: strings.Join(parts[:3], "-"), Build: build}, nil
}

// MovePlayer 二维输入驱动的平面速度插值
//
// 有输入时：以输入方向（X → X，Y → Z）为起点向当前速度插值，系数 moveSpeed·dt；
// 无输入时：当前速度向 0 插值，系数 decelerationSpeed·dt。
func MovePlayer(forceDir mgl64.Vec3, moveSpeed, decelerationSpeed float64, current mgl64.Vec3, dt float64) mgl64.Vec3 {
	if forceDir != (mgl64.Vec3{}) {
		v := mgl64.Vec3{forceDir.X(), 0, forceDir.Y()}
		return lerp(v, current, moveSpeed*dt)
	}
	return lerp(current, mgl64.Vec3{}, decelerationSpeed*dt)
}

func lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
