//go:build release

package core

// Mode 构建模式
const Mode = "release"
