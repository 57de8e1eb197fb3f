//go:build !release

package core

// Mode 构建模式，-tags release 时为 "release"
const Mode = "debug"
