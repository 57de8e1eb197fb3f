//go:build darwin && !ios

package core

// Target 目标平台
const Target = "macos"
