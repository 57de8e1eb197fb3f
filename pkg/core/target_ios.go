//go:build ios

package core

// Target 目标平台
const Target = "ios"
