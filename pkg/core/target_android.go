//go:build android

package core

// Target 目标平台
const Target = "android"
