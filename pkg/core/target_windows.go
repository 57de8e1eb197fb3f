//go:build windows

package core

// Target 目标平台
const Target = "windows"
