//go:build !android && !ios && !darwin && !windows

package core

// Target 目标平台
const Target = "native"
