//go:build !android

package utils

// EnsureStorageDir 桌面和 iOS 上设置目录由 gdata 自动创建，无需处理
func EnsureStorageDir() error { return nil }
