//go:build mobile

package utils

// IsMobile ebitenmobile 构建（-tags mobile）恒为 true
func IsMobile() bool { return true }
