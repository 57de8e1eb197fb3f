//go:build !mobile

// 桌面构建时本包只有这个文件；真正的移动端入口在 mobile.go，
// 仅在 -tags mobile 时编译。
package mobile

// Dummy 空导出函数，让包在桌面构建时也能被引用
func Dummy() {}
