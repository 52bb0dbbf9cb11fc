//go:build !mobile

// stub.go - 非 mobile 构建时的占位文件
//
// 真正的绑定入口在 mobile.go，embed.go 需要 mobile/ui 目录，
// 两者都只在 -tags mobile 时编译，这样 go build ./... 不依赖复制好的资源。
package mobile

// Dummy 与 mobile.go 中的同名函数对应，保证两种构建导出相同的符号
func Dummy() {}
