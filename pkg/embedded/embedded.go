// Package embedded 保存嵌入的 ui/ 资源
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）或 mobile 包中。
// 本包保存该文件系统，让 app 包可以按 "ui/..." 路径读取菜单和 HUD 清单。
//
// 使用前必须调用 Init() 初始化。
package embedded

import "io/fs"

var uiFS fs.FS

// Init 保存嵌入的文件系统
// 必须在 main() 开始时、app.NewApp 之前调用
func Init(ui fs.FS) {
	uiFS = ui
}

// FS 返回嵌入的文件系统，未初始化时返回 nil
func FS() fs.FS {
	return uiFS
}
