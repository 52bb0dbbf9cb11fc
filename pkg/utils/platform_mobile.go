//go:build mobile

package utils

// IsMobile 移动端构建总是返回 true，全屏切换等桌面快捷键据此关闭
func IsMobile() bool {
	return true
}
