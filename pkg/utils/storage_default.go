//go:build !android

package utils

// EnsureStorageDir 非 Android 平台无需处理，gdata 会自动创建存储目录
func EnsureStorageDir(appName string) error {
	return nil
}

// GetStoragePath 非 Android 平台返回空字符串，由 gdata 决定位置
func GetStoragePath(appName string) string {
	return ""
}
