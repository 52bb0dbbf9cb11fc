//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 确保 Android 上 cvar 存储目录存在并可写
//
// gdata 在 Android 上把数据放在 /data/data/{package}/ 下，但不会预先创建
// 应用子目录。必须在 gdata.Open 之前调用。
//
// 参数：
//   - appName: gdata.Config 中的 AppName
//
// 返回：
//   - error: 无法识别包名、创建目录失败或目录不可写时返回
func EnsureStorageDir(appName string) error {
	dir := GetStoragePath(appName)
	if dir == "" {
		return fmt.Errorf("failed to detect Android package for %s", appName)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("storage directory %s is not writable: %w", dir, err)
	}
	os.Remove(probe)

	return nil
}

// detectAndroidPackage 从 /proc/self/cmdline 读取应用包名
func detectAndroidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}

	pkg := make([]byte, 0, len(data))
	for _, ch := range data {
		if ch == 0 || ch == '\n' {
			continue
		}
		pkg = append(pkg, ch)
	}
	if len(pkg) == 0 {
		return "", fmt.Errorf("got empty output from /proc/self/cmdline")
	}
	return string(pkg), nil
}

// GetStoragePath 返回 Android 上的存储目录，无法识别包名时返回空字符串
func GetStoragePath(appName string) string {
	pkg, err := detectAndroidPackage()
	if err != nil {
		return ""
	}
	return filepath.Join("/data/data", pkg, appName)
}
