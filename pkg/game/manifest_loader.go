package game

import (
	"errors"
	"fmt"
	"io/fs"
)

// MaxManifestSize 清单文件大小上限（字节），达到 MaxManifestSize-1 即视为过大
const MaxManifestSize = 20000

var (
	// ErrManifestMissing 清单文件不存在或为空
	ErrManifestMissing = errors.New("manifest missing")
	// ErrManifestTooLarge 清单文件超过大小上限
	ErrManifestTooLarge = errors.New("manifest too large")
)

// ReadManifest 读取清单文件内容
// 文件不存在、为空或达到大小上限时返回 ErrManifestMissing / ErrManifestTooLarge
func ReadManifest(fsys fs.FS, path string) ([]byte, error) {
	if fsys == nil {
		return nil, fmt.Errorf("%w: no file system for %s", ErrManifestMissing, path)
	}

	info, err := fs.Stat(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrManifestMissing, path, err)
	}
	if info.Size() >= MaxManifestSize-1 {
		return nil, fmt.Errorf("%w: file %s too long (%d bytes)", ErrManifestTooLarge, path, info.Size())
	}

	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrManifestMissing, path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrManifestMissing, path)
	}
	if len(data) >= MaxManifestSize-1 {
		return nil, fmt.Errorf("%w: file %s too long (%d bytes)", ErrManifestTooLarge, path, len(data))
	}
	return data, nil
}
