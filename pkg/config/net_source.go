package config

import "strings"

// NetSource 服务器列表来源
type NetSource int

const (
	NetSourceLocal NetSource = iota
	NetSourceGlobal
	NetSourceFavorites
)

// StringToNetSource 解析来源名称，未知名称一律视为互联网（global）
func StringToNetSource(src string) NetSource {
	switch {
	case strings.EqualFold(src, "local"):
		return NetSourceLocal
	case strings.EqualFold(src, "favorites"):
		return NetSourceFavorites
	default:
		return NetSourceGlobal
	}
}

// String 返回来源名称，global 显示为 "internet"
func (s NetSource) String() string {
	switch s {
	case NetSourceLocal:
		return "local"
	case NetSourceFavorites:
		return "favorites"
	default:
		return "internet"
	}
}
