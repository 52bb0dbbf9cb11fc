// Package serverlist 实现服务器浏览器
//
// Browser 在后台向 Querier 查询服务器列表，每帧由 UI 层非阻塞地推进；
// MasterClient 通过 websocket 向主服务器请求列表，StaticQuerier 从 YAML 文件读取固定列表。
package serverlist

import (
	"context"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/decker502/rocketui/pkg/config"
)

// Server 一台游戏服务器的信息
type Server struct {
	Host       string `json:"host" yaml:"host"`
	Name       string `json:"name" yaml:"name"`
	Map        string `json:"map" yaml:"map"`
	Players    int    `json:"players" yaml:"players"`
	MaxPlayers int    `json:"maxPlayers" yaml:"maxPlayers"`
	Ping       int    `json:"ping" yaml:"ping"`
}

// Row 服务器列表中的一行，Name 已经转换为 RML
type Row struct {
	Host    string
	Name    string
	Map     string
	Players string
	Ping    int
}

// Querier 查询某个来源的服务器列表
type Querier interface {
	Query(ctx context.Context, src config.NetSource) ([]Server, error)
}

// StaticQuerier 固定的服务器列表，按来源名称分组
type StaticQuerier map[string][]Server

// Query 返回 src 对应的列表副本，未配置的来源返回空列表
func (q StaticQuerier) Query(ctx context.Context, src config.NetSource) ([]Server, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]Server(nil), q[src.String()]...), nil
}

// LoadStaticServers 从 YAML 文件加载固定服务器列表
//
// 文件格式：
//
//	local:
//	  - host: 127.0.0.1:27960
//	    name: "^2Local"
//	internet:
//	  - ...
func LoadStaticServers(fsys fs.FS, path string) (StaticQuerier, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read server list %s: %w", path, err)
	}

	q := StaticQuerier{}
	if err := yaml.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("failed to parse server list %s: %w", path, err)
	}
	return q, nil
}
