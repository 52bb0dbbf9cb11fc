package serverlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"github.com/decker502/rocketui/pkg/config"
)

// 主服务器协议消息类型
const (
	MsgGetServers = "getservers"
	MsgServers    = "servers"
	MsgError      = "error"
)

// ErrMasterRejected 主服务器返回了 error 消息
var ErrMasterRejected = errors.New("master server rejected request")

// Msg websocket 消息信封
type Msg struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// GetServersRequest getservers 请求的负载
type GetServersRequest struct {
	Source string `json:"source"`
}

// MasterClient 通过 websocket 向主服务器查询列表，每次查询单独建立连接
type MasterClient struct {
	URL    string
	Dialer websocket.Dialer
}

// NewMasterClient 创建主服务器客户端
func NewMasterClient(url string) *MasterClient {
	return &MasterClient{
		URL: url,
		Dialer: websocket.Dialer{
			HandshakeTimeout: 5 * time.Second,
		},
	}
}

// Query 发送 getservers 请求并等待 servers 应答，忽略其他类型的消息
func (c *MasterClient) Query(ctx context.Context, src config.NetSource) ([]Server, error) {
	conn, _, err := c.Dialer.DialContext(ctx, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial master %s: %w", c.URL, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
	}
	// ctx 结束时关闭连接以打断阻塞的读取
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	req := struct {
		Type string            `json:"type"`
		Data GetServersRequest `json:"data"`
	}{Type: MsgGetServers, Data: GetServersRequest{Source: src.String()}}
	if err := conn.WriteJSON(req); err != nil {
		return nil, fmt.Errorf("failed to send getservers: %w", err)
	}

	for {
		var m Msg
		if err := conn.ReadJSON(&m); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("failed to read master reply: %w", err)
		}

		switch m.Type {
		case MsgServers:
			var servers []Server
			if err := json.Unmarshal(m.Data, &servers); err != nil {
				return nil, fmt.Errorf("invalid servers payload: %w", err)
			}
			return servers, nil
		case MsgError:
			var reason string
			_ = json.Unmarshal(m.Data, &reason)
			return nil, fmt.Errorf("%w: %s", ErrMasterRejected, reason)
		default:
			log.Printf("[ServerList] ignoring master message %q", m.Type)
		}
	}
}
