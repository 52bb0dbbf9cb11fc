package app

import (
	"log"

	"github.com/decker502/rocketui/pkg/config"
	"github.com/decker502/rocketui/pkg/game"
)

// DefaultTicksPerPhase 模拟连接时每个阶段停留的 tick 数
const DefaultTicksPerPhase = 30

// SimulatedClient 模拟客户端网络层
//
// Connect 之后按固定节奏依次经过 connecting → challenging → connected →
// loading → primed → active；进入 active 时生成一个存活的人类玩家。
// 同时实现 game.ClientStateSource、game.PlayerSource 和 game.KeyCatcher。
type SimulatedClient struct {
	TicksPerPhase int

	phase      game.ConnectionPhase
	connecting bool
	ticks      int
	player     game.PlayerSnapshot
	uiCatcher  bool
}

// NewSimulatedClient 创建处于断开状态的模拟客户端
func NewSimulatedClient() *SimulatedClient {
	return &SimulatedClient{
		TicksPerPhase: DefaultTicksPerPhase,
		phase:         game.ConnDisconnected,
	}
}

// Connect 开始连接，已连接或正在连接时忽略
func (c *SimulatedClient) Connect() {
	if c.connecting || c.phase > game.ConnDisconnected {
		return
	}
	c.connecting = true
	c.ticks = 0
	c.phase = game.ConnConnecting
	log.Printf("[Client] Connecting")
}

// Disconnect 断开连接并清除玩家状态
func (c *SimulatedClient) Disconnect() {
	if c.phase == game.ConnDisconnected {
		return
	}
	c.connecting = false
	c.ticks = 0
	c.phase = game.ConnDisconnected
	c.player = game.PlayerSnapshot{}
	log.Printf("[Client] Disconnected")
}

// Tick 推进一次模拟
func (c *SimulatedClient) Tick() {
	if !c.connecting {
		return
	}

	c.ticks++
	if c.ticks < c.TicksPerPhase {
		return
	}
	c.ticks = 0
	c.phase++
	log.Printf("[Client] Connection phase -> %v", c.phase)

	if c.phase == game.ConnActive {
		c.connecting = false
		c.player = game.PlayerSnapshot{
			Team:   config.TeamHumans,
			Health: 100,
			Weapon: config.WeaponMachinegun,
		}
	}
}

// SetPlayer 替换玩家状态（调试用）
func (c *SimulatedClient) SetPlayer(ps game.PlayerSnapshot) {
	c.player = ps
}

// ConnectionPhase 实现 game.ClientStateSource
func (c *SimulatedClient) ConnectionPhase() game.ConnectionPhase {
	return c.phase
}

// PlayerSnapshot 实现 game.PlayerSource
func (c *SimulatedClient) PlayerSnapshot() game.PlayerSnapshot {
	return c.player
}

// SetUICatcher 实现 game.KeyCatcher
func (c *SimulatedClient) SetUICatcher(enabled bool) {
	c.uiCatcher = enabled
}

// UICatcher 键盘输入当前是否交给 UI
func (c *SimulatedClient) UICatcher() bool {
	return c.uiCatcher
}
