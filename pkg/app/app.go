// Package app 提供 rocket UI 调试程序的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/rocketui/pkg/config"
	"github.com/decker502/rocketui/pkg/embedded"
	"github.com/decker502/rocketui/pkg/game"
	"github.com/decker502/rocketui/pkg/serverlist"
	"github.com/decker502/rocketui/pkg/toolkit"
	"github.com/decker502/rocketui/pkg/utils"
)

// 调试窗口尺寸
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// AppName gdata 存储使用的应用名
const AppName = "rocketui"

// DefaultServerList 未配置主服务器时使用的静态服务器列表
const DefaultServerList = "ui/servers.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// MenuFile 覆盖 rocket_menuFile，为空则使用已保存的值
	MenuFile string
	// HudFile 覆盖 rocket_hudFile，为空则使用已保存的值
	HudFile string
	// MasterURL 主服务器 websocket 地址，为空时使用 ServerList
	MasterURL string
	// ServerList 静态服务器列表（YAML），为空时使用 DefaultServerList
	ServerList string
	// FS 清单所在的文件系统，为 nil 时使用 embedded.FS()
	FS fs.FS
}

// App 是调试程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	rocket  *game.Rocket
	toolkit *toolkit.Recorder
	browser *serverlist.Browser
	client  *SimulatedClient
	cvars   *game.CvarManager
	verbose bool
	status  string
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 或在 cfg.FS 中提供文件系统。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if err := utils.EnsureStorageDir(AppName); err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, cvars will not persist: %v", err)
		gdataManager = nil
	}

	cvars, err := game.NewCvarManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("cvar 管理器初始化失败: %w", err)
	}

	return newApp(cfg, cvars)
}

// newApp 组装各个组件，cvars 由调用方提供
func newApp(cfg Config, cvars *game.CvarManager) (*App, error) {
	fsys := cfg.FS
	if fsys == nil {
		fsys = embedded.FS()
	}
	if fsys == nil {
		return nil, errors.New("no manifest file system, call embedded.Init() first")
	}

	game.RegisterRocketCvars(cvars)
	if cfg.MenuFile != "" {
		if err := cvars.Set(game.CvarRocketMenuFile, cfg.MenuFile); err != nil {
			return nil, err
		}
	}
	if cfg.HudFile != "" {
		if err := cvars.Set(game.CvarRocketHudFile, cfg.HudFile); err != nil {
			return nil, err
		}
	}

	querier, err := newQuerier(cfg, fsys)
	if err != nil {
		return nil, err
	}

	recorder := toolkit.NewRecorder()
	browser := serverlist.NewBrowser(querier, toolkit.QuakeToRML)
	client := NewSimulatedClient()

	rocket := game.NewRocket(game.RocketConfig{
		FS:      fsys,
		Cvars:   cvars,
		Toolkit: recorder,
		Client:  client,
		Servers: browser,
		Players: client,
		Keys:    client,
	})

	if err := rocket.Init(); err != nil {
		browser.Close()
		return nil, fmt.Errorf("菜单加载失败: %w", err)
	}
	// HUD 缺失时菜单仍然可用
	if err := rocket.LoadHuds(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	if err := cvars.Save(); err != nil {
		log.Printf("[App] Warning: failed to save cvars: %v", err)
	}

	return &App{
		rocket:  rocket,
		toolkit: recorder,
		browser: browser,
		client:  client,
		cvars:   cvars,
		verbose: cfg.Verbose,
	}, nil
}

func newQuerier(cfg Config, fsys fs.FS) (serverlist.Querier, error) {
	if cfg.MasterURL != "" {
		log.Printf("[App] Using master server %s", cfg.MasterURL)
		return serverlist.NewMasterClient(cfg.MasterURL), nil
	}

	path := cfg.ServerList
	if path == "" {
		path = DefaultServerList
	}
	q, err := serverlist.LoadStaticServers(fsys, path)
	if err != nil {
		if cfg.ServerList != "" {
			return nil, err
		}
		log.Printf("[App] Warning: %v, server list will be empty", err)
		return serverlist.StaticQuerier{}, nil
	}
	return q, nil
}

// handleKey 处理调试快捷键
//
//	C 连接  D 断开  R/L 刷新互联网/局域网服务器  B 生成服务器信息  H 重新加载 HUD
//	Y 复制 ping 最低的服务器地址
func (a *App) handleKey(key ebiten.Key) {
	switch key {
	case ebiten.KeyC:
		a.client.Connect()
	case ebiten.KeyD:
		a.client.Disconnect()
	case ebiten.KeyR:
		a.toolkit.PushEvent("retrieve_servers " + config.NetSourceGlobal.String())
	case ebiten.KeyL:
		a.toolkit.PushEvent("retrieve_servers " + config.NetSourceLocal.String())
	case ebiten.KeyB:
		a.toolkit.PushEvent("build_server_info")
	case ebiten.KeyH:
		a.toolkit.PushEvent("reload_huds")
	case ebiten.KeyY:
		a.copyBestServer()
	case ebiten.KeyF11:
		if !utils.IsMobile() {
			ebiten.SetFullscreen(!ebiten.IsFullscreen())
		}
	}
}

var debugKeys = []ebiten.Key{
	ebiten.KeyC, ebiten.KeyD, ebiten.KeyR, ebiten.KeyL, ebiten.KeyB, ebiten.KeyH, ebiten.KeyY, ebiten.KeyF11,
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	for _, key := range debugKeys {
		if inpututil.IsKeyJustPressed(key) {
			a.handleKey(key)
		}
	}
	a.tick()
	return nil
}

// tick 推进模拟客户端和 UI 层
func (a *App) tick() {
	a.client.Tick()
	a.rocket.Frame()
}

// Draw 绘制调试叠加层
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 24, B: 32, A: 255})
	a.toolkit.DrawOverlay(screen, a.statusLines()...)
	toolkit.DrawPanel(screen, "servers ("+a.rocket.NetSource().String()+")", a.serverLines(), 420, 16)
}

// serverLines 服务器信息行，名称已是 RML，这里只显示地址等纯文本列
func (a *App) serverLines() []string {
	rows := a.browser.Rows()
	if len(rows) == 0 {
		return []string{"press R or L, then B"}
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%-21s %-10s %5s %4dms", row.Host, row.Map, row.Players, row.Ping))
	}
	return lines
}

func (a *App) statusLines() []string {
	lines := []string{
		fmt.Sprintf("connection: %v  ui: %v  source: %v", a.client.ConnectionPhase(), a.rocket.UiPhase(), a.rocket.NetSource()),
		fmt.Sprintf("servers: %d  rows: %d", len(a.browser.Servers(a.rocket.NetSource())), len(a.browser.Rows())),
		"[C]onnect [D]isconnect [R]efresh [L]ocal [B]uild [H]ud [Y]ank",
	}
	if a.status != "" {
		lines = append(lines, a.status)
	}
	return lines
}

// copyBestServer 把 ping 最低的服务器地址复制到剪贴板
func (a *App) copyBestServer() {
	rows := a.browser.Rows()
	if len(rows) == 0 {
		a.status = "no servers to copy"
		return
	}
	if err := clipboard.WriteAll(rows[0].Host); err != nil {
		log.Printf("[App] Warning: clipboard: %v", err)
		a.status = "clipboard unavailable"
		return
	}
	a.status = "copied " + rows[0].Host
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Close 停止后台查询并保存 cvar
func (a *App) Close() error {
	a.browser.Close()
	return a.cvars.Save()
}

// Rocket 返回 UI 上下文
func (a *App) Rocket() *game.Rocket {
	return a.rocket
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
