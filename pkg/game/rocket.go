package game

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/decker502/rocketui/internal/manifest"
	"github.com/decker502/rocketui/pkg/config"
)

// Toolkit 外部文档 UI 工具包
// 渲染和布局完全由工具包负责，这里只发出加载和文档动作
type Toolkit interface {
	Init()
	LoadCursor(path string)
	LoadDocument(path string) int
	LoadUnit(name string)
	InitializeHuds(count int)
	ClearHud(bucket int)
	AddUnitToHud(bucket int, name string)
	// DocumentAction 对文档执行动作，verb 为 open / show / close / blurall
	DocumentAction(id, verb string)
	GetElementTag() string
	GetAttribute(name string) string
	QuakeToRML(in string) string
	// GetEvent 取出一条 UI 产生的命令，队列为空时返回 false
	GetEvent() (string, bool)
}

// ClientStateSource 提供当前连接阶段
type ClientStateSource interface {
	ConnectionPhase() ConnectionPhase
}

// ServerBrowser 服务器列表相关的网络层操作
type ServerBrowser interface {
	// UpdateVisiblePings 推进指定来源的服务器查询，返回 false 表示没有后续工作
	UpdateVisiblePings(src config.NetSource) bool
	BuildServerInfo()
	// CleanUpServerList 清理临时服务器列表，filter 为空时清理全部来源
	CleanUpServerList(filter string)
}

// PlayerSource 提供预测的本地玩家状态
type PlayerSource interface {
	PlayerSnapshot() PlayerSnapshot
}

// KeyCatcher 控制键盘输入是否交给 UI
type KeyCatcher interface {
	SetUICatcher(enabled bool)
}

// RocketConfig 创建 Rocket 所需的协作者
// Players 和 Keys 可以为 nil
type RocketConfig struct {
	FS      fs.FS
	Cvars   *CvarManager
	Toolkit Toolkit
	Client  ClientStateSource
	Servers ServerBrowser
	Players PlayerSource
	Keys    KeyCatcher
	// Roles 菜单清单必须提供的角色，为空时使用 config.DefaultMenuRoles()
	Roles []config.MenuRole
}

// Rocket 持有 UI 层的全部可变状态：菜单槽位、HUD 布局和阶段跟踪
// 只在客户端更新线程上使用
type Rocket struct {
	fsys    fs.FS
	cvars   *CvarManager
	toolkit Toolkit
	client  ClientStateSource
	servers ServerBrowser
	players PlayerSource
	keys    KeyCatcher
	roles   []config.MenuRole

	menus map[config.MenuRole]manifest.MenuSlot
	hud   *manifest.HudLayout

	uiPhase      UiPhase
	oldUiPhase   UiPhase
	oldConnPhase ConnectionPhase
	netSource    config.NetSource

	commands map[string]Command
}

// NewRocket 创建 UI 上下文并注册内置命令
func NewRocket(cfg RocketConfig) *Rocket {
	roles := cfg.Roles
	if len(roles) == 0 {
		roles = config.DefaultMenuRoles()
	}

	r := &Rocket{
		fsys:         cfg.FS,
		cvars:        cfg.Cvars,
		toolkit:      cfg.Toolkit,
		client:       cfg.Client,
		servers:      cfg.Servers,
		players:      cfg.Players,
		keys:         cfg.Keys,
		roles:        roles,
		menus:        make(map[config.MenuRole]manifest.MenuSlot),
		oldConnPhase: ConnUninitialized,
		netSource:    config.NetSourceGlobal,
		commands:     make(map[string]Command),
	}
	if r.cvars == nil {
		r.cvars, _ = NewCvarManager(nil)
	}
	r.registerBuiltinCommands()
	return r
}

// Init 初始化工具包并加载菜单清单
//
// 读取或解析失败时返回错误且不会向工具包发出任何加载调用。
// 成功后打开主菜单文档。
func (r *Rocket) Init() error {
	r.oldConnPhase = ConnUninitialized
	r.oldUiPhase = UiIdle
	r.uiPhase = UiIdle

	r.toolkit.Init()
	RegisterRocketCvars(r.cvars)

	path := r.cvars.VariableString(CvarRocketMenuFile)
	data, err := ReadManifest(r.fsys, path)
	if err != nil {
		return fmt.Errorf("unable to load %s, no rocket menus loaded: %w", path, err)
	}

	menu, err := manifest.ParseMenu(path, data, r.roles)
	if err != nil {
		return err
	}
	for _, warning := range menu.Warnings {
		log.Printf("[Rocket] Warning: %s", warning)
	}

	if menu.Cursor != "" {
		r.toolkit.LoadCursor(menu.Cursor)
	}

	r.menus = make(map[config.MenuRole]manifest.MenuSlot, len(menu.Slots))
	for _, slot := range menu.Slots {
		r.toolkit.LoadDocument(slot.Path)
		r.menus[slot.Role] = slot
	}
	for _, doc := range menu.Documents {
		r.toolkit.LoadDocument(doc)
	}

	log.Printf("[Rocket] Loaded %d menus and %d extra documents from %s", len(menu.Slots), len(menu.Documents), path)

	r.documentAction(config.MenuMain, "open")
	if r.keys != nil {
		r.keys.SetUICatcher(true)
	}
	return nil
}

// LoadHuds 加载 HUD 清单并重建全部 HUD 桶
func (r *Rocket) LoadHuds() error {
	path := r.cvars.VariableString(CvarRocketHudFile)
	data, err := ReadManifest(r.fsys, path)
	if err != nil {
		return fmt.Errorf("unable to load huds from %s: %w", path, err)
	}

	layout, err := manifest.ParseHud(path, data)
	if err != nil {
		return err
	}

	r.toolkit.InitializeHuds(int(config.WeaponCount))
	for _, unit := range layout.Units {
		r.toolkit.LoadUnit(unit)
	}
	for w := config.WeaponNone; w < config.WeaponCount; w++ {
		r.toolkit.ClearHud(int(w))
		for _, unit := range layout.Buckets[w] {
			r.toolkit.AddUnitToHud(int(w), unit)
		}
	}
	r.hud = layout

	log.Printf("[Rocket] Loaded %d HUD units from %s", len(layout.Units), path)
	return nil
}

// Frame 每个 tick 调用一次：跟随连接阶段更新 UI 阶段，执行进入动作，
// 然后处理 UI 事件队列
func (r *Rocket) Frame() {
	if conn := r.client.ConnectionPhase(); conn != r.oldConnPhase {
		r.uiPhase = NextUiPhase(r.uiPhase, conn)
		r.oldConnPhase = conn
	}

	if r.oldUiPhase != r.uiPhase {
		r.enterUiPhase()
		r.oldUiPhase = r.uiPhase
	} else if r.uiPhase == UiRetrievingServers {
		r.pollServers()
	}

	r.ProcessEvents()
}

func (r *Rocket) enterUiPhase() {
	log.Printf("[Rocket] UI phase %v -> %v", r.oldUiPhase, r.uiPhase)

	switch r.uiPhase {
	case UiRetrievingServers:
		r.pollServers()

	case UiBuildingServerInfo:
		r.servers.BuildServerInfo()

	case UiConnecting:
		r.toolkit.DocumentAction("", "blurall")
		r.documentAction(config.MenuConnecting, "show")
		// 进入 connecting 后总是继续执行 loading 的动作
		fallthrough

	case UiLoading:
		r.servers.CleanUpServerList("")
		r.toolkit.DocumentAction("", "blurall")
		r.documentAction(config.MenuLoading, "show")

	case UiPlaying:
		r.documentAction(config.MenuConnecting, "blurall")
	}
}

// pollServers 推进服务器查询，没有后续工作时回到 idle
func (r *Rocket) pollServers() {
	if !r.servers.UpdateVisiblePings(r.netSource) {
		r.uiPhase = UiIdle
	}
}

// documentAction 对某个菜单角色的文档执行动作，槽位未加载时忽略
func (r *Rocket) documentAction(role config.MenuRole, verb string) {
	slot, ok := r.menus[role]
	if !ok {
		log.Printf("[Rocket] Warning: no %v menu loaded, skipping %s", role, verb)
		return
	}
	r.toolkit.DocumentAction(slot.ID, verb)
}

// RetrieveServers 开始刷新指定来源的服务器列表
func (r *Rocket) RetrieveServers(src config.NetSource) {
	r.netSource = src
	r.uiPhase = UiRetrievingServers
}

// BuildServerInfo 请求重建服务器信息文档
// 已经处于该阶段时直接重建
func (r *Rocket) BuildServerInfo() {
	if r.uiPhase == UiBuildingServerInfo && r.oldUiPhase == UiBuildingServerInfo {
		r.servers.BuildServerInfo()
		return
	}
	r.uiPhase = UiBuildingServerInfo
}

// IsCommandAllowed 按当前 UI 阶段和玩家状态判断某类元素是否可用
func (r *Rocket) IsCommandAllowed(category config.ElementCategory) bool {
	var ps PlayerSnapshot
	if r.players != nil {
		ps = r.players.PlayerSnapshot()
	}
	return IsElementAllowed(category, r.uiPhase, ps)
}

// UiPhase 返回当前 UI 阶段
func (r *Rocket) UiPhase() UiPhase {
	return r.uiPhase
}

// NetSource 返回当前服务器列表来源
func (r *Rocket) NetSource() config.NetSource {
	return r.netSource
}

// Menu 返回某个角色的菜单槽位
func (r *Rocket) Menu(role config.MenuRole) (manifest.MenuSlot, bool) {
	slot, ok := r.menus[role]
	return slot, ok
}

// Hud 返回最近一次加载的 HUD 布局，未加载时为 nil
func (r *Rocket) Hud() *manifest.HudLayout {
	return r.hud
}

// GetTag 当前事件元素的标签名
func (r *Rocket) GetTag() string {
	return r.toolkit.GetElementTag()
}

// GetAttribute 当前事件元素的属性值
func (r *Rocket) GetAttribute(name string) string {
	return r.toolkit.GetAttribute(name)
}

// QuakeToRML 把带颜色码的文本转换为 RML
func (r *Rocket) QuakeToRML(in string) string {
	return r.toolkit.QuakeToRML(in)
}
