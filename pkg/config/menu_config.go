package config

import "strings"

// MenuRole 菜单槽位角色
// 菜单清单的 main 段必须按此顺序为每个必需角色提供 (路径, 文档ID)
type MenuRole int

const (
	// MenuMain 主菜单，初始化完成后打开
	MenuMain MenuRole = iota
	// MenuConnecting 连接服务器时显示
	MenuConnecting
	// MenuLoading 加载地图时显示
	MenuLoading
	MenuTeamSelect
	MenuHumanSpawn
	MenuAlienSpawn
	MenuAlienBuild
	MenuHumanBuild
	MenuArmouryBuy

	// MenuRoleCount 角色总数
	MenuRoleCount
)

var menuRoleNames = [MenuRoleCount]string{
	MenuMain:       "main",
	MenuConnecting: "connecting",
	MenuLoading:    "loading",
	MenuTeamSelect: "teamselect",
	MenuHumanSpawn: "humanspawn",
	MenuAlienSpawn: "alienspawn",
	MenuAlienBuild: "alienbuild",
	MenuHumanBuild: "humanbuild",
	MenuArmouryBuy: "armourybuy",
}

func (r MenuRole) String() string {
	if r < 0 || r >= MenuRoleCount {
		return "unknown"
	}
	return menuRoleNames[r]
}

// MenuRoleByName 按名称查找角色（不区分大小写）
func MenuRoleByName(name string) (MenuRole, bool) {
	for r := MenuMain; r < MenuRoleCount; r++ {
		if strings.EqualFold(menuRoleNames[r], name) {
			return r, true
		}
	}
	return MenuMain, false
}

// DefaultMenuRoles 返回客户端默认要求的全部菜单角色（声明顺序）
func DefaultMenuRoles() []MenuRole {
	roles := make([]MenuRole, 0, MenuRoleCount)
	for r := MenuMain; r < MenuRoleCount; r++ {
		roles = append(roles, r)
	}
	return roles
}

// MarkupExtension 工具包标记文档的扩展名
const MarkupExtension = ".rml"

// IsMarkupFile 判断路径是否以 .rml 结尾（不区分大小写）
func IsMarkupFile(path string) bool {
	if len(path) < len(MarkupExtension) {
		return false
	}
	return strings.EqualFold(path[len(path)-len(MarkupExtension):], MarkupExtension)
}
