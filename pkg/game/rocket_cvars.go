package game

// rocket 相关的控制台变量名
const (
	CvarRocketHudFile  = "rocket_hudFile"
	CvarRocketMenuFile = "rocket_menuFile"
)

// 清单默认路径
const (
	DefaultHudFile  = "ui/rockethud.txt"
	DefaultMenuFile = "ui/rocket.txt"
)

var rocketCvarTable = []CvarDef{
	{Name: CvarRocketHudFile, Default: DefaultHudFile, Flags: CvarArchive},
	{Name: CvarRocketMenuFile, Default: DefaultMenuFile, Flags: CvarArchive},
}

// RegisterRocketCvars 注册菜单清单和 HUD 清单路径变量
func RegisterRocketCvars(cm *CvarManager) {
	cm.RegisterTable(rocketCvarTable)
}
