package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/rocketui/pkg/app"
	"github.com/decker502/rocketui/pkg/embedded"
)

var (
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	menuFile  = flag.String("menu", "", "菜单清单路径（覆盖 rocket_menuFile）")
	hudFile   = flag.String("hud", "", "HUD 清单路径（覆盖 rocket_hudFile）")
	masterURL = flag.String("master", "", "主服务器 websocket 地址，例如 ws://localhost:8080/ws")
	servers   = flag.String("servers", "", "静态服务器列表（YAML），默认 ui/servers.yaml")
)

func main() {
	flag.Parse()

	embedded.Init(uiFS)

	rocketApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		MenuFile:   *menuFile,
		HudFile:    *hudFile,
		MasterURL:  *masterURL,
		ServerList: *servers,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(app.ScreenWidth, app.ScreenHeight)
	ebiten.SetWindowTitle("Rocket UI")

	runErr := ebiten.RunGame(rocketApp)

	// 退出时保存 cvar
	if err := rocketApp.Close(); err != nil {
		log.Printf("保存 cvar 失败: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
