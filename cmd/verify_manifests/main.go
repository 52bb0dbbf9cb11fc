// verify_manifests - 菜单和 HUD 清单验证程序
// 解析清单并逐项报告槽位、额外文档和 HUD 桶，任何一项失败时以状态码 1 退出
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/decker502/rocketui/internal/manifest"
	"github.com/decker502/rocketui/pkg/config"
	"github.com/decker502/rocketui/pkg/game"
)

var (
	root     = flag.String("root", ".", "清单路径的根目录")
	menuFile = flag.String("menu", game.DefaultMenuFile, "菜单清单")
	hudFile  = flag.String("hud", game.DefaultHudFile, "HUD 清单")
	docs     = flag.Bool("docs", false, "同时检查引用的 .rml 文档是否存在")
)

// ========== 验证报告 ==========

type ValidationReport struct {
	TestName string
	Passed   bool
	Message  string
}

var validationReports []ValidationReport

func addReport(testName string, passed bool, message string) {
	validationReports = append(validationReports, ValidationReport{
		TestName: testName,
		Passed:   passed,
		Message:  message,
	})
	status := "✗ FAIL"
	if passed {
		status = "✓ PASS"
	}
	log.Printf("%s | %-30s | %s", status, testName, message)
}

func checkDocument(fsys fs.FS, what, path string) {
	if !*docs {
		return
	}
	_, err := fs.Stat(fsys, path)
	addReport(what, err == nil, path)
}

func verifyMenu(fsys fs.FS) {
	data, err := game.ReadManifest(fsys, *menuFile)
	if err != nil {
		addReport("menu manifest", false, err.Error())
		return
	}

	menu, err := manifest.ParseMenu(*menuFile, data, config.DefaultMenuRoles())
	if err != nil {
		addReport("menu manifest", false, err.Error())
		return
	}
	addReport("menu manifest", true, fmt.Sprintf("%d slots, %d extra documents", len(menu.Slots), len(menu.Documents)))

	for _, w := range menu.Warnings {
		log.Printf("  warning: %s", w)
	}
	if menu.Cursor != "" {
		checkDocument(fsys, "cursor", menu.Cursor)
	}
	for _, slot := range menu.Slots {
		addReport("menu "+slot.Role.String(), slot.ID != "", fmt.Sprintf("%s (id %q)", slot.Path, slot.ID))
		checkDocument(fsys, "document "+slot.Role.String(), slot.Path)
	}
	for _, doc := range menu.Documents {
		checkDocument(fsys, "extra document", doc)
	}
}

func verifyHud(fsys fs.FS) {
	data, err := game.ReadManifest(fsys, *hudFile)
	if err != nil {
		addReport("hud manifest", false, err.Error())
		return
	}

	layout, err := manifest.ParseHud(*hudFile, data)
	if err != nil {
		addReport("hud manifest", false, err.Error())
		return
	}
	addReport("hud manifest", true, fmt.Sprintf("%d units", len(layout.Units)))

	for _, unit := range layout.Units {
		checkDocument(fsys, "unit", unit)
	}

	empty := 0
	for w := config.WeaponNone; w < config.WeaponCount; w++ {
		bucket := layout.Bucket(w)
		if len(bucket) == 0 {
			empty++
		}
		log.Printf("  %-12s %v", w, bucket)
	}
	addReport("hud buckets", empty == 0, fmt.Sprintf("%d of %d buckets empty", empty, config.WeaponCount))
}

func main() {
	flag.Parse()
	log.SetFlags(0)

	fsys := os.DirFS(*root)
	verifyMenu(fsys)
	verifyHud(fsys)

	failed := 0
	for _, r := range validationReports {
		if !r.Passed {
			failed++
		}
	}
	log.Printf("%d checks, %d failed", len(validationReports), failed)
	if failed > 0 {
		os.Exit(1)
	}
}
