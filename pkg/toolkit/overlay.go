package toolkit

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// panelLineHeight basicfont.Face7x13 的行高
const panelLineHeight = 15

var (
	panelFace  = text.NewGoXFace(basicfont.Face7x13)
	panelTitle = color.RGBA{R: 255, G: 200, B: 80, A: 255}
	panelText  = color.RGBA{R: 220, G: 220, B: 220, A: 255}
)

// OverlayLines 生成调试叠加层的文本行
func (r *Recorder) OverlayLines() []string {
	lines := []string{
		fmt.Sprintf("cursor: %s", valueOrDash(r.cursor)),
		fmt.Sprintf("documents: %d  units: %d  huds: %d", len(r.documents), len(r.units), len(r.huds)),
		fmt.Sprintf("visible: %s", valueOrDash(strings.Join(r.VisibleDocuments(), ", "))),
		fmt.Sprintf("focused: %s", valueOrDash(r.focused)),
	}

	start := len(r.actions) - 5
	if start < 0 {
		start = 0
	}
	for _, a := range r.actions[start:] {
		lines = append(lines, fmt.Sprintf("  %s %s", a.Verb, valueOrDash(a.ID)))
	}
	return lines
}

// DrawOverlay 在屏幕左上角绘制 header 和工具包状态
func (r *Recorder) DrawOverlay(screen *ebiten.Image, header ...string) {
	lines := append(append([]string(nil), header...), r.OverlayLines()...)
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), 8, 8)
}

// DrawPanel 在 (x, y) 处绘制带标题的文本面板
func DrawPanel(screen *ebiten.Image, title string, lines []string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(panelTitle)
	text.Draw(screen, title, panelFace, op)

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y+float64(i+1)*panelLineHeight)
		op.ColorScale.ScaleWithColor(panelText)
		text.Draw(screen, line, panelFace, op)
	}
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
