package toolkit

import "strings"

// quakeColors ^0 - ^9 对应的 RML 颜色
var quakeColors = [10]string{
	"#000000", // 0 black
	"#ff0000", // 1 red
	"#00ff00", // 2 green
	"#ffff00", // 3 yellow
	"#0000ff", // 4 blue
	"#00ffff", // 5 cyan
	"#ff00ff", // 6 magenta
	"#ffffff", // 7 white
	"#ff8000", // 8 orange
	"#808080", // 9 grey
}

// QuakeToRML 把带 ^N 颜色码的文本转换为 RML 片段
//
// 颜色码变成 <span style="color: ...">，"^^" 表示字面量 '^'，
// '<'、'>'、'&' 被转义，换行转换为 <br />。
func QuakeToRML(in string) string {
	var b strings.Builder
	open := false

	for i := 0; i < len(in); i++ {
		ch := in[i]

		if ch == '^' && i+1 < len(in) {
			next := in[i+1]
			if next == '^' {
				b.WriteByte('^')
				i++
				continue
			}
			if next >= '0' && next <= '9' {
				if open {
					b.WriteString("</span>")
				}
				b.WriteString(`<span style="color: `)
				b.WriteString(quakeColors[next-'0'])
				b.WriteString(`">`)
				open = true
				i++
				continue
			}
		}

		switch ch {
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '&':
			b.WriteString("&amp;")
		case '\n':
			b.WriteString("<br />")
		default:
			b.WriteByte(ch)
		}
	}

	if open {
		b.WriteString("</span>")
	}
	return b.String()
}
