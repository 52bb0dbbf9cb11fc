package manifest

import (
	"fmt"

	"github.com/decker502/rocketui/pkg/config"
)

// MenuSlot 一个菜单槽位：文档路径和文档ID
type MenuSlot struct {
	Role config.MenuRole
	Path string
	ID   string
}

// MenuManifest 菜单清单的解析结果
type MenuManifest struct {
	// Cursor 光标文档路径，没有时为空
	Cursor string
	// Slots 每个必需角色一项，顺序与传入的角色列表一致
	Slots []MenuSlot
	// Documents 需要额外预加载的文档（main 段尾部和 misc 段），按出现顺序
	Documents []string
	// Warnings 可恢复的内容警告，例如被跳过的非 .rml 文档
	Warnings []string
}

// Slot 按角色查找槽位
func (m *MenuManifest) Slot(role config.MenuRole) (MenuSlot, bool) {
	for _, slot := range m.Slots {
		if slot.Role == role {
			return slot, true
		}
	}
	return MenuSlot{}, false
}

// ParseMenu 解析菜单清单
//
// 格式：
//
//	{
//	    cursor ui/cursor.rml
//	    main {
//	        ui/main.rml main
//	        ui/connecting.rml connecting
//	        ...
//	        ui/extra.rml
//	    }
//	    misc {
//	        ui/options.rml
//	    }
//	}
//
// main 段必须按 roles 的顺序为每个角色给出 (路径, ID)，之后到 '}' 之前的 token
// 作为额外文档预加载。misc 段中不以 .rml 结尾的条目产生警告并跳过；
// cursor 后的非 .rml 条目静默跳过。
//
// 参数：
//   - name: 清单文件名，仅用于错误信息
//   - src: 清单内容
//   - roles: 必需的菜单角色（按声明顺序）
//
// 返回：
//   - *MenuManifest: 解析结果
//   - error: *ParseError，缺少花括号、提前结束或缺少槽位时返回
func ParseMenu(name string, src []byte, roles []config.MenuRole) (*MenuManifest, error) {
	p := newParser(name, src)
	m := &MenuManifest{}

	if err := p.expectOpen("menu manifest"); err != nil {
		return nil, err
	}

	haveMain := false
	for closed := false; !closed; {
		tok := p.next()

		switch {
		case tok.IsEOF():
			return nil, p.fail(tok, ErrUnexpectedEOF, "expecting '}' to close menu manifest")

		case tok.Type == TokenRBrace:
			closed = true

		case tok.Type == TokenLBrace:
			// 多余的 '{' 直接忽略

		case tok.Is("cursor"):
			if err := p.parseCursor(m); err != nil {
				return nil, err
			}

		case tok.Is("main"):
			if err := p.parseMain(m, roles); err != nil {
				return nil, err
			}
			haveMain = true

		case tok.Is("misc"):
			if err := p.expectOpen("misc"); err != nil {
				return nil, err
			}
			if err := p.parseDocuments(m, "misc"); err != nil {
				return nil, err
			}
		}
	}

	if !haveMain && len(roles) > 0 {
		return nil, &ParseError{
			File: name,
			Err:  ErrMissingSection,
			Msg:  "no main section, menu slots are undefined",
		}
	}

	return m, nil
}

func (p *parser) parseCursor(m *MenuManifest) error {
	tok := p.next()
	if tok.IsEOF() {
		return p.fail(tok, ErrUnexpectedEOF, "expecting cursor document")
	}
	if tok.IsBrace() {
		p.unread(tok)
		return nil
	}
	if !config.IsMarkupFile(tok.Literal) {
		return nil
	}
	m.Cursor = tok.Literal
	return nil
}

func (p *parser) parseMain(m *MenuManifest, roles []config.MenuRole) error {
	if err := p.expectOpen("main"); err != nil {
		return err
	}

	slots := make([]MenuSlot, 0, len(roles))
	for _, role := range roles {
		path, err := p.slotToken(role, "path to RML menu")
		if err != nil {
			return err
		}
		id, err := p.slotToken(role, "RML document id")
		if err != nil {
			return err
		}
		slots = append(slots, MenuSlot{Role: role, Path: path, ID: id})
	}
	m.Slots = slots

	return p.parseDocuments(m, "main")
}

func (p *parser) slotToken(role config.MenuRole, what string) (string, error) {
	tok := p.next()
	if tok.IsEOF() {
		return "", p.fail(tok, ErrUnexpectedEOF, "expecting %s for menu %q", what, role)
	}
	if tok.IsBrace() {
		return "", p.fail(tok, ErrMissingSlot, "expecting %s for menu %q but found %s", what, role, tok)
	}
	return tok.Literal, nil
}

// parseDocuments 读取文档列表直到 '}'
func (p *parser) parseDocuments(m *MenuManifest, section string) error {
	for {
		tok := p.next()

		if tok.IsEOF() {
			return p.fail(tok, ErrUnexpectedEOF, "expecting '}' to close %s", section)
		}
		if tok.Type == TokenRBrace {
			return nil
		}

		if tok.Type == TokenLBrace || !config.IsMarkupFile(tok.Literal) {
			m.Warnings = append(m.Warnings, fmt.Sprintf("Non-RML file listed in %s (%s, line %d): %s. Skipping.", p.file, section, tok.Line, tok))
			continue
		}

		m.Documents = append(m.Documents, tok.Literal)
	}
}
