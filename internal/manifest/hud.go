package manifest

import (
	"github.com/decker502/rocketui/pkg/config"
)

// HudLayout HUD 清单的解析结果
type HudLayout struct {
	// Units 需要预加载的单元文档
	Units []string
	// Buckets 每个武器的 HUD 单元列表，按 config.Weapon 索引
	Buckets [config.WeaponCount][]string
}

// Bucket 返回指定武器的单元列表，越界返回 nil
func (h *HudLayout) Bucket(w config.Weapon) []string {
	if !w.Valid() {
		return nil
	}
	return h.Buckets[w]
}

// ParseHud 解析 HUD 清单
//
// 每次调用都从空布局开始，因此重复解析不会残留上一次的内容。
// 进入一个分组时先清空该分组拥有的全部桶，再把分组内的 token 原样
// 加入每个桶；units 分组只收集 .rml 文档，其余条目静默跳过。
// 未识别的顶层 token 被忽略。分组未闭合是致命错误。
func ParseHud(name string, src []byte) (*HudLayout, error) {
	p := newParser(name, src)
	layout := &HudLayout{}

	for {
		tok := p.next()
		if tok.IsEOF() {
			return layout, nil
		}

		var err error
		switch {
		case tok.Is("units"):
			err = p.parseUnits(layout)
		case tok.Is("human_hud"):
			err = p.parseHudGroup(layout, "human_hud", config.HumanHudWeapons())
		case tok.Is("alien_hud"):
			err = p.parseHudGroup(layout, "alien_hud", config.AlienHudWeapons())
		case tok.Is("spectator_hud"):
			err = p.parseHudGroup(layout, "spectator_hud", config.SpectatorHudWeapons())
		default:
			if w, ok := config.MatchWeaponHudKeyword(tok.Literal); ok {
				err = p.parseHudGroup(layout, tok.Literal, []config.Weapon{w})
			}
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *parser) parseUnits(layout *HudLayout) error {
	for {
		tok := p.next()
		if tok.IsEOF() {
			return p.fail(tok, ErrUnexpectedEOF, "expected closing } to close off units")
		}
		if tok.Type == TokenRBrace {
			return nil
		}
		if tok.IsBrace() || !config.IsMarkupFile(tok.Literal) {
			continue
		}
		layout.Units = append(layout.Units, tok.Literal)
	}
}

func (p *parser) parseHudGroup(layout *HudLayout, keyword string, weapons []config.Weapon) error {
	for _, w := range weapons {
		layout.Buckets[w] = nil
	}

	for {
		tok := p.next()
		if tok.IsEOF() {
			return p.fail(tok, ErrUnexpectedEOF, "expected closing } to close off %s", keyword)
		}
		if tok.Type == TokenLBrace {
			continue
		}
		if tok.Type == TokenRBrace {
			return nil
		}
		for _, w := range weapons {
			layout.Buckets[w] = append(layout.Buckets[w], tok.Literal)
		}
	}
}
