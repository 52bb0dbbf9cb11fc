package config

import "strings"

// Team 玩家所属队伍
type Team int

const (
	TeamNone Team = iota
	TeamAliens
	TeamHumans
)

func (t Team) String() string {
	switch t {
	case TeamAliens:
		return "aliens"
	case TeamHumans:
		return "humans"
	default:
		return "none"
	}
}

// ElementCategory UI 元素/命令的显示门控类别
type ElementCategory int

const (
	// ElementAll 任何时候都允许
	ElementAll ElementCategory = iota
	// ElementLoading 仅加载阶段
	ElementLoading
	// ElementGame 仅游戏进行中
	ElementGame
	// ElementAliens 存活的外星人玩家
	ElementAliens
	// ElementHumans 存活的人类玩家
	ElementHumans
	// ElementBoth 任意队伍的存活玩家
	ElementBoth
	// ElementDead 已死亡、等待重生的玩家
	ElementDead
)

var elementCategoryNames = map[ElementCategory]string{
	ElementAll:     "all",
	ElementLoading: "loading",
	ElementGame:    "game",
	ElementAliens:  "aliens",
	ElementHumans:  "humans",
	ElementBoth:    "both",
	ElementDead:    "dead",
}

func (c ElementCategory) String() string {
	if name, ok := elementCategoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseElementCategory 解析类别名称（不区分大小写）
func ParseElementCategory(name string) (ElementCategory, bool) {
	for c, n := range elementCategoryNames {
		if strings.EqualFold(n, name) {
			return c, true
		}
	}
	return ElementAll, false
}
