package game

import "github.com/decker502/rocketui/pkg/config"

// PlayerSnapshot 门控判断所需的玩家状态
type PlayerSnapshot struct {
	Team   config.Team
	Health int
	Weapon config.Weapon
}

// alive 存活且手持武器
func (ps PlayerSnapshot) alive() bool {
	return ps.Health > 0 && ps.Weapon != config.WeaponNone
}

// IsElementAllowed 判断某类 UI 元素在当前状态下是否可以显示
// 纯函数，每帧可多次调用
func IsElementAllowed(category config.ElementCategory, phase UiPhase, ps PlayerSnapshot) bool {
	switch category {
	case config.ElementAll:
		return true
	case config.ElementLoading:
		return phase == UiLoading
	case config.ElementGame:
		return phase == UiPlaying
	case config.ElementAliens:
		return ps.Team == config.TeamAliens && ps.alive()
	case config.ElementHumans:
		return ps.Team == config.TeamHumans && ps.alive()
	case config.ElementBoth:
		return ps.Team != config.TeamNone && ps.alive()
	case config.ElementDead:
		return ps.Team != config.TeamNone && ps.Health == 0 && ps.Weapon == config.WeaponNone
	}
	return false
}
