package config

import "strings"

// Weapon 武器/职业编号
// 顺序与游戏逻辑侧的武器表保持一致，HUD 桶按此编号索引
type Weapon int

const (
	WeaponNone Weapon = iota

	// 外星人形态
	WeaponAlienLevel0
	WeaponAlienLevel1
	WeaponAlienLevel2
	WeaponAlienLevel2Upg
	WeaponAlienLevel3
	WeaponAlienLevel3Upg
	WeaponAlienLevel4

	// 人类武器
	WeaponBlaster
	WeaponMachinegun
	WeaponPainSaw
	WeaponShotgun
	WeaponLasGun
	WeaponMassDriver
	WeaponChaingun
	WeaponFlamer
	WeaponPulseRifle
	WeaponLuciferCannon

	// 其他（手雷、建筑炮塔等）
	WeaponGrenade
	WeaponLockblobLauncher
	WeaponHive
	WeaponTeslaGen
	WeaponMGTurret

	// 建造工具
	WeaponAlienBuild
	WeaponAlienBuild2
	WeaponHumanBuild

	// WeaponCount 武器总数，也是 HUD 桶数量
	WeaponCount
)

// weaponNames 武器规范名称，与游戏数据文件中的名称一致
var weaponNames = [WeaponCount]string{
	WeaponNone:             "none",
	WeaponAlienLevel0:      "level0",
	WeaponAlienLevel1:      "level1",
	WeaponAlienLevel2:      "level2",
	WeaponAlienLevel2Upg:   "level2upg",
	WeaponAlienLevel3:      "level3",
	WeaponAlienLevel3Upg:   "level3upg",
	WeaponAlienLevel4:      "level4",
	WeaponBlaster:          "blaster",
	WeaponMachinegun:       "rifle",
	WeaponPainSaw:          "psaw",
	WeaponShotgun:          "shotgun",
	WeaponLasGun:           "lgun",
	WeaponMassDriver:       "mdriver",
	WeaponChaingun:         "chaingun",
	WeaponFlamer:           "flamer",
	WeaponPulseRifle:       "prifle",
	WeaponLuciferCannon:    "lcannon",
	WeaponGrenade:          "grenade",
	WeaponLockblobLauncher: "lockblob",
	WeaponHive:             "hive",
	WeaponTeslaGen:         "teslagen",
	WeaponMGTurret:         "mgturret",
	WeaponAlienBuild:       "abuild",
	WeaponAlienBuild2:      "abuildupg",
	WeaponHumanBuild:       "ckit",
}

// Name 返回武器的规范名称，越界时返回空字符串
func (w Weapon) Name() string {
	if w < 0 || w >= WeaponCount {
		return ""
	}
	return weaponNames[w]
}

func (w Weapon) String() string {
	if name := w.Name(); name != "" {
		return name
	}
	return "unknown"
}

// Valid 判断编号是否在武器表范围内
func (w Weapon) Valid() bool {
	return w >= 0 && w < WeaponCount
}

// WeaponByName 按规范名称查找武器（不区分大小写）
func WeaponByName(name string) (Weapon, bool) {
	for w := WeaponNone; w < WeaponCount; w++ {
		if strings.EqualFold(weaponNames[w], name) {
			return w, true
		}
	}
	return WeaponNone, false
}

// HudKeywordSuffix 单武器 HUD 分组关键字的后缀
const HudKeywordSuffix = "_hud"

// WeaponHudKeyword 单武器 HUD 分组关键字与武器的对应关系
type WeaponHudKeyword struct {
	Weapon  Weapon
	Keyword string
}

// weaponHudKeywords 在包初始化时由武器名推导一次，不含 WeaponNone
var weaponHudKeywords = buildWeaponHudKeywords()

func buildWeaponHudKeywords() []WeaponHudKeyword {
	table := make([]WeaponHudKeyword, 0, WeaponCount-1)
	for w := WeaponNone + 1; w < WeaponCount; w++ {
		table = append(table, WeaponHudKeyword{
			Weapon:  w,
			Keyword: weaponNames[w] + HudKeywordSuffix,
		})
	}
	return table
}

// WeaponHudKeywords 返回 (武器 → "<name>_hud") 关键字表
// 返回的是副本，调用方可以随意修改
func WeaponHudKeywords() []WeaponHudKeyword {
	out := make([]WeaponHudKeyword, len(weaponHudKeywords))
	copy(out, weaponHudKeywords)
	return out
}

// MatchWeaponHudKeyword 将 token 与单武器关键字表比较（不区分大小写）
//
// 返回：
//   - Weapon: 匹配到的武器
//   - bool: 是否匹配
func MatchWeaponHudKeyword(token string) (Weapon, bool) {
	for _, entry := range weaponHudKeywords {
		if strings.EqualFold(entry.Keyword, token) {
			return entry.Weapon, true
		}
	}
	return WeaponNone, false
}

// HumanHudWeapons human_hud 分组拥有的桶：全部人类武器加人类建造工具
func HumanHudWeapons() []Weapon {
	weapons := weaponRange(WeaponBlaster, WeaponLuciferCannon)
	return append(weapons, WeaponHumanBuild)
}

// AlienHudWeapons alien_hud 分组拥有的桶：全部外星人形态加两种建造者
func AlienHudWeapons() []Weapon {
	weapons := weaponRange(WeaponAlienLevel0, WeaponAlienLevel4)
	return append(weapons, WeaponAlienBuild, WeaponAlienBuild2)
}

// SpectatorHudWeapons spectator_hud 分组覆盖整个武器表（含 WeaponNone）
func SpectatorHudWeapons() []Weapon {
	return weaponRange(WeaponNone, WeaponCount-1)
}

// weaponRange 返回闭区间 [from, to] 内的武器
func weaponRange(from, to Weapon) []Weapon {
	weapons := make([]Weapon, 0, to-from+1)
	for w := from; w <= to; w++ {
		weapons = append(weapons, w)
	}
	return weapons
}
