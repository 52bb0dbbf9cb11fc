package game

import (
	"testing"

	"github.com/decker502/rocketui/pkg/config"
)

func TestIsElementAllowed(t *testing.T) {
	alienAlive := PlayerSnapshot{Team: config.TeamAliens, Health: 100, Weapon: config.WeaponAlienLevel1}
	humanAlive := PlayerSnapshot{Team: config.TeamHumans, Health: 50, Weapon: config.WeaponBlaster}
	humanDead := PlayerSnapshot{Team: config.TeamHumans, Health: 0, Weapon: config.WeaponNone}
	spectator := PlayerSnapshot{Team: config.TeamNone, Health: 0, Weapon: config.WeaponNone}
	unarmed := PlayerSnapshot{Team: config.TeamHumans, Health: 100, Weapon: config.WeaponNone}

	tests := []struct {
		name     string
		category config.ElementCategory
		phase    UiPhase
		ps       PlayerSnapshot
		want     bool
	}{
		{"all while idle", config.ElementAll, UiIdle, spectator, true},
		{"loading while loading", config.ElementLoading, UiLoading, spectator, true},
		{"loading while playing", config.ElementLoading, UiPlaying, spectator, false},
		{"game while playing", config.ElementGame, UiPlaying, spectator, true},
		{"game while connecting", config.ElementGame, UiConnecting, spectator, false},

		{"aliens alive alien", config.ElementAliens, UiPlaying, alienAlive, true},
		{"aliens for human", config.ElementAliens, UiPlaying, humanAlive, false},
		{"humans alive human", config.ElementHumans, UiPlaying, humanAlive, true},
		{"humans dead human", config.ElementHumans, UiPlaying, humanDead, false},
		{"humans unarmed", config.ElementHumans, UiPlaying, unarmed, false},
		{"both alien", config.ElementBoth, UiPlaying, alienAlive, true},
		{"both human", config.ElementBoth, UiPlaying, humanAlive, true},
		{"both spectator", config.ElementBoth, UiPlaying, spectator, false},

		{"dead human", config.ElementDead, UiPlaying, humanDead, true},
		{"dead with health 1", config.ElementDead, UiPlaying, PlayerSnapshot{Team: config.TeamHumans, Health: 1, Weapon: config.WeaponNone}, false},
		{"dead spectator", config.ElementDead, UiPlaying, spectator, false},
		{"dead but armed", config.ElementDead, UiPlaying, PlayerSnapshot{Team: config.TeamAliens, Health: 0, Weapon: config.WeaponAlienLevel0}, false},

		{"unknown category", config.ElementCategory(99), UiPlaying, humanAlive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsElementAllowed(tt.category, tt.phase, tt.ps); got != tt.want {
				t.Errorf("IsElementAllowed(%v, %v, %+v) = %v, want %v", tt.category, tt.phase, tt.ps, got, tt.want)
			}
		})
	}
}
