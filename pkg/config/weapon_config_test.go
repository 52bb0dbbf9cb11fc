package config

import "testing"

// TestWeaponNamesComplete 每个武器都必须有规范名称
func TestWeaponNamesComplete(t *testing.T) {
	for w := WeaponNone; w < WeaponCount; w++ {
		if w.Name() == "" {
			t.Errorf("Weapon %d has no canonical name", w)
		}
	}
	if Weapon(-1).Name() != "" || WeaponCount.Name() != "" {
		t.Error("Out of range weapons should have no name")
	}
}

func TestWeaponHudKeywords(t *testing.T) {
	table := WeaponHudKeywords()

	if len(table) != int(WeaponCount)-1 {
		t.Fatalf("Expected %d keywords, got %d", WeaponCount-1, len(table))
	}
	for _, entry := range table {
		if entry.Weapon == WeaponNone {
			t.Error("WeaponNone must not have a per-weapon keyword")
		}
		if entry.Keyword != entry.Weapon.Name()+"_hud" {
			t.Errorf("Keyword for %v: got %q", entry.Weapon, entry.Keyword)
		}
	}

	// 修改副本不影响内部表
	table[0].Keyword = "changed"
	if WeaponHudKeywords()[0].Keyword == "changed" {
		t.Error("WeaponHudKeywords must return a copy")
	}
}

func TestMatchWeaponHudKeyword(t *testing.T) {
	tests := []struct {
		token  string
		want   Weapon
		wantOK bool
	}{
		{"blaster_hud", WeaponBlaster, true},
		{"BLASTER_HUD", WeaponBlaster, true},
		{"ckit_hud", WeaponHumanBuild, true},
		{"level2upg_hud", WeaponAlienLevel2Upg, true},
		{"none_hud", WeaponNone, false},
		{"blaster", WeaponNone, false},
		{"human_hud", WeaponNone, false},
	}

	for _, tt := range tests {
		got, ok := MatchWeaponHudKeyword(tt.token)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("MatchWeaponHudKeyword(%q) = %v, %v; want %v, %v", tt.token, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestGroupWeapons(t *testing.T) {
	human := HumanHudWeapons()
	if human[0] != WeaponBlaster || human[len(human)-2] != WeaponLuciferCannon || human[len(human)-1] != WeaponHumanBuild {
		t.Errorf("Unexpected human weapons: %v", human)
	}
	if len(human) != int(WeaponLuciferCannon-WeaponBlaster)+2 {
		t.Errorf("Expected %d human buckets, got %d", WeaponLuciferCannon-WeaponBlaster+2, len(human))
	}

	alien := AlienHudWeapons()
	if alien[0] != WeaponAlienLevel0 || alien[len(alien)-3] != WeaponAlienLevel4 {
		t.Errorf("Unexpected alien weapons: %v", alien)
	}
	if alien[len(alien)-2] != WeaponAlienBuild || alien[len(alien)-1] != WeaponAlienBuild2 {
		t.Errorf("Alien builders missing: %v", alien)
	}

	spectator := SpectatorHudWeapons()
	if len(spectator) != int(WeaponCount) {
		t.Errorf("Spectator should span all %d buckets, got %d", WeaponCount, len(spectator))
	}
	if spectator[0] != WeaponNone {
		t.Error("Spectator range must start at WeaponNone")
	}
}

func TestWeaponByName(t *testing.T) {
	w, ok := WeaponByName("Rifle")
	if !ok || w != WeaponMachinegun {
		t.Errorf("WeaponByName(Rifle) = %v, %v", w, ok)
	}
	if _, ok := WeaponByName("bfg"); ok {
		t.Error("Expected unknown weapon lookup to fail")
	}
}
