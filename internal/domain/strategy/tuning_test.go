package strategy

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTuningOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	raw := []byte("combat_level: 4\npressure_frac: 0.35\nhigh_damage: 80\n")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write tuning file: %v", err)
	}

	tun, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("load tuning: %v", err)
	}
	if tun.CombatLevel != 4 {
		t.Fatalf("combat_level = %d, want 4", tun.CombatLevel)
	}
	if tun.PressureFrac != 0.35 {
		t.Fatalf("pressure_frac = %v, want 0.35", tun.PressureFrac)
	}
	if tun.HighDamage != 80 {
		t.Fatalf("high_damage = %d, want 80", tun.HighDamage)
	}
	// Untouched knobs keep their defaults.
	if tun.EconomyHPFloor != DefaultTuning().EconomyHPFloor {
		t.Fatalf("economy_hp_floor changed unexpectedly to %d", tun.EconomyHPFloor)
	}
}

func TestLoadTuningRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("combat_level: [not an int"), 0o600); err != nil {
		t.Fatalf("write tuning file: %v", err)
	}
	if _, err := LoadTuning(path); err == nil {
		t.Fatal("expected an error for malformed yaml")
	}
}

func TestClampForcesFractionsBackIntoRange(t *testing.T) {
	tun := DefaultTuning()
	tun.EconomyArmorCap = 1.4
	tun.PressureFrac = -0.5
	tun.ModerateSpendRatio = 0.1
	tun.HoardSpendRatio = 0.3
	tun.Clamp()

	if tun.EconomyArmorCap != 0.95 {
		t.Fatalf("armor caps are bounded at 0.95, got %v", tun.EconomyArmorCap)
	}
	if tun.PressureFrac != 0 {
		t.Fatalf("negative fractions clamp to zero, got %v", tun.PressureFrac)
	}
	if tun.ModerateSpendRatio < tun.HoardSpendRatio {
		t.Fatal("moderate ratio may not undercut the hoard ratio")
	}
}
