package strategy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// armorCapCeiling bounds every armor budget cap, widened or not; some budget
// must always stay available to the attack phase.
const armorCapCeiling = 0.95

// Tuning holds every numeric knob of the decision engine. The values are
// balance defaults, not protocol requirements; they can be overridden from a
// YAML file without touching the engine structure.
type Tuning struct {
	// BaseHP is the starting tower HP; own-HP ratios are measured against it.
	BaseHP int `yaml:"base_hp"`

	// CombatLevel is the level at which the agent leaves the economy phase.
	CombatLevel int `yaml:"combat_level"`

	// Opponent model.
	TurtleGraceTurns    int     `yaml:"turtle_grace_turns"`
	HoardSpendRatio     float64 `yaml:"hoard_spend_ratio"`
	ModerateSpendRatio  float64 `yaml:"moderate_spend_ratio"`
	HoardReserveMult    float64 `yaml:"hoard_reserve_mult"`
	ModerateReserveMult float64 `yaml:"moderate_reserve_mult"`

	// Threat analyzer.
	HighAttackerRatio  float64 `yaml:"high_attacker_ratio"`
	HighDamage         int     `yaml:"high_damage"`
	MediumAttackers    int     `yaml:"medium_attackers"`
	MediumDamage       int     `yaml:"medium_damage"`
	HighDefenseBoost   float64 `yaml:"high_defense_boost"`
	MediumDefenseBoost float64 `yaml:"medium_defense_boost"`

	// Upgrade phase.
	PaybackHorizonFrac float64 `yaml:"payback_horizon_frac"`
	UpgradeWindowTurn  int     `yaml:"upgrade_window_turn"`
	StealthMinPlayers  int     `yaml:"stealth_min_players"`

	// Armor phase.
	EconomyHPFloor         int     `yaml:"economy_hp_floor"`
	StandardHPFloor        int     `yaml:"standard_hp_floor"`
	MediumThreatFloorBonus int     `yaml:"medium_threat_floor_bonus"`
	HighThreatFloorBonus   int     `yaml:"high_threat_floor_bonus"`
	HoarderFloorBonus      int     `yaml:"hoarder_floor_bonus"`
	HoarderCoverage        float64 `yaml:"hoarder_coverage"`
	DamageCoverage         float64 `yaml:"damage_coverage"`
	EconomyArmorCap        float64 `yaml:"economy_armor_cap"`
	AccumulateArmorCap     float64 `yaml:"accumulate_armor_cap"`
	DuelArmorCap           float64 `yaml:"duel_armor_cap"`

	// Target scoring.
	KillOverrideBonus    float64 `yaml:"kill_override_bonus"`
	KillBonus            float64 `yaml:"kill_bonus"`
	WeaknessWeight       float64 `yaml:"weakness_weight"`
	LevelWeight          float64 `yaml:"level_weight"`
	RetaliationMin       float64 `yaml:"retaliation_min"`
	RetaliationMax       float64 `yaml:"retaliation_max"`
	RetaliationTroopNorm float64 `yaml:"retaliation_troop_norm"`
	CoordinationBonus    float64 `yaml:"coordination_bonus"`
	HoarderBonus         float64 `yaml:"hoarder_bonus"`
	TurtlePenalty        float64 `yaml:"turtle_penalty"`
	AllyPenalty          float64 `yaml:"ally_penalty"`
	UntouchableScore     float64 `yaml:"untouchable_score"`

	// Attack phase. PressureFrac is the light spend while accumulating;
	// DuelBaseFrac is the all-in floor, scaled up to 1.0 by own HP ratio.
	// RetaliationFrac is the controlled spend while banking under fire.
	PressureFrac    float64 `yaml:"pressure_frac"`
	RetaliationFrac float64 `yaml:"retaliation_frac"`
	DuelBaseFrac    float64 `yaml:"duel_base_frac"`
}

// DefaultTuning is the balance the agent ships with.
func DefaultTuning() Tuning {
	return Tuning{
		BaseHP:      100,
		CombatLevel: 3,

		TurtleGraceTurns:    5,
		HoardSpendRatio:     0.3,
		ModerateSpendRatio:  0.6,
		HoardReserveMult:    2.5,
		ModerateReserveMult: 1.5,

		HighAttackerRatio:  0.5,
		HighDamage:         60,
		MediumAttackers:    2,
		MediumDamage:       30,
		HighDefenseBoost:   0.25,
		MediumDefenseBoost: 0.15,

		PaybackHorizonFrac: 0.6,
		UpgradeWindowTurn:  23,
		StealthMinPlayers:  4,

		EconomyHPFloor:         120,
		StandardHPFloor:        150,
		MediumThreatFloorBonus: 25,
		HighThreatFloorBonus:   40,
		HoarderFloorBonus:      15,
		HoarderCoverage:        0.25,
		DamageCoverage:         0.6,
		EconomyArmorCap:        0.85,
		AccumulateArmorCap:     0.9,
		DuelArmorCap:           0.25,

		KillOverrideBonus:    500,
		KillBonus:            80,
		WeaknessWeight:       150,
		LevelWeight:          8,
		RetaliationMin:       30,
		RetaliationMax:       100,
		RetaliationTroopNorm: 60,
		CoordinationBonus:    70,
		HoarderBonus:         40,
		TurtlePenalty:        200,
		AllyPenalty:          300,
		UntouchableScore:     -100,

		PressureFrac:    0.2,
		RetaliationFrac: 0.2,
		DuelBaseFrac:    0.9,
	}
}

// LoadTuning reads overrides from a YAML file on top of the defaults.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning %s: %w", path, err)
	}
	t.Clamp()
	return t, nil
}

// Clamp forces all fractional knobs back into their valid ranges.
func (t *Tuning) Clamp() {
	if t.BaseHP < 1 {
		t.BaseHP = 1
	}
	if t.CombatLevel < 1 {
		t.CombatLevel = 1
	}
	t.HoardSpendRatio = clamp01(t.HoardSpendRatio)
	t.ModerateSpendRatio = clamp01(t.ModerateSpendRatio)
	if t.ModerateSpendRatio < t.HoardSpendRatio {
		t.ModerateSpendRatio = t.HoardSpendRatio
	}
	t.HighAttackerRatio = clamp01(t.HighAttackerRatio)
	t.PaybackHorizonFrac = clamp01(t.PaybackHorizonFrac)
	t.HoarderCoverage = clamp01(t.HoarderCoverage)
	t.DamageCoverage = clamp01(t.DamageCoverage)
	t.EconomyArmorCap = clampRange(t.EconomyArmorCap, 0, armorCapCeiling)
	t.AccumulateArmorCap = clampRange(t.AccumulateArmorCap, 0, armorCapCeiling)
	t.DuelArmorCap = clampRange(t.DuelArmorCap, 0, armorCapCeiling)
	t.PressureFrac = clamp01(t.PressureFrac)
	t.RetaliationFrac = clamp01(t.RetaliationFrac)
	t.DuelBaseFrac = clamp01(t.DuelBaseFrac)
	if t.RetaliationTroopNorm < 1 {
		t.RetaliationTroopNorm = 1
	}
}

func clamp01(v float64) float64 {
	return clampRange(v, 0, 1)
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
