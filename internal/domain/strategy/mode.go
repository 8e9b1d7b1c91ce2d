package strategy

// Mode is the operating posture chosen once per turn. It is a pure function
// of the current snapshot; no transition history is kept.
type Mode string

const (
	// ModeDuel: exactly two agents remain. All-in combat with upgrades
	// disabled; too few turns remain to recoup the investment.
	ModeDuel Mode = "duel"

	// ModeEconomy: below the combat level. No attacks; the budget goes to
	// upgrades and a guaranteed defense floor.
	ModeEconomy Mode = "economy"

	// ModeAccumulate: the default posture once combat-capable. Armor first,
	// resources banked toward a one-shot elimination.
	ModeAccumulate Mode = "accumulate"
)

// SelectMode classifies the turn. Duel takes precedence regardless of level.
func SelectMode(snap Snapshot, tun Tuning) Mode {
	if len(snap.Living) == 1 {
		return ModeDuel
	}
	if snap.Self.Level < tun.CombatLevel {
		return ModeEconomy
	}
	return ModeAccumulate
}
