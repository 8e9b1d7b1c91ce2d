package strategy

import "towerwars/internal/domain/tower"

// Profile is the estimate of one opponent's hidden reserve and behavior,
// derived from its public level and last turn's observed spending.
type Profile struct {
	SpendRatio float64

	// Reserve estimates the hidden budget the opponent can bring to bear
	// next turn; for hoarders it feeds the defensive floor sizing.
	Reserve  int
	Hoarding bool
	Turtle   bool
}

// ModelOpponents classifies every living opponent. The map is rebuilt from
// scratch each call; profiles are never carried between turns.
func ModelOpponents(snap Snapshot, tun Tuning) map[int]Profile {
	profiles := make(map[int]Profile, len(snap.Living))
	for _, e := range snap.Living {
		profiles[e.ID] = modelOpponent(e, snap.Spent[e.ID], snap.Turn, tun)
	}
	return profiles
}

func modelOpponent(e tower.EnemyTower, spent, turn int, tun Tuning) Profile {
	income := tower.Income(e.Level)
	if income < 1 {
		income = 1
	}
	p := Profile{SpendRatio: float64(spent) / float64(income)}

	switch {
	case p.SpendRatio < tun.HoardSpendRatio:
		// Under-spenders are banking a burst.
		p.Hoarding = true
		p.Reserve = int(tun.HoardReserveMult * float64(income))
	case p.SpendRatio < tun.ModerateSpendRatio:
		p.Reserve = int(tun.ModerateReserveMult * float64(income))
	default:
		p.Reserve = income
	}

	// Pure defense past the early grace period: not worth chasing unless a
	// kill is already affordable.
	p.Turtle = spent == 0 && turn > tun.TurtleGraceTurns
	return p
}
