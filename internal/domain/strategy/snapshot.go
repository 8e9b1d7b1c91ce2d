package strategy

import "towerwars/internal/domain/tower"

// Snapshot is the canonical per-turn view every other component reads.
// It is built fresh from the raw payload each call and discarded after;
// nothing persists between turns.
type Snapshot struct {
	Self tower.PlayerTower
	Turn int

	// Living holds opponents with hp > 0; eliminated towers never reach
	// scoring, targeting or diplomacy.
	Living []tower.EnemyTower

	// Attackers maps opponent id to the troops it sent at us last turn.
	Attackers map[int]int

	// Spent maps opponent id to everything it committed anywhere last turn,
	// the observable half of its spending behavior.
	Spent map[int]int

	// Allies holds ids that proposed us as their ally last negotiation;
	// AgreedTargets holds the coordinated targets those allies nominated.
	Allies        map[int]bool
	AgreedTargets map[int]bool
}

// BuildSnapshot normalizes a raw turn payload. Absent history lists are
// treated as empty, never as an error.
func BuildSnapshot(self tower.PlayerTower, turn int, enemies []tower.EnemyTower, attacks []tower.AttackRecord, diplomacy []tower.DiplomacyRecord) Snapshot {
	snap := Snapshot{
		Self:          self,
		Turn:          turn,
		Attackers:     map[int]int{},
		Spent:         map[int]int{},
		Allies:        map[int]bool{},
		AgreedTargets: map[int]bool{},
	}

	snap.Living = make([]tower.EnemyTower, 0, len(enemies))
	for _, e := range enemies {
		if e.Alive() {
			snap.Living = append(snap.Living, e)
		}
	}

	for _, a := range attacks {
		if a.ActorID == self.ID {
			continue
		}
		snap.Spent[a.ActorID] += a.TroopCount
		if a.TargetID == self.ID {
			// An opponent attacks at most once per turn; last writer wins.
			snap.Attackers[a.ActorID] = a.TroopCount
		}
	}

	for _, d := range diplomacy {
		if d.AllyID != self.ID {
			continue
		}
		snap.Allies[d.ActorID] = true
		if d.AttackTargetID != nil {
			snap.AgreedTargets[*d.AttackTargetID] = true
		}
	}

	return snap
}

// TotalPlayers counts the agent plus its living opponents.
func (s Snapshot) TotalPlayers() int {
	return len(s.Living) + 1
}

func (s Snapshot) UnderAttack() bool {
	return len(s.Attackers) > 0
}

// IncomingDamage sums the troops thrown at the agent last turn.
func (s Snapshot) IncomingDamage() int {
	total := 0
	for _, troops := range s.Attackers {
		total += troops
	}
	return total
}
