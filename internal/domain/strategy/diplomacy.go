package strategy

import "towerwars/internal/domain/tower"

// PlanDiplomacy emits the turn's proposals. Below the combat level the agent
// buys safety with blanket non-aggression; at or above it, it rallies the
// field against the weakest living opponent to shrink the game faster.
// Proposals are free: no budget constraint applies.
func (e Engine) PlanDiplomacy(snap Snapshot) []tower.Proposal {
	if len(snap.Living) == 0 {
		return []tower.Proposal{}
	}

	if snap.Self.Level < e.tun.CombatLevel {
		proposals := make([]tower.Proposal, 0, len(snap.Living))
		for _, enemy := range snap.Living {
			proposals = append(proposals, tower.Proposal{AllyID: enemy.ID})
		}
		return proposals
	}

	target := weakestOpponent(snap.Living)
	targetID := target.ID
	proposals := make([]tower.Proposal, 0, len(snap.Living)-1)
	for _, enemy := range snap.Living {
		if enemy.ID == targetID {
			continue
		}
		proposals = append(proposals, tower.Proposal{AllyID: enemy.ID, AttackTargetID: &targetID})
	}
	return proposals
}

func weakestOpponent(living []tower.EnemyTower) tower.EnemyTower {
	weakest := living[0]
	for _, e := range living[1:] {
		if e.EffectiveHP() < weakest.EffectiveHP() ||
			(e.EffectiveHP() == weakest.EffectiveHP() && e.ID < weakest.ID) {
			weakest = e
		}
	}
	return weakest
}
