package strategy

import (
	"sort"

	"towerwars/internal/domain/tower"
)

// rankedTarget pairs an opponent with its attack score for this turn.
type rankedTarget struct {
	Enemy tower.EnemyTower
	Score float64
}

// designateKillTarget picks the cheapest elimination among opponents we would
// actually touch: the lowest effective HP that is not a non-hostile ally.
// Returns 0 when nobody qualifies.
func designateKillTarget(snap Snapshot) int {
	best := 0
	bestEHP := 0
	for _, e := range snap.Living {
		if snap.Allies[e.ID] && snap.Attackers[e.ID] == 0 {
			continue
		}
		ehp := e.EffectiveHP()
		if best == 0 || ehp < bestEHP || (ehp == bestEHP && e.ID < best) {
			best = e.ID
			bestEHP = ehp
		}
	}
	return best
}

// rankTargets scores every living opponent as an attack target against the
// given attack budget and returns them best first, dropping untouchables
// (declared allies whose score fell at or below the exclusion cutoff).
func rankTargets(snap Snapshot, profiles map[int]Profile, tun Tuning, budget int, designated int, hpRatio float64) []rankedTarget {
	ranked := make([]rankedTarget, 0, len(snap.Living))
	for _, e := range snap.Living {
		ranked = append(ranked, rankedTarget{
			Enemy: e,
			Score: scoreTarget(e, snap, profiles[e.ID], tun, budget, designated, hpRatio),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Enemy.ID < ranked[j].Enemy.ID
	})

	kept := ranked[:0]
	for _, rt := range ranked {
		if rt.Score <= tun.UntouchableScore {
			continue
		}
		kept = append(kept, rt)
	}
	return kept
}

func scoreTarget(e tower.EnemyTower, snap Snapshot, prof Profile, tun Tuning, budget int, designated int, hpRatio float64) float64 {
	ehp := e.EffectiveHP()
	affordable := ehp <= budget

	score := 0.0
	if e.ID == designated && affordable {
		// Hard override: the designated kill is on the table this turn.
		score += tun.KillOverrideBonus
	}
	if affordable {
		score += tun.KillBonus
	}
	score += tun.WeaknessWeight / float64(ehp+1)
	score += tun.LevelWeight * float64(e.Level)

	if troops, ok := snap.Attackers[e.ID]; ok && troops > 0 {
		// Retaliation appetite grows with our own health.
		base := tun.RetaliationMin + (tun.RetaliationMax-tun.RetaliationMin)*hpRatio
		intensity := float64(troops) / tun.RetaliationTroopNorm
		if intensity > 1 {
			intensity = 1
		}
		score += base * intensity
	}

	if snap.AgreedTargets[e.ID] {
		score += tun.CoordinationBonus
	}
	if prof.Hoarding {
		score += tun.HoarderBonus
	}
	if prof.Turtle && !affordable {
		score -= tun.TurtlePenalty
	}
	if snap.Allies[e.ID] && snap.Attackers[e.ID] == 0 {
		score -= tun.AllyPenalty
	}
	return score
}
