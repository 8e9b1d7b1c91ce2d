// Package strategy is the per-turn decision core of the tower wars agent:
// it turns a normalized turn snapshot into a resource-bounded action plan
// and a diplomacy proposal list. The engine is a pure function of its input;
// nothing is cached between calls.
package strategy

import "towerwars/internal/domain/tower"

// Decision is one turn's combat plan plus the context it was made in.
type Decision struct {
	Mode    Mode
	Threat  ThreatReport
	Actions []tower.Action

	// Spent is the total resource cost of Actions (upgrade cost included);
	// Banked is what the agent deliberately carries over.
	Spent  int
	Banked int
}

type Engine struct {
	tun Tuning
}

func NewEngine(tun Tuning) Engine {
	tun.Clamp()
	return Engine{tun: tun}
}

// PlanTurn partitions the agent's budget across upgrade, armor and attack
// under the mode chosen for this snapshot. The sum of spends never exceeds
// the starting budget: each phase consumes from what the previous one left.
func (e Engine) PlanTurn(snap Snapshot) Decision {
	mode := SelectMode(snap, e.tun)
	profiles := ModelOpponents(snap, e.tun)
	threat := AnalyzeThreat(snap, profiles, e.tun)
	decision := Decision{Mode: mode, Threat: threat, Actions: []tower.Action{}}

	if len(snap.Living) == 0 {
		// Nobody left to fight: a normal no-op turn, not an error.
		decision.Banked = maxInt(snap.Self.Resources, 0)
		return decision
	}

	p := newPlan(snap, e.tun, profiles, threat)
	pol := policyFor(mode)
	pol.allocateUpgrade(p)
	pol.allocateArmor(p)
	pol.allocateAttack(p)

	decision.Actions = p.actions
	decision.Banked = p.budget
	decision.Spent = maxInt(snap.Self.Resources, 0) - p.budget
	return decision
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
