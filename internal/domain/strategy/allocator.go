package strategy

import (
	"math"

	"towerwars/internal/domain/tower"
)

// modePolicy is the per-mode dispatch for the three allocation phases. Phases
// always run in order upgrade, armor, attack, each consuming from the budget
// the previous phase left behind.
type modePolicy interface {
	allocateUpgrade(p *plan)
	allocateArmor(p *plan)
	allocateAttack(p *plan)
}

func policyFor(mode Mode) modePolicy {
	switch mode {
	case ModeDuel:
		return duelPolicy{}
	case ModeEconomy:
		return economyPolicy{}
	default:
		return accumulatePolicy{}
	}
}

// plan carries the running budget through the phase pipeline. The budget
// never goes negative: every phase clamps its spend to what remains.
type plan struct {
	snap     Snapshot
	tun      Tuning
	profiles map[int]Profile
	threat   ThreatReport

	budget  int
	actions []tower.Action
}

func newPlan(snap Snapshot, tun Tuning, profiles map[int]Profile, threat ThreatReport) *plan {
	budget := snap.Self.Resources
	if budget < 0 {
		budget = 0
	}
	return &plan{
		snap:     snap,
		tun:      tun,
		profiles: profiles,
		threat:   threat,
		budget:   budget,
		actions:  []tower.Action{},
	}
}

func (p *plan) hpRatio() float64 {
	r := float64(p.snap.Self.HP) / float64(p.tun.BaseHP)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

func (p *plan) soleHighestLevel() bool {
	for _, e := range p.snap.Living {
		if e.Level >= p.snap.Self.Level {
			return false
		}
	}
	return true
}

// --- Upgrade phase ---

func (p *plan) takeUpgrade() {
	me := p.snap.Self
	if me.Level >= tower.MaxLevel {
		return
	}
	cost := tower.UpgradeCost(me.Level)
	if cost > p.budget {
		return
	}
	// Stealth rule: being the unique highest level in a crowded field draws
	// coordinated retaliation.
	if p.snap.TotalPlayers() >= p.tun.StealthMinPlayers && p.soleHighestLevel() {
		return
	}
	incomeDelta := tower.Income(me.Level+1) - tower.Income(me.Level)
	if incomeDelta <= 0 {
		// Payback is effectively infinite; suppress rather than divide.
		return
	}
	turnsLeft := tower.GameHorizon - p.snap.Turn
	if turnsLeft < 1 {
		turnsLeft = 1
	}
	payback := float64(cost) / float64(incomeDelta)
	if payback < float64(turnsLeft)*p.tun.PaybackHorizonFrac && p.snap.Turn <= p.tun.UpgradeWindowTurn {
		p.actions = append(p.actions, tower.Action{Type: tower.ActionUpgrade})
		p.budget -= cost
	}
}

// --- Armor phase ---

func (p *plan) armorFloor(base int) int {
	bonus := 0
	switch p.threat.Level {
	case ThreatHigh:
		bonus = p.tun.HighThreatFloorBonus
	case ThreatMedium:
		bonus = p.tun.MediumThreatFloorBonus
	}
	if p.threat.HoarderReserve > 0 {
		hoard := int(p.tun.HoarderCoverage * float64(p.threat.HoarderReserve))
		if hoard < p.tun.HoarderFloorBonus {
			hoard = p.tun.HoarderFloorBonus
		}
		if hoard > bonus {
			bonus = hoard
		}
	}
	return base + bonus
}

// takeArmor spends the larger of the floor shortfall and the coverage of
// last turn's incoming damage, capped at a fraction of the remaining budget.
// The threat boost widens that cap, never past the ceiling.
func (p *plan) takeArmor(floor int, cap float64) {
	if p.budget <= 0 {
		return
	}
	shortfall := floor - p.snap.Self.EffectiveHP()
	if shortfall < 0 {
		shortfall = 0
	}
	coverage := int(math.Ceil(float64(p.threat.IncomingDamage) * p.tun.DamageCoverage))

	spend := shortfall
	if coverage > spend {
		spend = coverage
	}
	cap += p.threat.DefenseBoost
	if cap > armorCapCeiling {
		cap = armorCapCeiling
	}
	capped := int(cap * float64(p.budget))
	if spend > capped {
		spend = capped
	}
	if spend <= 0 {
		return
	}
	p.actions = append(p.actions, tower.Action{Type: tower.ActionArmor, Amount: spend})
	p.budget -= spend
}

// --- Attack phase ---

// attack emits a focus-fire sequence: the primary target gets primarySpend
// (exact kill cost when affordable), any remainder cascades to the next
// non-ally target at full remaining spend.
func (p *plan) attack(ranked []rankedTarget, primarySpend func(budget, ehp int) int) {
	for i, rt := range ranked {
		if p.budget <= 0 {
			return
		}
		spend := p.budget
		if i == 0 {
			spend = primarySpend(p.budget, rt.Enemy.EffectiveHP())
		}
		if spend > p.budget {
			spend = p.budget
		}
		if spend <= 0 {
			continue
		}
		p.actions = append(p.actions, tower.Action{
			Type:       tower.ActionAttack,
			TargetID:   rt.Enemy.ID,
			TroopCount: spend,
		})
		p.budget -= spend
	}
}

// --- Economy: rush levels, keep the floor, never attack ---

type economyPolicy struct{}

func (economyPolicy) allocateUpgrade(p *plan) {
	p.takeUpgrade()
}

func (economyPolicy) allocateArmor(p *plan) {
	p.takeArmor(p.armorFloor(p.tun.EconomyHPFloor), p.tun.EconomyArmorCap)
}

func (economyPolicy) allocateAttack(*plan) {}

// --- Accumulation: armor first, bank toward a one-shot elimination ---

type accumulatePolicy struct{}

func (accumulatePolicy) allocateUpgrade(p *plan) {
	p.takeUpgrade()
}

func (accumulatePolicy) allocateArmor(p *plan) {
	p.takeArmor(p.armorFloor(p.tun.StandardHPFloor), p.tun.AccumulateArmorCap)
}

func (accumulatePolicy) allocateAttack(p *plan) {
	if p.budget <= 0 || len(p.snap.Living) == 0 {
		return
	}
	designated := designateKillTarget(p.snap)
	ranked := rankTargets(p.snap, p.profiles, p.tun, p.budget, designated, p.hpRatio())
	if len(ranked) == 0 {
		return
	}

	killCost := 0
	for _, rt := range ranked {
		if rt.Enemy.ID == designated {
			killCost = rt.Enemy.EffectiveHP()
			break
		}
	}

	switch {
	case designated != 0 && killCost <= p.budget:
		// Kill secured this turn: exact cost on the victim, remainder
		// cascades down the ranking.
		p.attack(ranked, func(budget, ehp int) int {
			if ehp <= budget {
				return ehp
			}
			return budget
		})
	case designated != 0 && killCost <= p.budget+tower.Income(p.snap.Self.Level):
		// One income turn away from the kill: bank, with a controlled
		// retaliation only if we are currently being hit.
		if p.snap.UnderAttack() {
			spend := int(p.tun.RetaliationFrac * float64(p.budget))
			p.attackTop(ranked, spend)
		}
	default:
		// Light pressure, bank the rest.
		spend := int(p.tun.PressureFrac * float64(p.budget))
		p.attackTop(ranked, spend)
	}
}

// attackTop sends a fixed spend at the best-ranked target only.
func (p *plan) attackTop(ranked []rankedTarget, spend int) {
	if spend > p.budget {
		spend = p.budget
	}
	if spend <= 0 || len(ranked) == 0 {
		return
	}
	p.actions = append(p.actions, tower.Action{
		Type:       tower.ActionAttack,
		TargetID:   ranked[0].Enemy.ID,
		TroopCount: spend,
	})
	p.budget -= spend
}

// --- Duel: no upgrades, light cover, everything at the last opponent ---

type duelPolicy struct{}

func (duelPolicy) allocateUpgrade(*plan) {}

func (duelPolicy) allocateArmor(p *plan) {
	// No floor chasing in a duel; only cover a slice of the incoming.
	p.takeArmor(0, p.tun.DuelArmorCap)
}

func (duelPolicy) allocateAttack(p *plan) {
	if p.budget <= 0 || len(p.snap.Living) == 0 {
		return
	}
	designated := designateKillTarget(p.snap)
	ranked := rankTargets(p.snap, p.profiles, p.tun, p.budget, designated, p.hpRatio())
	if len(ranked) == 0 {
		return
	}
	frac := p.tun.DuelBaseFrac + (1-p.tun.DuelBaseFrac)*p.hpRatio()
	p.attack(ranked, func(budget, ehp int) int {
		if ehp <= budget {
			// Exact kill, no overkill waste.
			return ehp
		}
		return int(frac * float64(budget))
	})
}
