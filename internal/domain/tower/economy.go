package tower

import "math"

const (
	MaxLevel = 5

	// FatigueStart is the turn fatigue damage begins server-side; GameHorizon
	// approximates the longest a game survives past it.
	FatigueStart = 25
	GameHorizon  = 40
)

// UpgradeCost is the cost to go from level to level+1.
func UpgradeCost(level int) int {
	return int(math.Ceil(50 * math.Pow(1.75, float64(level-1))))
}

// Income is the resource generation per turn at level.
func Income(level int) int {
	return int(math.Ceil(20 * math.Pow(1.5, float64(level-1))))
}

// EffectiveHP is hp + armor: the one-strike elimination cost of a tower.
func EffectiveHP(hp, armor int) int {
	return hp + armor
}

func (p PlayerTower) EffectiveHP() int {
	return EffectiveHP(p.HP, p.Armor)
}

func (e EnemyTower) EffectiveHP() int {
	return EffectiveHP(e.HP, e.Armor)
}
