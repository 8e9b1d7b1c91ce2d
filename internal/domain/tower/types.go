package tower

// PlayerTower is the agent's own tower as reported by the game server.
// Resources is the budget spendable this turn.
type PlayerTower struct {
	ID        int `json:"playerId"`
	HP        int `json:"hp"`
	Armor     int `json:"armor"`
	Resources int `json:"resources"`
	Level     int `json:"level"`
}

// EnemyTower is an opposing tower. Reserves are hidden; only level, hp and
// armor are public. HP == 0 means eliminated.
type EnemyTower struct {
	ID    int `json:"playerId"`
	HP    int `json:"hp"`
	Armor int `json:"armor"`
	Level int `json:"level"`
}

func (e EnemyTower) Alive() bool {
	return e.HP > 0
}

// AttackRecord is one attack resolved in the previous combat phase.
type AttackRecord struct {
	ActorID    int `json:"playerId"`
	TargetID   int `json:"targetId"`
	TroopCount int `json:"troopCount"`
}

// DiplomacyRecord is one proposal from the previous negotiation phase.
// AttackTargetID is nil for a plain non-aggression offer.
type DiplomacyRecord struct {
	ActorID        int  `json:"playerId"`
	AllyID         int  `json:"allyId"`
	AttackTargetID *int `json:"attackTargetId,omitempty"`
}

type ActionType string

const (
	ActionUpgrade ActionType = "upgrade"
	ActionArmor   ActionType = "armor"
	ActionAttack  ActionType = "attack"
)

// Action is one entry of the turn's spending plan. Amount is set for armor
// actions, TargetID/TroopCount for attacks; an upgrade carries no fields.
type Action struct {
	Type       ActionType `json:"type"`
	Amount     int        `json:"amount,omitempty"`
	TargetID   int        `json:"targetId,omitempty"`
	TroopCount int        `json:"troopCount,omitempty"`
}

// Cost is the resource spend this action represents. Upgrade cost depends on
// the tower's level and is accounted for by the allocator, not here.
func (a Action) Cost() int {
	switch a.Type {
	case ActionArmor:
		return a.Amount
	case ActionAttack:
		return a.TroopCount
	default:
		return 0
	}
}

// Proposal is one diplomacy offer for the coming negotiation phase.
// Proposals consume no resources.
type Proposal struct {
	AllyID         int  `json:"allyId"`
	AttackTargetID *int `json:"attackTargetId,omitempty"`
}
