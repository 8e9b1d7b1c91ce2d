package negotiate

import "towerwars/internal/domain/tower"

// Request is the negotiation-phase snapshot; CombatActions are last turn's
// resolved attacks (the diplomacy call sees combat history, not proposals).
type Request struct {
	GameID        int
	Turn          int
	Self          tower.PlayerTower
	Enemies       []tower.EnemyTower
	CombatActions []tower.AttackRecord
}

type Response struct {
	Proposals []tower.Proposal `json:"proposals"`
}
