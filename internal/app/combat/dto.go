package combat

import "towerwars/internal/domain/tower"

// Request is the combat-phase turn snapshot as the game server sends it.
// Diplomacy and PreviousAttacks are last turn's outcomes and may be absent.
type Request struct {
	GameID          int
	Turn            int
	Self            tower.PlayerTower
	Enemies         []tower.EnemyTower
	Diplomacy       []tower.DiplomacyRecord
	PreviousAttacks []tower.AttackRecord
}

// Response is the advisory action plan. Banked is the budget deliberately
// carried over; the game server owns the actual ledger.
type Response struct {
	Actions []tower.Action `json:"actions"`
	Mode    string         `json:"mode"`
	Banked  int            `json:"banked"`
}
