package model

import "time"

// TurnDecision is the persisted form of one recorded decision. Actions and
// Proposals are stored as JSON blobs; the row layout stays stable while the
// action vocabulary evolves.
type TurnDecision struct {
	ID        uint      `gorm:"primaryKey"`
	GameID    int       `gorm:"index:idx_turn_decisions_game;not null"`
	Turn      int       `gorm:"not null"`
	PlayerID  int       `gorm:"not null"`
	Phase     string    `gorm:"size:16;not null"`
	Mode      string    `gorm:"size:16"`
	Budget    int       `gorm:"not null"`
	Spent     int       `gorm:"not null"`
	Banked    int       `gorm:"not null"`
	Actions   []byte    `gorm:"type:jsonb"`
	Proposals []byte    `gorm:"type:jsonb"`
	DecidedAt time.Time `gorm:"index:idx_turn_decisions_game;not null"`
}

func (TurnDecision) TableName() string {
	return "turn_decisions"
}
