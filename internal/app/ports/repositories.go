package ports

import (
	"context"
	"time"

	"towerwars/internal/domain/tower"
)

// DecisionPhase tells which of the two entry calls produced a record.
type DecisionPhase string

const (
	PhaseCombat    DecisionPhase = "combat"
	PhaseNegotiate DecisionPhase = "negotiate"
)

// TurnRecord is one turn's decision as the engine emitted it. The engine
// itself is stateless; the log exists for replay and post-game analysis.
type TurnRecord struct {
	GameID    int
	Turn      int
	PlayerID  int
	Phase     DecisionPhase
	Mode      string
	Budget    int
	Spent     int
	Banked    int
	Actions   []tower.Action
	Proposals []tower.Proposal
	DecidedAt time.Time
}

type TurnRecordRepository interface {
	Append(ctx context.Context, rec TurnRecord) error
	// ListByGameID returns newest first; limit <= 0 means no limit.
	// ErrNotFound when the game has no records.
	ListByGameID(ctx context.Context, gameID, limit int) ([]TurnRecord, error)
}
