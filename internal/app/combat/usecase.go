package combat

import (
	"context"
	"errors"
	"time"

	"towerwars/internal/app/ports"
	"towerwars/internal/domain/strategy"
)

var ErrInvalidRequest = errors.New("invalid combat request")

type UseCase struct {
	Engine  strategy.Engine
	Turns   ports.TurnRecordRepository
	Metrics ports.DecisionMetrics
	Now     func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if req.Self.ID <= 0 || req.Turn <= 0 || req.Self.Resources < 0 {
		return Response{}, ErrInvalidRequest
	}

	snap := strategy.BuildSnapshot(req.Self, req.Turn, req.Enemies, req.PreviousAttacks, req.Diplomacy)
	decision := u.Engine.PlanTurn(snap)

	u.record(ctx, req, decision)
	if u.Metrics != nil {
		u.Metrics.RecordCombat(string(decision.Mode))
	}
	return Response{
		Actions: decision.Actions,
		Mode:    string(decision.Mode),
		Banked:  decision.Banked,
	}, nil
}

// record appends to the decision log. The plan is advisory and already
// computed; a log failure is counted, not surfaced.
func (u UseCase) record(ctx context.Context, req Request, decision strategy.Decision) {
	if u.Turns == nil {
		return
	}
	now := time.Now()
	if u.Now != nil {
		now = u.Now()
	}
	rec := ports.TurnRecord{
		GameID:    req.GameID,
		Turn:      req.Turn,
		PlayerID:  req.Self.ID,
		Phase:     ports.PhaseCombat,
		Mode:      string(decision.Mode),
		Budget:    req.Self.Resources,
		Spent:     decision.Spent,
		Banked:    decision.Banked,
		Actions:   decision.Actions,
		DecidedAt: now,
	}
	if err := u.Turns.Append(ctx, rec); err != nil && u.Metrics != nil {
		u.Metrics.RecordLogFailure()
	}
}
