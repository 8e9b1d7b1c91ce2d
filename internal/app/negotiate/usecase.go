package negotiate

import (
	"context"
	"errors"
	"time"

	"towerwars/internal/app/ports"
	"towerwars/internal/domain/strategy"
)

var ErrInvalidRequest = errors.New("invalid negotiate request")

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

	snap := strategy.BuildSnapshot(req.Self, req.Turn, req.Enemies, req.CombatActions, nil)
	proposals := u.Engine.PlanDiplomacy(snap)

	if u.Turns != nil {
		now := time.Now()
		if u.Now != nil {
			now = u.Now()
		}
		rec := ports.TurnRecord{
			GameID:    req.GameID,
			Turn:      req.Turn,
			PlayerID:  req.Self.ID,
			Phase:     ports.PhaseNegotiate,
			Budget:    req.Self.Resources,
			Banked:    req.Self.Resources,
			Proposals: proposals,
			DecidedAt: now,
		}
		if err := u.Turns.Append(ctx, rec); err != nil && u.Metrics != nil {
			u.Metrics.RecordLogFailure()
		}
	}
	if u.Metrics != nil {
		u.Metrics.RecordNegotiate(len(proposals))
	}
	return Response{Proposals: proposals}, nil
}
