package replay

import (
	"context"
	"errors"

	"towerwars/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid replay request")

// UseCase lists the decision log for one game, newest first.
type UseCase struct {
	Turns ports.TurnRecordRepository
}

type Request struct {
	GameID int
	Limit  int
}

type Response struct {
	GameID    int                `json:"gameId"`
	Decisions []ports.TurnRecord `json:"decisions"`
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if req.GameID <= 0 {
		return Response{}, ErrInvalidRequest
	}
	records, err := u.Turns.ListByGameID(ctx, req.GameID, req.Limit)
	if err != nil {
		return Response{}, err
	}
	return Response{GameID: req.GameID, Decisions: records}, nil
}
