package memory

import (
	"context"

	"towerwars/internal/app/ports"
)

type TurnRepo struct {
	store *Store
}

func NewTurnRepo(store *Store) TurnRepo {
	return TurnRepo{store: store}
}

func (r TurnRepo) Append(_ context.Context, rec ports.TurnRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.turns[rec.GameID] = append(r.store.turns[rec.GameID], rec)
	return nil
}

func (r TurnRepo) ListByGameID(_ context.Context, gameID, limit int) ([]ports.TurnRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	records := r.store.turns[gameID]
	if len(records) == 0 {
		return nil, ports.ErrNotFound
	}

	out := make([]ports.TurnRecord, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		out = append(out, records[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
