package gormrepo

import (
	"context"
	"encoding/json"

	"towerwars/internal/adapter/repo/gorm/model"
	"towerwars/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TurnRepo struct {
	db *gorm.DB
}

func NewTurnRepo(db *gorm.DB) TurnRepo {
	return TurnRepo{db: db}
}

func (r TurnRepo) Append(ctx context.Context, rec ports.TurnRecord) error {
	actions, _ := json.Marshal(rec.Actions)
	proposals, _ := json.Marshal(rec.Proposals)
	row := model.TurnDecision{
		GameID:    rec.GameID,
		Turn:      rec.Turn,
		PlayerID:  rec.PlayerID,
		Phase:     string(rec.Phase),
		Mode:      rec.Mode,
		Budget:    rec.Budget,
		Spent:     rec.Spent,
		Banked:    rec.Banked,
		Actions:   actions,
		Proposals: proposals,
		DecidedAt: rec.DecidedAt,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r TurnRepo) ListByGameID(ctx context.Context, gameID, limit int) ([]ports.TurnRecord, error) {
	rows := []model.TurnDecision{}
	query := r.db.WithContext(ctx).
		Where(&model.TurnDecision{GameID: gameID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "decided_at"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}

	out := make([]ports.TurnRecord, 0, len(rows))
	for _, row := range rows {
		rec := ports.TurnRecord{
			GameID:    row.GameID,
			Turn:      row.Turn,
			PlayerID:  row.PlayerID,
			Phase:     ports.DecisionPhase(row.Phase),
			Mode:      row.Mode,
			Budget:    row.Budget,
			Spent:     row.Spent,
			Banked:    row.Banked,
			DecidedAt: row.DecidedAt,
		}
		if len(row.Actions) > 0 {
			_ = json.Unmarshal(row.Actions, &rec.Actions)
		}
		if len(row.Proposals) > 0 {
			_ = json.Unmarshal(row.Proposals, &rec.Proposals)
		}
		out = append(out, rec)
	}
	return out, nil
}

var _ ports.TurnRecordRepository = TurnRepo{}
