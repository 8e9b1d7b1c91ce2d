package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"towerwars/internal/app/combat"
	"towerwars/internal/app/negotiate"
	"towerwars/internal/app/ports"
	"towerwars/internal/app/replay"
	"towerwars/internal/domain/tower"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

type Handler struct {
	CombatUC    combat.UseCase
	NegotiateUC negotiate.UseCase
	ReplayUC    replay.UseCase
	KPI         kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	agent := s.Group("/api/agent")
	agent.POST("/combat", h.combat)
	agent.POST("/negotiate", h.negotiate)
	agent.GET("/replay", h.replay)

	s.GET("/healthz", h.healthz)
	s.GET("/", h.root)
	s.GET("/ops/kpi", h.kpi)
}

// Wire DTOs mirror the game server's protocol: camelCase fields, attack and
// diplomacy entries nested under an "action" envelope keyed by the actor.

type attackEntry struct {
	PlayerID int          `json:"playerId"`
	Action   attackAction `json:"action"`
}

type attackAction struct {
	TargetID   int `json:"targetId"`
	TroopCount int `json:"troopCount"`
}

type diplomacyEntry struct {
	PlayerID int             `json:"playerId"`
	Action   diplomacyAction `json:"action"`
}

type diplomacyAction struct {
	AllyID         int  `json:"allyId"`
	AttackTargetID *int `json:"attackTargetId,omitempty"`
}

type combatRequest struct {
	GameID          int                `json:"gameId"`
	Turn            int                `json:"turn"`
	PlayerTower     tower.PlayerTower  `json:"playerTower"`
	EnemyTowers     []tower.EnemyTower `json:"enemyTowers"`
	Diplomacy       []diplomacyEntry   `json:"diplomacy"`
	PreviousAttacks []attackEntry      `json:"previousAttacks"`
}

type negotiateRequest struct {
	GameID        int                `json:"gameId"`
	Turn          int                `json:"turn"`
	PlayerTower   tower.PlayerTower  `json:"playerTower"`
	EnemyTowers   []tower.EnemyTower `json:"enemyTowers"`
	CombatActions []attackEntry      `json:"combatActions"`
}

func (h Handler) combat(c context.Context, ctx *app.RequestContext) {
	var body combatRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.CombatUC.Execute(c, combat.Request{
		GameID:          body.GameID,
		Turn:            body.Turn,
		Self:            body.PlayerTower,
		Enemies:         body.EnemyTowers,
		Diplomacy:       toDiplomacyRecords(body.Diplomacy),
		PreviousAttacks: toAttackRecords(body.PreviousAttacks),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) negotiate(c context.Context, ctx *app.RequestContext) {
	var body negotiateRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.NegotiateUC.Execute(c, negotiate.Request{
		GameID:        body.GameID,
		Turn:          body.Turn,
		Self:          body.PlayerTower,
		Enemies:       body.EnemyTowers,
		CombatActions: toAttackRecords(body.CombatActions),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	gameID, _ := strconv.Atoi(ctx.Query("gameId"))
	limit, _ := strconv.Atoi(ctx.Query("limit"))

	resp, err := h.ReplayUC.Execute(c, replay.Request{GameID: gameID, Limit: limit})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) healthz(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"status": "OK"})
}

func (h Handler) root(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"message": "towerwars agent ready"})
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", "kpi recorder not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func toAttackRecords(entries []attackEntry) []tower.AttackRecord {
	if len(entries) == 0 {
		return nil
	}
	out := make([]tower.AttackRecord, 0, len(entries))
	for _, e := range entries {
		out = append(out, tower.AttackRecord{
			ActorID:    e.PlayerID,
			TargetID:   e.Action.TargetID,
			TroopCount: e.Action.TroopCount,
		})
	}
	return out
}

func toDiplomacyRecords(entries []diplomacyEntry) []tower.DiplomacyRecord {
	if len(entries) == 0 {
		return nil
	}
	out := make([]tower.DiplomacyRecord, 0, len(entries))
	for _, e := range entries {
		out = append(out, tower.DiplomacyRecord{
			ActorID:        e.PlayerID,
			AllyID:         e.Action.AllyID,
			AttackTargetID: e.Action.AttackTargetID,
		})
	}
	return out
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, combat.ErrInvalidRequest),
		errors.Is(err, negotiate.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
