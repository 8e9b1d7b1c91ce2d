package main

import (
	"log"
	"os"
	"strings"
	"time"

	httpadapter "towerwars/internal/adapter/http"
	metricsinmem "towerwars/internal/adapter/metrics/inmemory"
	gormrepo "towerwars/internal/adapter/repo/gorm"
	memrepo "towerwars/internal/adapter/repo/memory"
	"towerwars/internal/app/combat"
	"towerwars/internal/app/negotiate"
	"towerwars/internal/app/ports"
	"towerwars/internal/app/replay"
	"towerwars/internal/domain/strategy"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	turnRepo := buildTurnRepoFromEnv()
	engine := strategy.NewEngine(buildTuningFromEnv())
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		CombatUC: combat.UseCase{
			Engine:  engine,
			Turns:   turnRepo,
			Metrics: kpiRecorder,
			Now:     time.Now,
		},
		NegotiateUC: negotiate.UseCase{
			Engine:  engine,
			Turns:   turnRepo,
			Metrics: kpiRecorder,
			Now:     time.Now,
		},
		ReplayUC: replay.UseCase{Turns: turnRepo},
		KPI:      kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(":8080"))
	h.RegisterRoutes(s)

	log.Println("towerwars agent listening on :8080")
	s.Spin()
}

// buildTurnRepoFromEnv picks the decision-log backend. With no DSN the
// agent keeps its log in memory, which is enough for a single match.
func buildTurnRepoFromEnv() ports.TurnRecordRepository {
	dsn := strings.TrimSpace(os.Getenv("TOWERWARS_DB_DSN"))
	if dsn == "" {
		log.Println("TOWERWARS_DB_DSN not set, using in-memory decision log")
		return memrepo.NewTurnRepo(memrepo.NewStore())
	}
	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	return gormrepo.NewTurnRepo(db)
}

func buildTuningFromEnv() strategy.Tuning {
	path := strings.TrimSpace(os.Getenv("TOWERWARS_TUNING"))
	if path == "" {
		return strategy.DefaultTuning()
	}
	tun, err := strategy.LoadTuning(path)
	if err != nil {
		log.Fatalf("load tuning %s: %v", path, err)
	}
	return tun
}
