package strategy

import (
	"testing"

	"towerwars/internal/domain/tower"
)

func snapWithAttacks(living int, attacks []tower.AttackRecord) Snapshot {
	enemies := make([]tower.EnemyTower, 0, living)
	for i := 0; i < living; i++ {
		enemies = append(enemies, tower.EnemyTower{ID: i + 2, HP: 100, Level: 2})
	}
	return BuildSnapshot(tower.PlayerTower{ID: 1, HP: 100, Level: 3}, 10, enemies, attacks, nil)
}

func TestAnalyzeThreatLevels(t *testing.T) {
	cases := []struct {
		name      string
		living    int
		attacks   []tower.AttackRecord
		wantLevel ThreatLevel
		wantBoost float64
	}{
		{
			name:      "no attackers",
			living:    4,
			wantLevel: ThreatLow,
			wantBoost: 0,
		},
		{
			name:   "half the field piles on",
			living: 4,
			attacks: []tower.AttackRecord{
				{ActorID: 2, TargetID: 1, TroopCount: 5},
				{ActorID: 3, TargetID: 1, TroopCount: 5},
			},
			wantLevel: ThreatHigh,
			wantBoost: 0.25,
		},
		{
			name:      "single heavy strike",
			living:    5,
			attacks:   []tower.AttackRecord{{ActorID: 2, TargetID: 1, TroopCount: 60}},
			wantLevel: ThreatHigh,
			wantBoost: 0.25,
		},
		{
			name:   "two light attackers",
			living: 5,
			attacks: []tower.AttackRecord{
				{ActorID: 2, TargetID: 1, TroopCount: 4},
				{ActorID: 3, TargetID: 1, TroopCount: 4},
			},
			wantLevel: ThreatMedium,
			wantBoost: 0.15,
		},
		{
			name:      "moderate damage from one side",
			living:    5,
			attacks:   []tower.AttackRecord{{ActorID: 2, TargetID: 1, TroopCount: 30}},
			wantLevel: ThreatMedium,
			wantBoost: 0.15,
		},
		{
			name:      "a scratch",
			living:    5,
			attacks:   []tower.AttackRecord{{ActorID: 2, TargetID: 1, TroopCount: 10}},
			wantLevel: ThreatLow,
			wantBoost: 0,
		},
	}

	tun := DefaultTuning()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			snap := snapWithAttacks(c.living, c.attacks)
			report := AnalyzeThreat(snap, ModelOpponents(snap, tun), tun)
			if report.Level != c.wantLevel {
				t.Fatalf("level = %s, want %s", report.Level, c.wantLevel)
			}
			if report.DefenseBoost != c.wantBoost {
				t.Fatalf("boost = %v, want %v", report.DefenseBoost, c.wantBoost)
			}
		})
	}
}

func TestAnalyzeThreatEmptyField(t *testing.T) {
	report := AnalyzeThreat(snapWithAttacks(0, nil), nil, DefaultTuning())
	if report.Level != ThreatLow || report.AttackerRatio != 0 {
		t.Fatalf("empty field must be low threat, got %s ratio %v", report.Level, report.AttackerRatio)
	}
}

func TestAnalyzeThreatAggregatesHoarderReserves(t *testing.T) {
	tun := DefaultTuning()
	snap := snapWithAttacks(2, nil)
	report := AnalyzeThreat(snap, ModelOpponents(snap, tun), tun)
	if report.HoarderReserve != 150 {
		t.Fatalf("hoarder reserve = %d, want 150 (two silent level-2 banks)", report.HoarderReserve)
	}

	// A heavy spender drops out of the aggregate.
	snap = snapWithAttacks(2, []tower.AttackRecord{{ActorID: 2, TargetID: 3, TroopCount: 25}})
	report = AnalyzeThreat(snap, ModelOpponents(snap, tun), tun)
	if report.HoarderReserve != 75 {
		t.Fatalf("hoarder reserve = %d, want 75 (only the silent opponent banks)", report.HoarderReserve)
	}
}
