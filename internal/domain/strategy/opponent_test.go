package strategy

import (
	"testing"

	"towerwars/internal/domain/tower"
)

func TestModelOpponentClassification(t *testing.T) {
	tun := DefaultTuning()
	enemy := tower.EnemyTower{ID: 2, HP: 100, Level: 2} // income 30

	cases := []struct {
		name        string
		spent       int
		wantHoard   bool
		wantReserve int
	}{
		{name: "under-spender banks a burst", spent: 5, wantHoard: true, wantReserve: 75},
		{name: "moderate spender", spent: 10, wantHoard: false, wantReserve: 45},
		{name: "heavy spender keeps nothing", spent: 25, wantHoard: false, wantReserve: 30},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := modelOpponent(enemy, c.spent, 10, tun)
			if p.Hoarding != c.wantHoard {
				t.Fatalf("hoarding = %v, want %v", p.Hoarding, c.wantHoard)
			}
			if p.Reserve != c.wantReserve {
				t.Fatalf("reserve = %d, want %d", p.Reserve, c.wantReserve)
			}
		})
	}
}

func TestTurtleNeedsGracePeriodOver(t *testing.T) {
	tun := DefaultTuning()
	enemy := tower.EnemyTower{ID: 2, HP: 100, Level: 1}

	if p := modelOpponent(enemy, 0, 5, tun); p.Turtle {
		t.Fatal("zero spend within the grace period must not flag a turtle")
	}
	if p := modelOpponent(enemy, 0, 6, tun); !p.Turtle {
		t.Fatal("zero spend past the grace period must flag a turtle")
	}
	if p := modelOpponent(enemy, 3, 20, tun); p.Turtle {
		t.Fatal("any observed spend clears the turtle flag")
	}
}

func TestModelOpponentsCoversEveryLivingOpponent(t *testing.T) {
	snap := BuildSnapshot(
		tower.PlayerTower{ID: 1, Level: 3},
		8,
		[]tower.EnemyTower{{ID: 2, HP: 50, Level: 1}, {ID: 3, HP: 70, Level: 4}},
		[]tower.AttackRecord{{ActorID: 3, TargetID: 2, TroopCount: 60}},
		nil,
	)
	profiles := ModelOpponents(snap, DefaultTuning())
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}
	if !profiles[2].Turtle {
		t.Fatal("silent opponent past grace must be a turtle")
	}
	if profiles[3].Hoarding {
		t.Fatal("opponent spending most of its income is not a hoarder")
	}
}
