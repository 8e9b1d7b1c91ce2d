package strategy

import (
	"math"
	"testing"

	"towerwars/internal/domain/tower"
)

func TestRankTargetsExcludesNonHostileAllies(t *testing.T) {
	tun := DefaultTuning()
	snap := BuildSnapshot(
		tower.PlayerTower{ID: 1, HP: 100, Level: 3, Resources: 40},
		10,
		[]tower.EnemyTower{
			{ID: 2, HP: 100, Armor: 50, Level: 3},
			{ID: 3, HP: 100, Armor: 50, Level: 3},
		},
		[]tower.AttackRecord{
			{ActorID: 2, TargetID: 4, TroopCount: 30},
			{ActorID: 3, TargetID: 4, TroopCount: 30},
		},
		[]tower.DiplomacyRecord{{ActorID: 2, AllyID: 1}},
	)
	profiles := ModelOpponents(snap, tun)
	ranked := rankTargets(snap, profiles, tun, 40, 0, 1.0)

	for _, rt := range ranked {
		if rt.Enemy.ID == 2 {
			t.Fatal("declared ally that never attacked us must be untouchable")
		}
	}
	if len(ranked) != 1 || ranked[0].Enemy.ID != 3 {
		t.Fatalf("expected only opponent 3 rankable, got %+v", ranked)
	}
}

func TestAllyWhoAttackedUsIsFairGame(t *testing.T) {
	tun := DefaultTuning()
	snap := BuildSnapshot(
		tower.PlayerTower{ID: 1, HP: 100, Level: 3, Resources: 40},
		10,
		[]tower.EnemyTower{{ID: 2, HP: 100, Armor: 50, Level: 3}},
		[]tower.AttackRecord{{ActorID: 2, TargetID: 1, TroopCount: 30}},
		[]tower.DiplomacyRecord{{ActorID: 2, AllyID: 1}},
	)
	profiles := ModelOpponents(snap, tun)
	ranked := rankTargets(snap, profiles, tun, 40, 0, 1.0)

	if len(ranked) != 1 || ranked[0].Enemy.ID != 2 {
		t.Fatal("an ally that attacked us last turn loses protection")
	}
}

func TestTurtleSkippedUnlessAffordable(t *testing.T) {
	tun := DefaultTuning()
	// Both silent past grace: turtles. Only opponent 3 is killable now.
	snap := BuildSnapshot(
		tower.PlayerTower{ID: 1, HP: 100, Level: 4, Resources: 80},
		12,
		[]tower.EnemyTower{
			{ID: 2, HP: 200, Armor: 100, Level: 2},
			{ID: 3, HP: 50, Armor: 10, Level: 2},
		},
		nil,
		nil,
	)
	profiles := ModelOpponents(snap, tun)
	ranked := rankTargets(snap, profiles, tun, 80, designateKillTarget(snap), 1.0)

	if len(ranked) != 1 || ranked[0].Enemy.ID != 3 {
		t.Fatalf("expected only the affordable turtle ranked, got %+v", ranked)
	}
	if ranked[0].Score < tun.KillOverrideBonus {
		t.Fatalf("affordable designated kill must carry the override, score %v", ranked[0].Score)
	}
}

func TestHoarderAndCoordinationBonuses(t *testing.T) {
	tun := DefaultTuning()
	target := 3
	// Identical towers; opponent 3 differs only by being the agreed target.
	snap := BuildSnapshot(
		tower.PlayerTower{ID: 1, HP: 100, Level: 3, Resources: 30},
		4,
		[]tower.EnemyTower{
			{ID: 2, HP: 150, Armor: 0, Level: 2},
			{ID: 3, HP: 150, Armor: 0, Level: 2},
		},
		nil,
		[]tower.DiplomacyRecord{{ActorID: 4, AllyID: 1, AttackTargetID: &target}},
	)
	profiles := ModelOpponents(snap, tun)
	ranked := rankTargets(snap, profiles, tun, 30, 0, 1.0)

	if ranked[0].Enemy.ID != 3 {
		t.Fatalf("coordinated target must outrank its twin, got %d", ranked[0].Enemy.ID)
	}
	if diff := ranked[0].Score - ranked[1].Score; math.Abs(diff-tun.CoordinationBonus) > 1e-9 {
		t.Fatalf("expected exactly the coordination bonus between twins, got %v", diff)
	}
}

func TestRetaliationScalesWithOwnHealth(t *testing.T) {
	tun := DefaultTuning()
	snap := BuildSnapshot(
		tower.PlayerTower{ID: 1, HP: 100, Level: 3, Resources: 30},
		8,
		[]tower.EnemyTower{{ID: 2, HP: 300, Armor: 0, Level: 2}},
		[]tower.AttackRecord{{ActorID: 2, TargetID: 1, TroopCount: 60}},
		nil,
	)
	profiles := ModelOpponents(snap, tun)

	healthy := rankTargets(snap, profiles, tun, 30, 0, 1.0)[0].Score
	wounded := rankTargets(snap, profiles, tun, 30, 0, 0.2)[0].Score
	if healthy <= wounded {
		t.Fatalf("retaliation appetite must grow with hp ratio: healthy %v, wounded %v", healthy, wounded)
	}
}

func TestDesignateKillTargetPrefersCheapestHostile(t *testing.T) {
	snap := BuildSnapshot(
		tower.PlayerTower{ID: 1, HP: 100, Level: 3},
		6,
		[]tower.EnemyTower{
			{ID: 2, HP: 30, Armor: 5, Level: 1},
			{ID: 3, HP: 90, Armor: 0, Level: 2},
		},
		nil,
		[]tower.DiplomacyRecord{{ActorID: 2, AllyID: 1}},
	)
	// The cheapest tower is a protected ally; the designation must skip it.
	if got := designateKillTarget(snap); got != 3 {
		t.Fatalf("designated = %d, want 3", got)
	}
}
