package pursuit

import (
	"testing"

	"emoji-scavenger/internal/board"
	"emoji-scavenger/internal/content"
	"emoji-scavenger/internal/turn"
)

func openBoard() *board.Board {
	return board.New(12, 12)
}

func TestDecideAttacksWhenAxisAdjacent(t *testing.T) {
	b := openBoard()
	cases := []struct {
		name        string
		own, player board.Coord
	}{
		{"east", board.Coord{X: 5, Y: 5}, board.Coord{X: 6, Y: 5}},
		{"west", board.Coord{X: 5, Y: 5}, board.Coord{X: 4, Y: 5}},
		{"north", board.Coord{X: 5, Y: 5}, board.Coord{X: 5, Y: 6}},
		{"south", board.Coord{X: 5, Y: 5}, board.Coord{X: 5, Y: 4}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := Decide(b, c.own, c.player)
			if d.Action != ActionAttack {
				t.Errorf("Decide(%v→%v) = %v, want attack", c.own, c.player, d.Action)
			}
		})
	}
}

func TestDecideDiagonalAdjacencyIsNotMelee(t *testing.T) {
	b := openBoard()
	d := Decide(b, board.Coord{X: 5, Y: 5}, board.Coord{X: 6, Y: 6})
	if d.Action != ActionMove {
		t.Fatalf("diagonal neighbor should produce a move, got %v", d.Action)
	}
	// |dx| == |dy| → Y wins the tie.
	if (d.Dest != board.Coord{X: 5, Y: 6}) {
		t.Errorf("dest = %v, want the Y step (5,6)", d.Dest)
	}
}

func TestDecidePrimaryAxisSelection(t *testing.T) {
	b := openBoard()
	cases := []struct {
		name        string
		own, player board.Coord
		wantDest    board.Coord
	}{
		{"x dominant", board.Coord{X: 2, Y: 2}, board.Coord{X: 8, Y: 4}, board.Coord{X: 3, Y: 2}},
		{"y dominant", board.Coord{X: 2, Y: 2}, board.Coord{X: 4, Y: 8}, board.Coord{X: 2, Y: 3}},
		{"tie goes to y", board.Coord{X: 2, Y: 2}, board.Coord{X: 6, Y: 6}, board.Coord{X: 2, Y: 3}},
		{"pure y", board.Coord{X: 5, Y: 5}, board.Coord{X: 5, Y: 8}, board.Coord{X: 5, Y: 6}},
		{"pure x negative", board.Coord{X: 7, Y: 5}, board.Coord{X: 2, Y: 5}, board.Coord{X: 6, Y: 5}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := Decide(b, c.own, c.player)
			if d.Action != ActionMove || d.Dest != c.wantDest {
				t.Errorf("Decide(%v→%v) = %+v, want move to %v", c.own, c.player, d, c.wantDest)
			}
		})
	}
}

func TestDecideFallsBackToSecondaryAxis(t *testing.T) {
	b := openBoard()
	// Primary step (5,6) is occupied; secondary step is (6,5).
	blocker := content.NewWall(board.Coord{X: 5, Y: 6}, content.WallHealth, board.TerrainFloor)
	b.SetOccupant(blocker.At, blocker)

	d := Decide(b, board.Coord{X: 5, Y: 5}, board.Coord{X: 7, Y: 8})
	if d.Action != ActionMove || (d.Dest != board.Coord{X: 6, Y: 5}) {
		t.Errorf("got %+v, want secondary-axis move to (6,5)", d)
	}
}

func TestDecideHoldsWhenPrimaryBlockedAndNoSecondary(t *testing.T) {
	b := openBoard()
	// Enemy at (5,5), player at (5,8): dx=0, so the only useful axis is Y.
	blocker := content.NewWall(board.Coord{X: 5, Y: 6}, content.WallHealth, board.TerrainFloor)
	b.SetOccupant(blocker.At, blocker)

	d := Decide(b, board.Coord{X: 5, Y: 5}, board.Coord{X: 5, Y: 8})
	if d.Action != ActionHold {
		t.Errorf("got %+v, want hold (secondary axis is a no-op when dx=0)", d)
	}
}

func TestDecideHoldsWhenBothAxesBlocked(t *testing.T) {
	b := openBoard()
	for _, at := range []board.Coord{{X: 5, Y: 6}, {X: 6, Y: 5}} {
		w := content.NewWall(at, content.WallHealth, board.TerrainFloor)
		b.SetOccupant(at, w)
	}
	d := Decide(b, board.Coord{X: 5, Y: 5}, board.Coord{X: 8, Y: 8})
	if d.Action != ActionHold {
		t.Errorf("got %+v, want hold", d)
	}
}

func TestDecideAnyOccupantBlocks(t *testing.T) {
	b := openBoard()
	// Food blocks movement just like a wall does.
	f := content.NewFood(board.Coord{X: 5, Y: 6}, content.NutritionRation)
	b.SetOccupant(f.At, f)

	d := Decide(b, board.Coord{X: 5, Y: 5}, board.Coord{X: 6, Y: 8})
	if d.Action != ActionMove || (d.Dest != board.Coord{X: 6, Y: 5}) {
		t.Errorf("got %+v, want secondary-axis move to (6,5)", d)
	}
}

func TestDecideIsDeterministic(t *testing.T) {
	b := openBoard()
	own, player := board.Coord{X: 3, Y: 3}, board.Coord{X: 9, Y: 7}
	first := Decide(b, own, player)
	for i := 0; i < 10; i++ {
		if d := Decide(b, own, player); d != first {
			t.Fatalf("decision changed between calls: %+v vs %+v", d, first)
		}
	}
}

func TestControllerMovesEnemyOnTick(t *testing.T) {
	b := openBoard()
	e := content.NewEnemy(board.Coord{X: 2, Y: 2}, content.EnemyHealth)
	b.SetOccupant(e.At, e)

	sched := turn.NewScheduler()
	player := board.Coord{X: 2, Y: 6}
	ctrl := NewController(b, e, func() board.Coord { return player }, func(*content.Enemy) {
		t.Error("unexpected melee hit")
	})
	ctrl.Attach(sched)

	sched.Tick()
	if (e.At != board.Coord{X: 2, Y: 3}) {
		t.Fatalf("enemy at %v after tick, want (2,3)", e.At)
	}
	if b.Occupant(board.Coord{X: 2, Y: 2}) != nil {
		t.Error("old cell should be cleared")
	}
	if b.Occupant(board.Coord{X: 2, Y: 3}) != e {
		t.Error("new cell should hold the enemy")
	}
}

func TestControllerSignalsMeleeWithoutMoving(t *testing.T) {
	b := openBoard()
	e := content.NewEnemy(board.Coord{X: 5, Y: 5}, content.EnemyHealth)
	b.SetOccupant(e.At, e)

	sched := turn.NewScheduler()
	hits := 0
	ctrl := NewController(b, e, func() board.Coord { return board.Coord{X: 6, Y: 5} }, func(*content.Enemy) { hits++ })
	ctrl.Attach(sched)

	sched.Tick()
	if hits != 1 {
		t.Errorf("melee hits = %d, want 1", hits)
	}
	if (e.At != board.Coord{X: 5, Y: 5}) {
		t.Errorf("attacking enemy moved to %v", e.At)
	}
}

func TestLiveStateWithinOneTick(t *testing.T) {
	// Two enemies in column 2, both chasing a player further up. The first
	// subscriber vacates (2,3); the second, evaluated against the mutated
	// board, moves into it.
	b := openBoard()
	front := content.NewEnemy(board.Coord{X: 2, Y: 3}, content.EnemyHealth)
	back := content.NewEnemy(board.Coord{X: 2, Y: 2}, content.EnemyHealth)
	b.SetOccupant(front.At, front)
	b.SetOccupant(back.At, back)

	sched := turn.NewScheduler()
	player := board.Coord{X: 2, Y: 8}
	noHit := func(*content.Enemy) { t.Error("unexpected melee hit") }
	NewController(b, front, func() board.Coord { return player }, noHit).Attach(sched)
	NewController(b, back, func() board.Coord { return player }, noHit).Attach(sched)

	sched.Tick()
	if (front.At != board.Coord{X: 2, Y: 4}) {
		t.Errorf("front enemy at %v, want (2,4)", front.At)
	}
	if (back.At != board.Coord{X: 2, Y: 3}) {
		t.Errorf("back enemy at %v, want (2,3) — it should see the vacated cell", back.At)
	}
}

func TestStaleControllerTickIsNoOp(t *testing.T) {
	b := openBoard()
	e := content.NewEnemy(board.Coord{X: 4, Y: 4}, content.EnemyHealth)
	b.SetOccupant(e.At, e)

	sched := turn.NewScheduler()
	ctrl := NewController(b, e, func() board.Coord { return board.Coord{X: 8, Y: 8} }, nil)
	ctrl.Attach(sched)

	// Destroy the enemy without detaching the controller — the defensive
	// check must turn the next tick into a no-op instead of a crash.
	e.Health = 0
	b.ClearOccupant(e.At)

	sched.Tick()
	if b.Occupant(board.Coord{X: 4, Y: 4}) != nil || b.Occupant(board.Coord{X: 5, Y: 4}) != nil {
		t.Error("destroyed enemy acted on tick")
	}
}

func TestDetachStopsActing(t *testing.T) {
	b := openBoard()
	e := content.NewEnemy(board.Coord{X: 4, Y: 4}, content.EnemyHealth)
	b.SetOccupant(e.At, e)

	sched := turn.NewScheduler()
	ctrl := NewController(b, e, func() board.Coord { return board.Coord{X: 8, Y: 8} }, nil)
	ctrl.Attach(sched)
	ctrl.Detach()

	sched.Tick()
	if (e.At != board.Coord{X: 4, Y: 4}) {
		t.Errorf("detached enemy moved to %v", e.At)
	}
}
