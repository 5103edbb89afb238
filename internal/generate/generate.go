// Package generate populates a freshly sized board for one level. All
// placement draws come from a single shrinking pool of interior coordinates,
// so no two items can ever share a cell and nothing lands on the border or
// the player spawn.
package generate

import (
	"math/rand"

	"emoji-scavenger/internal/board"
	"emoji-scavenger/internal/content"
	"emoji-scavenger/internal/level"
)

// PlayerSpawn is reserved on every board; generated content never occupies it.
var PlayerSpawn = board.Coord{X: 1, Y: 1}

// Result holds the board and everything placed on it.
type Result struct {
	Board   *board.Board
	Exit    *content.Exit
	Enemies []*content.Enemy
	Walls   []*content.Wall
	Food    []*content.Food
	Traps   []*content.Trap
}

// Level sizes a new board for level n and populates it. The rand source is
// the only source of variation: the same seed reproduces the same board.
func Level(n int, rng *rand.Rand) *Result {
	cfg := level.ForLevel(n)
	return Populate(board.New(cfg.Width, cfg.Height), cfg, rng)
}

// Populate fills b according to cfg, in fixed order: exit, enemies, walls,
// food, traps. Later steps draw from the pool left by earlier ones. If the
// pool runs dry mid-step the remaining items of that kind are silently
// skipped — a fail-safe for tiny boards, not an error. Callers can compare
// the Result slice lengths against cfg to observe it.
func Populate(b *board.Board, cfg level.Config, rng *rand.Rand) *Result {
	res := &Result{Board: b}
	p := newPool(b)

	// Exit sits opposite the player spawn.
	exitAt := board.Coord{X: b.Width - 2, Y: b.Height - 2}
	p.remove(exitAt)
	res.Exit = content.NewExit(exitAt)
	b.SetOccupant(exitAt, res.Exit)

	// Enemies.
	enemyCount := intBetween(rng, cfg.MinEnemies, cfg.MaxEnemies)
	if cfg.EnemyPositionFixed && enemyCount == 1 {
		at := board.Coord{X: b.Width - 3, Y: b.Height - 3}
		p.remove(at)
		e := content.NewEnemy(at, content.EnemyHealth)
		res.Enemies = append(res.Enemies, e)
		b.SetOccupant(at, e)
	} else {
		for i := 0; i < enemyCount; i++ {
			at, ok := p.take(rng)
			if !ok {
				break
			}
			e := content.NewEnemy(at, content.EnemyHealth)
			res.Enemies = append(res.Enemies, e)
			b.SetOccupant(at, e)
		}
	}

	// Destructible walls. A wall remembers the ground it covers and leaves
	// rubble terrain while it stands.
	area := cfg.InteriorArea()
	wallBase := max(cfg.MinWalls, area/cfg.WallDivisor)
	for i, n := 0, wallBase+rng.Intn(3); i < n; i++ {
		at, ok := p.take(rng)
		if !ok {
			break
		}
		cell, _ := b.At(at)
		w := content.NewWall(at, content.WallHealth, cell.Terrain)
		b.SetTerrain(at, board.TerrainRubble)
		res.Walls = append(res.Walls, w)
		b.SetOccupant(at, w)
	}

	// Food.
	foodBase := max(cfg.MinFood, area/cfg.FoodDivisor)
	for i, n := 0, foodBase+rng.Intn(2); i < n; i++ {
		at, ok := p.take(rng)
		if !ok {
			break
		}
		nutrition := content.NutritionRation
		if rng.Intn(4) == 0 {
			nutrition = content.NutritionCache
		}
		f := content.NewFood(at, nutrition)
		res.Food = append(res.Food, f)
		b.SetOccupant(at, f)
	}

	// Traps.
	for i, n := 0, intBetween(rng, cfg.MinTraps, cfg.MaxTraps); i < n; i++ {
		at, ok := p.take(rng)
		if !ok {
			break
		}
		t := content.NewTrap(at, content.TrapDamage)
		res.Traps = append(res.Traps, t)
		b.SetOccupant(at, t)
	}

	return res
}

// pool is the working set of unassigned interior coordinates.
type pool struct {
	coords []board.Coord
}

// newPool collects every interior coordinate except the player spawn, in
// row-major order.
func newPool(b *board.Board) *pool {
	p := &pool{coords: make([]board.Coord, 0, (b.Width-2)*(b.Height-2)-1)}
	for y := 1; y < b.Height-1; y++ {
		for x := 1; x < b.Width-1; x++ {
			c := board.Coord{X: x, Y: y}
			if c == PlayerSpawn {
				continue
			}
			p.coords = append(p.coords, c)
		}
	}
	return p
}

// take draws one coordinate uniformly without replacement.
func (p *pool) take(rng *rand.Rand) (board.Coord, bool) {
	if len(p.coords) == 0 {
		return board.Coord{}, false
	}
	i := rng.Intn(len(p.coords))
	c := p.coords[i]
	p.coords[i] = p.coords[len(p.coords)-1]
	p.coords = p.coords[:len(p.coords)-1]
	return c, true
}

// remove deletes a specific coordinate from the pool, if present.
func (p *pool) remove(c board.Coord) bool {
	for i, pc := range p.coords {
		if pc == c {
			p.coords[i] = p.coords[len(p.coords)-1]
			p.coords = p.coords[:len(p.coords)-1]
			return true
		}
	}
	return false
}

// intBetween draws uniformly from [lo, hi] inclusive.
func intBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
