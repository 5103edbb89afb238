// Package content defines the cell-content variants that can occupy a board
// cell: food, destructible walls, traps, the level exit, and enemies. Each
// instance is owned by exactly one cell; the board reaches it through the
// board.Occupant interface.
package content

import "emoji-scavenger/internal/board"

// Kind tags the variant of a content instance.
type Kind uint8

const (
	KindFood Kind = iota
	KindWall
	KindTrap
	KindExit
	KindEnemy
)

// String returns a lower-case name suitable for messages.
func (k Kind) String() string {
	switch k {
	case KindFood:
		return "food"
	case KindWall:
		return "wall"
	case KindTrap:
		return "trap"
	case KindExit:
		return "exit"
	case KindEnemy:
		return "enemy"
	}
	return "unknown"
}

// Content is the full capability set of a cell occupant.
type Content interface {
	board.Occupant
	Kind() Kind
}

// Attackable is the capability shared by walls and enemies: they absorb hits
// and report when they are destroyed.
type Attackable interface {
	Content
	Hit(damage int) (destroyed bool)
}

// Baseline stats for generated content.
const (
	WallHealth       = 4
	EnemyHealth      = 3
	TrapDamage       = 5
	EnemyMeleeDamage = 4
	NutritionRation  = 8  // common find
	NutritionCache   = 15 // rare find
)

// Food restores the scavenger's food points when entered, then disappears.
type Food struct {
	At        board.Coord
	Nutrition int
}

func NewFood(at board.Coord, nutrition int) *Food {
	return &Food{At: at, Nutrition: nutrition}
}

func (f *Food) Cell() board.Coord { return f.At }
func (f *Food) Kind() Kind        { return KindFood }

// Wall is destructible cover. It remembers the terrain it was placed over so
// the ground can be restored when it breaks.
type Wall struct {
	At        board.Coord
	MaxHealth int
	Health    int
	Under     board.Terrain
	Damaged   bool // set once, at half health
}

func NewWall(at board.Coord, health int, under board.Terrain) *Wall {
	return &Wall{At: at, MaxHealth: health, Health: health, Under: under}
}

func (w *Wall) Cell() board.Coord { return w.At }
func (w *Wall) Kind() Kind        { return KindWall }

// Hit applies damage and reports whether the wall is destroyed. The Damaged
// flag flips exactly once, when health first reaches half of max (integer
// floor).
func (w *Wall) Hit(damage int) bool {
	w.Health -= damage
	if !w.Damaged && w.Health <= w.MaxHealth/2 {
		w.Damaged = true
	}
	return w.Health <= 0
}

// Trap damages whoever steps onto it, then disappears.
type Trap struct {
	At     board.Coord
	Damage int
}

func NewTrap(at board.Coord, damage int) *Trap {
	return &Trap{At: at, Damage: damage}
}

func (t *Trap) Cell() board.Coord { return t.At }
func (t *Trap) Kind() Kind        { return KindTrap }

// Exit advances the scavenger to the next level when entered.
type Exit struct {
	At board.Coord
}

func NewExit(at board.Coord) *Exit {
	return &Exit{At: at}
}

func (e *Exit) Cell() board.Coord { return e.At }
func (e *Exit) Kind() Kind        { return KindExit }

// Enemy pursues the scavenger. Its coordinate is mutated only by its own
// movement (see the pursuit package).
type Enemy struct {
	At        board.Coord
	MaxHealth int
	Health    int
}

func NewEnemy(at board.Coord, health int) *Enemy {
	return &Enemy{At: at, MaxHealth: health, Health: health}
}

func (e *Enemy) Cell() board.Coord { return e.At }
func (e *Enemy) Kind() Kind        { return KindEnemy }

// Hit applies damage and reports whether the enemy is destroyed.
func (e *Enemy) Hit(damage int) bool {
	e.Health -= damage
	return e.Health <= 0
}
