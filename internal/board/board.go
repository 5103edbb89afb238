package board

// Coord addresses one cell. 0-indexed, origin at the bottom-left corner.
type Coord struct {
	X, Y int
}

// Add returns the coordinate offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Terrain identifies the ground drawn under a cell's occupant.
type Terrain uint8

const (
	TerrainBorder Terrain = iota // immovable boundary
	TerrainFloor
	TerrainRubble // left behind by a placed destructible wall
)

// Occupant is implemented by every cell-content variant (food, wall, trap,
// exit, enemy). A given instance is reachable from at most one cell.
type Occupant interface {
	Cell() Coord
}

// Cell holds the passability and occupancy state of one coordinate.
type Cell struct {
	Passable bool
	Terrain  Terrain
	Occupant Occupant
}

// Board is the dense grid for one level. The board owns every occupant
// reachable through its cells.
type Board struct {
	Width, Height int
	cells         [][]Cell // indexed [y][x]
}

// New creates a Board with an impassable border and a passable, unoccupied
// interior. Width and height must both be at least 3.
func New(width, height int) *Board {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			if x == 0 || x == width-1 || y == 0 || y == height-1 {
				cells[y][x] = Cell{Passable: false, Terrain: TerrainBorder}
			} else {
				cells[y][x] = Cell{Passable: true, Terrain: TerrainFloor}
			}
		}
	}
	return &Board{Width: width, Height: height, cells: cells}
}

// InBounds reports whether c lies within the board.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// At returns a copy of the cell at c. ok is false when c is out of bounds;
// no cell is ever fabricated for an invalid coordinate.
func (b *Board) At(c Coord) (Cell, bool) {
	if !b.InBounds(c) {
		return Cell{}, false
	}
	return b.cells[c.Y][c.X], true
}

// Occupant returns the content instance at c, or nil when the cell is empty
// or c is out of bounds.
func (b *Board) Occupant(c Coord) Occupant {
	if !b.InBounds(c) {
		return nil
	}
	return b.cells[c.Y][c.X].Occupant
}

// SetOccupant binds o to the cell at c. Returns false when c is out of
// bounds. Overwriting a different live occupant is a caller bug (placement
// goes through the generator's pool, movement through explicit clears), so
// it panics rather than silently dropping an instance.
func (b *Board) SetOccupant(c Coord, o Occupant) bool {
	if !b.InBounds(c) {
		return false
	}
	cell := &b.cells[c.Y][c.X]
	if cell.Occupant != nil && cell.Occupant != o {
		panic("board: cell already occupied")
	}
	cell.Occupant = o
	return true
}

// ClearOccupant detaches any occupant from the cell at c.
func (b *Board) ClearOccupant(c Coord) bool {
	if !b.InBounds(c) {
		return false
	}
	b.cells[c.Y][c.X].Occupant = nil
	return true
}

// SetTerrain replaces the ground at c, leaving passability and occupancy
// untouched.
func (b *Board) SetTerrain(c Coord, t Terrain) bool {
	if !b.InBounds(c) {
		return false
	}
	b.cells[c.Y][c.X].Terrain = t
	return true
}

// IsPassable reports whether c is in bounds and passable terrain.
func (b *Board) IsPassable(c Coord) bool {
	if !b.InBounds(c) {
		return false
	}
	return b.cells[c.Y][c.X].Passable
}

// IsFree reports whether c is passable and has no occupant — i.e. an entity
// may step onto it without any interaction.
func (b *Board) IsFree(c Coord) bool {
	if !b.IsPassable(c) {
		return false
	}
	return b.cells[c.Y][c.X].Occupant == nil
}

// Interior reports whether c is in bounds and not on the border.
func (b *Board) Interior(c Coord) bool {
	return c.X >= 1 && c.X < b.Width-1 && c.Y >= 1 && c.Y < b.Height-1
}

// ClearAllContents detaches every occupant and restores floor terrain on
// interior cells. Used between levels so no content leaks into the next one.
func (b *Board) ClearAllContents() {
	for y := 1; y < b.Height-1; y++ {
		for x := 1; x < b.Width-1; x++ {
			b.cells[y][x].Occupant = nil
			b.cells[y][x].Terrain = TerrainFloor
		}
	}
}

// CellToWorld maps a coordinate to the world-space center of its cell, one
// world unit per cell. Presentation layers apply their own scale on top.
func (b *Board) CellToWorld(c Coord) (float64, float64) {
	return float64(c.X) + 0.5, float64(c.Y) + 0.5
}
