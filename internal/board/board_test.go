package board

import "testing"

// marker is a minimal Occupant for board tests.
type marker struct {
	at Coord
}

func (m *marker) Cell() Coord { return m.at }

func TestInBounds(t *testing.T) {
	b := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
		{0, -1, false},
	}
	for _, c := range cases {
		got := b.InBounds(Coord{c.x, c.y})
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestAtOutOfBoundsReportsMiss(t *testing.T) {
	b := New(5, 5)
	if _, ok := b.At(Coord{5, 2}); ok {
		t.Error("At out of bounds should report ok=false")
	}
	if _, ok := b.At(Coord{2, -1}); ok {
		t.Error("At out of bounds should report ok=false")
	}
	if _, ok := b.At(Coord{2, 2}); !ok {
		t.Error("At in bounds should report ok=true")
	}
}

func TestPerimeterImpassableInteriorPassable(t *testing.T) {
	b := New(7, 5)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := Coord{x, y}
			onEdge := x == 0 || x == b.Width-1 || y == 0 || y == b.Height-1
			if onEdge && b.IsPassable(c) {
				t.Errorf("perimeter cell %v should be impassable", c)
			}
			if !onEdge && !b.IsPassable(c) {
				t.Errorf("interior cell %v should be passable", c)
			}
		}
	}
}

func TestOccupantSetAndClear(t *testing.T) {
	b := New(6, 6)
	m := &marker{at: Coord{2, 3}}

	if !b.SetOccupant(m.at, m) {
		t.Fatal("SetOccupant in bounds should succeed")
	}
	if b.Occupant(m.at) != m {
		t.Error("Occupant should return the set instance")
	}
	if b.IsFree(m.at) {
		t.Error("occupied cell should not be free")
	}

	if !b.ClearOccupant(m.at) {
		t.Fatal("ClearOccupant in bounds should succeed")
	}
	if b.Occupant(m.at) != nil {
		t.Error("Occupant should be nil after clear")
	}
	if !b.IsFree(m.at) {
		t.Error("cleared cell should be free")
	}
}

func TestOccupantOutOfBounds(t *testing.T) {
	b := New(5, 5)
	m := &marker{at: Coord{9, 9}}
	if b.SetOccupant(m.at, m) {
		t.Error("SetOccupant out of bounds should return false")
	}
	if b.Occupant(m.at) != nil {
		t.Error("Occupant out of bounds should be nil")
	}
	if b.ClearOccupant(m.at) {
		t.Error("ClearOccupant out of bounds should return false")
	}
}

func TestSetOccupantDoubleOccupancyPanics(t *testing.T) {
	b := New(5, 5)
	at := Coord{2, 2}
	b.SetOccupant(at, &marker{at: at})

	defer func() {
		if recover() == nil {
			t.Error("overwriting a live occupant should panic")
		}
	}()
	b.SetOccupant(at, &marker{at: at})
}

func TestClearAllContents(t *testing.T) {
	b := New(6, 6)
	for _, at := range []Coord{{1, 1}, {2, 3}, {4, 4}} {
		b.SetOccupant(at, &marker{at: at})
	}
	b.SetTerrain(Coord{2, 3}, TerrainRubble)

	b.ClearAllContents()

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := Coord{x, y}
			if b.Occupant(c) != nil {
				t.Errorf("cell %v still occupied after ClearAllContents", c)
			}
		}
	}
	if cell, _ := b.At(Coord{2, 3}); cell.Terrain != TerrainFloor {
		t.Error("interior terrain should reset to floor")
	}
	if cell, _ := b.At(Coord{0, 0}); cell.Terrain != TerrainBorder {
		t.Error("border terrain should be untouched")
	}
}

func TestCellToWorld(t *testing.T) {
	b := New(8, 8)
	x, y := b.CellToWorld(Coord{3, 5})
	if x != 3.5 || y != 5.5 {
		t.Errorf("CellToWorld(3,5) = (%v,%v), want (3.5, 5.5)", x, y)
	}
}
