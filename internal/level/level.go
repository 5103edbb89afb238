// Package level holds the difficulty curve: a small table of per-phase
// generation parameters, selected by a step function of the level number.
package level

// Config is the immutable generation recipe for one difficulty phase.
type Config struct {
	Width, Height int

	MinEnemies, MaxEnemies int
	// EnemyPositionFixed pins a single enemy to (Width-3, Height-3) instead
	// of a random pool draw. Only meaningful when the drawn count is 1.
	EnemyPositionFixed bool

	// Food and wall counts scale with interior area: the base count is
	// max(floor, interiorArea/divisor). Divisors are always > 0.
	FoodDivisor, MinFood int
	WallDivisor, MinWalls int

	MinTraps, MaxTraps int

	// CameraZoom is a presentation hint consumed by the renderer only.
	CameraZoom float64
}

// phase pairs a config with the first level it applies to.
type phase struct {
	fromLevel int
	cfg       Config
}

// phases is ordered by fromLevel ascending; ForLevel picks the last entry
// whose fromLevel is ≤ the requested level.
var phases = []phase{
	{1, Config{Width: 8, Height: 8,
		FoodDivisor: 8, MinFood: 4, WallDivisor: 20, MinWalls: 2,
		CameraZoom: 5}},
	{3, Config{Width: 10, Height: 10,
		MinEnemies: 1, MaxEnemies: 1, EnemyPositionFixed: true,
		FoodDivisor: 12, MinFood: 3, WallDivisor: 15, MinWalls: 4,
		CameraZoom: 6}},
	{6, Config{Width: 12, Height: 12,
		MinEnemies: 2, MaxEnemies: 4,
		FoodDivisor: 16, MinFood: 2, WallDivisor: 12, MinWalls: 6,
		MinTraps: 2, MaxTraps: 4,
		CameraZoom: 7}},
	{9, Config{Width: 14, Height: 14,
		MinEnemies: 3, MaxEnemies: 6,
		FoodDivisor: 20, MinFood: 3, WallDivisor: 10, MinWalls: 8,
		MinTraps: 3, MaxTraps: 5,
		CameraZoom: 8}},
	{13, Config{Width: 16, Height: 16,
		MinEnemies: 5, MaxEnemies: 9,
		FoodDivisor: 20, MinFood: 3, WallDivisor: 10, MinWalls: 8,
		MinTraps: 5, MaxTraps: 8,
		CameraZoom: 9}},
}

// ForLevel returns the generation config for the given level number.
// Levels below 1 are clamped to the first phase.
func ForLevel(n int) Config {
	return phases[PhaseIndex(n)].cfg
}

// PhaseIndex returns the 0-based difficulty phase for the given level
// number. Presentation layers use it to pick tile themes.
func PhaseIndex(n int) int {
	idx := 0
	for i, p := range phases {
		if n >= p.fromLevel {
			idx = i
		}
	}
	return idx
}

// PhaseCount returns the number of difficulty phases.
func PhaseCount() int { return len(phases) }

// InteriorArea returns the number of interior cells for this config.
func (c Config) InteriorArea() int {
	return (c.Width - 2) * (c.Height - 2)
}
