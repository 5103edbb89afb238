package assets

// Emoji constants used as entity glyphs.
const (
	GlyphPlayer      = "🎒"
	GlyphEnemy       = "🧟"
	GlyphFood        = "🥫"
	GlyphWall        = "🧱"
	GlyphWallCracked = "🪨"
	GlyphTrap        = "🕳️"
	GlyphExit        = "🚪"
)

// TileTheme holds the ground glyphs for one difficulty phase.
type TileTheme struct {
	Border string
	Floor  string
	Rubble string
}

// TileThemes is indexed by difficulty phase (level.PhaseIndex).
var TileThemes = []TileTheme{
	{Border: "🌲", Floor: "🟫", Rubble: "🟤"}, // overgrown lots
	{Border: "🏚️", Floor: "⬜", Rubble: "🟤"}, // collapsed suburbs
	{Border: "🏢", Floor: "⬛", Rubble: "🟤"}, // downtown ruins
	{Border: "🚇", Floor: "🟪", Rubble: "🟤"}, // metro tunnels
	{Border: "☢️", Floor: "🟥", Rubble: "🟤"}, // the hot zone
}

// PhaseNames maps difficulty phase to its display name.
var PhaseNames = []string{
	"the Overgrown Lots",
	"the Collapsed Suburbs",
	"the Downtown Ruins",
	"the Metro Tunnels",
	"the Hot Zone",
}

// PhaseLore holds scavenger-log lines shown when a phase is first entered.
var PhaseLore = [][]string{
	{
		"Grass through asphalt. Whatever happened here, it happened years ago.",
		"Someone stacked cans on a porch rail. They never came back for them.",
	},
	{
		"Every third house is a crater. The rest just lean and wait.",
		"Fresh drag marks in the dust. You are not the only scavenger.",
	},
	{
		"The towers still stand. The things inside them still move.",
		"A traffic light blinks amber at nobody, forever.",
	},
	{
		"Down here the dark has a smell. Keep counting your steps.",
		"The rails hum sometimes. There are no trains.",
	},
	{
		"The dosimeter in your pack clicks like rain on a tin roof.",
		"Past here, even the hunters go hungry. Almost there.",
	},
}
