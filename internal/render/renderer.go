package render

import (
	"emoji-scavenger/assets"
	"emoji-scavenger/internal/board"
	"emoji-scavenger/internal/content"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Renderer draws the board and its contents onto a tcell screen. The board's
// origin is bottom-left, so rows are flipped before the camera translation.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	phase  int // difficulty phase for theme selection
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, phase int) *Renderer {
	w, h := screen.Size()
	// Reserve bottom 5 rows for the HUD.
	viewH := h - 5
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, viewH),
		phase:  phase,
	}
}

// SetPhase updates the tile theme index.
func (r *Renderer) SetPhase(phase int) { r.phase = phase }

// SetZoom forwards the level config's lens hint to the camera.
func (r *Renderer) SetZoom(z float64) { r.camera.SetZoom(z) }

// CenterOn recenters the camera on board position (x, y).
func (r *Renderer) CenterOn(b *board.Board, x, y int) {
	r.camera.Center(x, b.Height-1-y)
}

// DrawFrame renders terrain, contents, and the player.
func (r *Renderer) DrawFrame(b *board.Board, player board.Coord) {
	r.screen.Clear()
	r.drawBoard(b)
	r.drawPlayer(b, player)
}

func (r *Renderer) theme() assets.TileTheme {
	p := r.phase
	if p < 0 || p >= len(assets.TileThemes) {
		p = 0
	}
	return assets.TileThemes[p]
}

// drawBoard renders every cell: ground first, occupant glyph on top.
func (r *Renderer) drawBoard(b *board.Board) {
	theme := r.theme()
	style := tcell.StyleDefault.Background(tcell.ColorBlack)

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := board.Coord{X: x, Y: y}
			cell, ok := b.At(c)
			if !ok {
				continue
			}
			sx, sy, onScreen := r.camera.BoardToScreen(x, b.Height-1-y)
			if !onScreen {
				continue
			}
			r.putGlyph(sx, sy, terrainGlyph(theme, cell.Terrain), style)
			if cell.Occupant != nil {
				r.putGlyph(sx, sy, occupantGlyph(cell.Occupant), style)
			}
		}
	}
}

func terrainGlyph(theme assets.TileTheme, t board.Terrain) string {
	switch t {
	case board.TerrainBorder:
		return theme.Border
	case board.TerrainRubble:
		return theme.Rubble
	default:
		return theme.Floor
	}
}

func occupantGlyph(o board.Occupant) string {
	switch c := o.(type) {
	case *content.Food:
		return assets.GlyphFood
	case *content.Wall:
		if c.Damaged {
			return assets.GlyphWallCracked
		}
		return assets.GlyphWall
	case *content.Trap:
		return assets.GlyphTrap
	case *content.Exit:
		return assets.GlyphExit
	case *content.Enemy:
		return assets.GlyphEnemy
	}
	return "?"
}

func (r *Renderer) drawPlayer(b *board.Board, player board.Coord) {
	sx, sy, onScreen := r.camera.BoardToScreen(player.X, b.Height-1-player.Y)
	if !onScreen {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
	r.putGlyph(sx, sy, assets.GlyphPlayer, style)
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen
// position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
