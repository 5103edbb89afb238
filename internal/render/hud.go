package render

import (
	"fmt"

	"emoji-scavenger/assets"
	"emoji-scavenger/internal/level"

	"github.com/gdamore/tcell/v2"
)

// DrawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) DrawHUD(food, lvl, turn int, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - 5

	r.drawHLine(hudY, tcell.ColorGray)

	foodStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	if food <= 5 {
		foodStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	}

	phase := level.PhaseIndex(lvl)
	name := ""
	if phase >= 0 && phase < len(assets.PhaseNames) {
		name = assets.PhaseNames[phase]
	}
	status := fmt.Sprintf("Food: %d  Level: %d  Turn: %d  %s", food, lvl, turn, name)
	r.drawText(0, hudY+1, status, foodStyle)

	// Message log (last 3 messages).
	start := len(messages) - 3
	if start < 0 {
		start = 0
	}
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
