package game

import (
	"fmt"
	"math/rand"
	"time"

	"emoji-scavenger/assets"
	"emoji-scavenger/internal/level"
	"emoji-scavenger/internal/render"
	"emoji-scavenger/internal/session"

	"github.com/gdamore/tcell/v2"
)

// attackPhaseDelay paces the two phases of a melee swing. Input is ignored
// for the whole window (the session holds the attack lock).
const attackPhaseDelay = 120 * time.Millisecond

// Game is the top-level orchestrator: it owns the screen, the renderer, and
// one session per run.
type Game struct {
	screen    tcell.Screen
	renderer  *render.Renderer
	sess      *session.Session
	rng       *rand.Rand
	messages  []string
	lastPhase int
}

// New creates a Game on a freshly initialized local terminal screen.
func New() (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen creates a Game on an already initialized screen (used by the
// SSH server, which builds one screen per connection).
func NewWithScreen(screen tcell.Screen) *Game {
	return &Game{
		screen: screen,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run is the main loop. Supports consecutive runs via Try Again.
func (g *Game) Run() {
	defer g.screen.Fini()

	for {
		g.startRun()
		if !g.playRun() {
			return
		}
		session.SaveRunStats(g.sess.Stats())
		if !g.showEndScreen() {
			return
		}
	}
}

// startRun resets per-run state and builds a fresh session.
func (g *Game) startRun() {
	g.messages = nil
	g.sess = session.New(g.rng)
	g.sess.OnMessage = g.addMessage
	g.sess.OnLevelAdvance = g.onLevelAdvance

	g.lastPhase = level.PhaseIndex(1)
	cfg := level.ForLevel(1)
	g.renderer = render.NewRenderer(g.screen, g.lastPhase)
	g.renderer.SetZoom(cfg.CameraZoom)

	g.addMessage("Scavenge food, break walls, find the door. Arrows or hjkl to move, '.' to wait.")
	g.phaseLore(g.lastPhase)
}

// playRun drives one run to game over. Returns false if the player quit.
func (g *Game) playRun() bool {
	for !g.sess.GameOver() {
		g.drawFrame()

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer = render.NewRenderer(g.screen, level.PhaseIndex(g.sess.Level()))
			g.renderer.SetZoom(level.ForLevel(g.sess.Level()).CameraZoom)
			continue
		case *tcell.EventKey:
			action := keyToAction(ev)
			switch action {
			case ActionQuit:
				return false
			case ActionWait:
				g.sess.Wait()
			default:
				if dir, ok := actionToDirection(action); ok {
					if g.sess.Move(dir) == session.MoveAttacked {
						g.runAttackSequence()
					}
				}
			}
		}
	}
	g.drawFrame()
	return true
}

// runAttackSequence plays out the two-phase melee lock with fixed delays.
func (g *Game) runAttackSequence() {
	for g.sess.Attacking() {
		g.drawFrame()
		time.Sleep(attackPhaseDelay)
		g.sess.AdvanceAttack()
	}
	g.drawFrame()
}

func (g *Game) onLevelAdvance(newLevel int) {
	phase := level.PhaseIndex(newLevel)
	cfg := level.ForLevel(newLevel)
	g.renderer.SetPhase(phase)
	g.renderer.SetZoom(cfg.CameraZoom)
	if phase != g.lastPhase {
		g.lastPhase = phase
		if phase < len(assets.PhaseNames) {
			g.addMessage(fmt.Sprintf("You enter %s.", assets.PhaseNames[phase]))
		}
		g.phaseLore(phase)
	}
}

func (g *Game) phaseLore(phase int) {
	if phase < 0 || phase >= len(assets.PhaseLore) {
		return
	}
	lore := assets.PhaseLore[phase]
	if len(lore) > 0 {
		g.addMessage(lore[g.rng.Intn(len(lore))])
	}
}

func (g *Game) drawFrame() {
	b := g.sess.Board()
	p := g.sess.PlayerPos()
	g.renderer.CenterOn(b, p.X, p.Y)
	g.renderer.DrawFrame(b, p)
	g.renderer.DrawHUD(g.sess.Food(), g.sess.Level(), g.sess.Turn(), g.messages)
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > 50 {
		g.messages = g.messages[len(g.messages)-50:]
	}
}

// putText writes a string to the screen at (x, y), one column per rune.
func (g *Game) putText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		g.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// showEndScreen renders the run summary and returns true if the player
// wants to try again, false to quit.
func (g *Game) showEndScreen() bool {
	stats := g.sess.Stats()

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gold := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	dim := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	for {
		g.screen.Clear()
		sw, _ := g.screen.Size()

		sep := func(y int) {
			for x := 0; x < sw; x++ {
				g.screen.SetContent(x, y, '─', nil, gray)
			}
		}
		// label prints a left-aligned key at column 2 and value at column 22.
		label := func(y int, l, v string) {
			g.putText(2, y, l, dim)
			g.putText(22, y, v, white)
		}

		y := 1
		sep(y)
		y += 2

		g.putText(2, y, "THE CITY KEEPS WHAT IT TAKES", gold)
		badge := "[STARVED]"
		if stats.CauseOfDeath != "starvation" && stats.CauseOfDeath != "" {
			badge = "[LOST]"
		}
		g.putText(sw-len(badge)-1, y, badge, red)
		y += 2

		label(y, "Levels Survived:", fmt.Sprintf("%d", stats.LevelsSurvived))
		y++
		label(y, "Turns Played:", fmt.Sprintf("%d", stats.TurnsPlayed))
		y++
		label(y, "Food Scavenged:", fmt.Sprintf("%d", stats.FoodEaten))
		y += 2

		label(y, "Walls Broken:", fmt.Sprintf("%d", stats.WallsBroken))
		y++
		label(y, "Hunters Slain:", fmt.Sprintf("%d", stats.EnemiesSlain))
		y++
		label(y, "Traps Sprung:", fmt.Sprintf("%d", stats.TrapsSprung))
		y += 2

		if stats.CauseOfDeath != "" {
			label(y, "Done In By:", stats.CauseOfDeath)
			y += 2
		}

		sep(y)
		y += 2

		g.putText(2, y, "[R] Try Again", green)
		g.putText(18, y, "[Q] Quit", red)

		g.screen.Show()

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
			continue // redraw on resize
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'r', 'R':
					return true
				case 'q', 'Q':
					return false
				}
			case tcell.KeyEscape:
				return false
			}
		}
	}
}
