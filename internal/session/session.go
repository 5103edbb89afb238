// Package session tracks one run: the current level, the depleting food
// resource, the player's position, and the wiring between the board, the
// turn scheduler, and the enemy pursuit controllers. It is presentation-free;
// the UI layers consume it through outcomes and callbacks.
package session

import (
	"fmt"
	"math/rand"

	"emoji-scavenger/internal/board"
	"emoji-scavenger/internal/content"
	"emoji-scavenger/internal/generate"
	"emoji-scavenger/internal/pursuit"
	"emoji-scavenger/internal/turn"
)

const (
	// StartingFood is the resource a fresh run begins with.
	StartingFood = 20
	// foodPerTurn is drained on every tick.
	foodPerTurn = 1
	// playerHitDamage is dealt per melee swing against walls and enemies.
	playerHitDamage = 1
)

// Direction is a single-step player move.
type Direction uint8

const (
	North Direction = iota // +Y, origin bottom-left
	South
	East
	West
)

// Delta returns the coordinate offset of the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// MoveOutcome describes what one Move call did.
type MoveOutcome uint8

const (
	MoveMoved    MoveOutcome = iota // position changed (includes eating and exiting)
	MoveBlocked                     // border or impassable terrain
	MoveAttacked                    // swing started against a wall or enemy
	MoveHazard                      // stepped onto a trap
	MoveIgnored                     // attack lock held or run already over
)

// RunStats records what happened during one run.
type RunStats struct {
	LevelsSurvived int    `json:"levels_survived"`
	TurnsPlayed    int    `json:"turns_played"`
	FoodEaten      int    `json:"food_eaten"`
	WallsBroken    int    `json:"walls_broken"`
	EnemiesSlain   int    `json:"enemies_slain"`
	TrapsSprung    int    `json:"traps_sprung"`
	CauseOfDeath   string `json:"cause_of_death"`
}

// attackState is the explicit two-phase melee lock: phase 1 resolves the hit
// (and moves the player if the target broke), phase 2 releases the lock and
// runs the turn. Player input is ignored while it is non-nil.
type attackState struct {
	target content.Attackable
	dest   board.Coord
	phase  int
}

// Session is the progress controller for one run.
type Session struct {
	rng   *rand.Rand
	sched *turn.Scheduler
	brd   *board.Board

	player   board.Coord
	level    int
	food     int
	attack   *attackState
	gameOver bool
	stats    RunStats

	controllers map[*content.Enemy]*pursuit.Controller

	// Optional hooks for the presentation layer.
	OnMessage      func(string)
	OnTurn         func(turn int)
	OnLevelAdvance func(newLevel int)
	OnGameOver     func(levelsSurvived int)
}

// New starts a run at level 1 with the standard food reserve. The rand
// source drives all generation.
func New(rng *rand.Rand) *Session {
	s := &Session{
		rng:         rng,
		sched:       turn.NewScheduler(),
		level:       1,
		food:        StartingFood,
		controllers: make(map[*content.Enemy]*pursuit.Controller),
	}
	// The session drains food first on every tick; enemy controllers are
	// subscribed after it, per level.
	s.sched.Subscribe(s.onTick)
	s.startLevel(1)
	return s
}

// Board returns the live board for the current level.
func (s *Session) Board() *board.Board { return s.brd }

// PlayerPos returns the player's current coordinate.
func (s *Session) PlayerPos() board.Coord { return s.player }

// Food returns the remaining food points.
func (s *Session) Food() int { return s.food }

// Level returns the current level number.
func (s *Session) Level() int { return s.level }

// Turn returns the number of completed turns.
func (s *Session) Turn() int { return s.sched.Turn() }

// GameOver reports whether the run has ended.
func (s *Session) GameOver() bool { return s.gameOver }

// Stats returns the run statistics gathered so far.
func (s *Session) Stats() RunStats { return s.stats }

// Attacking reports whether the melee lock is held; Move calls are ignored
// while it is.
func (s *Session) Attacking() bool { return s.attack != nil }

// Move handles one player input event. At most one turn is advanced per
// call; a blocked move costs nothing and an attack defers its turn to the
// end of the two-phase swing.
func (s *Session) Move(dir Direction) MoveOutcome {
	if s.gameOver || s.attack != nil {
		return MoveIgnored
	}

	dx, dy := dir.Delta()
	dest := s.player.Add(dx, dy)
	if !s.brd.IsPassable(dest) {
		return MoveBlocked
	}

	switch o := s.brd.Occupant(dest).(type) {
	case nil:
		s.player = dest
		s.runTurn()
		return MoveMoved

	case *content.Food:
		s.brd.ClearOccupant(dest)
		s.changeFood(o.Nutrition, "")
		s.stats.FoodEaten += o.Nutrition
		s.say("You scavenge food. (+%d)", o.Nutrition)
		s.player = dest
		s.runTurn()
		return MoveMoved

	case *content.Trap:
		s.brd.ClearOccupant(dest)
		s.changeFood(-o.Damage, "a trap")
		s.stats.TrapsSprung++
		s.say("A trap snaps shut! (-%d food)", o.Damage)
		s.player = dest
		s.runTurn()
		return MoveHazard

	case *content.Exit:
		next := s.level + 1
		s.startLevel(next)
		s.say("You slip through to level %d.", next)
		if s.OnLevelAdvance != nil {
			s.OnLevelAdvance(next)
		}
		return MoveMoved

	case *content.Wall:
		s.beginAttack(o, dest)
		return MoveAttacked

	case *content.Enemy:
		s.beginAttack(o, dest)
		return MoveAttacked
	}
	return MoveBlocked
}

// Wait passes the turn without moving.
func (s *Session) Wait() {
	if s.gameOver || s.attack != nil {
		return
	}
	s.runTurn()
}

// ChangeResource applies an external food delta (abilities, scripted events).
func (s *Session) ChangeResource(delta int) {
	s.changeFood(delta, "")
	s.checkGameOver()
}

// AdvanceAttack runs the next phase of an in-progress melee swing and
// reports whether the sequence has finished. The game loop calls it on a
// fixed delay while Attacking() is true; the delays model swing timing.
func (s *Session) AdvanceAttack() bool {
	a := s.attack
	if a == nil {
		return true
	}
	if a.phase == 0 {
		a.phase = 1
		s.resolveHit(a)
		return false
	}
	s.attack = nil
	s.runTurn()
	return true
}

// resolveHit applies one swing to the locked target. If the target breaks
// the player steps into the freed cell.
func (s *Session) resolveHit(a *attackState) {
	switch t := a.target.(type) {
	case *content.Wall:
		wasDamaged := t.Damaged
		if t.Hit(playerHitDamage) {
			s.brd.ClearOccupant(a.dest)
			s.brd.SetTerrain(a.dest, t.Under)
			s.stats.WallsBroken++
			s.say("The wall crumbles.")
			s.player = a.dest
		} else if t.Damaged && !wasDamaged {
			s.say("The wall cracks.")
		}
	case *content.Enemy:
		if t.Hit(playerHitDamage) {
			s.brd.ClearOccupant(a.dest)
			s.detachEnemy(t)
			s.stats.EnemiesSlain++
			s.say("The hunter collapses.")
			s.player = a.dest
		} else {
			s.say("You strike the hunter.")
		}
	}
}

func (s *Session) beginAttack(target content.Attackable, dest board.Coord) {
	s.attack = &attackState{target: target, dest: dest}
	s.say("You swing at the %s.", target.Kind())
}

// startLevel tears down the current board and builds the one for level n.
// Food and turn counters carry over.
func (s *Session) startLevel(n int) {
	s.level = n
	for _, c := range s.controllers {
		c.Detach()
	}
	s.controllers = make(map[*content.Enemy]*pursuit.Controller)

	if s.brd != nil {
		s.brd.ClearAllContents()
	}
	res := generate.Level(n, s.rng)
	s.brd = res.Board
	s.player = generate.PlayerSpawn

	for _, e := range res.Enemies {
		ctrl := pursuit.NewController(s.brd, e, s.PlayerPos, s.enemyHit)
		ctrl.Attach(s.sched)
		s.controllers[e] = ctrl
	}
}

// enemyHit is the melee sink handed to every pursuit controller.
func (s *Session) enemyHit(e *content.Enemy) {
	s.changeFood(-content.EnemyMeleeDamage, "a hunter")
	s.say("A hunter strikes you! (-%d food)", content.EnemyMeleeDamage)
}

func (s *Session) detachEnemy(e *content.Enemy) {
	if ctrl, ok := s.controllers[e]; ok {
		ctrl.Detach()
		delete(s.controllers, e)
	}
}

// runTurn advances exactly one tick and settles its consequences.
func (s *Session) runTurn() {
	s.sched.Tick()
	s.stats.TurnsPlayed = s.sched.Turn()
	if s.OnTurn != nil {
		s.OnTurn(s.sched.Turn())
	}
	s.checkGameOver()
}

// onTick is the session's own scheduler subscription: the per-turn drain.
func (s *Session) onTick() {
	s.changeFood(-foodPerTurn, "starvation")
}

// changeFood applies delta and remembers the first cause that drove the
// reserve to zero or below.
func (s *Session) changeFood(delta int, cause string) {
	s.food += delta
	if delta < 0 && s.food <= 0 && s.stats.CauseOfDeath == "" {
		s.stats.CauseOfDeath = cause
	}
}

// checkGameOver signals the end of the run exactly once.
func (s *Session) checkGameOver() {
	if s.gameOver || s.food > 0 {
		return
	}
	s.gameOver = true
	s.attack = nil
	for _, c := range s.controllers {
		c.Detach()
	}
	s.stats.LevelsSurvived = s.level
	s.say("You have run out of food.")
	if s.OnGameOver != nil {
		s.OnGameOver(s.level)
	}
}

func (s *Session) say(format string, args ...any) {
	if s.OnMessage != nil {
		s.OnMessage(fmt.Sprintf(format, args...))
	}
}
