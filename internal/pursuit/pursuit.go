// Package pursuit implements the enemy chase behavior: a pure, deterministic
// per-turn decision (no search, no path caching) plus a controller that
// applies it through the turn scheduler.
package pursuit

import (
	"emoji-scavenger/internal/board"
	"emoji-scavenger/internal/content"
	"emoji-scavenger/internal/turn"
)

// Action is the kind of move an enemy takes this turn.
type Action uint8

const (
	ActionHold Action = iota
	ActionMove
	ActionAttack
)

// Decision is the outcome of one pursuit evaluation.
type Decision struct {
	Action Action
	Dest   board.Coord // destination cell when Action is ActionMove
}

// Decide computes the enemy's move for this turn. It is a pure function of
// (own, player, board occupancy): same inputs, same decision.
//
// If the player is exactly one step away along a single axis the enemy
// attacks in place. Otherwise it greedily steps toward the player: the
// primary axis is X when |dx| > |dy|, else Y; if the primary step is out of
// bounds, impassable, or occupied, the secondary axis is tried; if both
// fail the enemy holds.
func Decide(b *board.Board, own, player board.Coord) Decision {
	dx := player.X - own.X
	dy := player.Y - own.Y

	if (dx == 0 && abs(dy) == 1) || (dy == 0 && abs(dx) == 1) {
		return Decision{Action: ActionAttack}
	}

	stepX := own.Add(sign(dx), 0)
	stepY := own.Add(0, sign(dy))

	first, second := stepY, stepX // Y wins ties
	if abs(dx) > abs(dy) {
		first, second = stepX, stepY
	}

	if first != own && b.IsFree(first) {
		return Decision{Action: ActionMove, Dest: first}
	}
	if second != own && b.IsFree(second) {
		return Decision{Action: ActionMove, Dest: second}
	}
	return Decision{Action: ActionHold}
}

// Controller drives one enemy. It subscribes to the turn scheduler and acts
// once per tick while the enemy is alive and on the board.
type Controller struct {
	brd    *board.Board
	enemy  *content.Enemy
	target func() board.Coord   // live player position
	onHit  func(*content.Enemy) // melee hit sink (session applies the damage)
	sub    *turn.Subscription
}

// NewController wires a controller for one enemy. target must report the
// player's current coordinate; onHit receives the enemy on every landed
// melee attack.
func NewController(b *board.Board, e *content.Enemy, target func() board.Coord, onHit func(*content.Enemy)) *Controller {
	return &Controller{brd: b, enemy: e, target: target, onHit: onHit}
}

// Attach subscribes the controller to the scheduler.
func (c *Controller) Attach(s *turn.Scheduler) {
	c.sub = s.Subscribe(c.Act)
}

// Detach cancels the subscription. Must be called when the enemy is
// destroyed or the level is cleared.
func (c *Controller) Detach() {
	if c.sub != nil {
		c.sub.Cancel()
		c.sub = nil
	}
}

// Act evaluates one pursuit decision against the current board state.
// Enemies evaluated earlier in the same tick have already moved; that is
// deliberate (fixed subscription order, live state).
func (c *Controller) Act() {
	// A destroyed enemy detaches itself, but a tick on a stale controller
	// must be a no-op rather than a crash.
	if c.enemy.Health <= 0 || c.brd.Occupant(c.enemy.At) != c.enemy {
		return
	}
	d := Decide(c.brd, c.enemy.At, c.target())
	switch d.Action {
	case ActionAttack:
		c.onHit(c.enemy)
	case ActionMove:
		c.brd.ClearOccupant(c.enemy.At)
		c.brd.SetOccupant(d.Dest, c.enemy)
		c.enemy.At = d.Dest
	}
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
