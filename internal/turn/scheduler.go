// Package turn implements the turn scheduler: a monotonically increasing
// counter plus an ordered list of subscriber callbacks dispatched
// synchronously on every tick.
package turn

// Subscription is the handle returned by Subscribe. Cancelling it is always
// safe, including from inside the subscriber's own callback.
type Subscription struct {
	fn     func()
	active bool
}

// Cancel deactivates the subscription. A callback that cancels itself during
// a tick is not invoked again within that tick.
func (s *Subscription) Cancel() { s.active = false }

// Active reports whether the subscription will still be dispatched.
func (s *Subscription) Active() bool { return s.active }

// Scheduler sequences the game's turns. Not safe for concurrent use; the
// whole game is single-threaded and turn-driven.
type Scheduler struct {
	count int
	subs  []*Subscription
}

func NewScheduler() *Scheduler { return &Scheduler{} }

// Turn returns the number of completed ticks.
func (s *Scheduler) Turn() int { return s.count }

// Subscribe appends fn to the dispatch list. Subscribers are invoked in
// subscription order. A subscription made during a tick dispatch takes
// effect on the next tick.
func (s *Scheduler) Subscribe(fn func()) *Subscription {
	sub := &Subscription{fn: fn, active: true}
	s.subs = append(s.subs, sub)
	return sub
}

// Tick increments the turn counter and synchronously invokes every active
// subscriber once, in subscription order. The list is snapshotted up front:
// cancellations apply immediately, additions only from the next tick.
func (s *Scheduler) Tick() {
	s.count++
	snapshot := make([]*Subscription, len(s.subs))
	copy(snapshot, s.subs)
	for _, sub := range snapshot {
		if sub.active {
			sub.fn()
		}
	}
	s.prune()
}

// prune drops cancelled subscriptions, keeping order.
func (s *Scheduler) prune() {
	kept := s.subs[:0]
	for _, sub := range s.subs {
		if sub.active {
			kept = append(kept, sub)
		}
	}
	// Release dropped tail references.
	for i := len(kept); i < len(s.subs); i++ {
		s.subs[i] = nil
	}
	s.subs = kept
}
