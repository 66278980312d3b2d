package service

import (
	"sync"
	"time"
)

// Transition models the boarding animation handoff: beginning a
// transition flips a transient flag and optionally schedules its
// completion. Re-triggering cancels the pending timer, last write wins.
// Ledger state is never touched from here.
type Transition struct {
	mu     sync.Mutex
	timer  *time.Timer
	active bool
}

func NewTransition() *Transition {
	return &Transition{}
}

// Begin marks the transition active. With delay > 0 completion is
// scheduled and onComplete fires when it elapses; with delay <= 0 the
// flag stays set until Complete is called (timing owned by the caller).
func (t *Transition) Begin(delay time.Duration, onComplete func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.active = true

	if delay > 0 {
		t.timer = time.AfterFunc(delay, func() {
			t.mu.Lock()
			t.active = false
			t.timer = nil
			t.mu.Unlock()
			if onComplete != nil {
				onComplete()
			}
		})
	}
}

// Complete clears the flag and cancels any pending timer.
func (t *Transition) Complete() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.active = false
}

func (t *Transition) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}
