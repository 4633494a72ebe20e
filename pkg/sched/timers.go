package sched

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"facetgrid/pkg/types"
)

// Timers is the production Scheduler backed by time.AfterFunc. Tokens
// are removed when the task fires, so Cancel after firing is a no-op.
type Timers struct {
	mu      sync.Mutex
	pending map[types.ScheduleToken]*time.Timer
}

func NewTimers() *Timers {
	return &Timers{pending: make(map[types.ScheduleToken]*time.Timer)}
}

func (t *Timers) Schedule(delay time.Duration, fn func()) types.ScheduleToken {
	token := types.ScheduleToken(uuid.NewString())
	t.mu.Lock()
	t.pending[token] = time.AfterFunc(delay, func() {
		t.mu.Lock()
		delete(t.pending, token)
		t.mu.Unlock()
		fn()
	})
	t.mu.Unlock()
	return token
}

func (t *Timers) Cancel(token types.ScheduleToken) {
	t.mu.Lock()
	timer, ok := t.pending[token]
	if ok {
		delete(t.pending, token)
	}
	t.mu.Unlock()
	if ok {
		timer.Stop()
	}
}
