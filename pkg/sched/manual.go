package sched

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"facetgrid/pkg/types"
)

type manualTask struct {
	token types.ScheduleToken
	due   time.Duration
	seq   int
	fn    func()
}

// Manual is a deterministic Scheduler for tests: time only moves when
// Advance is called, and due tasks run on the calling goroutine in due
// order (insertion order on ties).
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []manualTask
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Schedule(delay time.Duration, fn func()) types.ScheduleToken {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	token := types.ScheduleToken("manual-" + strconv.Itoa(m.seq))
	m.tasks = append(m.tasks, manualTask{token: token, due: m.now + delay, seq: m.seq, fn: fn})
	return token
}

func (m *Manual) Cancel(token types.ScheduleToken) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.tasks {
		if t.token == token {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return
		}
	}
}

// Advance moves the clock forward and fires every task that came due.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now += d
	var due []manualTask
	rest := m.tasks[:0]
	for _, t := range m.tasks {
		if t.due <= m.now {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	m.tasks = rest
	m.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	for _, t := range due {
		t.fn()
	}
}

// Pending returns the number of scheduled, unfired tasks.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}
