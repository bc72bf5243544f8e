package quiz

import (
	"sync"
	"time"
)

// Timer — отложенный вызов, который можно отменить.
type Timer interface {
	// Stop отменяет вызов. Возвращает false, если вызов уже произошёл или был отменён.
	Stop() bool
}

// Clock планирует отложенные вызовы.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealClock возвращает Clock на основе пакета time.
func RealClock() Clock {
	return realClock{}
}

// FakeClock — управляемые часы для тестов. Таймеры срабатывают только в Advance.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
	fired  int
}

type fakeTimer struct {
	clock    *FakeClock
	deadline time.Time
	f        func()
	done     bool
}

// NewFakeClock создаёт FakeClock с начальным временем start.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

// AfterFunc регистрирует вызов f через d.
func (c *FakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &fakeTimer{clock: c, deadline: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)

	return t
}

// Advance сдвигает время на d и вызывает просроченные таймеры.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()

	c.now = c.now.Add(d)

	var due []func()
	pending := c.timers[:0]
	for _, t := range c.timers {
		if !t.deadline.After(c.now) {
			t.done = true
			due = append(due, t.f)
			continue
		}
		pending = append(pending, t)
	}
	c.timers = pending
	c.fired += len(due)

	c.mu.Unlock()

	for _, f := range due {
		f()
	}
}

// Pending возвращает количество активных таймеров.
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.timers)
}

// Fired возвращает количество сработавших таймеров.
func (c *FakeClock) Fired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fired
}

func (t *fakeTimer) Stop() bool {
	c := t.clock

	c.mu.Lock()
	defer c.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true

	for i, other := range c.timers {
		if other == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			break
		}
	}

	return true
}
