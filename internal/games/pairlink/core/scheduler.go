package core

import (
	"sort"
	"time"
)

// Scheduler runs one-shot deferred actions.
// AfterFunc arranges for f to run after d and returns a stop function that
// cancels the action, reporting whether it was still pending.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

// VirtualClock is a deterministic Scheduler driven by explicit Advance calls.
// Actions run synchronously inside Advance, in deadline order, ties broken by
// scheduling order. It is not safe for concurrent use.
type VirtualClock struct {
	now    time.Duration
	seq    uint64
	timers []*virtualTimer
}

type virtualTimer struct {
	at      time.Duration
	seq     uint64
	f       func()
	stopped bool
}

// NewVirtualClock creates a clock at time zero with nothing scheduled.
func NewVirtualClock() *VirtualClock {
	return &VirtualClock{}
}

// Now returns the elapsed virtual time.
func (c *VirtualClock) Now() time.Duration {
	return c.now
}

// Pending returns the number of actions waiting to run.
func (c *VirtualClock) Pending() int {
	return len(c.timers)
}

// AfterFunc schedules f to run once the clock has advanced by d.
func (c *VirtualClock) AfterFunc(d time.Duration, f func()) func() bool {
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &virtualTimer{at: c.now + d, seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return func() bool {
		if t.stopped {
			return false
		}
		t.stopped = true
		c.remove(t)
		return true
	}
}

// Advance moves the clock forward by d and runs every action that falls due.
// Actions scheduled by a running action are run too if they fall due within d.
func (c *VirtualClock) Advance(d time.Duration) {
	target := c.now + d
	for {
		t := c.next()
		if t == nil || t.at > target {
			break
		}
		c.remove(t)
		t.stopped = true
		if t.at > c.now {
			c.now = t.at
		}
		t.f()
	}
	c.now = target
}

func (c *VirtualClock) next() *virtualTimer {
	if len(c.timers) == 0 {
		return nil
	}
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].at != c.timers[j].at {
			return c.timers[i].at < c.timers[j].at
		}
		return c.timers[i].seq < c.timers[j].seq
	})
	return c.timers[0]
}

func (c *VirtualClock) remove(t *virtualTimer) {
	for i, other := range c.timers {
		if other == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}
