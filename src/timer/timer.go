package timer

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
)

type Slot int

const (
	DoorClose Slot = iota
	MoveStep
	Arrival
	numSlots
)

func (s Slot) String() string {
	switch s {
	case DoorClose:
		return "DoorClose"
	case MoveStep:
		return "MoveStep"
	case Arrival:
		return "Arrival"
	default:
		return fmt.Sprintf("Slot(%d)", int(s))
	}
}

// Timeout is delivered on the timeout channel when a scheduled task fires.
// Travel is only set for MoveStep and carries the duration computed when the
// task was scheduled. For Arrival, Gen identifies the one-shot task.
type Timeout struct {
	Slot   Slot
	Gen    uint64
	Travel time.Duration
}

// Scheduler keeps at most one live task per slot. Scheduling a slot stops the
// previous task in that slot. Tasks started with After are never superseded.
// All methods must be called from the goroutine that owns the elevator state.
type Scheduler struct {
	clock     clockwork.Clock
	timeoutCh chan Timeout
	timers    [numSlots]clockwork.Timer
	gens      [numSlots]uint64
	arrivals  map[uint64]time.Time
	nextID    uint64
}

func New(clock clockwork.Clock, bufSize int) *Scheduler {
	return &Scheduler{
		clock:     clock,
		timeoutCh: make(chan Timeout, bufSize),
		arrivals:  make(map[uint64]time.Time),
	}
}

func (s *Scheduler) Timeouts() <-chan Timeout {
	return s.timeoutCh
}

// Schedule starts or restarts the task in slot.
func (s *Scheduler) Schedule(slot Slot, d time.Duration, travel time.Duration) {
	s.Cancel(slot)
	timeout := Timeout{Slot: slot, Gen: s.gens[slot], Travel: travel}
	s.timers[slot] = s.clock.AfterFunc(d, func() {
		s.timeoutCh <- timeout
	})
	slog.Debug("Timer scheduled", "slot", slot, "after", d, "gen", timeout.Gen)
}

// Cancel stops the task in slot. A timeout from it that is already queued
// is reported as stale by Live.
func (s *Scheduler) Cancel(slot Slot) {
	if s.timers[slot] == nil {
		return
	}
	s.timers[slot].Stop()
	s.timers[slot] = nil
	s.gens[slot]++
}

// After starts a one-shot Arrival task that no later Schedule or Cancel affects.
func (s *Scheduler) After(d time.Duration) {
	s.nextID++
	timeout := Timeout{Slot: Arrival, Gen: s.nextID}
	s.arrivals[timeout.Gen] = s.clock.Now().Add(d)
	s.clock.AfterFunc(d, func() {
		s.timeoutCh <- timeout
	})
	slog.Debug("One-shot timer started", "slot", Arrival, "after", d, "id", timeout.Gen)
}

// TakeDueArrival retires the earliest Arrival task whose deadline has passed,
// even if its timeout has not been delivered yet. The late timeout is then
// reported as stale by Live. It reports whether such a task existed.
func (s *Scheduler) TakeDueArrival() bool {
	now := s.clock.Now()
	var dueID uint64
	var dueAt time.Time
	for id, deadline := range s.arrivals {
		if deadline.After(now) {
			continue
		}
		if dueID == 0 || deadline.Before(dueAt) || (deadline.Equal(dueAt) && id < dueID) {
			dueID, dueAt = id, deadline
		}
	}
	if dueID == 0 {
		return false
	}
	delete(s.arrivals, dueID)
	slog.Debug("Due arrival taken ahead of its timeout", "id", dueID)
	return true
}

// Live reports whether timeout belongs to the current task of its slot and
// retires that task. An Arrival timeout is live once, unless TakeDueArrival
// already retired it.
func (s *Scheduler) Live(timeout Timeout) bool {
	if timeout.Slot == Arrival {
		if _, ok := s.arrivals[timeout.Gen]; !ok {
			slog.Debug("Arrival already handled", "id", timeout.Gen)
			return false
		}
		delete(s.arrivals, timeout.Gen)
		return true
	}
	if s.timers[timeout.Slot] == nil || timeout.Gen != s.gens[timeout.Slot] {
		slog.Debug("Stale timeout dropped", "slot", timeout.Slot, "gen", timeout.Gen)
		return false
	}
	s.timers[timeout.Slot] = nil
	s.gens[timeout.Slot]++
	return true
}

// Pending reports whether slot has a task that has not been retired.
func (s *Scheduler) Pending(slot Slot) bool {
	return s.timers[slot] != nil
}

// Stop cancels every slotted task. One-shot tasks still fire.
func (s *Scheduler) Stop() {
	for slot := Slot(0); slot < numSlots; slot++ {
		s.Cancel(slot)
	}
}
