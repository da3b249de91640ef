package executor

import (
	"context"
	"log/slog"
	"time"

	"elevatorsim/src/config"
	"elevatorsim/src/elev"
	"elevatorsim/src/timer"
	"elevatorsim/src/types"

	"github.com/jonboulle/clockwork"
)

// Executor owns the elevator state. Requests and timer timeouts are applied one
// at a time on the goroutine running Run.
type Executor struct {
	elevator types.ElevState
	sched    *timer.Scheduler
	unit     time.Duration
	travel   time.Duration
	stateCh  chan types.ElevState
}

func New(clock clockwork.Clock, unit time.Duration) *Executor {
	return &Executor{
		elevator: elev.InitElevState(),
		sched:    timer.New(clock, config.TimeoutBufSize),
		unit:     unit,
		stateCh:  make(chan types.ElevState, config.StateBufSize),
	}
}

// States delivers a copy of the state after every change. Only the latest
// state is kept if the reader falls behind.
func (ex *Executor) States() <-chan types.ElevState {
	return ex.stateCh
}

// Run applies floor requests and timeouts until ctx is cancelled.
func (ex *Executor) Run(ctx context.Context, requestCh <-chan int) {
	ex.publish()
	for {
		select {
		case <-ctx.Done():
			ex.sched.Stop()
			slog.Info("Executor stopped", "floor", ex.elevator.Floor, "queue", elev.FormatQueue(ex.elevator.Queue))
			return
		case floor := <-requestCh:
			ex.apply(types.Action{Type: types.RequestFloor, Floor: floor})
		case timeout := <-ex.sched.Timeouts():
			ex.handleTimeout(timeout)
		}
	}
}

// handleTimeout is called for every timer that fires.
//   - DoorClose closes the doors
//   - MoveStep moves one queued floor and starts the arrival timer with the
//     travel duration computed before the move. An arrival that is already due
//     opens the doors instead, which leaves the move for after the dwell
//   - Arrival opens the doors
func (ex *Executor) handleTimeout(timeout timer.Timeout) {
	if !ex.sched.Live(timeout) {
		return
	}
	switch timeout.Slot {
	case timer.DoorClose:
		ex.apply(types.Action{Type: types.CloseDoors})
	case timer.MoveStep:
		if ex.sched.TakeDueArrival() {
			ex.apply(types.Action{Type: types.OpenDoors})
			return
		}
		ex.sched.After(timeout.Travel)
		ex.apply(types.Action{Type: types.Move})
	case timer.Arrival:
		ex.apply(types.Action{Type: types.OpenDoors})
	}
}

func (ex *Executor) apply(action types.Action) {
	prev := ex.elevator
	ex.elevator = elev.Reduce(prev, action)
	slog.Debug("Action applied",
		"action", action.Type,
		"floor", ex.elevator.Floor,
		"dir", ex.elevator.Dir,
		"queue", elev.FormatQueue(ex.elevator.Queue),
		"doorsOpen", ex.elevator.DoorsOpen)
	ex.syncTimers(prev)
	ex.publish()
}

// syncTimers re-arms the timers whose triggering fields changed.
//   - door timer follows DoorsOpen
//   - move timer follows the queue, DoorsOpen and the travel duration
func (ex *Executor) syncTimers(prev types.ElevState) {
	next := ex.elevator
	doorsChanged := prev.DoorsOpen != next.DoorsOpen

	if doorsChanged {
		ex.sched.Cancel(timer.DoorClose)
		if next.DoorsOpen {
			ex.sched.Schedule(timer.DoorClose, config.Units(config.DoorDwellUnits, ex.unit), 0)
		}
	}

	travel := elev.TravelDuration(next, ex.unit)
	if doorsChanged || elev.QueueChanged(prev, next) || travel != ex.travel {
		ex.sched.Cancel(timer.MoveStep)
		ex.travel = travel
		if len(next.Queue) > 0 && !next.DoorsOpen {
			ex.sched.Schedule(timer.MoveStep, config.Units(config.LoadDelayUnits, ex.unit), travel)
		}
	}
}

func (ex *Executor) publish() {
	snapshot := elev.Snapshot(ex.elevator)
	select {
	case <-ex.stateCh:
	default:
	}
	ex.stateCh <- snapshot
}
