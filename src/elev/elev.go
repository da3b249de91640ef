// Transition functions for the single elevator car. Every function takes the
// current state by value and returns the next one; none of them fail.
package elev

import (
	"log/slog"
	"slices"

	"elevatorsim/src/types"
)

// Reduce applies a single action to the state.
func Reduce(elevator types.ElevState, action types.Action) types.ElevState {
	switch action.Type {
	case types.RequestFloor:
		return RequestFloor(elevator, action.Floor)
	case types.Move:
		return Move(elevator)
	case types.OpenDoors:
		return OpenDoors(elevator)
	case types.CloseDoors:
		return CloseDoors(elevator)
	}
	slog.Warn("Unknown action ignored", "action", action.Type)
	return elevator
}

// RequestFloor opens the doors if the car is already waiting at floor,
// otherwise appends floor to the back of the queue.
//   - no dedup against the queue, duplicates are dropped on arrival
//   - no bounds check
func RequestFloor(elevator types.ElevState, floor int) types.ElevState {
	if floor == elevator.Floor &&
		!elevator.DoorsOpen &&
		elevator.Dir == types.DirIdle &&
		len(elevator.Queue) == 0 {
		elevator.DoorsOpen = true
		return elevator
	}
	queue := make([]int, len(elevator.Queue), len(elevator.Queue)+1)
	copy(queue, elevator.Queue)
	elevator.Queue = append(queue, floor)
	return elevator
}

// Move takes the car to the head of the queue and closes the doors.
//   - drops every other queued request for the same floor
//   - direction is derived from the new head: higher is up, anything else is down
func Move(elevator types.ElevState) types.ElevState {
	if len(elevator.Queue) == 0 {
		elevator.Dir = types.DirIdle
		return elevator
	}
	next := elevator.Queue[0]
	queue := make([]int, 0, len(elevator.Queue)-1)
	for _, floor := range elevator.Queue[1:] {
		if floor != next {
			queue = append(queue, floor)
		}
	}
	elevator.Floor = next
	elevator.Queue = queue
	elevator.DoorsOpen = false
	switch {
	case len(queue) == 0:
		elevator.Dir = types.DirIdle
	case queue[0] > next:
		elevator.Dir = types.DirUp
	default:
		elevator.Dir = types.DirDown
	}
	return elevator
}

func OpenDoors(elevator types.ElevState) types.ElevState {
	elevator.DoorsOpen = true
	return elevator
}

func CloseDoors(elevator types.ElevState) types.ElevState {
	elevator.DoorsOpen = false
	return elevator
}

// QueueChanged reports whether an action replaced the queue value.
// Any enqueue or non-empty move does; door actions never do.
func QueueChanged(prev, next types.ElevState) bool {
	return !slices.Equal(prev.Queue, next.Queue)
}
