package elev

import (
	"slices"
	"testing"

	"elevatorsim/src/types"
)

func TestRequestFloor(t *testing.T) {
	tests := []struct {
		name      string
		elevator  types.ElevState
		floor     int
		wantQueue []int
		wantOpen  bool
	}{
		{
			name:      "idle at requested floor opens doors",
			elevator:  types.ElevState{Floor: 0, Queue: []int{}, NumFloors: 5},
			floor:     0,
			wantQueue: []int{},
			wantOpen:  true,
		},
		{
			name:      "other floor is queued",
			elevator:  types.ElevState{Floor: 0, Queue: []int{}, NumFloors: 5},
			floor:     3,
			wantQueue: []int{3},
		},
		{
			name:      "same floor with doors open is queued",
			elevator:  types.ElevState{Floor: 2, Queue: []int{}, DoorsOpen: true, NumFloors: 5},
			floor:     2,
			wantQueue: []int{2},
			wantOpen:  true,
		},
		{
			name:      "same floor with pending queue is queued",
			elevator:  types.ElevState{Floor: 2, Queue: []int{4}, NumFloors: 5},
			floor:     2,
			wantQueue: []int{4, 2},
		},
		{
			name:      "same floor while not idle is queued",
			elevator:  types.ElevState{Floor: 2, Dir: types.DirDown, Queue: []int{}, NumFloors: 5},
			floor:     2,
			wantQueue: []int{2},
		},
		{
			name:      "duplicates are kept",
			elevator:  types.ElevState{Floor: 0, Queue: []int{3}, NumFloors: 5},
			floor:     3,
			wantQueue: []int{3, 3},
		},
		{
			name:      "out of range floor is accepted",
			elevator:  types.ElevState{Floor: 0, Queue: []int{}, NumFloors: 5},
			floor:     9,
			wantQueue: []int{9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RequestFloor(tt.elevator, tt.floor)
			if !slices.Equal(got.Queue, tt.wantQueue) {
				t.Errorf("queue = %v, want %v", got.Queue, tt.wantQueue)
			}
			if got.DoorsOpen != tt.wantOpen {
				t.Errorf("doorsOpen = %v, want %v", got.DoorsOpen, tt.wantOpen)
			}
			if got.Floor != tt.elevator.Floor || got.Dir != tt.elevator.Dir {
				t.Errorf("floor/dir changed: got %d/%v", got.Floor, got.Dir)
			}
		})
	}
}

func TestRequestFloorLeavesInputQueue(t *testing.T) {
	queue := make([]int, 1, 4)
	queue[0] = 1
	elevator := types.ElevState{Floor: 0, Queue: queue, NumFloors: 5}

	first := RequestFloor(elevator, 2)
	second := RequestFloor(elevator, 3)

	if !slices.Equal(first.Queue, []int{1, 2}) {
		t.Errorf("first queue = %v, want [1 2]", first.Queue)
	}
	if !slices.Equal(second.Queue, []int{1, 3}) {
		t.Errorf("second queue = %v, want [1 3]", second.Queue)
	}
	if !slices.Equal(elevator.Queue, []int{1}) {
		t.Errorf("input queue = %v, want [1]", elevator.Queue)
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name      string
		elevator  types.ElevState
		wantFloor int
		wantDir   types.Direction
		wantQueue []int
	}{
		{
			name:      "last stop goes idle",
			elevator:  types.ElevState{Floor: 0, Dir: types.DirIdle, Queue: []int{3}},
			wantFloor: 3,
			wantDir:   types.DirIdle,
			wantQueue: []int{},
		},
		{
			name:      "duplicates of head are dropped",
			elevator:  types.ElevState{Floor: 0, Queue: []int{2, 2, 5}},
			wantFloor: 2,
			wantDir:   types.DirUp,
			wantQueue: []int{5},
		},
		{
			name:      "later duplicates anywhere are dropped",
			elevator:  types.ElevState{Floor: 4, Queue: []int{1, 3, 1, 0, 1}},
			wantFloor: 1,
			wantDir:   types.DirUp,
			wantQueue: []int{3, 0},
		},
		{
			name:      "lower next stop is down",
			elevator:  types.ElevState{Floor: 0, Queue: []int{4, 1}},
			wantFloor: 4,
			wantDir:   types.DirDown,
			wantQueue: []int{1},
		},
		{
			name:      "doors close on move",
			elevator:  types.ElevState{Floor: 1, Queue: []int{3}, DoorsOpen: true},
			wantFloor: 3,
			wantDir:   types.DirIdle,
			wantQueue: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Move(tt.elevator)
			if got.Floor != tt.wantFloor {
				t.Errorf("floor = %d, want %d", got.Floor, tt.wantFloor)
			}
			if got.Dir != tt.wantDir {
				t.Errorf("dir = %v, want %v", got.Dir, tt.wantDir)
			}
			if !slices.Equal(got.Queue, tt.wantQueue) {
				t.Errorf("queue = %v, want %v", got.Queue, tt.wantQueue)
			}
			if got.DoorsOpen {
				t.Error("doors open after move")
			}
			if slices.Contains(got.Queue, got.Floor) {
				t.Errorf("queue %v still holds arrival floor %d", got.Queue, got.Floor)
			}
		})
	}
}

func TestMoveEmptyQueueOnlyResetsDirection(t *testing.T) {
	elevator := types.ElevState{Floor: 2, Dir: types.DirUp, Queue: []int{}, DoorsOpen: true, NumFloors: 5}
	got := Move(elevator)

	if got.Dir != types.DirIdle {
		t.Errorf("dir = %v, want idle", got.Dir)
	}
	if got.Floor != 2 || !got.DoorsOpen || len(got.Queue) != 0 || got.NumFloors != 5 {
		t.Errorf("unexpected change: %+v", got)
	}
}

func TestDoors(t *testing.T) {
	elevator := InitElevState()

	opened := OpenDoors(elevator)
	if !opened.DoorsOpen || !OpenDoors(opened).DoorsOpen {
		t.Error("OpenDoors did not open the doors")
	}
	closed := CloseDoors(opened)
	if closed.DoorsOpen || CloseDoors(closed).DoorsOpen {
		t.Error("CloseDoors did not close the doors")
	}
}

func TestReduce(t *testing.T) {
	elevator := InitElevState()
	actions := []types.Action{
		{Type: types.RequestFloor, Floor: 2},
		{Type: types.RequestFloor, Floor: 2},
		{Type: types.RequestFloor, Floor: 4},
		{Type: types.Move},
		{Type: types.OpenDoors},
	}
	for _, action := range actions {
		elevator = Reduce(elevator, action)
	}

	if elevator.Floor != 2 || elevator.Dir != types.DirUp || !elevator.DoorsOpen {
		t.Errorf("unexpected state %+v", elevator)
	}
	if !slices.Equal(elevator.Queue, []int{4}) {
		t.Errorf("queue = %v, want [4]", elevator.Queue)
	}

	elevator = Reduce(elevator, types.Action{Type: types.CloseDoors})
	if elevator.DoorsOpen {
		t.Error("doors still open")
	}
}

func TestInitElevState(t *testing.T) {
	elevator := InitElevState()
	if elevator.Floor != 0 || elevator.Dir != types.DirIdle || elevator.DoorsOpen || len(elevator.Queue) != 0 {
		t.Errorf("unexpected initial state %+v", elevator)
	}
	if elevator.NumFloors != 5 {
		t.Errorf("NumFloors = %d, want 5", elevator.NumFloors)
	}
}

func TestQueueChanged(t *testing.T) {
	elevator := InitElevState()
	requested := RequestFloor(elevator, 3)
	if !QueueChanged(elevator, requested) {
		t.Error("enqueue not detected")
	}
	if QueueChanged(requested, OpenDoors(requested)) {
		t.Error("door action reported as queue change")
	}
	if !QueueChanged(requested, Move(requested)) {
		t.Error("move not detected")
	}
	if QueueChanged(elevator, Move(elevator)) {
		t.Error("move on empty queue reported as queue change")
	}
}

func TestReduceUnknownAction(t *testing.T) {
	elevator := InitElevState()
	got := Reduce(elevator, types.Action{Type: types.ActionType(9)})
	if got.Floor != elevator.Floor || got.DoorsOpen || len(got.Queue) != 0 {
		t.Errorf("unknown action changed state: %+v", got)
	}
	if s := types.ActionType(9).String(); s != "ActionType(9)" {
		t.Errorf("String() = %q", s)
	}
}
