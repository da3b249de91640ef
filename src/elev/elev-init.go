package elev

import (
	"log/slog"

	"elevatorsim/src/config"
	"elevatorsim/src/types"
)

// InitElevState returns the start-up state: floor 0, idle, doors closed, empty queue.
func InitElevState() types.ElevState {
	elevator := types.ElevState{
		Floor:     0,
		Dir:       types.DirIdle,
		Queue:     []int{},
		DoorsOpen: false,
		NumFloors: config.NumFloors,
	}
	slog.Debug("Elevator initialized", "floors", elevator.NumFloors)
	return elevator
}
