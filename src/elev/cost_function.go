package elev

import (
	"time"

	"elevatorsim/src/config"
	"elevatorsim/src/types"
)

// TravelDuration is the time the car needs from its floor to the head of the queue.
// It is zero when the queue is empty.
func TravelDuration(elevator types.ElevState, unit time.Duration) time.Duration {
	if len(elevator.Queue) == 0 {
		return 0
	}
	distance := abs(elevator.Floor - elevator.Queue[0])
	return config.Units(float64(distance)*config.TravelUnitsPerFloor, unit)
}

// SimulateDrain estimates how long the car needs to serve every queued request
// if nothing else is requested, and the order in which floors are visited.
//   - open doors are assumed to close after a full dwell
//   - each stop costs load delay, travel and dwell
func SimulateDrain(elevator types.ElevState, unit time.Duration) (time.Duration, []int) {
	simElev := Snapshot(elevator)
	var duration time.Duration
	stops := []int{}

	if simElev.DoorsOpen {
		duration += config.Units(config.DoorDwellUnits, unit)
		simElev = CloseDoors(simElev)
	}
	for len(simElev.Queue) > 0 {
		travel := TravelDuration(simElev, unit)
		simElev = Move(simElev)
		stops = append(stops, simElev.Floor)
		duration += config.Units(config.LoadDelayUnits, unit) + travel + config.Units(config.DoorDwellUnits, unit)
	}
	return duration, stops
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
