package config

import "time"

const (
	NumFloors           = 5
	DefaultTimeUnit     = time.Second
	DoorDwellUnits      = 2.0
	LoadDelayUnits      = 2.0
	TravelUnitsPerFloor = 0.5
	StateBufSize        = 1
	TimeoutBufSize      = 8
	RequestBufSize      = 16
)

// Units converts a count of simulation time units to wall-clock time.
func Units(n float64, unit time.Duration) time.Duration {
	return time.Duration(n * float64(unit))
}
