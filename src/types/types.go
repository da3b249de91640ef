package types

import "fmt"

type Direction int

const (
	DirIdle Direction = iota
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "idle"
	}
}

type ElevState struct {
	Floor     int
	Dir       Direction
	Queue     []int
	DoorsOpen bool
	NumFloors int
}

type ActionType int

const (
	RequestFloor ActionType = iota
	Move
	OpenDoors
	CloseDoors
)

func (a ActionType) String() string {
	switch a {
	case RequestFloor:
		return "RequestFloor"
	case Move:
		return "Move"
	case OpenDoors:
		return "OpenDoors"
	case CloseDoors:
		return "CloseDoors"
	default:
		return fmt.Sprintf("ActionType(%d)", int(a))
	}
}

// Action is a single state mutation. Floor is only read for RequestFloor.
type Action struct {
	Type  ActionType
	Floor int
}
