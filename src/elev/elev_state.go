package elev

import (
	"elevatorsim/src/types"

	"github.com/tiendc/go-deepcopy"
)

// Snapshot returns a copy of the state that shares no memory with the original.
// Published states go through here so readers never see the owner's queue.
func Snapshot(elevator types.ElevState) types.ElevState {
	var snapshot types.ElevState
	if err := deepcopy.Copy(&snapshot, &elevator); err != nil {
		panic(err)
	}
	return snapshot
}
