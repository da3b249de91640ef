// Package view draws the shaft, the car and the call buttons as text, and turns
// typed button labels into floor requests.
package view

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"elevatorsim/src/elev"
	"elevatorsim/src/types"
)

const (
	emptyShaft = "|          |"
	carClosed  = "| [###|###]|"
	carOpen    = "| [|     |]|"
	clearTerm  = "\033[H\033[2J"
)

var ErrNoSuchButton = errors.New("no such call button")

// Render draws one row per floor, top floor first. The car sits in the row of
// its floor and the call button for that floor is drawn beside it.
func Render(elevator types.ElevState, unit time.Duration) string {
	var b strings.Builder
	for i := 0; i < elevator.NumFloors; i++ {
		floor := elevator.NumFloors - i - 1
		row := emptyShaft
		if floor == elevator.Floor {
			row = carClosed
			if elevator.DoorsOpen {
				row = carOpen
			}
		}
		fmt.Fprintf(&b, "%s  [%d] Call elevator to floor %d\n", row, floor+1, floor+1)
	}

	drain, stops := elev.SimulateDrain(elevator, unit)
	fmt.Fprintf(&b, "floor %d | %-4s | doors %-6s | queue %s | travel %s | idle in %s via %s\n",
		elevator.Floor+1,
		elevator.Dir,
		doorsLabel(elevator.DoorsOpen),
		elev.FormatQueue(elevator.Queue),
		elev.TravelDuration(elevator, unit),
		drain,
		elev.FormatQueue(stops))
	return b.String()
}

func doorsLabel(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}

// ParseButton turns a typed button label into a floor index.
// Button N calls the car to floor index N-1.
func ParseButton(line string, numFloors int) (int, error) {
	label, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("parse button %q: %w", line, err)
	}
	if label < 1 || label > numFloors {
		return 0, fmt.Errorf("button %d: %w", label, ErrNoSuchButton)
	}
	return label - 1, nil
}

// ReadButtons forwards every valid button label read from r as a floor
// request. Bad lines are logged and skipped. It returns when r is exhausted or
// ctx is cancelled.
func ReadButtons(ctx context.Context, r io.Reader, numFloors int, requestCh chan<- int) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		floor, err := ParseButton(line, numFloors)
		if err != nil {
			slog.Warn("Ignoring input", "line", line, "err", err)
			continue
		}
		select {
		case requestCh <- floor:
			slog.Info("Floor requested", "floor", floor)
		case <-ctx.Done():
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read buttons: %w", err)
	}
	return nil
}

// Print redraws every state received on states until ctx is cancelled or
// states is closed.
func Print(ctx context.Context, w io.Writer, states <-chan types.ElevState, unit time.Duration, redraw bool) {
	for {
		select {
		case <-ctx.Done():
			return
		case elevator, ok := <-states:
			if !ok {
				return
			}
			frame := Render(elevator, unit)
			if redraw {
				frame = clearTerm + frame
			}
			if _, err := io.WriteString(w, frame); err != nil {
				slog.Error("Failed to draw state", "err", err)
				return
			}
		}
	}
}
