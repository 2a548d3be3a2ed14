// Package field stores per-cell directional quantities for the simulation
// grid. Every cell owns four slots addressed by the canonical delta array.
package field

import (
	"errors"
	"fmt"
)

// Deltas is the canonical ordered neighbor set: up, down, left, right in
// (row, column) terms. The index into this array is the only addressing mode
// for per-direction slots, and persisted state keeps this ordering.
var Deltas = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// ErrInvalidDelta reports a (dx,dy) pair outside the canonical array. It is
// a programmer error and surfaces as a panic.
var ErrInvalidDelta = errors.New("field: invalid delta")

// Index maps a delta to its canonical slot.
func Index(dx, dy int) int {
	for i, d := range Deltas {
		if d[0] == dx && d[1] == dy {
			return i
		}
	}
	panic(fmt.Errorf("%w: (%d,%d)", ErrInvalidDelta, dx, dy))
}

// Opposite returns the slot of the reversed delta. The canonical ordering
// pairs opposing directions at adjacent indices.
func Opposite(i int) int { return i ^ 1 }
