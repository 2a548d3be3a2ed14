package sim

import (
	"github.com/kay-kewl/fluid/internal/field"
	"github.com/kay-kewl/fluid/internal/num"
)

// maxMoveDepth caps propagateMove recursion. Hitting it logs a warning and
// leaves the cell unmoved for the tick.
const maxMoveDepth = 1000

// movePass runs the randomized particle swap over all fluid cells. Each
// untouched cell either starts a move chain, with probability given by its
// outgoing velocity mass, or is force-stopped.
func (s *Simulator[P, V, VF]) movePass() {
	s.ut += 2
	var zeroP P
	for x := 0; x < s.rows; x++ {
		for y := 0; y < s.cols; y++ {
			if s.cell(x, y) == '#' || s.lastUse[s.at(x, y)] == s.ut {
				continue
			}
			pr := zeroP.FromFloat(s.rng.Float64())
			if pr.Cmp(s.moveProb(x, y)) < 0 {
				s.propagateMove(x, y, true, 0)
			} else {
				s.propagateStop(x, y, true)
			}
		}
	}
}

// moveProb sums the non-negative outgoing velocities toward fluid neighbors
// not yet touched this half-tick.
func (s *Simulator[P, V, VF]) moveProb(x, y int) P {
	var sum P
	var zero VF
	for i, d := range field.Deltas {
		nx, ny := x+d[0], y+d[1]
		if !s.inBounds(nx, ny) || s.cell(nx, ny) == '#' || s.lastUse[s.at(nx, ny)] == s.ut {
			continue
		}
		v := s.vel.At(x, y, i)
		if v.Cmp(zero) >= 0 {
			sum = sum.Add(num.Conv[P](v))
		}
	}
	return sum
}

// propagateMove walks a random velocity-weighted path until it reaches a
// cell marked in the previous frame or a descendant succeeds. On the way
// back, each non-initial hop swaps fluid identity with its chosen target,
// which drags the moving particle along the whole path.
func (s *Simulator[P, V, VF]) propagateMove(x, y int, isFirst bool, depth int) bool {
	mark := s.ut
	if isFirst {
		mark--
	}
	s.lastUse[s.at(x, y)] = mark

	if depth > maxMoveDepth {
		s.logf("%v at (%d,%d)", ErrRecursionLimit, x, y)
		return false
	}

	var zero VF
	ret := false
	tx, ty := -1, -1
	for !ret {
		// Velocity-weighted choice: prefix sums over eligible directions.
		// Negative velocity contributes nothing and stalls its threshold;
		// walls and touched neighbors leave theirs at zero.
		var thresholds [4]VF
		var sum VF
		for i, d := range field.Deltas {
			nx, ny := x+d[0], y+d[1]
			if !s.inBounds(nx, ny) {
				continue
			}
			if s.cell(nx, ny) == '#' || s.lastUse[s.at(nx, ny)] == s.ut {
				continue
			}
			v := s.vel.At(x, y, i)
			if v.Cmp(zero) < 0 {
				thresholds[i] = sum
				continue
			}
			sum = sum.Add(v)
			thresholds[i] = sum
		}

		if sum.Cmp(zero) == 0 {
			break
		}

		r := zero.FromFloat(s.rng.Float64()).Mul(sum)
		dir := 0
		for i := range thresholds {
			if thresholds[i].Cmp(r) > 0 {
				dir = i
				break
			}
		}

		tx, ty = x+field.Deltas[dir][0], y+field.Deltas[dir][1]
		if !s.inBounds(tx, ty) {
			continue
		}

		ret = s.lastUse[s.at(tx, ty)] == s.ut-1 || s.propagateMove(tx, ty, false, depth+1)
	}

	s.lastUse[s.at(x, y)] = s.ut

	for i, d := range field.Deltas {
		nx, ny := x+d[0], y+d[1]
		if s.inBounds(nx, ny) && s.cell(nx, ny) != '#' &&
			s.lastUse[s.at(nx, ny)] < s.ut-1 && s.vel.At(x, y, i).Cmp(zero) < 0 {
			s.propagateStop(nx, ny, false)
		}
	}

	if ret && !isFirst {
		s.swapParticles(x, y, tx, ty)
	}
	return ret
}

// swapParticles exchanges fluid identity between two cells: the character,
// the pressure and the full 4-direction velocity move together.
func (s *Simulator[P, V, VF]) swapParticles(ax, ay, bx, by int) {
	ai, bi := s.at(ax, ay), s.at(bx, by)
	s.cells[ai], s.cells[bi] = s.cells[bi], s.cells[ai]
	s.p[ai], s.p[bi] = s.p[bi], s.p[ai]

	tmp := s.vel.GetArray(ax, ay)
	s.vel.SetArray(ax, ay, s.vel.GetArray(bx, by))
	s.vel.SetArray(bx, by, tmp)
}
