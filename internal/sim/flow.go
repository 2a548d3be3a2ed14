package sim

import "github.com/kay-kewl/fluid/internal/field"

// propagateFlow routes up to lim units of flow away from (x,y), depth-first
// in canonical direction order. It returns the routed amount, whether a sink
// was reached, and the sink's coordinates. A path that closes back on the
// caller's own cell reports no propagation, which keeps false cycles from
// draining capacity.
//
// Stamp protocol: a cell entering its frame is marked ut-1 ("in flight");
// once it has routed or exhausted its directions it is marked ut
// ("finalized"). Meeting an ut-1 neighbor therefore means the recursion has
// found a one-step sink.
func (s *Simulator[P, V, VF]) propagateFlow(x, y int, lim VF) (VF, bool, [2]int) {
	s.lastUse[s.at(x, y)] = s.ut - 1

	var ret VF
	for i, d := range field.Deltas {
		nx, ny := x+d[0], y+d[1]
		if !s.inBounds(nx, ny) || s.cell(nx, ny) == '#' {
			continue
		}
		if s.lastUse[s.at(nx, ny)] >= s.ut {
			continue
		}

		capacity := s.vel.At(x, y, i)
		routed := s.flow.At(x, y, i)
		if routed.Cmp(capacity) == 0 {
			continue
		}
		vp := lim
		if rest := capacity.Sub(routed); rest.Cmp(vp) < 0 {
			vp = rest
		}

		if s.lastUse[s.at(nx, ny)] == s.ut-1 {
			s.flow.AddAt(x, y, i, vp)
			s.lastUse[s.at(x, y)] = s.ut
			return vp, true, [2]int{nx, ny}
		}

		t, prop, end := s.propagateFlow(nx, ny, vp)
		ret = ret.Add(t)
		if prop {
			s.flow.AddAt(x, y, i, t)
			s.lastUse[s.at(x, y)] = s.ut
			return t, end != [2]int{x, y}, end
		}
	}

	s.lastUse[s.at(x, y)] = s.ut
	return ret, false, [2]int{}
}

// propagateStop finalizes a cell that cannot move this half-tick and spreads
// the stop to neighbors it has no outgoing velocity into. With force the
// outgoing-velocity check is skipped.
func (s *Simulator[P, V, VF]) propagateStop(x, y int, force bool) {
	var zero VF
	if !force {
		for i, d := range field.Deltas {
			nx, ny := x+d[0], y+d[1]
			if s.inBounds(nx, ny) && s.cell(nx, ny) != '#' &&
				s.lastUse[s.at(nx, ny)] < s.ut-1 && s.vel.At(x, y, i).Cmp(zero) > 0 {
				return
			}
		}
	}

	s.lastUse[s.at(x, y)] = s.ut
	for i, d := range field.Deltas {
		nx, ny := x+d[0], y+d[1]
		if !s.inBounds(nx, ny) {
			continue
		}
		if s.cell(nx, ny) == '#' || s.lastUse[s.at(nx, ny)] == s.ut ||
			s.vel.At(x, y, i).Cmp(zero) > 0 {
			continue
		}
		s.propagateStop(nx, ny, false)
	}
}

// flowFixpoint runs propagation sweeps until a sweep routes nothing. The
// velocity-flow field starts the tick zeroed and accumulates across sweeps;
// every sweep advances the clock by two. The iteration count is capped by
// the cell count.
func (s *Simulator[P, V, VF]) flowFixpoint() {
	var zero VF
	one := zero.FromFloat(1)
	limit := s.rows * s.cols

	s.flow.Reset()
	iters := 0
	for {
		s.ut += 2
		prop := false
		for x := 0; x < s.rows; x++ {
			for y := 0; y < s.cols; y++ {
				if s.cell(x, y) == '#' || s.lastUse[s.at(x, y)] == s.ut {
					continue
				}
				t, _, _ := s.propagateFlow(x, y, one)
				if t.Cmp(zero) > 0 {
					prop = true
				}
			}
		}
		iters++
		if !prop || iters >= limit {
			break
		}
	}
	s.flowIters = iters
}
