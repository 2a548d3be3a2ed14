package sim

import (
	"fmt"

	"github.com/kay-kewl/fluid/internal/field"
	"github.com/kay-kewl/fluid/internal/num"
)

// applyGravity feeds g into the downward velocity of every fluid cell whose
// down-neighbor is fluid.
func (s *Simulator[P, V, VF]) applyGravity() {
	down := field.Index(1, 0)
	gv := num.Conv[VF](s.g)
	for x := 0; x < s.rows; x++ {
		for y := 0; y < s.cols; y++ {
			if s.cell(x, y) == '#' {
				continue
			}
			if x+1 < s.rows && s.cell(x+1, y) != '#' {
				s.vel.AddAt(x, y, down, gv)
			}
		}
	}
}

// pressureToVelocity converts pressure gradients into velocity. For each
// directed pair with a pressure drop, the neighbor's counter-flow absorbs
// the force first; whatever remains becomes outgoing velocity and is paid
// for out of this cell's pressure, split across its fan-out.
func (s *Simulator[P, V, VF]) pressureToVelocity() {
	copy(s.pOld, s.p)

	var zero VF
	for x := 0; x < s.rows; x++ {
		for y := 0; y < s.cols; y++ {
			if s.cell(x, y) == '#' {
				continue
			}
			for i, d := range field.Deltas {
				nx, ny := x+d[0], y+d[1]
				if !s.inBounds(nx, ny) || s.cell(nx, ny) == '#' {
					continue
				}
				if s.pOld[s.at(nx, ny)].Cmp(s.pOld[s.at(x, y)]) >= 0 {
					continue
				}

				force := s.pOld[s.at(x, y)].Sub(s.pOld[s.at(nx, ny)])
				rhoN := s.rho[s.cell(nx, ny)]

				// Counter-flow lives in the neighbor's slot for the
				// opposing delta; that slot is the canonical reader for
				// flow in the -d direction.
				opp := field.Opposite(i)
				contr := s.vel.At(nx, ny, opp)

				if num.Conv[P](contr).Mul(rhoN).Cmp(force) >= 0 {
					s.vel.SetAt(nx, ny, opp, contr.Sub(num.Conv[VF](force.Div(rhoN))))
					continue
				}

				force = force.Sub(num.Conv[P](contr).Mul(rhoN))
				s.vel.SetAt(nx, ny, opp, zero)
				s.vel.AddAt(x, y, i, num.Conv[VF](force.Div(s.rho[s.cell(x, y)])))

				dp := force.DivN(s.dirs[s.at(x, y)])
				s.p[s.at(x, y)] = s.p[s.at(x, y)].Sub(dp)
				s.totalDeltaP = s.totalDeltaP.Sub(dp)
			}
		}
	}
}

// velocityToPressure settles the flow pass: every positive velocity is cut
// down to what actually flowed, and the unspent part converts back into
// pressure, credited to the receiving cell (or back to the source when the
// receiver is a wall).
func (s *Simulator[P, V, VF]) velocityToPressure() {
	var zero VF
	for x := 0; x < s.rows; x++ {
		for y := 0; y < s.cols; y++ {
			if s.cell(x, y) == '#' {
				continue
			}
			for i, d := range field.Deltas {
				nx, ny := x+d[0], y+d[1]
				if !s.inBounds(nx, ny) {
					continue
				}
				oldV := s.vel.At(x, y, i)
				if oldV.Cmp(zero) <= 0 {
					continue
				}
				newV := s.flow.At(x, y, i)
				if newV.Cmp(oldV) > 0 {
					panic(fmt.Sprintf("sim: routed flow %s exceeds velocity %s at (%d,%d) dir %d",
						newV.String(), oldV.String(), x, y, i))
				}
				s.vel.SetAt(x, y, i, newV)

				force := num.Conv[P](oldV.Sub(newV)).Mul(s.rho[s.cell(x, y)])
				if s.cell(x, y) == '.' {
					force = force.Scale(0.8)
				}

				if s.cell(nx, ny) == '#' {
					dp := force.DivN(s.dirs[s.at(x, y)])
					s.p[s.at(x, y)] = s.p[s.at(x, y)].Add(dp)
					s.totalDeltaP = s.totalDeltaP.Add(dp)
				} else {
					dp := force.DivN(s.dirs[s.at(nx, ny)])
					s.p[s.at(nx, ny)] = s.p[s.at(nx, ny)].Add(dp)
					s.totalDeltaP = s.totalDeltaP.Add(dp)
				}
			}
		}
	}
}
