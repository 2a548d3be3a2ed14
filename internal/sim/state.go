// Package sim implements the fluid simulation engine: grid state, the
// flow-propagation and move kernels, pressure/velocity coupling, the tick
// driver and the checkpoint serializer. The engine is generic over the
// numeric representations of pressure, velocity and velocity-flow.
package sim

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/kay-kewl/fluid/internal/field"
	"github.com/kay-kewl/fluid/internal/num"
	"github.com/kay-kewl/fluid/pkg/core"
)

// ErrInvalidField reports an unusable field description: bad dimensions,
// ragged rows, no fluid cells, or a field exceeding static storage capacity.
var ErrInvalidField = errors.New("sim: invalid field")

// ErrRecursionLimit marks the move-kernel depth cap. It is logged and the
// affected cell skips its move for the tick; it never aborts the run.
var ErrRecursionLimit = errors.New("sim: move recursion depth limit")

const defaultRho = 0.01

// Options tunes engine construction.
type Options struct {
	// Seed for the stochastic kernels; core.DefaultSeed when zero.
	Seed int64
	// Static selects the array-backed vector fields; construction fails
	// when the field exceeds their compile-time capacity.
	Static bool
	// Logger receives the startup banner and kernel diagnostics. Nil keeps
	// the engine silent.
	Logger *log.Logger
}

// Simulator holds the complete grid state for one run. P, V and VF are the
// pressure, velocity and velocity-flow representations; V mirrors the CLI
// surface but takes no part in arithmetic, since velocities are stored
// flow-typed.
type Simulator[P num.Real[P], V num.Real[V], VF num.Real[VF]] struct {
	rows, cols int

	cells   []byte
	p, pOld []P
	vel     field.Field[VF]
	flow    field.Field[VF]
	lastUse []int
	dirs    []int

	rho [256]P
	g   P
	ut  int

	rng    *core.RNG
	logger *log.Logger
	static bool

	// Per-tick diagnostics.
	totalDeltaP P
	flowIters   int
}

// New parses a field description ("rows cols", gravity, field rows, then
// density overrides) and returns a ready engine.
func New[P num.Real[P], V num.Real[V], VF num.Real[VF]](lines []string, opts Options) (*Simulator[P, V, VF], error) {
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: need a dimension line and a gravity line", ErrInvalidField)
	}

	var rows, cols int
	if _, err := fmt.Sscanf(lines[0], "%d %d", &rows, &cols); err != nil {
		return nil, fmt.Errorf("%w: bad dimension line %q", ErrInvalidField, lines[0])
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidField, rows, cols)
	}
	if len(lines) < 2+rows {
		return nil, fmt.Errorf("%w: %d field rows declared, %d present", ErrInvalidField, rows, len(lines)-2)
	}

	var zeroP P
	g, err := zeroP.Parse(strings.TrimSpace(lines[1]))
	if err != nil {
		return nil, fmt.Errorf("%w: bad gravity %q", ErrInvalidField, lines[1])
	}

	s := &Simulator[P, V, VF]{
		rows:    rows,
		cols:    cols,
		cells:   make([]byte, rows*cols),
		p:       make([]P, rows*cols),
		pOld:    make([]P, rows*cols),
		lastUse: make([]int, rows*cols),
		g:       g,
		logger:  opts.Logger,
		static:  opts.Static,
	}

	seed := opts.Seed
	if seed == 0 {
		seed = core.DefaultSeed
	}
	s.rng = core.NewRNG(seed)

	fluid := 0
	for x := 0; x < rows; x++ {
		row := lines[2+x]
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidField, x, len(row), cols)
		}
		copy(s.cells[x*cols:], row)
		for y := 0; y < cols; y++ {
			if row[y] != '#' {
				fluid++
			}
		}
	}
	if fluid == 0 {
		return nil, fmt.Errorf("%w: no non-wall cells", ErrInvalidField)
	}

	for i := range s.rho {
		s.rho[i] = zeroP.FromFloat(defaultRho)
	}
	s.applyDensityOverrides(lines[2+rows:])

	if err := s.allocVectorFields(); err != nil {
		return nil, err
	}
	s.computeFanOut()
	s.logBanner()
	return s, nil
}

func (s *Simulator[P, V, VF]) allocVectorFields() error {
	if s.static {
		vel, err := field.NewStaticVectorField[VF](s.rows, s.cols)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidField, err)
		}
		flow, _ := field.NewStaticVectorField[VF](s.rows, s.cols)
		s.vel, s.flow = vel, flow
		return nil
	}
	s.vel = field.NewVectorField[VF](s.rows, s.cols)
	s.flow = field.NewVectorField[VF](s.rows, s.cols)
	return nil
}

// applyDensityOverrides reads "<char> = <value>" lines; blank or malformed
// lines are skipped.
func (s *Simulator[P, V, VF]) applyDensityOverrides(lines []string) {
	var zeroP P
	for _, line := range lines {
		parts := strings.Fields(line)
		if len(parts) != 3 || len(parts[0]) != 1 || parts[1] != "=" {
			continue
		}
		v, err := zeroP.Parse(parts[2])
		if err != nil {
			continue
		}
		s.rho[parts[0][0]] = v
	}
}

// computeFanOut counts in-bounds non-wall neighbors per cell, fixed for the
// life of the run.
func (s *Simulator[P, V, VF]) computeFanOut() {
	s.dirs = make([]int, s.rows*s.cols)
	for x := 0; x < s.rows; x++ {
		for y := 0; y < s.cols; y++ {
			if s.cell(x, y) == '#' {
				continue
			}
			n := 0
			for _, d := range field.Deltas {
				nx, ny := x+d[0], y+d[1]
				if s.inBounds(nx, ny) && s.cell(nx, ny) != '#' {
					n++
				}
			}
			s.dirs[s.at(x, y)] = n
		}
	}
}

func (s *Simulator[P, V, VF]) at(x, y int) int { return x*s.cols + y }

func (s *Simulator[P, V, VF]) cell(x, y int) byte { return s.cells[x*s.cols+y] }

func (s *Simulator[P, V, VF]) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.rows && y < s.cols
}

func (s *Simulator[P, V, VF]) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

func (s *Simulator[P, V, VF]) logBanner() {
	if s.logger == nil {
		return
	}
	s.logf("field %dx%d, gravity %s", s.rows, s.cols, s.g.String())
	for _, row := range s.FieldLines() {
		s.logf("%s", row)
	}
	var zeroP P
	def := zeroP.FromFloat(defaultRho)
	for c := 0; c < len(s.rho); c++ {
		if s.rho[c].Cmp(def) != 0 {
			s.logf("rho[%q] = %s", byte(c), s.rho[c].String())
		}
	}
}

// Rows reports the grid height.
func (s *Simulator[P, V, VF]) Rows() int { return s.rows }

// Cols reports the grid width.
func (s *Simulator[P, V, VF]) Cols() int { return s.cols }

// FieldLines copies out the current character field, one string per row.
func (s *Simulator[P, V, VF]) FieldLines() []string {
	out := make([]string, s.rows)
	for x := 0; x < s.rows; x++ {
		out[x] = string(s.cells[x*s.cols : (x+1)*s.cols])
	}
	return out
}
