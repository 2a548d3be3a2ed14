package sim

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kay-kewl/fluid/internal/field"
)

// Save writes the engine state in the checkpoint format: the field
// description, per-cell P and P_old pairs in row-major order, per-cell
// velocity components in canonical-delta order, the logical clock, then the
// non-default density overrides. Numeric text round-trips through the
// numeric types' Parse/String contract.
func (s *Simulator[P, V, VF]) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d %d\n", s.rows, s.cols)
	fmt.Fprintf(bw, "%s\n", s.g.String())
	for x := 0; x < s.rows; x++ {
		bw.Write(s.cells[x*s.cols : (x+1)*s.cols])
		bw.WriteByte('\n')
	}

	for x := 0; x < s.rows; x++ {
		for y := 0; y < s.cols; y++ {
			if y > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(s.p[s.at(x, y)].String())
			bw.WriteByte(' ')
			bw.WriteString(s.pOld[s.at(x, y)].String())
		}
		bw.WriteByte('\n')
	}

	for x := 0; x < s.rows; x++ {
		for y := 0; y < s.cols; y++ {
			for i := 0; i < 4; i++ {
				if y > 0 || i > 0 {
					bw.WriteByte(' ')
				}
				bw.WriteString(s.vel.At(x, y, i).String())
			}
		}
		bw.WriteByte('\n')
	}

	fmt.Fprintf(bw, "%d\n", s.ut)

	var zeroP P
	def := zeroP.FromFloat(defaultRho)
	for c := 0; c < len(s.rho); c++ {
		if s.rho[c].Cmp(def) != 0 {
			fmt.Fprintf(bw, "%c = %s\n", byte(c), s.rho[c].String())
		}
	}
	return bw.Flush()
}

// Load replaces the engine state with a previously saved checkpoint. The
// velocity-flow field and the last-use stamps restart from zero; the clock,
// pressures, velocities and densities are restored exactly.
func (s *Simulator[P, V, VF]) Load(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	next := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return sc.Text(), nil
	}

	header, err := next()
	if err != nil {
		return err
	}
	var rows, cols int
	if _, err := fmt.Sscanf(header, "%d %d", &rows, &cols); err != nil {
		return fmt.Errorf("%w: bad dimension line %q", ErrInvalidField, header)
	}
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidField, rows, cols)
	}
	if s.static && (rows > field.StaticRows || cols > field.StaticCols) {
		return fmt.Errorf("%w: %v", ErrInvalidField, field.ErrCapacity)
	}

	gline, err := next()
	if err != nil {
		return err
	}
	var zeroP P
	g, err := zeroP.Parse(strings.TrimSpace(gline))
	if err != nil {
		return fmt.Errorf("%w: bad gravity %q", ErrInvalidField, gline)
	}

	cells := make([]byte, rows*cols)
	for x := 0; x < rows; x++ {
		row, err := next()
		if err != nil {
			return err
		}
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidField, x, len(row), cols)
		}
		copy(cells[x*cols:], row)
	}

	p := make([]P, rows*cols)
	pOld := make([]P, rows*cols)
	for x := 0; x < rows; x++ {
		line, err := next()
		if err != nil {
			return err
		}
		toks := strings.Fields(line)
		if len(toks) != 2*cols {
			return fmt.Errorf("%w: pressure row %d has %d values, want %d", ErrInvalidField, x, len(toks), 2*cols)
		}
		for y := 0; y < cols; y++ {
			if p[x*cols+y], err = zeroP.Parse(toks[2*y]); err != nil {
				return fmt.Errorf("%w: pressure %q", ErrInvalidField, toks[2*y])
			}
			if pOld[x*cols+y], err = zeroP.Parse(toks[2*y+1]); err != nil {
				return fmt.Errorf("%w: pressure %q", ErrInvalidField, toks[2*y+1])
			}
		}
	}

	var zeroVF VF
	vels := make([][4]VF, rows*cols)
	for x := 0; x < rows; x++ {
		line, err := next()
		if err != nil {
			return err
		}
		toks := strings.Fields(line)
		if len(toks) != 4*cols {
			return fmt.Errorf("%w: velocity row %d has %d values, want %d", ErrInvalidField, x, len(toks), 4*cols)
		}
		for y := 0; y < cols; y++ {
			for i := 0; i < 4; i++ {
				v, err := zeroVF.Parse(toks[4*y+i])
				if err != nil {
					return fmt.Errorf("%w: velocity %q", ErrInvalidField, toks[4*y+i])
				}
				vels[x*cols+y][i] = v
			}
		}
	}

	utLine, err := next()
	if err != nil {
		return err
	}
	ut, err := strconv.Atoi(strings.TrimSpace(utLine))
	if err != nil {
		return fmt.Errorf("%w: bad clock %q", ErrInvalidField, utLine)
	}

	var rest []string
	for sc.Scan() {
		rest = append(rest, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return err
	}

	s.rows, s.cols = rows, cols
	s.cells = cells
	s.p, s.pOld = p, pOld
	s.lastUse = make([]int, rows*cols)
	s.g = g
	s.ut = ut
	if err := s.allocVectorFields(); err != nil {
		return err
	}
	for x := 0; x < rows; x++ {
		for y := 0; y < cols; y++ {
			s.vel.SetArray(x, y, vels[x*cols+y])
		}
	}

	for i := range s.rho {
		s.rho[i] = zeroP.FromFloat(defaultRho)
	}
	s.applyDensityOverrides(rest)
	s.computeFanOut()
	return nil
}
