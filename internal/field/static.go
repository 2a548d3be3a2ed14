package field

import (
	"errors"

	"github.com/kay-kewl/fluid/internal/num"
)

// Static capacity, fixed at compile time: 36 rows by 84 columns. The stock
// field in data/default.txt (10x20) fits well inside it.
const (
	StaticRows = 36
	StaticCols = 84
)

// ErrCapacity reports dimensions exceeding the static storage bounds.
var ErrCapacity = errors.New("field: dimensions exceed static capacity")

var _ Field[num.Float64] = (*StaticVectorField[num.Float64])(nil)

// StaticVectorField is the array-backed variant of VectorField, for engines
// whose maximal dimensions are known ahead of time. It satisfies the same
// Field contract over its active rows x cols window.
type StaticVectorField[T num.Real[T]] struct {
	rows, cols int
	v          [StaticRows * StaticCols * 4]T
}

// NewStaticVectorField returns a zeroed static field, or ErrCapacity when
// the requested dimensions do not fit the compile-time bounds.
func NewStaticVectorField[T num.Real[T]](rows, cols int) (*StaticVectorField[T], error) {
	if rows > StaticRows || cols > StaticCols {
		return nil, ErrCapacity
	}
	return &StaticVectorField[T]{rows: rows, cols: cols}, nil
}

func (f *StaticVectorField[T]) idx(x, y, i int) int { return (x*StaticCols+y)*4 + i }

// Get returns the slot addressed by the delta (dx,dy).
func (f *StaticVectorField[T]) Get(x, y, dx, dy int) T {
	return f.v[f.idx(x, y, Index(dx, dy))]
}

// Set overwrites the slot addressed by the delta (dx,dy).
func (f *StaticVectorField[T]) Set(x, y, dx, dy int, v T) {
	f.v[f.idx(x, y, Index(dx, dy))] = v
}

// Add accumulates into the slot addressed by the delta and returns the new
// value.
func (f *StaticVectorField[T]) Add(x, y, dx, dy int, dv T) T {
	return f.AddAt(x, y, Index(dx, dy), dv)
}

// At returns slot i of cell (x,y).
func (f *StaticVectorField[T]) At(x, y, i int) T { return f.v[f.idx(x, y, i)] }

// SetAt overwrites slot i of cell (x,y).
func (f *StaticVectorField[T]) SetAt(x, y, i int, v T) { f.v[f.idx(x, y, i)] = v }

// AddAt accumulates into slot i of cell (x,y) and returns the new value.
func (f *StaticVectorField[T]) AddAt(x, y, i int, dv T) T {
	j := f.idx(x, y, i)
	f.v[j] = f.v[j].Add(dv)
	return f.v[j]
}

// GetArray copies out all four slots of a cell.
func (f *StaticVectorField[T]) GetArray(x, y int) [4]T {
	base := f.idx(x, y, 0)
	return [4]T(f.v[base : base+4])
}

// SetArray overwrites all four slots of a cell.
func (f *StaticVectorField[T]) SetArray(x, y int, a [4]T) {
	copy(f.v[f.idx(x, y, 0):], a[:])
}

// Reset zeroes every slot.
func (f *StaticVectorField[T]) Reset() {
	var zero T
	for i := range f.v {
		f.v[i] = zero
	}
}
