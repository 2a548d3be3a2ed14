package field

import "github.com/kay-kewl/fluid/internal/num"

// Field is the storage contract shared by the dynamic and static vector
// fields. Slot-index accessors (At/SetAt/AddAt) take a canonical delta
// index; Get/Set/Add resolve a (dx,dy) pair first.
type Field[T num.Real[T]] interface {
	Get(x, y, dx, dy int) T
	Set(x, y, dx, dy int, v T)
	Add(x, y, dx, dy int, dv T) T

	At(x, y, i int) T
	SetAt(x, y, i int, v T)
	AddAt(x, y, i int, dv T) T

	GetArray(x, y int) [4]T
	SetArray(x, y int, a [4]T)

	Reset()
}

var _ Field[num.Float64] = (*VectorField[num.Float64])(nil)

// VectorField holds rows x cols x 4 values in a flat row-major slice.
type VectorField[T num.Real[T]] struct {
	rows, cols int
	v          []T
}

// NewVectorField allocates a zeroed field with the given dimensions.
func NewVectorField[T num.Real[T]](rows, cols int) *VectorField[T] {
	return &VectorField[T]{rows: rows, cols: cols, v: make([]T, rows*cols*4)}
}

func (f *VectorField[T]) idx(x, y, i int) int { return (x*f.cols+y)*4 + i }

// Get returns the slot addressed by the delta (dx,dy).
func (f *VectorField[T]) Get(x, y, dx, dy int) T {
	return f.v[f.idx(x, y, Index(dx, dy))]
}

// Set overwrites the slot addressed by the delta (dx,dy).
func (f *VectorField[T]) Set(x, y, dx, dy int, v T) {
	f.v[f.idx(x, y, Index(dx, dy))] = v
}

// Add accumulates into the slot addressed by the delta and returns the new
// value.
func (f *VectorField[T]) Add(x, y, dx, dy int, dv T) T {
	return f.AddAt(x, y, Index(dx, dy), dv)
}

// At returns slot i of cell (x,y).
func (f *VectorField[T]) At(x, y, i int) T { return f.v[f.idx(x, y, i)] }

// SetAt overwrites slot i of cell (x,y).
func (f *VectorField[T]) SetAt(x, y, i int, v T) { f.v[f.idx(x, y, i)] = v }

// AddAt accumulates into slot i of cell (x,y) and returns the new value.
func (f *VectorField[T]) AddAt(x, y, i int, dv T) T {
	j := f.idx(x, y, i)
	f.v[j] = f.v[j].Add(dv)
	return f.v[j]
}

// GetArray copies out all four slots of a cell.
func (f *VectorField[T]) GetArray(x, y int) [4]T {
	base := f.idx(x, y, 0)
	return [4]T(f.v[base : base+4])
}

// SetArray overwrites all four slots of a cell.
func (f *VectorField[T]) SetArray(x, y int, a [4]T) {
	copy(f.v[f.idx(x, y, 0):], a[:])
}

// Reset zeroes every slot.
func (f *VectorField[T]) Reset() {
	var zero T
	for i := range f.v {
		f.v[i] = zero
	}
}
