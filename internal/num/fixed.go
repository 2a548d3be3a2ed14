package num

import "strconv"

// Frac selects the number of fractional bits of a fixed-point type at
// compile time, so each (N,K) pairing instantiates its own monomorphic
// arithmetic.
type Frac interface {
	Frac() uint
}

// Q8 marks 8 fractional bits.
type Q8 struct{}

// Q16 marks 16 fractional bits.
type Q16 struct{}

// Q32 marks 32 fractional bits.
type Q32 struct{}

func (Q8) Frac() uint  { return 8 }
func (Q16) Frac() uint { return 16 }
func (Q32) Frac() uint { return 32 }

// Fixed is a binary fixed-point value: Raw represents Raw / 2^K. The backing
// integer is int64 regardless of the declared width N; intermediate products
// are not widened beyond it, so overflow wraps and callers must choose N
// large enough for their dynamic range.
type Fixed[F Frac] struct {
	Raw int64
}

// FixedFromRaw builds a value directly from its raw representation.
func FixedFromRaw[F Frac](raw int64) Fixed[F] {
	return Fixed[F]{Raw: raw}
}

func (a Fixed[F]) Add(b Fixed[F]) Fixed[F] { return Fixed[F]{a.Raw + b.Raw} }
func (a Fixed[F]) Sub(b Fixed[F]) Fixed[F] { return Fixed[F]{a.Raw - b.Raw} }

func (a Fixed[F]) Mul(b Fixed[F]) Fixed[F] {
	var f F
	return Fixed[F]{(a.Raw * b.Raw) >> f.Frac()}
}

// Div truncates toward zero.
func (a Fixed[F]) Div(b Fixed[F]) Fixed[F] {
	var f F
	return Fixed[F]{(a.Raw << f.Frac()) / b.Raw}
}

func (a Fixed[F]) Neg() Fixed[F] { return Fixed[F]{-a.Raw} }

func (a Fixed[F]) Abs() Fixed[F] {
	if a.Raw < 0 {
		return Fixed[F]{-a.Raw}
	}
	return a
}

func (a Fixed[F]) Scale(f float64) Fixed[F] {
	return Fixed[F]{int64(float64(a.Raw) * f)}
}

func (a Fixed[F]) DivN(n int) Fixed[F] {
	return Fixed[F]{int64(float64(a.Raw) / float64(n))}
}

func (a Fixed[F]) Cmp(b Fixed[F]) int {
	switch {
	case a.Raw < b.Raw:
		return -1
	case a.Raw > b.Raw:
		return 1
	}
	return 0
}

func (Fixed[F]) FromFloat(v float64) Fixed[F] {
	var f F
	return Fixed[F]{int64(v * float64(int64(1)<<f.Frac()))}
}

func (a Fixed[F]) Float() float64 {
	var f F
	return float64(a.Raw) / float64(int64(1)<<f.Frac())
}

func (a Fixed[F]) String() string {
	return strconv.FormatFloat(a.Float(), 'g', -1, 64)
}

func (a Fixed[F]) Parse(s string) (Fixed[F], error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Fixed[F]{}, err
	}
	return a.FromFloat(v), nil
}

// FastFixed shares Fixed's semantic contract on an int32 backing, the
// smallest fast integer covering the recognized widths. Products and shifted
// dividends stay in int32, so its usable range is narrower than Fixed's.
type FastFixed[F Frac] struct {
	Raw int32
}

// FastFixedFromRaw builds a value directly from its raw representation.
func FastFixedFromRaw[F Frac](raw int32) FastFixed[F] {
	return FastFixed[F]{Raw: raw}
}

func (a FastFixed[F]) Add(b FastFixed[F]) FastFixed[F] { return FastFixed[F]{a.Raw + b.Raw} }
func (a FastFixed[F]) Sub(b FastFixed[F]) FastFixed[F] { return FastFixed[F]{a.Raw - b.Raw} }

func (a FastFixed[F]) Mul(b FastFixed[F]) FastFixed[F] {
	var f F
	return FastFixed[F]{(a.Raw * b.Raw) >> f.Frac()}
}

func (a FastFixed[F]) Div(b FastFixed[F]) FastFixed[F] {
	var f F
	return FastFixed[F]{(a.Raw << f.Frac()) / b.Raw}
}

func (a FastFixed[F]) Neg() FastFixed[F] { return FastFixed[F]{-a.Raw} }

func (a FastFixed[F]) Abs() FastFixed[F] {
	if a.Raw < 0 {
		return FastFixed[F]{-a.Raw}
	}
	return a
}

func (a FastFixed[F]) Scale(f float64) FastFixed[F] {
	return FastFixed[F]{int32(float64(a.Raw) * f)}
}

func (a FastFixed[F]) DivN(n int) FastFixed[F] {
	return FastFixed[F]{int32(float64(a.Raw) / float64(n))}
}

func (a FastFixed[F]) Cmp(b FastFixed[F]) int {
	switch {
	case a.Raw < b.Raw:
		return -1
	case a.Raw > b.Raw:
		return 1
	}
	return 0
}

func (FastFixed[F]) FromFloat(v float64) FastFixed[F] {
	var f F
	return FastFixed[F]{int32(v * float64(int64(1)<<f.Frac()))}
}

func (a FastFixed[F]) Float() float64 {
	var f F
	return float64(a.Raw) / float64(int64(1)<<f.Frac())
}

func (a FastFixed[F]) String() string {
	return strconv.FormatFloat(a.Float(), 'g', -1, 64)
}

func (a FastFixed[F]) Parse(s string) (FastFixed[F], error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return FastFixed[F]{}, err
	}
	return a.FromFloat(v), nil
}
