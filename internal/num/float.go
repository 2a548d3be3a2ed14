package num

import "strconv"

// Float32 is the FLOAT representation.
type Float32 float32

func (a Float32) Add(b Float32) Float32 { return a + b }
func (a Float32) Sub(b Float32) Float32 { return a - b }
func (a Float32) Mul(b Float32) Float32 { return a * b }
func (a Float32) Div(b Float32) Float32 { return a / b }
func (a Float32) Neg() Float32          { return -a }

func (a Float32) Abs() Float32 {
	if a < 0 {
		return -a
	}
	return a
}

func (a Float32) Scale(f float64) Float32 { return Float32(float64(a) * f) }
func (a Float32) DivN(n int) Float32      { return a / Float32(n) }

func (a Float32) Cmp(b Float32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (Float32) FromFloat(f float64) Float32 { return Float32(f) }
func (a Float32) Float() float64            { return float64(a) }

func (a Float32) String() string {
	return strconv.FormatFloat(float64(a), 'g', -1, 32)
}

func (Float32) Parse(s string) (Float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return Float32(f), nil
}

// Float64 is the DOUBLE representation.
type Float64 float64

func (a Float64) Add(b Float64) Float64 { return a + b }
func (a Float64) Sub(b Float64) Float64 { return a - b }
func (a Float64) Mul(b Float64) Float64 { return a * b }
func (a Float64) Div(b Float64) Float64 { return a / b }
func (a Float64) Neg() Float64          { return -a }

func (a Float64) Abs() Float64 {
	if a < 0 {
		return -a
	}
	return a
}

func (a Float64) Scale(f float64) Float64 { return a * Float64(f) }
func (a Float64) DivN(n int) Float64      { return a / Float64(n) }

func (a Float64) Cmp(b Float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (Float64) FromFloat(f float64) Float64 { return Float64(f) }
func (a Float64) Float() float64            { return float64(a) }

func (a Float64) String() string {
	return strconv.FormatFloat(float64(a), 'g', -1, 64)
}

func (Float64) Parse(s string) (Float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return Float64(f), nil
}
