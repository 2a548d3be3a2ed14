package sim

import (
	"fmt"
	"io"

	"github.com/kay-kewl/fluid/internal/num"
)

// Engine is the type-erased surface of a monomorphic Simulator, what the
// driver and the serializer program against.
type Engine interface {
	Step()
	Rows() int
	Cols() int
	FieldLines() []string
	Save(io.Writer) error
	Load(io.Reader) error
}

var _ Engine = (*Simulator[num.Float64, num.Float64, num.Float64])(nil)

// NewEngine resolves the three numeric type tags and constructs the matching
// monomorphic simulator from the parsed field text. Each tag is drawn from
// the recognized set; the pressure, velocity and velocity-flow selections
// are independent.
func NewEngine(pTag, vTag, vfTag string, lines []string, opts Options) (Engine, error) {
	p, err := num.ParseTag(pTag)
	if err != nil {
		return nil, fmt.Errorf("pressure type: %w", err)
	}
	v, err := num.ParseTag(vTag)
	if err != nil {
		return nil, fmt.Errorf("velocity type: %w", err)
	}
	vf, err := num.ParseTag(vfTag)
	if err != nil {
		return nil, fmt.Errorf("velocity-flow type: %w", err)
	}
	return bindP(p, v, vf, lines, opts)
}

// The bind chain fixes one type parameter per level, monomorphizing the
// engine over the full (P, V, VF) triple.

func bindP(p, v, vf num.Tag, lines []string, opts Options) (Engine, error) {
	switch {
	case p.Kind == num.KindFloat:
		return bindV[num.Float32](v, vf, lines, opts)
	case p.Kind == num.KindDouble:
		return bindV[num.Float64](v, vf, lines, opts)
	case p.Kind == num.KindFixed && p.N == 32:
		return bindV[num.Fixed[num.Q16]](v, vf, lines, opts)
	case p.Kind == num.KindFixed && p.N == 64:
		return bindV[num.Fixed[num.Q32]](v, vf, lines, opts)
	case p.Kind == num.KindFastFixed && p.N == 16:
		return bindV[num.FastFixed[num.Q8]](v, vf, lines, opts)
	default:
		return bindV[num.FastFixed[num.Q16]](v, vf, lines, opts)
	}
}

func bindV[P num.Real[P]](v, vf num.Tag, lines []string, opts Options) (Engine, error) {
	switch {
	case v.Kind == num.KindFloat:
		return bindVF[P, num.Float32](vf, lines, opts)
	case v.Kind == num.KindDouble:
		return bindVF[P, num.Float64](vf, lines, opts)
	case v.Kind == num.KindFixed && v.N == 32:
		return bindVF[P, num.Fixed[num.Q16]](vf, lines, opts)
	case v.Kind == num.KindFixed && v.N == 64:
		return bindVF[P, num.Fixed[num.Q32]](vf, lines, opts)
	case v.Kind == num.KindFastFixed && v.N == 16:
		return bindVF[P, num.FastFixed[num.Q8]](vf, lines, opts)
	default:
		return bindVF[P, num.FastFixed[num.Q16]](vf, lines, opts)
	}
}

func bindVF[P num.Real[P], V num.Real[V]](vf num.Tag, lines []string, opts Options) (Engine, error) {
	switch {
	case vf.Kind == num.KindFloat:
		return New[P, V, num.Float32](lines, opts)
	case vf.Kind == num.KindDouble:
		return New[P, V, num.Float64](lines, opts)
	case vf.Kind == num.KindFixed && vf.N == 32:
		return New[P, V, num.Fixed[num.Q16]](lines, opts)
	case vf.Kind == num.KindFixed && vf.N == 64:
		return New[P, V, num.Fixed[num.Q32]](lines, opts)
	case vf.Kind == num.KindFastFixed && vf.N == 16:
		return New[P, V, num.FastFixed[num.Q8]](lines, opts)
	default:
		return New[P, V, num.FastFixed[num.Q16]](lines, opts)
	}
}
