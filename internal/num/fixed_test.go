package num

import "testing"

func TestFixedMulExact(t *testing.T) {
	var z Fixed[Q16]
	got := z.FromFloat(1.5).Mul(z.FromFloat(2.0))
	if want := z.FromFloat(3.0); got.Cmp(want) != 0 {
		t.Fatalf("1.5 * 2.0 = %s, want %s", got, want)
	}
}

func TestFixedFromFloatTruncates(t *testing.T) {
	var z Fixed[Q16]
	if got := z.FromFloat(0.01); got.Raw != 655 {
		t.Fatalf("FromFloat(0.01) raw = %d, want 655", got.Raw)
	}
	if got := z.FromFloat(-0.01); got.Raw != -655 {
		t.Fatalf("FromFloat(-0.01) raw = %d, want -655 (truncation toward zero)", got.Raw)
	}
}

func TestFixedDivTruncates(t *testing.T) {
	var z Fixed[Q16]
	got := z.FromFloat(1).Div(z.FromFloat(3))
	if got.Raw != 21845 {
		t.Fatalf("1/3 raw = %d, want 21845", got.Raw)
	}
}

func TestFixedScaleAndDivN(t *testing.T) {
	var z Fixed[Q16]
	if got := z.FromFloat(1).Scale(0.8); got.Raw != 52428 {
		t.Fatalf("1.0 * 0.8 raw = %d, want 52428", got.Raw)
	}
	if got := z.FromFloat(1).DivN(3); got.Raw != 21845 {
		t.Fatalf("1.0 / 3 raw = %d, want 21845", got.Raw)
	}
}

func TestFixedNegAbsCmp(t *testing.T) {
	var z Fixed[Q16]
	a := z.FromFloat(2.5)
	if got := a.Neg(); got.Raw != -a.Raw {
		t.Fatalf("Neg raw = %d", got.Raw)
	}
	if got := a.Neg().Abs(); got.Cmp(a) != 0 {
		t.Fatalf("Abs(-2.5) = %s", got)
	}
	if a.Neg().Cmp(a) >= 0 {
		t.Fatal("-2.5 should compare below 2.5")
	}
}

func TestFixedStringParseRoundTrip(t *testing.T) {
	raws := []int64{0, 1, -1, 655, -655, 98304, 21845, -4294967296, 1<<40 + 12345}
	var z Fixed[Q16]
	for _, raw := range raws {
		v := FixedFromRaw[Q16](raw)
		back, err := z.Parse(v.String())
		if err != nil {
			t.Fatalf("parse %q: %v", v.String(), err)
		}
		if back.Raw != raw {
			t.Fatalf("round trip of raw %d gave %d (%q)", raw, back.Raw, v.String())
		}
	}
}

func TestFixed64RoundTrip(t *testing.T) {
	var z Fixed[Q32]
	for _, f := range []float64{0, 1.5, -2.25, 0.0000152587890625} {
		v := z.FromFloat(f)
		back, err := z.Parse(v.String())
		if err != nil {
			t.Fatalf("parse %q: %v", v.String(), err)
		}
		if back.Cmp(v) != 0 {
			t.Fatalf("round trip of %g gave %s", f, back)
		}
	}
}

func TestFastFixedArithmetic(t *testing.T) {
	var z FastFixed[Q8]
	got := z.FromFloat(1.5).Mul(z.FromFloat(2.0))
	if want := z.FromFloat(3.0); got.Cmp(want) != 0 {
		t.Fatalf("1.5 * 2.0 = %s, want %s", got, want)
	}
	if raw := z.FromFloat(1.5).Raw; raw != 384 {
		t.Fatalf("FromFloat(1.5) raw = %d, want 384", raw)
	}
	back, err := z.Parse(z.FromFloat(-0.25).String())
	if err != nil || back.Raw != -64 {
		t.Fatalf("round trip -0.25: raw %d err %v", back.Raw, err)
	}
}

func TestFloatRoundTrip(t *testing.T) {
	var f32 Float32
	for _, f := range []float64{0, 0.1, -3.5, 1e6} {
		v := f32.FromFloat(f)
		back, err := f32.Parse(v.String())
		if err != nil {
			t.Fatalf("parse %q: %v", v.String(), err)
		}
		if back.Cmp(v) != 0 {
			t.Fatalf("float32 round trip of %g gave %s", f, back)
		}
	}
	var f64 Float64
	v := f64.FromFloat(0.1)
	back, err := f64.Parse(v.String())
	if err != nil || back.Cmp(v) != 0 {
		t.Fatalf("float64 round trip of 0.1 gave %s err %v", back, err)
	}
}

func TestConvTruncatesIntoFixed(t *testing.T) {
	got := Conv[Fixed[Q16]](Float64(0.01))
	if got.Raw != 655 {
		t.Fatalf("Conv raw = %d, want 655", got.Raw)
	}
	back := Conv[Float64](got)
	if back != Float64(655)/65536 {
		t.Fatalf("Conv back = %v", back)
	}
}
