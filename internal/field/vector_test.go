package field

import (
	"errors"
	"testing"

	"github.com/kay-kewl/fluid/internal/num"
)

type testVal = num.Fixed[num.Q16]

func val(f float64) testVal {
	var z testVal
	return z.FromFloat(f)
}

func TestCanonicalDeltaOrder(t *testing.T) {
	want := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	if Deltas != want {
		t.Fatalf("Deltas = %v, want %v", Deltas, want)
	}
	for i, d := range Deltas {
		if Index(d[0], d[1]) != i {
			t.Fatalf("Index(%d,%d) != %d", d[0], d[1], i)
		}
	}
}

func TestOppositePairsReverseDeltas(t *testing.T) {
	for i, d := range Deltas {
		j := Opposite(i)
		if Deltas[j][0] != -d[0] || Deltas[j][1] != -d[1] {
			t.Fatalf("Opposite(%d) = %d, which is %v not the reverse of %v", i, j, Deltas[j], d)
		}
	}
}

func TestIndexPanicsOnUnknownDelta(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrInvalidDelta) {
			t.Fatalf("recovered %v, want ErrInvalidDelta", err)
		}
	}()
	Index(1, 1)
}

func TestVectorFieldAccess(t *testing.T) {
	f := NewVectorField[testVal](3, 4)

	if got := f.Add(1, 2, 0, 1, val(1.5)); got.Cmp(val(1.5)) != 0 {
		t.Fatalf("Add returned %s, want 1.5", got)
	}
	if got := f.Get(1, 2, 0, 1); got.Cmp(val(1.5)) != 0 {
		t.Fatalf("Get returned %s, want 1.5", got)
	}
	if got := f.Get(1, 2, 0, -1); got.Cmp(val(0)) != 0 {
		t.Fatalf("untouched slot = %s, want 0", got)
	}

	f.Set(1, 2, -1, 0, val(-2))
	arr := f.GetArray(1, 2)
	if arr[0].Cmp(val(-2)) != 0 || arr[3].Cmp(val(1.5)) != 0 {
		t.Fatalf("GetArray = %v", arr)
	}

	f.SetArray(0, 0, arr)
	if f.At(0, 0, 3).Cmp(val(1.5)) != 0 {
		t.Fatal("SetArray did not copy slot 3")
	}

	f.Reset()
	for i := 0; i < 4; i++ {
		if f.At(1, 2, i).Cmp(val(0)) != 0 {
			t.Fatalf("slot %d nonzero after Reset", i)
		}
	}
}

func TestStaticVectorFieldCapacity(t *testing.T) {
	if _, err := NewStaticVectorField[testVal](StaticRows, StaticCols); err != nil {
		t.Fatalf("full-capacity field rejected: %v", err)
	}
	if _, err := NewStaticVectorField[testVal](StaticRows+1, 1); !errors.Is(err, ErrCapacity) {
		t.Fatalf("oversized rows: err = %v, want ErrCapacity", err)
	}
	if _, err := NewStaticVectorField[testVal](1, StaticCols+1); !errors.Is(err, ErrCapacity) {
		t.Fatalf("oversized cols: err = %v, want ErrCapacity", err)
	}

	f, err := NewStaticVectorField[testVal](4, 5)
	if err != nil {
		t.Fatal(err)
	}
	f.Add(3, 4, 0, 1, val(2))
	if got := f.At(3, 4, 3); got.Cmp(val(2)) != 0 {
		t.Fatalf("static At = %s, want 2", got)
	}
	f.Reset()
	if got := f.At(3, 4, 3); got.Cmp(val(0)) != 0 {
		t.Fatal("static Reset left a value behind")
	}
}
