package sim

import (
	"errors"
	"testing"

	"github.com/kay-kewl/fluid/internal/num"
)

func TestNewEngineDispatchesEveryTag(t *testing.T) {
	tags := []string{
		"FLOAT",
		"DOUBLE",
		"FIXED(32,16)",
		"FIXED(64,32)",
		"FAST_FIXED(16,8)",
		"FAST_FIXED(32,16)",
	}
	for _, tag := range tags {
		e, err := NewEngine(tag, "FIXED(32,16)", "DOUBLE", dropField, Options{})
		if err != nil {
			t.Fatalf("tag %s: %v", tag, err)
		}
		if e.Rows() != 5 || e.Cols() != 5 {
			t.Fatalf("tag %s: engine reports %dx%d", tag, e.Rows(), e.Cols())
		}
		e.Step()
		if got := e.FieldLines()[0]; got != "#####" {
			t.Fatalf("tag %s: top wall row %q", tag, got)
		}
	}
}

func TestNewEngineRejectsBadTags(t *testing.T) {
	if _, err := NewEngine("FIXED(8,4)", "FLOAT", "FLOAT", dropField, Options{}); !errors.Is(err, num.ErrInvalidTypeTag) {
		t.Fatalf("err = %v, want ErrInvalidTypeTag", err)
	}
	if _, err := NewEngine("FLOAT", "whatever", "FLOAT", dropField, Options{}); !errors.Is(err, num.ErrInvalidTypeTag) {
		t.Fatalf("err = %v, want ErrInvalidTypeTag", err)
	}
}
