package num

import (
	"errors"
	"testing"
)

func TestParseTagRecognizedSet(t *testing.T) {
	cases := map[string]Tag{
		"FLOAT":            {Kind: KindFloat},
		"DOUBLE":           {Kind: KindDouble},
		"FIXED(32,16)":     {Kind: KindFixed, N: 32, K: 16},
		"FIXED(64,32)":     {Kind: KindFixed, N: 64, K: 32},
		"FAST_FIXED(16,8)": {Kind: KindFastFixed, N: 16, K: 8},
		"FAST_FIXED(32, 16)": {Kind: KindFastFixed, N: 32, K: 16},
	}
	for in, want := range cases {
		got, err := ParseTag(in)
		if err != nil {
			t.Fatalf("ParseTag(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseTag(%q) = %+v, want %+v", in, got, want)
		}
	}
}

func TestParseTagRejectsMalformed(t *testing.T) {
	for _, in := range []string{
		"",
		"float",
		"FIXED",
		"FIXED(32,16",
		"FIXED(32)",
		"FIXED(a,b)",
		"FIXED(8,4)",
		"FAST_FIXED(64,32)",
		"DECIMAL(32,16)",
	} {
		if _, err := ParseTag(in); !errors.Is(err, ErrInvalidTypeTag) {
			t.Fatalf("ParseTag(%q) err = %v, want ErrInvalidTypeTag", in, err)
		}
	}
}
