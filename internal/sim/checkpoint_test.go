package sim

import (
	"bytes"
	"strings"
	"testing"
)

func TestCheckpointRoundTrip(t *testing.T) {
	s := mustSim(t, dropField, Options{})
	for tick := 0; tick < 3; tick++ {
		s.Step()
	}

	var saved bytes.Buffer
	if err := s.Save(&saved); err != nil {
		t.Fatal(err)
	}

	restored := mustSim(t, dropField, Options{})
	if err := restored.Load(bytes.NewReader(saved.Bytes())); err != nil {
		t.Fatal(err)
	}

	var again bytes.Buffer
	if err := restored.Save(&again); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(saved.Bytes(), again.Bytes()) {
		t.Fatalf("round trip drifted:\n--- saved ---\n%s--- reloaded ---\n%s", saved.String(), again.String())
	}

	if restored.ut != s.ut {
		t.Fatalf("clock not restored: %d != %d", restored.ut, s.ut)
	}
	if restored.rho['w'].Cmp(s.rho['w']) != 0 {
		t.Fatal("density override not restored")
	}
}

func TestCheckpointLayout(t *testing.T) {
	s := mustSim(t, dropField, Options{})

	var buf bytes.Buffer
	if err := s.Save(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	// Header, gravity, 5 field rows, 5 pressure rows, 5 velocity rows,
	// clock, one density override.
	if want := 2 + 5 + 5 + 5 + 1 + 1; len(lines) != want {
		t.Fatalf("checkpoint has %d lines, want %d", len(lines), want)
	}
	if lines[0] != "5 5" {
		t.Fatalf("header %q", lines[0])
	}
	if lines[2] != "#####" || lines[3] != "#.w.#" {
		t.Fatalf("field rows not verbatim: %q %q", lines[2], lines[3])
	}
	if got := len(strings.Fields(lines[7])); got != 10 {
		t.Fatalf("pressure row has %d values, want 10", got)
	}
	if got := len(strings.Fields(lines[12])); got != 20 {
		t.Fatalf("velocity row has %d values, want 20", got)
	}
	if lines[17] != "0" {
		t.Fatalf("fresh engine clock line %q, want 0", lines[17])
	}
	if lines[18] != "w = 1" {
		t.Fatalf("density line %q", lines[18])
	}
}

func TestLoadRejectsCorruptCheckpoints(t *testing.T) {
	s := mustSim(t, dropField, Options{})
	var saved bytes.Buffer
	if err := s.Save(&saved); err != nil {
		t.Fatal(err)
	}

	truncated := saved.String()[:saved.Len()/2]
	if err := mustSim(t, dropField, Options{}).Load(strings.NewReader(truncated)); err == nil {
		t.Fatal("truncated checkpoint accepted")
	}

	garbled := strings.Replace(saved.String(), "5 5", "x y", 1)
	if err := mustSim(t, dropField, Options{}).Load(strings.NewReader(garbled)); err == nil {
		t.Fatal("garbled header accepted")
	}
}
