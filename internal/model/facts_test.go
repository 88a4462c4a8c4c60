package model

import "testing"

func TestNewIrrefutableFacts_Shape(t *testing.T) {
	n := 4
	f := NewIrrefutableFacts(n)

	if len(f.DecidedNumbers) != n {
		t.Fatalf("DecidedNumbers has %d rows, want %d", len(f.DecidedNumbers), n)
	}
	if len(f.Candidates) != n {
		t.Fatalf("Candidates has %d rows, want %d", len(f.Candidates), n)
	}
	for y := 0; y < n; y++ {
		if len(f.DecidedNumbers[y]) != n {
			t.Errorf("DecidedNumbers[%d] has %d cols, want %d", y, len(f.DecidedNumbers[y]), n)
		}
		if len(f.Candidates[y]) != n {
			t.Errorf("Candidates[%d] has %d cols, want %d", y, len(f.Candidates[y]), n)
		}
		for x := 0; x < n; x++ {
			if f.DecidedNumbers[y][x] != 0 {
				t.Errorf("DecidedNumbers[%d][%d] = %d, want 0", y, x, f.DecidedNumbers[y][x])
			}
			if len(f.Candidates[y][x]) != n {
				t.Errorf("Candidates[%d][%d] has %d entries, want %d", y, x, len(f.Candidates[y][x]), n)
			}
			for i, c := range f.Candidates[y][x] {
				if c {
					t.Errorf("Candidates[%d][%d][%d] = true, want false for a fresh record", y, x, i)
				}
			}
		}
	}
}
