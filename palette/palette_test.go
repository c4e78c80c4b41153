package palette

import (
	"testing"
)

var (
	yellow = [3]uint8{252, 211, 0}
	blue   = [3]uint8{0, 0, 96}
)

func TestLadderEndpoints(t *testing.T) {
	ladder, err := Ladder(yellow, blue, 5)
	if err != nil {
		t.Fatal(err)
	}

	if len(ladder) != 5 {
		t.Fatalf("ladder has %d steps, want 5", len(ladder))
	}
	if ladder[0] != yellow {
		t.Errorf("first step = %v, want %v", ladder[0], yellow)
	}
	if ladder[4] != blue {
		t.Errorf("last step = %v, want %v", ladder[4], blue)
	}
}

func TestLadderTooFewSteps(t *testing.T) {
	for _, steps := range []int{-1, 0, 1} {
		if _, err := Ladder(yellow, blue, steps); err == nil {
			t.Errorf("Ladder with %d steps accepted", steps)
		}
	}
}

func TestSpacing(t *testing.T) {
	ladder, err := Ladder(yellow, blue, 8)
	if err != nil {
		t.Fatal(err)
	}

	ds := Spacing(ladder)
	if len(ds) != 7 {
		t.Fatalf("got %d spacings, want 7", len(ds))
	}
	for i, d := range ds {
		if d <= 0 {
			t.Errorf("spacing %d = %v, want > 0 between distinct colors", i, d)
		}
	}
}

func TestSpacingDegenerate(t *testing.T) {
	if ds := Spacing(nil); ds != nil {
		t.Errorf("Spacing(nil) = %v, want nil", ds)
	}
	if ds := Spacing([][3]uint8{yellow}); ds != nil {
		t.Errorf("Spacing of one step = %v, want nil", ds)
	}
}
