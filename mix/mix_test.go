package mix

import (
	"math/rand"
	"testing"

	"github.com/mmuldo/pigmix/colorspace"
	"github.com/mmuldo/pigmix/pigment"
)

var (
	yellow = [3]uint8{252, 211, 0}
	blue   = [3]uint8{0, 0, 96}
)

func within(got, want [3]uint8, tol int, t *testing.T, msg string) {
	t.Helper()
	for ch := 0; ch < 3; ch++ {
		d := int(got[ch]) - int(want[ch])
		if d < -tol || d > tol {
			t.Errorf("%s: got %v, want %v ±%d", msg, got, want, tol)
			return
		}
	}
}

func TestIdentity(t *testing.T) {
	if got := SRGB8(yellow, blue, 0); got != yellow {
		t.Errorf("SRGB8(a, b, 0) = %v, want %v", got, yellow)
	}
	if got := SRGB8(yellow, blue, 1); got != blue {
		t.Errorf("SRGB8(a, b, 1) = %v, want %v", got, blue)
	}

	a16 := [3]uint16{64764, 54227, 0}
	b16 := [3]uint16{0, 0, 24672}
	if got := SRGB16(a16, b16, 0); got != a16 {
		t.Errorf("SRGB16(a, b, 0) = %v, want %v", got, a16)
	}
	if got := SRGB16(a16, b16, 1); got != b16 {
		t.Errorf("SRGB16(a, b, 1) = %v, want %v", got, b16)
	}
}

func TestSelfMix(t *testing.T) {
	for _, ratio := range []float64{0, 0.37, 0.5, 0.93, 1} {
		if got := SRGB8(yellow, yellow, ratio); got != yellow {
			t.Errorf("SRGB8(a, a, %v) = %v, want %v", ratio, got, yellow)
		}
	}
}

func TestSymmetry(t *testing.T) {
	for _, ratio := range []float64{0.1, 0.3, 0.5, 0.8} {
		within(SRGB8(yellow, blue, ratio), SRGB8(blue, yellow, 1-ratio), 1, t, "mix(a,b,r) vs mix(b,a,1-r)")
	}
}

func TestRatioClamped(t *testing.T) {
	if got, want := SRGB8(yellow, blue, -2), SRGB8(yellow, blue, 0); got != want {
		t.Errorf("ratio -2 gave %v, want %v", got, want)
	}
	if got, want := SRGB8(yellow, blue, 7), SRGB8(yellow, blue, 1); got != want {
		t.Errorf("ratio 7 gave %v, want %v", got, want)
	}
}

// Mixing bright yellow with deep blue must come out green-leaning and
// darker than the light-space average, the way paints behave.
func TestYellowBlueMakesGreen(t *testing.T) {
	got := SRGB8(yellow, blue, 0.5)

	if got[1] < got[0] {
		t.Errorf("mix %v is redder than it is green", got)
	}
	if got[2] >= got[1] {
		t.Errorf("mix %v is not green-dominant over blue", got)
	}

	// the light-space average for these inputs is red-dominant and
	// noticeably brighter
	naive := colorspace.Encode8(colorspace.LinearRGB{
		(colorspace.Linearize8(yellow)[0] + colorspace.Linearize8(blue)[0]) / 2,
		(colorspace.Linearize8(yellow)[1] + colorspace.Linearize8(blue)[1]) / 2,
		(colorspace.Linearize8(yellow)[2] + colorspace.Linearize8(blue)[2]) / 2,
	})
	if naive[0] <= naive[1] {
		t.Fatalf("expected red-dominant naive average, got %v", naive)
	}
	if got[0] >= naive[0] {
		t.Errorf("pigment mix %v is not darker in red than the naive average %v", got, naive)
	}

	within(got, [3]uint8{151, 154, 68}, 12, t, "yellow/blue 50/50")
}

func TestFusedMatchesPigmentPath(t *testing.T) {
	la := colorspace.Linearize8(yellow)
	lb := colorspace.Linearize8(blue)

	for _, ratio := range []float64{0, 0.25, 0.5, 0.75, 1} {
		fused := colorspace.Encode8(Linear(la, lb, ratio))
		decomposed := pigment.Lerp(pigment.New(la), pigment.New(lb), ratio).RGB8()
		if fused != decomposed {
			t.Errorf("ratio %v: fused %v, decomposed %v", ratio, fused, decomposed)
		}
	}
}

func TestDitheredStaysWithinOneStep(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	plain := SRGB8(yellow, blue, 0.5)

	for i := 0; i < 200; i++ {
		got := SRGB8Dithered(yellow, blue, 0.5, rng)
		within(got, plain, 1, t, "dithered vs plain")
	}
}

func TestDitheredReproducible(t *testing.T) {
	r1 := rand.New(rand.NewSource(99))
	r2 := rand.New(rand.NewSource(99))

	for i := 0; i < 50; i++ {
		a := SRGB8Dithered(yellow, blue, 0.5, r1)
		b := SRGB8Dithered(yellow, blue, 0.5, r2)
		if a != b {
			t.Fatalf("same seed diverged at draw %d: %v vs %v", i, a, b)
		}
	}
}

func TestLinear16(t *testing.T) {
	a := [3]uint16{60000, 40000, 0}
	b := [3]uint16{0, 0, 8000}

	if got := Linear16(a, b, 0); got != a {
		t.Errorf("Linear16(a, b, 0) = %v, want %v", got, a)
	}
	if got := Linear16(a, b, 1); got != b {
		t.Errorf("Linear16(a, b, 1) = %v, want %v", got, b)
	}

	rng := rand.New(rand.NewSource(5))
	plain := Linear16(a, b, 0.4)
	for i := 0; i < 100; i++ {
		got := Linear16Dithered(a, b, 0.4, rng)
		for ch := 0; ch < 3; ch++ {
			d := int(got[ch]) - int(plain[ch])
			if d < -1 || d > 1 {
				t.Fatalf("dithered linear16 %v strays from %v", got, plain)
			}
		}
	}
}
