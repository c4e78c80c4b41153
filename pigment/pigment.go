package pigment

import (
	"fmt"

	"github.com/mmuldo/pigmix/colorspace"
)

// Pigment is a color held in latent pigment space. It is a small value
// type: every operation returns a new value except MixInPlace.
//
// Weighted N-way mixes compose from Scale and Add, e.g. three colors at a
// third each:
//
//	m := a.Scale(1.0 / 3).Add(b.Scale(1.0 / 3)).Add(c.Scale(1.0 / 3))
//
// Keeping the weights summed to 1 is the caller's responsibility; nothing
// here enforces it, but mixtures are only physically meaningful when they
// do.
type Pigment struct {
	z Latent
}

// New constructs a Pigment from a linear sRGB color via the default
// transform.
func New(c colorspace.LinearRGB) Pigment {
	return Pigment{Default.RGBToLatent(c)}
}

// New8 constructs a Pigment from a gamma-encoded 8-bit sRGB color.
func New8(c [3]uint8) Pigment {
	return New(colorspace.Linearize8(c))
}

// New16 constructs a Pigment from a gamma-encoded 16-bit sRGB color.
func New16(c [3]uint16) Pigment {
	return New(colorspace.Linearize16(c))
}

// NewLinear16 constructs a Pigment from a 16-bit linear sRGB color.
func NewLinear16(c [3]uint16) Pigment {
	return New(colorspace.NormalizeLinear16(c))
}

// FromLatent wraps a latent vector as a Pigment.
func FromLatent(z Latent) Pigment {
	return Pigment{z}
}

// FromSlice builds a Pigment from a latent slice. The slice must hold
// exactly NumLatents components.
func FromSlice(z []float64) (Pigment, error) {
	if len(z) != NumLatents {
		return Pigment{}, fmt.Errorf("pigment: latent vector has %d components, want %d", len(z), NumLatents)
	}
	var p Pigment
	copy(p.z[:], z)
	return p, nil
}

// Latent returns the latent vector.
func (p Pigment) Latent() Latent {
	return p.z
}

// ToRGB converts back to linear sRGB via the default transform.
func (p Pigment) ToRGB() colorspace.LinearRGB {
	return Default.LatentToRGB(p.z)
}

// RGB8 converts back to a gamma-encoded 8-bit sRGB color.
func (p Pigment) RGB8() [3]uint8 {
	return colorspace.Encode8(p.ToRGB())
}

// Scale multiplies every latent component by w.
func (p Pigment) Scale(w float64) Pigment {
	var out Pigment
	for i, v := range p.z {
		out.z[i] = v * w
	}
	return out
}

// Add sums the latent components of p and o.
func (p Pigment) Add(o Pigment) Pigment {
	var out Pigment
	for i, v := range p.z {
		out.z[i] = v + o.z[i]
	}
	return out
}

// Lerp mixes a and b at the given ratio, the weight of b. The ratio is
// clamped to [0, 1].
func Lerp(a, b Pigment, ratio float64) Pigment {
	ratio = clamp01(ratio)
	return a.Scale(1 - ratio).Add(b.Scale(ratio))
}

// MixInPlace mixes o into p at the given ratio, the weight of o. The ratio
// is clamped to [0, 1].
func (p *Pigment) MixInPlace(o Pigment, ratio float64) {
	ratio = clamp01(ratio)
	for i := range p.z {
		p.z[i] = p.z[i]*(1-ratio) + o.z[i]*ratio
	}
}
