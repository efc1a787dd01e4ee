package lighting

import (
	"math"

	"github.com/opd-ai/unhaunter/pkg/geometry"
	"github.com/opd-ai/unhaunter/pkg/tile"
)

// Spectrum selects which channel a dynamic emitter contributes to.
// Evidence gear reads whichever channel its instrument cares about
// (UV ectoplasm, infrared night-vision, red-light glow, visible lux).
type Spectrum int

const (
	SpectrumVisible Spectrum = iota
	SpectrumRed
	SpectrumInfrared
	SpectrumUltraviolet
)

// Flashlight is a player-held dynamic light. Unlike baked emitters it
// is recomputed every shading frame and never written into
// fields.Light directly.
type Flashlight struct {
	Pos       geometry.Position
	Aim       geometry.Direction
	Spectrum  Spectrum
	Intensity float64
	// FocusWarp narrows the beam: higher values penalize off-axis
	// targets more steeply, approximating a focused reflector cone.
	FocusWarp float64
}

// ShadeAt computes this flashlight's non-baked contribution at a
// world position: a focus-warped inverse-square falloff in a frame
// rotated so the light's aim is the forward axis. Targets behind the
// light (negative forward distance) receive no contribution.
func (fl Flashlight) ShadeAt(at geometry.Position) tile.SpectralContribution {
	delta := at.Delta(fl.Pos)
	rotated := geometry.Position{X: delta.Dx, Y: delta.Dy, Z: delta.Dz}.UnrotateByDir(fl.Aim)

	forward := rotated.X
	if forward <= 0 {
		return tile.SpectralContribution{}
	}
	lateral := math.Hypot(rotated.Y, rotated.Z)
	effDist := forward + fl.FocusWarp*lateral

	lux := fl.Intensity / (effDist*effDist + 1e-6)

	var c tile.SpectralContribution
	switch fl.Spectrum {
	case SpectrumRed:
		c.Red = lux
	case SpectrumInfrared:
		c.Infrared = lux
	case SpectrumUltraviolet:
		c.Ultraviolet = lux
	default:
		c.Visible = lux
	}
	return c
}

// ShadeAllAt sums every active flashlight's contribution at a
// position, the per-tile call the shading pipeline makes once per
// marked tile per frame.
func ShadeAllAt(lights []Flashlight, at geometry.Position) tile.SpectralContribution {
	var total tile.SpectralContribution
	for _, fl := range lights {
		total = total.Add(fl.ShadeAt(at))
	}
	return total
}
