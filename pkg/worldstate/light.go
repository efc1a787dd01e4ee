package worldstate

import "github.com/opd-ai/unhaunter/pkg/tile"

// LightFieldData is a single light sector cell: accumulated visible
// lux plus the per-channel spectral contribution dynamic emitters and
// baked sources have deposited there.
type LightFieldData struct {
	Lux      float64
	Spectral tile.SpectralContribution
	Transmit float64
}

// Add combines two light samples, used both when seeding a tile from
// multiple contributing entities and when accumulating propagation
// passes.
func (l LightFieldData) Add(o LightFieldData) LightFieldData {
	return LightFieldData{
		Lux:      l.Lux + o.Lux,
		Spectral: l.Spectral.Add(o.Spectral),
		Transmit: l.Transmit * o.Transmit,
	}
}
