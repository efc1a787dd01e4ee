// Package lighting implements the multi-pass directional shadow-cast
// light engine: a baked propagation over the field store plus the
// per-frame exposure-adaptation and dynamic-emitter math that rides on
// top of it.
package lighting

import (
	"math"

	"github.com/opd-ai/unhaunter/pkg/geometry"
	"github.com/opd-ai/unhaunter/pkg/tile"
	"github.com/opd-ai/unhaunter/pkg/worldstate"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

var log = logrus.WithFields(logrus.Fields{"system": "lighting"})

// lightHeight is the fixed z-offset added to every propagation
// distance, keeping light from going to infinity at the source tile.
const lightHeight = 4.0

var (
	passRadius  = [3]int{26, 8, 6}
	passMinGate = [3]float64{0.001, 1e-6, 1e-10}
	passMaxGate = [3]float64{math.Inf(1), 10000, 1000}
)

func passDivisor(pass int) float64 {
	if pass == 0 {
		return 1.01
	}
	return 5.5
}

// Emitter is one tile entity's contribution to the light field seed:
// its additive lux, its transmissivity (opacity to light), and its
// per-channel spectral contribution for evidence gear.
type Emitter struct {
	Pos            geometry.BoardPosition
	Lumens         float64
	Transmissivity float64
	Spectral       tile.SpectralContribution
}

// EmitterFromBehavior builds an Emitter from a resolved tile Behavior
// at a position.
func EmitterFromBehavior(pos geometry.BoardPosition, b tile.Behavior) Emitter {
	return Emitter{
		Pos:            pos,
		Lumens:         b.EmissivityLumens(),
		Transmissivity: b.TransmissivityFactor(),
		Spectral:       b.AdditionalData(),
	}
}

// Engine holds the cached angular-lookup table the propagation passes
// depend on; build once per mission and reuse every rebuild.
type Engine struct {
	CBP *geometry.CachedBoardPos
}

// NewEngine builds a light engine with a fresh CachedBoardPos table.
func NewEngine() *Engine {
	return &Engine{CBP: geometry.NewCachedBoardPos()}
}

// Rebuild recomputes fields.Light from the current emitter list: seeds
// the field, runs the three propagation passes, and derives
// exposure_lux from the resulting average lux.
func (e *Engine) Rebuild(fields *worldstate.Fields, emitters []Emitter) {
	sector := seedSector(emitters)
	for pass := 0; pass < 3; pass++ {
		sector = e.propagate(sector, pass)
	}
	fields.Light = sector

	if len(sector) > 0 {
		luxes := make([]float64, 0, len(sector))
		for _, lfd := range sector {
			luxes = append(luxes, lfd.Lux)
		}
		avg := stat.Mean(luxes, nil)
		fields.ExposureLux = (avg + 2) / 2
	} else {
		fields.ExposureLux = 1.0
	}
	log.WithField("tiles", len(sector)).Debug("light field rebuilt")
}

func seedSector(emitters []Emitter) map[geometry.BoardPosition]worldstate.LightFieldData {
	type accum struct {
		lux      float64
		transmit float64
		spectral tile.SpectralContribution
	}
	acc := make(map[geometry.BoardPosition]*accum)
	for _, em := range emitters {
		a, ok := acc[em.Pos]
		if !ok {
			a = &accum{transmit: 1.0}
			acc[em.Pos] = a
		}
		a.lux += em.Lumens
		a.transmit *= em.Transmissivity
		a.spectral = a.spectral.Add(em.Spectral)
	}
	sector := make(map[geometry.BoardPosition]worldstate.LightFieldData, len(acc))
	for pos, a := range acc {
		sector[pos] = worldstate.LightFieldData{
			Lux:      a.lux,
			Transmit: a.transmit + 0.0001,
			Spectral: a.spectral,
		}
	}
	return sector
}

func cloneSector(src map[geometry.BoardPosition]worldstate.LightFieldData) map[geometry.BoardPosition]worldstate.LightFieldData {
	dst := make(map[geometry.BoardPosition]worldstate.LightFieldData, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

var eightOffsets = [8][2]int64{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func (e *Engine) propagate(src map[geometry.BoardPosition]worldstate.LightFieldData, pass int) map[geometry.BoardPosition]worldstate.LightFieldData {
	dst := cloneSector(src)
	radius := passRadius[pass]
	minGate, maxGate := passMinGate[pass], passMaxGate[pass]
	divisor := passDivisor(pass)

	for pos, s := range src {
		if s.Lux < minGate || s.Lux > maxGate {
			continue
		}
		if pass >= 1 && homogeneousNeighborhood(src, pos) {
			continue
		}

		quantum := s.Lux / divisor
		d := dst[pos]
		d.Lux -= quantum
		dst[pos] = d

		shadowDist := make([]float64, geometry.TauSteps)
		for i := range shadowDist {
			shadowDist[i] = float64(radius + 1)
		}
		square := pos.ClampedXYNeighbors(radius, geometry.MaxRadius)
		for _, p := range square {
			transmit := 1.0
			if ps, ok := src[p]; ok {
				transmit = ps.Transmit
			}
			if transmit >= 0.5 {
				continue
			}
			minDist := e.CBP.Dist(pos, p)
			angleAtP := e.CBP.Angle(pos, p)
			lo, hi := e.CBP.AngleRange(pos, p)
			lo += angleAtP
			hi += angleAtP
			for raw := lo; raw <= hi; raw++ {
				a := ((raw % geometry.TauSteps) + geometry.TauSteps) % geometry.TauSteps
				if shadowDist[a] > minDist {
					shadowDist[a] = minDist
				}
			}
		}
		if s.Transmit < 0.5 {
			for i := range shadowDist {
				shadowDist[i] = 0
			}
		}

		for _, p := range square {
			dist := e.CBP.Dist(pos, p)
			dist2 := dist + lightHeight
			angle := e.CBP.Angle(pos, p)
			sd := shadowDist[angle]
			f := (math.Tanh((sd-dist-0.5)/0.8) + 1) / 2
			add := quantum / (dist2 * dist2) / 2 * f

			cur, ok := dst[p]
			if !ok {
				cur = worldstate.LightFieldData{Transmit: 1.0}
			}
			cur.Lux += add
			dst[p] = cur
		}
	}
	return dst
}

func homogeneousNeighborhood(src map[geometry.BoardPosition]worldstate.LightFieldData, pos geometry.BoardPosition) bool {
	maxLux, minLux := math.Inf(-1), math.Inf(1)
	for _, off := range eightOffsets {
		n := geometry.BoardPosition{X: pos.X + off[0], Y: pos.Y + off[1], Z: pos.Z}
		transmit, lux := 1.0, 0.0
		if ns, ok := src[n]; ok {
			transmit, lux = ns.Transmit, ns.Lux
		}
		if transmit <= 0.7 {
			return false
		}
		if lux > maxLux {
			maxLux = lux
		}
		if lux < minLux {
			minLux = lux
		}
	}
	ratio := 1.0
	switch {
	case minLux > 0:
		ratio = maxLux / minLux
	case maxLux > 0:
		return false // zero-to-positive jump is not homogeneous
	}
	return ratio < 1.9
}
