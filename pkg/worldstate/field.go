// Package worldstate holds the per-tile field store (collision,
// temperature, sound, visibility, light) and the event-coalescing
// orchestrator that keeps those fields in sync with room state.
package worldstate

import (
	"math/rand"

	"github.com/opd-ai/unhaunter/pkg/geometry"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{"system": "worldstate"})

// CollisionFieldData is the per-tile collision entry.
type CollisionFieldData struct {
	PlayerFree bool
	GhostFree  bool
	SeeThrough bool
}

// SoundVector is a single resident sound contribution at a tile,
// consumed by ambient mixing and evidence gear.
type SoundVector struct {
	DX, DY    float64
	Intensity float64
}

// TileSource describes one entity's contribution to the field store:
// its position and the subset of its Behavior the store needs.
type TileSource struct {
	Pos             geometry.BoardPosition
	Walkable        bool
	PlayerCollision bool
	GhostCollision  bool
	SeeThrough      bool
}

// Fields is the mission-lifetime field store. All maps are keyed by
// BoardPosition and persist for as long as the mission's map is
// loaded.
type Fields struct {
	Light       map[geometry.BoardPosition]LightFieldData
	Collision   map[geometry.BoardPosition]CollisionFieldData
	Temperature map[geometry.BoardPosition]float64
	Sound       map[geometry.BoardPosition][]SoundVector
	Visibility  map[geometry.BoardPosition]float64

	ExposureLux          float64
	CurrentExposure      float64
	CurrentExposureAccel float64
	AmbientTemp          float64

	RNG *rand.Rand
}

// NewFields builds an empty field store at the given ambient
// temperature baseline.
func NewFields(ambientTemp float64, seed int64) *Fields {
	return &Fields{
		Light:                make(map[geometry.BoardPosition]LightFieldData),
		Collision:            make(map[geometry.BoardPosition]CollisionFieldData),
		Temperature:          make(map[geometry.BoardPosition]float64),
		Sound:                make(map[geometry.BoardPosition][]SoundVector),
		Visibility:           make(map[geometry.BoardPosition]float64),
		CurrentExposure:      1.0,
		CurrentExposureAccel: 1.0,
		AmbientTemp:          ambientTemp,
		RNG:                  rand.New(rand.NewSource(seed)),
	}
}

// RebuildCollision clears and repopulates the collision field from the
// current tile sources. Walkable tiles start free in both senses; any
// source additionally marking player collision overwrites with the
// blocking entry, inheriting ghost passability from its own
// GhostCollision flag.
func (f *Fields) RebuildCollision(sources []TileSource) {
	f.Collision = make(map[geometry.BoardPosition]CollisionFieldData, len(sources))
	for _, s := range sources {
		if s.Walkable {
			f.Collision[s.Pos] = CollisionFieldData{PlayerFree: true, GhostFree: true, SeeThrough: false}
		}
	}
	for _, s := range sources {
		if s.PlayerCollision {
			f.Collision[s.Pos] = CollisionFieldData{
				PlayerFree: false,
				GhostFree:  !s.GhostCollision,
				SeeThrough: s.SeeThrough,
			}
		}
	}
	log.WithField("tiles", len(f.Collision)).Debug("collision field rebuilt")
}

// InitTemperature seeds missing temperature entries for every tile now
// present in the collision field, then relaxes the field for 16
// passes, averaging over free 8-neighbors only.
func (f *Fields) InitTemperature() {
	for pos := range f.Collision {
		if _, ok := f.Temperature[pos]; !ok {
			f.Temperature[pos] = f.AmbientTemp + (f.RNG.Float64()*20 - 10)
		}
	}
	for pass := 0; pass < 16; pass++ {
		f.relaxTemperature()
	}
}

func (f *Fields) relaxTemperature() {
	next := make(map[geometry.BoardPosition]float64, len(f.Temperature))
	for pos, t := range f.Temperature {
		cell, ok := f.Collision[pos]
		if !ok || !cell.PlayerFree {
			next[pos] = t
			continue
		}
		sum, n := 0.0, 0
		for _, nb := range pos.XYNeighbors(1) {
			if nc, ok := f.Collision[nb]; ok && nc.PlayerFree {
				if nt, ok := f.Temperature[nb]; ok {
					sum += nt
					n++
				}
			}
		}
		if n == 0 {
			next[pos] = t
			continue
		}
		next[pos] = sum / float64(n)
	}
	f.Temperature = next
}
