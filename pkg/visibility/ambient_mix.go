package visibility

import (
	"math"

	"github.com/opd-ai/unhaunter/pkg/audio"
)

// smoothingFactor is the log-domain cross-fade rate (per second) house
// and street gains chase their targets at.
const smoothingFactor = 60.0

// AmbientMixer owns the two pure-DSP ambient loops (house, street) and
// smooths their gains toward the targets AmbientGains derives each
// frame, avoiding an audible snap when visibility changes abruptly.
type AmbientMixer struct {
	House  *audio.AmbientSoundscape
	Street *audio.AmbientSoundscape

	houseGain  float64
	streetGain float64
}

// NewAmbientMixer builds the two ambient loop generators. Both use the
// teacher's "horror" genre preset (hospital-silence atmosphere),
// seeded distinctly so house and street loops never phase-lock.
func NewAmbientMixer(seed uint64) *AmbientMixer {
	return &AmbientMixer{
		House:  audio.NewAmbientSoundscape("horror", seed),
		Street: audio.NewAmbientSoundscape("horror", seed+1),
	}
}

// Update advances the smoothed gains toward targetHouse/targetStreet
// by dt seconds, log-domain at smoothingFactor.
func (m *AmbientMixer) Update(targetHouse, targetStreet, dt float64) {
	m.houseGain = smoothTo(m.houseGain, targetHouse, dt)
	m.streetGain = smoothTo(m.streetGain, targetStreet, dt)
}

func smoothTo(cur, target, dt float64) float64 {
	if cur <= 0 {
		cur = 1e-4
	}
	if target <= 0 {
		target = 1e-4
	}
	logCur := math.Log(cur)
	logTarget := math.Log(target)
	alpha := 1 - math.Exp(-dt*smoothingFactor)
	return math.Exp(logCur + (logTarget-logCur)*alpha)
}

// HouseGain and StreetGain report the current smoothed mix levels.
func (m *AmbientMixer) HouseGain() float64  { return m.houseGain }
func (m *AmbientMixer) StreetGain() float64 { return m.streetGain }
