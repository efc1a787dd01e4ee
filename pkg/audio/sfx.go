// Package audio procedurally generates sound effect, ambient and reverb data.
package audio

import (
	"bytes"
	"math"
)

// GenerateRoarSound creates a genre-specific ghost roar stinger, used
// for hunt-trigger, banishment fade-start, and fade-end events. The
// genre switch keeps each setting's own DSP flavor distinct even
// though a single mission typically sticks to one haunting genre.
func GenerateRoarSound(genreID string, seed uint64) []byte {
	rng := newLocalRNG(seed)
	samples := sampleRate / 3
	buf := &bytes.Buffer{}
	writeWAVHeader(buf, samples)

	growlDepth := 1.0
	rumbleFreq := 60.0
	harshness := 1.0

	switch genreID {
	case "fantasy":
		growlDepth = 0.7
		rumbleFreq = 70.0
		harshness = 0.8
	case "scifi":
		growlDepth = 0.5
		rumbleFreq = 90.0
		harshness = 1.3
	case "horror":
		growlDepth = 1.4
		rumbleFreq = 45.0
		harshness = 1.6
	case "cyberpunk":
		growlDepth = 0.6
		rumbleFreq = 100.0
		harshness = 1.1
	case "postapoc":
		growlDepth = 1.1
		rumbleFreq = 55.0
		harshness = 1.2
	}

	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples)
		env := math.Exp(-t*1.5) * (1 - math.Exp(-t*40))

		rumble := math.Sin(2*math.Pi*rumbleFreq*float64(i)/float64(sampleRate)) * growlDepth
		growl := math.Sin(2*math.Pi*rumbleFreq*2.1*float64(i)/float64(sampleRate)) * growlDepth * 0.4
		noise := (rng.Float64()*2.0 - 1.0) * harshness * 0.3

		val := (rumble + growl + noise) * env * 16000.0
		clamped := int16(clampF(val, -32000, 32000))
		writeInt16(buf, clamped)
		writeInt16(buf, clamped)
	}

	return buf.Bytes()
}

// GenerateRepellentHitSound creates a genre-specific spray-hiss stinger
// for a correct repellent application landing on the ghost.
func GenerateRepellentHitSound(genreID string, seed uint64) []byte {
	rng := newLocalRNG(seed)
	samples := sampleRate / 8
	buf := &bytes.Buffer{}
	writeWAVHeader(buf, samples)

	hissPitch := 1.0
	fizzle := 1.0

	switch genreID {
	case "fantasy":
		hissPitch = 0.8
		fizzle = 0.7
	case "scifi":
		hissPitch = 1.4
		fizzle = 1.2
	case "horror":
		hissPitch = 0.9
		fizzle = 1.5
	case "cyberpunk":
		hissPitch = 1.3
		fizzle = 1.0
	case "postapoc":
		hissPitch = 0.85
		fizzle = 1.3
	}

	for i := 0; i < samples; i++ {
		env := math.Exp(-float64(i) / float64(samples/6))
		noise := (rng.Float64()*2.0 - 1.0) * env * fizzle

		freq := 3000.0 * hissPitch
		tone := math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * env * 0.2

		val := int16((noise*0.8 + tone*0.2) * 11000.0)
		writeInt16(buf, val)
		writeInt16(buf, val)
	}

	return buf.Bytes()
}

// GenerateDoorSlamSound creates a genre-specific percussive bang for
// a door slam raised by ghost environmental actuation — a distinct
// path from any player-interaction sound so the ghost's own world
// manipulation never reuses the interaction stinger (see the
// door-slam decision under OPEN QUESTION DECISIONS in SPEC_FULL.md).
func GenerateDoorSlamSound(genreID string, seed uint64) []byte {
	samples := sampleRate / 5
	buf := &bytes.Buffer{}
	writeWAVHeader(buf, samples)

	impactNotes := []float64{80.0, 120.0}
	rattle := 1.0

	switch genreID {
	case "fantasy":
		impactNotes = []float64{90.0, 130.0}
		rattle = 0.8
	case "scifi":
		impactNotes = []float64{100.0, 160.0}
		rattle = 0.5
	case "horror":
		impactNotes = []float64{60.0, 95.0}
		rattle = 1.4
	case "cyberpunk":
		impactNotes = []float64{110.0, 150.0}
		rattle = 0.6
	case "postapoc":
		impactNotes = []float64{70.0, 100.0}
		rattle = 1.2
	}

	rng := newLocalRNG(seed)
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples)
		impactEnv := math.Exp(-t * 10.0)
		rattleEnv := math.Exp(-t*3.0) * rattle

		val := 0.0
		for _, freq := range impactNotes {
			val += math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * impactEnv * 0.4
		}
		val += (rng.Float64()*2.0 - 1.0) * rattleEnv * 0.3

		writeInt16(buf, int16(val*14000.0))
		writeInt16(buf, int16(val*14000.0))
	}

	return buf.Bytes()
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
