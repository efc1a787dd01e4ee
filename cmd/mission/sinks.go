package main

import (
	"github.com/opd-ai/unhaunter/pkg/geometry"
	"github.com/opd-ai/unhaunter/pkg/mission"
	"github.com/sirupsen/logrus"
)

// logAudioSink logs every audio cue instead of playing one, standing in
// for the real AudioSink a renderer-owning process would provide.
type logAudioSink struct {
	houseVolume  float64
	streetVolume float64
	reverbDecay  float64
	reverbWet    float64
	reverbDry    float64
}

func (s *logAudioSink) Play(samplePath string, volume float64, at *geometry.Position) {
	logrus.WithFields(logrus.Fields{"sample": samplePath, "volume": volume}).Debug("audio cue")
}

func (s *logAudioSink) SetHouseVolume(v float64)  { s.houseVolume = v }
func (s *logAudioSink) SetStreetVolume(v float64) { s.streetVolume = v }

func (s *logAudioSink) SetReverb(decay, wetMix, dryMix float64) {
	s.reverbDecay, s.reverbWet, s.reverbDry = decay, wetMix, dryMix
}

// countingRenderSink tallies tile-material writes without actually
// rendering, so the driver can report how much shading work the
// scheduler's write-skip gate let through.
type countingRenderSink struct {
	writes int
}

func (s *countingRenderSink) WriteTileMaterial(pos geometry.BoardPosition, mat mission.TileMaterial) {
	s.writes++
}
