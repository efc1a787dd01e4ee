package particle

import "image/color"

// System wraps ParticleSystem with convenience methods for the
// haunting-specific effects the ghost and actuation subsystems emit.
type System struct {
	*ParticleSystem
}

// NewSystem creates a new particle system wrapper.
func NewSystem(poolSize int, seed int64) *System {
	return &System{
		ParticleSystem: NewParticleSystem(poolSize, seed),
	}
}

// SpawnSmoke creates the rising smoke a banished ghost's fade-out
// emits for its whole duration.
func (s *System) SpawnSmoke(x, y float64) {
	smokeColor := color.RGBA{R: 100, G: 100, B: 100, A: 150}
	s.Spawn(x, y, 0, 0, 0, 2.0, 2.0, 2.0, smokeColor)
}

// SpawnSaltyTrace marks the tile a salty ghost dusts while its effect
// is active, visible to players carrying UV gear.
func (s *System) SpawnSaltyTrace(x, y float64) *Particle {
	saltColor := color.RGBA{R: 230, G: 230, B: 235, A: 220}
	return s.Spawn(x, y, 0, 0, 0, 0, 6.0, 0.4, saltColor)
}

// SpawnDoorSlamDust kicks up a short burst of dust at a door tile the
// ghost just slammed.
func (s *System) SpawnDoorSlamDust(x, y float64) {
	dustColor := color.RGBA{R: 160, G: 150, B: 130, A: 180}
	s.SpawnBurst(x, y, 0, 10, 3.0, 0.8, 0.5, 0.6, dustColor)
}

// SpawnLightFlicker emits a brief spark-like flash at a fixture the
// ghost is flickering.
func (s *System) SpawnLightFlicker(x, y float64) {
	flickerColor := color.RGBA{R: 255, G: 250, B: 210, A: 200}
	s.SpawnBurst(x, y, 0, 4, 1.5, 0.6, 0.15, 0.3, flickerColor)
}
