package particle

import (
	"testing"
)

func TestNewSystem(t *testing.T) {
	s := NewSystem(100, 12345)
	if s == nil {
		t.Fatal("NewSystem returned nil")
	}
	if s.ParticleSystem == nil {
		t.Fatal("ParticleSystem not initialized")
	}
}

func TestSystemSpawnSmoke(t *testing.T) {
	s := NewSystem(50, 12345)

	initialCount := s.GetActiveCount()
	s.SpawnSmoke(15, 15)

	newCount := s.GetActiveCount()
	if newCount != initialCount+1 {
		t.Errorf("smoke spawned %d particles, want 1", newCount-initialCount)
	}

	particles := s.GetActiveParticles()
	if len(particles) == 0 {
		t.Fatal("no smoke particle spawned")
	}

	// Smoke should rise (positive VZ)
	p := particles[len(particles)-1]
	if p.VZ <= 0 {
		t.Errorf("smoke VZ = %f, want positive (rising)", p.VZ)
	}
}

func TestSystemSpawnSaltyTrace(t *testing.T) {
	s := NewSystem(10, 12345)

	p := s.SpawnSaltyTrace(10, 20)
	if p == nil {
		t.Fatal("SpawnSaltyTrace returned nil")
	}
	if !p.Active {
		t.Error("particle not active")
	}
	if p.X != 10 || p.Y != 20 {
		t.Errorf("position = (%f, %f), want (10, 20)", p.X, p.Y)
	}
}

func TestSystemSpawnDoorSlamDust(t *testing.T) {
	s := NewSystem(50, 12345)

	initialCount := s.GetActiveCount()
	s.SpawnDoorSlamDust(30, 30)

	if s.GetActiveCount() <= initialCount {
		t.Error("door slam dust did not spawn particles")
	}
}

func TestSystemSpawnLightFlicker(t *testing.T) {
	s := NewSystem(50, 12345)

	initialCount := s.GetActiveCount()
	s.SpawnLightFlicker(40, 40)

	if s.GetActiveCount() <= initialCount {
		t.Error("light flicker did not spawn particles")
	}
}
