package audio

import (
	"bytes"
	"testing"
)

func verifyWAV(t *testing.T, data []byte, label string) {
	t.Helper()
	if len(data) < 44 {
		t.Fatalf("%s: data too short", label)
	}
	if !bytes.Equal(data[0:4], []byte("RIFF")) {
		t.Errorf("%s: missing RIFF header", label)
	}
	if !bytes.Equal(data[8:12], []byte("WAVE")) {
		t.Errorf("%s: missing WAVE header", label)
	}

	nonZeroCount := 0
	for i := 44; i < len(data); i += 2 {
		if data[i] != 0 || data[i+1] != 0 {
			nonZeroCount++
		}
	}
	if nonZeroCount == 0 {
		t.Errorf("%s: sound is silent", label)
	}
}

func TestGenerateRoarSound(t *testing.T) {
	tests := []struct {
		name    string
		genreID string
		seed    uint64
	}{
		{"fantasy roar", "fantasy", 11111},
		{"scifi roar", "scifi", 22222},
		{"horror roar", "horror", 33333},
		{"cyberpunk roar", "cyberpunk", 44444},
		{"postapoc roar", "postapoc", 55555},
		{"unknown genre roar", "unknown", 66666},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := GenerateRoarSound(tt.genreID, tt.seed)
			verifyWAV(t, data, tt.name)
		})
	}
}

func TestGenerateRoarSound_Deterministic(t *testing.T) {
	a := GenerateRoarSound("horror", 42)
	b := GenerateRoarSound("horror", 42)
	if !bytes.Equal(a, b) {
		t.Error("GenerateRoarSound should be deterministic for a given seed")
	}
}

func TestGenerateRepellentHitSound(t *testing.T) {
	tests := []struct {
		name    string
		genreID string
		seed    uint64
	}{
		{"fantasy hiss", "fantasy", 1},
		{"scifi hiss", "scifi", 2},
		{"horror hiss", "horror", 3},
		{"cyberpunk hiss", "cyberpunk", 4},
		{"postapoc hiss", "postapoc", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := GenerateRepellentHitSound(tt.genreID, tt.seed)
			verifyWAV(t, data, tt.name)
		})
	}
}

func TestGenerateDoorSlamSound(t *testing.T) {
	tests := []struct {
		name    string
		genreID string
		seed    uint64
	}{
		{"fantasy slam", "fantasy", 1},
		{"scifi slam", "scifi", 2},
		{"horror slam", "horror", 3},
		{"cyberpunk slam", "cyberpunk", 4},
		{"postapoc slam", "postapoc", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := GenerateDoorSlamSound(tt.genreID, tt.seed)
			verifyWAV(t, data, tt.name)
		})
	}
}
