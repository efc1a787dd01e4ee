package mission

import (
	"github.com/opd-ai/unhaunter/pkg/engine"
	"github.com/opd-ai/unhaunter/pkg/geometry"
	"github.com/opd-ai/unhaunter/pkg/ghost"
	"github.com/opd-ai/unhaunter/pkg/worldstate"
)

// baseWalkSpeed is the unscaled player walk speed in tiles/second,
// before the difficulty profile's PlayerSpeedMul is applied.
const baseWalkSpeed = 3.0

// meanSoundSmoothing is the per-frame exponential-smoothing factor
// mean_sound chases the instantaneous sound-field sample at, rather
// than snapping to raw samples frame to frame.
const meanSoundSmoothing = 0.1

// Player bundles a mission-tracked player's ghost-visible state
// (ghost.Player, read by the ghost engine) with its ECS entity handle
// and the input-derived control state driving its own movement.
type Player struct {
	ID       string
	Entity   engine.Entity
	State    *ghost.Player
	Controls engine.Controls
}

// ReadControls translates raw Input queries into the player's Controls
// component for this frame, using the difficulty profile's key
// bindings would otherwise resolve (the mission layer owns that
// mapping; here we accept an already-resolved key-name set for
// brevity, treating Input's keys as opaque predicate queries).
func ReadControls(in Input, forward, backward, left, right, interact, useItem, sprint, hide string) engine.Controls {
	return engine.Controls{
		Forward:  in.Pressed(forward),
		Backward: in.Pressed(backward),
		Left:     in.Pressed(left),
		Right:    in.Pressed(right),
		Interact: in.JustPressed(interact),
		UseItem:  in.JustPressed(useItem),
		Sprint:   in.Pressed(sprint),
		Hide:     in.Pressed(hide),
	}
}

// MovePlayer translates p's current Controls into motion, resolving
// collision against fields per axis so a player sliding into a wall
// corner still moves along the open axis.
func MovePlayer(p *Player, dt float64, speedMul float64, fields *worldstate.Fields) {
	var dx, dy float64
	if p.Controls.Forward {
		dy -= 1
	}
	if p.Controls.Backward {
		dy += 1
	}
	if p.Controls.Left {
		dx -= 1
	}
	if p.Controls.Right {
		dx += 1
	}
	if dx == 0 && dy == 0 {
		return
	}

	speed := baseWalkSpeed * speedMul
	if p.Controls.Sprint {
		speed *= 1.6
	}
	dir := geometry.Direction{Dx: dx, Dy: dy}.Normalized().Scale(speed * dt)

	tryMove(p, geometry.Direction{Dx: dir.Dx}, fields)
	tryMove(p, geometry.Direction{Dy: dir.Dy}, fields)

	p.State.Hiding = p.Controls.Hide
}

func tryMove(p *Player, d geometry.Direction, fields *worldstate.Fields) {
	next := p.State.Pos.Add(d)
	tile := next.ToBoardPosition()
	cell, ok := fields.Collision[tile]
	if ok && cell.PlayerFree {
		p.State.Pos = next
	}
}

// UpdateMeanSound smooths the player's mean_sound toward the current
// frame's raw sound-intensity sample at their tile.
func UpdateMeanSound(p *Player, fields *worldstate.Fields) {
	tile := p.State.Pos.ToBoardPosition()
	var raw float64
	for _, sv := range fields.Sound[tile] {
		raw += sv.Intensity
	}
	p.State.MeanSound += (raw - p.State.MeanSound) * meanSoundSmoothing
}
