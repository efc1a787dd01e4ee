// Package visibility computes the attenuated-BFS visibility flood from
// the active player and derives the ambient audio mix from its result.
package visibility

import (
	"math"

	"github.com/opd-ai/unhaunter/pkg/geometry"
	"github.com/opd-ai/unhaunter/pkg/worldstate"
)

// rangeOutside and rangeInRoom are the attenuation constants k used in
// the 1/(1+clamp(...)) falloff; outside rooms light reaches further
// before visibility collapses.
const (
	rangeInRoom  = 3.0
	rangeOutside = 7.0
)

type queueEntry struct {
	pos  geometry.BoardPosition
	prev geometry.BoardPosition
}

// Flood performs the attenuated BFS from start, writing into
// fields.Visibility. inRoom reports whether a tile is considered
// inside an enclosed room (tighter attenuation) vs. outside (longer
// reach); the mission layer wires this to worldstate.RoomDB.InRoom.
func Flood(fields *worldstate.Fields, start geometry.BoardPosition, inRoom func(geometry.BoardPosition) bool) {
	fields.Visibility = make(map[geometry.BoardPosition]float64)
	fields.Visibility[start] = 1.0

	visited := map[geometry.BoardPosition]bool{start: true}
	queue := []queueEntry{{pos: start, prev: start}}

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		p, pp := e.pos, e.prev

		cell, ok := fields.Collision[p]
		if ok && !cell.PlayerFree && !cell.SeeThrough {
			continue
		}

		srcF := fields.Visibility[p]
		pdsReal := p.Distance(start)

		for _, n := range eightNeighbors(p) {
			if _, exists := fields.Collision[n]; !exists {
				continue
			}
			npds := n.Distance(start)
			npref := n.Distance(pp) / 2

			var f float64
			if npds < 1.5 {
				f = 1.0
			} else {
				ratio := 0.0
				if npref > 0 {
					ratio = (npds - pdsReal) / npref
				}
				ratio = clamp(ratio, 0, 1)
				f = ratio * ratio
			}

			dstF := srcF * f
			if dstF < 1e-5 {
				continue
			}

			if !visited[n] {
				visited[n] = true
				queue = append(queue, queueEntry{pos: n, prev: p})
			}

			k := rangeOutside
			if inRoom(n) {
				k = rangeInRoom
			}
			dstF /= 1 + clamp((npds-1.5)/k, 0, 6)

			cur := fields.Visibility[n]
			fields.Visibility[n] = 1 - (1-cur)*(1-dstF)
		}
	}
}

func eightNeighbors(p geometry.BoardPosition) []geometry.BoardPosition {
	offsets := [8][2]int64{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
	out := make([]geometry.BoardPosition, 8)
	for i, o := range offsets {
		out[i] = geometry.BoardPosition{X: p.X + o[0], Y: p.Y + o[1], Z: p.Z}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TotalVisibility sums vf[t] over the field, discounting in-room tiles
// to 0.2 weight since indoor sound carries less to the ambient mix.
func TotalVisibility(fields *worldstate.Fields, inRoom func(geometry.BoardPosition) bool) float64 {
	total := 0.0
	for pos, v := range fields.Visibility {
		if inRoom(pos) {
			total += v * 0.2
		} else {
			total += v
		}
	}
	return total
}

// AmbientGains derives the house (indoor) and street (outdoor) ambient
// loop gains from total visibility: low visibility (enclosed spaces)
// favors the house loop, high visibility (open sightlines) favors
// street.
func AmbientGains(totalVis float64) (house, street float64) {
	if totalVis <= 0 {
		totalVis = 1e-6
	}
	house = cbrt(math.Tanh(math.Pow(20/totalVis, 3))) * 6
	street = cbrt(math.Tanh(math.Pow(totalVis/20, 3))) * 6
	return clamp(house, 0, 6), clamp(street, 0, 6)
}

func cbrt(x float64) float64 {
	return math.Cbrt(x)
}
