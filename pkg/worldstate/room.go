package worldstate

import (
	"fmt"

	"github.com/opd-ai/unhaunter/pkg/geometry"
)

// RoomState is the mutable, authorable state of a named room (e.g.
// whether its lights are switched on).
type RoomState struct {
	LightsOn bool
}

// RoomDB maps tiles to room names and room names to room state. It is
// populated once at load time from RoomDef-tagged tiles and floor-fill
// connectivity; an Open Question resolved in favor of requiring every
// walkable, wall-enclosed tile to end up assigned (see DESIGN.md).
type RoomDB struct {
	tileRoom map[geometry.BoardPosition]string
	rooms    map[string]*RoomState
}

// NewRoomDB builds an empty room database.
func NewRoomDB() *RoomDB {
	return &RoomDB{
		tileRoom: make(map[geometry.BoardPosition]string),
		rooms:    make(map[string]*RoomState),
	}
}

// DefineRoom registers a room name, creating its state if new.
func (r *RoomDB) DefineRoom(name string) {
	if _, ok := r.rooms[name]; !ok {
		r.rooms[name] = &RoomState{}
	}
}

// Assign binds a tile to a room name, defining the room if needed.
func (r *RoomDB) Assign(pos geometry.BoardPosition, room string) {
	r.DefineRoom(room)
	r.tileRoom[pos] = room
}

// RoomOf returns the room name for a tile and whether it has one.
func (r *RoomDB) RoomOf(pos geometry.BoardPosition) (string, bool) {
	name, ok := r.tileRoom[pos]
	return name, ok
}

// State returns the mutable state for a room name, or nil if unknown.
func (r *RoomDB) State(room string) *RoomState {
	return r.rooms[room]
}

// InRoom reports whether a tile has been assigned to any room — used
// by the visibility flood to distinguish in-room from outside
// attenuation constants.
func (r *RoomDB) InRoom(pos geometry.BoardPosition) bool {
	_, ok := r.tileRoom[pos]
	return ok
}

// AssignFloodFill assigns every walkable tile reachable from seed
// (via 4-connectivity through the collision field's player_free tiles)
// to room, without crossing into tiles already assigned elsewhere.
// This is how RoomDef-tagged tiles propagate a room name across an
// enclosed floor area at load time.
func (r *RoomDB) AssignFloodFill(seed geometry.BoardPosition, room string, fields *Fields) {
	r.DefineRoom(room)
	visited := map[geometry.BoardPosition]bool{seed: true}
	queue := []geometry.BoardPosition{seed}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if _, already := r.tileRoom[p]; already {
			continue
		}
		cell, ok := fields.Collision[p]
		if !ok || !cell.PlayerFree {
			continue
		}
		r.tileRoom[p] = room
		for _, n := range []geometry.BoardPosition{p.Left(), p.Right(), p.Top(), p.Bottom()} {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
}

// BoundingBox returns the tile-space width and height spanned by a
// room's assigned tiles (0, 0 if the room has no tiles yet). Used to
// parameterize room-size-driven audio reverb from data already present
// in the data model, rather than tracking room dimensions separately.
func (r *RoomDB) BoundingBox(room string) (width, height int) {
	first := true
	var minX, maxX, minY, maxY int64
	for pos, name := range r.tileRoom {
		if name != room {
			continue
		}
		if first {
			minX, maxX, minY, maxY = pos.X, pos.X, pos.Y, pos.Y
			first = false
			continue
		}
		if pos.X < minX {
			minX = pos.X
		}
		if pos.X > maxX {
			maxX = pos.X
		}
		if pos.Y < minY {
			minY = pos.Y
		}
		if pos.Y > maxY {
			maxY = pos.Y
		}
	}
	if first {
		return 0, 0
	}
	return int(maxX - minX + 1), int(maxY - minY + 1)
}

func (r RoomState) String() string {
	return fmt.Sprintf("RoomState{LightsOn:%v}", r.LightsOn)
}
