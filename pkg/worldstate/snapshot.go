package worldstate

import (
	"sort"

	"gopkg.in/yaml.v3"
)

// RoomSnapshot is the YAML-serializable form of a RoomDB's per-room
// state, keyed by room name. Tile assignments are not carried — they
// are re-derived from the map's RoomDef tiles on the next load — only
// the mutable state a mission can hand off between runs (e.g. which
// rooms had their lights switched on) round-trips.
type RoomSnapshot map[string]RoomState

// Snapshot captures the current mutable state of every known room.
func (r *RoomDB) Snapshot() RoomSnapshot {
	out := make(RoomSnapshot, len(r.rooms))
	for name, state := range r.rooms {
		out[name] = *state
	}
	return out
}

// MarshalYAML renders the snapshot in room-name-sorted order so the
// output is deterministic across runs, keeping config-file-style diffs
// stable between saves.
func (s RoomSnapshot) MarshalYAML() (interface{}, error) {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	type entry struct {
		Name  string    `yaml:"name"`
		State RoomState `yaml:"state"`
	}
	ordered := make([]entry, 0, len(names))
	for _, name := range names {
		ordered = append(ordered, entry{Name: name, State: s[name]})
	}
	return ordered, nil
}

// EncodeRoomSnapshot serializes a RoomSnapshot to YAML bytes.
func EncodeRoomSnapshot(s RoomSnapshot) ([]byte, error) {
	return yaml.Marshal(s)
}

// DecodeRoomSnapshot parses YAML bytes produced by EncodeRoomSnapshot
// back into a RoomSnapshot.
func DecodeRoomSnapshot(data []byte) (RoomSnapshot, error) {
	var ordered []struct {
		Name  string    `yaml:"name"`
		State RoomState `yaml:"state"`
	}
	if err := yaml.Unmarshal(data, &ordered); err != nil {
		return nil, err
	}
	out := make(RoomSnapshot, len(ordered))
	for _, e := range ordered {
		out[e.Name] = e.State
	}
	return out, nil
}

// Restore applies a previously captured snapshot onto the room
// database, updating the state of every room the snapshot names and
// defining it first if the current map never tagged it. Rooms not
// present in snap are left untouched.
func (r *RoomDB) Restore(snap RoomSnapshot) {
	for name, state := range snap {
		r.DefineRoom(name)
		*r.rooms[name] = state
	}
}
