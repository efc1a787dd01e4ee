// Package mission wires the simulation core's subsystems into one
// phase-ordered per-frame tick, and defines the thin collaborator
// interfaces it treats as external to the core (asset loader, audio
// sink, render sink, input, difficulty profile).
package mission

import (
	"github.com/opd-ai/unhaunter/pkg/geometry"
	"github.com/opd-ai/unhaunter/pkg/tile"
)

// RawTile is one tile-uid placement as the asset loader reports it,
// before resolving through a tileset database into a Behavior.
type RawTile struct {
	Pos     geometry.BoardPosition
	Tileset string
	UID     uint32
	FlipX   bool
}

// RawTileLayer is a sequence of tile placements belonging to one map
// layer. Non-tile layers (object layers, image layers) are not
// represented here; the loader collaborator filters them out before
// returning a RawMap.
type RawTileLayer struct {
	Name  string
	Tiles []RawTile
}

// RawMap is the logical map tree an AssetLoader resolves a TMX path
// into: a sequence of tile layers, in bottom-to-top draw order.
type RawMap struct {
	Layers []RawTileLayer
}

// AssetLoader loads a map and resolves its tile-uids into Behaviors
// via a tileset database. Both are out of the simulation core's scope;
// the core only depends on this narrow contract.
type AssetLoader interface {
	LoadMap(path string) (*RawMap, error)
	ResolveBehavior(tileset string, uid uint32, flipX bool) (tile.Behavior, bool)
}

// TileMaterial is the per-tile shading result the core writes once a
// tile is marked for update; a RenderSink reads it.
type TileMaterial struct {
	Color        [3]float64
	Gamma        float64
	CornerGamma  [4]float64
	AmbientColor [3]float64
}

// RenderSink reads Position/GlobalZ and per-tile material parameters
// the core writes; it never feeds information back into the core.
type RenderSink interface {
	WriteTileMaterial(pos geometry.BoardPosition, mat TileMaterial)
}

// AudioSink plays one-shot samples and drives the two looping ambient
// sources whose volume the visibility stage continuously updates.
type AudioSink interface {
	Play(samplePath string, volume float64, at *geometry.Position)
	SetHouseVolume(v float64)
	SetStreetVolume(v float64)
	// SetReverb updates the room-size-driven reverb parameters
	// (decay, wet mix, dry mix) the active player's current room
	// derives.
	SetReverb(decay, wetMix, dryMix float64)
}

// Input answers opaque key-code predicate queries; the mission layer
// never interprets key identities beyond passing them through.
type Input interface {
	Pressed(key string) bool
	JustPressed(key string) bool
}

// MapWarning is a non-fatal map-authoring problem the loader surfaces:
// missing spawns or too few movable objects in rooms are warnings, not
// load failures.
type MapWarning struct {
	Message string
}
