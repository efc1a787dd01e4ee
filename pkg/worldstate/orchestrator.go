package worldstate

import "github.com/opd-ai/unhaunter/pkg/event"

// Orchestrator drains a coalesced rebuild request once per frame and
// applies it: collision (and the temperature pass gated on it) rebuild
// inline; lighting rebuild is delegated to a callback since the light
// engine lives in a separate package that depends on this one.
type Orchestrator struct {
	Fields *Fields
	Queue  *event.Queue

	// RebuildLighting recomputes the light field. Wired by the mission
	// layer to pkg/lighting once that engine is constructed; nil is a
	// valid no-op for callers that only need collision/temperature.
	RebuildLighting func()

	sources func() []TileSource
}

// NewOrchestrator builds a rebuild orchestrator over fields and queue.
// sources supplies the current tile-source list on demand (the mission
// layer's authoritative view of loaded tiles).
func NewOrchestrator(fields *Fields, queue *event.Queue, sources func() []TileSource) *Orchestrator {
	return &Orchestrator{Fields: fields, Queue: queue, sources: sources}
}

// Tick drains the queue and applies whatever was coalesced. It is a
// no-op if nothing was raised. The mission calls it once at the start
// of each frame, before player input and behavior, so the rebuild
// reflects the room changes of the previous frame's behavior updates
// and precedes that frame's visibility flood and shading.
func (o *Orchestrator) Tick() {
	req := o.Queue.Drain()
	if !req.Any() {
		return
	}
	if req.Collision {
		o.Fields.RebuildCollision(o.sources())
		o.Fields.InitTemperature()
		log.Debug("collision and temperature rebuilt")
	}
	if req.Lighting && o.RebuildLighting != nil {
		o.RebuildLighting()
		log.Debug("lighting rebuilt")
	}
}
