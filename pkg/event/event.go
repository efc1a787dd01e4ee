// Package event coalesces per-frame field-rebuild requests so the
// field store rebuilds collision and lighting at most once per frame
// no matter how many systems ask for it.
package event

import "sync"

// BoardDataToRebuild is a request to rebuild one or more derived
// fields. Multiple requests raised within the same frame are merged
// by logical OR before the orchestrator drains them.
type BoardDataToRebuild struct {
	Lighting  bool
	Collision bool
}

// Any reports whether the request asks for any rebuild at all.
func (r BoardDataToRebuild) Any() bool {
	return r.Lighting || r.Collision
}

// Or merges another request into r.
func (r BoardDataToRebuild) Or(o BoardDataToRebuild) BoardDataToRebuild {
	return BoardDataToRebuild{
		Lighting:  r.Lighting || o.Lighting,
		Collision: r.Collision || o.Collision,
	}
}

// Queue accumulates BoardDataToRebuild requests raised during a
// frame's behavior stage and coalesces them for the rebuild stage that
// follows it. Safe for concurrent use by systems that may raise
// requests from goroutines, though the default single-threaded
// scheduler never needs that.
type Queue struct {
	mu      sync.Mutex
	pending BoardDataToRebuild
}

// NewQueue builds an empty rebuild queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Raise merges a rebuild request into the pending set.
func (q *Queue) Raise(r BoardDataToRebuild) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = q.pending.Or(r)
}

// RaiseLighting is shorthand for Raise(BoardDataToRebuild{Lighting: true}).
func (q *Queue) RaiseLighting() { q.Raise(BoardDataToRebuild{Lighting: true}) }

// RaiseCollision is shorthand for Raise(BoardDataToRebuild{Collision: true}).
func (q *Queue) RaiseCollision() { q.Raise(BoardDataToRebuild{Collision: true}) }

// Drain returns the coalesced pending request and clears it. Called
// once per frame, after behavior updates and before shading.
func (q *Queue) Drain() BoardDataToRebuild {
	q.mu.Lock()
	defer q.mu.Unlock()
	r := q.pending
	q.pending = BoardDataToRebuild{}
	return r
}
