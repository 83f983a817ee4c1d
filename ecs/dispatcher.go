package ecs

import "time"

// Tick runs one simulation step: every system, in registration order, is
// invoked once per entity matching its signature.
//
// The matching set of a system is a snapshot taken before its scan starts.
// An entity that is destroyed or loses a required component during the scan
// is skipped; entities created during the scan are seen by later systems.
// Ids released during the tick are not handed out again until it returns, so
// a new entity can never take the place of a snapshot entry.
func (r *Registry) Tick(state *GameState) {
	r.frame++
	start := time.Now()
	r.entities.hold()
	defer r.entities.flush()

	for i := range r.systems {
		sys := &r.systems[i]
		for _, id := range r.Matching(sys.signature) {
			if !sys.signature.Matches(r.signatures[id]) || !r.Alive(id) {
				continue
			}
			sys.fn(state, r, id)
		}
	}

	r.log.Trace().
		Uint64("frame", r.frame).
		Int("entities", len(r.signatures)).
		Dur("elapsed", time.Since(start)).
		Msg("tick")
}

// Matching returns the live entities whose signature contains sig, in
// ascending id order
func (r *Registry) Matching(sig Signature) []EntityID {
	matched := make([]EntityID, 0)
	for _, id := range r.entities.sorted() {
		if sig.Matches(r.signatures[id]) {
			matched = append(matched, id)
		}
	}
	return matched
}

// Frame returns the number of ticks run so far
func (r *Registry) Frame() uint64 {
	return r.frame
}
