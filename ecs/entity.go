package ecs

import "sort"

// EntityID is a unique identifier for an entity while it is alive
type EntityID uint32

// NoEntity is never handed out by a Registry
const NoEntity EntityID = 0

// entityPool hands out entity identifiers and reclaims destroyed ones
type entityPool struct {
	next    EntityID
	free    []EntityID
	alive   map[EntityID]struct{}
	recycle bool

	// while holding, released ids wait in pending instead of the freelist
	holding bool
	pending []EntityID
}

func newEntityPool(recycle bool) *entityPool {
	return &entityPool{
		alive:   make(map[EntityID]struct{}),
		recycle: recycle,
	}
}

// acquire returns a recycled id if one is available, otherwise a fresh one
func (p *entityPool) acquire() EntityID {
	var id EntityID
	if n := len(p.free); n > 0 {
		id = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		p.next++
		id = p.next
	}
	p.alive[id] = struct{}{}
	return id
}

// release marks the id as dead. It reports false when the id was not alive.
func (p *entityPool) release(id EntityID) bool {
	if _, ok := p.alive[id]; !ok {
		return false
	}
	delete(p.alive, id)
	switch {
	case !p.recycle:
	case p.holding:
		p.pending = append(p.pending, id)
	default:
		p.free = append(p.free, id)
	}
	return true
}

// hold keeps released ids out of circulation until flush
func (p *entityPool) hold() {
	p.holding = true
}

// flush makes the ids released since hold available again
func (p *entityPool) flush() {
	p.holding = false
	p.free = append(p.free, p.pending...)
	p.pending = p.pending[:0]
}

func (p *entityPool) isAlive(id EntityID) bool {
	_, ok := p.alive[id]
	return ok
}

// sorted returns the live ids in ascending order
func (p *entityPool) sorted() []EntityID {
	ids := make([]EntityID, 0, len(p.alive))
	for id := range p.alive {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
