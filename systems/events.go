package systems

import (
	"ebiten-platformer/ecs"
)

// Event type constants
const (
	EventCollision ecs.EventType = "collision"
	EventDamage    ecs.EventType = "damage"
	EventDeath     ecs.EventType = "death"
)

// CollisionEvent is emitted when two colliders start touching
type CollisionEvent struct {
	EntityID1 ecs.EntityID
	EntityID2 ecs.EntityID
}

// Type returns the event type
func (e CollisionEvent) Type() ecs.EventType {
	return EventCollision
}

// DamageEvent is emitted when a weapon hits an entity with Health
type DamageEvent struct {
	AttackerID ecs.EntityID
	TargetID   ecs.EntityID
	Amount     int
	Remaining  int
}

// Type returns the event type
func (e DamageEvent) Type() ecs.EventType {
	return EventDamage
}

// DeathEvent is emitted right before a killed entity is destroyed
type DeathEvent struct {
	EntityID ecs.EntityID
	KillerID ecs.EntityID
}

// Type returns the event type
func (e DeathEvent) Type() ecs.EventType {
	return EventDeath
}
