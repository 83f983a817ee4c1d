// Package systems holds the gameplay behaviour run by the ECS dispatcher.
// Every system is a plain function of (state, registry, entity).
package systems

import (
	"reflect"

	"github.com/rotisserie/eris"

	"ebiten-platformer/components"
	"ebiten-platformer/ecs"
)

var (
	transform = ecs.Type[components.Transform]()
	sprite    = ecs.Type[components.Sprite]()
	camera    = ecs.Type[components.Camera]()
	player    = ecs.Type[components.Player]()
	collider  = ecs.Type[components.Collider]()
	physics   = ecs.Type[components.Physics]()
	sound     = ecs.Type[components.Sound]()
	weapon    = ecs.Type[components.Weapon]()
)

// Register adds every gameplay system to r in execution order. The
// gameplay components must already be registered.
func Register(r *ecs.Registry) error {
	steps := []struct {
		name     string
		fn       ecs.System
		required []reflect.Type
	}{
		{"MovePlayer", MovePlayer, []reflect.Type{transform, player}},
		{"ApplyPhysics", ApplyPhysics, []reflect.Type{transform, physics}},
		{"UpdateCollider", UpdateCollider, []reflect.Type{transform, collider}},
		{"Collision", Collision, []reflect.Type{collider}},
		{"Combat", Combat, []reflect.Type{weapon, collider}},
		{"FollowCamera", FollowCamera, []reflect.Type{transform, camera}},
		{"TriggerSounds", TriggerSounds, []reflect.Type{sound}},
		{"Render", Render, []reflect.Type{transform, sprite}},
	}

	for _, step := range steps {
		if err := r.RegisterNamedSystem(step.name, step.fn, step.required...); err != nil {
			return eris.Wrap(err, "failed to register gameplay systems")
		}
	}
	return nil
}
