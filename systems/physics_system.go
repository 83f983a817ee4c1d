package systems

import (
	"math"

	"ebiten-platformer/components"
	"ebiten-platformer/ecs"
)

// ApplyPhysics integrates gravity and velocity. A grounded player jumps when
// the jump axis is pressed, playing the entity's sound if it has one.
//
// Requires Transform and Physics.
func ApplyPhysics(state *ecs.GameState, r *ecs.Registry, id ecs.EntityID) {
	t := ecs.GetComponent[components.Transform](r, id)
	p := ecs.GetComponent[components.Physics](r, id)
	c := ecs.GetComponent[components.Collider](r, id)

	grounded := c != nil && c.Grounded()
	if grounded && p.Velocity.Y < 0 {
		p.Velocity.Y = 0
	}

	if player := ecs.GetComponent[components.Player](r, id); player != nil && grounded && state.Axis(ecs.AxisJump) == 1 {
		p.Velocity.Y += player.JumpSpeed
		if s := ecs.GetComponent[components.Sound](r, id); s != nil {
			s.Play()
		}
	}

	if !grounded {
		p.Velocity.Y -= p.Gravity * state.DeltaTime
		if p.MaxFall > 0 {
			p.Velocity.Y = math.Max(p.Velocity.Y, -p.MaxFall)
		}
	}

	t.Position = t.Position.Add(p.Velocity.Scale(state.DeltaTime))
}
