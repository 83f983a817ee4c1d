package systems

import (
	"ebiten-platformer/components"
	"ebiten-platformer/ecs"
)

// MovePlayer moves the entity along the normalized input direction at the
// player's speed. Entities with Physics only move horizontally here; their
// vertical motion belongs to ApplyPhysics.
//
// Requires Transform and Player.
func MovePlayer(state *ecs.GameState, r *ecs.Registry, id ecs.EntityID) {
	t := ecs.GetComponent[components.Transform](r, id)
	p := ecs.GetComponent[components.Player](r, id)

	move := components.Vec2{
		X: state.Axis(ecs.AxisHorizontal),
		Y: state.Axis(ecs.AxisVertical),
	}
	if ecs.HasComponent[components.Physics](r, id) {
		move.Y = 0
	}

	move = move.Normalize().Scale(p.Speed * state.DeltaTime)
	t.Position = t.Position.Add(move)
}
