package systems

import (
	"math"

	"github.com/rs/zerolog/log"

	"ebiten-platformer/components"
	"ebiten-platformer/ecs"
)

// UpdateCollider recomputes the collider corners from the Transform position,
// scale and the collider's offset.
//
// Requires Transform and Collider.
func UpdateCollider(_ *ecs.GameState, r *ecs.Registry, id ecs.EntityID) {
	t := ecs.GetComponent[components.Transform](r, id)
	c := ecs.GetComponent[components.Collider](r, id)
	updateCorners(t, c)
}

func updateCorners(t *components.Transform, c *components.Collider) {
	center := t.Position.Add(c.DeltaCenter)
	half := components.Vec2{X: c.Width * 0.5 * t.Scale.X, Y: c.Height * 0.5 * t.Scale.Y}
	c.LeftDown = center.Sub(half)
	c.RightUp = center.Add(half)
}

// Collision tests the entity's box against every other collider and keeps
// both collision lists in sync. A non-solid entity with Physics that touches a
// solid collider is pushed out along the axis of least overlap.
//
// Requires Collider.
func Collision(_ *ecs.GameState, r *ecs.Registry, id ecs.EntityID) {
	c := ecs.GetComponent[components.Collider](r, id)

	// drop entities destroyed since the last frame
	for _, other := range c.Collisions() {
		if ecs.GetComponent[components.Collider](r, other) == nil {
			c.RemoveCollision(other)
		}
	}

	c.Normal = components.Vec2{}
	for _, other := range ecs.GetStore[components.Collider](r).Entities() {
		if other == id {
			continue
		}
		c2 := ecs.GetComponent[components.Collider](r, other)
		if !c.Overlaps(c2) {
			c.RemoveCollision(other)
			c2.RemoveCollision(id)
			continue
		}

		c2.AddCollision(id)
		if c.AddCollision(other) {
			log.Debug().Uint32("entity", uint32(id)).Uint32("other", uint32(other)).Msg("collision started")
			r.EmitEvent(CollisionEvent{EntityID1: id, EntityID2: other})
		}

		if c2.Solid && !c.Solid {
			resolve(r, id, c, c2)
		}
	}
}

// resolve moves the entity out of a solid box and records the contact normal
func resolve(r *ecs.Registry, id ecs.EntityID, c, solid *components.Collider) {
	p := ecs.GetComponent[components.Physics](r, id)
	t := ecs.GetComponent[components.Transform](r, id)
	if p == nil || t == nil {
		return
	}

	overlapX := math.Min(c.RightUp.X, solid.RightUp.X) - math.Max(c.LeftDown.X, solid.LeftDown.X)
	overlapY := math.Min(c.RightUp.Y, solid.RightUp.Y) - math.Max(c.LeftDown.Y, solid.LeftDown.Y)
	center := c.LeftDown.Add(c.RightUp).Scale(0.5)
	solidCenter := solid.LeftDown.Add(solid.RightUp).Scale(0.5)

	var push components.Vec2
	if overlapY <= overlapX {
		dir := sign(center.Y - solidCenter.Y)
		c.Normal = components.Vec2{Y: dir}
		push.Y = dir * overlapY
		if p.Velocity.Y*dir < 0 {
			p.Velocity.Y = 0
		}
	} else {
		dir := sign(center.X - solidCenter.X)
		c.Normal = components.Vec2{X: dir}
		push.X = dir * overlapX
		if p.Velocity.X*dir < 0 {
			p.Velocity.X = 0
		}
	}

	t.Position = t.Position.Add(push)
	updateCorners(t, c)
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
