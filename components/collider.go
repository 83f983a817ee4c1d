package components

import (
	"sort"

	"ebiten-platformer/ecs"
)

// Collider is an axis-aligned box attached to an entity's Transform
type Collider struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	DeltaCenter Vec2    `json:"deltaCenter"`
	// Solid colliders push entities with Physics out of themselves
	Solid bool `json:"solid"`

	// Corners are recomputed every frame from the Transform
	LeftDown Vec2 `json:"-"`
	RightUp  Vec2 `json:"-"`
	// Normal is the contact direction of the last solid hit, e.g. (0,1) when standing on ground
	Normal Vec2 `json:"-"`

	collisions map[ecs.EntityID]struct{}
}

func (c *Collider) Deserialize(node ecs.ConfigNode) error { return node.Decode(c) }

// Grounded reports whether the collider rests on something solid
func (c *Collider) Grounded() bool { return c.Normal.Y == 1 }

// contactEpsilon keeps a box resting on another in contact despite rounding
const contactEpsilon = 1e-6

// Overlaps reports whether the two boxes intersect. Touching edges count.
func (c *Collider) Overlaps(o *Collider) bool {
	return !(c.RightUp.X < o.LeftDown.X-contactEpsilon || c.LeftDown.X > o.RightUp.X+contactEpsilon ||
		c.RightUp.Y < o.LeftDown.Y-contactEpsilon || c.LeftDown.Y > o.RightUp.Y+contactEpsilon)
}

// AddCollision records contact with id. It reports whether the contact is new.
func (c *Collider) AddCollision(id ecs.EntityID) bool {
	if c.collisions == nil {
		c.collisions = make(map[ecs.EntityID]struct{})
	}
	if _, ok := c.collisions[id]; ok {
		return false
	}
	c.collisions[id] = struct{}{}
	return true
}

// RemoveCollision forgets contact with id
func (c *Collider) RemoveCollision(id ecs.EntityID) {
	delete(c.collisions, id)
}

// CollidesWith checks if id is in the collision list
func (c *Collider) CollidesWith(id ecs.EntityID) bool {
	_, ok := c.collisions[id]
	return ok
}

// Collisions returns the entities currently touching, in ascending order
func (c *Collider) Collisions() []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(c.collisions))
	for id := range c.collisions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
