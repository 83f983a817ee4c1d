package components

import (
	"github.com/rotisserie/eris"

	"ebiten-platformer/ecs"
)

var ErrInvalidHealth = eris.New("health max must be positive")

// Transform places an entity in the world
type Transform struct {
	Position Vec2 `json:"position"`
	Scale    Vec2 `json:"scale"`
}

func (t *Transform) Default() { t.Scale = Vec2{1, 1} }

func (t *Transform) Deserialize(node ecs.ConfigNode) error { return node.Decode(t) }

// Player marks the entity driven by input
type Player struct {
	Speed     float64 `json:"speed"`
	JumpSpeed float64 `json:"jumpSpeed"`
}

func (p *Player) Default() {
	p.Speed = 200
	p.JumpSpeed = 400
}

func (p *Player) Deserialize(node ecs.ConfigNode) error { return node.Decode(p) }

// Camera is the viewpoint the render system draws through. The camera
// entity's Transform gives its position in the world.
type Camera struct {
	Scale Vec2 `json:"scale"`
	// Target is the entity to follow; NoEntity disables following
	Target ecs.EntityID `json:"-"`
	// FollowPlayer makes the camera pick the first Player entity as target
	FollowPlayer bool `json:"followPlayer"`
	// Smoothing is the catch-up rate per second; 0 snaps to the target
	Smoothing float64 `json:"smoothing"`
}

func (c *Camera) Default() { c.Scale = Vec2{1, 1} }

func (c *Camera) Deserialize(node ecs.ConfigNode) error { return node.Decode(c) }

// Physics gives an entity velocity and gravity
type Physics struct {
	Velocity Vec2    `json:"velocity"`
	Gravity  float64 `json:"gravity"`
	MaxFall  float64 `json:"maxFall"`
}

func (p *Physics) Default() {
	p.Gravity = 1200
	p.MaxFall = 900
}

func (p *Physics) Deserialize(node ecs.ConfigNode) error { return node.Decode(p) }

// Health tracks hit points. An entity at zero is destroyed by the combat system.
type Health struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

func (h *Health) Default() {
	h.Max = 100
	h.Current = 100
}

func (h *Health) Deserialize(node ecs.ConfigNode) error {
	h.Current = 0
	if err := node.Decode(h); err != nil {
		return err
	}
	if h.Max <= 0 {
		return eris.Wrapf(ErrInvalidHealth, "got %d", h.Max)
	}
	if h.Current <= 0 || h.Current > h.Max {
		h.Current = h.Max
	}
	return nil
}

// Dead reports whether no hit points are left
func (h *Health) Dead() bool { return h.Current <= 0 }

// Damage subtracts amount, never going below zero
func (h *Health) Damage(amount int) {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

// Weapon damages whatever the entity's collider touches
type Weapon struct {
	Damage   int     `json:"damage"`
	Cooldown float64 `json:"cooldown"`
	// Auto attacks whenever ready instead of on the attack axis
	Auto bool `json:"auto"`

	// Remaining is the time left until the next attack is allowed
	Remaining float64 `json:"-"`
}

func (w *Weapon) Default() {
	w.Damage = 10
	w.Cooldown = 0.5
}

func (w *Weapon) Deserialize(node ecs.ConfigNode) error { return node.Decode(w) }

// Ready reports whether the cooldown has elapsed
func (w *Weapon) Ready() bool { return w.Remaining <= 0 }
