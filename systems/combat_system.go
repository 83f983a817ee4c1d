package systems

import (
	"ebiten-platformer/components"
	"ebiten-platformer/ecs"
)

// Combat lets a weapon hit every entity with Health its collider touches.
// Player weapons fire on the attack axis, automatic ones whenever the
// cooldown allows. Entities brought to zero health are destroyed.
//
// Requires Weapon and Collider.
func Combat(state *ecs.GameState, r *ecs.Registry, id ecs.EntityID) {
	w := ecs.GetComponent[components.Weapon](r, id)
	c := ecs.GetComponent[components.Collider](r, id)

	if w.Remaining > 0 {
		w.Remaining -= state.DeltaTime
	}
	if !w.Ready() {
		return
	}
	if !w.Auto && !state.Pressed(ecs.AxisAttack) {
		return
	}

	hit := false
	for _, target := range c.Collisions() {
		h := ecs.GetComponent[components.Health](r, target)
		if h == nil || !r.Alive(target) {
			continue
		}
		// automatic weapons only hurt the player
		if w.Auto && !ecs.HasComponent[components.Player](r, target) {
			continue
		}
		hit = true
		h.Damage(w.Damage)
		r.EmitEvent(DamageEvent{AttackerID: id, TargetID: target, Amount: w.Damage, Remaining: h.Current})

		if h.Dead() {
			r.EmitEvent(DeathEvent{EntityID: target, KillerID: id})
			c.RemoveCollision(target)
			r.DestroyEntity(target)
		}
	}

	// a player swing always uses the cooldown, an automatic one only on contact
	if hit || !w.Auto {
		w.Remaining = w.Cooldown
	}
}
