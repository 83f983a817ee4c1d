package systems

import (
	"math"

	"ebiten-platformer/components"
	"ebiten-platformer/ecs"
)

// FollowCamera moves a camera toward its target entity. With FollowPlayer set
// and no target, the first Player entity becomes the target.
//
// Requires Transform and Camera.
func FollowCamera(state *ecs.GameState, r *ecs.Registry, id ecs.EntityID) {
	t := ecs.GetComponent[components.Transform](r, id)
	camera := ecs.GetComponent[components.Camera](r, id)

	if camera.Target != ecs.NoEntity && !r.Alive(camera.Target) {
		camera.Target = ecs.NoEntity
	}
	if camera.Target == ecs.NoEntity && camera.FollowPlayer {
		if players := ecs.GetStore[components.Player](r).Entities(); len(players) > 0 {
			camera.Target = players[0]
		}
	}
	if camera.Target == ecs.NoEntity {
		return
	}

	target := ecs.GetComponent[components.Transform](r, camera.Target)
	if target == nil {
		return
	}

	if camera.Smoothing <= 0 {
		t.Position = target.Position
		return
	}
	k := math.Min(1, camera.Smoothing*state.DeltaTime)
	t.Position = t.Position.Add(target.Position.Sub(t.Position).Scale(k))
}
