package data

import (
	"github.com/rs/zerolog/log"

	"ebiten-platformer/assets"
	"ebiten-platformer/components"
	"ebiten-platformer/ecs"
)

// BuildDemoScene creates a small level through direct registry calls, for
// running without a scene file. Sprites are loaded through m; with a nil
// manager they stay unloaded. It returns the player entity.
func BuildDemoScene(r *ecs.Registry, m *assets.Manager, state *ecs.GameState) ecs.EntityID {
	camera := r.CreateEntity()
	ecs.AddComponent[components.Transform](r, camera)
	cam := ecs.AddComponent[components.Camera](r, camera)
	cam.Scale = components.Vec2{X: 2, Y: 2}
	cam.FollowPlayer = true
	cam.Smoothing = 6
	state.CurrentCamera = camera

	player := r.CreateEntity()
	ecs.AddComponent[components.Transform](r, player).Position = components.Vec2{X: 0, Y: 40}
	sprite := ecs.AddComponent[components.Sprite](r, player)
	sprite.Width, sprite.Height, sprite.Color = 16, 24, "#e0c040"
	ecs.AddComponent[components.Player](r, player)
	ecs.AddComponent[components.Physics](r, player)
	collider := ecs.AddComponent[components.Collider](r, player)
	collider.Width, collider.Height = 16, 24
	ecs.AddComponent[components.Health](r, player)
	ecs.AddComponent[components.Weapon](r, player)

	ground := r.CreateEntity()
	t := ecs.AddComponent[components.Transform](r, ground)
	t.Scale = components.Vec2{X: 8, Y: 1}
	sprite = ecs.AddComponent[components.Sprite](r, ground)
	sprite.Width, sprite.Height, sprite.Color = 64, 16, "#6b4f2a"
	collider = ecs.AddComponent[components.Collider](r, ground)
	collider.Width, collider.Height, collider.Solid = 64, 16, true

	if m != nil {
		sprites := ecs.GetStore[components.Sprite](r)
		for _, id := range sprites.Entities() {
			if err := sprites.Get(id).Load(m); err != nil {
				log.Warn().Err(err).Uint32("entity", uint32(id)).Msg("demo sprite not loaded")
			}
		}
	}
	return player
}
