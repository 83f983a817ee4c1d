package components

import (
	"github.com/rotisserie/eris"

	"ebiten-platformer/ecs"
)

// Component names as they appear in scene files
const (
	TransformName = "Transform"
	SpriteName    = "Sprite"
	CameraName    = "Camera"
	PlayerName    = "Player"
	ColliderName  = "Collider"
	PhysicsName   = "Physics"
	SoundName     = "Sound"
	HealthName    = "Health"
	WeaponName    = "Weapon"
)

// Register registers every gameplay component type with r, in a fixed order
// so signature bits are stable between runs
func Register(r *ecs.Registry) error {
	steps := []func(*ecs.Registry) error{
		func(r *ecs.Registry) error { return ecs.RegisterComponent[Transform](r, TransformName) },
		func(r *ecs.Registry) error { return ecs.RegisterComponent[Sprite](r, SpriteName) },
		func(r *ecs.Registry) error { return ecs.RegisterComponent[Camera](r, CameraName) },
		func(r *ecs.Registry) error { return ecs.RegisterComponent[Player](r, PlayerName) },
		func(r *ecs.Registry) error { return ecs.RegisterComponent[Collider](r, ColliderName) },
		func(r *ecs.Registry) error { return ecs.RegisterComponent[Physics](r, PhysicsName) },
		func(r *ecs.Registry) error { return ecs.RegisterComponent[Sound](r, SoundName) },
		func(r *ecs.Registry) error { return ecs.RegisterComponent[Health](r, HealthName) },
		func(r *ecs.Registry) error { return ecs.RegisterComponent[Weapon](r, WeaponName) },
	}
	for _, step := range steps {
		if err := step(r); err != nil {
			return eris.Wrap(err, "failed to register gameplay components")
		}
	}
	return nil
}
