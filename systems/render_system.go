package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-platformer/components"
	"ebiten-platformer/ecs"
)

// Render draws the sprite through the current camera. World y points up,
// screen y points down; the camera position maps to the screen center.
// Without a camera the world origin is centered at scale 1. Sprites whose
// image failed to load are skipped.
//
// Requires Transform and Sprite.
func Render(state *ecs.GameState, r *ecs.Registry, id ecs.EntityID) {
	if state.Screen == nil {
		return
	}
	spr := ecs.GetComponent[components.Sprite](r, id)
	if !spr.Loaded() {
		return
	}
	t := ecs.GetComponent[components.Transform](r, id)

	view := View{Scale: components.Vec2{X: 1, Y: 1}}
	if camera := ecs.GetComponent[components.Camera](r, state.CurrentCamera); camera != nil {
		view.Scale = camera.Scale
		if camT := ecs.GetComponent[components.Transform](r, state.CurrentCamera); camT != nil {
			view.Position = camT.Position
		}
	}
	bounds := state.Screen.Bounds()
	view.Screen = components.Vec2{X: float64(bounds.Dx()), Y: float64(bounds.Dy())}

	size := spr.Image.Bounds()
	pos, scale := view.Project(t, components.Vec2{X: float64(size.Dx()), Y: float64(size.Dy())})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale.X, scale.Y)
	op.GeoM.Translate(pos.X, pos.Y)
	state.Screen.DrawImage(spr.Image, op)
}

// View maps world coordinates onto the screen
type View struct {
	Position components.Vec2
	Scale    components.Vec2
	Screen   components.Vec2
}

// Project returns the top-left screen position and the draw scale of an image
// of imageSize pixels centered on the transform
func (v View) Project(t *components.Transform, imageSize components.Vec2) (pos, scale components.Vec2) {
	pos = components.Vec2{
		X: (t.Position.X - v.Position.X) * v.Scale.X,
		Y: (v.Position.Y - t.Position.Y) * v.Scale.Y,
	}
	pos = pos.Add(v.Screen.Scale(0.5))

	scale = t.Scale.Mul(v.Scale)
	pos = pos.Sub(imageSize.Mul(scale).Scale(0.5))
	return pos, scale
}
