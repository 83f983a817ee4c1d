// Package input translates keyboard state into GameState axes.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-platformer/ecs"
)

// Binding maps an axis to the keys that push it to +1 and -1
type Binding struct {
	Axis     string
	Positive []ebiten.Key
	Negative []ebiten.Key
}

// Bindings is the keyboard layout applied every frame
type Bindings struct {
	Axes []Binding
	Quit []ebiten.Key
}

// DefaultBindings returns the standard platformer layout
func DefaultBindings() Bindings {
	return Bindings{
		Axes: []Binding{
			{Axis: ecs.AxisHorizontal, Positive: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, Negative: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
			{Axis: ecs.AxisVertical, Positive: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, Negative: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
			{Axis: ecs.AxisJump, Positive: []ebiten.Key{ebiten.KeySpace}},
			{Axis: ecs.AxisAttack, Positive: []ebiten.Key{ebiten.KeyJ, ebiten.KeyZ}},
			{Axis: ecs.AxisInteract, Positive: []ebiten.Key{ebiten.KeyE}},
		},
		Quit: []ebiten.Key{ebiten.KeyEscape},
	}
}

// Apply sets every bound axis from pressed. Opposite keys held together
// cancel out. A quit key stops the state.
func (b Bindings) Apply(state *ecs.GameState, pressed func(ebiten.Key) bool) {
	for _, binding := range b.Axes {
		var v float64
		if anyPressed(binding.Positive, pressed) {
			v++
		}
		if anyPressed(binding.Negative, pressed) {
			v--
		}
		state.SetAxis(binding.Axis, v)
	}

	if anyPressed(b.Quit, pressed) {
		state.Stop()
	}
}

// Poll applies the live keyboard state
func (b Bindings) Poll(state *ecs.GameState) {
	b.Apply(state, ebiten.IsKeyPressed)
}

func anyPressed(keys []ebiten.Key, pressed func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}
