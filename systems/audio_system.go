package systems

import (
	"ebiten-platformer/components"
	"ebiten-platformer/ecs"
)

// Well-known sound names
const (
	SoundMusic    = "music"
	SoundInteract = "sound"
)

// TriggerSounds starts the "music" clip while moving up and the "sound" clip
// on interact. Unloaded clips stay silent.
//
// Requires Sound.
func TriggerSounds(state *ecs.GameState, r *ecs.Registry, id ecs.EntityID) {
	snd := ecs.GetComponent[components.Sound](r, id)
	if !snd.Loaded() {
		return
	}

	switch {
	case snd.Name == SoundMusic && state.Axis(ecs.AxisVertical) > 0:
		if !snd.Playing() {
			snd.Play()
		}
	case snd.Name == SoundInteract && state.Axis(ecs.AxisInteract) > 0:
		snd.Play()
	}
}
