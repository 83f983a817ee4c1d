package ecs

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rotisserie/eris"
)

// Standard input axes declared by NewGameState
const (
	AxisHorizontal = "horizontal"
	AxisVertical   = "vertical"
	AxisJump       = "jump"
	AxisAttack     = "attack"
	AxisInteract   = "interact"
)

// Surface is the output systems draw on. *ebiten.Image satisfies it.
type Surface interface {
	Bounds() image.Rectangle
	DrawImage(img *ebiten.Image, options *ebiten.DrawImageOptions)
}

// GameState is the per-frame context handed to every system
type GameState struct {
	// DeltaTime is the length of the current frame in seconds
	DeltaTime float64
	// Elapsed is the simulated time since start in seconds
	Elapsed float64
	// CurrentCamera is the entity the render system looks through
	CurrentCamera EntityID
	// Running is cleared to request shutdown after the current frame
	Running bool
	Screen  Surface

	axes map[string]float64
}

// NewGameState creates a running state with the standard axes declared
func NewGameState() *GameState {
	s := &GameState{
		Running: true,
		axes:    make(map[string]float64),
	}
	for _, name := range []string{AxisHorizontal, AxisVertical, AxisJump, AxisAttack, AxisInteract} {
		s.DeclareAxis(name)
	}
	return s
}

// DeclareAxis makes name a known axis with value 0 if it is not one already
func (s *GameState) DeclareAxis(name string) {
	if _, ok := s.axes[name]; !ok {
		s.axes[name] = 0
	}
}

// SetAxis sets the current value of an axis, declaring it if needed
func (s *GameState) SetAxis(name string, value float64) {
	s.axes[name] = value
}

// Axis returns the value of a declared axis. Reading an undeclared axis is a
// programming error and panics.
func (s *GameState) Axis(name string) float64 {
	v, ok := s.axes[name]
	if !ok {
		panic(eris.ToString(eris.Errorf("input axis %q is not declared", name), false))
	}
	return v
}

// LookupAxis returns the value of an axis and whether it is declared
func (s *GameState) LookupAxis(name string) (float64, bool) {
	v, ok := s.axes[name]
	return v, ok
}

// Pressed reports whether a button-like axis is held
func (s *GameState) Pressed(name string) bool {
	return s.Axis(name) != 0
}

// Advance records the start of a new frame of length dt
func (s *GameState) Advance(dt float64) {
	s.DeltaTime = dt
	s.Elapsed += dt
}

// Stop requests shutdown after the current frame
func (s *GameState) Stop() {
	s.Running = false
}
