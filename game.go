package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-platformer/config"
	"ebiten-platformer/ecs"
	"ebiten-platformer/input"
	"ebiten-platformer/systems"
)

var background = color.RGBA{R: 0x1d, G: 0x22, B: 0x2b, A: 0xff}

// Game implements ebiten.Game interface.
type Game struct {
	cfg      config.Config
	registry *ecs.Registry
	state    *ecs.GameState
	bindings input.Bindings
	messages *systems.MessageLog

	// canvas is what the render system draws on during Update
	canvas    *ebiten.Image
	showDebug bool
}

// NewGame wires an already populated registry into the ebiten loop
func NewGame(cfg config.Config, r *ecs.Registry, state *ecs.GameState, messages *systems.MessageLog) *Game {
	return &Game{
		cfg:      cfg,
		registry: r,
		state:    state,
		bindings: input.DefaultBindings(),
		messages: messages,
		canvas:   ebiten.NewImage(cfg.WindowWidth, cfg.WindowHeight),
	}
}

// Update runs one frame of every registered system.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showDebug = !g.showDebug
	}

	g.bindings.Poll(g.state)
	g.state.Advance(1.0 / float64(ebiten.TPS()))

	g.canvas.Fill(background)
	g.state.Screen = g.canvas
	g.registry.Tick(g.state)

	if !g.state.Running {
		return ebiten.Termination
	}
	return nil
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas, nil)

	lines := []string{fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS())}
	if g.showDebug {
		lines = append(lines,
			fmt.Sprintf("frame %d, %d entities", g.registry.Frame(), g.registry.Len()),
			"systems: "+strings.Join(g.registry.Systems(), ", "))
	}
	lines = append(lines, g.messages.RecentMessages(5)...)
	ebitenutil.DebugPrint(screen, strings.Join(lines, "\n"))
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}
