package systems_test

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-platformer/components"
	"ebiten-platformer/ecs"
	"ebiten-platformer/systems"
)

const frame = 1.0 / 60.0

func newRegistry(t *testing.T) *ecs.Registry {
	t.Helper()
	r := ecs.NewRegistry()
	require.NoError(t, components.Register(r))
	return r
}

func newState(dt float64) *ecs.GameState {
	s := ecs.NewGameState()
	s.Advance(dt)
	return s
}

func place(r *ecs.Registry, id ecs.EntityID, x, y float64) *components.Transform {
	t := ecs.AddComponent[components.Transform](r, id)
	t.Position = components.Vec2{X: x, Y: y}
	return t
}

func box(r *ecs.Registry, id ecs.EntityID, w, h float64) *components.Collider {
	c := ecs.AddComponent[components.Collider](r, id)
	c.Width, c.Height = w, h
	return c
}

func TestRegisterOrder(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, systems.Register(r))
	assert.Equal(t, []string{
		"MovePlayer", "ApplyPhysics", "UpdateCollider", "Collision",
		"Combat", "FollowCamera", "TriggerSounds", "Render",
	}, r.Systems())

	// systems need their components registered first
	require.ErrorIs(t, systems.Register(ecs.NewRegistry()), ecs.ErrUnregisteredComponent)
}

func TestMovePlayerScenario(t *testing.T) {
	r := ecs.NewRegistry()
	require.NoError(t, ecs.RegisterComponent[components.Transform](r, "Transform"))
	require.NoError(t, ecs.RegisterComponent[components.Player](r, "Player"))
	require.NoError(t, r.RegisterSystem(systems.MovePlayer, ecs.Type[components.Transform](), ecs.Type[components.Player]()))

	id := r.CreateEntity()
	ecs.AddComponent[components.Transform](r, id)
	ecs.AddComponent[components.Player](r, id)

	state := ecs.NewGameState()
	state.SetAxis(ecs.AxisHorizontal, 1)
	state.SetAxis(ecs.AxisVertical, 0)
	state.Advance(0.1)
	r.Tick(state)

	pos := ecs.GetComponent[components.Transform](r, id).Position
	assert.InDelta(t, 20, pos.X, 1e-9)
	assert.InDelta(t, 0, pos.Y, 1e-9)
}

func TestMovePlayerNormalizesDiagonal(t *testing.T) {
	r := newRegistry(t)
	id := r.CreateEntity()
	place(r, id, 0, 0)
	ecs.AddComponent[components.Player](r, id).Speed = 100

	state := newState(1)
	state.SetAxis(ecs.AxisHorizontal, 1)
	state.SetAxis(ecs.AxisVertical, 1)
	systems.MovePlayer(state, r, id)

	pos := ecs.GetComponent[components.Transform](r, id).Position
	assert.InDelta(t, 100, pos.Len(), 1e-9)

	// gravity owns the vertical axis of physical bodies
	ecs.AddComponent[components.Physics](r, id)
	systems.MovePlayer(state, r, id)
	assert.InDelta(t, pos.Y, ecs.GetComponent[components.Transform](r, id).Position.Y, 1e-9)
}

func TestCollisionScenario(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, r.RegisterSystem(systems.UpdateCollider, ecs.Type[components.Transform](), ecs.Type[components.Collider]()))
	require.NoError(t, r.RegisterSystem(systems.Collision, ecs.Type[components.Collider]()))

	a := r.CreateEntity()
	place(r, a, 0, 0)
	box(r, a, 10, 10)
	ecs.AddComponent[components.Player](r, a)

	b := r.CreateEntity()
	tb := place(r, b, 5, 5)
	box(r, b, 10, 10)

	var started []systems.CollisionEvent
	r.Events().Subscribe(systems.EventCollision, func(e ecs.Event) {
		started = append(started, e.(systems.CollisionEvent))
	})

	state := newState(frame)
	r.Tick(state)
	assert.Equal(t, []ecs.EntityID{b}, ecs.GetComponent[components.Collider](r, a).Collisions())
	assert.Equal(t, []ecs.EntityID{a}, ecs.GetComponent[components.Collider](r, b).Collisions())
	require.Len(t, started, 1)
	assert.Equal(t, systems.CollisionEvent{EntityID1: a, EntityID2: b}, started[0])

	tb.Position = components.Vec2{X: 1000, Y: 1000}
	r.Tick(state)
	assert.Empty(t, ecs.GetComponent[components.Collider](r, a).Collisions())
	assert.Empty(t, ecs.GetComponent[components.Collider](r, b).Collisions())
}

func TestCollisionForgetsDestroyedEntities(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, systems.Register(r))

	a := r.CreateEntity()
	place(r, a, 0, 0)
	box(r, a, 10, 10)
	b := r.CreateEntity()
	place(r, b, 1, 1)
	box(r, b, 10, 10)

	state := newState(frame)
	r.Tick(state)
	require.True(t, ecs.GetComponent[components.Collider](r, a).CollidesWith(b))

	r.DestroyEntity(b)
	r.Tick(state)
	assert.Empty(t, ecs.GetComponent[components.Collider](r, a).Collisions())
}

func TestBodyLandsOnSolidGround(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, systems.Register(r))

	body := r.CreateEntity()
	place(r, body, 0, 40)
	box(r, body, 16, 24)
	ecs.AddComponent[components.Physics](r, body)
	ecs.AddComponent[components.Player](r, body)

	ground := r.CreateEntity()
	place(r, ground, 0, 0)
	box(r, ground, 64, 16).Solid = true

	state := newState(frame)
	for i := 0; i < 120; i++ {
		r.Tick(state)
	}

	c := ecs.GetComponent[components.Collider](r, body)
	assert.True(t, c.Grounded())
	// ground top is at 8, half the body height is 12
	assert.InDelta(t, 20, ecs.GetComponent[components.Transform](r, body).Position.Y, 1e-3)
	assert.Equal(t, 0.0, ecs.GetComponent[components.Physics](r, body).Velocity.Y)

	state.SetAxis(ecs.AxisJump, 1)
	r.Tick(state)
	state.SetAxis(ecs.AxisJump, 0)
	assert.Greater(t, ecs.GetComponent[components.Physics](r, body).Velocity.Y, 0.0)
	assert.Greater(t, ecs.GetComponent[components.Transform](r, body).Position.Y, 20.0)
	assert.False(t, c.Grounded())
}

func TestFallingWithoutGround(t *testing.T) {
	r := newRegistry(t)
	id := r.CreateEntity()
	place(r, id, 0, 0)
	p := ecs.AddComponent[components.Physics](r, id)
	p.Gravity, p.MaxFall = 10, 15

	state := newState(1)
	systems.ApplyPhysics(state, r, id)
	assert.Equal(t, -10.0, p.Velocity.Y)
	systems.ApplyPhysics(state, r, id)
	assert.Equal(t, -15.0, p.Velocity.Y, "fall speed is capped")
	assert.Equal(t, -25.0, ecs.GetComponent[components.Transform](r, id).Position.Y)
}

func TestCombatKillsTarget(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, systems.Register(r))
	messages := systems.NewMessageLog()
	messages.Subscribe(r.Events())

	hero := r.CreateEntity()
	place(r, hero, 0, 0)
	box(r, hero, 10, 10)
	ecs.AddComponent[components.Player](r, hero)
	w := ecs.AddComponent[components.Weapon](r, hero)
	w.Damage, w.Cooldown = 15, 1

	slime := r.CreateEntity()
	place(r, slime, 5, 0)
	box(r, slime, 10, 10)
	h := ecs.AddComponent[components.Health](r, slime)
	h.Max, h.Current = 20, 20

	var deaths []systems.DeathEvent
	r.Events().Subscribe(systems.EventDeath, func(e ecs.Event) {
		deaths = append(deaths, e.(systems.DeathEvent))
	})

	state := newState(frame)
	r.Tick(state)
	assert.Equal(t, 20, h.Current, "no damage without attacking")

	state.SetAxis(ecs.AxisAttack, 1)
	r.Tick(state)
	assert.Equal(t, 5, h.Current)
	assert.InDelta(t, 1, w.Remaining, 1e-9)

	// still cooling down
	r.Tick(state)
	assert.Equal(t, 5, h.Current)

	w.Remaining = 0
	r.Tick(state)
	assert.False(t, r.Alive(slime))
	assert.Nil(t, ecs.GetComponent[components.Health](r, slime))
	assert.Equal(t, []systems.DeathEvent{{EntityID: slime, KillerID: hero}}, deaths)
	assert.Empty(t, ecs.GetComponent[components.Collider](r, hero).Collisions())
	assert.Equal(t, []string{"#2 was defeated", "#1 hits #2 for 15 (0 left)", "#1 hits #2 for 15 (5 left)"}, messages.RecentMessages(3))
}

func TestAutoWeaponOnlyHurtsPlayer(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, systems.Register(r))

	slime := r.CreateEntity()
	place(r, slime, 0, 0)
	box(r, slime, 10, 10)
	w := ecs.AddComponent[components.Weapon](r, slime)
	w.Auto, w.Damage = true, 5

	crate := r.CreateEntity()
	place(r, crate, 3, 0)
	box(r, crate, 10, 10)
	crateHealth := ecs.AddComponent[components.Health](r, crate)

	hero := r.CreateEntity()
	place(r, hero, -3, 0)
	box(r, hero, 10, 10)
	ecs.AddComponent[components.Player](r, hero)
	heroHealth := ecs.AddComponent[components.Health](r, hero)

	r.Tick(newState(frame))
	assert.Equal(t, 95, heroHealth.Current)
	assert.Equal(t, 100, crateHealth.Current)
}

func TestFollowCamera(t *testing.T) {
	r := newRegistry(t)

	hero := r.CreateEntity()
	place(r, hero, 100, 50)
	ecs.AddComponent[components.Player](r, hero)

	cam := r.CreateEntity()
	camT := place(r, cam, 0, 0)
	c := ecs.AddComponent[components.Camera](r, cam)

	state := newState(0.1)
	systems.FollowCamera(state, r, cam)
	assert.Equal(t, components.Vec2{}, camT.Position, "no target, no movement")

	c.FollowPlayer = true
	systems.FollowCamera(state, r, cam)
	assert.Equal(t, hero, c.Target)
	assert.Equal(t, components.Vec2{X: 100, Y: 50}, camT.Position)

	camT.Position = components.Vec2{}
	c.Smoothing = 5
	systems.FollowCamera(state, r, cam)
	assert.InDelta(t, 50, camT.Position.X, 1e-9)
	assert.InDelta(t, 25, camT.Position.Y, 1e-9)

	r.DestroyEntity(hero)
	c.FollowPlayer = false
	systems.FollowCamera(state, r, cam)
	assert.Equal(t, ecs.NoEntity, c.Target)
}

func TestViewProject(t *testing.T) {
	v := systems.View{
		Position: components.Vec2{X: 0, Y: 0},
		Scale:    components.Vec2{X: 1, Y: 1},
		Screen:   components.Vec2{X: 100, Y: 100},
	}
	tr := &components.Transform{Position: components.Vec2{X: 10, Y: 10}, Scale: components.Vec2{X: 1, Y: 1}}

	pos, scale := v.Project(tr, components.Vec2{X: 4, Y: 4})
	assert.Equal(t, components.Vec2{X: 58, Y: 38}, pos)
	assert.Equal(t, components.Vec2{X: 1, Y: 1}, scale)

	v.Scale = components.Vec2{X: 2, Y: 2}
	v.Position = components.Vec2{X: 10, Y: 10}
	pos, scale = v.Project(tr, components.Vec2{X: 4, Y: 4})
	assert.Equal(t, components.Vec2{X: 46, Y: 46}, pos)
	assert.Equal(t, components.Vec2{X: 2, Y: 2}, scale)
}

type recordingSurface struct {
	draws int
}

func (s *recordingSurface) Bounds() image.Rectangle { return image.Rect(0, 0, 320, 240) }

func (s *recordingSurface) DrawImage(*ebiten.Image, *ebiten.DrawImageOptions) { s.draws++ }

func TestRenderSkipsUnloadedSprites(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, systems.Register(r))

	id := r.CreateEntity()
	place(r, id, 0, 0)
	ecs.AddComponent[components.Sprite](r, id)

	state := newState(frame)
	assert.NotPanics(t, func() { r.Tick(state) }, "no screen")

	screen := &recordingSurface{}
	state.Screen = screen
	state.CurrentCamera = ecs.EntityID(42)
	r.Tick(state)
	assert.Equal(t, 0, screen.draws)
}

func TestTriggerSoundsWithoutAudio(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, systems.Register(r))

	id := r.CreateEntity()
	ecs.AddComponent[components.Sound](r, id).Name = systems.SoundMusic

	state := newState(frame)
	state.SetAxis(ecs.AxisVertical, 1)
	state.SetAxis(ecs.AxisInteract, 1)
	assert.NotPanics(t, func() { r.Tick(state) })
}

func TestMessageLogKeepsMostRecent(t *testing.T) {
	ml := systems.NewMessageLog()
	ml.MaxMessages = 2
	ml.Add("a")
	ml.Add("b")
	ml.Add("c")
	assert.Equal(t, []string{"c", "b"}, ml.RecentMessages(5))
	ml.Clear()
	assert.Empty(t, ml.RecentMessages(1))
}
