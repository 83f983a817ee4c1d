package components_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-platformer/components"
	"ebiten-platformer/ecs"
)

func TestRegisterAllComponents(t *testing.T) {
	r := ecs.NewRegistry()
	require.NoError(t, components.Register(r))

	assert.Equal(t, []string{
		"Transform", "Sprite", "Camera", "Player", "Collider",
		"Physics", "Sound", "Health", "Weapon",
	}, r.ComponentNames())

	// a second registration is a configuration error
	require.ErrorIs(t, components.Register(r), ecs.ErrDuplicateComponent)
}

func TestDefaults(t *testing.T) {
	r := ecs.NewRegistry()
	require.NoError(t, components.Register(r))
	id := r.CreateEntity()

	assert.Equal(t, 200.0, ecs.AddComponent[components.Player](r, id).Speed)
	assert.Equal(t, components.Vec2{X: 1, Y: 1}, ecs.AddComponent[components.Transform](r, id).Scale)
	assert.Equal(t, components.Vec2{X: 1, Y: 1}, ecs.AddComponent[components.Camera](r, id).Scale)
	assert.Equal(t, 100, ecs.AddComponent[components.Health](r, id).Current)
	assert.True(t, ecs.AddComponent[components.Weapon](r, id).Ready())
	assert.False(t, ecs.AddComponent[components.Sound](r, id).Loaded())
	assert.False(t, ecs.AddComponent[components.Sprite](r, id).Loaded())
}

func TestVec2(t *testing.T) {
	v := components.Vec2{X: 3, Y: 4}
	assert.Equal(t, 5.0, v.Len())
	assert.InDelta(t, 0.6, v.Normalize().X, 1e-9)
	assert.Equal(t, components.Vec2{}, components.Vec2{}.Normalize())
	assert.Equal(t, components.Vec2{X: 4, Y: 6}, v.Add(components.Vec2{X: 1, Y: 2}))
	assert.Equal(t, components.Vec2{X: 6, Y: 8}, v.Scale(2))
	assert.Equal(t, components.Vec2{X: 3, Y: 8}, v.Mul(components.Vec2{X: 1, Y: 2}))
}

func TestColliderCollisionList(t *testing.T) {
	var c components.Collider

	assert.True(t, c.AddCollision(5))
	assert.False(t, c.AddCollision(5))
	assert.True(t, c.AddCollision(2))
	assert.Equal(t, []ecs.EntityID{2, 5}, c.Collisions())
	assert.True(t, c.CollidesWith(5))

	c.RemoveCollision(5)
	c.RemoveCollision(9)
	assert.Equal(t, []ecs.EntityID{2}, c.Collisions())
}

func TestColliderOverlaps(t *testing.T) {
	a := &components.Collider{LeftDown: components.Vec2{X: 0, Y: 0}, RightUp: components.Vec2{X: 10, Y: 10}}
	b := &components.Collider{LeftDown: components.Vec2{X: 5, Y: 5}, RightUp: components.Vec2{X: 15, Y: 15}}
	c := &components.Collider{LeftDown: components.Vec2{X: 11, Y: 0}, RightUp: components.Vec2{X: 20, Y: 10}}

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	assert.False(t, a.Overlaps(c))
}

func TestHealthDamage(t *testing.T) {
	h := components.Health{Current: 5, Max: 10}
	h.Damage(3)
	assert.Equal(t, 2, h.Current)
	h.Damage(10)
	assert.Equal(t, 0, h.Current)
	assert.True(t, h.Dead())
}

// jsonNode is a ConfigNode over a JSON object
type jsonNode string

func (n jsonNode) Type() string { return "Health" }

func (n jsonNode) Decode(v any) error { return json.Unmarshal([]byte(n), v) }

func TestHealthDeserialize(t *testing.T) {
	h := &components.Health{}
	h.Default()
	require.NoError(t, h.Deserialize(jsonNode(`{"max": 40}`)))
	assert.Equal(t, components.Health{Current: 40, Max: 40}, *h)

	h = &components.Health{}
	h.Default()
	require.NoError(t, h.Deserialize(jsonNode(`{"max": 40, "current": 15}`)))
	assert.Equal(t, 15, h.Current)

	// an omitted max keeps the default
	h = &components.Health{}
	h.Default()
	require.NoError(t, h.Deserialize(jsonNode(`{}`)))
	assert.Equal(t, components.Health{Current: 100, Max: 100}, *h)

	for _, raw := range []string{`{"max": 0}`, `{"max": -5, "current": 3}`} {
		h = &components.Health{}
		h.Default()
		require.ErrorIs(t, h.Deserialize(jsonNode(raw)), components.ErrInvalidHealth, raw)
	}
}

func TestUnloadedSoundIsSilent(t *testing.T) {
	s := components.Sound{Name: "music"}
	s.Play()
	assert.False(t, s.Playing())
	assert.NoError(t, s.Close())
}
