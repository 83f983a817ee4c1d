package data

import (
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"ebiten-platformer/assets"
	"ebiten-platformer/ecs"
)

var (
	ErrMissingType     = eris.New("component record has no type")
	ErrUnknownTemplate = eris.New("entity references an unknown template")
)

// SceneFile is the on-disk scene description
type SceneFile struct {
	// Templates are reusable component lists, like prefabs
	Templates map[string][]json.RawMessage `json:"templates"`
	Entities  []EntityRecord               `json:"entities"`
}

// EntityRecord describes one entity. Components listed here replace template
// components of the same type.
type EntityRecord struct {
	Name       string            `json:"name"`
	Template   string            `json:"template"`
	Components []json.RawMessage `json:"components"`
}

// componentNode adapts one raw component record to ecs.ConfigNode
type componentNode struct {
	name string
	raw  json.RawMessage
}

func (n componentNode) Type() string { return n.name }

func (n componentNode) Decode(v any) error {
	if err := json.Unmarshal(n.raw, v); err != nil {
		return eris.Wrapf(err, "invalid %s record", n.name)
	}
	return nil
}

func parseNode(raw json.RawMessage) (componentNode, error) {
	var header struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &header); err != nil {
		return componentNode{}, eris.Wrap(err, "invalid component record")
	}
	if header.Type == "" {
		return componentNode{}, eris.Wrapf(ErrMissingType, "%s", string(raw))
	}
	return componentNode{name: header.Type, raw: raw}, nil
}

// SceneLoader builds entities from scene descriptions
type SceneLoader struct {
	registry *ecs.Registry
	assets   *assets.Manager
	log      zerolog.Logger
	// CameraType names the component marking the active camera
	CameraType string
}

// NewSceneLoader creates a loader. assets may be nil, in which case sprites
// and sounds are left unloaded.
func NewSceneLoader(r *ecs.Registry, m *assets.Manager, logger zerolog.Logger) *SceneLoader {
	return &SceneLoader{
		registry:   r,
		assets:     m,
		log:        logger.With().Str("component", "scene").Logger(),
		CameraType: "Camera",
	}
}

// LoadFile reads and builds the scene at path
func (l *SceneLoader) LoadFile(path string, state *ecs.GameState) ([]ecs.EntityID, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read scene %s", path)
	}
	ids, err := l.Load(raw, state)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to load scene %s", path)
	}
	return ids, nil
}

// Load builds every entity of the scene. The load is all-or-nothing: on
// error, entities created so far are destroyed.
func (l *SceneLoader) Load(raw []byte, state *ecs.GameState) ([]ecs.EntityID, error) {
	var scene SceneFile
	if err := json.Unmarshal(raw, &scene); err != nil {
		return nil, eris.Wrap(err, "invalid scene file")
	}

	templates := make(map[string][]componentNode, len(scene.Templates))
	for name, records := range scene.Templates {
		nodes, err := parseNodes(records)
		if err != nil {
			return nil, eris.Wrapf(err, "template %q", name)
		}
		templates[name] = nodes
	}

	created := make([]ecs.EntityID, 0, len(scene.Entities))
	camera := ecs.NoEntity
	for i, rec := range scene.Entities {
		nodes, err := resolve(rec, templates)
		if err == nil {
			var id ecs.EntityID
			var isCamera bool
			id, isCamera, err = l.build(nodes)
			if err == nil {
				created = append(created, id)
				if isCamera && camera == ecs.NoEntity {
					camera = id
				}
				continue
			}
		}
		for _, id := range created {
			l.registry.DestroyEntity(id)
		}
		return nil, eris.Wrapf(err, "entity %d (%s)", i, rec.Name)
	}

	if camera != ecs.NoEntity && state != nil {
		state.CurrentCamera = camera
	}
	l.log.Info().Int("entities", len(created)).Uint32("camera", uint32(camera)).Msg("scene loaded")
	return created, nil
}

func parseNodes(records []json.RawMessage) ([]componentNode, error) {
	nodes := make([]componentNode, 0, len(records))
	for _, raw := range records {
		node, err := parseNode(raw)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// resolve merges the template components with the entity's own records
func resolve(rec EntityRecord, templates map[string][]componentNode) ([]componentNode, error) {
	own, err := parseNodes(rec.Components)
	if err != nil {
		return nil, err
	}
	if rec.Template == "" {
		return own, nil
	}
	base, ok := templates[rec.Template]
	if !ok {
		return nil, eris.Wrapf(ErrUnknownTemplate, "%q", rec.Template)
	}

	overridden := make(map[string]bool, len(own))
	for _, n := range own {
		overridden[strings.ToLower(n.name)] = true
	}
	merged := make([]componentNode, 0, len(base)+len(own))
	for _, n := range base {
		if !overridden[strings.ToLower(n.name)] {
			merged = append(merged, n)
		}
	}
	return append(merged, own...), nil
}

// build creates one entity. Asset failures are logged and leave the
// component unloaded; any other failure destroys the entity.
func (l *SceneLoader) build(nodes []componentNode) (ecs.EntityID, bool, error) {
	id := l.registry.CreateEntity()
	isCamera := false
	for _, node := range nodes {
		c, err := l.registry.AddComponentByName(id, node)
		if err != nil {
			l.registry.DestroyEntity(id)
			return ecs.NoEntity, false, err
		}
		if strings.EqualFold(node.name, l.CameraType) {
			isCamera = true
		}
		if loadable, ok := c.(assets.Loadable); ok && l.assets != nil {
			if err := loadable.Load(l.assets); err != nil {
				l.log.Warn().Err(err).Uint32("entity", uint32(id)).Str("type", node.name).Msg("asset not loaded")
			}
		}
	}
	return id, isCamera, nil
}
