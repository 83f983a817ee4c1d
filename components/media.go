package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"ebiten-platformer/assets"
	"ebiten-platformer/ecs"
)

// Sprite is an image drawn at the entity's Transform. Without an asset path
// a solid rectangle of Width×Height in Color is used.
type Sprite struct {
	AssetPath string `json:"assetPath"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Color     string `json:"color"`

	// Image is nil until loaded; render skips sprites without one
	Image *ebiten.Image `json:"-"`
}

func (s *Sprite) Deserialize(node ecs.ConfigNode) error { return node.Decode(s) }

// Load resolves the image through the asset manager
func (s *Sprite) Load(m *assets.Manager) error {
	if s.AssetPath == "" {
		if s.Width > 0 && s.Height > 0 {
			s.Image = m.Rect(s.Width, s.Height, assets.ParseHexColor(s.Color))
		}
		return nil
	}
	img, err := m.Image(s.AssetPath)
	if err != nil {
		return err
	}
	s.Image = img
	return nil
}

// Loaded reports whether there is something to draw
func (s *Sprite) Loaded() bool { return s.Image != nil }

// Sound is a named clip owned by the entity
type Sound struct {
	Name      string  `json:"name"`
	AssetPath string  `json:"assetPath"`
	Volume    float64 `json:"volume"`
	Loop      bool    `json:"isLooped"`

	player *audio.Player
}

func (s *Sound) Default() { s.Volume = 1 }

func (s *Sound) Deserialize(node ecs.ConfigNode) error { return node.Decode(s) }

// Load decodes the clip; on failure the sound stays silent
func (s *Sound) Load(m *assets.Manager) error {
	player, err := m.Sound(s.AssetPath, s.Loop, s.Volume)
	if err != nil {
		return err
	}
	s.player = player
	return nil
}

// Loaded reports whether the clip can be played
func (s *Sound) Loaded() bool { return s.player != nil }

// Play starts the clip from the beginning. Unloaded sounds do nothing.
func (s *Sound) Play() {
	if s.player == nil {
		return
	}
	if s.player.IsPlaying() && s.Loop {
		return
	}
	_ = s.player.Rewind()
	s.player.Play()
}

// Playing reports whether the clip is currently audible
func (s *Sound) Playing() bool {
	return s.player != nil && s.player.IsPlaying()
}

// Close releases the audio player
func (s *Sound) Close() error {
	if s.player == nil {
		return nil
	}
	err := s.player.Close()
	s.player = nil
	return err
}
