// Package assets loads images and sounds eagerly, at entity construction
// time, so the per-frame tick never touches the disk.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// DefaultSampleRate is used when a Manager is created with a zero sample rate
const DefaultSampleRate = 44100

var ErrUnsupportedFormat = eris.New("unsupported audio format")

// Loadable is implemented by components that reference assets on disk
type Loadable interface {
	Load(m *Manager) error
}

// Manager caches decoded images and sound data by path
type Manager struct {
	root       string
	sampleRate int
	volume     float64
	log        zerolog.Logger

	images map[string]*ebiten.Image
	sounds map[string][]byte
}

// NewManager creates a manager resolving relative paths against root
func NewManager(root string, sampleRate int, volume float64, logger zerolog.Logger) *Manager {
	if sampleRate == 0 {
		sampleRate = DefaultSampleRate
	}
	return &Manager{
		root:       root,
		sampleRate: sampleRate,
		volume:     volume,
		log:        logger.With().Str("component", "assets").Logger(),
		images:     make(map[string]*ebiten.Image),
		sounds:     make(map[string][]byte),
	}
}

func (m *Manager) resolve(path string) string {
	if filepath.IsAbs(path) || m.root == "" {
		return path
	}
	return filepath.Join(m.root, path)
}

// Image loads and caches the image at path
func (m *Manager) Image(path string) (*ebiten.Image, error) {
	if img, ok := m.images[path]; ok {
		return img, nil
	}

	file, err := os.Open(m.resolve(path))
	if err != nil {
		return nil, eris.Wrapf(err, "failed to open image %s", path)
	}
	defer file.Close()

	decoded, _, err := image.Decode(file)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to decode image %s", path)
	}

	img := ebiten.NewImageFromImage(decoded)
	m.images[path] = img
	m.log.Debug().Str("path", path).Stringer("bounds", img.Bounds()).Msg("image loaded")
	return img, nil
}

// Rect returns a w×h image filled with c, used for sprites without artwork
func (m *Manager) Rect(w, h int, c color.Color) *ebiten.Image {
	key := fmt.Sprintf("rect:%dx%d:%v", w, h, c)
	if img, ok := m.images[key]; ok {
		return img
	}
	img := ebiten.NewImage(w, h)
	img.Fill(c)
	m.images[key] = img
	return img
}

// Sound decodes the file at path and returns a ready player. The file is
// read fully into memory; decoding is chosen by extension.
func (m *Manager) Sound(path string, loop bool, volume float64) (*audio.Player, error) {
	data, ok := m.sounds[path]
	if !ok {
		var err error
		data, err = os.ReadFile(m.resolve(path))
		if err != nil {
			return nil, eris.Wrapf(err, "failed to read sound %s", path)
		}
		m.sounds[path] = data
	}

	stream, err := m.decode(path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}

	player, err := m.context().NewPlayer(src)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to create audio player for %s", path)
	}
	player.SetVolume(volume * m.volume)
	m.log.Debug().Str("path", path).Bool("loop", loop).Msg("sound loaded")
	return player, nil
}

type lengthStream interface {
	io.ReadSeeker
	Length() int64
}

func (m *Manager) decode(path string, r io.ReadSeeker) (lengthStream, error) {
	var (
		stream lengthStream
		err    error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(m.sampleRate, r)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(m.sampleRate, r)
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(m.sampleRate, r)
	default:
		return nil, eris.Wrapf(ErrUnsupportedFormat, "%s", path)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "failed to decode sound %s", path)
	}
	return stream, nil
}

// context returns the process-wide audio context, creating it on first use
func (m *Manager) context() *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(m.sampleRate)
}

// ParseHexColor converts a "#rrggbb" string to a color.RGBA.
// Malformed input yields opaque white.
func ParseHexColor(hex string) (c color.RGBA) {
	c.A = 0xff

	if len(hex) < 7 {
		return color.RGBA{255, 255, 255, 255}
	}

	_, err := fmt.Sscanf(hex, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	if err != nil {
		return color.RGBA{255, 255, 255, 255}
	}

	return
}
