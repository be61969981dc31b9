// Package config loads weave settings from TOML over built-in defaults
package config

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/weave/audio"
	"github.com/lixenwraith/weave/core"
	"github.com/lixenwraith/weave/edge"
	"github.com/lixenwraith/weave/gallery"
	"github.com/lixenwraith/weave/parameter"
	"github.com/lixenwraith/weave/snake"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("config: invalid value")

// Config is the full settings tree, one table per subsystem
type Config struct {
	Render  RenderConfig  `toml:"render"`
	Fabric  FabricConfig  `toml:"fabric"`
	Gallery GalleryConfig `toml:"gallery"`
	Snake   SnakeConfig   `toml:"snake"`
	Edge    EdgeConfig    `toml:"edge"`
	Audio   AudioConfig   `toml:"audio"`
}

// RenderConfig sizes the canvas and paces the frame loop
type RenderConfig struct {
	Width        int           `toml:"width"`
	Height       int           `toml:"height"`
	TickInterval time.Duration `toml:"tick_interval"`
	Seed         uint64        `toml:"seed"`
}

type FabricConfig struct {
	PointerGlow bool `toml:"pointer_glow"`
}

// GalleryConfig lists the images to cycle and the phase windows
type GalleryConfig struct {
	Images     []string      `toml:"images"`
	FirstDelay time.Duration `toml:"first_delay"`
	CycleDelay time.Duration `toml:"cycle_delay"`
	RetryDelay time.Duration `toml:"retry_delay"`
	Show       time.Duration `toml:"show"`
	Decay      time.Duration `toml:"decay"`
	Relax      time.Duration `toml:"relax"`
}

type SnakeConfig struct {
	Preset string `toml:"preset"`
}

// EdgeConfig tunes the adaptive detector
type EdgeConfig struct {
	Target      int     `toml:"target"`
	MaxAttempts int     `toml:"max_attempts"`
	Tolerance   float64 `toml:"tolerance"`
	Stride      int     `toml:"stride"`
}

type AudioConfig struct {
	Enabled    bool          `toml:"enabled"`
	Volume     float64       `toml:"volume"`
	SampleRate int           `toml:"sample_rate"`
	Buffer     time.Duration `toml:"buffer"`
}

// Default returns the settings used when no file is given
func Default() *Config {
	t := gallery.DefaultTiming()
	return &Config{
		Render: RenderConfig{
			Width:        parameter.DefaultCanvasWidth,
			Height:       parameter.DefaultCanvasHeight,
			TickInterval: parameter.FrameUpdateInterval,
			Seed:         1,
		},
		Fabric: FabricConfig{PointerGlow: true},
		Gallery: GalleryConfig{
			FirstDelay: t.FirstDelay,
			CycleDelay: t.CycleDelay,
			RetryDelay: t.RetryDelay,
			Show:       t.Show,
			Decay:      t.Decay,
			Relax:      t.Relax,
		},
		Snake: SnakeConfig{Preset: snake.PresetGrid.String()},
		Edge: EdgeConfig{
			Target:      edge.DefaultTarget,
			MaxAttempts: edge.DefaultMaxAttempts,
			Tolerance:   edge.DefaultTolerance,
			Stride:      edge.DefaultStride,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     parameter.AudioMasterVolume,
			SampleRate: parameter.AudioSampleRate,
			Buffer:     parameter.AudioBufferDuration,
		},
	}
}

// Load decodes path over the defaults and validates the result.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "config: decode %s", path)
	}
	for _, k := range md.Undecoded() {
		core.Logger().Warn("unknown config key", "file", path, "key", k.String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config: %s", path)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults, for embedded configs and tests
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, errors.Wrap(err, "config: decode")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values no engine can run with and clamps soft ranges
func (c *Config) Validate() error {
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return errors.Wrapf(ErrInvalid, "render size %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Render.TickInterval <= 0 {
		return errors.Wrapf(ErrInvalid, "render tick_interval %v", c.Render.TickInterval)
	}

	g := c.Gallery
	for name, d := range map[string]time.Duration{
		"first_delay": g.FirstDelay,
		"cycle_delay": g.CycleDelay,
		"retry_delay": g.RetryDelay,
		"show":        g.Show,
		"decay":       g.Decay,
		"relax":       g.Relax,
	} {
		if d <= 0 {
			return errors.Wrapf(ErrInvalid, "gallery %s %v", name, d)
		}
	}

	if _, ok := snake.ParsePreset(c.Snake.Preset); !ok {
		return errors.Wrapf(ErrInvalid, "snake preset %q", c.Snake.Preset)
	}

	if c.Edge.Target <= 0 || c.Edge.Stride <= 0 {
		return errors.Wrapf(ErrInvalid, "edge target %d stride %d", c.Edge.Target, c.Edge.Stride)
	}
	c.Edge.MaxAttempts = max(c.Edge.MaxAttempts, 1)
	c.Edge.Tolerance = min(max(c.Edge.Tolerance, 0), 1)

	c.Audio.Volume = min(max(c.Audio.Volume, 0), 1)
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = parameter.AudioSampleRate
	}
	if c.Audio.Buffer <= 0 {
		c.Audio.Buffer = parameter.AudioBufferDuration
	}
	return nil
}

// Timing converts the gallery windows into the controller's duration table
func (g GalleryConfig) Timing() gallery.Timing {
	return gallery.Timing{
		FirstDelay: g.FirstDelay,
		CycleDelay: g.CycleDelay,
		RetryDelay: g.RetryDelay,
		Show:       g.Show,
		Decay:      g.Decay,
		Relax:      g.Relax,
	}
}

// Detector builds an edge detector with this tuning
func (e EdgeConfig) Detector() *edge.Detector {
	d := edge.NewDetector()
	d.Target = e.Target
	d.MaxAttempts = e.MaxAttempts
	d.Tolerance = e.Tolerance
	d.Stride = e.Stride
	return d
}

// PresetValue returns the parsed snake preset, grid when unknown
func (s SnakeConfig) PresetValue() snake.Preset {
	p, _ := snake.ParsePreset(s.Preset)
	return p
}

// Player returns the audio player settings
func (a AudioConfig) Player() *audio.Config {
	cfg := audio.DefaultConfig()
	cfg.Enabled = a.Enabled
	cfg.MasterVolume = a.Volume
	cfg.SampleRate = a.SampleRate
	cfg.Buffer = a.Buffer
	return cfg
}
