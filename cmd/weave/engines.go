package main

import (
	"context"
	"image"

	"github.com/pkg/errors"

	"github.com/lixenwraith/weave/config"
	"github.com/lixenwraith/weave/core"
	"github.com/lixenwraith/weave/edge"
	"github.com/lixenwraith/weave/effects"
	"github.com/lixenwraith/weave/engine"
	"github.com/lixenwraith/weave/fabric"
	"github.com/lixenwraith/weave/gallery"
	"github.com/lixenwraith/weave/snake"
)

// ErrUnknownEngine reports an -engine value with no constructor
var ErrUnknownEngine = errors.New("unknown engine")

// newEngine builds the named engine from cfg
func newEngine(name string, cfg *config.Config) (engine.Engine, error) {
	seed := cfg.Render.Seed

	switch name {
	case "fabric":
		f := fabric.New(seed)
		f.PointerGlow = cfg.Fabric.PointerGlow
		return f, nil

	case "gallery":
		f := fabric.New(seed)
		f.PointerGlow = cfg.Fabric.PointerGlow
		return gallery.New(preload(cfg.Gallery.Images), seed,
			gallery.WithFabric(f),
			gallery.WithTiming(cfg.Gallery.Timing()),
			gallery.WithDetector(cfg.Edge.Detector()),
			// Frames are stepped faster than real time, extraction must land on the frame it starts
			gallery.WithRunner(func(fn func()) { fn() }),
		), nil

	case "snake":
		return snake.New(cfg.Snake.PresetValue(), seed), nil

	case "field":
		return effects.NewField(seed), nil

	case "deconstruct":
		var img image.Image
		if src := preload(cfg.Gallery.Images); src.Len() > 0 {
			img = src.images[0]
		}
		return effects.NewDeconstruct(img, seed), nil
	}
	return nil, errors.Wrapf(ErrUnknownEngine, "%q", name)
}

// preloaded serves images decoded before the run, completing every load inline.
// Paths that fail to decode stay as failures so the gallery exercises its retry path.
type preloaded struct {
	images []image.Image
	errs   []error
}

func preload(paths []string) *preloaded {
	p := &preloaded{
		images: make([]image.Image, len(paths)),
		errs:   make([]error, len(paths)),
	}
	for i, path := range paths {
		p.images[i], p.errs[i] = edge.Decode(path)
		if p.errs[i] != nil {
			core.Logger().Warn("image skipped", "path", path, "error", p.errs[i])
		}
	}
	return p
}

func (p *preloaded) Len() int { return len(p.images) }

func (p *preloaded) Load(ctx context.Context, i int, done edge.LoadFunc) {
	if ctx.Err() != nil {
		return
	}
	if i < 0 || i >= len(p.images) {
		done(nil, errors.Errorf("image index %d out of range [0,%d)", i, len(p.images)))
		return
	}
	done(p.images[i], p.errs[i])
}
