package main

import (
	"context"
	"image"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/lixenwraith/weave/config"
	"github.com/lixenwraith/weave/engine"
	"github.com/lixenwraith/weave/render"
)

func TestNewEngine(t *testing.T) {
	cfg := config.Default()
	tests := []struct {
		name    string
		pointer bool
	}{
		{"fabric", true},
		{"gallery", true},
		{"snake", false},
		{"field", true},
		{"deconstruct", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, err := newEngine(tt.name, cfg)
			if err != nil {
				t.Fatalf("newEngine failed: %v", err)
			}
			if _, ok := eng.(engine.PointerHandler); ok != tt.pointer {
				t.Errorf("Expected pointer support %v, got %v", tt.pointer, ok)
			}

			// A few frames into a recorder must not panic or leave layers open
			rec := render.NewRecorder(160, 120)
			d := engine.NewDriver(eng, rec, cfg.Render.TickInterval)
			eng.Init(160, 120)
			for i := 0; i < 5; i++ {
				rec.Reset()
				d.Step(cfg.Render.TickInterval)
			}
			eng.Dispose()
			if d.Frames() != 5 {
				t.Errorf("Expected 5 frames, got %d", d.Frames())
			}
			if rec.LayerDepth() != 0 {
				t.Errorf("Expected balanced layers, got depth %d", rec.LayerDepth())
			}
		})
	}
}

func TestNewEngineUnknown(t *testing.T) {
	_, err := newEngine("plasma", config.Default())
	if !errors.Is(err, ErrUnknownEngine) {
		t.Errorf("Expected ErrUnknownEngine, got %v", err)
	}
}

func TestPreloadKeepsFailures(t *testing.T) {
	p := preload([]string{filepath.Join(t.TempDir(), "missing.png")})
	if p.Len() != 1 {
		t.Fatalf("Expected one entry, got %d", p.Len())
	}

	var gotErr error
	var gotImg image.Image
	calls := 0
	p.Load(context.Background(), 0, func(img image.Image, err error) {
		calls++
		gotImg, gotErr = img, err
	})
	if calls != 1 {
		t.Fatalf("Expected done called once inline, got %d", calls)
	}
	if gotErr == nil || gotImg != nil {
		t.Errorf("Expected decode failure, got img %v err %v", gotImg, gotErr)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.Load(ctx, 0, func(image.Image, error) { calls++ })
	if calls != 1 {
		t.Error("Expected cancelled load to never complete")
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a.png, ,b.jpg,")
	if len(got) != 2 || got[0] != "a.png" || got[1] != "b.jpg" {
		t.Errorf("Expected [a.png b.jpg], got %v", got)
	}
}

func TestOrbitStaysOnCanvas(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x, y := orbit(i, 300, 200)
		if x < 0 || x > 300 || y < 0 || y > 200 {
			t.Fatalf("Frame %d: pointer (%f, %f) off canvas", i, x, y)
		}
	}
}
