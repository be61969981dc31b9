// Command weave runs one engine headlessly and writes its frames as PNG files
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/weave/config"
	"github.com/lixenwraith/weave/core"
	"github.com/lixenwraith/weave/engine"
	"github.com/lixenwraith/weave/render"
)

const (
	logDir      = "logs"
	logFileName = "weave.log"
)

var (
	engineFlag  = flag.String("engine", "fabric", "Engine: fabric, gallery, snake, field, deconstruct")
	framesFlag  = flag.Int("frames", 120, "Number of frames to simulate")
	everyFlag   = flag.Int("every", 1, "Write every Nth frame")
	outFlag     = flag.String("out", "frames", "Output directory for PNG frames")
	configFlag  = flag.String("config", "", "TOML config file")
	imagesFlag  = flag.String("images", "", "Comma-separated image paths, overrides [gallery] images")
	pointerFlag = flag.Bool("pointer", false, "Sweep a simulated pointer around the canvas")
	debugFlag   = flag.Bool("debug", false, "Write debug logs to logs/weave.log")
)

func main() {
	flag.Parse()

	if f := core.SetupLogging(*debugFlag, logDir, logFileName); f != nil {
		defer f.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "weave: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *imagesFlag != "" {
		cfg.Gallery.Images = splitList(*imagesFlag)
	}
	if *framesFlag <= 0 {
		return errors.Errorf("frames must be positive, got %d", *framesFlag)
	}

	eng, err := newEngine(*engineFlag, cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*outFlag, 0o755); err != nil {
		return errors.Wrapf(err, "create %s", *outFlag)
	}

	w, h := cfg.Render.Width, cfg.Render.Height
	surface := render.NewGG(w, h)
	defer surface.Close()

	every := max(*everyFlag, 1)
	var writeErr error
	present := func(frame uint64) {
		if writeErr != nil || frame%uint64(every) != 0 {
			return
		}
		path := filepath.Join(*outFlag, fmt.Sprintf("%s_%05d.png", *engineFlag, frame))
		if err := surface.SavePNG(path); err != nil {
			writeErr = errors.Wrapf(err, "write %s", path)
		}
	}

	driver := engine.NewDriver(eng, surface, cfg.Render.TickInterval, engine.WithPresent(present))
	eng.Init(w, h)
	defer eng.Dispose()

	pointer, _ := eng.(engine.PointerHandler)
	if *pointerFlag && pointer != nil {
		pointer.PointerEnter()
	}

	core.Logger().Info("headless run", "engine", *engineFlag, "frames", *framesFlag, "size", fmt.Sprintf("%dx%d", w, h))
	for i := 0; i < *framesFlag; i++ {
		if *pointerFlag && pointer != nil {
			x, y := orbit(i, float64(w), float64(h))
			pointer.PointerMove(x, y)
		}
		driver.Step(cfg.Render.TickInterval)
		if writeErr != nil {
			return writeErr
		}
	}

	fmt.Printf("%d frames written to %s\n", driver.Frames()/uint64(every), *outFlag)
	return nil
}

// orbit traces a slow ellipse around the canvas center
func orbit(frame int, w, h float64) (float64, float64) {
	a := float64(frame) * 0.03
	return w/2 + math.Cos(a)*w/3, h/2 + math.Sin(a*1.3)*h/3
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
