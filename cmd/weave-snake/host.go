package main

import (
	"image"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	xdraw "golang.org/x/image/draw"

	"github.com/lixenwraith/weave/audio"
	"github.com/lixenwraith/weave/core"
	"github.com/lixenwraith/weave/engine"
	"github.com/lixenwraith/weave/render"
	"github.com/lixenwraith/weave/snake"
)

const (
	statusRows = 2
	// pixelScale is canvas pixels per half-block pixel along each axis
	pixelScale = 4
	halfBlock  = '▀'
	typingMark = '▌'
)

var (
	statusStyle   = tcell.StyleDefault.Foreground(cellColor(render.Hex("#00ff00").RGB8())).Background(tcell.ColorBlack)
	controlsStyle = tcell.StyleDefault.Foreground(cellColor(render.Hex("#00a000").RGB8())).Background(tcell.ColorBlack)
)

// host owns the screen and steps the game on the main goroutine, so input and ticks never overlap
type host struct {
	screen tcell.Screen
	game   *snake.Game
	player *audio.Player
	tick   time.Duration

	surface *render.GG
	driver  *engine.Driver
	cells   *image.RGBA // canvas scaled down to one pixel per half cell

	cols, rows int // game area in cells
}

func newHost(screen tcell.Screen, game *snake.Game, tick time.Duration) *host {
	h := &host{screen: screen, game: game, tick: tick}
	h.layout(screen.Size())
	game.Init(h.canvasSize())
	return h
}

// layout sizes the canvas and driver for a cols×rows terminal
func (h *host) layout(cols, rows int) {
	h.cols = max(cols, 1)
	h.rows = max(rows-statusRows, 1)

	if h.surface != nil {
		if err := h.surface.Close(); err != nil {
			core.Logger().Warn("surface close", "error", err)
		}
	}
	w, ht := h.canvasSize()
	h.surface = render.NewGG(w, ht)
	h.cells = image.NewRGBA(image.Rect(0, 0, h.cols, h.rows*2))
	h.driver = engine.NewDriver(h.game, h.surface, h.tick, engine.WithPresent(h.present))
}

// close releases the current surface
func (h *host) close() {
	if err := h.surface.Close(); err != nil {
		core.Logger().Warn("surface close", "error", err)
	}
}

func (h *host) canvasSize() (int, int) {
	return h.cols * pixelScale, h.rows * 2 * pixelScale
}

func (h *host) resize(cols, rows int) {
	h.layout(cols, rows)
	h.game.Resize(h.canvasSize())
	core.Logger().Debug("terminal resized", "cols", cols, "rows", rows)
}

// run pumps events and frames until the player quits or the screen closes
func (h *host) run() error {
	events := make(chan tcell.Event, 64)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(h.tick)
	defer ticker.Stop()

	clock := engine.NewTimeProvider()
	last := clock.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !h.handle(ev) {
				return nil
			}
		case <-ticker.C:
			now := clock.Now()
			h.driver.Step(now.Sub(last))
			last = now
		}
	}
}

// handle applies one event, returns false to quit
func (h *host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventResize:
		h.resize(ev.Size())
		h.screen.Sync()
	}
	return true
}

func (h *host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		h.game.SetDirection(snake.DirUp)
	case tcell.KeyDown:
		h.game.SetDirection(snake.DirDown)
	case tcell.KeyLeft:
		h.game.SetDirection(snake.DirLeft)
	case tcell.KeyRight:
		h.game.SetDirection(snake.DirRight)
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			h.game.SetDirection(snake.DirUp)
		case 's':
			h.game.SetDirection(snake.DirDown)
		case 'a':
			h.game.SetDirection(snake.DirLeft)
		case 'd':
			h.game.SetDirection(snake.DirRight)
		case 'm':
			if h.player != nil {
				h.player.ToggleMute()
			}
		case 'q':
			return false
		}
	}
	return true
}

// present scales the frame into half-block cells, upper pixel as foreground and lower as background
func (h *host) present(uint64) {
	src := h.surface.Image()
	xdraw.ApproxBiLinear.Scale(h.cells, h.cells.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	for y := 0; y < h.rows; y++ {
		for x := 0; x < h.cols; x++ {
			st := tcell.StyleDefault.
				Foreground(cellColor(render.FromColor(h.cells.RGBAAt(x, y*2)))).
				Background(cellColor(render.FromColor(h.cells.RGBAAt(x, y*2+1))))
			h.screen.SetContent(x, y, halfBlock, nil, st)
		}
	}
	h.drawStatus()
	h.screen.Show()
}

func cellColor(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (h *host) drawStatus() {
	status, controls := h.game.Status()
	if hint, typing := h.game.Hints().Text(); hint != "" {
		status += "  " + hint
		if typing {
			status += string(typingMark)
		}
	}
	if h.player != nil {
		if h.player.IsEnabled() {
			controls += " | M: mute"
		} else {
			controls += " | M: sound"
		}
	}
	h.drawLine(h.rows, status, statusStyle)
	h.drawLine(h.rows+1, controls, controlsStyle)
}

// drawLine writes s at row y, truncated to the width and padded with blanks
func (h *host) drawLine(y int, s string, style tcell.Style) {
	s = runewidth.Truncate(s, h.cols, "…")
	x := 0
	for _, r := range s {
		h.screen.SetContent(x, y, r, nil, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
	for ; x < h.cols; x++ {
		h.screen.SetContent(x, y, ' ', nil, style)
	}
}
