package snake

import (
	"time"

	"github.com/lixenwraith/weave/parameter"
)

// hint is one instruction line, offered once its delay has passed and its condition holds
type hint struct {
	text  string
	delay time.Duration
	when  func(g *Game) bool
}

var gridHints = []hint{
	{"Use arrow keys or WASD to move...", 8 * time.Second, func(g *Game) bool { return !g.moved }},
	{"Food may appear, but it vanishes when approached alone...", 20 * time.Second, func(g *Game) bool { return g.disappearances >= g.hintThreshold }},
	{"Let the light green snake approach you...", 35 * time.Second, func(g *Game) bool { return g.State() == StateSearching && g.proximity < 500*time.Millisecond }},
	{"Stay close to build connection...", 50 * time.Second, func(g *Game) bool { return g.State() == StateSearching && g.proximity < 1500*time.Millisecond }},
	{"When snakes unite, real food will appear...", 65 * time.Second, func(g *Game) bool { return g.State() == StateSearching }},
	{"Either snake can eat the food to complete the cycle...", 80 * time.Second, func(g *Game) bool { return g.State() == StateFeeding }},
}

var elasticHints = []hint{
	{"Use arrow keys or WASD to move...", 8 * time.Second, func(g *Game) bool { return !g.moved }},
	{"Let the orange snake approach you...", 35 * time.Second, func(g *Game) bool { return g.State() == StateSearching && g.proximity < 500*time.Millisecond }},
	{"Stay close to build connection...", 50 * time.Second, func(g *Game) bool { return g.State() == StateSearching && g.proximity < 1500*time.Millisecond }},
}

// Hints runs the typewriter instruction line on the game clock
type Hints struct {
	list []hint
	next int // first hint not yet shown

	target  string
	shown   int
	visible bool
	started time.Duration
	hideAt  time.Duration // zero until the line finishes typing
}

func newHints(list []hint) *Hints {
	return &Hints{list: list}
}

func (h *Hints) reset() {
	h.next = 0
	h.hide()
}

// update offers the next eligible hint, then advances the typewriter
func (h *Hints) update(g *Game, now time.Duration) {
	for i := h.next; i < len(h.list); i++ {
		if now > h.list[i].delay && h.list[i].when(g) {
			h.show(h.list[i].text, now)
			h.next = i + 1
			break
		}
	}

	if !h.visible {
		return
	}
	if h.shown < len(h.target) {
		n := int((now - h.started) / parameter.SnakeTypewriterStep)
		h.shown = min(n, len(h.target))
		if h.shown == len(h.target) {
			h.hideAt = now + parameter.SnakeHintHold
		}
		return
	}
	if now >= h.hideAt {
		h.hide()
	}
}

func (h *Hints) show(text string, now time.Duration) {
	h.target = text
	h.shown = 0
	h.visible = true
	h.started = now
	h.hideAt = 0
}

func (h *Hints) hide() {
	h.visible = false
	h.target = ""
	h.shown = 0
}

// Text returns the typed portion and whether the cursor is still running
func (h *Hints) Text() (string, bool) {
	if !h.visible {
		return "", false
	}
	return h.target[:h.shown], h.shown < len(h.target)
}

func (h *Hints) Visible() bool { return h.visible }
