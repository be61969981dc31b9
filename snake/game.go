package snake

import (
	"time"

	"github.com/lixenwraith/weave/audio"
	"github.com/lixenwraith/weave/core"
	"github.com/lixenwraith/weave/effects"
	"github.com/lixenwraith/weave/engine/fsm"
	"github.com/lixenwraith/weave/parameter"
	"github.com/lixenwraith/weave/vmath"
)

// Game is the two-snake mini game: the player searches for the AI snake, proximity
// unlocks food, eating it plays the bloom cinematic, then everything resets.
// It implements engine.Engine and engine.Resizer.
type Game struct {
	preset Preset
	sound  Sounder
	seed   uint64
	rng    *vmath.FastRand
	noise  *vmath.FastRand // render-only, keeps static noise out of the simulation stream

	machine *fsm.Machine[State, *Game]
	hints   *Hints

	w, h float64

	player, ai *Snake
	input      Direction
	moved      bool

	frame      uint64  // frames since the round started
	codeOffset float64 // scrolling code texture
	clock      time.Duration
	dt         time.Duration

	proximity      time.Duration
	bloom          float64
	reveal         float64
	psychedelic    bool
	psychedelicMix float64

	food     *Food
	fakeFood *FakeFood
	x        *Food

	fakeTimer      int
	disappearances int
	hintThreshold  int

	hearts effects.Hearts
	trails effects.FoodTrail
	decay  effects.DecayMarkers

	rounds int
}

// Option configures a Game
type Option func(*Game)

// WithSounder routes cues to s
func WithSounder(s Sounder) Option {
	return func(g *Game) {
		if s != nil {
			g.sound = s
		}
	}
}

// New creates a game for preset; seed drives AI wandering and food placement
func New(preset Preset, seed uint64, opts ...Option) *Game {
	g := &Game{
		preset: preset,
		seed:   seed,
		sound:  silent{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if preset == PresetElastic {
		g.hints = newHints(elasticHints)
	} else {
		g.hints = newHints(gridHints)
	}
	g.machine = g.buildMachine()
	return g
}

func (g *Game) buildMachine() *fsm.Machine[State, *Game] {
	m := fsm.NewMachine[State, *Game]()
	m.AddState(StateSearching, fsm.State[State, *Game]{
		Name:     StateSearching.String(),
		OnEnter:  (*Game).enterSearching,
		OnUpdate: (*Game).updateSearching,
		OnExit:   (*Game).exitSearching,
	})
	m.AddState(StateFeeding, fsm.State[State, *Game]{
		Name:     StateFeeding.String(),
		OnEnter:  (*Game).enterFeeding,
		OnUpdate: (*Game).updateFeeding,
	})
	m.AddState(StateFound, fsm.State[State, *Game]{
		Name:     StateFound.String(),
		OnEnter:  (*Game).enterFound,
		OnUpdate: (*Game).updateFound,
	})
	m.AddState(StateBloom, fsm.State[State, *Game]{
		Name:     StateBloom.String(),
		Duration: frames(parameter.SnakeBloomFrames),
		Next:     StateReset,
		OnEnter:  (*Game).enterBloom,
		OnUpdate: (*Game).updateBloom,
	})
	m.AddState(StateReset, fsm.State[State, *Game]{
		Name:     StateReset.String(),
		Duration: frames(parameter.SnakeResetFrames),
		Next:     StateSearching,
		OnEnter:  (*Game).enterReset,
	})
	return m
}

// frames converts a frame count to machine time
func frames(n int) time.Duration {
	return time.Duration(n) * parameter.SnakeFrame
}

// frameCount converts machine time back to whole frames
func frameCount(d time.Duration) int {
	return int(d / parameter.SnakeFrame)
}

func (g *Game) Init(w, h int) {
	g.w, g.h = float64(w), float64(h)
	g.rng = vmath.NewFastRand(g.seed)
	g.noise = vmath.NewFastRand(g.seed ^ 0x9e3779b97f4a7c15)
	g.rounds = 0
	g.input = DirNone

	if err := g.machine.Validate(); err != nil {
		core.Logger().Error("snake machine invalid", "error", err)
	}
	// Entering searching lays out a fresh round
	_ = g.machine.Reset(g, StateSearching)
}

// Tick advances one frame; the simulation counts frames, dt only feeds the proximity timer and hint clock
func (g *Game) Tick(dt time.Duration) {
	if g.player == nil {
		return
	}
	g.dt = dt
	g.clock += dt
	g.frame++
	g.codeOffset += 0.5

	if g.machine.Active() != StateReset {
		g.applyInput()
		g.move()
		g.updateEffects()
	}

	g.machine.Update(g, parameter.SnakeFrame)
	g.hints.update(g, g.clock)
}

// resetRound reinitializes every piece of mutable round state
func (g *Game) resetRound() {
	g.frame = 0
	g.codeOffset = 0
	g.clock = 0
	g.proximity = 0
	g.bloom, g.reveal = 0, 0
	g.psychedelic, g.psychedelicMix = false, 0
	g.food, g.fakeFood, g.x = nil, nil, nil
	g.fakeTimer = 0
	g.disappearances = 0
	g.hintThreshold = parameter.SnakeHintThresholdMin + g.rng.Intn(parameter.SnakeHintThresholdSpread)
	g.moved = false

	g.hearts.Clear()
	g.trails.Clear()
	g.decay.Clear()
	g.hints.reset()

	if g.preset == PresetElastic {
		g.spawnElastic()
	} else {
		g.spawnGrid()
	}
}

// --- Input ---

// SetDirection records the last pressed direction; it is applied on the next frame
func (g *Game) SetDirection(d Direction) {
	g.input = d
}

func (g *Game) applyInput() {
	if g.preset == PresetElastic {
		g.steerElastic()
		return
	}
	if g.input == DirNone {
		return
	}
	want := g.input.Vector()
	cur := g.player.Dir
	if want == cur || (want.X == -cur.X && want.Y == -cur.Y) {
		return
	}
	g.player.Dir = want
	g.moved = true
	g.sound.Play(audio.CueMovement)
}

func (g *Game) move() {
	if g.preset == PresetElastic {
		g.moveElastic()
	} else {
		g.moveGrid()
	}
}

// updateEffects advances particles that live across states
func (g *Game) updateEffects() {
	if g.psychedelic && g.psychedelicMix < 1 {
		g.psychedelicMix = min(1, g.psychedelicMix+parameter.SnakePsychedelicRamp)
	}
	g.hearts.Update()
	g.trails.Update()
	if g.psychedelic && g.rng.Chance(parameter.DecayMarkerChance) {
		g.decay.Spawn(g.w, g.h, parameter.SnakePixelSize, g.rng)
	}
	g.decay.Update()

	if g.food != nil {
		g.food.Glow += parameter.SnakeFoodPulseSpeed
	}
	if g.x != nil {
		g.x.Glow += parameter.SnakeXPulseSpeed
	}
	if g.fakeFood != nil {
		g.fakeFood.Glow += parameter.SnakeFakeFoodPulseSpeed
	}
}

// headDistance is the gap between the two heads
func (g *Game) headDistance() float64 {
	return g.player.Head().Dist(g.ai.Head())
}

// updateProximity grows the timer while the heads are close and bleeds it otherwise
func (g *Game) updateProximity() bool {
	if g.headDistance() < parameter.SnakeProximityRadius {
		if g.proximity%parameter.SnakeProximityCueEvery == 0 {
			g.sound.Play(audio.CueProximity)
		}
		g.proximity += g.dt
		return g.proximity > parameter.SnakeProximityThreshold
	}
	g.proximity = max(0, g.proximity-g.dt/2)
	return false
}

// --- State actions ---

func (g *Game) enterSearching() {
	g.rounds++
	g.resetRound()
	core.Logger().Debug("snake round start", "preset", g.preset, "round", g.rounds)
}

func (g *Game) updateSearching(time.Duration) {
	if g.preset == PresetGrid {
		g.updateFakeFood()
	}
	if !g.updateProximity() {
		return
	}
	if g.preset == PresetElastic {
		g.machine.Transition(g, StateFound)
	} else {
		g.machine.Transition(g, StateFeeding)
	}
}

func (g *Game) exitSearching() {
	g.fakeFood = nil
}

func (g *Game) enterFeeding() {
	g.psychedelic = true
	g.hearts.Burst(vmath.Midpoint(g.player.Head(), g.ai.Head()), parameter.SnakePixelSize, g.rng)
	g.spawnFood()
	g.sound.Play(audio.CueFound)
	g.hints.hide()
	core.Logger().Debug("snake feeding", "food", g.food.Pos, "disappearances", g.disappearances)
}

func (g *Game) updateFeeding(time.Duration) {
	if g.food == nil {
		return
	}
	if g.player.Head().Dist(g.food.Pos) < parameter.SnakeGridSize || g.ai.Head().Dist(g.food.Pos) < parameter.SnakeGridSize {
		g.machine.Transition(g, StateBloom)
	}
}

func (g *Game) enterFound() {
	g.x = &Food{Pos: vmath.Midpoint(g.player.Head(), g.ai.Head())}
	g.sound.Play(audio.CueFound)
	g.hints.hide()
	core.Logger().Debug("snake found", "x", g.x.Pos)
}

// updateFound collects the X once the heads meet; the X only marks where they first got close
func (g *Game) updateFound(time.Duration) {
	if g.x == nil {
		return
	}
	if g.headDistance() < parameter.SnakeXRadius {
		g.machine.Transition(g, StateBloom)
	}
}

func (g *Game) enterBloom() {
	g.food = nil
	g.bloom, g.reveal = 0, 0
	g.sound.Play(audio.CueBloom)
}

// updateBloom ramps intensity and reveal together, the machine holds the rest of the window
func (g *Game) updateBloom(elapsed time.Duration) {
	v := min(1, float64(frameCount(elapsed))/parameter.SnakeBloomRampFrames)
	g.bloom, g.reveal = v, v
}

func (g *Game) enterReset() {
	g.bloom, g.reveal = 1, 1
	core.Logger().Debug("snake reset", "round", g.rounds)
}

func (g *Game) Dispose() {
	g.hearts.Clear()
	g.trails.Clear()
	g.decay.Clear()
	g.food, g.fakeFood, g.x = nil, nil, nil
}

// Resize keeps the round, pulling segments and pickups back inside the new canvas
func (g *Game) Resize(w, h int) {
	g.w, g.h = float64(w), float64(h)
	if g.player == nil {
		return
	}
	for _, s := range []*Snake{g.player, g.ai} {
		for i, p := range s.Segments {
			s.Segments[i] = g.wrap(p)
		}
	}
	if g.food != nil {
		g.food.Pos = g.wrap(g.food.Pos)
	}
	if g.x != nil {
		g.x.Pos = g.wrap(g.x.Pos)
	}
	if f := g.fakeFood; f != nil {
		f.Pos, f.From, f.To = g.wrap(f.Pos), g.wrap(f.From), g.wrap(f.To)
	}
}

// wrap maps p onto the canvas, grid-aligned for the grid preset
func (g *Game) wrap(p vmath.Point) vmath.Point {
	if g.preset == PresetElastic {
		return vmath.WrapPoint(p, g.w, g.h)
	}
	return vmath.Point{
		X: vmath.WrapGrid(p.X, parameter.SnakeGridSize, g.w),
		Y: vmath.WrapGrid(p.Y, parameter.SnakeGridSize, g.h),
	}
}

// --- Inspection ---

func (g *Game) State() State                   { return g.machine.Active() }
func (g *Game) Preset() Preset                 { return g.preset }
func (g *Game) Player() *Snake                 { return g.player }
func (g *Game) AI() *Snake                     { return g.ai }
func (g *Game) Proximity() time.Duration       { return g.proximity }
func (g *Game) BloomIntensity() float64        { return g.bloom }
func (g *Game) Reveal() float64                { return g.reveal }
func (g *Game) Psychedelic() bool              { return g.psychedelic }
func (g *Game) Disappearances() int            { return g.disappearances }
func (g *Game) Food() *Food                    { return g.food }
func (g *Game) FakeFood() *FakeFood            { return g.fakeFood }
func (g *Game) X() *Food                       { return g.x }
func (g *Game) Rounds() int                    { return g.rounds }
func (g *Game) Frame() uint64                  { return g.frame }
func (g *Game) Hints() *Hints                  { return g.hints }
func (g *Game) Particles() *effects.Hearts     { return &g.hearts }
func (g *Game) TimeInState() time.Duration     { return g.machine.TimeInState() }
func (g *Game) Trails() *effects.FoodTrail     { return &g.trails }
func (g *Game) Markers() *effects.DecayMarkers { return &g.decay }
