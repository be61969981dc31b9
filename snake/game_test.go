package snake

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/weave/audio"
	"github.com/lixenwraith/weave/parameter"
	"github.com/lixenwraith/weave/vmath"
)

const (
	testW = 480
	testH = 360
	tick  = parameter.SnakeFrame
)

// recordingSounder collects every cue played
type recordingSounder struct {
	mu   sync.Mutex
	cues []audio.Cue
}

func (r *recordingSounder) Play(c audio.Cue) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = append(r.cues, c)
	return true
}

func (r *recordingSounder) count(c audio.Cue) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

func newTestGame(t *testing.T, preset Preset, opts ...Option) *Game {
	t.Helper()
	g := New(preset, 1234, opts...)
	g.Init(testW, testH)
	return g
}

// pinHeads collapses both bodies onto p so the heads stay within a cell or two after the next move
func pinHeads(g *Game, p vmath.Point) {
	for i := range g.player.Segments {
		g.player.Segments[i] = p
	}
	for i := range g.ai.Segments {
		g.ai.Segments[i] = p
	}
}

// separateHeads parks the snakes in opposite corners
func separateHeads(g *Game) {
	for i := range g.player.Segments {
		g.player.Segments[i] = vmath.Point{X: 24, Y: 24}
	}
	for i := range g.ai.Segments {
		g.ai.Segments[i] = vmath.Point{X: testW - 48, Y: testH - 48}
	}
}

func TestInitialLayout(t *testing.T) {
	tests := []struct {
		name       string
		preset     Preset
		playerLen  int
		aiLen      int
		playerHead vmath.Point
		aiHead     vmath.Point
	}{
		{"grid", PresetGrid, 10, 8, vmath.Point{X: 240, Y: 180}, vmath.Point{X: 96, Y: 228}},
		{"elastic", PresetElastic, 10, 8, vmath.Point{X: 240, Y: 180}, vmath.Point{X: 100, Y: 230}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, tt.preset)
			if g.State() != StateSearching {
				t.Fatalf("Expected searching, got %v", g.State())
			}
			if g.Player().Len() != tt.playerLen || g.AI().Len() != tt.aiLen {
				t.Errorf("Expected lengths %d/%d, got %d/%d", tt.playerLen, tt.aiLen, g.Player().Len(), g.AI().Len())
			}
			if g.Player().Head() != tt.playerHead {
				t.Errorf("Expected player head %v, got %v", tt.playerHead, g.Player().Head())
			}
			if g.AI().Head() != tt.aiHead {
				t.Errorf("Expected AI head %v, got %v", tt.aiHead, g.AI().Head())
			}
			if g.Rounds() != 1 {
				t.Errorf("Expected round 1, got %d", g.Rounds())
			}
		})
	}
}

func TestSegmentBounds(t *testing.T) {
	for _, preset := range []Preset{PresetGrid, PresetElastic} {
		t.Run(preset.String(), func(t *testing.T) {
			g := newTestGame(t, preset)
			rng := vmath.NewFastRand(99)
			dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

			for i := 0; i < 3000; i++ {
				if i%37 == 0 {
					g.SetDirection(dirs[rng.Intn(len(dirs))])
				}
				g.Tick(tick)
				for _, s := range []*Snake{g.Player(), g.AI()} {
					if s.Len() < s.Min || s.Len() > s.Cap {
						t.Fatalf("Tick %d: length %d outside [%d, %d]", i, s.Len(), s.Min, s.Cap)
					}
					h := s.Head()
					if h.X < 0 || h.X >= testW || h.Y < 0 || h.Y >= testH {
						t.Fatalf("Tick %d: head %v outside canvas", i, h)
					}
				}
			}
		})
	}
}

func TestGridMovementCadence(t *testing.T) {
	g := newTestGame(t, PresetGrid)
	start := g.Player().Head()

	for i := 0; i < parameter.SnakeGridPlayerCadence-1; i++ {
		g.Tick(tick)
	}
	if g.Player().Head() != start {
		t.Fatalf("Expected no movement before frame %d", parameter.SnakeGridPlayerCadence)
	}

	g.Tick(tick)
	want := vmath.Point{X: start.X + parameter.SnakeGridSize, Y: start.Y}
	if g.Player().Head() != want {
		t.Errorf("Expected one cell right %v, got %v", want, g.Player().Head())
	}
	if g.Player().Len() != parameter.SnakeGridPlayerLength+1 {
		t.Errorf("Expected body to grow toward cap, got %d", g.Player().Len())
	}
}

func TestGridWrapStaysAligned(t *testing.T) {
	g := newTestGame(t, PresetGrid)
	edge := vmath.Point{X: float64(testW/int(parameter.SnakeGridSize)-1) * parameter.SnakeGridSize, Y: 120}
	g.player.Segments[0] = edge

	for i := 0; i < parameter.SnakeGridPlayerCadence; i++ {
		g.Tick(tick)
	}
	if got := g.Player().Head(); got.X != 0 || got.Y != 120 {
		t.Errorf("Expected wrap to column 0, got %v", got)
	}
}

func TestReversalBlocked(t *testing.T) {
	snd := &recordingSounder{}
	g := newTestGame(t, PresetGrid, WithSounder(snd))

	g.SetDirection(DirLeft)
	g.Tick(tick)
	if g.Player().Dir != (vmath.Point{X: 1}) {
		t.Errorf("Expected reversal ignored, got %v", g.Player().Dir)
	}
	if g.moved {
		t.Error("Expected a blocked reversal not to count as movement")
	}

	g.SetDirection(DirUp)
	g.Tick(tick)
	if g.Player().Dir != (vmath.Point{Y: -1}) {
		t.Errorf("Expected up, got %v", g.Player().Dir)
	}
	g.Tick(tick)
	if n := snd.count(audio.CueMovement); n != 1 {
		t.Errorf("Expected one movement cue per turn, got %d", n)
	}
}

func TestProximityUnlocksFeeding(t *testing.T) {
	snd := &recordingSounder{}
	g := newTestGame(t, PresetGrid, WithSounder(snd))
	p := vmath.Point{X: 240, Y: 180}

	// 2000ms at 16ms per frame needs 126 frames to go strictly over
	for i := 0; i < 125; i++ {
		pinHeads(g, p)
		g.Tick(tick)
	}
	if g.State() != StateSearching {
		t.Fatalf("Expected searching at %v, got %v", g.Proximity(), g.State())
	}

	pinHeads(g, p)
	g.Tick(tick)
	if g.State() != StateFeeding {
		t.Fatalf("Expected feeding after %v of proximity, got %v", g.Proximity(), g.State())
	}
	if g.Food() == nil {
		t.Error("Expected food on entering feeding")
	}
	if !g.Psychedelic() {
		t.Error("Expected psychedelic mode on entering feeding")
	}
	if g.Particles().Len() != parameter.HeartCount {
		t.Errorf("Expected heart burst of %d, got %d", parameter.HeartCount, g.Particles().Len())
	}
	if snd.count(audio.CueFound) != 1 {
		t.Errorf("Expected one found cue, got %d", snd.count(audio.CueFound))
	}
	if snd.count(audio.CueProximity) == 0 {
		t.Error("Expected proximity cues while close")
	}
}

func TestProximityDecaysWithoutTransition(t *testing.T) {
	g := newTestGame(t, PresetGrid)
	p := vmath.Point{X: 240, Y: 180}

	for i := 0; i < 100; i++ {
		pinHeads(g, p)
		g.Tick(tick)
	}
	built := g.Proximity()
	if built != 100*tick {
		t.Fatalf("Expected %v accumulated, got %v", 100*tick, built)
	}

	for i := 0; i < 300; i++ {
		separateHeads(g)
		g.Tick(tick)
		if g.Proximity() < 0 {
			t.Fatalf("Proximity went negative: %v", g.Proximity())
		}
		if g.State() != StateSearching {
			t.Fatalf("Expected to stay searching, got %v", g.State())
		}
	}
	if g.Proximity() != 0 {
		t.Errorf("Expected timer drained to zero, got %v", g.Proximity())
	}
}

func TestFeedingEndsInBloom(t *testing.T) {
	snd := &recordingSounder{}
	g := newTestGame(t, PresetGrid, WithSounder(snd))
	g.machine.Transition(g, StateFeeding)

	food := g.Food().Pos
	pinHeads(g, food)
	// Next move shifts the heads by at most one cell, still within reach of the food
	g.Tick(tick)
	if g.State() != StateBloom {
		t.Fatalf("Expected bloom after eating, got %v", g.State())
	}
	if g.Food() != nil {
		t.Error("Expected food consumed")
	}
	if snd.count(audio.CueBloom) != 1 {
		t.Errorf("Expected one bloom cue, got %d", snd.count(audio.CueBloom))
	}
}

func TestBloomTimeline(t *testing.T) {
	g := newTestGame(t, PresetGrid)
	g.machine.Transition(g, StateBloom)

	for i := 0; i < parameter.SnakeBloomRampFrames/2; i++ {
		g.Tick(tick)
	}
	if got := g.BloomIntensity(); got != 0.5 {
		t.Errorf("Expected half intensity mid-ramp, got %f", got)
	}

	for i := parameter.SnakeBloomRampFrames / 2; i < parameter.SnakeBloomRampFrames; i++ {
		g.Tick(tick)
	}
	if g.BloomIntensity() != 1 || g.Reveal() != 1 {
		t.Errorf("Expected intensity and reveal at 1 after %d frames, got %f/%f", parameter.SnakeBloomRampFrames, g.BloomIntensity(), g.Reveal())
	}

	for i := parameter.SnakeBloomRampFrames; i < parameter.SnakeBloomFrames-1; i++ {
		g.Tick(tick)
	}
	if g.State() != StateBloom {
		t.Fatalf("Expected bloom one frame before %d, got %v", parameter.SnakeBloomFrames, g.State())
	}
	g.Tick(tick)
	if g.State() != StateReset {
		t.Fatalf("Expected reset at frame %d, got %v", parameter.SnakeBloomFrames, g.State())
	}
}

func TestResetStartsFreshRound(t *testing.T) {
	g := newTestGame(t, PresetGrid)
	g.disappearances = 4
	g.machine.Transition(g, StateFeeding)
	g.machine.Transition(g, StateBloom)
	g.machine.Transition(g, StateReset)

	frozen := g.Player().Head()
	for i := 0; i < parameter.SnakeResetFrames-1; i++ {
		g.Tick(tick)
	}
	if g.State() != StateReset {
		t.Fatalf("Expected reset before %d frames, got %v", parameter.SnakeResetFrames, g.State())
	}
	if g.Player().Head() != frozen {
		t.Error("Expected snakes frozen during reset")
	}

	g.Tick(tick)
	if g.State() != StateSearching {
		t.Fatalf("Expected searching after reset, got %v", g.State())
	}
	if g.Rounds() != 2 {
		t.Errorf("Expected round 2, got %d", g.Rounds())
	}
	if g.Proximity() != 0 || g.BloomIntensity() != 0 || g.Disappearances() != 0 {
		t.Errorf("Expected cleared counters, got proximity %v bloom %f disappearances %d", g.Proximity(), g.BloomIntensity(), g.Disappearances())
	}
	if g.Psychedelic() || g.Particles().Len() != 0 || g.Food() != nil {
		t.Error("Expected effects and food cleared")
	}
	if g.Player().Len() != parameter.SnakeGridPlayerLength {
		t.Errorf("Expected fresh player body, got %d segments", g.Player().Len())
	}
}

func TestFakeFoodRelocatesOnce(t *testing.T) {
	snd := &recordingSounder{}
	g := newTestGame(t, PresetGrid, WithSounder(snd))

	head := g.Player().Head()
	far := vmath.Point{X: head.X - 8*parameter.SnakeGridSize, Y: head.Y - 6*parameter.SnakeGridSize}
	g.fakeFood = &FakeFood{Pos: far}

	// Far away: nothing happens
	g.updateFakeFood()
	if g.Disappearances() != 0 || g.FakeFood().Animating {
		t.Fatal("Expected decoy to stay put while the player is far")
	}

	// Step the player within three cells and hold it there
	near := vmath.Point{X: far.X + 2*parameter.SnakeGridSize, Y: far.Y}
	g.player.Segments[0] = near
	for i := 0; i < 30; i++ {
		g.updateFakeFood()
	}

	if g.Disappearances() != 1 {
		t.Fatalf("Expected exactly one relocation, got %d", g.Disappearances())
	}
	f := g.FakeFood()
	if f.Animating {
		t.Error("Expected flight finished")
	}
	if d := near.Dist(f.Pos); d < parameter.SnakeGridSize*parameter.SnakeFakeFoodRelocateCells {
		t.Errorf("Expected decoy at least %v cells away, got %f px", parameter.SnakeFakeFoodRelocateCells, d)
	}
	if g.Trails().Len() != parameter.FoodTrailSteps+1 {
		t.Errorf("Expected one relocation trail, got %d marks", g.Trails().Len())
	}
	if snd.count(audio.CueProximity) != 1 {
		t.Errorf("Expected one cue for the relocation, got %d", snd.count(audio.CueProximity))
	}
}

func TestFakeFoodSpawnsAfterDelay(t *testing.T) {
	g := newTestGame(t, PresetGrid)
	for i := 0; i < parameter.SnakeFakeFoodDelay; i++ {
		g.updateFakeFood()
	}
	if g.FakeFood() != nil {
		t.Fatal("Expected no decoy before the delay")
	}
	g.updateFakeFood()
	f := g.FakeFood()
	if f == nil {
		t.Fatal("Expected decoy after the delay")
	}
	if d := g.Player().Head().Dist(f.Pos); d <= parameter.SnakeGridSize*parameter.SnakeFakeFoodSpawnCells {
		t.Errorf("Expected decoy more than %d cells from the player, got %f px", parameter.SnakeFakeFoodSpawnCells, d)
	}

	g.machine.Transition(g, StateFeeding)
	if g.FakeFood() != nil {
		t.Error("Expected decoy cleared outside searching")
	}
}

func TestElasticFoundAndCollect(t *testing.T) {
	g := newTestGame(t, PresetElastic)
	p := vmath.Point{X: 200, Y: 150}

	for i := 0; i < 130 && g.State() == StateSearching; i++ {
		pinHeads(g, p)
		g.Tick(tick)
	}
	if g.State() != StateFound {
		t.Fatalf("Expected found, got %v", g.State())
	}
	x := g.X()
	if x == nil {
		t.Fatal("Expected an X on the board")
	}
	if x.Pos.Dist(p) > 2*parameter.SnakeElasticPlayerSpeed {
		t.Errorf("Expected X near the meeting point, got %v", x.Pos)
	}

	pinHeads(g, x.Pos)
	g.Tick(tick)
	if g.State() != StateBloom {
		t.Errorf("Expected bloom after collecting, got %v", g.State())
	}
}

func TestElasticFollowRule(t *testing.T) {
	s := &Snake{
		Segments: []vmath.Point{{X: 0}, {X: 20}},
		Size:     8,
		Cap:      5,
	}
	s.follow(parameter.SnakeElasticFollow)
	// Gap 20 exceeds size 8 by 12, half of it is closed
	if got := s.Segments[1].X; got != 14 {
		t.Errorf("Expected segment pulled to 14, got %f", got)
	}

	s.Segments[1] = vmath.Point{X: 5}
	s.follow(parameter.SnakeElasticFollow)
	if got := s.Segments[1].X; got != 5 {
		t.Errorf("Expected no pull inside size, got %f", got)
	}
}

func TestElasticAISteering(t *testing.T) {
	g := newTestGame(t, PresetElastic)

	// Far: straight toward the player
	g.player.Segments[0] = vmath.Point{X: 356, Y: 100}
	g.ai.Segments[0] = vmath.Point{X: 100, Y: 100}
	if h := g.aiHeading(); h != (vmath.Point{X: 1}) {
		t.Errorf("Expected direct approach, got %v", h)
	}

	// Close: mostly perpendicular
	g.player.Segments[0] = vmath.Point{X: 164, Y: 100}
	h := g.aiHeading()
	if h.X != parameter.SnakeElasticApproach || h.Y != parameter.SnakeElasticCircle {
		t.Errorf("Expected circling blend, got %v", h)
	}
}

func TestSnakePushCapsLength(t *testing.T) {
	s := &Snake{Segments: []vmath.Point{{X: 2}, {X: 1}}, Cap: 3}
	s.push(vmath.Point{X: 3})
	s.push(vmath.Point{X: 4})

	if s.Len() != 3 {
		t.Fatalf("Expected cap 3, got %d", s.Len())
	}
	want := []float64{4, 3, 2}
	for i, w := range want {
		if s.Segments[i].X != w {
			t.Errorf("Segment %d: expected %v, got %v", i, w, s.Segments[i].X)
		}
	}
}

func TestStatusLines(t *testing.T) {
	g := newTestGame(t, PresetElastic)
	status, controls := g.Status()
	if status != "Status: Searching..." || controls != "Controls: Arrow Keys or WASD" {
		t.Errorf("Unexpected idle status %q / %q", status, controls)
	}

	g.proximity = time.Second
	_, controls = g.Status()
	if controls != "Controls: Arrow Keys or WASD | Proximity: 50%" {
		t.Errorf("Unexpected proximity line %q", controls)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want Preset
		ok   bool
	}{
		{"grid", PresetGrid, true},
		{"elastic", PresetElastic, true},
		{"hex", PresetGrid, false},
	}
	for _, tt := range tests {
		got, ok := ParsePreset(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePreset(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestElasticCollectNeedsHeadsTogether(t *testing.T) {
	g := newTestGame(t, PresetElastic)
	g.machine.Transition(g, StateFound)
	x := g.X().Pos

	// One head parked on the X while the other is far away
	for i := range g.player.Segments {
		g.player.Segments[i] = x
	}
	for i := range g.ai.Segments {
		g.ai.Segments[i] = vmath.Point{X: x.X + 200, Y: x.Y}
	}
	g.Tick(tick)
	if g.State() != StateFound {
		t.Fatalf("Expected found while the heads are apart, got %v", g.State())
	}

	// Heads meet away from the X
	pinHeads(g, vmath.Point{X: x.X + 100, Y: x.Y})
	g.Tick(tick)
	if g.State() != StateBloom {
		t.Errorf("Expected bloom once the heads meet, got %v", g.State())
	}
}

func TestResizeKeepsPickupsOnBoard(t *testing.T) {
	onBoard := func(g *Game, p vmath.Point) bool {
		return p.X >= 0 && p.X < g.w && p.Y >= 0 && p.Y < g.h
	}

	t.Run("grid food", func(t *testing.T) {
		g := newTestGame(t, PresetGrid)
		g.machine.Transition(g, StateFeeding)
		g.food.Pos = vmath.Point{X: 444, Y: 336}

		g.Resize(120, 96)
		want := vmath.Point{X: 84, Y: 48}
		if g.Food().Pos != want {
			t.Fatalf("Expected food wrapped to %v, got %v", want, g.Food().Pos)
		}

		pinHeads(g, g.Food().Pos)
		g.Tick(tick)
		if g.State() != StateBloom {
			t.Errorf("Expected the wrapped food to be reachable, got %v", g.State())
		}
	})

	t.Run("grid decoy", func(t *testing.T) {
		g := newTestGame(t, PresetGrid)
		g.fakeFood = &FakeFood{
			Pos:       vmath.Point{X: 444, Y: 336},
			From:      vmath.Point{X: 444, Y: 336},
			To:        vmath.Point{X: 300, Y: 300},
			Animating: true,
		}

		g.Resize(120, 96)
		f := g.FakeFood()
		for _, p := range []vmath.Point{f.Pos, f.From, f.To} {
			if !onBoard(g, p) {
				t.Errorf("Expected decoy point inside 120x96, got %v", p)
			}
		}
	})

	t.Run("elastic x", func(t *testing.T) {
		g := newTestGame(t, PresetElastic)
		g.machine.Transition(g, StateFound)
		g.x.Pos = vmath.Point{X: 400, Y: 300}

		g.Resize(160, 120)
		want := vmath.Point{X: 80, Y: 60}
		if g.X().Pos != want {
			t.Errorf("Expected X wrapped to %v, got %v", want, g.X().Pos)
		}
	})
}
