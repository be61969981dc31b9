package snake

import (
	"github.com/lixenwraith/weave/audio"
	"github.com/lixenwraith/weave/render"
	"github.com/lixenwraith/weave/vmath"
)

// Preset selects the movement model and look
type Preset uint8

const (
	// PresetGrid moves in whole grid cells on a frame cadence with classic push/pop bodies
	PresetGrid Preset = iota
	// PresetElastic moves every frame with steering and elastic body following
	PresetElastic
)

func (p Preset) String() string {
	switch p {
	case PresetGrid:
		return "grid"
	case PresetElastic:
		return "elastic"
	default:
		return "unknown"
	}
}

// ParsePreset maps a preset name to its value
func ParsePreset(name string) (Preset, bool) {
	switch name {
	case "grid":
		return PresetGrid, true
	case "elastic":
		return PresetElastic, true
	default:
		return PresetGrid, false
	}
}

// State is a game phase
type State uint8

const (
	StateSearching State = iota
	StateFeeding         // grid preset: real food is on the board
	StateFound           // elastic preset: the X is on the board
	StateBloom
	StateReset
)

func (s State) String() string {
	switch s {
	case StateSearching:
		return "searching"
	case StateFeeding:
		return "feeding"
	case StateFound:
		return "found"
	case StateBloom:
		return "bloom"
	case StateReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Direction is a steering input
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Vector returns the unit step for d
func (d Direction) Vector() vmath.Point {
	switch d {
	case DirUp:
		return vmath.Point{Y: -1}
	case DirDown:
		return vmath.Point{Y: 1}
	case DirLeft:
		return vmath.Point{X: -1}
	case DirRight:
		return vmath.Point{X: 1}
	default:
		return vmath.Point{}
	}
}

// Snake is an ordered body, Segments[0] is the head
type Snake struct {
	Segments []vmath.Point
	Dir      vmath.Point
	Speed    float64
	Size     float64

	// Segment count bounds
	Min, Cap int

	Color render.Color
	Dark  render.Color
}

// Head returns the leading segment
func (s *Snake) Head() vmath.Point { return s.Segments[0] }

func (s *Snake) Len() int { return len(s.Segments) }

// push prepends head and drops the tail past Cap
func (s *Snake) push(head vmath.Point) {
	s.Segments = append(s.Segments, vmath.Point{})
	copy(s.Segments[1:], s.Segments)
	s.Segments[0] = head
	if len(s.Segments) > s.Cap {
		s.Segments = s.Segments[:s.Cap]
	}
}

// follow pulls every body segment toward its predecessor when the gap exceeds Size
func (s *Snake) follow(rate float64) {
	for i := 1; i < len(s.Segments); i++ {
		cur, target := s.Segments[i], s.Segments[i-1]
		d := target.Sub(cur)
		dist := d.Len()
		if dist > s.Size {
			s.Segments[i] = cur.Add(d.Scale((dist - s.Size) * rate / dist))
		}
	}
}

// Food is a pulsing pickup; the grid preset draws it as an apple, the elastic preset as an X
type Food struct {
	Pos  vmath.Point
	Glow float64
}

// FakeFood is the decoy that flees the player while searching
type FakeFood struct {
	Pos  vmath.Point
	Glow float64

	Animating bool
	From, To  vmath.Point
	Progress  float64
}

// Sounder plays cues without blocking; audio.Player satisfies it
type Sounder interface {
	Play(c audio.Cue) bool
}

type silent struct{}

func (silent) Play(audio.Cue) bool { return false }
