package gallery

// Phase is a gallery transition phase
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseShowing
	PhaseDecaying
	PhaseRelaxing
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseShowing:
		return "showing"
	case PhaseDecaying:
		return "decaying"
	case PhaseRelaxing:
		return "relaxing"
	default:
		return "unknown"
	}
}
