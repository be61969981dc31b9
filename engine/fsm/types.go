package fsm

import "time"

// State describes one node of a flat timed machine
type State[S comparable, C any] struct {
	Name string

	// Duration is the default time spent in the state before auto-advancing to Next, 0 waits for an explicit Transition
	Duration time.Duration
	Next     S

	// Lifecycle Actions
	OnEnter  func(ctx C)
	OnUpdate func(ctx C, elapsed time.Duration)
	OnExit   func(ctx C)
}
