package fsm

import (
	"fmt"
	"time"
)

// Machine is a flat finite state machine whose states expire after a duration table entry.
// Time is supplied by the caller through Update, so the machine never reads a wall clock.
// C is the context passed to actions (e.g., the owning controller)
type Machine[S comparable, C any] struct {
	states map[S]*State[S, C]

	// Runtime State
	active      S
	timeInState time.Duration
	hold        time.Duration // expiry for the current visit, 0 = none
	started     bool

	// Transitions counts every state entry, including the initial one
	Transitions uint64
}

// NewMachine creates a new FSM instance
func NewMachine[S comparable, C any]() *Machine[S, C] {
	return &Machine[S, C]{
		states: make(map[S]*State[S, C]),
	}
}

// Init enters the initial state, running its OnEnter
func (m *Machine[S, C]) Init(ctx C, initial S) error {
	if _, ok := m.states[initial]; !ok {
		return fmt.Errorf("initial state %v not registered", initial)
	}
	m.started = true
	m.enter(ctx, initial, m.states[initial].Duration)
	return nil
}

// Active returns the current state
func (m *Machine[S, C]) Active() S { return m.active }

// TimeInState returns time accumulated since the current state was entered
func (m *Machine[S, C]) TimeInState() time.Duration { return m.timeInState }

// Hold returns the expiry of the current visit
func (m *Machine[S, C]) Hold() time.Duration { return m.hold }

// SetHold overrides the expiry of the current visit
func (m *Machine[S, C]) SetHold(d time.Duration) { m.hold = d }

// Progress returns TimeInState/Hold in [0, 1], states without expiry report 0
func (m *Machine[S, C]) Progress() float64 {
	if m.hold <= 0 {
		return 0
	}
	p := float64(m.timeInState) / float64(m.hold)
	if p > 1 {
		return 1
	}
	return p
}

// Update advances the active state by dt, running OnUpdate then the timed transition if due.
// Overshoot past the expiry carries into the next state so chained windows keep wall-clock totals
func (m *Machine[S, C]) Update(ctx C, dt time.Duration) {
	if !m.started {
		return
	}
	m.timeInState += dt

	st := m.states[m.active]
	if st.OnUpdate != nil {
		st.OnUpdate(ctx, m.timeInState)
	}

	if m.hold > 0 && m.timeInState >= m.hold {
		over := m.timeInState - m.hold
		next := st.Next
		m.exit(ctx)
		m.enter(ctx, next, m.states[next].Duration)
		// OnEnter may already have moved on; only carry into a state that is still fresh
		if m.timeInState == 0 {
			m.timeInState = over
		}
	}
}

// Transition moves to target immediately using its table duration
func (m *Machine[S, C]) Transition(ctx C, target S) {
	st, ok := m.states[target]
	if !ok {
		return
	}
	m.TransitionFor(ctx, target, st.Duration)
}

// TransitionFor moves to target with a one-off duration for this visit
func (m *Machine[S, C]) TransitionFor(ctx C, target S, d time.Duration) {
	if _, ok := m.states[target]; !ok || !m.started {
		return
	}
	m.exit(ctx)
	m.enter(ctx, target, d)
}

// Reset re-enters initial without running exit actions
func (m *Machine[S, C]) Reset(ctx C, initial S) error {
	m.Transitions = 0
	return m.Init(ctx, initial)
}

func (m *Machine[S, C]) exit(ctx C) {
	if st := m.states[m.active]; st != nil && st.OnExit != nil {
		st.OnExit(ctx)
	}
}

func (m *Machine[S, C]) enter(ctx C, id S, hold time.Duration) {
	m.active = id
	m.timeInState = 0
	m.hold = hold
	m.Transitions++
	if st := m.states[id]; st.OnEnter != nil {
		st.OnEnter(ctx)
	}
}
