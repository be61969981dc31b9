package fsm

import (
	"fmt"
	"time"
)

// AddState registers a state, replacing any previous definition with the same id
func (m *Machine[S, C]) AddState(id S, st State[S, C]) *Machine[S, C] {
	s := st
	m.states[id] = &s
	return m
}

// SetDuration changes the default duration of a registered state
func (m *Machine[S, C]) SetDuration(id S, d time.Duration) error {
	st, ok := m.states[id]
	if !ok {
		return fmt.Errorf("state %v not registered", id)
	}
	st.Duration = d
	return nil
}

// Validate checks that every auto-advancing state points at a registered state
func (m *Machine[S, C]) Validate() error {
	for id, st := range m.states {
		if st.Duration <= 0 {
			continue
		}
		if _, ok := m.states[st.Next]; !ok {
			return fmt.Errorf("state %v advances to unregistered state %v", id, st.Next)
		}
	}
	return nil
}
