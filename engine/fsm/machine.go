package fsm

import (
	"fmt"
	"sort"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:     make(map[string]*Node[T]),
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate function to the registry, must be called before LoadConfig
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry, must be called before LoadConfig
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state, running its OnEnter actions
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.initial]
	if !ok {
		return ErrNotLoaded
	}
	m.current = node.Name
	m.run(ctx, node.OnEnter)
	return nil
}

// Reset exits the current state and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	if node, ok := m.nodes[m.current]; ok {
		m.run(ctx, node.OnExit)
	}
	return m.Init(ctx)
}

// HandleEvent fires the first transition of the current state matching ev whose guard passes
// Exit actions of the old state complete before any entry action of the new one
// Returns true if a transition occurred
func (m *Machine[T]) HandleEvent(ctx T, ev Event) bool {
	node, ok := m.nodes[m.current]
	if !ok {
		return false
	}

	for _, trans := range node.Transitions {
		if trans.Event != ev {
			continue
		}
		if trans.Guard != nil && !trans.Guard(ctx) {
			continue
		}
		m.transition(ctx, node, trans.Target)
		return true
	}
	return false
}

// Can reports whether ev would trigger a transition from the current state
func (m *Machine[T]) Can(ctx T, ev Event) bool {
	node, ok := m.nodes[m.current]
	if !ok {
		return false
	}
	for _, trans := range node.Transitions {
		if trans.Event == ev && (trans.Guard == nil || trans.Guard(ctx)) {
			return true
		}
	}
	return false
}

// transition performs the state change
func (m *Machine[T]) transition(ctx T, from *Node[T], targetName string) {
	target, ok := m.nodes[targetName]
	if !ok {
		panic(fmt.Sprintf("FSM: attempted transition to unknown state %q", targetName))
	}

	m.run(ctx, from.OnExit)
	m.current = target.Name
	m.run(ctx, target.OnEnter)
}

// run executes actions; actions must not dispatch events into the same machine
func (m *Machine[T]) run(ctx T, actions []Action[T]) {
	if m.dispatching {
		panic("FSM: re-entrant dispatch from an action")
	}
	m.dispatching = true
	defer func() { m.dispatching = false }()

	for _, action := range actions {
		action.Func(ctx)
	}
}

// Current returns the active state name, empty before Init
func (m *Machine[T]) Current() string {
	return m.current
}

// States returns all state names in sorted order
func (m *Machine[T]) States() []string {
	names := make([]string, 0, len(m.nodes))
	for name := range m.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
