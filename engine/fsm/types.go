// Package fsm is a small finite state machine whose graph is declared in TOML
// and whose actions and guards are registered by name.
package fsm

import "errors"

// Event is a named trigger for a transition
type Event string

// Machine is the generic finite state machine runtime
// T is the context passed to actions and guards
type Machine[T any] struct {
	// Graph data (immutable after load)
	nodes   map[string]*Node[T]
	initial string

	// Runtime state
	current     string
	dispatching bool

	// Dependency injection
	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
}

// Node represents a state in the graph
type Node[T any] struct {
	Name        string
	OnEnter     []Action[T]
	OnExit      []Action[T]
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	Event  Event
	Target string
	Guard  GuardFunc[T] // nil = always true
}

// Action is a named side effect
type Action[T any] struct {
	Name string
	Func ActionFunc[T]
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)

// Sentinel errors
var (
	ErrNotLoaded      = errors.New("fsm: no graph loaded")
	ErrUnknownState   = errors.New("fsm: unknown state")
	ErrUnknownAction  = errors.New("fsm: unknown action")
	ErrUnknownGuard   = errors.New("fsm: unknown guard")
	ErrMissingTrigger = errors.New("fsm: transition has no trigger")
)
