package fsm

// RootConfig represents the top-level config structure
type RootConfig struct {
	InitialState string                  `toml:"initial"`
	States       map[string]*StateConfig `toml:"states"`
}

// StateConfig represents a single state definition
type StateConfig struct {
	OnEnter     []ActionConfig     `toml:"on_enter"`
	OnExit      []ActionConfig     `toml:"on_exit"`
	Transitions []TransitionConfig `toml:"transitions"`
}

// TransitionConfig represents a transition definition
type TransitionConfig struct {
	Trigger string `toml:"trigger"`
	Target  string `toml:"target"`
	Guard   string `toml:"guard"`
}

// ActionConfig represents an action reference
type ActionConfig struct {
	Action string `toml:"action"`
}
