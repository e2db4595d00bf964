package fsm

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

// LoadConfig parses a TOML graph and populates the Machine
// Validates every state, action and guard reference; clears any previous graph
func (m *Machine[T]) LoadConfig(data []byte) error {
	var config RootConfig
	if _, err := toml.Decode(string(data), &config); err != nil {
		return fmt.Errorf("failed to unmarshal FSM config: %w", err)
	}

	if _, ok := config.States[config.InitialState]; !ok {
		return fmt.Errorf("initial state %q: %w", config.InitialState, ErrUnknownState)
	}

	nodes := make(map[string]*Node[T], len(config.States))

	// Sorted for deterministic error reporting
	names := make([]string, 0, len(config.States))
	for name := range config.States {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cfg := config.States[name]
		if cfg == nil {
			cfg = &StateConfig{}
		}
		node := &Node[T]{Name: name}

		var err error
		if node.OnEnter, err = m.resolveActions(name, cfg.OnEnter); err != nil {
			return err
		}
		if node.OnExit, err = m.resolveActions(name, cfg.OnExit); err != nil {
			return err
		}

		for i, tc := range cfg.Transitions {
			if tc.Trigger == "" {
				return fmt.Errorf("state %q transition %d: %w", name, i, ErrMissingTrigger)
			}
			if _, ok := config.States[tc.Target]; !ok {
				return fmt.Errorf("state %q transition %q -> %q: %w", name, tc.Trigger, tc.Target, ErrUnknownState)
			}
			trans := Transition[T]{Event: Event(tc.Trigger), Target: tc.Target}
			if tc.Guard != "" {
				guard, ok := m.guardReg[tc.Guard]
				if !ok {
					return fmt.Errorf("state %q guard %q: %w", name, tc.Guard, ErrUnknownGuard)
				}
				trans.Guard = guard
			}
			node.Transitions = append(node.Transitions, trans)
		}

		nodes[name] = node
	}

	m.nodes = nodes
	m.initial = config.InitialState
	m.current = ""
	return nil
}

// resolveActions maps configured action names onto registered functions
func (m *Machine[T]) resolveActions(state string, cfgs []ActionConfig) ([]Action[T], error) {
	actions := make([]Action[T], 0, len(cfgs))
	for _, ac := range cfgs {
		fn, ok := m.actionReg[ac.Action]
		if !ok {
			return nil, fmt.Errorf("state %q action %q: %w", state, ac.Action, ErrUnknownAction)
		}
		actions = append(actions, Action[T]{Name: ac.Action, Func: fn})
	}
	return actions, nil
}
