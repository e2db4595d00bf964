package fsm

import (
	"errors"
	"strings"
	"testing"
)

const testGraph = `
initial = "idle"

[states.idle]
on_enter = [{ action = "log_enter_idle" }]
on_exit = [{ action = "log_exit_idle" }]
transitions = [
  { trigger = "go", target = "running", guard = "armed" },
]

[states.running]
on_enter = [{ action = "log_enter_running" }]
transitions = [
  { trigger = "stop", target = "idle" },
]
`

type recorder struct {
	log   []string
	armed bool
}

func newTestMachine(t *testing.T) *Machine[*recorder] {
	t.Helper()
	m := NewMachine[*recorder]()
	for _, name := range []string{"log_enter_idle", "log_exit_idle", "log_enter_running"} {
		name := name
		m.RegisterAction(name, func(r *recorder) { r.log = append(r.log, name) })
	}
	m.RegisterGuard("armed", func(r *recorder) bool { return r.armed })
	if err := m.LoadConfig([]byte(testGraph)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	return m
}

func TestInitEntersInitialState(t *testing.T) {
	m := newTestMachine(t)
	r := &recorder{}
	if m.Current() != "" {
		t.Errorf("Expected no state before Init, got %q", m.Current())
	}
	if err := m.Init(r); err != nil {
		t.Fatal(err)
	}
	if m.Current() != "idle" {
		t.Errorf("Expected idle, got %q", m.Current())
	}
	if strings.Join(r.log, ",") != "log_enter_idle" {
		t.Errorf("Unexpected actions: %v", r.log)
	}
}

func TestGuardBlocksTransition(t *testing.T) {
	m := newTestMachine(t)
	r := &recorder{}
	m.Init(r)

	if m.Can(r, "go") {
		t.Error("Can must respect the guard")
	}
	if m.HandleEvent(r, "go") {
		t.Error("Guarded transition must not fire")
	}
	if m.Current() != "idle" {
		t.Errorf("Expected idle, got %q", m.Current())
	}
}

func TestExitRunsBeforeEnter(t *testing.T) {
	m := newTestMachine(t)
	r := &recorder{armed: true}
	m.Init(r)
	r.log = nil

	if !m.HandleEvent(r, "go") {
		t.Fatal("Expected transition")
	}
	if got := strings.Join(r.log, ","); got != "log_exit_idle,log_enter_running" {
		t.Errorf("Expected exit before enter, got %s", got)
	}
	if m.Current() != "running" {
		t.Errorf("Expected running, got %q", m.Current())
	}
}

func TestUnknownEventIgnored(t *testing.T) {
	m := newTestMachine(t)
	r := &recorder{}
	m.Init(r)
	if m.HandleEvent(r, "explode") {
		t.Error("Unknown event must not transition")
	}
	if m.HandleEvent(r, "stop") {
		t.Error("Event of another state must not transition")
	}
}

func TestReset(t *testing.T) {
	m := newTestMachine(t)
	r := &recorder{armed: true}
	m.Init(r)
	m.HandleEvent(r, "go")
	if err := m.Reset(r); err != nil {
		t.Fatal(err)
	}
	if m.Current() != "idle" {
		t.Errorf("Expected idle after reset, got %q", m.Current())
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		graph string
		want  error
	}{
		{"unknown initial", `initial = "nowhere"` + "\n[states.a]\n", ErrUnknownState},
		{"unknown target", "initial = \"a\"\n[states.a]\ntransitions = [{ trigger = \"x\", target = \"b\" }]\n", ErrUnknownState},
		{"unknown action", "initial = \"a\"\n[states.a]\non_enter = [{ action = \"nope\" }]\n", ErrUnknownAction},
		{"unknown guard", "initial = \"a\"\n[states.a]\ntransitions = [{ trigger = \"x\", target = \"a\", guard = \"nope\" }]\n", ErrUnknownGuard},
		{"missing trigger", "initial = \"a\"\n[states.a]\ntransitions = [{ target = \"a\" }]\n", ErrMissingTrigger},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine[*recorder]()
			if err := m.LoadConfig([]byte(tt.graph)); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadConfigBadTOML(t *testing.T) {
	m := NewMachine[*recorder]()
	if err := m.LoadConfig([]byte("initial = ")); err == nil {
		t.Error("Expected decode error")
	}
}

func TestInitWithoutGraph(t *testing.T) {
	m := NewMachine[*recorder]()
	if err := m.Init(&recorder{}); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Expected ErrNotLoaded, got %v", err)
	}
}

func TestReentrantDispatchPanics(t *testing.T) {
	m := NewMachine[*recorder]()
	m.RegisterAction("bounce", func(r *recorder) {
		m.HandleEvent(r, "back")
	})
	graph := "initial = \"a\"\n[states.a]\ntransitions = [{ trigger = \"go\", target = \"b\" }]\n[states.b]\non_enter = [{ action = \"bounce\" }]\ntransitions = [{ trigger = \"back\", target = \"a\" }]\n"
	if err := m.LoadConfig([]byte(graph)); err != nil {
		t.Fatal(err)
	}
	r := &recorder{}
	m.Init(r)

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on re-entrant dispatch")
		}
	}()
	m.HandleEvent(r, "go")
}

func TestStates(t *testing.T) {
	m := newTestMachine(t)
	if got := strings.Join(m.States(), ","); got != "idle,running" {
		t.Errorf("Unexpected states: %s", got)
	}
}
