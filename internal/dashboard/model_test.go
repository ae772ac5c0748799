package dashboard

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"aquasim/simulation"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	snap, err := simulation.NewSimulation(simulation.DefaultSimulationConfig(75))
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	return New(snap, simulation.DefaultTunableConfig())
}

func TestUpdateSpacePausesAndResumes(t *testing.T) {
	m := newTestModel(t)
	spaceKey := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")}
	updated, _ := m.Update(spaceKey)
	mm := updated.(Model)
	if !mm.paused {
		t.Error("expected space to pause")
	}
	updated, _ = mm.Update(spaceKey)
	if updated.(Model).paused {
		t.Error("expected second space to resume")
	}
}

func TestUpdateEnterAdvancesOneTick(t *testing.T) {
	m := newTestModel(t)
	startTick := m.snapshot.Tick
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	mm := updated.(Model)
	if mm.snapshot.Tick != startTick+1 {
		t.Errorf("expected tick to advance by one, got %d -> %d", startTick, mm.snapshot.Tick)
	}
}

func TestUpdateViewCyclesThroughModes(t *testing.T) {
	m := newTestModel(t)
	if m.selectedView != "resources" {
		t.Fatalf("expected default view 'resources', got %q", m.selectedView)
	}
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	mm := updated.(Model)
	if mm.selectedView != "equipment" {
		t.Errorf("expected view to cycle to 'equipment', got %q", mm.selectedView)
	}
}

func TestUpdateQuitReturnsQuitCmd(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected a non-nil command on quit")
	}
}

func TestUpdateFasterSlowerAdjustsInterval(t *testing.T) {
	m := newTestModel(t)
	start := m.intervalMs
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")})
	mm := updated.(Model)
	if mm.intervalMs >= start {
		t.Errorf("expected '+' to shrink the interval, got %d -> %d", start, mm.intervalMs)
	}
	updated, _ = mm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-")})
	if updated.(Model).intervalMs <= mm.intervalMs {
		t.Error("expected '-' to grow the interval")
	}
}

func TestViewRendersWithoutPanicking(t *testing.T) {
	m := newTestModel(t)
	for _, view := range viewModes {
		m.selectedView = view
		if out := m.View(); out == "" {
			t.Errorf("expected non-empty view output for %q", view)
		}
	}
}
