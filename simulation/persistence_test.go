package simulation

import (
	"bytes"
	"strings"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s := Snapshot{
		Tick:       12,
		Tank:       Tank{CapacityL: 75},
		Resources:  Resources{Water: 75, Temperature: 25},
		AlertState: map[string]bool{"high_algae": true},
		Plants:     []Plant{{ID: 1, Species: "anubias"}},
		Logs:       []LogEntry{{Tick: 1, Message: "should not be persisted"}},
	}
	cfg := DefaultTunableConfig()

	var buf bytes.Buffer
	if err := Save(&buf, s, cfg, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}

	result := Load(&buf)
	if result.Simulation == nil {
		t.Fatal("expected a non-nil simulation section")
	}
	if result.Simulation.Tick != 12 {
		t.Errorf("Tick = %d, want 12", result.Simulation.Tick)
	}
	if len(result.Simulation.Plants) != 1 || result.Simulation.Plants[0].Species != "anubias" {
		t.Errorf("expected plant round-tripped, got %+v", result.Simulation.Plants)
	}
	if len(result.Simulation.Logs) != 0 {
		t.Errorf("expected logs to never be persisted, got %v", result.Simulation.Logs)
	}
	if result.TunableConfig == nil || result.TunableConfig.MaxLogEntries != cfg.MaxLogEntries {
		t.Errorf("expected tunable config round-tripped, got %+v", result.TunableConfig)
	}
}

func TestLoadRejectsSchemaVersionMismatch(t *testing.T) {
	body := `{"version": 999, "simulation": {"tick": 5}}`
	result := Load(strings.NewReader(body))
	if result.Simulation != nil || result.TunableConfig != nil {
		t.Errorf("expected nil sections on schema mismatch, got %+v", result)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	result := Load(strings.NewReader("{not json"))
	if result.Simulation != nil || result.TunableConfig != nil || result.UI != nil {
		t.Errorf("expected zero-value LoadResult on malformed input, got %+v", result)
	}
}

func TestLoadNilSimulationSectionStaysNil(t *testing.T) {
	body := `{"version": 1, "tunable_config": {"MaxLogEntries": 10}}`
	result := Load(strings.NewReader(body))
	if result.Simulation != nil {
		t.Error("expected nil Simulation when the section is absent from the payload")
	}
	if result.TunableConfig == nil || result.TunableConfig.MaxLogEntries != 10 {
		t.Errorf("expected tunable config parsed independently, got %+v", result.TunableConfig)
	}
}

func TestLoadNullsOnlyTheCorruptSubsection(t *testing.T) {
	body := `{"version": 1, "simulation": {"tick": "not-a-number"}, "tunable_config": {"MaxLogEntries": 10}}`
	result := Load(strings.NewReader(body))
	if result.Simulation != nil {
		t.Errorf("expected nil Simulation for a structurally corrupt subsection, got %+v", result.Simulation)
	}
	if result.TunableConfig == nil || result.TunableConfig.MaxLogEntries != 10 {
		t.Errorf("expected sibling tunable_config to survive the simulation subsection's corruption, got %+v", result.TunableConfig)
	}
}
