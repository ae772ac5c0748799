package simulation

import (
	"encoding/json"
	"io"
)

// PersistedSchemaVersion gates compatibility per spec.md §1/§6: on a version
// mismatch, the host discards stored state rather than attempting to
// migrate it.
const PersistedSchemaVersion = 1

// PersistedState is what Save/Load round-trip: the snapshot minus its log
// ring (logs are never persisted), the tunable config, and an opaque UI
// blob the core never interprets.
type PersistedState struct {
	Version       int             `json:"version"`
	Simulation    *PersistedSnap  `json:"simulation"`
	TunableConfig *TunableConfig  `json:"tunable_config"`
	UI            json.RawMessage `json:"ui,omitempty"`
}

// PersistedSnap is Snapshot without Logs.
type PersistedSnap struct {
	Tick        int             `json:"tick"`
	Tank        Tank            `json:"tank"`
	Resources   Resources       `json:"resources"`
	Environment Environment     `json:"environment"`
	Equipment   EquipmentSet    `json:"equipment"`
	Plants      []Plant         `json:"plants"`
	Fish        []Fish          `json:"fish"`
	AlertState  map[string]bool `json:"alert_state"`
	NextPlantID int             `json:"next_plant_id"`
	NextFishID  int             `json:"next_fish_id"`
}

func toPersisted(s Snapshot) *PersistedSnap {
	return &PersistedSnap{
		Tick: s.Tick, Tank: s.Tank, Resources: s.Resources, Environment: s.Environment,
		Equipment: s.Equipment, Plants: s.Plants, Fish: s.Fish, AlertState: s.AlertState,
		NextPlantID: s.nextPlantID, NextFishID: s.nextFishID,
	}
}

func fromPersisted(p *PersistedSnap) Snapshot {
	return Snapshot{
		Tick: p.Tick, Tank: p.Tank, Resources: p.Resources, Environment: p.Environment,
		Equipment: p.Equipment, Plants: p.Plants, Fish: p.Fish, AlertState: p.AlertState,
		nextPlantID: p.NextPlantID, nextFishID: p.NextFishID,
	}
}

// Save writes the persisted form of s and cfg to w. Logs are intentionally
// omitted (spec.md §6).
func Save(w io.Writer, s Snapshot, cfg TunableConfig, ui json.RawMessage) error {
	persisted := PersistedState{
		Version:       PersistedSchemaVersion,
		Simulation:    toPersisted(s),
		TunableConfig: &cfg,
		UI:            ui,
	}
	return json.NewEncoder(w).Encode(persisted)
}

// LoadResult carries each subsection independently: per spec.md §6, a
// structural failure in one subsection nulls only that subsection, it
// never fails the whole load.
type LoadResult struct {
	Simulation    *Snapshot
	TunableConfig *TunableConfig
	UI            json.RawMessage
}

// Load reads a persisted state from r. If the schema version doesn't match
// PersistedSchemaVersion, or the envelope itself is malformed, every
// subsection comes back nil and the host is expected to fall back to a
// fresh NewSimulation. Otherwise each subsection is decoded independently:
// a subsection that fails structural validation (e.g. a field holding the
// wrong JSON type) comes back nil on its own, without discarding sibling
// subsections that decoded cleanly (by design: the core never panics on
// untrusted persisted bytes, and one corrupt subsection shouldn't cost the
// others).
func Load(r io.Reader) LoadResult {
	var envelope struct {
		Version       int             `json:"version"`
		Simulation    json.RawMessage `json:"simulation"`
		TunableConfig json.RawMessage `json:"tunable_config"`
		UI            json.RawMessage `json:"ui,omitempty"`
	}
	if err := json.NewDecoder(r).Decode(&envelope); err != nil {
		return LoadResult{}
	}
	if envelope.Version != PersistedSchemaVersion {
		return LoadResult{}
	}

	result := LoadResult{UI: envelope.UI}

	if isPresent(envelope.Simulation) {
		var persisted PersistedSnap
		if err := json.Unmarshal(envelope.Simulation, &persisted); err == nil {
			snap := fromPersisted(&persisted)
			result.Simulation = &snap
		}
	}

	if isPresent(envelope.TunableConfig) {
		var cfg TunableConfig
		if err := json.Unmarshal(envelope.TunableConfig, &cfg); err == nil {
			result.TunableConfig = &cfg
		}
	}

	return result
}

// isPresent reports whether a raw JSON subsection was both included in the
// envelope and not explicitly set to null.
func isPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
