package simulation

// Tick advances the snapshot by one simulated hour, running the three-tier
// effect pipeline spec.md §4.1 mandates in strict order:
//
//  1. advance the tick counter
//  2. recompute passive resources (surface/flow/light) from equipment
//  3. collect+apply+clamp immediate-tier effects (heater, ATO, CO2, evaporation)
//  4. collect+apply+clamp active-tier effects (fish, plants, doser, feeder)
//  5. collect+apply+clamp passive-tier effects (decay, nitrogen cycle, algae,
//     gas exchange, thermal drift, pH drift)
//  6. evaluate the alert registry and merge its log entries
//  7. write derived logs for equipment state transitions
//
// Tick never mutates its input; every intermediate step operates on a
// cloned snapshot.
func Tick(prev Snapshot, cfg TunableConfig) Snapshot {
	s := prev.clone()
	s.Tick = prev.Tick + 1
	hourOfDay := s.Tick % 24

	s.Resources = recomputePassiveResources(s, s.Tank, hourOfDay)

	// --- immediate tier ---
	var immediate []Effect
	heaterFx, heaterState := heaterEffects(s)
	wasHeaterOn := s.Equipment.Heater.IsOn
	s.Equipment.Heater = heaterState
	immediate = append(immediate, heaterFx...)
	immediate = append(immediate, atoEffects(s)...)
	immediate = append(immediate, co2GeneratorEffects(s, hourOfDay)...)
	immediate = append(immediate, evaporationEffects(s, cfg.Evaporation)...)
	s.Resources = clampResources(applyEffects(s.Resources, immediate), s.Tank)

	// --- active tier ---
	var active []Effect
	doserFx, doserState := autoDoserEffects(s, hourOfDay)
	s.Equipment.AutoDoser = doserState
	active = append(active, doserFx...)
	feederFx, feederState := autoFeederEffects(s, hourOfDay)
	s.Equipment.AutoFeeder = feederState
	active = append(active, feederFx...)

	plantResult := updatePlants(s, s.Tick, cfg)
	active = append(active, plantResult.Effects...)
	fishResult := updateFish(s, s.Tick, cfg.Fish)
	active = append(active, fishResult.Effects...)

	s.Plants = plantResult.Plants
	s.Fish = fishResult.Fish
	s.Resources = clampResources(applyEffects(s.Resources, active), s.Tank)
	s.Logs = append(s.Logs, plantResult.Logs...)
	s.Logs = append(s.Logs, fishResult.Logs...)

	// --- passive tier ---
	var passive []Effect
	passive = append(passive, decayEffects(s, cfg.Decay)...)
	passive = append(passive, nitrogenCycleEffects(s, cfg.Nitrogen)...)
	passive = append(passive, algaeGrowthEffect(s, cfg.Algae))
	passive = append(passive, gasExchangeEffects(s, cfg.GasExchange)...)
	passive = append(passive, temperatureDriftEffect(s, cfg.Thermal))
	passive = append(passive, phDriftEffect(s, cfg.PH))
	s.Resources = applyEffects(s.Resources, passive)
	s.Resources = clampResources(s.Resources, s.Tank)
	s.Resources.AOB = clamp(s.Resources.AOB, 0, s.Resources.Surface*cfg.Nitrogen.BacteriaPerCm2)
	s.Resources.NOB = clamp(s.Resources.NOB, 0, s.Resources.Surface*cfg.Nitrogen.BacteriaPerCm2)

	// --- alerts ---
	alertState, alertLogs := evaluateAlerts(s, s.Tick, cfg.Alerts)
	s.AlertState = alertState
	s.Logs = append(s.Logs, alertLogs...)

	// --- derived logs: equipment state transitions ---
	if s.Equipment.Heater.IsOn != wasHeaterOn {
		msg := "heater turned off"
		if s.Equipment.Heater.IsOn {
			msg = "heater turned on"
		}
		s.Logs = append(s.Logs, LogEntry{Tick: s.Tick, Source: "heater", Severity: SeverityInfo, Message: msg})
	}

	if cfg.MaxLogEntries > 0 && len(s.Logs) > cfg.MaxLogEntries {
		s.Logs = s.Logs[len(s.Logs)-cfg.MaxLogEntries:]
	}

	return s
}
