package simulation

// plantUpdateResult is what updatePlants returns: the next tick's plant
// slice, the resource effects photosynthesis/respiration/overgrowth
// produced, and any log entries from shedding/death events.
type plantUpdateResult struct {
	Plants  []Plant
	Effects []Effect
	Logs    []LogEntry
}

// updatePlants implements spec.md §4.6: growth, nutrient-sufficiency-driven
// condition tracking, shedding, and mortality, plus the photosynthesis and
// respiration gas/nutrient exchange from photosynthesis.go. Dead plants are
// dropped; their ids never reappear (state.go's nextPlantID counter is
// never reused).
func updatePlants(s Snapshot, tick int, t TunableConfig) plantUpdateResult {
	effects, biomassEnergy := photosynthesisRespirationEffects(s, t.Photosynthesis)

	totalWeight := 0.0
	for _, p := range s.Plants {
		totalWeight += lookupPlantSpecies(p.Species).GrowthMultiplier
	}

	var next []Plant
	var logs []LogEntry
	for _, p := range s.Plants {
		info := lookupPlantSpecies(p.Species)
		suff := nutrientSufficiency(s.Resources, info.NutrientDemand, t.Nutrients)

		if suff >= 1 {
			p.Condition = clamp(p.Condition+t.Nutrients.ConditionStep, 0, 100)
			p.lowSufficiencyTicks = 0
		} else {
			p.Condition = clamp(p.Condition-t.Nutrients.ConditionDecayStep, 0, 100)
			p.lowSufficiencyTicks++
		}

		if totalWeight > 0 && biomassEnergy > 0 {
			share := biomassEnergy * (info.GrowthMultiplier / totalWeight) * t.Plant.GrowthRate
			headroom := 200 - p.Size
			if share > headroom {
				overflow := share - headroom
				effects = append(effects, Effect{
					Tier: TierActive, Resource: ResourceWaste, Delta: overflow, Source: "plant_overgrowth",
					Meta: map[string]any{"plant_id": p.ID},
				})
				share = headroom
			}
			p.Size = clamp(p.Size+share, 0, 200)
		}

		conditionThreshold := t.Nutrients.ShedThreshold * 100
		if p.Condition < conditionThreshold && p.lowSufficiencyTicks >= t.Nutrients.ShedTicks {
			shed := p.Size * 0.02
			effects = append(effects, Effect{Tier: TierActive, Resource: ResourceWaste, Delta: shed, Source: "plant_shedding"})
			p.Size = clamp(p.Size-shed, 0, 200)
			logs = append(logs, LogEntry{Tick: tick, Source: "plant", Severity: SeverityInfo,
				Message: "plant " + p.Species + " shed biomass from nutrient deficiency"})
		}

		if p.Condition <= 0 && p.lowSufficiencyTicks >= t.Nutrients.DeathTicks {
			dieOff := p.Size * 0.5
			effects = append(effects, Effect{Tier: TierActive, Resource: ResourceWaste, Delta: dieOff, Source: "plant_death"})
			logs = append(logs, LogEntry{Tick: tick, Source: "plant", Severity: SeverityWarning,
				Message: "plant " + p.Species + " died from sustained nutrient deficiency"})
			continue
		}

		next = append(next, p)
	}

	return plantUpdateResult{Plants: next, Effects: effects, Logs: logs}
}
