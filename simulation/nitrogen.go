package simulation

// nitrogenCycleEffects implements spec.md §4.5 Nitrogen cycle: mineralization
// of waste into ammonia, AOB oxidizing ammonia into nitrite, NOB oxidizing
// nitrite into nitrate, spawning of a bacterial population from nothing once
// its substrate crosses a threshold, logistic population growth when food is
// available, and decline when it isn't. Populations are mass-cappped by
// available surface area in effect.go/tick.go's clamp pass.
func nitrogenCycleEffects(s Snapshot, t NitrogenTunables) []Effect {
	var effects []Effect
	water := s.Resources.Water

	// 1. Mineralization: waste -> ammonia.
	wasteConsumed := s.Resources.Waste * t.WasteConversionRate
	ammoniaProduced := wasteConsumed * t.WasteToAmmoniaRatio
	if wasteConsumed > 0 {
		effects = append(effects,
			Effect{Tier: TierPassive, Resource: ResourceWaste, Delta: -wasteConsumed, Source: "mineralization"},
			Effect{Tier: TierPassive, Resource: ResourceAmmonia, Delta: ammoniaProduced, Source: "mineralization"},
		)
	}

	ammoniaAfterMineralization := s.Resources.Ammonia + ammoniaProduced

	// 2. AOB: ammonia -> nitrite.
	aobProcessed := minF(ammoniaAfterMineralization, s.Resources.AOB*t.AOBProcessingRate*water)
	if aobProcessed > 0 {
		effects = append(effects,
			Effect{Tier: TierPassive, Resource: ResourceAmmonia, Delta: -aobProcessed, Source: "aob"},
			Effect{Tier: TierPassive, Resource: ResourceNitrite, Delta: aobProcessed, Source: "aob"},
		)
	}

	nitriteAfterAOB := s.Resources.Nitrite + aobProcessed

	// 3. NOB: nitrite -> nitrate.
	nobProcessed := minF(nitriteAfterAOB, s.Resources.NOB*t.NOBProcessingRate*water)
	if nobProcessed > 0 {
		effects = append(effects,
			Effect{Tier: TierPassive, Resource: ResourceNitrite, Delta: -nobProcessed, Source: "nob"},
			Effect{Tier: TierPassive, Resource: ResourceNitrate, Delta: nobProcessed, Source: "nob"},
		)
	}

	// 4. Spawning.
	if s.Resources.AOB == 0 && ppm(ammoniaAfterMineralization, water) >= t.SpawnThresholdPPM {
		effects = append(effects, Effect{Tier: TierPassive, Resource: ResourceAOB, Delta: t.SpawnAmount, Source: "aob_spawn"})
	}
	if s.Resources.NOB == 0 && ppm(nitriteAfterAOB, water) >= t.SpawnThresholdPPM {
		effects = append(effects, Effect{Tier: TierPassive, Resource: ResourceNOB, Delta: t.SpawnAmount, Source: "nob_spawn"})
	}

	// 5/6. Logistic growth or death, gated on "food" (the substrate each
	// population consumes: ammonia for AOB, nitrite for NOB).
	maxBacteria := s.Resources.Surface * t.BacteriaPerCm2
	effects = append(effects, bacterialPopulationDelta(ResourceAOB, s.Resources.AOB, maxBacteria, ppm(ammoniaAfterMineralization, water), t)...)
	effects = append(effects, bacterialPopulationDelta(ResourceNOB, s.Resources.NOB, maxBacteria, ppm(nitriteAfterAOB, water), t)...)

	return effects
}

func bacterialPopulationDelta(resource Resource, pop, maxBacteria, foodPPM float64, t NitrogenTunables) []Effect {
	if pop <= 0 || maxBacteria <= 0 {
		return nil
	}
	source := "bacteria_growth"
	var delta float64
	if foodPPM >= t.FoodThresholdPPM {
		delta = pop * t.GrowthRate * (1 - pop/maxBacteria)
	} else {
		delta = -pop * t.DeathRate
		source = "bacteria_death"
	}
	if delta == 0 {
		return nil
	}
	return []Effect{{Tier: TierPassive, Resource: resource, Delta: delta, Source: source}}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
