package simulation

// fishUpdateResult mirrors plantUpdateResult for the fish processor.
type fishUpdateResult struct {
	Fish    []Fish
	Effects []Effect
	Logs    []LogEntry
}

const hungerStressThreshold = 70

// updateFish implements spec.md §4.5 "Fish metabolism" and §4.6's fish
// processor: each fish competes for a share of the shared food pool,
// consumes oxygen, excretes waste, and its health responds to hunger and
// ammonia stress. Low-hardiness species reach zero health sooner; dead fish
// are removed and logged.
func updateFish(s Snapshot, tick int, t FishTunables) fishUpdateResult {
	if len(s.Fish) == 0 {
		return fishUpdateResult{}
	}

	totalDemand := 0.0
	for _, f := range s.Fish {
		totalDemand += f.MassG * t.FoodConsumptionPerGram
	}
	feedFraction := 1.0
	if totalDemand > 0 {
		feedFraction = minF(1, s.Resources.Food/totalDemand)
	}

	ammoniaPPM := ppm(s.Resources.Ammonia, s.Resources.Water)

	var effects []Effect
	var logs []LogEntry
	var next []Fish
	totalConsumed := 0.0

	for _, f := range s.Fish {
		info := lookupFishSpecies(f.Species)
		demand := f.MassG * t.FoodConsumptionPerGram
		consumed := demand * feedFraction
		totalConsumed += consumed

		o2Demand := f.MassG * t.O2ConsumptionPerGram
		effects = append(effects, Effect{Tier: TierActive, Resource: ResourceOxygen, Delta: -o2Demand, Source: "fish_metabolism",
			Meta: map[string]any{"fish_id": f.ID}})

		if feedFraction >= 1 {
			f.Hunger = clamp(f.Hunger-t.HungerRisePerTick*2, 0, 100)
		} else {
			f.Hunger = clamp(f.Hunger+t.HungerRisePerTick*(1-feedFraction)*2, 0, 100)
		}

		stressThreshold := t.StressAmmoniaPPM
		if info.StressAmmoniaPPM > 0 {
			stressThreshold = info.StressAmmoniaPPM
		}
		stressed := f.Hunger > hungerStressThreshold || ammoniaPPM > stressThreshold
		if stressed {
			f.Health = clamp(f.Health-t.HealthDeclineRate/info.Hardiness, 0, 100)
		} else {
			f.Health = clamp(f.Health+t.HealthRecoveryRate*info.Hardiness, 0, 100)
		}

		if f.Health <= 0 {
			logs = append(logs, LogEntry{Tick: tick, Source: "fish", Severity: SeverityWarning,
				Message: "fish " + f.Species + " died"})
			continue
		}
		next = append(next, f)
	}

	if totalConsumed > 0 {
		effects = append(effects,
			Effect{Tier: TierActive, Resource: ResourceFood, Delta: -totalConsumed, Source: "fish_feeding"},
			Effect{Tier: TierActive, Resource: ResourceWaste, Delta: totalConsumed * t.WasteExcretionFraction, Source: "fish_excretion"},
		)
	}

	return fishUpdateResult{Fish: next, Effects: effects, Logs: logs}
}
