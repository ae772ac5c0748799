package simulation

import "math"

// michaelisMenten returns current/(optimal+current), a saturating
// sufficiency factor in [0,1) that approaches 1 as current grows far past
// optimal. Used for CO2 and nitrate sufficiency in photosynthesis.
func michaelisMenten(current, optimal float64) float64 {
	if current <= 0 {
		return 0
	}
	return current / (optimal + current)
}

// photosynthesisRespirationEffects implements spec.md §4.5 Photosynthesis &
// respiration. Photosynthesis runs only while Resources.Light > 0 and scales
// with total plant size and CO2/nitrate sufficiency; respiration runs
// continuously, Q10-scaled by temperature. Returns the resource effects and
// the total biomass energy produced this tick, which plants.go distributes
// across individual plants by species growth rate.
func photosynthesisRespirationEffects(s Snapshot, t PhotosynthesisTunables) (effects []Effect, biomassEnergy float64) {
	totalSize := totalPlantSize(s.Plants)
	if totalSize <= 0 {
		return nil, 0
	}

	if s.Resources.Light > 0 {
		co2Sufficiency := michaelisMenten(s.Resources.CO2, t.OptimalCO2MgL)
		nitratePPM := ppm(s.Resources.Nitrate, s.Resources.Water)
		nitrateSufficiency := michaelisMenten(nitratePPM, t.OptimalNitratePPM)

		rate := t.BaseRate * totalSize * s.Resources.Light * co2Sufficiency * nitrateSufficiency
		if rate > 0 {
			nitrateConsumed := math.Min(s.Resources.Nitrate, rate*0.1)
			effects = append(effects,
				Effect{Tier: TierActive, Resource: ResourceOxygen, Delta: rate, Source: "photosynthesis"},
				Effect{Tier: TierActive, Resource: ResourceCO2, Delta: -rate, Source: "photosynthesis"},
				Effect{Tier: TierActive, Resource: ResourceNitrate, Delta: -nitrateConsumed, Source: "photosynthesis"},
			)
			biomassEnergy = rate * t.BiomassPerUnitEnergy
		}
	}

	respQ10 := math.Pow(t.RespirationQ10, (s.Resources.Temperature-25)/10)
	respRate := t.RespirationBaseRate * totalSize * respQ10
	if respRate > 0 {
		effects = append(effects,
			Effect{Tier: TierActive, Resource: ResourceOxygen, Delta: -respRate, Source: "respiration"},
			Effect{Tier: TierActive, Resource: ResourceCO2, Delta: respRate, Source: "respiration"},
		)
	}

	return effects, biomassEnergy
}
