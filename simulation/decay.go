package simulation

import "math"

// decayEffects implements spec.md §4.5 Decay: food decays at a
// Q10-temperature-scaled rate; 40% of decayed mass becomes waste, the rest
// oxidizes into +CO2/-O2 proportional to the oxidized mass. The gas side is
// suppressed when there is no water to carry it.
func decayEffects(s Snapshot, t DecayTunables) []Effect {
	if s.Resources.Food <= 0 {
		return nil
	}
	q10Factor := math.Pow(t.Q10, (s.Resources.Temperature-25)/10)
	decayed := s.Resources.Food * t.BaseDecayRate * q10Factor
	if decayed <= 0 {
		return nil
	}
	wasteDelta := decayed * t.WasteFraction
	oxidized := decayed * (1 - t.WasteFraction)

	effects := []Effect{
		{Tier: TierPassive, Resource: ResourceFood, Delta: -decayed, Source: "decay"},
		{Tier: TierPassive, Resource: ResourceWaste, Delta: wasteDelta, Source: "decay"},
	}
	if s.Resources.Water > 0 {
		gas := oxidized * t.GasExchangePerGramDecay
		effects = append(effects,
			Effect{Tier: TierPassive, Resource: ResourceCO2, Delta: gas, Source: "decay"},
			Effect{Tier: TierPassive, Resource: ResourceOxygen, Delta: -gas, Source: "decay"},
		)
	}
	return effects
}
