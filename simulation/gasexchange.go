package simulation

import "math"

// oxygenSaturationMgL approximates dissolved-oxygen saturation at sea level
// for freshwater as a function of temperature in Celsius (a standard
// polynomial fit in the spirit of the Benson-Krause tables spec.md §4.5
// references).
func oxygenSaturationMgL(tempC float64) float64 {
	t := tempC
	sat := 14.62 - 0.3898*t + 0.006969*t*t - 0.00005896*t*t*t
	if sat < 0 {
		return 0
	}
	return sat
}

// gasExchangeEffects implements spec.md §4.5 Gas exchange: O2 trends toward
// its temperature-dependent saturation value and CO2 trends toward
// atmospheric, both at a rate proportional to water flow (aeration from a
// sponge filter or air pump biases the rate upward and additionally strips
// CO2 faster than it adds O2).
func gasExchangeEffects(s Snapshot, t GasExchangeTunables) []Effect {
	if s.Resources.Water <= 0 {
		return nil
	}
	flowFactor := 0.0
	if s.Resources.Flow > 0 && s.Tank.CapacityL > 0 {
		flowFactor = math.Min(1, s.Resources.Flow/(s.Tank.CapacityL*8))
	}
	if flowFactor == 0 {
		return nil
	}
	if aerationActive(s) {
		flowFactor += t.AerationBonus
	}

	satO2 := oxygenSaturationMgL(s.Resources.Temperature)
	o2Delta := t.BaseExchangeRate * flowFactor * (satO2 - s.Resources.Oxygen)
	co2Delta := t.BaseExchangeRate * flowFactor * (t.CO2AtmosphericMgL - s.Resources.CO2)
	if aerationActive(s) {
		// Surface agitation strips excess CO2 faster than it overshoots O2.
		if co2Delta < 0 {
			co2Delta *= 1.5
		}
	}

	return []Effect{
		{Tier: TierPassive, Resource: ResourceOxygen, Delta: o2Delta, Source: "gas_exchange"},
		{Tier: TierPassive, Resource: ResourceCO2, Delta: co2Delta, Source: "gas_exchange"},
	}
}
