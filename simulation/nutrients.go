package simulation

// nutrientSufficiency returns the limiting-nutrient ratio spec.md §4.5
// describes: the minimum of available/optimal across nitrate, phosphate,
// potassium and iron, clamped to [0,1] for saturation (unbounded upward
// excess is not useful information for condition tracking, so it is
// clamped here rather than at the call site).
func nutrientSufficiency(res Resources, demand float64, t NutrientTunables) float64 {
	if demand <= 0 {
		demand = 1
	}
	nitratePPM := ppm(res.Nitrate, res.Water)
	phosphatePPM := ppm(res.Phosphate, res.Water)
	potassiumPPM := ppm(res.Potassium, res.Water)
	ironPPM := ppm(res.Iron, res.Water)

	ratios := []float64{
		nitratePPM / (t.OptimalNitratePPM * demand),
		phosphatePPM / (t.OptimalPhosphatePPM * demand),
		potassiumPPM / (t.OptimalPotassiumPPM * demand),
		ironPPM / (t.OptimalIronPPM * demand),
	}

	limiting := ratios[0]
	for _, r := range ratios[1:] {
		if r < limiting {
			limiting = r
		}
	}
	return clamp(limiting, 0, 1)
}
