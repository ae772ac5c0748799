package simulation

// algaeGrowthEffect implements spec.md §4.5 Algae: Michaelis-Menten growth
// in watts-per-liter, clamped by algaeCap. Suppression by plants is
// indirect: algae draws on the same dissolved-nitrate pool plant
// photosynthesis consumes (photosynthesis.go runs earlier in the active
// tier), so a well-planted tank starves algae of nitrate before this passive
// effect ever runs — there is deliberately no direct plant->algae term
// (spec.md §9 Open Question (a)).
func algaeGrowthEffect(s Snapshot, t AlgaeTunables) Effect {
	if s.Tank.CapacityL <= 0 || s.Resources.Light <= 0 {
		return Effect{}
	}
	wpl := s.Resources.Light / s.Tank.CapacityL
	growth := t.MaxGrowthRate * wpl / (t.HalfSaturation + wpl)

	nitratePPM := ppm(s.Resources.Nitrate, s.Resources.Water)
	nutrientSufficiency := clamp(nitratePPM/2, 0, 1)
	growth *= nutrientSufficiency

	if s.Resources.Algae >= t.Cap {
		growth = 0
	}
	return Effect{Tier: TierPassive, Resource: ResourceAlgae, Delta: growth, Source: "algae_growth"}
}
