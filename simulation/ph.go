package simulation

// phDriftEffect implements spec.md §4.5 pH drift: pH trends toward the tap
// water's pH, nudged by driftwood (down), calcite (up), and high CO2
// concentration (down — carbonic acid).
func phDriftEffect(s Snapshot, t PHTunables) Effect {
	target := s.Environment.TapWaterPH
	for _, item := range s.Equipment.Hardscape.Items {
		switch item.Kind {
		case "driftwood":
			target += t.DriftwoodDelta
		case "calcite":
			target += t.CalciteDelta
		}
	}
	co2Penalty := (s.Resources.CO2 - 4) * t.CO2SensitivityRate
	target -= co2Penalty

	delta := (target - s.Resources.PH) * t.DriftRate
	return Effect{Tier: TierPassive, Resource: ResourcePH, Delta: delta, Source: "ph_drift"}
}
