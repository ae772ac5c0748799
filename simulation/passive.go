package simulation

// recomputePassiveResources implements spec.md §4.3: surface, flow and
// light are recomputed from equipment and schedules every tick, never
// carried forward as state. hourOfDay is tick mod 24 (tick 0 = hour 0).
func recomputePassiveResources(s Snapshot, tank Tank, hourOfDay int) Resources {
	res := s.Resources

	surface := tank.BacteriaSurfaceCm2
	if s.Equipment.Filter.Enabled {
		surface += filterSurfaceCm2[s.Equipment.Filter.Type]
	}
	surface += substrateSurfacePerLiter[s.Equipment.Substrate.Type] * tank.CapacityL
	surface += hardscapeSurfaceCm2(s.Equipment.Hardscape.Items)
	res.Surface = surface

	var flow float64
	if s.Equipment.Filter.Enabled {
		flow += filterFlow(s.Equipment.Filter.Type, tank.CapacityL)
	}
	if s.Equipment.Powerhead.Enabled {
		flow += powerheadFlow(s.Equipment.Powerhead.FlowRateGPH)
	}
	if s.Equipment.AirPump.Enabled {
		flow += airPumpFlow(tank.CapacityL)
	}
	res.Flow = flow

	light := 0.0
	if s.Equipment.Light.Enabled && s.Equipment.Light.Schedule.Active(hourOfDay) {
		light = s.Equipment.Light.WattageW
	}
	res.Light = light

	return res
}

// aerationActive reports whether a sponge filter or air pump is installed
// and enabled; gas exchange uses this to bias O2 upward and strip CO2
// (spec.md §4.5 Gas exchange).
func aerationActive(s Snapshot) bool {
	if s.Equipment.AirPump.Enabled {
		return true
	}
	return s.Equipment.Filter.Enabled && s.Equipment.Filter.Type == FilterSponge
}
