package simulation

import "math"

// temperatureDriftEffect implements spec.md §4.5 Temperature drift: a
// Newton-cooling style pull of water temperature toward room temperature,
// scaled down for larger volumes (heat capacity grows with volume).
func temperatureDriftEffect(s Snapshot, t ThermalTunables) Effect {
	gap := s.Environment.RoomTemperature - s.Resources.Temperature
	volumeFactor := math.Pow(t.ReferenceVolumeL/math.Max(s.Tank.CapacityL, 1), t.VolumeExponent)
	delta := gap * t.DriftCoefficient * volumeFactor
	return Effect{
		Tier:     TierPassive,
		Resource: ResourceTemperature,
		Delta:    delta,
		Source:   "thermal_drift",
	}
}
