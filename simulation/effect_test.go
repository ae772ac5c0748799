package simulation

import "testing"

func TestClampResourcesKeepsWithinBounds(t *testing.T) {
	res := Resources{
		Water:   -5,
		PH:      20,
		Oxygen:  -1,
		Algae:   -10,
		Ammonia: -1,
	}
	tank := Tank{CapacityL: 75, BacteriaSurfaceCm2: 1000}
	clamped := clampResources(res, tank)

	if clamped.Water < 0 {
		t.Errorf("Water clamped below 0: %v", clamped.Water)
	}
	if clamped.Water > tank.CapacityL {
		t.Errorf("Water clamped above capacity: %v", clamped.Water)
	}
	if clamped.PH > 14 || clamped.PH < 0 {
		t.Errorf("PH out of chemical range: %v", clamped.PH)
	}
	if clamped.Oxygen < 0 {
		t.Errorf("Oxygen clamped below 0: %v", clamped.Oxygen)
	}
	if clamped.Algae < 0 {
		t.Errorf("Algae clamped below 0: %v", clamped.Algae)
	}
	if clamped.Ammonia < 0 {
		t.Errorf("Ammonia clamped below 0: %v", clamped.Ammonia)
	}
}

func TestApplyEffectsSumsByResource(t *testing.T) {
	res := Resources{Nitrate: 10}
	effects := []Effect{
		{Tier: TierActive, Resource: ResourceNitrate, Delta: 5},
		{Tier: TierActive, Resource: ResourceNitrate, Delta: -2},
	}
	out := applyEffects(res, effects)
	if out.Nitrate != 13 {
		t.Errorf("Nitrate = %v, want 13", out.Nitrate)
	}
}

func TestClampFunction(t *testing.T) {
	if got := clamp(5, 0, 10); got != 5 {
		t.Errorf("clamp(5,0,10) = %v, want 5", got)
	}
	if got := clamp(-5, 0, 10); got != 0 {
		t.Errorf("clamp(-5,0,10) = %v, want 0", got)
	}
	if got := clamp(15, 0, 10); got != 10 {
		t.Errorf("clamp(15,0,10) = %v, want 10", got)
	}
}
