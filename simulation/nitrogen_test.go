package simulation

import "testing"

func TestNitrogenCycleMineralizesWaste(t *testing.T) {
	tun := DefaultTunableConfig().Nitrogen
	s := Snapshot{Resources: Resources{Water: 75, Waste: 10}}
	effects := nitrogenCycleEffects(s, tun)

	var wasteDelta, ammoniaDelta float64
	for _, e := range effects {
		if e.Resource == ResourceWaste {
			wasteDelta += e.Delta
		}
		if e.Resource == ResourceAmmonia {
			ammoniaDelta += e.Delta
		}
	}
	if wasteDelta >= 0 {
		t.Errorf("waste should decrease, got delta %v", wasteDelta)
	}
	if ammoniaDelta <= 0 {
		t.Errorf("ammonia should increase, got delta %v", ammoniaDelta)
	}
}

func TestNitrogenCycleSpawnsAOBAboveThreshold(t *testing.T) {
	tun := DefaultTunableConfig().Nitrogen
	// Ammonia in mg such that ppm = ammonia/water exceeds SpawnThresholdPPM.
	s := Snapshot{Resources: Resources{Water: 75, Ammonia: tun.SpawnThresholdPPM * 75 * 2}}
	effects := nitrogenCycleEffects(s, tun)

	spawned := false
	for _, e := range effects {
		if e.Resource == ResourceAOB && e.Source == "aob_spawn" {
			spawned = true
		}
	}
	if !spawned {
		t.Error("expected AOB to spawn once ammonia crosses threshold with zero starting population")
	}
}

func TestNitrogenCycleDoesNotRespawnExistingPopulation(t *testing.T) {
	tun := DefaultTunableConfig().Nitrogen
	s := Snapshot{Resources: Resources{Water: 75, Ammonia: 10, AOB: 5}}
	effects := nitrogenCycleEffects(s, tun)
	for _, e := range effects {
		if e.Source == "aob_spawn" {
			t.Error("should not spawn AOB when a population already exists")
		}
	}
}

func TestBacterialPopulationGrowsWithFoodAndDiesWithout(t *testing.T) {
	tun := DefaultTunableConfig().Nitrogen
	growing := bacterialPopulationDelta(ResourceAOB, 10, 1000, tun.FoodThresholdPPM*2, tun)
	if len(growing) != 1 || growing[0].Delta <= 0 {
		t.Errorf("expected positive growth delta, got %v", growing)
	}

	dying := bacterialPopulationDelta(ResourceAOB, 10, 1000, 0, tun)
	if len(dying) != 1 || dying[0].Delta >= 0 {
		t.Errorf("expected negative death delta, got %v", dying)
	}
}

func TestBacterialPopulationDeltaZeroWhenNoPopulation(t *testing.T) {
	tun := DefaultTunableConfig().Nitrogen
	if got := bacterialPopulationDelta(ResourceAOB, 0, 1000, 10, tun); got != nil {
		t.Errorf("expected nil effects for zero population, got %v", got)
	}
}
