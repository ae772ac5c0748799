package simulation

import "testing"

func TestPHDriftTowardTapWater(t *testing.T) {
	tun := DefaultTunableConfig().PH
	s := Snapshot{Environment: Environment{TapWaterPH: 7.0}, Resources: Resources{PH: 6.0, CO2: 4}}
	eff := phDriftEffect(s, tun)
	if eff.Delta <= 0 {
		t.Errorf("expected pH to drift upward toward tap water, got delta %v", eff.Delta)
	}
}

func TestPHDriftDriftwoodLowersTarget(t *testing.T) {
	tun := DefaultTunableConfig().PH
	plain := Snapshot{Environment: Environment{TapWaterPH: 7.0}, Resources: Resources{PH: 7.0, CO2: 4}}
	withWood := Snapshot{
		Environment: Environment{TapWaterPH: 7.0},
		Resources:   Resources{PH: 7.0, CO2: 4},
		Equipment:   EquipmentSet{Hardscape: HardscapeConfig{Items: []HardscapeItem{{Kind: "driftwood"}}}},
	}
	plainDelta := phDriftEffect(plain, tun).Delta
	woodDelta := phDriftEffect(withWood, tun).Delta
	if woodDelta >= plainDelta {
		t.Errorf("driftwood should push pH delta downward relative to no hardscape: plain=%v wood=%v", plainDelta, woodDelta)
	}
}

func TestPHDriftCalciteRaisesTarget(t *testing.T) {
	tun := DefaultTunableConfig().PH
	plain := Snapshot{Environment: Environment{TapWaterPH: 7.0}, Resources: Resources{PH: 7.0, CO2: 4}}
	withCalcite := Snapshot{
		Environment: Environment{TapWaterPH: 7.0},
		Resources:   Resources{PH: 7.0, CO2: 4},
		Equipment:   EquipmentSet{Hardscape: HardscapeConfig{Items: []HardscapeItem{{Kind: "calcite"}}}},
	}
	plainDelta := phDriftEffect(plain, tun).Delta
	calciteDelta := phDriftEffect(withCalcite, tun).Delta
	if calciteDelta <= plainDelta {
		t.Errorf("calcite should push pH delta upward relative to no hardscape: plain=%v calcite=%v", plainDelta, calciteDelta)
	}
}

func TestPHDriftHighCO2LowersTarget(t *testing.T) {
	tun := DefaultTunableConfig().PH
	lowCO2 := Snapshot{Environment: Environment{TapWaterPH: 7.0}, Resources: Resources{PH: 7.0, CO2: 4}}
	highCO2 := Snapshot{Environment: Environment{TapWaterPH: 7.0}, Resources: Resources{PH: 7.0, CO2: 40}}
	lowDelta := phDriftEffect(lowCO2, tun).Delta
	highDelta := phDriftEffect(highCO2, tun).Delta
	if highDelta >= lowDelta {
		t.Errorf("high CO2 should lower the pH drift target: low=%v high=%v", lowDelta, highDelta)
	}
}
