package simulation

import "testing"

func TestDecayEffectsNoFoodIsNoOp(t *testing.T) {
	tun := DefaultTunableConfig().Decay
	s := Snapshot{Resources: Resources{Food: 0, Water: 75, Temperature: 25}}
	if effects := decayEffects(s, tun); effects != nil {
		t.Errorf("expected nil effects with zero food, got %v", effects)
	}
}

func TestDecayEffectsSplitsFoodIntoWasteAndGas(t *testing.T) {
	tun := DefaultTunableConfig().Decay
	s := Snapshot{Resources: Resources{Food: 10, Water: 75, Temperature: 25}}
	effects := decayEffects(s, tun)

	var foodDelta, wasteDelta, co2Delta, o2Delta float64
	for _, e := range effects {
		switch e.Resource {
		case ResourceFood:
			foodDelta = e.Delta
		case ResourceWaste:
			wasteDelta = e.Delta
		case ResourceCO2:
			co2Delta = e.Delta
		case ResourceOxygen:
			o2Delta = e.Delta
		}
	}
	if foodDelta >= 0 {
		t.Errorf("food delta should be negative, got %v", foodDelta)
	}
	if wasteDelta <= 0 {
		t.Errorf("waste delta should be positive, got %v", wasteDelta)
	}
	if co2Delta <= 0 {
		t.Errorf("co2 delta should be positive when water present, got %v", co2Delta)
	}
	if o2Delta >= 0 {
		t.Errorf("oxygen delta should be negative when water present, got %v", o2Delta)
	}
}

func TestDecayEffectsSuppressesGasWithoutWater(t *testing.T) {
	tun := DefaultTunableConfig().Decay
	s := Snapshot{Resources: Resources{Food: 10, Water: 0, Temperature: 25}}
	effects := decayEffects(s, tun)
	for _, e := range effects {
		if e.Resource == ResourceCO2 || e.Resource == ResourceOxygen {
			t.Errorf("did not expect gas effect without water, got %v", e)
		}
	}
}

func TestDecayEffectsScalesWithTemperature(t *testing.T) {
	tun := DefaultTunableConfig().Decay
	cold := Snapshot{Resources: Resources{Food: 10, Water: 75, Temperature: 15}}
	warm := Snapshot{Resources: Resources{Food: 10, Water: 75, Temperature: 35}}

	var coldDecay, warmDecay float64
	for _, e := range decayEffects(cold, tun) {
		if e.Resource == ResourceFood {
			coldDecay = -e.Delta
		}
	}
	for _, e := range decayEffects(warm, tun) {
		if e.Resource == ResourceFood {
			warmDecay = -e.Delta
		}
	}
	if warmDecay <= coldDecay {
		t.Errorf("expected faster decay at higher temperature: cold=%v warm=%v", coldDecay, warmDecay)
	}
}
