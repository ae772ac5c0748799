package simulation

import "testing"

func TestScheduleValidate(t *testing.T) {
	cases := []struct {
		name    string
		sched   Schedule
		wantErr bool
	}{
		{"valid", Schedule{StartHour: 8, Duration: 10}, false},
		{"start hour too low", Schedule{StartHour: -1, Duration: 1}, true},
		{"start hour too high", Schedule{StartHour: 24, Duration: 1}, true},
		{"zero duration", Schedule{StartHour: 0, Duration: 0}, true},
		{"duration too long", Schedule{StartHour: 0, Duration: 25}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.sched.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestScheduleActiveWraparound(t *testing.T) {
	s := Schedule{StartHour: 22, Duration: 4} // active 22,23,0,1
	for _, hour := range []int{22, 23, 0, 1} {
		if !s.Active(hour) {
			t.Errorf("expected hour %d to be active", hour)
		}
	}
	for _, hour := range []int{2, 10, 21} {
		if s.Active(hour) {
			t.Errorf("expected hour %d to be inactive", hour)
		}
	}
}

func TestHeaterEffectsHeatsTowardTarget(t *testing.T) {
	s := Snapshot{
		Tank:      Tank{CapacityL: 75},
		Resources: Resources{Temperature: 20},
		Equipment: EquipmentSet{Heater: HeaterState{HeaterConfig: HeaterConfig{Enabled: true, TargetTemperature: 25, WattageW: 100}}},
	}
	effects, state := heaterEffects(s)
	if !state.IsOn {
		t.Error("heater should report IsOn while below target")
	}
	if len(effects) != 1 || effects[0].Delta <= 0 {
		t.Errorf("expected positive heating delta, got %v", effects)
	}
}

func TestHeaterEffectsOffAtTarget(t *testing.T) {
	s := Snapshot{
		Tank:      Tank{CapacityL: 75},
		Resources: Resources{Temperature: 25},
		Equipment: EquipmentSet{Heater: HeaterState{HeaterConfig: HeaterConfig{Enabled: true, TargetTemperature: 25, WattageW: 100}}},
	}
	effects, state := heaterEffects(s)
	if state.IsOn {
		t.Error("heater should not report IsOn once at target")
	}
	if effects != nil {
		t.Errorf("expected no effects at target temperature, got %v", effects)
	}
}

func TestATOEffectsTopsOffBelowThreshold(t *testing.T) {
	s := Snapshot{
		Tank:        Tank{CapacityL: 100},
		Resources:   Resources{Water: 90, Temperature: 25},
		Environment: Environment{TapWaterTemperature: 20},
		Equipment:   EquipmentSet{ATO: ATOState{ATOConfig: ATOConfig{Enabled: true}}},
	}
	effects := atoEffects(s)
	var waterDelta float64
	for _, e := range effects {
		if e.Resource == ResourceWater {
			waterDelta = e.Delta
		}
	}
	if waterDelta <= 0 {
		t.Errorf("expected ATO to add water below 99%% capacity, got delta %v", waterDelta)
	}
}

func TestATOEffectsNoOpNearFull(t *testing.T) {
	s := Snapshot{
		Tank:      Tank{CapacityL: 100},
		Resources: Resources{Water: 99.5},
		Equipment: EquipmentSet{ATO: ATOState{ATOConfig: ATOConfig{Enabled: true}}},
	}
	if effects := atoEffects(s); effects != nil {
		t.Errorf("expected no ATO effects above 99%% capacity, got %v", effects)
	}
}

func TestEvaporationEffectsRespectsLidMultiplier(t *testing.T) {
	tun := DefaultTunableConfig().Evaporation
	open := Snapshot{
		Tank: Tank{CapacityL: 75}, Resources: Resources{Water: 75, Temperature: 25},
		Environment: Environment{RoomTemperature: 25}, Equipment: EquipmentSet{Lid: LidConfig{Type: LidNone}},
	}
	sealed := open
	sealed.Equipment.Lid = LidConfig{Type: LidSealed}

	openEffects := evaporationEffects(open, tun)
	sealedEffects := evaporationEffects(sealed, tun)
	if sealedEffects != nil {
		t.Errorf("expected no evaporation under a sealed lid, got %v", sealedEffects)
	}
	if openEffects == nil {
		t.Error("expected evaporation with no lid")
	}
}

func TestAutoDoserFiresOncePerDay(t *testing.T) {
	s := Snapshot{
		Equipment: EquipmentSet{AutoDoser: AutoDoserState{AutoDoserConfig: AutoDoserConfig{
			Enabled: true, DoseAmountMl: 5, Formula: FertilizerFormula{NitratePerMl: 2},
			Schedule: Schedule{StartHour: 9, Duration: 1},
		}}},
	}
	effects, state := autoDoserEffects(s, 9)
	if len(effects) == 0 {
		t.Fatal("expected dosing effects at the scheduled hour")
	}
	if !state.DosedToday {
		t.Error("expected DosedToday to be set")
	}

	s.Equipment.AutoDoser = state
	effects2, _ := autoDoserEffects(s, 9)
	if effects2 != nil {
		t.Error("should not dose twice in the same day")
	}
}

func TestAutoDoserResetsAtMidnight(t *testing.T) {
	s := Snapshot{
		Equipment: EquipmentSet{AutoDoser: AutoDoserState{
			AutoDoserConfig: AutoDoserConfig{Enabled: true, Schedule: Schedule{StartHour: 9, Duration: 1}},
			DosedToday:      true,
		}},
	}
	_, state := autoDoserEffects(s, 0)
	if state.DosedToday {
		t.Error("expected DosedToday to reset at hour 0")
	}
}
