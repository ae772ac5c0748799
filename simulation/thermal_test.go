package simulation

import "testing"

func TestTemperatureDriftPullsTowardRoom(t *testing.T) {
	tun := DefaultTunableConfig().Thermal

	s := Snapshot{
		Tank:        Tank{CapacityL: 75},
		Resources:   Resources{Temperature: 20},
		Environment: Environment{RoomTemperature: 25},
	}
	eff := temperatureDriftEffect(s, tun)
	if eff.Delta <= 0 {
		t.Errorf("expected positive delta warming toward room temp, got %v", eff.Delta)
	}

	s.Resources.Temperature = 30
	eff = temperatureDriftEffect(s, tun)
	if eff.Delta >= 0 {
		t.Errorf("expected negative delta cooling toward room temp, got %v", eff.Delta)
	}
}

func TestTemperatureDriftZeroAtEquilibrium(t *testing.T) {
	tun := DefaultTunableConfig().Thermal
	s := Snapshot{
		Tank:        Tank{CapacityL: 75},
		Resources:   Resources{Temperature: 25},
		Environment: Environment{RoomTemperature: 25},
	}
	if eff := temperatureDriftEffect(s, tun); eff.Delta != 0 {
		t.Errorf("expected zero delta at equilibrium, got %v", eff.Delta)
	}
}

func TestTemperatureDriftDampedByLargerVolume(t *testing.T) {
	tun := DefaultTunableConfig().Thermal
	small := Snapshot{
		Tank:        Tank{CapacityL: 20},
		Resources:   Resources{Temperature: 20},
		Environment: Environment{RoomTemperature: 25},
	}
	large := Snapshot{
		Tank:        Tank{CapacityL: 200},
		Resources:   Resources{Temperature: 20},
		Environment: Environment{RoomTemperature: 25},
	}
	smallDelta := temperatureDriftEffect(small, tun).Delta
	largeDelta := temperatureDriftEffect(large, tun).Delta
	if largeDelta >= smallDelta {
		t.Errorf("larger tank should drift slower: small=%v large=%v", smallDelta, largeDelta)
	}
}
