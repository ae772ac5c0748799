package simulation

import "testing"

func TestDefaultSimulationConfigValid(t *testing.T) {
	cfg := DefaultSimulationConfig(75)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got: %v", err)
	}
	if cfg.TankCapacity != 75 {
		t.Errorf("TankCapacity = %v, want 75", cfg.TankCapacity)
	}
}

func TestSimulationConfigValidation(t *testing.T) {
	base := DefaultSimulationConfig(75)

	cases := []struct {
		name    string
		modify  func(*SimulationConfig)
		wantErr bool
	}{
		{"zero capacity", func(c *SimulationConfig) { c.TankCapacity = 0 }, true},
		{"negative capacity", func(c *SimulationConfig) { c.TankCapacity = -10 }, true},
		{"temperature too low", func(c *SimulationConfig) { c.InitialTemperature = -1 }, true},
		{"temperature too high", func(c *SimulationConfig) { c.InitialTemperature = 51 }, true},
		{"negative heater wattage", func(c *SimulationConfig) { c.Heater.WattageW = -1 }, true},
		{"invalid light schedule", func(c *SimulationConfig) {
			c.Light.Enabled = true
			c.Light.Schedule = Schedule{StartHour: 25, Duration: 1}
		}, true},
		{"invalid light schedule ignored when disabled", func(c *SimulationConfig) {
			c.Light.Enabled = false
			c.Light.Schedule = Schedule{StartHour: 25, Duration: 1}
		}, false},
		{"unchanged default", func(c *SimulationConfig) {}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestDefaultTunableConfigPositiveRates(t *testing.T) {
	tun := DefaultTunableConfig()
	if tun.Evaporation.BaseRatePerDay <= 0 {
		t.Error("Evaporation.BaseRatePerDay should be positive")
	}
	if tun.Nitrogen.BacteriaPerCm2 <= 0 {
		t.Error("Nitrogen.BacteriaPerCm2 should be positive")
	}
	if tun.MaxLogEntries <= 0 {
		t.Error("MaxLogEntries should be positive")
	}
}
