package simulation

// SimulationConfig is the immutable recipe a Snapshot is created from.
// Mirrors the nested-by-concern shape of a typical simulator config: one
// struct per subsystem, JSON tags for the host's persistence adapter, and a
// DefaultSimulationConfig() factory that returns a fully populated default
// config for a given capacity.
type SimulationConfig struct {
	TankCapacity        float64 `json:"tank_capacity"`
	InitialTemperature  float64 `json:"initial_temperature"`
	RoomTemperature     float64 `json:"room_temperature"`
	TapWaterTemperature float64 `json:"tap_water_temperature"`
	TapWaterPH          float64 `json:"tap_water_ph"`
	AmbientWasteRate    float64 `json:"ambient_waste_rate"`

	Heater       HeaterConfig       `json:"heater"`
	ATO          ATOConfig          `json:"ato"`
	Filter       FilterConfig       `json:"filter"`
	Powerhead    PowerheadConfig    `json:"powerhead"`
	CO2Generator CO2GeneratorConfig `json:"co2_generator"`
	AirPump      AirPumpConfig      `json:"air_pump"`
	AutoDoser    AutoDoserConfig    `json:"auto_doser"`
	AutoFeeder   AutoFeederConfig   `json:"auto_feeder"`
	Light        LightConfig        `json:"light"`
	Lid          LidConfig          `json:"lid"`
	Substrate    SubstrateConfig    `json:"substrate"`
	Hardscape    HardscapeConfig    `json:"hardscape"`
}

// DefaultSimulationConfig returns a config with every default spec.md §6
// names. Callers override only the fields they care about before passing
// the result to NewSimulation.
func DefaultSimulationConfig(tankCapacity float64) SimulationConfig {
	return SimulationConfig{
		TankCapacity:        tankCapacity,
		InitialTemperature:  25,
		RoomTemperature:     22,
		TapWaterTemperature: 18,
		TapWaterPH:          7.0,
		AmbientWasteRate:    0,

		Heater: HeaterConfig{
			Enabled:           true,
			TargetTemperature: 25,
			WattageW:          100,
		},
		ATO: ATOConfig{Enabled: false},
		Filter: FilterConfig{
			Enabled: true,
			Type:    FilterSponge,
		},
		Powerhead: PowerheadConfig{Enabled: false, FlowRateGPH: 400},
		CO2Generator: CO2GeneratorConfig{
			Enabled:    false,
			BubbleRate: 1,
			Schedule:   Schedule{StartHour: 8, Duration: 10},
		},
		AirPump: AirPumpConfig{Enabled: false},
		AutoDoser: AutoDoserConfig{
			Enabled:     false,
			DoseAmountMl: 0,
			Formula:     FertilizerFormula{},
			Schedule:    Schedule{StartHour: 9, Duration: 1},
		},
		AutoFeeder: AutoFeederConfig{
			Enabled:  false,
			AmountG:  0,
			Schedule: Schedule{StartHour: 8, Duration: 1},
		},
		Light: LightConfig{
			Enabled:  true,
			WattageW: 100,
			Schedule: Schedule{StartHour: 8, Duration: 10},
		},
		Lid:       LidConfig{Type: LidNone},
		Substrate: SubstrateConfig{Type: SubstrateNone},
		Hardscape: HardscapeConfig{Items: nil},
	}
}

// Validate reports a structural problem with the config (not a biological
// one — out-of-range biochemistry clamps silently, see effect.go). Mirrors
// the teacher's SimulationConfig.Validate() error-returning path; apart from
// the write error Save passes through, this is the only place the core
// returns a Go error rather than an action message.
func (c SimulationConfig) Validate() error {
	if c.TankCapacity <= 0 {
		return ErrInvalidCapacity
	}
	if c.InitialTemperature < 0 || c.InitialTemperature > 50 {
		return ErrInvalidTemperature
	}
	if err := c.Light.Schedule.Validate(); c.Light.Enabled && err != nil {
		return ErrInvalidSchedule
	}
	if err := c.CO2Generator.Schedule.Validate(); c.CO2Generator.Enabled && err != nil {
		return ErrInvalidSchedule
	}
	if c.Heater.WattageW < 0 {
		return ErrInvalidEquipment
	}
	return nil
}

// TunableConfig holds every named biochemical/equipment rate constant the
// systems in this package read. It is read-only during a tick (spec §5) and
// may be overridden wholesale per run — e.g. by the calibration harness —
// without touching SimulationConfig, which only describes the tank and its
// installed equipment.
type TunableConfig struct {
	Evaporation    EvaporationTunables
	Thermal        ThermalTunables
	Decay          DecayTunables
	Nitrogen       NitrogenTunables
	GasExchange    GasExchangeTunables
	Algae          AlgaeTunables
	Photosynthesis PhotosynthesisTunables
	Nutrients      NutrientTunables
	PH             PHTunables
	Plant          PlantTunables
	Fish           FishTunables
	Alerts         AlertTunables
	MaxLogEntries  int
}

type EvaporationTunables struct {
	BaseRatePerDay       float64 // fraction of water volume per day at equal temps
	TempDoublingInterval float64 // °C gap that doubles the rate
}

type ThermalTunables struct {
	ReferenceVolumeL float64
	VolumeExponent   float64
	DriftCoefficient float64 // per-hour Newton-cooling coefficient at ReferenceVolumeL
}

type DecayTunables struct {
	BaseDecayRate          float64 // fraction of food decaying per tick at 25C
	Q10                    float64
	WasteFraction          float64 // fraction of decayed mass becoming waste
	GasExchangePerGramDecay float64
}

type NitrogenTunables struct {
	WasteConversionRate   float64 // fraction of waste mineralized per tick
	WasteToAmmoniaRatio   float64
	AOBProcessingRate     float64
	NOBProcessingRate     float64
	SpawnThresholdPPM     float64
	SpawnAmount           float64
	GrowthRate            float64
	DeathRate             float64
	FoodThresholdPPM      float64
	BacteriaPerCm2        float64
}

type GasExchangeTunables struct {
	CO2AtmosphericMgL float64
	BaseExchangeRate  float64 // per-hour rate at flowFactor==1
	AerationBonus     float64 // extra flowFactor contributed by sponge filter/air pump
}

type AlgaeTunables struct {
	MaxGrowthRate   float64
	HalfSaturation  float64 // watts/liter at half-max growth
	Cap             float64
}

type PhotosynthesisTunables struct {
	BaseRate             float64
	OptimalCO2MgL        float64
	OptimalNitratePPM    float64
	RespirationBaseRate  float64
	RespirationQ10       float64
	BiomassPerUnitEnergy float64
}

type NutrientTunables struct {
	OptimalNitratePPM   float64
	OptimalPhosphatePPM float64
	OptimalPotassiumPPM float64
	OptimalIronPPM      float64
	ConditionStep       float64
	ConditionDecayStep  float64
	ShedThreshold       float64
	ShedTicks           int
	DeathTicks          int
}

type PHTunables struct {
	DriftRate          float64
	DriftwoodDelta     float64
	CalciteDelta       float64
	CO2SensitivityRate float64
}

type PlantTunables struct {
	GrowthRate          float64
	MaxPlants18L         float64 // plants allowed per this many liters (3 per 18.927L)
}

type FishTunables struct {
	O2ConsumptionPerGram   float64
	FoodConsumptionPerGram float64
	HungerRisePerTick      float64
	HealthRecoveryRate     float64
	HealthDeclineRate      float64
	StressAmmoniaPPM       float64
	WasteExcretionFraction float64
}

type AlertTunables struct {
	WaterLevelCriticalFraction float64
	HighAlgae                  float64
	HighAmmoniaPPM             float64
	HighNitritePPM             float64
	HighNitratePPM             float64
	LowOxygenMgL               float64
	HighCO2MgL                 float64
}

// DefaultTunableConfig returns the published constants spec.md §4.5
// describes (base rates, Q10s, half-saturations) and the alert thresholds
// spec.md §4.7 names.
func DefaultTunableConfig() TunableConfig {
	return TunableConfig{
		Evaporation: EvaporationTunables{
			BaseRatePerDay:       0.01,
			TempDoublingInterval: 10,
		},
		Thermal: ThermalTunables{
			ReferenceVolumeL: 100,
			VolumeExponent:   0.5,
			DriftCoefficient: 0.02,
		},
		Decay: DecayTunables{
			BaseDecayRate:           0.05,
			Q10:                     2,
			WasteFraction:           0.4,
			GasExchangePerGramDecay: 0.3,
		},
		Nitrogen: NitrogenTunables{
			WasteConversionRate: 0.3,
			WasteToAmmoniaRatio: 0.5,
			AOBProcessingRate:   0.02,
			NOBProcessingRate:   0.02,
			SpawnThresholdPPM:   0.25,
			SpawnAmount:         1,
			GrowthRate:          0.06,
			DeathRate:           0.04,
			FoodThresholdPPM:    0.05,
			BacteriaPerCm2:      0.02,
		},
		GasExchange: GasExchangeTunables{
			CO2AtmosphericMgL: 4,
			BaseExchangeRate:  0.05,
			AerationBonus:     0.5,
		},
		Algae: AlgaeTunables{
			MaxGrowthRate:  0.8,
			HalfSaturation: 0.3,
			Cap:            100,
		},
		Photosynthesis: PhotosynthesisTunables{
			BaseRate:             0.01,
			OptimalCO2MgL:        20,
			OptimalNitratePPM:    20,
			RespirationBaseRate:  0.002,
			RespirationQ10:       2,
			BiomassPerUnitEnergy: 0.5,
		},
		Nutrients: NutrientTunables{
			OptimalNitratePPM:   20,
			OptimalPhosphatePPM: 2,
			OptimalPotassiumPPM: 15,
			OptimalIronPPM:      0.2,
			ConditionStep:       0.5,
			ConditionDecayStep:  1.0,
			ShedThreshold:       0.4,
			ShedTicks:           48,
			DeathTicks:          168,
		},
		PH: PHTunables{
			DriftRate:          0.01,
			DriftwoodDelta:     -0.3,
			CalciteDelta:       0.3,
			CO2SensitivityRate: 0.02,
		},
		Plant: PlantTunables{
			GrowthRate:   0.01,
			MaxPlants18L: 18.927,
		},
		Fish: FishTunables{
			O2ConsumptionPerGram:   0.002,
			FoodConsumptionPerGram: 0.01,
			HungerRisePerTick:      1.5,
			HealthRecoveryRate:     1.0,
			HealthDeclineRate:      2.0,
			StressAmmoniaPPM:       0.05,
			WasteExcretionFraction: 0.3,
		},
		Alerts: AlertTunables{
			WaterLevelCriticalFraction: 0.20,
			HighAlgae:                  80,
			HighAmmoniaPPM:             0.02,
			HighNitritePPM:             0.1,
			HighNitratePPM:             80,
			LowOxygenMgL:               4,
			HighCO2MgL:                 30,
		},
		MaxLogEntries: defaultMaxLogEntries,
	}
}
