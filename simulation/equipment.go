package simulation

import "math"

// Schedule is the half-open [startHour, startHour+duration) mod 24 window
// spec.md §4.3 defines for light, CO2, auto-doser and auto-feeder triggers.
type Schedule struct {
	StartHour int `json:"start_hour"`
	Duration  int `json:"duration"`
}

// Validate reports whether StartHour and Duration are in their documented
// integer ranges.
func (s Schedule) Validate() error {
	if s.StartHour < 0 || s.StartHour > 23 {
		return ErrInvalidSchedule
	}
	if s.Duration < 1 || s.Duration > 24 {
		return ErrInvalidSchedule
	}
	return nil
}

// Active reports whether hour (0-23) falls in the half-open, wrap-around
// window [StartHour, StartHour+Duration) mod 24.
func (s Schedule) Active(hour int) bool {
	offset := ((hour - s.StartHour) % 24 + 24) % 24
	return offset < s.Duration
}

// FilterType enumerates the supported filter media, each with its own
// turnover target and flow cap (spec.md §4.3).
type FilterType string

const (
	FilterSponge   FilterType = "sponge"
	FilterHOB      FilterType = "hob"
	FilterCanister FilterType = "canister"
	FilterSump     FilterType = "sump"
)

var filterTurnoverPerHour = map[FilterType]float64{
	FilterSponge:   4,
	FilterHOB:      6,
	FilterCanister: 8,
	FilterSump:     10,
}

var filterMaxFlowLph = map[FilterType]float64{
	FilterSponge:   200,
	FilterHOB:      600,
	FilterCanister: 1500,
	FilterSump:     3000,
}

var filterSurfaceCm2 = map[FilterType]float64{
	FilterSponge:   300,
	FilterHOB:      150,
	FilterCanister: 800,
	FilterSump:     1200,
}

// LidType enumerates evaporation-dampening lid styles (spec.md §4.5).
type LidType string

const (
	LidNone   LidType = "none"
	LidMesh   LidType = "mesh"
	LidFull   LidType = "full"
	LidSealed LidType = "sealed"
)

var lidEvaporationMultiplier = map[LidType]float64{
	LidNone:   1.0,
	LidMesh:   0.75,
	LidFull:   0.25,
	LidSealed: 0,
}

// SubstrateType enumerates substrate media; each contributes bacterial
// surface area and gates certain plant species (spec.md §4.2 addPlant).
type SubstrateType string

const (
	SubstrateNone    SubstrateType = "none"
	SubstrateGravel  SubstrateType = "gravel"
	SubstrateSand    SubstrateType = "sand"
	SubstrateAquaSoil SubstrateType = "aqua_soil"
)

var substrateSurfacePerLiter = map[SubstrateType]float64{
	SubstrateNone:     0,
	SubstrateGravel:   2,
	SubstrateSand:     1,
	SubstrateAquaSoil: 4,
}

// HardscapeItem is a single decorative/biological-surface-contributing piece
// (driftwood, rock, etc). Kind feeds pH drift (driftwood lowers, calcite
// raises); SurfaceCm2 feeds bacterial surface.
type HardscapeItem struct {
	Kind       string  `json:"kind"` // "driftwood", "calcite", "inert"
	SurfaceCm2 float64 `json:"surface_cm2"`
}

// FertilizerFormula describes milligrams of each nutrient delivered per
// milliliter dosed, used by both the dose action and the auto-doser.
type FertilizerFormula struct {
	NitratePerMl   float64 `json:"nitrate_per_ml"`
	PhosphatePerMl float64 `json:"phosphate_per_ml"`
	PotassiumPerMl float64 `json:"potassium_per_ml"`
	IronPerMl      float64 `json:"iron_per_ml"`
}

// --- per-equipment config ---

type HeaterConfig struct {
	Enabled           bool    `json:"enabled"`
	TargetTemperature float64 `json:"target_temperature"`
	WattageW          float64 `json:"wattage_w"`
}

type ATOConfig struct {
	Enabled bool `json:"enabled"`
}

type FilterConfig struct {
	Enabled bool       `json:"enabled"`
	Type    FilterType `json:"type"`
}

type PowerheadConfig struct {
	Enabled     bool    `json:"enabled"`
	FlowRateGPH float64 `json:"flow_rate_gph"`
}

type CO2GeneratorConfig struct {
	Enabled    bool     `json:"enabled"`
	BubbleRate float64  `json:"bubble_rate"`
	Schedule   Schedule `json:"schedule"`
}

type AirPumpConfig struct {
	Enabled bool `json:"enabled"`
}

type AutoDoserConfig struct {
	Enabled      bool              `json:"enabled"`
	DoseAmountMl float64           `json:"dose_amount_ml"`
	Formula      FertilizerFormula `json:"formula"`
	Schedule     Schedule          `json:"schedule"`
}

type AutoFeederConfig struct {
	Enabled  bool     `json:"enabled"`
	AmountG  float64  `json:"amount_g"`
	Schedule Schedule `json:"schedule"`
}

type LightConfig struct {
	Enabled  bool     `json:"enabled"`
	WattageW float64  `json:"wattage_w"`
	Schedule Schedule `json:"schedule"`
}

type LidConfig struct {
	Type LidType `json:"type"`
}

type SubstrateConfig struct {
	Type SubstrateType `json:"type"`
}

type HardscapeConfig struct {
	Items []HardscapeItem `json:"items"`
}

// --- runtime state that rides along on the Snapshot ---

// EquipmentSet is the named record of every equipment instance a Snapshot
// owns: configuration plus the small amount of runtime state (on/off,
// daily-trigger latches) controllers need to remember between ticks.
type EquipmentSet struct {
	Heater       HeaterState       `json:"heater"`
	ATO          ATOState          `json:"ato"`
	Filter       FilterConfig      `json:"filter"`
	Powerhead    PowerheadConfig   `json:"powerhead"`
	CO2Generator CO2GeneratorState `json:"co2_generator"`
	AirPump      AirPumpConfig     `json:"air_pump"`
	AutoDoser    AutoDoserState    `json:"auto_doser"`
	AutoFeeder   AutoFeederState   `json:"auto_feeder"`
	Light        LightConfig       `json:"light"`
	Lid          LidConfig         `json:"lid"`
	Substrate    SubstrateConfig   `json:"substrate"`
	Hardscape    HardscapeConfig   `json:"hardscape"`
}

type HeaterState struct {
	HeaterConfig
	IsOn bool `json:"is_on"`
}

type ATOState struct {
	ATOConfig
}

type CO2GeneratorState struct {
	CO2GeneratorConfig
}

type AutoDoserState struct {
	AutoDoserConfig
	DosedToday bool `json:"dosed_today"`
}

type AutoFeederState struct {
	AutoFeederConfig
	FedToday bool `json:"fed_today"`
}

func newEquipmentSet(cfg SimulationConfig) EquipmentSet {
	return EquipmentSet{
		Heater:       HeaterState{HeaterConfig: cfg.Heater},
		ATO:          ATOState{ATOConfig: cfg.ATO},
		Filter:       cfg.Filter,
		Powerhead:    cfg.Powerhead,
		CO2Generator: CO2GeneratorState{CO2GeneratorConfig: cfg.CO2Generator},
		AirPump:      cfg.AirPump,
		AutoDoser:    AutoDoserState{AutoDoserConfig: cfg.AutoDoser},
		AutoFeeder:   AutoFeederState{AutoFeederConfig: cfg.AutoFeeder},
		Light:        cfg.Light,
		Lid:          cfg.Lid,
		Substrate:    cfg.Substrate,
		Hardscape:    cfg.Hardscape,
	}
}

// --- immediate-tier controllers ---

// heaterEffects implements spec.md §4.4 Heater: emits a clamped immediate
// temperature delta and reports the isOn hint for the next snapshot.
func heaterEffects(s Snapshot) ([]Effect, HeaterState) {
	state := s.Equipment.Heater
	if !state.Enabled || state.WattageW <= 0 || s.Tank.CapacityL <= 0 {
		state.IsOn = false
		return nil, state
	}
	gap := state.TargetTemperature - s.Resources.Temperature
	if gap <= 0 {
		state.IsOn = false
		return nil, state
	}
	// Heating rate is proportional to wattage per liter, so smaller tanks
	// heat faster for the same wattage; no separate volume exponent is
	// applied.
	heatingRate := (state.WattageW / s.Tank.CapacityL) * 0.02
	delta := math.Min(gap, heatingRate)
	state.IsOn = true
	return []Effect{{
		Tier:     TierImmediate,
		Resource: ResourceTemperature,
		Delta:    delta,
		Source:   "heater",
	}}, state
}

// atoEffects implements spec.md §4.4 ATO: tops off water when below 99% of
// capacity and mass-balance blends the resulting temperature with tap water.
func atoEffects(s Snapshot) []Effect {
	state := s.Equipment.ATO
	if !state.Enabled || s.Tank.CapacityL <= 0 {
		return nil
	}
	if s.Resources.Water/s.Tank.CapacityL >= 0.99 {
		return nil
	}
	added := s.Tank.CapacityL - s.Resources.Water
	if added <= 0 {
		return nil
	}
	current := s.Resources.Water
	total := current + added
	blended := s.Resources.Temperature
	if total > 0 {
		blended = (current*s.Resources.Temperature + added*s.Environment.TapWaterTemperature) / total
	}
	tempDelta := blended - s.Resources.Temperature
	return []Effect{
		{Tier: TierImmediate, Resource: ResourceWater, Delta: added, Source: "ato"},
		{Tier: TierImmediate, Resource: ResourceTemperature, Delta: tempDelta, Source: "ato"},
	}
}

// co2GeneratorEffects implements spec.md §4.4 CO2 generator.
func co2GeneratorEffects(s Snapshot, hourOfDay int) []Effect {
	state := s.Equipment.CO2Generator
	if !state.Enabled || !state.Schedule.Active(hourOfDay) {
		return nil
	}
	return []Effect{{
		Tier:     TierImmediate,
		Resource: ResourceCO2,
		Delta:    state.BubbleRate * 0.5,
		Source:   "co2_generator",
	}}
}

// evaporationEffects implements spec.md §4.5 Evaporation.
func evaporationEffects(s Snapshot, tunables EvaporationTunables) []Effect {
	lidMult, ok := lidEvaporationMultiplier[s.Equipment.Lid.Type]
	if !ok {
		lidMult = 1
	}
	if lidMult == 0 || s.Resources.Water <= 0 {
		return nil
	}
	tempGap := math.Abs(s.Resources.Temperature - s.Environment.RoomTemperature)
	doublings := tempGap / tunables.TempDoublingInterval
	rate := (tunables.BaseRatePerDay / 24) * math.Pow(2, doublings) * lidMult
	loss := s.Resources.Water * rate
	return []Effect{{
		Tier:     TierImmediate,
		Resource: ResourceWater,
		Delta:    -loss,
		Source:   "evaporation",
	}}
}

// --- active-tier controllers ---

// autoDoserEffects implements spec.md §4.4 Auto-doser: fires once per
// simulated day at the schedule's start hour.
func autoDoserEffects(s Snapshot, hourOfDay int) ([]Effect, AutoDoserState) {
	state := s.Equipment.AutoDoser
	if hourOfDay == 0 {
		state.DosedToday = false
	}
	if !state.Enabled || state.DosedToday || hourOfDay != state.Schedule.StartHour {
		return nil, state
	}
	state.DosedToday = true
	f := state.Formula
	amount := state.DoseAmountMl
	return []Effect{
		{Tier: TierActive, Resource: ResourceNitrate, Delta: f.NitratePerMl * amount, Source: "auto_doser"},
		{Tier: TierActive, Resource: ResourcePhosphate, Delta: f.PhosphatePerMl * amount, Source: "auto_doser"},
		{Tier: TierActive, Resource: ResourcePotassium, Delta: f.PotassiumPerMl * amount, Source: "auto_doser"},
		{Tier: TierActive, Resource: ResourceIron, Delta: f.IronPerMl * amount, Source: "auto_doser"},
	}, state
}

// autoFeederEffects implements spec.md §4.4 Auto-feeder, same daily trigger
// shape as the auto-doser.
func autoFeederEffects(s Snapshot, hourOfDay int) ([]Effect, AutoFeederState) {
	state := s.Equipment.AutoFeeder
	if hourOfDay == 0 {
		state.FedToday = false
	}
	if !state.Enabled || state.FedToday || hourOfDay != state.Schedule.StartHour {
		return nil, state
	}
	state.FedToday = true
	return []Effect{{
		Tier:     TierActive,
		Resource: ResourceFood,
		Delta:    state.AmountG,
		Source:   "auto_feeder",
	}}, state
}

// --- passive resource derivation helpers (spec.md §4.3) ---

func filterFlow(t FilterType, capacityL float64) float64 {
	turnover, ok := filterTurnoverPerHour[t]
	if !ok {
		return 0
	}
	cap := filterMaxFlowLph[t]
	return math.Min(capacityL*turnover, cap)
}

func powerheadFlow(gph float64) float64 {
	return gph * 3.785
}

func airPumpFlow(capacityL float64) float64 {
	return capacityL * 0.5
}

func hardscapeSurfaceCm2(items []HardscapeItem) float64 {
	var total float64
	for _, item := range items {
		total += item.SurfaceCm2
	}
	return total
}
