package simulation

import "math"

// Tank is fixed at creation: capacity and the bacterial surface area derived
// from it never change over the snapshot's lifetime.
type Tank struct {
	CapacityL          float64 `json:"capacity_l"`
	HardscapeSlots     int     `json:"hardscape_slots"`
	BacteriaSurfaceCm2 float64 `json:"bacteria_surface_cm2"`
}

// Resources is the per-tick scalar pool spec.md §3 names. Every field except
// Surface, Flow and Light (which passive.go recomputes each tick) is clamped
// by effect.go's clampResources after each tier.
type Resources struct {
	Water       float64 `json:"water"`
	Temperature float64 `json:"temperature"`
	Surface     float64 `json:"surface"`
	Flow        float64 `json:"flow"`
	Light       float64 `json:"light"`
	Food        float64 `json:"food"`
	Waste       float64 `json:"waste"`
	Algae       float64 `json:"algae"`
	Ammonia     float64 `json:"ammonia"`
	Nitrite     float64 `json:"nitrite"`
	Nitrate     float64 `json:"nitrate"`
	Phosphate   float64 `json:"phosphate"`
	Potassium   float64 `json:"potassium"`
	Iron        float64 `json:"iron"`
	Oxygen      float64 `json:"oxygen"`
	CO2         float64 `json:"co2"`
	PH          float64 `json:"ph"`
	AOB         float64 `json:"aob"`
	NOB         float64 `json:"nob"`
}

// ppm converts a dissolved mass (mg) to parts-per-million given the current
// water volume. Returns 0 when there is no water to avoid a division spike.
func ppm(massMg, waterL float64) float64 {
	if waterL <= 0 {
		return 0
	}
	return massMg / waterL
}

// PPM is the exported form of ppm, for hosts rendering ppm readouts from a
// Snapshot's Resources (dashboard, webmonitor) without duplicating the
// conversion.
func PPM(massMg, waterL float64) float64 {
	return ppm(massMg, waterL)
}

// Environment holds the external inputs a user controls directly via the
// setEnvironment action; systems never write to it.
type Environment struct {
	RoomTemperature     float64 `json:"room_temperature"`
	TapWaterTemperature float64 `json:"tap_water_temperature"`
	TapWaterPH          float64 `json:"tap_water_ph"`
	AmbientWasteRate    float64 `json:"ambient_waste_rate"`
}

// Plant is one plant instance tracked by the snapshot.
type Plant struct {
	ID        int     `json:"id"`
	Species   string  `json:"species"`
	Size      float64 `json:"size"`      // 0-200%
	Condition float64 `json:"condition"` // 0-100

	// lowSufficiencyTicks counts consecutive ticks the limiting nutrient
	// ratio has been below 1; together with Condition it drives shedding
	// (after ShedTicks) and death (after DeathTicks) in plants.go.
	lowSufficiencyTicks int
}

// Fish is one fish instance tracked by the snapshot.
type Fish struct {
	ID      int     `json:"id"`
	Species string  `json:"species"`
	MassG   float64 `json:"mass_g"`
	Health  float64 `json:"health"` // 0-100
	Hunger  float64 `json:"hunger"` // 0-100
}

// Snapshot is the single immutable value produced and consumed per tick.
// It is never mutated in place; tick() and applyAction() both return a new
// Snapshot built from copies of the previous one's slices and maps.
type Snapshot struct {
	Tick        int               `json:"tick"`
	Tank        Tank              `json:"tank"`
	Resources   Resources         `json:"resources"`
	Environment Environment       `json:"environment"`
	Equipment   EquipmentSet      `json:"equipment"`
	Plants      []Plant           `json:"plants"`
	Fish        []Fish            `json:"fish"`
	AlertState  map[string]bool   `json:"alert_state"`
	Logs        []LogEntry        `json:"logs"`

	nextPlantID int
	nextFishID  int
}

// NewSimulation is the createSimulation(config) -> Snapshot entry point.
// It validates the config, derives the tank's fixed geometry, and returns a
// tick-0 snapshot with every resource at a sensible rest value.
func NewSimulation(cfg SimulationConfig) (Snapshot, error) {
	if err := cfg.Validate(); err != nil {
		return Snapshot{}, err
	}

	tank := Tank{
		CapacityL:          cfg.TankCapacity,
		HardscapeSlots:     hardscapeSlots(cfg.TankCapacity),
		BacteriaSurfaceCm2: bacteriaSurfaceCm2(cfg.TankCapacity),
	}

	snap := Snapshot{
		Tick: 0,
		Tank: tank,
		Resources: Resources{
			Water:       cfg.TankCapacity,
			Temperature: cfg.InitialTemperature,
			Oxygen:      7.5,
			CO2:         4,
			PH:          cfg.TapWaterPH,
		},
		Environment: Environment{
			RoomTemperature:     cfg.RoomTemperature,
			TapWaterTemperature: cfg.TapWaterTemperature,
			TapWaterPH:          cfg.TapWaterPH,
			AmbientWasteRate:    cfg.AmbientWasteRate,
		},
		Equipment:  newEquipmentSet(cfg),
		Plants:     nil,
		Fish:       nil,
		AlertState: make(map[string]bool),
		Logs:       nil,
	}
	snap.Resources = recomputePassiveResources(snap, tank, 0)
	return snap, nil
}

// hardscapeSlots implements spec.md §3: min(8, floor(capacity/3.785 · 2)).
func hardscapeSlots(capacityL float64) int {
	slots := int(math.Floor(capacityL / 3.785 * 2))
	if slots > 8 {
		return 8
	}
	if slots < 0 {
		return 0
	}
	return slots
}

// bacteriaSurfaceCm2 approximates a 2:1:1 rectangular open-top box: if
// volume V = 2w·w·w = 2w^3, w = (V/2)^(1/3); surface = floor(bottom) + 4
// walls, open top. Capacity is in liters (1 L = 1000 cm^3).
func bacteriaSurfaceCm2(capacityL float64) float64 {
	volumeCm3 := capacityL * 1000
	w := math.Cbrt(volumeCm3 / 2)
	length := 2 * w
	height := w
	bottom := length * w
	frontBack := 2 * (length * height)
	leftRight := 2 * (w * height)
	return bottom + frontBack + leftRight
}

// clone returns a deep-enough copy of the snapshot for the copy-on-write
// semantics spec.md §3/§9 require: slices and the alert map are copied so
// mutating the result never observably affects the input.
func (s Snapshot) clone() Snapshot {
	out := s
	out.Plants = append([]Plant(nil), s.Plants...)
	out.Fish = append([]Fish(nil), s.Fish...)
	out.Logs = append([]LogEntry(nil), s.Logs...)
	out.AlertState = make(map[string]bool, len(s.AlertState))
	for k, v := range s.AlertState {
		out.AlertState[k] = v
	}
	out.Equipment.Hardscape.Items = append([]HardscapeItem(nil), s.Equipment.Hardscape.Items...)
	return out
}

func (s *Snapshot) allocatePlantID() int {
	id := s.nextPlantID
	s.nextPlantID++
	return id
}

func (s *Snapshot) allocateFishID() int {
	id := s.nextFishID
	s.nextFishID++
	return id
}

// maxPlants implements spec.md §4.2 addPlant capacity check: 3 plants per
// ~18.927 L (five US gallons), floored.
func maxPlants(capacityL float64, perLiters float64) int {
	if perLiters <= 0 {
		return 0
	}
	return int(math.Floor(capacityL/perLiters)) * 3
}

// totalPlantSize sums plant Size (used by photosynthesis/algae coupling).
func totalPlantSize(plants []Plant) float64 {
	var total float64
	for _, p := range plants {
		total += p.Size
	}
	return total
}
