package simulation

// Tier controls the causal ordering of effects within a tick. Effects in an
// earlier tier are applied and clamped before any effect in a later tier is
// collected, so later tiers always observe a consistent post-tier state.
type Tier int

const (
	TierImmediate Tier = iota
	TierActive
	TierPassive
)

func (t Tier) String() string {
	switch t {
	case TierImmediate:
		return "immediate"
	case TierActive:
		return "active"
	case TierPassive:
		return "passive"
	default:
		return "unknown"
	}
}

// Resource identifies one scalar in Resources by name. Using a distinct type
// instead of a bare string keeps Effect construction sites self-documenting
// and catches typos the compiler can check.
type Resource string

const (
	ResourceWater       Resource = "water"
	ResourceTemperature Resource = "temperature"
	ResourceFood        Resource = "food"
	ResourceWaste       Resource = "waste"
	ResourceAlgae       Resource = "algae"
	ResourceAmmonia     Resource = "ammonia"
	ResourceNitrite     Resource = "nitrite"
	ResourceNitrate     Resource = "nitrate"
	ResourcePhosphate   Resource = "phosphate"
	ResourcePotassium   Resource = "potassium"
	ResourceIron        Resource = "iron"
	ResourceOxygen      Resource = "oxygen"
	ResourceCO2         Resource = "co2"
	ResourcePH          Resource = "ph"
	ResourceAOB         Resource = "aob"
	ResourceNOB         Resource = "nob"
)

// Effect is an intention to change one scalar resource. Effects never
// mutate a Snapshot directly; the pipeline in tick.go collects them tier by
// tier, applies every effect in a tier additively, then clamps.
type Effect struct {
	Tier     Tier
	Resource Resource
	Delta    float64
	Source   string
	Meta     map[string]any
}

// applyEffects adds every effect's delta onto res, in order (effects on
// independent resources commute, so order among effects targeting different
// resources is immaterial; effects on the same resource are pure sums).
func applyEffects(res Resources, effects []Effect) Resources {
	for _, e := range effects {
		switch e.Resource {
		case ResourceWater:
			res.Water += e.Delta
		case ResourceTemperature:
			res.Temperature += e.Delta
		case ResourceFood:
			res.Food += e.Delta
		case ResourceWaste:
			res.Waste += e.Delta
		case ResourceAlgae:
			res.Algae += e.Delta
		case ResourceAmmonia:
			res.Ammonia += e.Delta
		case ResourceNitrite:
			res.Nitrite += e.Delta
		case ResourceNitrate:
			res.Nitrate += e.Delta
		case ResourcePhosphate:
			res.Phosphate += e.Delta
		case ResourcePotassium:
			res.Potassium += e.Delta
		case ResourceIron:
			res.Iron += e.Delta
		case ResourceOxygen:
			res.Oxygen += e.Delta
		case ResourceCO2:
			res.CO2 += e.Delta
		case ResourcePH:
			res.PH += e.Delta
		case ResourceAOB:
			res.AOB += e.Delta
		case ResourceNOB:
			res.NOB += e.Delta
		}
	}
	return res
}

// clampResources silently enforces the range invariants spec.md §3 and §4.1
// require. Clamping never logs — it is the mechanism that absorbs floating
// point drift, not a reportable condition.
func clampResources(res Resources, tank Tank) Resources {
	res.Water = clamp(res.Water, 0, tank.CapacityL)
	res.Temperature = clamp(res.Temperature, 0, 50)
	res.Food = maxZero(res.Food)
	res.Waste = maxZero(res.Waste)
	res.Algae = clamp(res.Algae, 0, 100)
	res.Ammonia = maxZero(res.Ammonia)
	res.Nitrite = maxZero(res.Nitrite)
	res.Nitrate = maxZero(res.Nitrate)
	res.Phosphate = maxZero(res.Phosphate)
	res.Potassium = maxZero(res.Potassium)
	res.Iron = maxZero(res.Iron)
	res.Oxygen = maxZero(res.Oxygen)
	res.CO2 = maxZero(res.CO2)
	res.PH = clamp(res.PH, 0, 14)
	maxBacteria := res.Surface * bacteriaPerCm2Fallback
	res.AOB = clamp(res.AOB, 0, maxBacteria)
	res.NOB = clamp(res.NOB, 0, maxBacteria)
	return res
}

// bacteriaPerCm2Fallback backs clampResources, which has no TunableConfig in
// scope; tick.go re-clamps bacteria populations against the real
// configured BacteriaPerCm2 immediately after nitrogen.go runs, so this
// value only needs to be a generous upper bound.
const bacteriaPerCm2Fallback = 10

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
