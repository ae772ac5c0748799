package simulation

import "fmt"

// ActionType tags the Action union. Dispatch in ApplyAction is an exhaustive
// switch over these values.
type ActionType string

const (
	ActionTopOff         ActionType = "top_off"
	ActionFeed           ActionType = "feed"
	ActionWaterChange    ActionType = "water_change"
	ActionAddPlant       ActionType = "add_plant"
	ActionRemovePlant    ActionType = "remove_plant"
	ActionAddFish        ActionType = "add_fish"
	ActionRemoveFish     ActionType = "remove_fish"
	ActionScrubAlgae     ActionType = "scrub_algae"
	ActionDose           ActionType = "dose"
	ActionSetEnvironment ActionType = "set_environment"
	ActionSetEquipment   ActionType = "set_equipment"
)

// Action is a tagged union of every user-initiated intervention spec.md
// §4.2 and SPEC_FULL.md §4.2 define. Only the fields relevant to Type are
// read; the zero value of the rest is ignored.
type Action struct {
	Type ActionType

	AmountG      float64 // feed
	Fraction     float64 // waterChange, scrubAlgae
	Species      string  // addPlant, addFish
	InitialSize  float64 // addPlant
	PlantID      int     // removePlant
	FishID       int     // removeFish
	AmountMl     float64 // dose
	Formula      FertilizerFormula

	Environment *Environment // setEnvironment

	EquipmentName string           // setEquipment: "heater", "ato", "filter", ...
	Heater        *HeaterConfig
	ATO           *ATOConfig
	Filter        *FilterConfig
	Powerhead     *PowerheadConfig
	CO2Generator  *CO2GeneratorConfig
	AirPump       *AirPumpConfig
	AutoDoser     *AutoDoserConfig
	AutoFeeder    *AutoFeederConfig
	Light         *LightConfig
	Lid           *LidConfig
}

// ActionResult is what ApplyAction returns: the (possibly unchanged) next
// snapshot and a short human-readable message.
type ActionResult struct {
	State   Snapshot
	Message string
}

// ApplyAction implements the applyAction(state, action) -> {state, message}
// contract (spec.md §4.2/§6). Every branch either returns a new snapshot
// with exactly one appended info log, or returns the input snapshot
// unchanged with a rejection message and no log.
func ApplyAction(s Snapshot, a Action) ActionResult {
	switch a.Type {
	case ActionTopOff:
		return applyTopOff(s)
	case ActionFeed:
		return applyFeed(s, a)
	case ActionWaterChange:
		return applyWaterChange(s, a)
	case ActionAddPlant:
		return applyAddPlant(s, a)
	case ActionRemovePlant:
		return applyRemovePlant(s, a)
	case ActionAddFish:
		return applyAddFish(s, a)
	case ActionRemoveFish:
		return applyRemoveFish(s, a)
	case ActionScrubAlgae:
		return applyScrubAlgae(s, a)
	case ActionDose:
		return applyDose(s, a)
	case ActionSetEnvironment:
		return applySetEnvironment(s, a)
	case ActionSetEquipment:
		return applySetEquipment(s, a)
	default:
		return ActionResult{State: s, Message: "unknown action"}
	}
}

func logged(s Snapshot, message string) Snapshot {
	s.Logs = append(s.Logs, LogEntry{Tick: s.Tick, Source: "user", Severity: SeverityInfo, Message: message})
	return s
}

func applyTopOff(s Snapshot) ActionResult {
	if s.Resources.Water >= s.Tank.CapacityL {
		return ActionResult{State: s, Message: fmt.Sprintf("Water already at capacity (%gL)", s.Tank.CapacityL)}
	}
	next := s.clone()
	next.Resources.Water = next.Tank.CapacityL
	next = logged(next, "topped off water")
	return ActionResult{State: next, Message: "topped off to capacity"}
}

func applyFeed(s Snapshot, a Action) ActionResult {
	if a.AmountG <= 0 {
		return ActionResult{State: s, Message: "feed amount must be positive"}
	}
	next := s.clone()
	next.Resources.Food += a.AmountG
	next = logged(next, "fed tank")
	return ActionResult{State: next, Message: "fed tank"}
}

func applyWaterChange(s Snapshot, a Action) ActionResult {
	if a.Fraction <= 0 || a.Fraction > 1 {
		return ActionResult{State: s, Message: "fraction must be in (0,1]"}
	}
	if s.Resources.Water == 0 {
		return ActionResult{State: s, Message: "no water"}
	}
	next := s.clone()
	f := a.Fraction
	next.Resources.Ammonia *= 1 - f
	next.Resources.Nitrite *= 1 - f
	next.Resources.Nitrate *= 1 - f
	next.Resources.Phosphate *= 1 - f
	next.Resources.Potassium *= 1 - f
	next.Resources.Iron *= 1 - f
	next.Resources.Temperature = (1-f)*s.Resources.Temperature + f*s.Environment.TapWaterTemperature
	next.Resources.PH = (1-f)*s.Resources.PH + f*s.Environment.TapWaterPH
	next = logged(next, "performed water change")
	return ActionResult{State: next, Message: "water change complete"}
}

func applyAddPlant(s Snapshot, a Action) ActionResult {
	cap := maxPlants(s.Tank.CapacityL, 18.927)
	if len(s.Plants) >= cap {
		return ActionResult{State: s, Message: "plant capacity reached"}
	}
	info := lookupPlantSpecies(a.Species)
	if info.RequiresSubstrate != "" && s.Equipment.Substrate.Type != info.RequiresSubstrate {
		return ActionResult{State: s, Message: a.Species + " requires " + substrateRequirementName(info.RequiresSubstrate) + " substrate"}
	}
	size := a.InitialSize
	if size <= 0 {
		size = 50
	}
	next := s.clone()
	plant := Plant{ID: next.allocatePlantID(), Species: a.Species, Size: clamp(size, 0, 200), Condition: 100}
	next.Plants = append(next.Plants, plant)
	next = logged(next, "added plant "+a.Species)
	return ActionResult{State: next, Message: "added " + a.Species}
}

func applyRemovePlant(s Snapshot, a Action) ActionResult {
	idx := -1
	for i, p := range s.Plants {
		if p.ID == a.PlantID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ActionResult{State: s, Message: "not found"}
	}
	next := s.clone()
	next.Plants = append(next.Plants[:idx], next.Plants[idx+1:]...)
	next = logged(next, "removed plant")
	return ActionResult{State: next, Message: "removed plant"}
}

func applyAddFish(s Snapshot, a Action) ActionResult {
	info := lookupFishSpecies(a.Species)
	next := s.clone()
	fish := Fish{ID: next.allocateFishID(), Species: a.Species, MassG: info.DefaultMassG, Health: 100, Hunger: 0}
	next.Fish = append(next.Fish, fish)
	next = logged(next, "added fish "+a.Species)
	return ActionResult{State: next, Message: "added " + a.Species}
}

func applyRemoveFish(s Snapshot, a Action) ActionResult {
	idx := -1
	for i, f := range s.Fish {
		if f.ID == a.FishID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ActionResult{State: s, Message: "not found"}
	}
	next := s.clone()
	next.Fish = append(next.Fish[:idx], next.Fish[idx+1:]...)
	next = logged(next, "removed fish")
	return ActionResult{State: next, Message: "removed fish"}
}

func applyScrubAlgae(s Snapshot, a Action) ActionResult {
	next := s.clone()
	next.Resources.Algae -= next.Resources.Algae * clamp(a.Fraction, 0, 1)
	next = logged(next, "scrubbed algae")
	return ActionResult{State: next, Message: "scrubbed algae"}
}

func applyDose(s Snapshot, a Action) ActionResult {
	next := s.clone()
	f := a.Formula
	next.Resources.Nitrate += f.NitratePerMl * a.AmountMl
	next.Resources.Phosphate += f.PhosphatePerMl * a.AmountMl
	next.Resources.Potassium += f.PotassiumPerMl * a.AmountMl
	next.Resources.Iron += f.IronPerMl * a.AmountMl
	next = logged(next, "dosed fertilizer")
	return ActionResult{State: next, Message: "dosed fertilizer"}
}

func applySetEnvironment(s Snapshot, a Action) ActionResult {
	if a.Environment == nil {
		return ActionResult{State: s, Message: "no environment payload"}
	}
	next := s.clone()
	next.Environment = *a.Environment
	next = logged(next, "updated environment settings")
	return ActionResult{State: next, Message: "environment updated"}
}

func applySetEquipment(s Snapshot, a Action) ActionResult {
	next := s.clone()
	switch a.EquipmentName {
	case "heater":
		if a.Heater == nil || a.Heater.WattageW < 0 || a.Heater.TargetTemperature < 0 || a.Heater.TargetTemperature > 50 {
			return ActionResult{State: s, Message: "invalid heater configuration"}
		}
		next.Equipment.Heater.HeaterConfig = *a.Heater
	case "ato":
		if a.ATO == nil {
			return ActionResult{State: s, Message: "invalid ato configuration"}
		}
		next.Equipment.ATO.ATOConfig = *a.ATO
	case "filter":
		if a.Filter == nil {
			return ActionResult{State: s, Message: "invalid filter configuration"}
		}
		next.Equipment.Filter = *a.Filter
	case "powerhead":
		if a.Powerhead == nil || a.Powerhead.FlowRateGPH < 0 {
			return ActionResult{State: s, Message: "invalid powerhead configuration"}
		}
		next.Equipment.Powerhead = *a.Powerhead
	case "co2_generator":
		if a.CO2Generator == nil {
			return ActionResult{State: s, Message: "invalid co2 generator configuration"}
		}
		if a.CO2Generator.Enabled {
			if err := a.CO2Generator.Schedule.Validate(); err != nil {
				return ActionResult{State: s, Message: "invalid co2 generator schedule"}
			}
		}
		next.Equipment.CO2Generator.CO2GeneratorConfig = *a.CO2Generator
	case "air_pump":
		if a.AirPump == nil {
			return ActionResult{State: s, Message: "invalid air pump configuration"}
		}
		next.Equipment.AirPump = *a.AirPump
	case "auto_doser":
		if a.AutoDoser == nil {
			return ActionResult{State: s, Message: "invalid auto-doser configuration"}
		}
		if a.AutoDoser.Enabled {
			if err := a.AutoDoser.Schedule.Validate(); err != nil {
				return ActionResult{State: s, Message: "invalid auto-doser schedule"}
			}
		}
		next.Equipment.AutoDoser.AutoDoserConfig = *a.AutoDoser
	case "auto_feeder":
		if a.AutoFeeder == nil {
			return ActionResult{State: s, Message: "invalid auto-feeder configuration"}
		}
		if a.AutoFeeder.Enabled {
			if err := a.AutoFeeder.Schedule.Validate(); err != nil {
				return ActionResult{State: s, Message: "invalid auto-feeder schedule"}
			}
		}
		next.Equipment.AutoFeeder.AutoFeederConfig = *a.AutoFeeder
	case "light":
		if a.Light == nil {
			return ActionResult{State: s, Message: "invalid light configuration"}
		}
		if a.Light.Enabled {
			if err := a.Light.Schedule.Validate(); err != nil {
				return ActionResult{State: s, Message: "invalid light schedule"}
			}
		}
		next.Equipment.Light = *a.Light
	case "lid":
		if a.Lid == nil {
			return ActionResult{State: s, Message: "invalid lid configuration"}
		}
		next.Equipment.Lid = *a.Lid
	default:
		return ActionResult{State: s, Message: "unknown equipment " + a.EquipmentName}
	}
	next = logged(next, "updated "+a.EquipmentName+" configuration")
	return ActionResult{State: next, Message: a.EquipmentName + " updated"}
}
