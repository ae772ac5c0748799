package simulation

import "errors"

// Sentinel errors returned by NewSimulation when a SimulationConfig fails
// structural validation. Action rejections never use these — they report
// through the ActionResult message instead (see actions.go).
var (
	ErrInvalidCapacity    = errors.New("simulation: tank capacity must be positive")
	ErrInvalidTemperature = errors.New("simulation: initial temperature out of range")
	ErrInvalidSchedule    = errors.New("simulation: equipment schedule out of range")
	ErrInvalidEquipment   = errors.New("simulation: equipment configuration invalid")
)
