package calibration

import (
	"context"

	"aquasim/simulation"
)

// Run drives a Scenario from tick 0 through MaxTicks (or until ctx is
// cancelled), applying InitialActions before the first tick, firing
// ScriptStep actions at their AtTick, and running the ConditionalRedose
// rule every tick, then evaluates every Assertion against the full
// trajectory.
func Run(ctx context.Context, sc Scenario) (Report, error) {
	snap, err := simulation.NewSimulation(sc.Config)
	if err != nil {
		return Report{}, err
	}

	if sc.Seed != nil {
		snap = sc.Seed(snap)
	}

	for _, action := range sc.InitialActions {
		snap = simulation.ApplyAction(snap, action).State
	}

	history := make([]simulation.Snapshot, 0, sc.MaxTicks+1)
	history = append(history, snap)

	scriptByTick := make(map[int][]simulation.Action, len(sc.Script))
	for _, step := range sc.Script {
		scriptByTick[step.AtTick] = append(scriptByTick[step.AtTick], step.Actions...)
	}

	dosedThisTick := false
	for i := 0; i < sc.MaxTicks; i++ {
		select {
		case <-ctx.Done():
			return buildReport(sc, history), ctx.Err()
		default:
		}

		snap = simulation.Tick(snap, sc.Tunables)

		if actions, ok := scriptByTick[snap.Tick]; ok {
			for _, action := range actions {
				snap = simulation.ApplyAction(snap, action).State
			}
		}

		if sc.Redose != nil {
			dosedThisTick = false
			if sc.Redose.Stop != nil && sc.Redose.Stop(snap) {
				// stop condition reached; no further re-dosing
			} else if sc.Redose.Trigger(snap) && !dosedThisTick {
				if sc.Redose.Apply != nil {
					snap = sc.Redose.Apply(snap)
				} else {
					snap = simulation.ApplyAction(snap, sc.Redose.Dose).State
				}
				dosedThisTick = true
			}
		}

		history = append(history, snap)
	}

	return buildReport(sc, history), nil
}

func buildReport(sc Scenario, history []simulation.Snapshot) Report {
	final := history[len(history)-1]
	report := Report{ScenarioName: sc.Name, TicksRun: len(history) - 1, Final: final}
	for _, a := range sc.Assertions {
		if a.Check(final, history) {
			report.Passed = append(report.Passed, a.Description)
		} else {
			report.Failed = append(report.Failed, a.Description)
		}
	}
	return report
}

// RunBatch runs every scenario concurrently, one goroutine per scenario,
// each owning an independent Snapshot/SimulationConfig pair with no shared
// mutable state (spec.md §5's "host may run multiple simulations
// concurrently" made concrete). A scenario error does not cancel its
// siblings; its Report is simply zero-valued.
func RunBatch(ctx context.Context, scenarios []Scenario) []Report {
	reports := make([]Report, len(scenarios))
	errs := make([]error, len(scenarios))
	runBatchInto(ctx, scenarios, reports, errs)
	return reports
}
