package simulation

// alertID identifies one registered alert; also the AlertState map key.
type alertID string

const (
	AlertWaterLevelCritical alertID = "water_level_critical"
	AlertHighAlgae          alertID = "high_algae"
	AlertHighAmmonia        alertID = "high_ammonia"
	AlertHighNitrite        alertID = "high_nitrite"
	AlertHighNitrate        alertID = "high_nitrate"
	AlertLowOxygen          alertID = "low_oxygen"
	AlertHighCO2            alertID = "high_co2"
)

// alertCheck is a predicate over a Snapshot; true means the condition is
// currently firing.
type alertCheck struct {
	id      alertID
	source  string
	message string
	check   func(Snapshot, AlertTunables) bool
}

var alertRegistry = []alertCheck{
	{
		id:      AlertWaterLevelCritical,
		source:  "evaporation",
		message: "water level critical",
		check: func(s Snapshot, t AlertTunables) bool {
			return s.Tank.CapacityL > 0 && s.Resources.Water/s.Tank.CapacityL < t.WaterLevelCriticalFraction
		},
	},
	{
		id:      AlertHighAlgae,
		source:  "algae",
		message: "algae cover critically high",
		check: func(s Snapshot, t AlertTunables) bool {
			return s.Resources.Algae >= t.HighAlgae
		},
	},
	{
		id:      AlertHighAmmonia,
		source:  "nitrogen_cycle",
		message: "ammonia concentration unsafe",
		check: func(s Snapshot, t AlertTunables) bool {
			return ppm(s.Resources.Ammonia, s.Resources.Water) > t.HighAmmoniaPPM
		},
	},
	{
		id:      AlertHighNitrite,
		source:  "nitrogen_cycle",
		message: "nitrite concentration unsafe",
		check: func(s Snapshot, t AlertTunables) bool {
			return ppm(s.Resources.Nitrite, s.Resources.Water) > t.HighNitritePPM
		},
	},
	{
		id:      AlertHighNitrate,
		source:  "nitrogen_cycle",
		message: "nitrate concentration high",
		check: func(s Snapshot, t AlertTunables) bool {
			return ppm(s.Resources.Nitrate, s.Resources.Water) > t.HighNitratePPM
		},
	},
	{
		id:      AlertLowOxygen,
		source:  "gas_exchange",
		message: "dissolved oxygen low",
		check: func(s Snapshot, t AlertTunables) bool {
			return s.Resources.Oxygen < t.LowOxygenMgL
		},
	},
	{
		id:      AlertHighCO2,
		source:  "gas_exchange",
		message: "co2 concentration high",
		check: func(s Snapshot, t AlertTunables) bool {
			return s.Resources.CO2 > t.HighCO2MgL
		},
	},
}

// evaluateAlerts implements spec.md §4.7: a pure edge-trigger latch. A newly
// true condition logs a warning and sets its flag; a condition that stays
// true logs nothing; a condition that goes false clears its flag silently.
// Returns the updated alert-state map and any new log entries.
func evaluateAlerts(s Snapshot, tick int, t AlertTunables) (map[string]bool, []LogEntry) {
	next := make(map[string]bool, len(alertRegistry))
	var logs []LogEntry
	for _, a := range alertRegistry {
		firing := a.check(s, t)
		wasFiring := s.AlertState[string(a.id)]
		next[string(a.id)] = firing
		if firing && !wasFiring {
			logs = append(logs, LogEntry{Tick: tick, Source: a.source, Severity: SeverityWarning, Message: a.message})
		}
	}
	return next, logs
}

// CheckAlerts implements the external checkAlerts(snapshot) -> {logs,
// alertState} API (spec.md §6) without advancing the tick — useful for the
// host to poll alert state between ticks.
func CheckAlerts(s Snapshot, t TunableConfig) (logs []LogEntry, alertState map[string]bool) {
	return evaluateAlertsPublic(s, t.Alerts)
}

func evaluateAlertsPublic(s Snapshot, t AlertTunables) ([]LogEntry, map[string]bool) {
	next, logs := evaluateAlerts(s, s.Tick, t)
	return logs, next
}
