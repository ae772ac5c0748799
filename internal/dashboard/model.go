// Package dashboard implements the interactive terminal operator view
// spec.md's out-of-scope browser UI is explicitly not a substitute for:
// a bubbletea model that steps the simulation core one tick at a time (or
// at a configurable auto-advance speed) and renders resource gauges, alert
// state, and recent log entries, grounded on the teacher's cli.go CLIModel.
package dashboard

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"aquasim/simulation"
)

// tickMsg drives auto-advance, same role as teacher's cli.go tickMsg.
type tickMsg time.Time

var keys = struct {
	quit  key.Binding
	help  key.Binding
	space key.Binding
	enter key.Binding
	view  key.Binding
	auto  key.Binding
	faster key.Binding
	slower key.Binding
}{
	quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	space: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
	enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "step")),
	view:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "cycle view")),
	auto:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle auto-advance")),
	faster: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
	slower: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "slower")),
}

var viewModes = []string{"resources", "equipment", "logs"}

// Model is the bubbletea model for the dashboard, mirroring the shape of
// teacher's CLIModel but over a Snapshot/TunableConfig pair instead of a
// *World.
type Model struct {
	snapshot     simulation.Snapshot
	tunables     simulation.TunableConfig
	width        int
	height       int
	paused       bool
	showHelp     bool
	autoAdvance  bool
	intervalMs   int
	selectedView string
}

// New builds a dashboard Model seeded with an already-created Snapshot.
func New(snap simulation.Snapshot, tunables simulation.TunableConfig) Model {
	return Model{
		snapshot:     snap,
		tunables:     tunables,
		autoAdvance:  true,
		intervalMs:   200,
		selectedView: "resources",
	}
}

func doTick(intervalMs int) tea.Cmd {
	return tea.Tick(time.Duration(intervalMs)*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return doTick(m.intervalMs)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.help):
			m.showHelp = !m.showHelp
		case key.Matches(msg, keys.space):
			m.paused = !m.paused
		case key.Matches(msg, keys.auto):
			m.autoAdvance = !m.autoAdvance
		case key.Matches(msg, keys.enter):
			m.snapshot = simulation.Tick(m.snapshot, m.tunables)
		case key.Matches(msg, keys.view):
			for i, mode := range viewModes {
				if mode == m.selectedView {
					m.selectedView = viewModes[(i+1)%len(viewModes)]
					break
				}
			}
		case key.Matches(msg, keys.faster):
			if m.intervalMs > 20 {
				m.intervalMs -= 20
			}
		case key.Matches(msg, keys.slower):
			m.intervalMs += 20
		}

	case tickMsg:
		if m.autoAdvance && !m.paused {
			m.snapshot = simulation.Tick(m.snapshot, m.tunables)
		}
		cmd = doTick(m.intervalMs)
	}

	return m, cmd
}

func (m Model) View() string {
	if m.showHelp {
		return m.helpView()
	}

	var content string
	switch m.selectedView {
	case "equipment":
		content = m.equipmentView()
	case "logs":
		content = m.logsView()
	default:
		content = m.resourcesView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), content, m.footerView())
}

func (m Model) headerView() string {
	status := "▶ RUNNING"
	if m.paused {
		status = "⏸ PAUSED"
	}
	title := sectionTitle(fmt.Sprintf("🐠 aquasim — tick %s", formatTick(m.snapshot.Tick)))
	info := infoStyle.Render(fmt.Sprintf("%s | view:%s | interval:%dms | plants:%d fish:%d",
		status, m.selectedView, m.intervalMs, len(m.snapshot.Plants), len(m.snapshot.Fish)))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", info)
}

func (m Model) footerView() string {
	return infoStyle.Render("space:pause  enter:step  a:auto  v:view  +/-:speed  ?:help  q:quit")
}

func (m Model) helpView() string {
	lines := []string{
		sectionTitle("aquasim dashboard — keys"),
		"space     pause/resume auto-advance",
		"enter     manual single-tick step",
		"a         toggle auto-advance",
		"v         cycle view (resources/equipment/logs)",
		"+ / -     faster / slower auto-advance",
		"?         toggle this help",
		"q         quit",
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) resourcesView() string {
	r := m.snapshot.Resources
	w := m.snapshot.Resources.Water
	rows := []string{
		gauge("water", r.Water, 0, m.snapshot.Tank.CapacityL, 24, 0, m.snapshot.Tank.CapacityL),
		gauge("temp°C", r.Temperature, 15, 32, 24, 22, 28),
		gauge("pH", r.PH, 4, 9, 24, 6.5, 7.8),
		gauge("O2 mg/L", r.Oxygen, 0, 12, 24, 5, 12),
		gauge("CO2 mg/L", r.CO2, 0, 40, 24, 0, 30),
		gauge("ammonia ppm", simulation.PPM(r.Ammonia, w), 0, 4, 24, 0, 0.25),
		gauge("nitrite ppm", simulation.PPM(r.Nitrite, w), 0, 8, 24, 0, 0.25),
		gauge("nitrate ppm", simulation.PPM(r.Nitrate, w), 0, 80, 24, 0, 40),
		gauge("algae", r.Algae, 0, 100, 24, 0, 60),
		gauge("waste", r.Waste, 0, 100, 24, 0, 60),
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) equipmentView() string {
	eq := m.snapshot.Equipment
	lines := []string{
		sectionTitle("equipment"),
		fmt.Sprintf("heater      enabled=%-5v on=%-5v target=%.1f°C", eq.Heater.Enabled, eq.Heater.IsOn, eq.Heater.TargetTemperature),
		fmt.Sprintf("ato         enabled=%-5v", eq.ATO.Enabled),
		fmt.Sprintf("filter      enabled=%-5v type=%s", eq.Filter.Enabled, eq.Filter.Type),
		fmt.Sprintf("powerhead   enabled=%-5v flow=%.0fgph", eq.Powerhead.Enabled, eq.Powerhead.FlowRateGPH),
		fmt.Sprintf("co2         enabled=%-5v", eq.CO2Generator.Enabled),
		fmt.Sprintf("air pump    enabled=%-5v", eq.AirPump.Enabled),
		fmt.Sprintf("auto-doser  enabled=%-5v", eq.AutoDoser.Enabled),
		fmt.Sprintf("auto-feeder enabled=%-5v", eq.AutoFeeder.Enabled),
		fmt.Sprintf("light       enabled=%-5v", eq.Light.Enabled),
		fmt.Sprintf("lid         type=%s", eq.Lid.Type),
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) logsView() string {
	entries := simulation.RecentLogs(m.snapshot.Logs, 20)
	lines := []string{sectionTitle("recent log entries")}
	for _, e := range entries {
		style, ok := logSeverityStyle[e.Severity]
		if !ok {
			style = infoStyle
		}
		lines = append(lines, style.Render(fmt.Sprintf("[%5d] %-8s %s", e.Tick, e.Severity, e.Message)))
	}
	if len(m.snapshot.AlertState) > 0 {
		active := 0
		for _, v := range m.snapshot.AlertState {
			if v {
				active++
			}
		}
		if active > 0 {
			lines = append(lines, alertStyle.Render(fmt.Sprintf("%d alert(s) active", active)))
		}
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
