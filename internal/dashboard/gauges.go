package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numberPrinter = message.NewPrinter(language.English)

// formatTick renders a tick count with thousands separators, since long
// calibration runs can reach tens of thousands of ticks.
func formatTick(tick int) string {
	return numberPrinter.Sprintf("%d", tick)
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("235")).
			Padding(0, 1).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	alertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Background(lipgloss.Color("52")).
			Padding(0, 1).
			Bold(true)

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	badStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	logSeverityStyle = map[string]lipgloss.Style{
		"info":     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		"warning":  warnStyle,
		"error":    badStyle,
	}
)

// gauge renders a fixed-width bracketed bar for value within [lo, hi],
// colored good when value lies in [warnLow, warnHigh] and bad otherwise
// (there is no separate warning band), grounded on the
// teacher's lipgloss-styled status indicators in cli.go's headerView.
func gauge(label string, value, lo, hi float64, width int, warnLow, warnHigh float64) string {
	if hi <= lo {
		hi = lo + 1
	}
	frac := (value - lo) / (hi - lo)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	style := okStyle
	if value < warnLow || value > warnHigh {
		style = badStyle
	}

	return fmt.Sprintf("%-10s [%s] %6.2f", label, style.Render(bar), value)
}

func sectionTitle(s string) string {
	return titleStyle.Render(s)
}
