package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"aquasim/internal/calibration"
	"aquasim/internal/dashboard"
	"aquasim/internal/webmonitor"
	"aquasim/simulation"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "dashboard":
		runDashboard(os.Args[2:])
	case "serve":
		runServe(os.Args[2:])
	case "calibrate":
		runCalibrate(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("aquasim — planted-aquarium simulation core, operator tooling")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  aquasim dashboard [--capacity L]     interactive terminal dashboard")
	fmt.Println("  aquasim serve [--addr :8080]         websocket + status web monitor")
	fmt.Println("  aquasim calibrate [--scenario name]  run a calibration scenario")
	fmt.Println()
	fmt.Println("Controls (dashboard): space pause, enter step, a auto-advance,")
	fmt.Println("v cycle view, +/- speed, ? help, q quit.")
}

func runDashboard(args []string) {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	capacity := fs.Float64("capacity", 75, "tank capacity in liters")
	_ = fs.Parse(args)

	snap, cfg := newSeededSimulation(*capacity)
	m := dashboard.New(snap, cfg)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("dashboard exited with error: %v", err)
	}
}

func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":8080", "listen address")
	capacity := fs.Float64("capacity", 75, "tank capacity in liters")
	_ = fs.Parse(args)

	snap, cfg := newSeededSimulation(*capacity)
	srv := webmonitor.NewServer(snap, cfg)
	if err := srv.Run(*addr); err != nil {
		log.Fatalf("web monitor exited with error: %v", err)
	}
}

func runCalibrate(args []string) {
	fs := flag.NewFlagSet("calibrate", flag.ExitOnError)
	scenario := fs.String("scenario", "fishless_cycle", "scenario to run")
	_ = fs.Parse(args)

	var sc calibration.Scenario
	switch *scenario {
	case "fishless_cycle":
		sc = calibration.FishlessCycleScenario()
	default:
		log.Fatalf("unknown scenario %q", *scenario)
	}

	report, err := calibration.Run(context.Background(), sc)
	if err != nil {
		log.Fatalf("scenario %s errored: %v", sc.Name, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(report)

	if !report.AllPassed() {
		os.Exit(1)
	}
}

func newSeededSimulation(capacityL float64) (simulation.Snapshot, simulation.TunableConfig) {
	cfg := simulation.DefaultSimulationConfig(capacityL)
	tunables := simulation.DefaultTunableConfig()
	snap, err := simulation.NewSimulation(cfg)
	if err != nil {
		log.Fatalf("invalid simulation config: %v", err)
	}
	return snap, tunables
}
