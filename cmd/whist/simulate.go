package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"whist/internal/game"
	"whist/internal/simulator"
	"whist/internal/statistics"
)

// SimulateCmd runs the multi-deal driver loop.
type SimulateCmd struct {
	Config     string `short:"c" default:"whist.hcl" help:"HCL configuration file"`
	Deals      int    `help:"Number of deals to play (overrides config)"`
	Seed       int64  `help:"Master RNG seed (0 for time-based)"`
	Iterations int    `short:"i" help:"Advisor samples per candidate lead (overrides config)"`
	Watch      string `help:"Seat the advisor plays for (overrides config)"`
	Verbose    bool   `short:"v" help:"Verbose logging"`
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func (cmd *SimulateCmd) Run() error {
	config, err := simulator.LoadFileConfig(cmd.Config)
	if err != nil {
		return err
	}

	// Flags override the file
	if cmd.Deals > 0 {
		config.Simulation.Deals = cmd.Deals
	}
	if cmd.Seed != 0 {
		config.Simulation.Seed = cmd.Seed
	}
	if cmd.Iterations > 0 {
		config.Advisor.Iterations = cmd.Iterations
	}
	if cmd.Watch != "" {
		config.Simulation.Watch = cmd.Watch
	}
	if config.Simulation.Seed == 0 {
		config.Simulation.Seed = time.Now().UnixNano()
	}

	watch, err := game.ParseSeat(config.Simulation.Watch)
	if err != nil {
		return err
	}

	level := log.WarnLevel
	if cmd.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	fmt.Println(titleStyle.Render(fmt.Sprintf(
		"Simulating %d deals, advising %s-%s (seed %d, %d samples/lead)",
		config.Simulation.Deals, watch, watch.Partner(),
		config.Simulation.Seed, config.Advisor.Iterations)))

	start := time.Now()
	sim := simulator.New(simulator.Config{
		Deals:      config.Simulation.Deals,
		Iterations: config.Advisor.Iterations,
		Seed:       config.Simulation.Seed,
		Timeout:    time.Duration(config.Advisor.TimeoutMs) * time.Millisecond,
		Watch:      watch,
		Logger:     logger,
	})
	stats, err := sim.Run()
	if err != nil {
		return err
	}

	printSummary(stats, time.Since(start))
	return nil
}

func printSummary(stats *statistics.Statistics, elapsed time.Duration) {
	fmt.Println()
	fmt.Println(titleStyle.Render("=== RESULTS ==="))
	fmt.Printf("Deals: %d (%d played, %s)\n",
		stats.Deals, stats.Played,
		dimStyle.Render(fmt.Sprintf("%d passed out", stats.PassedOut)))

	lo, hi := stats.ConfidenceInterval95()
	fmt.Printf("Win rate: %s (95%% CI [%.1f%%, %.1f%%])\n",
		winStyle.Render(fmt.Sprintf("%.1f%%", stats.WinRate()*100)),
		lo*100, hi*100)
	fmt.Printf("Tricks/deal: %.2f ± %.2f\n", stats.MeanTricks(), stats.TricksStdDev())
	fmt.Printf("Contracts made: %d/%d\n", stats.ContractsMade, stats.Played)
	if stats.Timeouts > 0 {
		fmt.Printf("Advisor timeouts: %d\n", stats.Timeouts)
	}
	fmt.Println(dimStyle.Render(fmt.Sprintf("Elapsed: %s", elapsed.Round(time.Millisecond))))
}
