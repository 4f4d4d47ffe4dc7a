package simulator

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"whist/internal/game"
)

// FileConfig is the on-disk simulation configuration.
type FileConfig struct {
	Simulation SimulationSettings `hcl:"simulation,block"`
	Advisor    AdvisorSettings    `hcl:"advisor,block"`
}

// SimulationSettings controls the deal loop
type SimulationSettings struct {
	Deals    int    `hcl:"deals,optional"`
	Seed     int64  `hcl:"seed,optional"`
	Watch    string `hcl:"watch,optional"` // seat the advisor plays for
	LogLevel string `hcl:"log_level,optional"`
}

// AdvisorSettings controls the Monte Carlo lead advisor
type AdvisorSettings struct {
	Iterations int `hcl:"iterations,optional"`
	TimeoutMs  int `hcl:"timeout_ms,optional"`
}

// DefaultFileConfig returns the configuration used when no file exists
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		Simulation: SimulationSettings{
			Deals:    25,
			Seed:     0,
			Watch:    "north",
			LogLevel: "info",
		},
		Advisor: AdvisorSettings{
			Iterations: 100,
			TimeoutMs:  0,
		},
	}
}

// LoadFileConfig loads simulation configuration from an HCL file,
// falling back to defaults when the file is absent.
func LoadFileConfig(filename string) (*FileConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultFileConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	config := DefaultFileConfig()
	if diags := gohcl.DecodeBody(file.Body, nil, config); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration for out-of-range values
func (c *FileConfig) Validate() error {
	if c.Simulation.Deals <= 0 {
		return fmt.Errorf("simulation.deals must be positive, got %d", c.Simulation.Deals)
	}
	if c.Advisor.Iterations <= 0 {
		return fmt.Errorf("advisor.iterations must be positive, got %d", c.Advisor.Iterations)
	}
	if c.Advisor.TimeoutMs < 0 {
		return fmt.Errorf("advisor.timeout_ms cannot be negative, got %d", c.Advisor.TimeoutMs)
	}
	if _, err := game.ParseSeat(c.Simulation.Watch); err != nil {
		return err
	}
	return nil
}
