package config

import (
	"fmt"
	"os"

	"github.com/VJota108/janus/pkg/fabric"
	"github.com/VJota108/janus/pkg/plan"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk description of a fabric and how to plan over it
type Config struct {
	Fabric fabric.Shape `yaml:"fabric"`
	Plan   PlanConfig   `yaml:"plan"`
}

// PlanConfig holds the planner settings
type PlanConfig struct {
	// Degrees holds one degree of freedom per redundancy group
	Degrees []int `yaml:"degrees"`
	// Rounding is "ceil" (default) or "floor"
	Rounding string `yaml:"rounding,omitempty"`
}

// Load reads and validates a YAML configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML configuration
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Fabric = cfg.Fabric.WithDefaults()
	if cfg.Plan.Rounding == "" {
		cfg.Plan.Rounding = "ceil"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if err := c.Fabric.Validate(); err != nil {
		return fmt.Errorf("invalid fabric: %w", err)
	}
	if len(c.Plan.Degrees) == 0 {
		return fmt.Errorf("invalid plan: at least one degree of freedom is required")
	}
	for i, d := range c.Plan.Degrees {
		if d < 0 {
			return fmt.Errorf("invalid plan: degree %d is negative (%d)", i, d)
		}
	}
	if _, err := plan.ParseRounding(c.Plan.Rounding); err != nil {
		return fmt.Errorf("invalid plan: %w", err)
	}
	return nil
}

// PlannerOptions returns planner options for the configured rounding
func (c *Config) PlannerOptions() (plan.Options, error) {
	rounding, err := plan.ParseRounding(c.Plan.Rounding)
	if err != nil {
		return plan.Options{}, err
	}
	return plan.Options{Rounding: rounding}, nil
}

// NewPlanner builds the configured planner over the given inventory
func (c *Config) NewPlanner(net *fabric.Jupiter) (*plan.JupiterPlanner, error) {
	opts, err := c.PlannerOptions()
	if err != nil {
		return nil, err
	}
	return plan.NewJupiterPlanner(net.Switches(), c.Plan.Degrees, opts)
}
