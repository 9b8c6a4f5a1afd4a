package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ldsim/internal/grid"
)

const (
	DefaultDt    = 0.01
	DefaultT1    = 10.0
	DefaultGridN = 100
)

type Config struct {
	System     string     `yaml:"system"`
	Descriptor string     `yaml:"descriptor"`
	Integrator string     `yaml:"integrator"`
	Method     string     `yaml:"method"`
	Direction  string     `yaml:"direction"`
	Dt         float64    `yaml:"dt"`
	T0         float64    `yaml:"t0"`
	T1         float64    `yaml:"t1"`
	Adaptive   bool       `yaml:"adaptive"`
	Tolerance  float64    `yaml:"tolerance"`
	Workers    int        `yaml:"workers"`
	Grid       GridConfig `yaml:"grid"`
}

type GridConfig struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	NX   int     `yaml:"nx"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
	NY   int     `yaml:"ny"`
}

func DefaultConfig() *Config {
	return &Config{
		System:     "duffing",
		Descriptor: "arclength",
		Integrator: "rk4",
		Method:     "augmented",
		Direction:  "both",
		Dt:         DefaultDt,
		T0:         0,
		T1:         DefaultT1,
		Tolerance:  1e-6,
		Grid: GridConfig{
			XMin: -1.6, XMax: 1.6, NX: DefaultGridN,
			YMin: -1.0, YMax: 1.0, NY: DefaultGridN,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildGrid turns the grid section into a mesh of initial conditions.
func (c *Config) BuildGrid() (grid.Grid, error) {
	if c.Grid.NX < 1 || c.Grid.NY < 1 {
		return grid.Grid{}, fmt.Errorf("config: grid needs nx and ny >= 1, got %dx%d", c.Grid.NX, c.Grid.NY)
	}
	return grid.Mesh(
		grid.Axis{Min: c.Grid.XMin, Max: c.Grid.XMax, N: c.Grid.NX},
		grid.Axis{Min: c.Grid.YMin, Max: c.Grid.YMax, N: c.Grid.NY},
	)
}
