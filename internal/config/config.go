package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSystem = "hopf"
	DefaultMethod = "rk45"
	DefaultRelTol = 1e-6
	DefaultAbsTol = 1e-8
)

// Config describes one shooting problem in a YAML file. Empty slices
// mean "use the system's defaults".
type Config struct {
	System         string    `yaml:"system"`
	Method         string    `yaml:"method"`
	RelTol         float64   `yaml:"reltol"`
	AbsTol         float64   `yaml:"abstol"`
	U0             []float64 `yaml:"u0"`
	P0             []float64 `yaml:"p0"`
	TSpan          []float64 `yaml:"tspan"`
	ParameterNames []string  `yaml:"parameter_names"`
}

func DefaultConfig() *Config {
	return &Config{
		System: DefaultSystem,
		Method: DefaultMethod,
		RelTol: DefaultRelTol,
		AbsTol: DefaultAbsTol,
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
