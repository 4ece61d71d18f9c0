package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultGravity    = 9.80665
	DefaultSamples    = 81
	DefaultAngleDeg   = 45.0
	DefaultSpeed      = 10.0
	DefaultSpanEnd    = 4.0
	DefaultMoles      = 1.0
	DefaultTempKelvin = 273.15
	DefaultVolume     = 0.0224
)

// Config is a YAML scenario file for the physkit CLI. Only the section
// matching the invoked subcommand is read.
type Config struct {
	Beam       BeamConfig       `yaml:"beam"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Gas        GasConfig        `yaml:"gas"`
}

// BeamConfig describes a two-support beam and its loading.
type BeamConfig struct {
	SupportA float64      `yaml:"support_a"`
	SupportB float64      `yaml:"support_b"`
	Loads    []LoadConfig `yaml:"loads"`
	UDLs     []UDLConfig  `yaml:"udls"`
	Samples  int          `yaml:"samples"`
}

// LoadConfig is a point load, force positive downward.
type LoadConfig struct {
	Position float64 `yaml:"position"`
	Force    float64 `yaml:"force"`
}

// UDLConfig is a uniform distributed load segment.
type UDLConfig struct {
	Start     float64 `yaml:"start"`
	End       float64 `yaml:"end"`
	Intensity float64 `yaml:"intensity"`
}

// ProjectileConfig describes a launch. Angle is degrees for the file
// format; the CLI converts to radians at the boundary.
type ProjectileConfig struct {
	Speed    float64 `yaml:"speed"`
	AngleDeg float64 `yaml:"angle_deg"`
	Height   float64 `yaml:"height"`
	Gravity  float64 `yaml:"gravity"`
	Samples  int     `yaml:"samples"`
}

// GasConfig describes an ideal-gas state in Kelvin and m³.
type GasConfig struct {
	Moles       float64 `yaml:"moles"`
	Temperature float64 `yaml:"temperature"`
	Volume      float64 `yaml:"volume"`
}

func DefaultConfig() *Config {
	return &Config{
		Beam: BeamConfig{
			SupportA: 0,
			SupportB: DefaultSpanEnd,
			Samples:  DefaultSamples,
		},
		Projectile: ProjectileConfig{
			Speed:    DefaultSpeed,
			AngleDeg: DefaultAngleDeg,
			Gravity:  DefaultGravity,
			Samples:  DefaultSamples,
		},
		Gas: GasConfig{
			Moles:       DefaultMoles,
			Temperature: DefaultTempKelvin,
			Volume:      DefaultVolume,
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
