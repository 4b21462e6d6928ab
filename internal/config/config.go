// Package config supplies the generator's runtime settings: environment
// overrides for directories and the project-parameters document that
// carries the dialect selection.
package config

import (
	env "github.com/caarlos0/env/v11"
)

// Config holds the generator configuration. CLI arguments take precedence
// over these values; the env defaults mirror the build layout the Smithy
// projections are written to.
type Config struct {
	BuildDir   string `env:"BUILD_DIR" envDefault:"build/smithy"`
	OutputDir  string `env:"OUTPUT_DIR" envDefault:"sql"`
	ParamsPath string `env:"PARAMS" envDefault:""`
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	var cfg Config
	err := env.ParseWithOptions(&cfg, env.Options{
		Prefix: "SQLGEN_",
	})
	if err != nil {
		panic(err)
	}
	return &cfg
}
