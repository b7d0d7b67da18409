// SPDX-License-Identifier: MIT

// Package config loads the YAML run configuration and validates it.
//
// Values start from Default(); a file passed to Load overrides whatever it
// sets. Unknown keys are rejected so typos do not silently fall back to
// defaults. Command-line flags are applied by the caller after Load.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcohort/internal/ingest"
	"github.com/katalvlaran/lvcohort/pipeline"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the full run configuration.
type Config struct {
	Input    Input           `yaml:"input"`
	Pipeline pipeline.Config `yaml:"pipeline"`
	Output   Output          `yaml:"output"`
	Log      Log             `yaml:"log"`
}

// Input describes the CSV source.
type Input struct {
	Path           string   `yaml:"path"`
	ActivityColumn string   `yaml:"activity_column"`
	InactiveValue  string   `yaml:"inactive_value"`
	Required       []string `yaml:"required" validate:"dive,required"`
}

// Output describes where artifacts go.
type Output struct {
	Dir         string `yaml:"dir"`
	Format      string `yaml:"format" validate:"oneof=json yaml"`
	MetricsFile string `yaml:"metrics_file"`
}

// Log configures the zap logger.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// Default returns the built-in configuration.
func Default() *Config {
	schema := ingest.DefaultSchema()

	return &Config{
		Input: Input{
			ActivityColumn: schema.ActivityColumn,
			InactiveValue:  schema.InactiveValue,
			Required:       schema.Required,
		},
		Pipeline: pipeline.DefaultConfig(),
		Output:   Output{Format: "json"},
		Log:      Log{Level: "info", Format: "console"},
	}
}

// Load reads path over Default() and validates the result.
// An empty path returns the validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := cfg.decode(b); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) decode(b []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Validate checks struct constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s fails %q (value %v)", ErrInvalid, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Schema returns the ingest schema implied by the configuration.
func (c *Config) Schema() ingest.Schema {
	return ingest.Schema{
		Keys:           c.Pipeline.Keys,
		Measure:        c.Pipeline.Measure,
		ActivityColumn: c.Input.ActivityColumn,
		InactiveValue:  c.Input.InactiveValue,
		Required:       c.Input.Required,
	}
}
