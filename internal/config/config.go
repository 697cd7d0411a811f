// Package config provides configuration loading and management for the
// closeworld command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/closeworld/axiom"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats.
const (
	FormatFunctional = "functional"
	FormatText       = "text"
	FormatJSON       = "json"
)

// Config represents the complete closeworld configuration
type Config struct {
	Closure ClosureConfig `yaml:"closure"`
	Output  OutputConfig  `yaml:"output"`
	Watch   WatchConfig   `yaml:"watch"`
	Log     LogConfig     `yaml:"log"`
}

// ClosureConfig configures axiom generation
type ClosureConfig struct {
	// AxiomType is one of disjoint-classes, disjoint-union, equivalent-classes
	AxiomType string `yaml:"axiom_type"`
	// OntologyIRI names the generated ontology (default: the bundle's iri)
	OntologyIRI string `yaml:"ontology_iri"`
	// TreeAxioms also emits SubClassOf axioms for the treeified taxonomy
	TreeAxioms bool `yaml:"tree_axioms"`
	// Sources are the default bundle glob patterns when none are given
	Sources []string `yaml:"sources,omitempty"`
}

// OutputConfig configures how axioms are written
type OutputConfig struct {
	// Format is functional, text or json
	Format string `yaml:"format"`
	// Path is the output file; empty or "-" means stdout
	Path string `yaml:"path"`
	// Prefix is the IRI bound to ":" in functional output
	Prefix string `yaml:"prefix"`
	// Declare emits class declarations in functional output
	Declare bool `yaml:"declare"`
}

// WatchConfig configures the watch command
type WatchConfig struct {
	// Debounce is the quiet period after the last file event
	Debounce time.Duration `yaml:"debounce"`
}

// LogConfig configures logging
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Closure: ClosureConfig{
			AxiomType: axiom.TypeDisjointClasses.String(),
		},
		Output: OutputConfig{
			Format: FormatFunctional,
		},
		Watch: WatchConfig{
			Debounce: 300 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// AxiomType returns the parsed closure axiom type.
func (c *Config) AxiomType() (axiom.Type, error) {
	return axiom.ParseType(c.Closure.AxiomType)
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if _, err := c.AxiomType(); err != nil {
		return fmt.Errorf("%w: closure.axiom_type: %w", ErrInvalidConfig, err)
	}
	switch c.Output.Format {
	case FormatFunctional, FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: output.format must be one of %s, %s, %s (got %q)",
			ErrInvalidConfig, FormatFunctional, FormatText, FormatJSON, c.Output.Format)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("%w: watch.debounce must not be negative", ErrInvalidConfig)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Closure
	if other.Closure.AxiomType != "" {
		c.Closure.AxiomType = other.Closure.AxiomType
	}
	if other.Closure.OntologyIRI != "" {
		c.Closure.OntologyIRI = other.Closure.OntologyIRI
	}
	if other.Closure.TreeAxioms {
		c.Closure.TreeAxioms = true
	}
	if len(other.Closure.Sources) > 0 {
		c.Closure.Sources = other.Closure.Sources
	}

	// Output
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Output.Path != "" {
		c.Output.Path = other.Output.Path
	}
	if other.Output.Prefix != "" {
		c.Output.Prefix = other.Output.Prefix
	}
	if other.Output.Declare {
		c.Output.Declare = true
	}

	// Watch
	if other.Watch.Debounce != 0 {
		c.Watch.Debounce = other.Watch.Debounce
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
