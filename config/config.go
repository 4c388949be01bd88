// Package config provides configuration loading and access for the sandbox.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all sandbox configuration: display settings, engine
// constants, and the element/recipe content tables.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Sandbox   SandboxConfig   `yaml:"sandbox"`
	Book      BookConfig      `yaml:"book"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	Elements []ElementDef `yaml:"elements"`
	Recipes  []RecipeDef  `yaml:"recipes"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// SandboxConfig holds the engine's construction-time constants.
type SandboxConfig struct {
	MaxObjects     int     `yaml:"max_objects"`     // live-token capacity bound
	TokenSize      float64 `yaml:"token_size"`      // square token edge in pixels
	SpawnX         float64 `yaml:"spawn_x"`         // palette spawn position
	SpawnY         float64 `yaml:"spawn_y"`
	MarkerLifetime float64 `yaml:"marker_lifetime"` // seconds the invalid marker shows
	SidebarWidth   int     `yaml:"sidebar_width"`   // palette column width
	ScrollSpeed    float64 `yaml:"scroll_speed"`    // pixels per wheel step
	TrashSize      int     `yaml:"trash_size"`      // disposal target edge length
	TrashMargin    int     `yaml:"trash_margin"`    // inset from the bottom-left corner
}

// BookConfig holds encyclopedia panel settings.
type BookConfig struct {
	ScrollSpeed float64 `yaml:"scroll_speed"`
	RowHeight   int     `yaml:"row_height"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds per stats window
}

// ElementDef defines one catalog entry. Order in the file is display order.
type ElementDef struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Discovered  bool   `yaml:"discovered"`
}

// RecipeDef defines one combination. Pairs are unordered; list each pair
// once.
type RecipeDef struct {
	A      string `yaml:"a"`
	B      string `yaml:"b"`
	Result string `yaml:"result"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate performs the construction-time integrity checks: the content
// tables must be well formed before the engine ever sees them.
func (c *Config) Validate() error {
	if c.Sandbox.MaxObjects <= 0 {
		return fmt.Errorf("config: sandbox.max_objects must be positive, got %d", c.Sandbox.MaxObjects)
	}
	if c.Sandbox.TokenSize <= 0 {
		return fmt.Errorf("config: sandbox.token_size must be positive, got %g", c.Sandbox.TokenSize)
	}
	if len(c.Elements) == 0 {
		return fmt.Errorf("config: no elements defined")
	}

	ids := make(map[string]bool, len(c.Elements))
	for _, elem := range c.Elements {
		if elem.ID == "" {
			return fmt.Errorf("config: element with empty id")
		}
		if ids[elem.ID] {
			return fmt.Errorf("config: duplicate element id %q", elem.ID)
		}
		ids[elem.ID] = true
	}

	type pair struct{ lo, hi string }
	seen := make(map[pair]string, len(c.Recipes))
	for _, r := range c.Recipes {
		for _, id := range []string{r.A, r.B, r.Result} {
			if !ids[id] {
				return fmt.Errorf("config: recipe %s + %s -> %s references unknown element %q",
					r.A, r.B, r.Result, id)
			}
		}
		key := pair{lo: r.A, hi: r.B}
		if key.lo > key.hi {
			key.lo, key.hi = key.hi, key.lo
		}
		if prev, ok := seen[key]; ok && prev != r.Result {
			return fmt.Errorf("config: conflicting results for %s + %s: %q vs %q",
				r.A, r.B, prev, r.Result)
		}
		seen[key] = r.Result
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
