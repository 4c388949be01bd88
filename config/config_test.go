package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadDefaults verifies the embedded defaults parse and validate.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}

	if cfg.Screen.Width != 800 || cfg.Screen.Height != 600 {
		t.Errorf("screen = %dx%d, want 800x600", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Sandbox.MaxObjects != 50 {
		t.Errorf("max_objects = %d, want 50", cfg.Sandbox.MaxObjects)
	}
	if cfg.Sandbox.TokenSize != 50 {
		t.Errorf("token_size = %g, want 50", cfg.Sandbox.TokenSize)
	}
	if len(cfg.Elements) == 0 || len(cfg.Recipes) == 0 {
		t.Fatal("defaults carry no content tables")
	}

	// The four basic elements start discovered; everything else hidden.
	discovered := 0
	for _, e := range cfg.Elements {
		if e.Discovered {
			discovered++
		}
	}
	if discovered != 4 {
		t.Errorf("discovered defaults = %d, want 4", discovered)
	}
}

// TestLoadOverride verifies user files merge over the embedded defaults.
func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	override := "sandbox:\n  max_objects: 10\n"
	if err := os.WriteFile(path, []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sandbox.MaxObjects != 10 {
		t.Errorf("max_objects = %d, want overridden 10", cfg.Sandbox.MaxObjects)
	}
	// Untouched fields keep their defaults.
	if cfg.Screen.Width != 800 {
		t.Errorf("width = %d, want default 800", cfg.Screen.Width)
	}
	if len(cfg.Elements) == 0 {
		t.Error("override dropped the default element table")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load on a missing file succeeded")
	}
}

// TestValidate verifies the content-table integrity checks.
func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Sandbox: SandboxConfig{MaxObjects: 50, TokenSize: 50},
			Elements: []ElementDef{
				{ID: "Fire", Discovered: true},
				{ID: "Water", Discovered: true},
				{ID: "Steam"},
			},
			Recipes: []RecipeDef{{A: "Fire", B: "Water", Result: "Steam"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:    "zero max objects",
			mutate:  func(c *Config) { c.Sandbox.MaxObjects = 0 },
			wantErr: true,
		},
		{
			name:    "zero token size",
			mutate:  func(c *Config) { c.Sandbox.TokenSize = 0 },
			wantErr: true,
		},
		{
			name:    "no elements",
			mutate:  func(c *Config) { c.Elements = nil },
			wantErr: true,
		},
		{
			name:    "empty element id",
			mutate:  func(c *Config) { c.Elements[0].ID = "" },
			wantErr: true,
		},
		{
			name:    "duplicate element id",
			mutate:  func(c *Config) { c.Elements[1].ID = "Fire" },
			wantErr: true,
		},
		{
			name:    "recipe references unknown element",
			mutate:  func(c *Config) { c.Recipes[0].A = "Lava" },
			wantErr: true,
		},
		{
			name: "conflicting recipe pair",
			mutate: func(c *Config) {
				c.Recipes = append(c.Recipes, RecipeDef{A: "Water", B: "Fire", Result: "Fire"})
			},
			wantErr: true,
		},
		{
			name: "duplicate recipe pair same result",
			mutate: func(c *Config) {
				c.Recipes = append(c.Recipes, RecipeDef{A: "Water", B: "Fire", Result: "Steam"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestDefaultRecipesResolvable verifies every default recipe references
// defined elements in both directions of the content tables.
func TestDefaultRecipesResolvable(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	ids := make(map[string]bool, len(cfg.Elements))
	for _, e := range cfg.Elements {
		ids[e.ID] = true
	}
	reachable := make(map[string]bool)
	for _, r := range cfg.Recipes {
		for _, id := range []string{r.A, r.B, r.Result} {
			if !ids[id] {
				t.Errorf("recipe %s + %s -> %s references unknown %q", r.A, r.B, r.Result, id)
			}
		}
		reachable[r.Result] = true
	}

	// Every hidden element must be producible by some recipe, or the
	// session could never discover it.
	for _, e := range cfg.Elements {
		if !e.Discovered && !reachable[e.ID] {
			t.Errorf("element %q is hidden but no recipe produces it", e.ID)
		}
	}
}

func TestWriteYAML(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatal(err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written config: %v", err)
	}
	if reloaded.Sandbox.MaxObjects != cfg.Sandbox.MaxObjects {
		t.Errorf("round trip max_objects = %d, want %d",
			reloaded.Sandbox.MaxObjects, cfg.Sandbox.MaxObjects)
	}
	if len(reloaded.Elements) != len(cfg.Elements) {
		t.Errorf("round trip elements = %d, want %d", len(reloaded.Elements), len(cfg.Elements))
	}
}
