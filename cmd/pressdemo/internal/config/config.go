package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/press/pkg/press"
)

// Config represents the pressdemo YAML configuration.
type Config struct {
	App      AppConfig      `yaml:"app,omitempty"`
	Timings  TimingsConfig  `yaml:"timings,omitempty"`
	Scenario string         `yaml:"scenario,omitempty"`
	Scene    []NodeConfig   `yaml:"scene,omitempty"`
	Snapshot SnapshotConfig `yaml:"snapshot,omitempty"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// TimingsConfig contains the two press-state delays in milliseconds.
type TimingsConfig struct {
	TapTimeoutMs           int `yaml:"tap_timeout_ms"`
	PressedStateDurationMs int `yaml:"pressed_state_duration_ms"`
}

// Timings converts the configured delays to detector timings.
func (t TimingsConfig) Timings() press.Timings {
	return press.Timings{
		TapTimeout:           time.Duration(t.TapTimeoutMs) * time.Millisecond,
		PressedStateDuration: time.Duration(t.PressedStateDurationMs) * time.Millisecond,
	}
}

// NodeConfig describes one scene element. Rects are absolute terminal
// cells; children must be listed inside their parent to hit-test sensibly
// but this is not enforced.
type NodeConfig struct {
	Name       string       `yaml:"name"`
	Rect       RectConfig   `yaml:"rect"`
	DeferPress bool         `yaml:"defer_press,omitempty"`
	Excluded   bool         `yaml:"excluded,omitempty"`
	Invisible  bool         `yaml:"invisible,omitempty"`
	Children   []NodeConfig `yaml:"children,omitempty"`
}

// RectConfig is a rectangle in terminal cells.
type RectConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// SnapshotConfig controls the PNG written by the snapshot key.
// Zero width or height sizes the image to the scene.
type SnapshotConfig struct {
	Path   string `yaml:"path,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

// Load reads, validates and defaults a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) validate() error {
	if c.Timings.TapTimeoutMs < 0 {
		return fmt.Errorf("timings.tap_timeout_ms must not be negative")
	}
	if c.Timings.PressedStateDurationMs < 0 {
		return fmt.Errorf("timings.pressed_state_duration_ms must not be negative")
	}
	if c.Snapshot.Width < 0 || c.Snapshot.Height < 0 {
		return fmt.Errorf("snapshot dimensions must not be negative")
	}

	seen := make(map[string]bool)
	return validateNodes(c.Scene, seen)
}

func validateNodes(nodes []NodeConfig, seen map[string]bool) error {
	for _, n := range nodes {
		if n.Name == "" {
			return fmt.Errorf("scene node is missing a name")
		}
		if seen[n.Name] {
			return fmt.Errorf("duplicate scene node name: %s", n.Name)
		}
		seen[n.Name] = true
		if n.Rect.W <= 0 || n.Rect.H <= 0 {
			return fmt.Errorf("scene node %s has a non-positive rect", n.Name)
		}
		if err := validateNodes(n.Children, seen); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Timings.TapTimeoutMs == 0 {
		c.Timings.TapTimeoutMs = int(press.DefaultTapTimeout / time.Millisecond)
	}
	if c.Timings.PressedStateDurationMs == 0 {
		c.Timings.PressedStateDurationMs = int(press.DefaultPressedStateDuration / time.Millisecond)
	}
	if c.Snapshot.Path == "" {
		c.Snapshot.Path = "press.png"
	}
}

// CreateDefault writes a commented starter config file.
func CreateDefault(path string) error {
	content := `# pressdemo configuration

# app:
#   name: pressdemo

# Delays for the press-state machine, in milliseconds.
timings:
  tap_timeout_ms: 100
  pressed_state_duration_ms: 64

# Run a built-in scenario instead of the scene below.
# "pressdemo scenarios" lists the available names.
# scenario: mixed

# Scene rects are absolute terminal cells. Nodes with defer_press wait
# for the tap timeout before showing pressed state, like children of a
# scrolling container. Excluded nodes keep their visuals but are vetoed
# by the detector.
scene:
  - name: toolbar
    rect: {x: 1, y: 0, w: 58, h: 5}
    children:
      - name: save
        rect: {x: 3, y: 1, w: 12, h: 3}
      - name: undo
        rect: {x: 17, y: 1, w: 12, h: 3}
      - name: locked
        rect: {x: 31, y: 1, w: 12, h: 3}
        excluded: true
  - name: list
    rect: {x: 1, y: 6, w: 58, h: 12}
    children:
      - name: row-1
        rect: {x: 3, y: 7, w: 54, h: 3}
        defer_press: true
      - name: row-2
        rect: {x: 3, y: 11, w: 54, h: 3}
        defer_press: true
      - name: hidden-row
        rect: {x: 3, y: 15, w: 54, h: 3}
        invisible: true

snapshot:
  path: press.png
`

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// Exists checks if a config file exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
