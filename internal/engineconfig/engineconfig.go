package engineconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the engine config file, relative to the process working directory.
const DefaultPath = "config/engine.yaml"

// EnginePrefs holds window, solver and debug-overlay settings. Scene content is not configurable.
// Zero values in the file mean "keep the default", so overlays default to off.
type EnginePrefs struct {
	WindowWidth   int     `yaml:"window_width,omitempty"`
	WindowHeight  int     `yaml:"window_height,omitempty"`
	WindowTitle   string  `yaml:"window_title,omitempty"`
	Fullscreen    bool    `yaml:"fullscreen,omitempty"`
	TargetFPS     int     `yaml:"target_fps,omitempty"`
	TimeStep      float64 `yaml:"time_step,omitempty"`
	Iterations    uint    `yaml:"iterations,omitempty"`
	Zoom          float64 `yaml:"zoom,omitempty"`
	ShowFPS       bool    `yaml:"show_fps,omitempty"`
	ShowBodyCount bool    `yaml:"show_body_count,omitempty"`
	LogPath       string  `yaml:"log_path,omitempty"`
}

// Default returns the preferences used when no file is present.
func Default() EnginePrefs {
	return EnginePrefs{
		WindowWidth:  1280,
		WindowHeight: 800,
		WindowTitle:  "compound2d",
		TargetFPS:    60,
		TimeStep:     1.0 / 60.0,
		Iterations:   10,
		Zoom:         1,
		LogPath:      "logs/compound2d.txt",
	}
}

// Load reads preferences from path and merges every non-zero field over Default().
// A missing file yields Default(); a malformed or invalid one is an error.
func Load(path string) (EnginePrefs, error) {
	prefs := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return prefs, nil
	}
	if err != nil {
		return prefs, fmt.Errorf("engine config: %w", err)
	}

	var file EnginePrefs
	if err := yaml.Unmarshal(data, &file); err != nil {
		return prefs, fmt.Errorf("engine config %s: %w", path, err)
	}
	if err := copier.CopyWithOption(&prefs, &file, copier.Option{IgnoreEmpty: true}); err != nil {
		return prefs, fmt.Errorf("engine config %s: %w", path, err)
	}
	if err := prefs.Validate(); err != nil {
		return prefs, fmt.Errorf("engine config %s: %w", path, err)
	}
	return prefs, nil
}

// Save writes preferences as YAML, creating the directory if needed.
func Save(path string, p EnginePrefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects sizes, rates and steps that cannot drive the main loop.
func (p EnginePrefs) Validate() error {
	switch {
	case p.WindowWidth <= 0 || p.WindowHeight <= 0:
		return fmt.Errorf("window size %dx%d must be positive", p.WindowWidth, p.WindowHeight)
	case p.TargetFPS <= 0 || p.TargetFPS > 1000:
		return fmt.Errorf("target_fps %d must be between 1 and 1000", p.TargetFPS)
	case !(p.TimeStep > 0):
		return fmt.Errorf("time_step %v must be positive", p.TimeStep)
	case !(p.Zoom > 0):
		return fmt.Errorf("zoom %v must be positive", p.Zoom)
	}
	return nil
}
