package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"brytekit/internal/slot"
)

//go:embed sample_config.toml
var sampleConfig string

// Execution modes accepted by [execution] mode.
const (
	ModePlan    = "plan"
	ModeExecute = "execute"
)

// Ambiguity policies accepted by [overrides] ambiguity.
const (
	AmbiguityLast  = "last"
	AmbiguityError = "error"
)

// Failure policies accepted by [demos] on_failure.
const (
	FailureStop = "stop"
	FailureSkip = "skip"
)

// Paths locates the content directory and optional log directory.
type Paths struct {
	ContentDir string `toml:"content_dir"`
	LogDir     string `toml:"log_dir"`
}

// Slots bounds the half-open slot range [first, end).
type Slots struct {
	First int `toml:"first"`
	End   int `toml:"end"`
}

// Game configures the external game executable used for demo regeneration.
type Game struct {
	Binary         string  `toml:"binary"`
	WindowWidth    int     `toml:"window_width"`
	WindowHeight   int     `toml:"window_height"`
	Speed          float64 `toml:"speed"`
	TimeoutSeconds int     `toml:"timeout_seconds"` // 0 waits indefinitely
}

// Overrides configures the map override resolver.
type Overrides struct {
	// Ambiguity decides what happens when several override files match one
	// slot: "last" keeps the last in listing order, "error" refuses to plan.
	Ambiguity string `toml:"ambiguity"`
}

// Demos configures the demo regeneration driver.
type Demos struct {
	// OnFailure is "stop" (abort the batch) or "skip" (leave the slot's old
	// demo in place and continue).
	OnFailure string `toml:"on_failure"`
}

// Execution selects dry-run or live mode.
type Execution struct {
	Mode string `toml:"mode"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for brytekit.
type Config struct {
	Paths     Paths     `toml:"paths"`
	Slots     Slots     `toml:"slots"`
	Game      Game      `toml:"game"`
	Overrides Overrides `toml:"overrides"`
	Demos     Demos     `toml:"demos"`
	Execution Execution `toml:"execution"`
	Logging   Logging   `toml:"logging"`
}

// SlotRange returns the configured slot range.
func (c *Config) SlotRange() slot.Range {
	return slot.Range{First: slot.Slot(c.Slots.First), End: slot.Slot(c.Slots.End)}
}

// GameTimeout returns the per-run timeout, zero meaning none.
func (c *Config) GameTimeout() time.Duration {
	if c.Game.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.Game.TimeoutSeconds) * time.Second
}

// DefaultConfigPath returns the absolute path of the per-user config file.
func DefaultConfigPath() (string, error) {
	if base, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, defaultConfigRelative), nil
	}
	return expandPath("~/.config/" + defaultConfigRelative)
}

// Load locates, parses, and validates a configuration file. It returns the
// config, the path it resolved, and whether that file existed. A missing
// file is not an error; defaults are used.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file).DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			var strict *toml.StrictMissingError
			if errors.As(err, &strict) {
				return nil, "", false, fmt.Errorf("parse config: %s", strict.String())
			}
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if strings.TrimSpace(path) != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

// ExpandPath resolves "~" and returns an absolute, cleaned path.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	home, err := expandHome(pathValue)
	if err != nil {
		return "", err
	}
	absolute, err := filepath.Abs(home)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", home, err)
	}
	return absolute, nil
}

// expandHome replaces a leading "~" and cleans the path, leaving relative
// paths relative.
func expandHome(pathValue string) (string, error) {
	pathValue = strings.TrimSpace(pathValue)
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	return filepath.Clean(pathValue), nil
}

// CreateSample writes the sample configuration file to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// SampleConfig returns the embedded sample configuration.
func SampleConfig() string {
	return sampleConfig
}
