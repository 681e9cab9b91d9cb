// Package config loads application settings from a TOML file with
// environment variable overrides.
//
// Settings cover the host-integration knobs only; the keymap document
// itself lives in its own YAML or Markdown file and is handled by the
// parser package.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/leaderkey/internal/input/key"
)

// envPrefix is prepended to setting names for environment overrides,
// e.g. LEADERKEY_LEADER, LEADERKEY_STRICT.
const envPrefix = "LEADERKEY_"

// Settings holds the application configuration.
type Settings struct {
	// Leader is the key-code token of the trigger key.
	Leader string `toml:"leader"`

	// KeymapPath is the keymap document to load (.yaml/.yml or .md).
	KeymapPath string `toml:"keymap_path"`

	// ExtendDefaults merges the user keymap onto the builtin one instead
	// of replacing it.
	ExtendDefaults bool `toml:"extend_defaults"`

	// Strict rejects sequences that continue past a complete binding.
	Strict bool `toml:"strict"`

	// DebounceMS is the reload debounce interval in milliseconds.
	DebounceMS int `toml:"debounce_ms"`
}

// Defaults returns the builtin settings.
func Defaults() Settings {
	return Settings{
		Leader:         "c-spc",
		ExtendDefaults: true,
		DebounceMS:     250,
	}
}

// Debounce returns the reload debounce interval as a duration.
func (s Settings) Debounce() time.Duration {
	return time.Duration(s.DebounceMS) * time.Millisecond
}

// LeaderKey returns the parsed trigger key.
func (s Settings) LeaderKey() (key.KeyPress, error) {
	return key.ParseKeyCode(s.Leader)
}

// Load reads settings from a TOML file, applies environment overrides and
// validates the result. A missing file is not an error; defaults plus
// environment are used.
func Load(path string) (Settings, error) {
	s := Defaults()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return s, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	applyEnv(&s)

	if _, err := s.LeaderKey(); err != nil {
		return s, fmt.Errorf("leader setting: %w", err)
	}
	if s.DebounceMS < 0 {
		return s, fmt.Errorf("debounce_ms must not be negative, got %d", s.DebounceMS)
	}
	return s, nil
}

// applyEnv overrides settings from LEADERKEY_* environment variables.
// Malformed boolean or integer values are ignored.
func applyEnv(s *Settings) {
	if v, ok := os.LookupEnv(envPrefix + "LEADER"); ok {
		s.Leader = v
	}
	if v, ok := os.LookupEnv(envPrefix + "KEYMAP_PATH"); ok {
		s.KeymapPath = v
	}
	if v, ok := os.LookupEnv(envPrefix + "EXTEND_DEFAULTS"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			s.ExtendDefaults = b
		}
	}
	if v, ok := os.LookupEnv(envPrefix + "STRICT"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			s.Strict = b
		}
	}
	if v, ok := os.LookupEnv(envPrefix + "DEBOUNCE_MS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			s.DebounceMS = n
		}
	}
}
