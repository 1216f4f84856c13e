package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/marcus/boxrow/internal/boxes"
)

const configFile = ".boxrow/config.json"

// Limits for numeric settings
const (
	MaxInitialCount = 99
	MaxGap          = 20
	MaxPixelGap     = 200
	MinFontSize     = 6
	MaxFontSize     = 96
)

// Config holds user settings. Box contents are never stored here.
type Config struct {
	InitialCount int     `json:"initial_count"`
	LabelFormat  string  `json:"label_format"`
	Placeholder  string  `json:"placeholder"`
	Gap          int     `json:"gap"`
	PixelGap     int     `json:"pixel_gap"`
	FontSize     float64 `json:"font_size"`
}

// KeyError is returned for an unknown setting name
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("unknown config key %q (valid: %s)", e.Key, strings.Join(Keys(), ", "))
}

// ValueError is returned when a setting value is rejected
type ValueError struct {
	Key    string
	Value  string
	Reason string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %s", e.Value, e.Key, e.Reason)
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		InitialCount: boxes.DefaultCount,
		LabelFormat:  boxes.FormatPlain,
		Placeholder:  boxes.Placeholder,
		Gap:          2,
		PixelGap:     16,
		FontSize:     16,
	}
}

// Path returns the config file location for baseDir.
func Path(baseDir string) string {
	return filepath.Join(baseDir, configFile)
}

// Load reads the config from disk. Missing fields keep their defaults.
func Load(baseDir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path(baseDir))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configFile, err)
	}

	return cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	configPath := Path(baseDir)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if c.InitialCount < 0 || c.InitialCount > MaxInitialCount {
		return &ValueError{Key: "initial_count", Value: strconv.Itoa(c.InitialCount), Reason: fmt.Sprintf("must be 0-%d", MaxInitialCount)}
	}
	if err := boxes.ValidateFormat(c.LabelFormat); err != nil {
		return &ValueError{Key: "label_format", Value: c.LabelFormat, Reason: err.Error()}
	}
	if c.Placeholder == "" {
		return &ValueError{Key: "placeholder", Value: c.Placeholder, Reason: "must not be empty"}
	}
	if err := boxes.ValidateLabel(c.Placeholder); err != nil {
		return &ValueError{Key: "placeholder", Value: c.Placeholder, Reason: "must not contain line breaks or control characters"}
	}
	if c.Gap < 1 || c.Gap > MaxGap {
		return &ValueError{Key: "gap", Value: strconv.Itoa(c.Gap), Reason: fmt.Sprintf("must be 1-%d", MaxGap)}
	}
	if c.PixelGap < 1 || c.PixelGap > MaxPixelGap {
		return &ValueError{Key: "pixel_gap", Value: strconv.Itoa(c.PixelGap), Reason: fmt.Sprintf("must be 1-%d", MaxPixelGap)}
	}
	if c.FontSize < MinFontSize || c.FontSize > MaxFontSize {
		return &ValueError{Key: "font_size", Value: strconv.FormatFloat(c.FontSize, 'g', -1, 64), Reason: fmt.Sprintf("must be %d-%d", MinFontSize, MaxFontSize)}
	}
	return nil
}

// Keys returns the settable keys, sorted.
func Keys() []string {
	keys := []string{"initial_count", "label_format", "placeholder", "gap", "pixel_gap", "font_size"}
	sort.Strings(keys)
	return keys
}

// Get returns the string form of one setting.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "initial_count":
		return strconv.Itoa(c.InitialCount), nil
	case "label_format":
		return c.LabelFormat, nil
	case "placeholder":
		return c.Placeholder, nil
	case "gap":
		return strconv.Itoa(c.Gap), nil
	case "pixel_gap":
		return strconv.Itoa(c.PixelGap), nil
	case "font_size":
		return strconv.FormatFloat(c.FontSize, 'g', -1, 64), nil
	default:
		return "", &KeyError{Key: key}
	}
}

// Set parses value into one setting and validates the result. On error the
// config is left unchanged.
func (c *Config) Set(key, value string) error {
	next := *c
	switch key {
	case "initial_count", "gap", "pixel_gap":
		n, err := strconv.Atoi(value)
		if err != nil {
			return &ValueError{Key: key, Value: value, Reason: "not an integer"}
		}
		switch key {
		case "initial_count":
			next.InitialCount = n
		case "gap":
			next.Gap = n
		default:
			next.PixelGap = n
		}
	case "label_format":
		next.LabelFormat = value
	case "placeholder":
		next.Placeholder = value
	case "font_size":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return &ValueError{Key: key, Value: value, Reason: "not a number"}
		}
		next.FontSize = f
	default:
		return &KeyError{Key: key}
	}

	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// Update loads the config, applies fn, and saves it
func Update(baseDir string, fn func(*Config) error) error {
	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}
	if err := fn(cfg); err != nil {
		return err
	}
	return Save(baseDir, cfg)
}
