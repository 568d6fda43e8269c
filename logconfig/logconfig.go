// Package logconfig loads logger configuration from TOML, YAML or JSON5 files
// and LOGGER_* environment variables.
//
// Fields left out of the file and the environment keep the value of the base
// configuration they are applied to:
//
//	file, err := logconfig.Load("logging.toml")
//	if err != nil { ... }
//	if err := file.ApplyEnv(os.LookupEnv); err != nil { ... }
//	cfg, err := file.Config(logger.DefaultConfig())
package logconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/titanous/json5"
	"gopkg.in/yaml.v3"

	"github.com/mordilloSan/go-modlogger/logger"
)

// ErrUnknownFormat is returned for files whose extension is not recognized.
var ErrUnknownFormat = errors.New("unknown config format")

// Format is a configuration file format.
type Format int

const (
	// FormatAuto detects the format from the file extension.
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
	FormatJSON5
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON5:
		return "json5"
	default:
		return "unknown"
	}
}

// DetectFormat maps a file extension to a Format. Unknown extensions yield FormatAuto.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	case ".json", ".json5":
		return FormatJSON5
	default:
		return FormatAuto
	}
}

// Environment variables read by ApplyEnv.
const (
	EnvTick         = "LOGGER_TICK"
	EnvColors       = "LOGGER_COLORS"
	EnvLevelMin     = "LOGGER_LEVEL_MIN"
	EnvLevelMax     = "LOGGER_LEVEL_MAX"
	EnvLevelDefault = "LOGGER_LEVEL_DEFAULT"
	EnvFile         = "LOGGER_FILE"
)

// File is the on-disk form of logger.Config. Nil fields are unset.
type File struct {
	IncludeTick  *bool   `toml:"include_tick" yaml:"include_tick" json:"include_tick"`
	EnableColors *bool   `toml:"enable_colors" yaml:"enable_colors" json:"enable_colors"`
	MinLevel     *string `toml:"min_level" yaml:"min_level" json:"min_level"`
	MaxLevel     *string `toml:"max_level" yaml:"max_level" json:"max_level"`
	DefaultLevel *string `toml:"default_level" yaml:"default_level" json:"default_level"`
	FilePath     *string `toml:"file_path" yaml:"file_path" json:"file_path"`
}

// Load reads and parses the file at path, choosing the format by extension.
func Load(path string) (*File, error) {
	format := DetectFormat(path)
	if format == FormatAuto {
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	case FormatJSON5:
		if err := json5.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("JSON5 parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("format %s: %w", format, ErrUnknownFormat)
	}
	return &f, nil
}

// ApplyEnv overrides fields from the environment. lookup is usually os.LookupEnv.
// Empty variables are ignored.
func (f *File) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	for _, b := range []struct {
		key string
		dst **bool
	}{
		{EnvTick, &f.IncludeTick},
		{EnvColors, &f.EnableColors},
	} {
		v, ok := get(b.key)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", b.key, err)
		}
		*b.dst = &parsed
	}

	for _, s := range []struct {
		key string
		dst **string
	}{
		{EnvLevelMin, &f.MinLevel},
		{EnvLevelMax, &f.MaxLevel},
		{EnvLevelDefault, &f.DefaultLevel},
		{EnvFile, &f.FilePath},
	} {
		if v, ok := get(s.key); ok {
			*s.dst = &v
		}
	}
	return nil
}

// Config overlays the set fields of f onto base.
func (f *File) Config(base logger.Config) (logger.Config, error) {
	cfg := base
	if f.IncludeTick != nil {
		cfg.IncludeTick = *f.IncludeTick
	}
	if f.EnableColors != nil {
		cfg.EnableColors = *f.EnableColors
	}
	if f.FilePath != nil {
		cfg.FilePath = *f.FilePath
	}

	for _, l := range []struct {
		name string
		src  *string
		dst  *logger.Level
	}{
		{"min_level", f.MinLevel, &cfg.MinLevel},
		{"max_level", f.MaxLevel, &cfg.MaxLevel},
		{"default_level", f.DefaultLevel, &cfg.DefaultModuleLevel},
	} {
		if l.src == nil {
			continue
		}
		level, err := logger.ParseLevel(*l.src)
		if err != nil {
			return base, fmt.Errorf("%s: %w", l.name, err)
		}
		*l.dst = level
	}
	return cfg, nil
}

// LoadConfig loads path (when not empty), applies the process environment
// and overlays the result onto base.
func LoadConfig(path string, base logger.Config) (logger.Config, error) {
	f := &File{}
	if path != "" {
		var err error
		if f, err = Load(path); err != nil {
			return base, err
		}
	}
	if err := f.ApplyEnv(os.LookupEnv); err != nil {
		return base, err
	}
	return f.Config(base)
}
