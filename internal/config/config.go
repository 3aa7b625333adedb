package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the collection viewer configuration.
type Config struct {
	// Source is the fixture file. Relative paths resolve against the
	// directory of the configuration file.
	Source string `toml:"source" yaml:"source"`

	// Key names the field that identifies a record across reloads.
	Key string `toml:"key" yaml:"key"`

	// Title is shown in the view header.
	Title string `toml:"title" yaml:"title"`

	Sort    SortConfig    `toml:"sort" yaml:"sort"`
	Filter  FilterConfig  `toml:"filter" yaml:"filter"`
	Display DisplayConfig `toml:"display" yaml:"display"`
	Watch   WatchConfig   `toml:"watch" yaml:"watch"`
	Log     LogConfig     `toml:"log" yaml:"log"`

	dir string
}

// SortConfig selects the ordering of the collection. Field and Script are
// mutually exclusive; with neither, records keep fixture order.
type SortConfig struct {
	Field      string `toml:"field" yaml:"field"`
	Descending bool   `toml:"descending" yaml:"descending"`

	// Script is Lua source defining compare(a, b).
	Script string `toml:"script" yaml:"script"`
}

// FilterConfig hides records from the view.
type FilterConfig struct {
	// Script is Lua source defining match(item).
	Script string `toml:"script" yaml:"script"`
}

// DisplayConfig controls how records are rendered.
type DisplayConfig struct {
	// Columns lists the fields shown per row. Empty shows every field.
	Columns []string `toml:"columns" yaml:"columns"`
}

// WatchConfig controls live reload of the fixture.
type WatchConfig struct {
	Enabled  bool     `toml:"enabled" yaml:"enabled"`
	Debounce Duration `toml:"debounce" yaml:"debounce"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// Default returns the configuration used for keys a file leaves out.
func Default() *Config {
	return &Config{
		Title: "collview",
		Watch: WatchConfig{
			Debounce: Duration(100 * time.Millisecond),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration at path from the OS file system.
func Load(path string) (*Config, error) {
	return LoadFS(DefaultFS(), path)
}

// LoadFS reads the configuration at path from fsys over the defaults.
func LoadFS(fsys FileSystem, path string) (*Config, error) {
	cfg := Default()
	if err := readFile(fsys, path, cfg); err != nil {
		return nil, err
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// SourcePath returns Source resolved against the configuration directory.
func (c *Config) SourcePath() string {
	if c.Source == "" || filepath.IsAbs(c.Source) || c.dir == "" {
		return c.Source
	}
	return filepath.Join(c.dir, c.Source)
}

// LogLevel returns the slog level named by Log.Level.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Validate reports every problem with the configuration as a
// *ValidationError.
func (c *Config) Validate() error {
	var problems []string

	if c.Source == "" {
		problems = append(problems, "source is required")
	} else if _, err := FormatOf(c.Source); err != nil {
		problems = append(problems, fmt.Sprintf("source %q: unsupported format", c.Source))
	}
	if c.Sort.Field != "" && c.Sort.Script != "" {
		problems = append(problems, "sort.field and sort.script are mutually exclusive")
	}
	if c.Sort.Descending && c.Sort.Field == "" && c.Sort.Script == "" {
		problems = append(problems, "sort.descending needs sort.field or sort.script")
	}
	if c.Watch.Debounce < 0 {
		problems = append(problems, "watch.debounce must not be negative")
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		problems = append(problems, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// Duration is a time.Duration written as a string such as "150ms".
type Duration time.Duration

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// UnmarshalYAML parses a duration scalar.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errors.New("duration must be a scalar")
	}
	return d.UnmarshalText([]byte(node.Value))
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
