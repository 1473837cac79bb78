// Package config loads the configuration of the observe driver from defaults,
// an optional JSON or YAML file, and OBSERVE_* environment variables, in that
// order of precedence.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"sigs.k8s.io/yaml"

	"github.com/tailored-agentic-units/observe/observability"
)

const (
	defaultObserver  = "slog"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
	envPrefix        = "OBSERVE_"
)

// Initial holds the values the driver constructs its first entity with.
// Pointers distinguish "not configured" from zero.
type Initial struct {
	A *int    `json:"a,omitempty" env:"A"`
	B *int    `json:"b,omitempty" env:"B"`
	C *string `json:"c,omitempty" env:"C"`
}

// Merge applies non-nil values from source into i.
func (i *Initial) Merge(source *Initial) {
	if source.A != nil {
		i.A = source.A
	}
	if source.B != nil {
		i.B = source.B
	}
	if source.C != nil {
		i.C = source.C
	}
}

// Config holds the driver settings.
type Config struct {
	Observer  string  `json:"observer,omitempty" env:"OBSERVER"`
	LogLevel  string  `json:"log_level,omitempty" env:"LOG_LEVEL"`
	LogFormat string  `json:"log_format,omitempty" env:"LOG_FORMAT"`
	Initial   Initial `json:"initial" envPrefix:"INITIAL_"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() Config {
	a, b, c := 1, 2, "three"
	return Config{
		Observer:  defaultObserver,
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
		Initial:   Initial{A: &a, B: &b, C: &c},
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Observer != "" {
		c.Observer = source.Observer
	}
	if source.LogLevel != "" {
		c.LogLevel = source.LogLevel
	}
	if source.LogFormat != "" {
		c.LogFormat = source.LogFormat
	}
	c.Initial.Merge(&source.Initial)
}

// Values returns the initial entity values, falling back to the defaults for
// anything unset.
func (c *Config) Values() (a, b int, s string) {
	d := DefaultConfig()
	d.Initial.Merge(&c.Initial)
	return *d.Initial.A, *d.Initial.B, *d.Initial.C
}

// LoadConfig reads a JSON or YAML config file and merges it with defaults.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}

// Load builds the effective configuration: defaults, then filename when it
// is not empty, then OBSERVE_* environment variables.
func Load(filename string) (*Config, error) {
	cfg := DefaultConfig()
	if filename != "" {
		loaded, err := LoadConfig(filename)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	var fromEnv Config
	if err := env.ParseWithOptions(&fromEnv, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.Merge(&fromEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if _, err := c.slogLevel(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %s", c.LogFormat)
	}
	return nil
}

func (c *Config) slogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// NewLogger creates the slog.Logger described by c, writing to w.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := c.slogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// NewObserver resolves the diagnostic observer named by c. Observer may list
// several comma-separated names; their observers receive every event in the
// order listed. The built-in "slog" and "zerolog" observers are rebuilt to
// honor the configured level and writer; any other name is looked up in the
// observability registry.
func (c *Config) NewObserver(w io.Writer) (observability.Observer, error) {
	names := strings.Split(c.Observer, ",")
	resolved := make([]observability.Observer, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		obs, err := c.namedObserver(name, w)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, obs)
	}

	switch len(resolved) {
	case 0:
		return nil, fmt.Errorf("no observer configured (known: %s)",
			strings.Join(observability.ObserverNames(), ", "))
	case 1:
		return resolved[0], nil
	default:
		return observability.NewMultiObserver(resolved...), nil
	}
}

func (c *Config) namedObserver(name string, w io.Writer) (observability.Observer, error) {
	switch name {
	case "slog":
		logger, err := c.NewLogger(w)
		if err != nil {
			return nil, err
		}
		return observability.NewSlogObserver(logger), nil
	case "zerolog":
		level, err := c.slogLevel()
		if err != nil {
			return nil, err
		}
		var out io.Writer = w
		if c.LogFormat == "text" {
			out = zerolog.ConsoleWriter{Out: w, NoColor: true}
		}
		return observability.NewZerologObserver(
			zerolog.New(out).Level(zerologLevel(level)).With().Timestamp().Logger(),
		), nil
	default:
		obs, err := observability.GetObserver(name)
		if err != nil {
			return nil, fmt.Errorf("%w (known: %s)", err, strings.Join(observability.ObserverNames(), ", "))
		}
		return obs, nil
	}
}

// zerologLevel maps a slog level, including offsets such as "warn+2", onto
// the zerolog level of the range it falls in.
func zerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level < slog.LevelInfo:
		return zerolog.DebugLevel
	case level < slog.LevelWarn:
		return zerolog.InfoLevel
	case level < slog.LevelError:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
