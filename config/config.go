package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/valvenet/search"
)

// ErrInvalid is returned by Validate for an out-of-range setting.
var ErrInvalid = errors.New("config: invalid setting")

// Log levels and formats accepted by LogConfig.
var (
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"text", "json", "auto"}
)

// Config is the solver configuration.
type Config struct {
	Budget        int       `yaml:"budget"`
	HeadStart     int       `yaml:"head_start"`
	MaxStates     int       `yaml:"max_states"`
	MaxIterations int       `yaml:"max_iterations"`
	Start         string    `yaml:"start"`
	Log           LogConfig `yaml:"log"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the puzzle settings: a 30-tick budget,
// a 4-tick head start and the default state ceiling.
func Default() Config {
	return Config{
		Budget:    int(search.DefaultBudget),
		HeadStart: int(search.DefaultHeadStart),
		MaxStates: search.DefaultMaxStates,
		Log:       LogConfig{Level: "info", Format: "auto"},
	}
}

// Load reads the YAML file at path over Default and validates the result.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read decodes YAML from r over Default and validates the result.
// Unknown keys are rejected; an empty document yields Default.
func Read(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every setting against the limits of the search.
func (c Config) Validate() error {
	if c.Budget < 0 || c.Budget > 255 {
		return fmt.Errorf("%w: budget must be in [0, 255] (%d)", ErrInvalid, c.Budget)
	}
	if c.HeadStart < 0 || c.HeadStart > 255 {
		return fmt.Errorf("%w: head_start must be in [0, 255] (%d)", ErrInvalid, c.HeadStart)
	}
	if c.MaxStates <= 0 {
		return fmt.Errorf("%w: max_states must be positive (%d)", ErrInvalid, c.MaxStates)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("%w: max_iterations cannot be negative (%d)", ErrInvalid, c.MaxIterations)
	}
	if !slices.Contains(LogLevels, c.Log.Level) {
		return fmt.Errorf("%w: log.level %q (want one of %v)", ErrInvalid, c.Log.Level, LogLevels)
	}
	if !slices.Contains(LogFormats, c.Log.Format) {
		return fmt.Errorf("%w: log.format %q (want one of %v)", ErrInvalid, c.Log.Format, LogFormats)
	}

	return nil
}

// SearchOptions translates the limits into search options.
func (c Config) SearchOptions() []search.Option {
	return []search.Option{
		search.WithBudget(c.Budget),
		search.WithHeadStart(c.HeadStart),
		search.WithMaxStates(c.MaxStates),
		search.WithMaxIterations(c.MaxIterations),
	}
}
