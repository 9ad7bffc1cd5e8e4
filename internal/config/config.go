// Package config loads the optional YAML configuration of the sparsecalc CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sparsecalc/sparse"
)

// DefaultPath is looked up in the working directory when --config is not set.
const DefaultPath = "sparsecalc.yaml"

// Header policies.
const (
	HeaderStrict     = "strict"
	HeaderPositional = "positional"
)

// Defaults.
const (
	DefaultResultsDir = "results"
	DefaultHeader     = HeaderStrict
	DefaultLogLevel   = "info"
)

// ErrInvalid is returned for configuration values outside their allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config is the effective CLI configuration.
type Config struct {
	ResultsDir  string `yaml:"results_dir"`
	Header      string `yaml:"header"`
	BoundsCheck bool   `yaml:"bounds_check"`
	LogLevel    string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ResultsDir: DefaultResultsDir,
		Header:     DefaultHeader,
		LogLevel:   DefaultLogLevel,
	}
}

// Load reads path over the defaults.
// An empty path means DefaultPath, which may be absent. A path given
// explicitly must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Decode parses YAML from r over the defaults. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ResultsDir) == "" {
		return fmt.Errorf("%w: results_dir must not be empty", ErrInvalid)
	}
	switch c.Header {
	case HeaderStrict, HeaderPositional:
	default:
		return fmt.Errorf("%w: header %q (want %s|%s)", ErrInvalid, c.Header, HeaderStrict, HeaderPositional)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// ParseOptions converts the reader policy into sparse options.
func (c Config) ParseOptions() []sparse.Option {
	var opts []sparse.Option
	if c.Header == HeaderPositional {
		opts = append(opts, sparse.WithPositionalHeader())
	}
	if c.BoundsCheck {
		opts = append(opts, sparse.WithBoundsCheck())
	}

	return opts
}

// Level returns the configured slog level; Validate guarantees it parses.
func (c Config) Level() slog.Level {
	lvl, _ := ParseLevel(c.LogLevel)
	return lvl
}

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q (want debug|info|warn|error)", ErrInvalid, s)
	}

	return lvl, nil
}
