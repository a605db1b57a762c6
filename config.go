package pretty

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// DefaultWidth is the width used when none is configured, and by the
// fmt verbs of [Doc] when no width is given.
const DefaultWidth = 80

// Config controls a rendering pass.
//
// A Width of zero or less is valid and means "always break": every group
// that contains a line renders broken.
type Config struct {
	// Width is the maximum line width, in terminal cells.
	Width int `yaml:"width"`

	// Column is the column the output starts at, for documents rendered
	// after text already on the current line.
	Column int `yaml:"column"`

	// TrimTrailing omits the indentation of lines that stay empty.
	// Spaces written by the document itself are kept.
	TrimTrailing bool `yaml:"trim_trailing"`

	// Logger, when set, receives a debug record for every group the
	// layout resolves.
	Logger *log.Logger `yaml:"-"`
}

// Option configures a rendering pass.
type Option func(*Config)

// WithColumn starts the layout at column c instead of 0.
func WithColumn(c int) Option {
	return func(cfg *Config) { cfg.Column = c }
}

// WithTrimTrailing omits indentation on lines that stay empty.
func WithTrimTrailing() Option {
	return func(cfg *Config) { cfg.TrimTrailing = true }
}

// WithLogger traces group decisions to l at debug level.
func WithLogger(l *log.Logger) Option {
	return func(cfg *Config) { cfg.Logger = l }
}

// WithConfig replaces every setting except the width with those of c.
func WithConfig(c Config) Option {
	return func(cfg *Config) {
		width := cfg.Width
		*cfg = c
		cfg.Width = width
	}
}

func newConfig(width int, opts []Option) Config {
	cfg := Config{Width: width}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Validate reports whether c can be used for rendering.
func (c Config) Validate() error {
	if c.Column < 0 {
		return fmt.Errorf("%w: column %d is negative", ErrInvalidConfig, c.Column)
	}
	return nil
}

// LoadConfig decodes a YAML configuration from r:
//
//	width: 100
//	column: 4
//	trim_trailing: true
//
// An absent width defaults to [DefaultWidth]. Unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := Config{Width: DefaultWidth}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
