package lists

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// DefaultInitialCapacity is the first storage size of a growable list.
	DefaultInitialCapacity = 10

	// DefaultChunkSize is the chunk capacity used by New for chunked lists.
	DefaultChunkSize = 16
)

// Config holds construction parameters of lists.
type Config struct {
	InitialCapacity int
	ChunkSize       int
	Logger          *zap.Logger
}

// Option modifies the config.
type Option func(c *Config)

// DefaultConfig returns the default config.
func DefaultConfig() Config {
	return Config{
		InitialCapacity: DefaultInitialCapacity,
		ChunkSize:       DefaultChunkSize,
		Logger:          zap.NewNop(),
	}
}

// WithInitialCapacity sets the first storage size of growable lists.
func WithInitialCapacity(capacity int) Option {
	return func(c *Config) {
		c.InitialCapacity = capacity
	}
}

// WithChunkSize sets the capacity of every chunk allocated by a chunked list.
func WithChunkSize(size int) Option {
	return func(c *Config) {
		c.ChunkSize = size
	}
}

// WithLogger sets the logger receiving debug events about storage changes.
func WithLogger(log *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = log
	}
}

// Validate verifies that config is usable.
func (c Config) Validate() error {
	if c.InitialCapacity < 0 {
		return errors.Wrapf(ErrInvalidConfig, "initial capacity must not be negative, got %d", c.InitialCapacity)
	}
	if c.ChunkSize < 1 {
		return errors.Wrapf(ErrInvalidConfig, "chunk size must be positive, got %d", c.ChunkSize)
	}
	if c.Logger == nil {
		return errors.Wrap(ErrInvalidConfig, "logger must be set")
	}
	return nil
}

func newConfig(opts []Option) (Config, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}
