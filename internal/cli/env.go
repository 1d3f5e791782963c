package cli

import (
	"io"
	"os"
	"time"

	"github.com/asr4memory/go-asr/internal/config"
	"github.com/asr4memory/go-asr/internal/logging"
)

// Env holds injectable dependencies for CLI commands.
// This is the central injection point for testing CLI commands in
// isolation.
//
// All fields have production defaults via DefaultEnv(). Tests can
// override specific fields using the With* options.
type Env struct {
	// I/O and environment
	Stderr io.Writer
	Getenv func(string) string
	Now    func() time.Time

	// ConfigLoader resolves the application configuration.
	ConfigLoader ConfigLoader

	// NewLogger builds the workflow logger once the configuration is
	// known.
	NewLogger func(debug bool) *logging.Logger
}

// ConfigLoader loads and provides access to configuration.
type ConfigLoader interface {
	Load(path string) (*config.Config, error)
}

// EnvOption configures an Env.
type EnvOption func(*Env)

// WithStderr sets the stderr writer.
func WithStderr(w io.Writer) EnvOption {
	return func(e *Env) {
		e.Stderr = w
	}
}

// WithGetenv sets the environment variable getter.
func WithGetenv(fn func(string) string) EnvOption {
	return func(e *Env) {
		e.Getenv = fn
	}
}

// WithNow sets the time provider.
func WithNow(fn func() time.Time) EnvOption {
	return func(e *Env) {
		e.Now = fn
	}
}

// WithConfigLoader sets the config loader.
func WithConfigLoader(l ConfigLoader) EnvOption {
	return func(e *Env) {
		e.ConfigLoader = l
	}
}

// WithLogger sets the logger factory.
func WithLogger(fn func(debug bool) *logging.Logger) EnvOption {
	return func(e *Env) {
		e.NewLogger = fn
	}
}

// DefaultEnv returns an Env with production defaults.
func DefaultEnv() *Env {
	return &Env{
		Stderr:       os.Stderr,
		Getenv:       os.Getenv,
		Now:          time.Now,
		ConfigLoader: &defaultConfigLoader{},
		NewLogger:    logging.New,
	}
}

// NewEnv creates an Env with the given options applied to defaults.
func NewEnv(opts ...EnvOption) *Env {
	env := DefaultEnv()
	for _, opt := range opts {
		opt(env)
	}
	return env
}

// defaultConfigLoader implements ConfigLoader using the config package.
type defaultConfigLoader struct{}

func (defaultConfigLoader) Load(path string) (*config.Config, error) {
	return config.Load(path)
}

// Compile-time interface verification.
var _ ConfigLoader = (*defaultConfigLoader)(nil)
