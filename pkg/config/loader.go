package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures a single Load call.
type Option func(*loader)

type loader struct {
	files     []string
	optional  bool
	prefix    string
	overrides map[string]string
}

// WithEnvFiles reads variables from the given dotenv files.
// Missing files are an error; use the default (".env", optional) otherwise.
func WithEnvFiles(files ...string) Option {
	return func(l *loader) {
		l.files = files
		l.optional = false
	}
}

// WithPrefix only considers variables starting with prefix, e.g. "LEAD_".
func WithPrefix(prefix string) Option {
	return func(l *loader) { l.prefix = prefix }
}

// WithEnvironment supplies variables that take precedence over the process
// environment. Mostly useful in tests.
func WithEnvironment(vars map[string]string) Option {
	return func(l *loader) { l.overrides = vars }
}

// Load fills v from the environment using `env` struct tags.
//
// Lookup order, first match wins: WithEnvironment values, process environment,
// dotenv files. The process environment is never modified.
//
// Example:
//
//	type Config struct {
//		APIKey string        `env:"POSTMARK_SERVER_TOKEN,required"`
//		From   string        `env:"FROM_EMAIL" envDefault:"noreply@example.com"`
//		Wait   time.Duration `env:"LEAD_DISPATCH_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	l := &loader{files: []string{".env"}, optional: true}
	for _, opt := range opts {
		opt(l)
	}

	vars, err := l.environment()
	if err != nil {
		return err
	}

	if err := env.ParseWithOptions(v, env.Options{
		Environment: vars,
		Prefix:      l.prefix,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Meant for startup code where a broken config should stop the process.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func (l *loader) environment() (map[string]string, error) {
	vars := make(map[string]string)

	for _, file := range l.files {
		fileVars, err := godotenv.Read(file)
		if err != nil {
			if l.optional && errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, errors.Join(ErrReadingEnvFile, fmt.Errorf("%s: %w", file, err))
		}
		for k, val := range fileVars {
			if _, seen := vars[k]; !seen {
				vars[k] = val
			}
		}
	}

	for _, kv := range os.Environ() {
		if k, val, ok := strings.Cut(kv, "="); ok {
			vars[k] = val
		}
	}

	for k, val := range l.overrides {
		vars[k] = val
	}

	return vars, nil
}
