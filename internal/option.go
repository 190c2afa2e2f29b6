package internal

import "github.com/brighthorizon/showcase/internal/source"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	source source.Source
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithSource overrides the document source built from the configuration.
// Used by tests to inject an in-memory source.
func WithSource(src source.Source) Option {
	return func(a *application) {
		a.source = src
	}
}
