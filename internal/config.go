package internal

import (
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/brighthorizon/showcase/internal/gallery"
)

// Auth modes.
const (
	AuthModeDisabled = "disabled"
	AuthModeToken    = "token"
)

// Source kinds.
const (
	SourceGitHub   = "github"
	SourceManifest = "manifest"
	SourceDir      = "dir"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Source  SourceConfig      `yaml:"source"`
	Gallery GalleryConfig     `yaml:"gallery"`
	Auth    AuthConfig        `yaml:"auth"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Source.Validate(); err != nil {
		return err
	}
	if err := c.Gallery.Validate(); err != nil {
		return err
	}
	return c.Auth.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// SourceConfig selects and configures the document source.
//
// Kind picks the listing strategy:
//   - "github": one directory of a GitHub repository, via the contents API.
//   - "manifest": a local YAML manifest naming documents under a base URL.
//   - "dir": a local directory of .md files.
type SourceConfig struct {
	Kind     string               `yaml:"kind"`
	GitHub   GitHubSourceConfig   `yaml:"github"`
	Manifest ManifestSourceConfig `yaml:"manifest"`
	Dir      DirSourceConfig      `yaml:"dir"`
}

// Validate validates the source configuration for the selected kind.
func (c *SourceConfig) Validate() error {
	if c.Kind == "" {
		c.Kind = SourceGitHub
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Kind, validation.Required, validation.In(SourceGitHub, SourceManifest, SourceDir)),
	); err != nil {
		return err
	}
	switch c.Kind {
	case SourceGitHub:
		return c.GitHub.Validate()
	case SourceManifest:
		return c.Manifest.Validate()
	default:
		return c.Dir.Validate()
	}
}

// GitHubSourceConfig holds the GitHub repository coordinates.
type GitHubSourceConfig struct {
	Owner   string `yaml:"owner"`
	Repo    string `yaml:"repo"`
	Dir     string `yaml:"dir"`
	APIBase string `yaml:"api_base"`
	Token   string `yaml:"token"`
}

// Validate validates the GitHub source configuration.
func (c *GitHubSourceConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Owner, validation.Required),
		validation.Field(&c.Repo, validation.Required),
	)
}

// ManifestSourceConfig holds the manifest file location.
type ManifestSourceConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the manifest source configuration.
func (c *ManifestSourceConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// DirSourceConfig holds the local documents directory.
type DirSourceConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the directory source configuration.
func (c *DirSourceConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// GalleryConfig holds gallery presentation settings.
type GalleryConfig struct {
	Title    string `yaml:"title"`
	PageSize int    `yaml:"page_size"`
}

// Validate validates the gallery configuration.
func (c *GalleryConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.PageSize, validation.Required, validation.Min(1), validation.Max(100)),
	)
}

// AuthConfig holds authentication configuration.
//
// Mode controls how authentication is enforced:
//   - "disabled" (default): no authentication required, suitable for local dev.
//   - "token": Bearer token authentication; Token must be non-empty.
type AuthConfig struct {
	Mode  string `yaml:"mode"`
	Token string `yaml:"token"`
}

// Validate validates the auth configuration.
func (c *AuthConfig) Validate() error {
	// Normalise empty mode to "disabled" for backward compatibility.
	if c.Mode == "" {
		c.Mode = AuthModeDisabled
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(AuthModeDisabled, AuthModeToken)),
	); err != nil {
		return err
	}
	if c.Mode == AuthModeToken && c.Token == "" {
		return fmt.Errorf("auth: mode is %q but token is empty", AuthModeToken)
	}
	return nil
}

// AuthEnabled returns true when authentication is active.
func (c *AuthConfig) AuthEnabled() bool {
	return c.Mode == AuthModeToken
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Source: SourceConfig{
			Kind: SourceGitHub,
		},
		Gallery: GalleryConfig{
			Title:    "Projects",
			PageSize: gallery.DefaultPageSize,
		},
		Auth: AuthConfig{
			Mode: AuthModeDisabled,
		},
	}
}
