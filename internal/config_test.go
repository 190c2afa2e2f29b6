package internal

import (
	"strings"
	"testing"
)

func TestAuthConfig_DisabledMode(t *testing.T) {
	cfg := AuthConfig{Mode: "disabled", Token: ""}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled mode should pass: %v", err)
	}
	if cfg.AuthEnabled() {
		t.Error("disabled mode should not be enabled")
	}
}

func TestAuthConfig_EmptyModeDefaultsDisabled(t *testing.T) {
	cfg := AuthConfig{Mode: "", Token: ""}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty mode should default to disabled: %v", err)
	}
	if cfg.Mode != AuthModeDisabled {
		t.Errorf("mode = %q, want %q", cfg.Mode, AuthModeDisabled)
	}
}

func TestAuthConfig_TokenModeValid(t *testing.T) {
	cfg := AuthConfig{Mode: "token", Token: "mysecret"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("token mode with token should pass: %v", err)
	}
	if !cfg.AuthEnabled() {
		t.Error("token mode should be enabled")
	}
}

func TestAuthConfig_TokenModeEmptyToken(t *testing.T) {
	cfg := AuthConfig{Mode: "token", Token: ""}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("token mode with empty token should fail")
	}
	if !strings.Contains(err.Error(), "token is empty") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAuthConfig_InvalidMode(t *testing.T) {
	cfg := AuthConfig{Mode: "magic", Token: "x"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("invalid mode should fail validation")
	}
}

func TestSourceConfig_EmptyKindDefaultsGitHub(t *testing.T) {
	cfg := SourceConfig{GitHub: GitHubSourceConfig{Owner: "acme", Repo: "projects"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty kind should default to github: %v", err)
	}
	if cfg.Kind != SourceGitHub {
		t.Errorf("kind = %q, want %q", cfg.Kind, SourceGitHub)
	}
}

func TestSourceConfig_UnknownKind(t *testing.T) {
	cfg := SourceConfig{Kind: "ftp"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown kind should fail validation")
	}
}

func TestSourceConfig_GitHubRequiresOwnerAndRepo(t *testing.T) {
	cfg := SourceConfig{Kind: SourceGitHub, GitHub: GitHubSourceConfig{Owner: "acme"}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("github kind without repo should fail")
	}
}

func TestSourceConfig_ManifestRequiresPath(t *testing.T) {
	cfg := SourceConfig{Kind: SourceManifest}
	if err := cfg.Validate(); err == nil {
		t.Fatal("manifest kind without path should fail")
	}
	cfg.Manifest.Path = "config/manifest.yaml"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("manifest kind with path should pass: %v", err)
	}
}

func TestSourceConfig_DirRequiresPath(t *testing.T) {
	cfg := SourceConfig{Kind: SourceDir}
	if err := cfg.Validate(); err == nil {
		t.Fatal("dir kind without path should fail")
	}
}

func TestGalleryConfig_PageSizeBounds(t *testing.T) {
	cfg := GalleryConfig{Title: "Projects", PageSize: 0}
	if err := cfg.Validate(); err == nil {
		t.Fatal("page size 0 should fail")
	}
	cfg.PageSize = 101
	if err := cfg.Validate(); err == nil {
		t.Fatal("page size over 100 should fail")
	}
	cfg.PageSize = 6
	if err := cfg.Validate(); err != nil {
		t.Fatalf("page size 6 should pass: %v", err)
	}
}

func TestFullConfig_AuthValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Source.GitHub = GitHubSourceConfig{Owner: "acme", Repo: "projects"}
	cfg.Auth.Mode = "token"
	cfg.Auth.Token = ""
	err := cfg.Validate()
	if err == nil {
		t.Fatal("full config validate should catch auth error")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.App.HTTP.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.App.HTTP.Port)
	}
	if cfg.Source.Kind != SourceGitHub {
		t.Errorf("source kind = %q, want %q", cfg.Source.Kind, SourceGitHub)
	}
	if cfg.Gallery.PageSize != 6 {
		t.Errorf("page size = %d, want 6", cfg.Gallery.PageSize)
	}
}
