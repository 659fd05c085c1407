package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	p := cfg.Presentation
	if p.Theme != ThemeDark {
		t.Errorf("Theme = %s, want dark", p.Theme)
	}
	if p.DefaultSource != "slides.yaml" {
		t.Errorf("DefaultSource = %q", p.DefaultSource)
	}
	if p.Window.Width < 320 || p.Window.Height < 240 {
		t.Errorf("unexpected window size %+v", p.Window)
	}

	s := cfg.Standalone
	if s.Tool != "go" || len(s.BuildArgs) == 0 || s.BuildArgs[0] != "build" {
		t.Errorf("unexpected build command %q %q", s.Tool, s.BuildArgs)
	}
	if s.WorkspacePrefix != ".deck-out-" {
		t.Errorf("WorkspacePrefix = %q", s.WorkspacePrefix)
	}
	if s.KeepWorkspace {
		t.Error("workspace must not be kept by default")
	}
	if len(s.WorkDir) == 0 {
		t.Error("WorkDir must not be empty")
	}
	if cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("file logging level = %q, want none", cfg.Logging.FileLogger.Level)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
presentation:
  theme: light
  font_size: 24
  window:
    width: 800
    height: 600
standalone:
  keep_workspace: true
  output_name_template: "{{ .Title | lower }}"
logging:
  console:
    level: debug
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Presentation.Theme != ThemeLight {
		t.Errorf("Theme = %s, want light", cfg.Presentation.Theme)
	}
	if cfg.Presentation.FontSize != 24 {
		t.Errorf("FontSize = %v, want 24", cfg.Presentation.FontSize)
	}
	if cfg.Presentation.Window != (WindowConfig{800, 600}) {
		t.Errorf("Window = %+v", cfg.Presentation.Window)
	}
	if !cfg.Standalone.KeepWorkspace {
		t.Error("Expected KeepWorkspace to be true")
	}
	if cfg.Standalone.OutputNameTemplate != "{{ .Title | lower }}" {
		t.Errorf("OutputNameTemplate must stay unexpanded, got %q", cfg.Standalone.OutputNameTemplate)
	}
	// values absent in the file come from defaults
	if cfg.Standalone.Tool != "go" {
		t.Errorf("Tool = %q, want default", cfg.Standalone.Tool)
	}
	if cfg.Presentation.DefaultSource != "slides.yaml" {
		t.Errorf("DefaultSource = %q, want default", cfg.Presentation.DefaultSource)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\npresentation:\n  theme: dark\n  invalid indent\n"},
		{"unknown field", "version: 1\npresentation:\n  colour: red\n"},
		{"bad version", "version: 2\n"},
		{"bad theme", "version: 1\npresentation:\n  theme: sepia\n"},
		{"tiny window", "version: 1\npresentation:\n  window:\n    width: 10\n"},
		{"empty tool", "version: 1\nstandalone:\n  tool: \"\"\n"},
		{"bad log level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if strings.Contains(string(data), "{{ if") {
		t.Error("Prepare() must expand templates")
	}
	if _, err := unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Presentation.Theme = ThemeLight

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "theme: light") {
		t.Errorf("theme must be dumped by name:\n%s", data)
	}

	cfg2, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Presentation.Theme != ThemeLight || cfg2.Version != cfg.Version {
		t.Errorf("mismatch after dump/load: %+v", cfg2.Presentation)
	}
}

func TestUnmarshalConfig_WrapsValidationError(t *testing.T) {
	_, err := unmarshalConfig([]byte("version: 99\n"), &Config{}, true)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "validat") {
		t.Errorf("expected error to mention validation, got: %v", err)
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped error, got bare error: %v", err)
	}
}

func TestWindowTitle(t *testing.T) {
	conf := &PresentationConfig{Title: "deck"}
	if got := conf.WindowTitle(""); got != "deck" {
		t.Errorf("WindowTitle(\"\") = %q", got)
	}
	if got := conf.WindowTitle("Talk"); got != "Talk" {
		t.Errorf("WindowTitle(\"Talk\") = %q", got)
	}
}

func TestTheme(t *testing.T) {
	tests := []struct {
		input   string
		want    Theme
		wantErr bool
	}{
		{"dark", ThemeDark, false},
		{"Light", ThemeLight, false},
		{" light ", ThemeLight, false},
		{"sepia", ThemeDark, true},
	}
	for _, tt := range tests {
		got, err := ParseTheme(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTheme(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseTheme(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}

	if Theme(7).IsValid() {
		t.Error("Theme(7) must be invalid")
	}
	if _, err := Theme(7).MarshalText(); err == nil {
		t.Error("MarshalText() of invalid theme must fail")
	}
	if got := Theme(7).String(); got != "Theme(7)" {
		t.Errorf("String() = %q", got)
	}
}
