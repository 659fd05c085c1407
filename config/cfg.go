package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	WindowConfig struct {
		Width  int `yaml:"width" validate:"min=320"`
		Height int `yaml:"height" validate:"min=240"`
	}

	PresentationConfig struct {
		Title         string       `yaml:"title"`
		Theme         Theme        `yaml:"theme" validate:"gte=0"`
		FontSize      float64      `yaml:"font_size" validate:"min=6,max=96"`
		Window        WindowConfig `yaml:"window"`
		Fullscreen    bool         `yaml:"fullscreen"`
		DefaultSource string       `yaml:"default_source" validate:"required"`
	}

	StandaloneConfig struct {
		WorkDir            string   `yaml:"work_dir" sanitize:"path_clean" validate:"required"`
		WorkspacePrefix    string   `yaml:"workspace_prefix" validate:"required"`
		KeepWorkspace      bool     `yaml:"keep_workspace"`
		OutputNameTemplate string   `yaml:"output_name_template"`
		Transliterate      bool     `yaml:"transliterate"`
		Tool               string   `yaml:"tool" validate:"required"`
		BuildArgs          []string `yaml:"build_args" validate:"dive,required"`
		Env                []string `yaml:"env" validate:"dive,required"`
		GoVersion          string   `yaml:"go_version" validate:"required"`
	}

	Config struct {
		Version      int                `yaml:"version" validate:"eq=1"`
		Presentation PresentationConfig `yaml:"presentation"`
		Standalone   StandaloneConfig   `yaml:"standalone"`
		Logging      LoggingConfig      `yaml:"logging"`
		Reporting    ReporterConfig     `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// only fields we defined are allowed
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("failed to sanitize configuration: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration expands configuration template to get defaults and
// superimposes values from the file at the given path (if any) on top of
// them. Result is sanitized and validated.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, true)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare expands configuration template and returns it.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}

// WindowTitle returns title to use when document does not have one.
func (conf *PresentationConfig) WindowTitle(docTitle string) string {
	if len(docTitle) > 0 {
		return docTitle
	}
	return conf.Title
}
