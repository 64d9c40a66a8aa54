// Package config loads helper defaults from JSON or YAML files.
//
//	theme:
//	  name: acme
//	  variant: dark
//	classes:
//	  form.submit: btn btn-success
//	inputDefaults:
//	  div: form-group
//	sanitize: true
//	locale: pt-BR
//	translations:
//	  pt:
//	    "Edit %s": "Editar %s"
//	security:
//	  key: change-me
//	  strict: true
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-boostform/pkg/basicform"
	"github.com/goliatone/go-boostform/pkg/boost"
	"github.com/goliatone/go-boostform/pkg/markup"
	"github.com/goliatone/go-boostform/pkg/optmap"
	"github.com/goliatone/go-boostform/pkg/render"
)

// Config is the file representation of helper and form defaults.
type Config struct {
	Theme         Theme                        `json:"theme" yaml:"theme"`
	Classes       map[string]string            `json:"classes" yaml:"classes"`
	InputDefaults map[string]any               `json:"inputDefaults" yaml:"inputDefaults"`
	Sanitize      bool                         `json:"sanitize" yaml:"sanitize"`
	Locale        string                       `json:"locale" yaml:"locale"`
	Translations  map[string]map[string]string `json:"translations" yaml:"translations"`
	Webroot       string                       `json:"webroot" yaml:"webroot"`
	ImageBase     string                       `json:"imageBase" yaml:"imageBase"`
	Security      Security                     `json:"security" yaml:"security"`

	Source string `json:"-" yaml:"-"`
}

// Theme names the go-theme manifest and variant supplying class tokens.
type Theme struct {
	Name    string `json:"name" yaml:"name"`
	Variant string `json:"variant" yaml:"variant"`
}

// Security configures form tamper protection.
type Security struct {
	Key    string `json:"key" yaml:"key"`
	Strict bool   `json:"strict" yaml:"strict"`
}

var classTokens = []string{
	boost.TokenDiv,
	boost.TokenLabel,
	boost.TokenWrapInput,
	boost.TokenInput,
	boost.TokenCheckboxDiv,
	boost.TokenCheckboxLabel,
	boost.TokenCheckboxInput,
	boost.TokenError,
	boost.TokenErrorClass,
	boost.TokenSelect,
	boost.TokenPicker,
	boost.TokenSubmit,
	boost.TokenSubmitDiv,
}

// LoadFile reads the configuration at path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads the configuration at path within fsys.
func LoadFS(fsys fs.FS, path string) (Config, error) {
	if fsys == nil {
		return Config{}, errors.New("config: file system is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes JSON, falling back to YAML, and validates the result.
func Parse(data []byte, source string) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("config: file %s is empty", source)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		cfg = Config{}
		if yamlErr := yaml.Unmarshal(data, &cfg); yamlErr != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", source, yamlErr)
		}
	}
	cfg.Source = source
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports unknown class tokens and incomplete theme settings.
func (c Config) Validate() error {
	for key := range c.Classes {
		if !slices.Contains(classTokens, key) {
			return fmt.Errorf("config: %s: unknown class token %q", c.source(), key)
		}
	}
	if strings.TrimSpace(c.Theme.Variant) != "" && strings.TrimSpace(c.Theme.Name) == "" {
		return fmt.Errorf("config: %s: theme variant %q without theme name", c.source(), c.Theme.Variant)
	}
	return nil
}

// HelperOptions converts the configuration into boost options.
func (c Config) HelperOptions() []boost.Option {
	var opts []boost.Option
	if len(c.Classes) > 0 {
		opts = append(opts, boost.WithClasses(boost.ClassesFromTokens(c.Classes)))
	}
	if len(c.InputDefaults) > 0 {
		defaults, _ := optmap.AsMap(c.InputDefaults)
		opts = append(opts, boost.WithInputDefaults(defaults.Clone()))
	}
	if c.Sanitize {
		opts = append(opts, boost.WithSanitizer(markup.NewSanitizer()))
	}
	if c.Locale != "" {
		opts = append(opts, boost.WithLocale(c.Locale))
	}
	if len(c.Translations) > 0 {
		catalog := make(render.CatalogTranslator, len(c.Translations))
		for locale, messages := range c.Translations {
			catalog[render.NormalizeLocale(locale)] = messages
		}
		opts = append(opts, boost.WithTranslator(catalog))
	}
	if c.Webroot != "" || c.ImageBase != "" {
		opts = append(opts, boost.WithWebroot(c.Webroot, c.ImageBase))
	}
	return opts
}

// FormOptions converts the configuration into basicform options.
func (c Config) FormOptions() []basicform.Option {
	var opts []basicform.Option
	if c.Security.Key != "" {
		opts = append(opts, basicform.WithSecurityKey([]byte(c.Security.Key)))
	}
	if c.Security.Strict {
		opts = append(opts, basicform.WithStrictFields(true))
	}
	return opts
}

func (c Config) source() string {
	if c.Source == "" {
		return "config"
	}
	return c.Source
}
