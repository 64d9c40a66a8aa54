package boostform

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-boostform/pkg/boost"
)

// Themes resolves go-theme selections from manifests held in memory.
type Themes struct {
	manifests   map[string]*theme.Manifest
	defaultName string
}

var _ theme.ThemeSelector = (*Themes)(nil)

// NewThemes indexes manifests by name. The first manifest is the default
// when Select receives an empty name.
func NewThemes(manifests ...*theme.Manifest) (*Themes, error) {
	t := &Themes{manifests: make(map[string]*theme.Manifest, len(manifests))}
	for _, manifest := range manifests {
		if manifest == nil {
			continue
		}
		name := strings.TrimSpace(manifest.Name)
		if name == "" {
			return nil, fmt.Errorf("boostform: theme manifest without name")
		}
		if _, exists := t.manifests[name]; exists {
			return nil, fmt.Errorf("boostform: theme %q already registered", name)
		}
		t.manifests[name] = manifest
		if t.defaultName == "" {
			t.defaultName = name
		}
	}
	return t, nil
}

// Names lists the registered themes.
func (t *Themes) Names() []string {
	names := make([]string, 0, len(t.manifests))
	for name := range t.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select implements theme.ThemeSelector. An empty variant selects the
// manifest tokens alone.
func (t *Themes) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = t.defaultName
	}
	manifest, ok := t.manifests[name]
	if !ok {
		return nil, fmt.Errorf("boostform: unknown theme %q", name)
	}
	variant = strings.TrimSpace(variant)
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("boostform: theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// BuiltinThemes returns the bundled Bootstrap layouts: "bootstrap4" with
// the horizontal default and a "stacked" variant, and "bootstrap3".
func BuiltinThemes() *Themes {
	themes, err := NewThemes(bootstrap4(), bootstrap3())
	if err != nil {
		panic(err)
	}
	return themes
}

func bootstrap4() *theme.Manifest {
	return &theme.Manifest{
		Name:    "bootstrap4",
		Version: "4.0.0",
		Tokens:  boost.DefaultClasses().Tokens(),
		Variants: map[string]theme.Variant{
			"stacked": {Tokens: map[string]string{
				boost.TokenDiv:       "form-group",
				boost.TokenLabel:     "form-control-label",
				boost.TokenWrapInput: "form-control-wrap",
			}},
			"compact": {Tokens: map[string]string{
				boost.TokenLabel:     "col-sm-2 col-form-label col-form-label-sm",
				boost.TokenWrapInput: "col-sm-10",
				boost.TokenInput:     "form-control form-control-sm",
				boost.TokenSubmit:    "btn btn-sm btn-primary",
			}},
		},
	}
}

func bootstrap3() *theme.Manifest {
	return &theme.Manifest{
		Name:    "bootstrap3",
		Version: "3.4.1",
		Tokens: map[string]string{
			boost.TokenDiv:           "form-group",
			boost.TokenLabel:         "col-sm-3 control-label",
			boost.TokenWrapInput:     "col-sm-9",
			boost.TokenInput:         "form-control",
			boost.TokenCheckboxDiv:   "checkbox",
			boost.TokenCheckboxLabel: "checkbox-label",
			boost.TokenCheckboxInput: "checkbox-input",
			boost.TokenError:         "help-block",
			boost.TokenErrorClass:    "has-error",
			boost.TokenSelect:        "form-control",
			boost.TokenPicker:        "js-date-time-picker",
			boost.TokenSubmit:        "btn btn-default",
			boost.TokenSubmitDiv:     "form-group",
		},
	}
}
