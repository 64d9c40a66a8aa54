package boostform_test

import (
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-boostform"
	"github.com/goliatone/go-boostform/pkg/boost"
	"github.com/goliatone/go-boostform/pkg/config"
	"github.com/goliatone/go-boostform/pkg/model"
	"github.com/goliatone/go-boostform/pkg/optmap"
	"github.com/goliatone/go-boostform/pkg/view"
)

func widgetRegistry() *model.Registry {
	registry := model.NewRegistry()
	registry.MustRegister("Widget",
		model.Field{Name: "id", Type: model.FieldTypeInteger, PrimaryKey: true},
		model.Field{Name: "title", Type: model.FieldTypeString},
		model.Field{Name: "published", Type: model.FieldTypeBoolean},
	)
	return registry
}

func assertContains(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in\n%s", want, got)
		}
	}
}

func TestRenderModel(t *testing.T) {
	form, err := boostform.NewForm(config.Config{}, boostform.Request{
		Model:        "Widget",
		Introspector: widgetRegistry(),
		Request:      view.StaticRequest("edit"),
		Values:       map[string]any{"Widget.title": "Hello"},
	})
	if err != nil {
		t.Fatalf("new form: %v", err)
	}

	out, err := form.RenderModel(nil, optmap.Map{"legend": true}, []string{"published"}, "Save")
	if err != nil {
		t.Fatalf("render model: %v", err)
	}
	assertContains(t, out,
		`<form`,
		`role="form"`,
		`<legend>Edit Widget</legend>`,
		`value="Hello"`,
		`value="Save"`,
		`</form>`,
	)
	if strings.Contains(out, "published") {
		t.Fatalf("blacklisted field rendered:\n%s", out)
	}
}

func TestRenderModelRequiresModel(t *testing.T) {
	form, err := boostform.NewForm(config.Config{}, boostform.Request{})
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	if _, err := form.RenderModel(nil, nil, nil, ""); err == nil {
		t.Fatalf("expected error without model")
	}
}

func TestNewFormResolvesConfiguredTheme(t *testing.T) {
	cfg := config.Config{Theme: config.Theme{Name: "bootstrap3"}}
	form, err := boostform.NewForm(cfg, boostform.Request{Model: "Widget", Introspector: widgetRegistry()})
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	if got := form.Classes().Submit; got != "btn btn-default" {
		t.Fatalf("expected bootstrap3 submit class, got %q", got)
	}

	out, err := form.Input("title", nil)
	if err != nil {
		t.Fatalf("input: %v", err)
	}
	assertContains(t, out, `class="form-group"`, `class="col-sm-9"`)
}

func TestNewFormConfigClassesWinOverTheme(t *testing.T) {
	cfg := config.Config{
		Theme:   config.Theme{Name: "bootstrap4", Variant: "compact"},
		Classes: map[string]string{boost.TokenSubmit: "btn btn-success"},
	}
	form, err := boostform.NewForm(cfg, boostform.Request{})
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	classes := form.Classes()
	if classes.Submit != "btn btn-success" {
		t.Fatalf("submit class = %q", classes.Submit)
	}
	if classes.WrapInput != "col-sm-10" {
		t.Fatalf("wrapInput class = %q", classes.WrapInput)
	}
}

func TestNewFormUnknownTheme(t *testing.T) {
	cfg := config.Config{Theme: config.Theme{Name: "material"}}
	if _, err := boostform.NewForm(cfg, boostform.Request{}); err == nil {
		t.Fatalf("expected unknown theme error")
	}
}

func TestNewFormPostLinkUsesBlocks(t *testing.T) {
	form, err := boostform.NewForm(config.Config{}, boostform.Request{Model: "Widget"})
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	out, err := form.PostLink("Delete", "/widgets/delete/1", optmap.Map{"block": "postLink"})
	if err != nil {
		t.Fatalf("post link: %v", err)
	}
	if strings.Contains(out, "<form") {
		t.Fatalf("expected form moved out of link markup:\n%s", out)
	}
	assertContains(t, form.Blocks.Fetch("postLink"), "<form")
}

func TestThemesSelect(t *testing.T) {
	themes, err := boostform.NewThemes(
		&theme.Manifest{Name: "acme", Tokens: map[string]string{boost.TokenSubmit: "btn"}},
		&theme.Manifest{Name: "zeta", Variants: map[string]theme.Variant{"dark": {}}},
	)
	if err != nil {
		t.Fatalf("new themes: %v", err)
	}
	if diff := cmp.Diff([]string{"acme", "zeta"}, themes.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	selection, err := themes.Select("", "")
	if err != nil {
		t.Fatalf("select default: %v", err)
	}
	if selection.Theme != "acme" {
		t.Fatalf("expected default theme acme, got %q", selection.Theme)
	}
	if _, err := themes.Select("zeta", "dark"); err != nil {
		t.Fatalf("select variant: %v", err)
	}
	if _, err := themes.Select("zeta", "light"); err == nil {
		t.Fatalf("expected unknown variant error")
	}
}

func TestNewThemesRejectsInvalidManifests(t *testing.T) {
	if _, err := boostform.NewThemes(&theme.Manifest{}); err == nil {
		t.Fatalf("expected error for unnamed manifest")
	}
	if _, err := boostform.NewThemes(&theme.Manifest{Name: "a"}, &theme.Manifest{Name: "a"}); err == nil {
		t.Fatalf("expected error for duplicate manifest")
	}
}
