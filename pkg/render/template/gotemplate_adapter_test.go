package template_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-boostform/pkg/basicform"
	"github.com/goliatone/go-boostform/pkg/boost"
	"github.com/goliatone/go-boostform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-boostform/pkg/testsupport"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "hello.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-global", nil, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "use-global.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"}, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "use-filter.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_HelperFuncs(t *testing.T) {
	helper, err := boost.New(basicform.New(basicform.WithModel("Widget")))
	if err != nil {
		t.Fatalf("new helper: %v", err)
	}
	engine := newEngine(t, gotemplate.WithHelperFuncs(helper.TemplateFuncs()))

	result, err := engine.RenderTemplate("widget-form", nil)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	for _, want := range []string{
		`<label class="col-xs-12 col-md-3 form-control-label" for="WidgetName">Name</label>`,
		`<div class="submit">`,
		`value="Save"`,
	} {
		if !strings.Contains(result, want) {
			t.Fatalf("expected %q in\n%s", want, result)
		}
	}
	if strings.Contains(result, "&lt;") {
		t.Fatalf("helper output should not be escaped: %s", result)
	}
}

func TestGoTemplateEngine_HelperFuncsAsData(t *testing.T) {
	helper, err := boost.New(basicform.New(basicform.WithModel("Widget")))
	if err != nil {
		t.Fatalf("new helper: %v", err)
	}
	engine := newEngine(t)

	data := map[string]any{
		"caption": "Go",
		"submit":  helper.TemplateFuncs()["submit"],
	}
	result, err := engine.RenderString(`{{ submit(caption, "div", false) }}`, data)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if !strings.HasPrefix(result, "<input") || !strings.Contains(result, `value="Go"`) {
		t.Fatalf("unexpected output: %s", result)
	}
}

func TestGoTemplateEngine_PassesValuesThrough(t *testing.T) {
	engine := newEngine(t)

	type field struct{ Name string }
	result, err := engine.RenderString(
		`{% for f in fields %}{{ f.Name }};{% endfor %}{% for m in models %}{{ m }},{% endfor %}{{ note }}`,
		map[string]any{
			"fields": []field{{Name: "title"}, {Name: "body"}},
			"models": []string{"Post", "Widget"},
			"note":   "<b>",
		},
	)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if want := "title;body;Post,Widget,&lt;b&gt;"; result != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, result)
	}
}

func TestGoTemplateEngine_RejectsUnsupportedData(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderString(`{{ x }}`, []string{"x"}); err == nil {
		t.Fatalf("expected an error for non-map data")
	}
}

func TestGoTemplateEngine_HelperErrorsSurface(t *testing.T) {
	helper, err := boost.New(basicform.New())
	if err != nil {
		t.Fatalf("new helper: %v", err)
	}
	engine := newEngine(t, gotemplate.WithHelperFuncs(helper.TemplateFuncs()))
	if _, err := engine.RenderString(`{{ input("") }}`, nil); err == nil {
		t.Fatalf("expected an error for an empty field name")
	}
}

func TestGoTemplateEngine_RequiresTemplates(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without a template source")
	}
}

func newEngine(t *testing.T, options ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(templatesFS)}, options...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
