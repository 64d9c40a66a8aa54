package boost_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-boostform/pkg/basicform"
	"github.com/goliatone/go-boostform/pkg/boost"
	"github.com/goliatone/go-boostform/pkg/markup"
	"github.com/goliatone/go-boostform/pkg/model"
	"github.com/goliatone/go-boostform/pkg/optmap"
	"github.com/goliatone/go-boostform/pkg/render"
	"github.com/goliatone/go-boostform/pkg/view"
)

var widgetFields = []model.Field{
	{Name: "id", Type: model.FieldTypeInteger, PrimaryKey: true},
	{Name: "name", Type: model.FieldTypeString, Length: 120, Required: true},
	{Name: "published", Type: model.FieldTypeBoolean},
	{Name: "price", Type: model.FieldTypeFloat},
	{Name: "kind", Type: model.FieldTypeString, Choices: []model.Choice{
		{Value: "basic", Label: "Basic"},
		{Value: "deluxe", Label: "Deluxe"},
	}},
	{Name: "released_on", Type: model.FieldTypeDate},
}

var thingFields = []model.Field{
	{Name: "a", Type: model.FieldTypeString},
	{Name: "b", Type: model.FieldTypeString},
	{Name: "c", Type: model.FieldTypeString},
}

func introspector() render.Introspector {
	return render.IntrospectorFunc(func(name string) []model.Field {
		switch name {
		case "Widget":
			return widgetFields
		case "Thing":
			return thingFields
		}
		return nil
	})
}

func newRenderer(modelName string, options ...basicform.Option) *basicform.Renderer {
	base := []basicform.Option{
		basicform.WithModel(modelName),
		basicform.WithIntrospector(introspector()),
		basicform.WithIDGenerator(func() string { return "abc" }),
	}
	return basicform.New(append(base, options...)...)
}

func newHelper(t *testing.T, renderer render.FormRenderer, options ...boost.Option) *boost.Helper {
	t.Helper()
	base := []boost.Option{boost.WithIntrospector(introspector())}
	h, err := boost.New(renderer, append(base, options...)...)
	if err != nil {
		t.Fatalf("new helper: %v", err)
	}
	return h
}

func mustInput(t *testing.T, h *boost.Helper, field string, opts optmap.Map) string {
	t.Helper()
	out, err := h.Input(field, opts)
	if err != nil {
		t.Fatalf("input %s: %v", field, err)
	}
	return out
}

func assertContains(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in\n%s", want, got)
		}
	}
}

func assertNotContains(t *testing.T, got string, unwanted ...string) {
	t.Helper()
	for _, item := range unwanted {
		if strings.Contains(got, item) {
			t.Fatalf("did not expect %q in\n%s", item, got)
		}
	}
}

func assertOrder(t *testing.T, got string, parts ...string) {
	t.Helper()
	last := -1
	for _, part := range parts {
		idx := strings.Index(got, part)
		if idx < 0 {
			t.Fatalf("expected %q in\n%s", part, got)
		}
		if idx <= last {
			t.Fatalf("expected %q after %q in\n%s", part, parts, got)
		}
		last = idx
	}
}

func TestNewRequiresRenderer(t *testing.T) {
	if _, err := boost.New(nil); err == nil {
		t.Fatalf("expected an error without renderer")
	}
}

func TestInputWithoutLabelKeyOmitsLabel(t *testing.T) {
	h := newHelper(t, newRenderer("Widget"))

	for _, field := range []string{"Widget.name", "Widget.price", "Widget.kind", "Widget.published", "Widget.released_on"} {
		out := mustInput(t, h, field, nil)
		assertNotContains(t, out, "<label")
	}
	out := mustInput(t, h, "Widget.name", optmap.Map{"label": false})
	assertNotContains(t, out, "<label")
}

func TestInputBootstrapLayout(t *testing.T) {
	h := newHelper(t, newRenderer("Widget"))
	out := mustInput(t, h, "Widget.name", optmap.Map{"label": "Title"})

	assertContains(t, out,
		`class="form-group row required"`,
		`<label class="col-xs-12 col-md-3 form-control-label" for="WidgetName">Title</label>`,
		`class="col-xs-12 col-md-9 required"`,
		`class="form-control form-control-static"`,
		`name="data[Widget][name]"`,
	)
	assertOrder(t, out, `class="form-group row required"`, "<label", `class="col-xs-12 col-md-9 required"`, "<input")
	if strings.Contains(out, `input text`) {
		t.Fatalf("delegate wrapper class should be replaced: %s", out)
	}
}

func TestInputLabelMapKeepsAttributes(t *testing.T) {
	h := newHelper(t, newRenderer("Widget"))
	out := mustInput(t, h, "Widget.name", optmap.Map{"label": optmap.Map{"text": "Title", "class": "sr-only"}})
	assertContains(t, out, `<label class="sr-only" for="WidgetName">Title</label>`)
}

func TestInputDisablesWrappers(t *testing.T) {
	h := newHelper(t, newRenderer("Widget"))
	out := mustInput(t, h, "Widget.price", optmap.Map{"div": false, "wrapInput": false})
	if !strings.HasPrefix(out, "<input") {
		t.Fatalf("expected a bare input, got %s", out)
	}

	out = mustInput(t, h, "Widget.price", optmap.Map{"div": optmap.Map{"id": "price-row"}})
	assertContains(t, out, `id="price-row"`)
	assertNotContains(t, out, "form-group row", "input number")
}

func TestInputCheckboxWrapsInputInLabel(t *testing.T) {
	h := newHelper(t, newRenderer("Widget"))
	out := mustInput(t, h, "Widget.published", optmap.Map{"label": optmap.Map{"text": "Published", "class": "custom"}})

	assertContains(t, out,
		`<div class="form-check">`,
		`class="form-check-label"`,
		`class="form-check-input"`,
		` Published</label>`,
	)
	assertNotContains(t, out, "custom", "form-control-label", "form-control-static")
	assertOrder(t, out, `<div class="form-check">`, `value="0"`, "<label", `type="checkbox"`, " Published</label>")
}

func TestInputCheckboxLeavesBeforeMarkupAlone(t *testing.T) {
	h := newHelper(t, newRenderer("Widget"))
	before := `<label class="hint">Terms</label><input type="checkbox" class="keep" name="agree">`
	out := mustInput(t, h, "Widget.published", optmap.Map{"label": "Published", "before": before})

	if got := strings.Count(out, before); got != 1 {
		t.Fatalf("expected before markup verbatim once, found %d in\n%s", got, out)
	}
	assertNotContains(t, out, "form-control-label", "boostform:before")
	assertOrder(t, out,
		before,
		`<label class="form-check-label" for="WidgetPublished">`,
		`id="WidgetPublished"`,
		" Published</label>",
	)
}

func TestInputCheckboxWithoutLabelKeepsMarkup(t *testing.T) {
	h := newHelper(t, newRenderer("Widget"))
	out := mustInput(t, h, "Widget.published", nil)
	assertContains(t, out, `class="form-check-input"`, `<div class="form-check">`)
	assertNotContains(t, out, "<label")

	out = mustInput(t, h, "Widget.published", optmap.Map{"checkboxDiv": false})
	assertNotContains(t, out, `<div class="form-check">`)
}

func TestInputDateTypesGetPickerClass(t *testing.T) {
	h := newHelper(t, newRenderer("Widget"))

	out := mustInput(t, h, "Widget.released_on", nil)
	assertContains(t, out, `class="form-control form-control-static js-date-time-picker date"`, `type="text"`)

	for _, kind := range []string{"datetime", "time"} {
		out := mustInput(t, h, "Widget.starts", optmap.Map{"type": kind})
		assertContains(t, out, "js-date-time-picker "+kind)
	}
}

func TestInputSelectAndSubmitClasses(t *testing.T) {
	h := newHelper(t, newRenderer("Widget"))

	out := mustInput(t, h, "Widget.kind", nil)
	assertContains(t, out, `class="form-control form-control-static c-select"`, `<option value="deluxe">Deluxe</option>`)

	out = mustInput(t, h, "Widget.go", optmap.Map{"type": "submit", "class": "ignored"})
	assertContains(t, out, `class="btn btn-primary"`)
	assertNotContains(t, out, "ignored")
}

func TestInputCheckboxListOptions(t *testing.T) {
	h := newHelper(t, newRenderer("Widget"))
	out := mustInput(t, h, "Widget.kind", optmap.Map{"multiple": "checkbox"})

	assertContains(t, out, ` Basic</label>`, ` Deluxe</label>`, `type="hidden"`)
	assertNotContains(t, out, `<div class="checkbox">`)
}

func TestInputErrors(t *testing.T) {
	errs := render.NewErrorSet(map[string][]string{"Widget.name": {"is required"}})
	h := newHelper(t, newRenderer("Widget", basicform.WithErrors(errs)))

	out := mustInput(t, h, "Widget.name", nil)
	assertContains(t, out, `has-error error`, `<span class="help-block text-danger">is required</span>`)
	assertOrder(t, out, "<input", "<span")

	out = mustInput(t, h, "Widget.name", optmap.Map{"errorMessage": false})
	assertContains(t, out, `has-error error`)
	assertNotContains(t, out, "is required")

	out = mustInput(t, h, "Widget.name", optmap.Map{"error": false})
	assertNotContains(t, out, "is required")

	out = mustInput(t, h, "Widget.name", optmap.Map{"errorClass": "is-invalid"})
	assertContains(t, out, "is-invalid")
	assertNotContains(t, out, "has-error")

	out = mustInput(t, h, "Widget.price", nil)
	assertNotContains(t, out, "has-error", "help-block")
}

func TestInputBeforeAndAfterInput(t *testing.T) {
	h := newHelper(t, newRenderer("Widget"))
	out := mustInput(t, h, "Widget.price", optmap.Map{
		"beforeInput": `<span class="input-group-addon">$</span>`,
		"afterInput":  `<small>per unit</small>`,
	})
	assertOrder(t, out, `class="col-xs-12 col-md-9"`, `<span class="input-group-addon">$</span>`, "<input", "<small>per unit</small>")
}

func TestInputSanitizesFreeFormContent(t *testing.T) {
	h := newHelper(t, newRenderer("Widget"), boost.WithSanitizer(markup.NewSanitizer()))
	out := mustInput(t, h, "Widget.price", optmap.Map{"afterInput": `<script>alert(1)</script><em>note</em>`})
	assertContains(t, out, "<em>note</em>")
	assertNotContains(t, out, "<script")
}

func TestInputDefaultsLayering(t *testing.T) {
	h := newHelper(t, newRenderer("Widget"), boost.WithInputDefaults(optmap.Map{"class": "form-control"}))
	out := mustInput(t, h, "Widget.price", nil)
	assertContains(t, out, `class="form-control"`)

	out = mustInput(t, h, "Widget.price", optmap.Map{"class": "wide"})
	assertContains(t, out, `class="wide"`)
}

func TestInputReturnsDelegateErrors(t *testing.T) {
	h := newHelper(t, newRenderer("Widget", basicform.WithStrictFields(true)))
	_, err := h.Input("Widget.nope", nil)
	if !errors.Is(err, basicform.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestNormalizeOptions(t *testing.T) {
	h := newHelper(t, newRenderer("Widget"))

	got := h.NormalizeOptions(optmap.Map{"label": "Title", "data-x": "1"})
	want := optmap.Map{
		"error":       optmap.Map{"attributes": optmap.Map{"wrap": "span", "class": "help-block text-danger"}},
		"wrapInput":   "col-xs-12 col-md-9",
		"checkboxDiv": "form-check",
		"beforeInput": "",
		"afterInput":  "",
		"errorClass":  "has-error error",
		"div":         "form-group row",
		"label":       optmap.Map{"class": "col-xs-12 col-md-3 form-control-label", "text": "Title"},
		"class":       "form-control form-control-static",
		"data-x":      "1",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}

	if got := h.NormalizeOptions(nil); got["label"] != false {
		t.Fatalf("missing label should normalize to false, got %#v", got["label"])
	}
	got = h.NormalizeOptions(optmap.Map{"label": true})
	if diff := cmp.Diff(optmap.Map{"class": "col-xs-12 col-md-3 form-control-label"}, got["label"]); diff != "" {
		t.Fatalf("true label mismatch (-want +got):\n%s", diff)
	}
}

func TestInputTrueLabelUsesFieldName(t *testing.T) {
	h := newHelper(t, newRenderer("Widget"))

	out := mustInput(t, h, "Widget.name", optmap.Map{"label": true})
	assertContains(t, out, `<label class="col-xs-12 col-md-3 form-control-label" for="WidgetName">Name</label>`)

	out = mustInput(t, h, "Widget.published", optmap.Map{"label": true})
	assertContains(t, out, `<label class="form-check-label" for="WidgetPublished">`, " Published</label>")
}

func TestInputsSkipsBlacklistedFields(t *testing.T) {
	h := newHelper(t, newRenderer("Thing"))
	out, err := h.Inputs(nil, []string{"b"}, nil)
	if err != nil {
		t.Fatalf("inputs: %v", err)
	}
	if got := strings.Count(out, "<input"); got != 2 {
		t.Fatalf("expected 2 inputs, got %d in %s", got, out)
	}
	assertOrder(t, out, `id="ThingA"`, `id="ThingC"`)
	assertNotContains(t, out, "ThingB", "<fieldset")
}

func TestInputsBlacklistMatchesLastSegment(t *testing.T) {
	h := newHelper(t, newRenderer("Widget"))
	out, err := h.Inputs([]string{"Widget.name", "Widget.price"}, []string{"price"}, nil)
	if err != nil {
		t.Fatalf("inputs: %v", err)
	}
	assertContains(t, out, "WidgetName")
	assertNotContains(t, out, "WidgetPrice")
}

func TestInputsLegend(t *testing.T) {
	cases := []struct {
		action string
		want   string
	}{
		{action: "edit_widget", want: "Edit Widget"},
		{action: "update", want: "Edit Widget"},
		{action: "add", want: "New Widget"},
	}
	for _, tc := range cases {
		t.Run(tc.action, func(t *testing.T) {
			h := newHelper(t, newRenderer("Widget"), boost.WithRequest(view.StaticRequest(tc.action)))
			out, err := h.Inputs([]string{"name"}, nil, optmap.Map{"legend": true})
			if err != nil {
				t.Fatalf("inputs: %v", err)
			}
			assertContains(t, out, "<fieldset><legend>"+tc.want+"</legend>")
			assertOrder(t, out, "<legend>", "WidgetName", "</fieldset>")
		})
	}
}

func TestInputsLegendShorthandAndFieldsetClass(t *testing.T) {
	h := newHelper(t, newRenderer("Thing"))

	out, err := h.Inputs("Details", nil, nil)
	if err != nil {
		t.Fatalf("inputs: %v", err)
	}
	assertContains(t, out, "<fieldset><legend>Details</legend>", "ThingA", "ThingB", "ThingC")

	out, err = h.Inputs(nil, nil, optmap.Map{"fieldset": "compact", "legend": "Extra"})
	if err != nil {
		t.Fatalf("inputs: %v", err)
	}
	assertContains(t, out, `<fieldset class="compact"><legend>Extra</legend>`)

	out, err = h.Inputs(nil, nil, optmap.Map{"fieldset": true, "legend": false})
	if err != nil {
		t.Fatalf("inputs: %v", err)
	}
	assertContains(t, out, "<fieldset>")
	assertNotContains(t, out, "<legend")
}

func TestInputsLegacyLegendEntry(t *testing.T) {
	h := newHelper(t, newRenderer("Thing"))
	fields := boost.Fields("a", optmap.Map{"label": "First"}, boost.FieldEntry{Name: "legend", Options: "Legacy"})

	out, err := h.Inputs(fields, nil, nil)
	if err != nil {
		t.Fatalf("inputs: %v", err)
	}
	assertContains(t, out, "<legend>Legacy</legend>", ">First</label>")
	assertNotContains(t, out, "ThingB")
}

func TestFieldsBuilder(t *testing.T) {
	got := boost.Fields("a", optmap.Map{"label": "A"}, "b", boost.FieldEntry{Options: "c"})
	want := boost.FieldList{
		{Name: "a", Options: optmap.Map{"label": "A"}},
		{Name: "b"},
		{Options: "c"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestInputsBareEntries(t *testing.T) {
	h := newHelper(t, newRenderer("Thing"))
	out, err := h.Inputs(boost.FieldList{{Options: "c"}, {Name: "a"}}, nil, nil)
	if err != nil {
		t.Fatalf("inputs: %v", err)
	}
	assertOrder(t, out, "ThingC", "ThingA")
}

func TestSubmit(t *testing.T) {
	h := newHelper(t, newRenderer("Widget"))

	out := h.Submit("Save", nil)
	if !strings.HasPrefix(out, `<div class="submit"><input`) {
		t.Fatalf("expected submit wrapper, got %s", out)
	}
	assertContains(t, out, `class="btn btn-primary"`, `type="submit"`, `value="Save"`)

	out = h.Submit("Save", optmap.Map{"div": false})
	if !strings.HasPrefix(out, "<input") || strings.Contains(out, "<div") {
		t.Fatalf("div=false should drop the wrapper, got %s", out)
	}

	out = h.Submit("Save", optmap.Map{"div": "actions"})
	assertContains(t, out, `<div class="actions">`)

	out = h.Submit("Save", optmap.Map{"div": optmap.Map{"id": "go"}})
	assertContains(t, out, `class="submit"`, `id="go"`)

	out = h.Submit("", optmap.Map{"before": "<hr>", "after": "<em>x</em>"})
	assertContains(t, out, `value="Submit"`)
	assertOrder(t, out, "<hr>", "<input", "<em>x</em>")
}

func TestSubmitImagesAndSecurity(t *testing.T) {
	r := newRenderer("Widget")
	h := newHelper(t, r, boost.WithWebroot("/app/", "img/"))

	out := h.Submit("go.png", nil)
	assertContains(t, out, `src="/app/img/go.png"`, `type="image"`)
	assertNotContains(t, out, `value=`)

	out = h.Submit("/icons/go.png", nil)
	assertContains(t, out, `src="/app/icons/go.png"`)

	out = h.Submit("https://cdn.example.com/go.gif", optmap.Map{"name": "pick"})
	assertContains(t, out, `src="https://cdn.example.com/go.gif"`)

	if diff := cmp.Diff([]string{"x", "y", "pick", "pick_x", "pick_y"}, r.Unlocked()); diff != "" {
		t.Fatalf("unlocked mismatch (-want +got):\n%s", diff)
	}

	h.Submit("Save", optmap.Map{"name": "data[Widget][save]", "secure": true})
	if diff := cmp.Diff([]string{"data.Widget.save"}, r.Fields()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestPostLinkMovesFormToBlock(t *testing.T) {
	blocks := view.NewBlocks()
	r := newRenderer("Widget")
	h := newHelper(t, r, boost.WithBlocks(blocks))

	inline, err := h.PostLink("Delete", "/widgets/1", optmap.Map{"method": "delete", "confirm": "Sure?"})
	if err != nil {
		t.Fatalf("post link: %v", err)
	}
	wantForm, wantRest, ok := markup.ExtractElement(inline, "form")
	if !ok {
		t.Fatalf("inline post link should contain a form: %s", inline)
	}

	out, err := h.PostLink("Delete", "/widgets/1", optmap.Map{"method": "delete", "confirm": "Sure?", "block": "forms"})
	if err != nil {
		t.Fatalf("post link: %v", err)
	}
	assertContains(t, out, "<a ", "Delete</a>")
	assertNotContains(t, out, "<form")

	if diff := cmp.Diff(wantForm, blocks.Fetch("forms")); diff != "" {
		t.Fatalf("block mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantRest, out); diff != "" {
		t.Fatalf("link mismatch (-want +got):\n%s", diff)
	}
	if got := h.Fetch("forms"); got != blocks.Fetch("forms") {
		t.Fatalf("fetch mismatch: %s", got)
	}
}

func TestPostLinkRestoresSecuredFields(t *testing.T) {
	r := newStubRenderer("Widget")
	h := newHelper(t, r)
	r.Secure("Widget.name")
	r.Secure("Widget.price")

	if _, err := h.PostLink("Delete", "/widgets/1", optmap.Map{"data": optmap.Map{"Widget.id": 1}}); err != nil {
		t.Fatalf("post link: %v", err)
	}
	if len(r.postLinkFields) != 1 {
		t.Fatalf("expected one delegate call, got %d", len(r.postLinkFields))
	}
	if seen := r.postLinkFields[0]; len(seen) != 0 {
		t.Fatalf("expected an empty field list during the call, got %v", seen)
	}
	if diff := cmp.Diff([]string{"Widget.name", "Widget.price"}, r.Fields()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestPostLinkRestoresSecuredFieldsOnError(t *testing.T) {
	r := newStubRenderer("Widget")
	r.postLinkErr = errors.New("no route")
	h := newHelper(t, r)
	r.Secure("Widget.name")

	if _, err := h.PostLink("Delete", "/widgets/1", nil); !errors.Is(err, r.postLinkErr) {
		t.Fatalf("expected delegate error, got %v", err)
	}
	if diff := cmp.Diff([]string{"Widget.name"}, r.Fields()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestPostLinkWithoutBlocksStaysInline(t *testing.T) {
	h := newHelper(t, newRenderer("Widget"))
	out, err := h.PostLink("Delete", "/widgets/1", optmap.Map{"block": "forms"})
	if err != nil {
		t.Fatalf("post link: %v", err)
	}
	assertOrder(t, out, "<form", "</form>", "<a ")
}

func TestCreateAndEnd(t *testing.T) {
	r := basicform.New(basicform.WithIntrospector(introspector()))
	h := newHelper(t, r)

	open, err := h.Create("Widget", optmap.Map{"url": "/widgets", "inputDefaults": optmap.Map{"div": false}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	assertContains(t, open, `role="form"`, `action="/widgets"`)
	assertNotContains(t, open, "inputDefaults")

	out := mustInput(t, h, "name", nil)
	assertNotContains(t, out, "form-group row")
	assertContains(t, out, `name="data[Widget][name]"`)

	closing, err := h.End(optmap.Map{"label": "Save"})
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	assertOrder(t, closing, `value="Save"`, "</form>")

	out = mustInput(t, h, "Widget.name", nil)
	assertContains(t, out, "form-group row")
}

func TestDateTimeRendersSingleTextInput(t *testing.T) {
	r := newRenderer("Widget", basicform.WithValues(map[string]any{
		"Widget.released_on": "2024-03-05 10:30:00",
		"Widget.stamp":       1700000000,
	}))
	h := newHelper(t, r)

	out, err := h.DateTime("Widget.released_on", optmap.Map{"type": "date"})
	if err != nil {
		t.Fatalf("date time: %v", err)
	}
	assertContains(t, out, `value="2024-03-05"`, `type="text"`)
	assertNotContains(t, out, "<div", "<label")

	out, err = h.DateTime("Widget.stamp", nil)
	if err != nil {
		t.Fatalf("date time: %v", err)
	}
	assertContains(t, out, `value="2023-11-14 22:13"`)

	out, err = h.DateTime("Widget.missing", nil)
	if err != nil {
		t.Fatalf("date time: %v", err)
	}
	assertContains(t, out, `value=""`)
}

func TestTemplateFuncs(t *testing.T) {
	blocks := view.NewBlocks()
	h := newHelper(t, newRenderer("Widget"), boost.WithBlocks(blocks))
	funcs := h.TemplateFuncs()

	for _, name := range []string{"input", "inputs", "submit", "postLink", "create", "end", "fetch", "dateTime"} {
		if funcs[name] == nil {
			t.Fatalf("missing template func %q", name)
		}
	}

	out, err := funcs["input"]("Widget.name", "label", "Title")
	if err != nil {
		t.Fatalf("input: %v", err)
	}
	assertContains(t, out, ">Title</label>")

	out, err = funcs["submit"]("Go", map[string]any{"div": false})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	assertContains(t, out, `value="Go"`)

	if _, err := funcs["postLink"]("Delete", "/w/1", "block", "forms"); err != nil {
		t.Fatalf("post link: %v", err)
	}
	fetched, err := funcs["fetch"]("forms")
	if err != nil || !strings.HasPrefix(fetched, "<form") {
		t.Fatalf("fetch: %q %v", fetched, err)
	}

	out, err = funcs["inputs"]([]any{"name", "price"}, "price")
	if err != nil {
		t.Fatalf("inputs: %v", err)
	}
	assertContains(t, out, "WidgetName")
	assertNotContains(t, out, "WidgetPrice")

	if _, err := funcs["input"](); err == nil {
		t.Fatalf("expected an error without a field name")
	}
}
