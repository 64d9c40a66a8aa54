package testsupport

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-boostform/pkg/model"
)

func TestMustLoadFields(t *testing.T) {
	got := MustLoadFields(t, filepath.Join("testdata", "fields.json"))
	want := []model.Field{
		{Name: "id", Type: model.FieldTypeInteger, PrimaryKey: true},
		{Name: "title", Type: model.FieldTypeString, Length: 80, Required: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestAssertGoldenAndCapture(t *testing.T) {
	out, written := CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		_, err := io.WriteString(w, "<p>ok</p>")
		return "<p>ok</p>", err
	})
	if out != written {
		t.Fatalf("capture mismatch: %q vs %q", out, written)
	}
	AssertGolden(t, filepath.Join("testdata", "ok.golden"), out)
}
