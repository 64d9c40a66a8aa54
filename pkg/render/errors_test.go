package render

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewErrorSetNormalizesPathsAndMessages(t *testing.T) {
	set := NewErrorSet(map[string][]string{
		"/Widget/name":     {" required ", "required", ""},
		"Widget.tags[0]":   {"too short"},
		"Widget.name":      {"too long"},
		"Widget.published": {"  "},
	})

	if diff := cmp.Diff([]string{"Widget.name", "Widget.tags.0"}, set.Paths()); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
	got := set.Messages("Widget", "name")
	slices.Sort(got)
	if diff := cmp.Diff([]string{"required", "too long"}, got); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
	if msgs := set.Messages("Widget", "published"); msgs != nil {
		t.Fatalf("expected blank messages to be dropped, got %#v", msgs)
	}
}

func TestErrorSetMessagesLookup(t *testing.T) {
	set := NewErrorSet(map[string][]string{
		"Widget.name": {"required"},
		"title":       {"missing"},
	})

	cases := []struct {
		model, path string
		want        []string
	}{
		{"Widget", "name", []string{"required"}},
		{"Widget", "Widget.name", []string{"required"}},
		{"", "Widget.name", []string{"required"}},
		{"Widget", "Widget.title", []string{"missing"}},
		{"Widget", "price", nil},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, set.Messages(tc.model, tc.path)); diff != "" {
			t.Errorf("Messages(%q, %q) mismatch (-want +got):\n%s", tc.model, tc.path, diff)
		}
	}
}

func TestErrorSetEmpty(t *testing.T) {
	if !(ErrorSet{}).Empty() {
		t.Fatalf("zero ErrorSet should be empty")
	}
	if NewErrorSet(map[string][]string{"a": {"x"}}).Empty() {
		t.Fatalf("populated ErrorSet reported empty")
	}
}

func TestNormalizeFieldPath(t *testing.T) {
	cases := map[string]string{
		"/Widget/name":   "Widget.name",
		"$.Widget.name":  "Widget.name",
		"Widget.tags[2]": "Widget.tags.2",
		" Widget.name ":  "Widget.name",
		"/Widget/a~1b":   "Widget.a/b",
		"":               "",
	}
	for in, want := range cases {
		if got := NormalizeFieldPath(in); got != want {
			t.Errorf("NormalizeFieldPath(%q) = %q, want %q", in, got, want)
		}
	}
}
