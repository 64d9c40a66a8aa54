package boost

import (
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-boostform/pkg/optmap"
	"github.com/goliatone/go-boostform/pkg/render"
)

// unixThreshold separates unix timestamps from other numeric values.
const unixThreshold = 1000000000

var dateLayouts = map[string]string{
	"date":     "2006-01-02",
	"time":     "15:04",
	"datetime": "2006-01-02 15:04",
}

var parseLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
	"15:04:05",
	"15:04",
}

// DateTime renders the single text control used for date, time and datetime
// fields. opts["type"] selects the layout (default datetime); "empty" set to
// false fills a missing value with the current time.
func (h *Helper) DateTime(fieldName string, opts optmap.Map) (string, error) {
	options := opts.Clone()
	inputType := strings.ToLower(options.String("type"))
	if !isDateType(inputType) {
		inputType = "datetime"
	}
	options["type"] = inputType
	options["div"] = false
	options["label"] = false
	options["error"] = false
	return h.renderer.RenderInput(fieldName, options, render.InputHooks{
		Control: func(name, kind string, attrs optmap.Map) (string, bool, error) {
			out, err := h.dateTimeControl(name, kind, attrs)
			return out, err == nil, err
		},
	})
}

func (h *Helper) dateTimeControl(fieldName, inputType string, attrs optmap.Map) (string, error) {
	attrs = attrs.Clone()
	empty := true
	if raw, ok := attrs.Pop("empty"); ok {
		empty = truthy(raw)
	}
	value, _ := attrs.Pop("value")
	if blank(value) {
		value = h.renderer.Value(fieldName)
	}
	if value == nil && !empty {
		value = h.now()
	}

	attrs["type"] = "text"
	formatted := formatDateValue(inputType, value)
	if formatted == "" {
		return h.renderer.UseTag("input", optmap.Map{
			"type":  "text",
			"name":  attrs.Get("name"),
			"id":    attrs.Get("id"),
			"class": attrs.Get("class"),
			"value": "",
		}), nil
	}
	attrs["value"] = formatted
	return h.renderer.UseTag("input", attrs), nil
}

// formatDateValue renders value with the layout of inputType. Unix
// timestamps, time.Time values, {date, time} maps and parseable strings are
// reformatted; other strings are kept as given.
func formatDateValue(inputType string, value any) string {
	layout, ok := dateLayouts[inputType]
	if !ok {
		layout = dateLayouts["datetime"]
	}
	switch v := value.(type) {
	case nil:
		return ""
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format(layout)
	case *time.Time:
		if v == nil || v.IsZero() {
			return ""
		}
		return v.Format(layout)
	case int:
		return formatNumber(float64(v), layout)
	case int64:
		return formatNumber(float64(v), layout)
	case float64:
		return formatNumber(v, layout)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return ""
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return formatNumber(n, layout)
		}
		return reformat(s, layout)
	default:
		parts, ok := optmap.AsMap(v)
		if !ok {
			return optmap.ToString(v)
		}
		date := strings.TrimSpace(parts.String("date"))
		clock := strings.TrimSpace(parts.String("time"))
		if (parts.Has("date") && date == "") || (parts.Has("time") && clock == "") {
			return ""
		}
		return reformat(strings.TrimSpace(date+" "+clock), layout)
	}
}

func formatNumber(n float64, layout string) string {
	if n > unixThreshold {
		return time.Unix(int64(n), 0).UTC().Format(layout)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func reformat(s, layout string) string {
	for _, candidate := range parseLayouts {
		if parsed, err := time.Parse(candidate, s); err == nil {
			return parsed.Format(layout)
		}
	}
	return s
}

func blank(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	}
	return false
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != "" && v != "0"
	case int:
		return v != 0
	}
	return true
}
