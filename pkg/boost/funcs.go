package boost

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-boostform/pkg/optmap"
)

// TemplateFuncs exposes the helper to template engines. Every function takes
// its positional arguments followed by either one option map or alternating
// key/value pairs, e.g. input("Widget.title", "label", "Title").
func (h *Helper) TemplateFuncs() map[string]func(args ...any) (string, error) {
	return map[string]func(args ...any) (string, error){
		"input": func(args ...any) (string, error) {
			field, err := stringArg("input", args, 0)
			if err != nil {
				return "", err
			}
			return h.Input(field, optionArgs(args, 1))
		},
		"inputs": func(args ...any) (string, error) {
			var fields any
			if len(args) > 0 {
				fields = fieldsArg(args[0])
			}
			var blacklist []string
			if len(args) > 1 {
				blacklist = stringsArg(args[1])
			}
			return h.Inputs(fields, blacklist, optionArgs(args, 2))
		},
		"submit": func(args ...any) (string, error) {
			caption := ""
			if len(args) > 0 {
				caption = optmap.ToString(args[0])
			}
			return h.Submit(caption, optionArgs(args, 1)), nil
		},
		"postLink": func(args ...any) (string, error) {
			title, err := stringArg("postLink", args, 0)
			if err != nil {
				return "", err
			}
			url, err := stringArg("postLink", args, 1)
			if err != nil {
				return "", err
			}
			return h.PostLink(title, url, optionArgs(args, 2))
		},
		"create": func(args ...any) (string, error) {
			modelName := ""
			if len(args) > 0 {
				modelName = optmap.ToString(args[0])
			}
			return h.Create(modelName, optionArgs(args, 1))
		},
		"end": func(args ...any) (string, error) {
			return h.End(optionArgs(args, 0))
		},
		"fetch": func(args ...any) (string, error) {
			block, err := stringArg("fetch", args, 0)
			if err != nil {
				return "", err
			}
			return h.Fetch(block), nil
		},
		"dateTime": func(args ...any) (string, error) {
			field, err := stringArg("dateTime", args, 0)
			if err != nil {
				return "", err
			}
			return h.DateTime(field, optionArgs(args, 1))
		},
	}
}

func stringArg(fn string, args []any, idx int) (string, error) {
	if idx >= len(args) {
		return "", fmt.Errorf("boost: %s: missing argument %d", fn, idx+1)
	}
	value := strings.TrimSpace(optmap.ToString(args[idx]))
	if value == "" {
		return "", fmt.Errorf("boost: %s: argument %d must be a non-empty string", fn, idx+1)
	}
	return value, nil
}

func optionArgs(args []any, from int) optmap.Map {
	if from >= len(args) {
		return optmap.Map{}
	}
	rest := args[from:]
	if len(rest) == 1 {
		if opts, ok := optmap.AsMap(rest[0]); ok {
			return opts.Clone()
		}
		return optmap.Map{}
	}
	return optmap.FromPairs(rest...)
}

// fieldsArg converts list-shaped template values into field names; maps and
// scalars pass through.
func fieldsArg(value any) any {
	switch v := value.(type) {
	case []any:
		return stringsArg(v)
	default:
		return value
	}
}

func stringsArg(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case []string:
		return v
	case string:
		var out []string
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := strings.TrimSpace(optmap.ToString(item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
