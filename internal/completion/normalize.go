package completion

import (
	"fmt"
	"strings"
)

// NormalizeMulti coerces a multi-value field into a clean string slice. It
// accepts real lists, comma-separated strings and Postgres array literals
// (`{"React","Node.js"}`), strips quote characters, and drops entries that
// end up empty. It never panics on malformed input.
func NormalizeMulti(v any) []string {
	switch val := v.(type) {
	case nil:
		return []string{}
	case []string:
		out := make([]string, 0, len(val))
		for _, s := range val {
			if cleaned := cleanEntry(s); cleaned != "" {
				out = append(out, cleaned)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			switch it := item.(type) {
			case nil:
				continue
			case string:
				if cleaned := cleanEntry(it); cleaned != "" {
					out = append(out, cleaned)
				}
			default:
				out = append(out, fmt.Sprint(it))
			}
		}
		return out
	case string:
		return splitMultiString(val)
	default:
		return []string{}
	}
}

func splitMultiString(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	if strings.HasPrefix(raw, "{") && strings.HasSuffix(raw, "}") {
		raw = raw[1 : len(raw)-1]
	}
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if cleaned := cleanEntry(p); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

func cleanEntry(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, `\`, "")
	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}
