package completion

import (
	"math"
	"strings"

	"applyflow/internal/domain/onboarding"
)

// Record is the persisted candidate document as returned by the profile
// collaborator. Field names may use either snake_case or camelCase depending
// on which producer wrote them.
type Record map[string]any

// Status is the derived completeness verdict. Complete is true iff
// MissingFields is empty; it is recomputed on every check and never cached.
type Status struct {
	Complete      bool     `json:"complete"`
	MissingFields []string `json:"missing_fields"`
}

// Evaluate checks every required question's field against the record using a
// kind-aware presence predicate. A nil record misses everything. The function
// is pure: it never mutates the record and yields the same result on every
// call.
func Evaluate(rec Record, cat onboarding.Catalog) Status {
	required := cat.Required()
	missing := make([]string, 0, len(required))

	for _, q := range required {
		if rec == nil {
			missing = append(missing, q.Field)
			continue
		}
		v, ok := resolve(rec, q.Field)
		if !ok || !hasValue(q.Kind, v) {
			missing = append(missing, q.Field)
		}
	}

	return Status{Complete: len(missing) == 0, MissingFields: missing}
}

// resolve looks a field up under its exact name first, then under its other
// spelling from the alias table.
func resolve(rec Record, field string) (any, bool) {
	if v, ok := rec[field]; ok {
		return v, true
	}
	if alias, ok := Alias(field); ok {
		if v, ok := rec[alias]; ok {
			return v, true
		}
	}
	return nil, false
}

func hasValue(kind onboarding.Kind, v any) bool {
	if kind == onboarding.KindMultiSelect {
		return len(NormalizeMulti(v)) > 0
	}

	switch val := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(val) != ""
	case []string:
		for _, s := range val {
			if strings.TrimSpace(s) != "" {
				return true
			}
		}
		return false
	case []any:
		for _, item := range val {
			switch it := item.(type) {
			case nil:
				continue
			case string:
				if strings.TrimSpace(it) != "" {
					return true
				}
			default:
				return true
			}
		}
		return false
	case float64:
		return !math.IsNaN(val)
	case float32:
		return !math.IsNaN(float64(val))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case map[string]any:
		return len(val) > 0
	case bool:
		return val
	default:
		return true
	}
}
