package assistant

import (
	"strings"

	"github.com/savinash9/happy-hotels/models"
)

// MissingFields returns the names of required fields the draft does not
// yet carry an acceptable value for, in catalog order. A field is missing
// when it is absent, nil, an empty or whitespace-only string, the wrong
// kind for a numeric or boolean field, or a non-canonical month name for
// the month field. No coercion is attempted; strict typing of enumerated
// and date values is the record store's job, not the draft's.
func MissingFields(draft models.BookingDraft) []string {
	var missing []string
	for _, spec := range Catalog {
		v, ok := draft[spec.Name]
		if !ok || v == nil {
			missing = append(missing, spec.Name)
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			missing = append(missing, spec.Name)
			continue
		}
		switch spec.Kind {
		case KindNumber:
			if !isNumber(v) {
				missing = append(missing, spec.Name)
			}
		case KindBoolean:
			if _, isBool := v.(bool); !isBool {
				missing = append(missing, spec.Name)
			}
		case KindMonth:
			s, isStr := v.(string)
			if !isStr {
				missing = append(missing, spec.Name)
				continue
			}
			if _, ok := models.CanonicalMonth(s); !ok {
				missing = append(missing, spec.Name)
			}
		}
	}
	return missing
}

func isNumber(v any) bool {
	switch v.(type) {
	case float64, float32, int, int32, int64:
		return true
	}
	return false
}
