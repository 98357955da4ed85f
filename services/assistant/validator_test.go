package assistant

import (
	"testing"

	"github.com/savinash9/happy-hotels/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDraft() models.BookingDraft {
	return models.BookingDraft{
		"hotel":                       "Resort Hotel",
		"lead_time":                   float64(30),
		"arrival_date_year":           float64(2026),
		"arrival_date_month":          "August",
		"arrival_date_week_number":    float64(32),
		"arrival_date_day_of_month":   float64(14),
		"stays_in_weekend_nights":     float64(2),
		"stays_in_week_nights":        float64(3),
		"adults":                      float64(2),
		"children":                    float64(0),
		"babies":                      float64(0),
		"meal":                        "BB",
		"country":                     "PRT",
		"market_segment":              "Direct",
		"is_repeated_guest":           false,
		"reserved_room_type":          "A",
		"customer_type":               "Transient",
		"adr":                         120.5,
		"required_car_parking_spaces": float64(0),
		"total_of_special_requests":   float64(1),
		"reservation_status":          "Check-Out",
		"reservation_status_date":     "2026-08-14",
	}
}

func TestMissingFieldsEmptyDraft(t *testing.T) {
	missing := MissingFields(models.BookingDraft{})
	require.Len(t, missing, len(Catalog))
	for i, spec := range Catalog {
		assert.Equal(t, spec.Name, missing[i], "missing fields must follow catalog order")
	}
}

func TestMissingFieldsCompleteDraft(t *testing.T) {
	assert.Empty(t, MissingFields(completeDraft()))
}

func TestMissingFieldsDeterministic(t *testing.T) {
	draft := completeDraft()
	delete(draft, "adults")
	delete(draft, "hotel")

	first := MissingFields(draft)
	second := MissingFields(draft)
	require.Equal(t, first, second)
	assert.Equal(t, []string{"hotel", "adults"}, first)
}

func TestMissingFieldsValueChecks(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any
	}{
		{"nil value", "hotel", nil},
		{"empty string", "country", ""},
		{"whitespace string", "meal", "   "},
		{"string for number field", "adults", "two"},
		{"number for boolean field", "is_repeated_guest", float64(1)},
		{"abbreviated month", "arrival_date_month", "Aug"},
		{"unknown month", "arrival_date_month", "Augtober"},
		{"number for month field", "arrival_date_month", float64(8)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			draft := completeDraft()
			draft[tc.field] = tc.value
			assert.Equal(t, []string{tc.field}, MissingFields(draft))
		})
	}
}

func TestMissingFieldsMonthCaseInsensitive(t *testing.T) {
	draft := completeDraft()
	draft["arrival_date_month"] = "aUgUsT"
	assert.Empty(t, MissingFields(draft))
}

func TestMissingFieldsIgnoresOptionalAndMetaKeys(t *testing.T) {
	draft := completeDraft()
	draft["id"] = "abc"
	draft["agent"] = float64(240)
	draft["company"] = nil
	assert.Empty(t, MissingFields(draft))
}
