package booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/savinash9/happy-hotels/models"
)

// Allowed values for the enumerated record fields.
var (
	hotelValues = []string{"Resort Hotel", "City Hotel"}
	mealValues  = []string{"BB", "FB", "HB", "SC", "Undefined", ""}

	marketSegmentValues = []string{
		"Direct", "Corporate", "Online TA", "Offline TA/TO",
		"Complementary", "Groups", "Aviation", "Undefined",
	}
	customerTypeValues      = []string{"Contract", "Group", "Transient", "Transient-Party"}
	reservationStatusValues = []string{"Canceled", "Check-Out", "No-Show"}

	roomTypeRe = regexp.MustCompile(`^[A-H]$`)
	countryRe  = regexp.MustCompile(`^[A-Za-z]{2,3}$`)
)

// metaFields are store-owned keys a payload may carry back (for instance a
// canonical representation being re-submitted); they are not validated here.
var metaFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"deleted_at": true,
}

// ValidateBookingPayload enforces the record shape contract at the store
// boundary. It returns a ValidationError carrying field-level details, or
// nil when the payload is acceptable.
func ValidateBookingPayload(payload map[string]any) error {
	details := map[string]string{}

	checkEnum(details, payload, "hotel", hotelValues)
	checkInt(details, payload, "lead_time", 0, -1)
	checkInt(details, payload, "arrival_date_year", 1900, 2200)
	checkMonth(details, payload, "arrival_date_month")
	checkInt(details, payload, "arrival_date_week_number", 1, 53)
	checkInt(details, payload, "arrival_date_day_of_month", 1, 31)
	checkInt(details, payload, "stays_in_weekend_nights", 0, -1)
	checkInt(details, payload, "stays_in_week_nights", 0, -1)
	checkInt(details, payload, "adults", 0, -1)
	checkInt(details, payload, "children", 0, -1)
	checkInt(details, payload, "babies", 0, -1)
	checkEnum(details, payload, "meal", mealValues)
	checkPattern(details, payload, "country", countryRe, "must be a 2-3 letter country code")
	checkEnum(details, payload, "market_segment", marketSegmentValues)
	checkBool(details, payload, "is_repeated_guest")
	checkPattern(details, payload, "reserved_room_type", roomTypeRe, "must be a single letter A-H")
	checkOptionalInt(details, payload, "agent")
	checkOptionalInt(details, payload, "company")
	checkEnum(details, payload, "customer_type", customerTypeValues)
	checkNumber(details, payload, "adr")
	checkInt(details, payload, "required_car_parking_spaces", 0, -1)
	checkInt(details, payload, "total_of_special_requests", 0, -1)
	checkEnum(details, payload, "reservation_status", reservationStatusValues)
	checkDate(details, payload, "reservation_status_date")

	if len(details) > 0 {
		return &ValidationError{Details: details}
	}
	return nil
}

func numberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func checkNumber(details map[string]string, payload map[string]any, field string) {
	v, ok := payload[field]
	if !ok || v == nil {
		details[field] = "is required"
		return
	}
	if _, ok := numberValue(v); !ok {
		details[field] = "must be a number"
	}
}

// checkInt validates an integral number within [min, max]; max < 0 means
// no upper bound.
func checkInt(details map[string]string, payload map[string]any, field string, min, max int) {
	v, ok := payload[field]
	if !ok || v == nil {
		details[field] = "is required"
		return
	}
	n, ok := numberValue(v)
	if !ok || n != float64(int(n)) {
		details[field] = "must be an integer"
		return
	}
	if int(n) < min {
		details[field] = fmt.Sprintf("must be at least %d", min)
		return
	}
	if max >= 0 && int(n) > max {
		details[field] = fmt.Sprintf("must be at most %d", max)
	}
}

func checkOptionalInt(details map[string]string, payload map[string]any, field string) {
	v, ok := payload[field]
	if !ok || v == nil {
		return
	}
	n, ok := numberValue(v)
	if !ok || n != float64(int(n)) || n < 0 {
		details[field] = "must be a non-negative integer when present"
	}
}

func checkBool(details map[string]string, payload map[string]any, field string) {
	v, ok := payload[field]
	if !ok || v == nil {
		details[field] = "is required"
		return
	}
	if _, ok := v.(bool); !ok {
		details[field] = "must be a boolean"
	}
}

func checkEnum(details map[string]string, payload map[string]any, field string, allowed []string) {
	v, ok := payload[field]
	if !ok || v == nil {
		details[field] = "is required"
		return
	}
	s, ok := v.(string)
	if !ok {
		details[field] = "must be a string"
		return
	}
	for _, a := range allowed {
		if s == a {
			return
		}
	}
	details[field] = fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", "))
}

func checkPattern(details map[string]string, payload map[string]any, field string, re *regexp.Regexp, msg string) {
	v, ok := payload[field]
	if !ok || v == nil {
		details[field] = "is required"
		return
	}
	s, ok := v.(string)
	if !ok || !re.MatchString(s) {
		details[field] = msg
	}
}

func checkMonth(details map[string]string, payload map[string]any, field string) {
	v, ok := payload[field]
	if !ok || v == nil {
		details[field] = "is required"
		return
	}
	s, ok := v.(string)
	if !ok {
		details[field] = "must be a string"
		return
	}
	if _, ok := models.CanonicalMonth(s); !ok {
		details[field] = (&InvalidMonthError{Value: s}).Error()
	}
}

func checkDate(details map[string]string, payload map[string]any, field string) {
	v, ok := payload[field]
	if !ok || v == nil {
		details[field] = "is required"
		return
	}
	s, ok := v.(string)
	if !ok {
		details[field] = "must be a string"
		return
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		details[field] = "must be a date in YYYY-MM-DD form"
	}
}
