package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/savinash9/happy-hotels/models"
)

// buildPrompt assembles the completion prompt for one round: the contract
// the model must follow, the field catalog, the current draft and its
// missing fields, any lookup result from a previous round, and the
// conversation transcript.
func buildPrompt(messages []models.ChatMessage, draft models.BookingDraft, missing []string, lookup any) string {
	var b strings.Builder

	b.WriteString("You are a hotel booking assistant for Happy Hotels.\n")
	b.WriteString("Respond with a single JSON object and nothing else, using these keys:\n")
	b.WriteString(`  "message": what to say to the user` + "\n")
	b.WriteString(`  "fields": booking field values extracted from the user's latest message, keyed by field name` + "\n")
	b.WriteString(`  "action": one of "create_booking", "update_booking", "get_booking", "list_bookings", or omit` + "\n")
	b.WriteString(`  "booking_id": required with "get_booking"` + "\n")
	b.WriteString(`  "filter": optional with "list_bookings" (hotel, year, month, country, status)` + "\n")
	b.WriteString("Only propose create_booking or update_booking when every field is filled AND the user has explicitly confirmed.\n")
	b.WriteString("Month names must be full English names, e.g. August not Aug.\n\n")

	b.WriteString("Booking fields, in order:\n")
	for _, spec := range Catalog {
		fmt.Fprintf(&b, "- %s (%s): %s\n", spec.Name, spec.Kind, spec.Label)
	}

	b.WriteString("\nCurrent draft:\n")
	b.WriteString(toJSON(draft))
	b.WriteString("\n\nMissing fields: ")
	if len(missing) == 0 {
		b.WriteString("none")
	} else {
		b.WriteString(strings.Join(missing, ", "))
	}
	b.WriteString("\n")

	if lookup != nil {
		b.WriteString("\nLookup result from the booking store:\n")
		b.WriteString(toJSON(lookup))
		b.WriteString("\n")
	}

	b.WriteString("\nConversation so far:\n")
	for _, msg := range messages {
		fmt.Fprintf(&b, "%s: %s\n", msg.Role, msg.Content)
	}
	return b.String()
}

func toJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(raw)
}
