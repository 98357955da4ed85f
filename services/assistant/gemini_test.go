package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseModelOutputPlainJSON(t *testing.T) {
	out := parseModelOutput(`{"message":"hi","fields":{"adults":2},"action":"get_booking","booking_id":"bk-1"}`)
	assert.Equal(t, "hi", out.Message)
	assert.Equal(t, float64(2), out.Fields["adults"])
	assert.Equal(t, ActionGetBooking, out.Action)
	assert.Equal(t, "bk-1", out.BookingID)
}

func TestParseModelOutputFencedJSON(t *testing.T) {
	out := parseModelOutput("```json\n{\"message\":\"hello\"}\n```")
	assert.Equal(t, "hello", out.Message)
}

func TestParseModelOutputFallsBackToPlainText(t *testing.T) {
	out := parseModelOutput("Sure, I can help with that!")
	assert.Equal(t, "Sure, I can help with that!", out.Message)
	assert.Empty(t, out.Fields)
	assert.Empty(t, out.Action)
}
