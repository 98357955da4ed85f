package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAuthorizedTruthTable(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		missing   []string
		want      bool
	}{
		{"confirmed and complete", "confirm", nil, true},
		{"confirmed but incomplete", "confirm", []string{"adults"}, false},
		{"complete but not confirmed", "looks good", nil, false},
		{"neither", "looks good", []string{"adults"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsAuthorized(tc.utterance, tc.missing))
		})
	}
}

func TestHasConfirmationSubstringMatch(t *testing.T) {
	assert.True(t, HasConfirmation("CONFIRM"))
	assert.True(t, HasConfirmation("yes please confirm the booking"))
	assert.True(t, HasConfirmation("Confirmed!"))
	assert.False(t, HasConfirmation("sounds good"))
	assert.False(t, HasConfirmation(""))
}
