package assistant

import "strings"

// confirmToken is the literal marker a user must include to authorize a
// mutating action. Substring matching is intentionally naive; the gate's
// contract is boolean in, boolean out, so a stricter intent classifier
// can replace it without touching callers.
const confirmToken = "confirm"

// HasConfirmation reports whether the utterance carries confirmation
// intent.
func HasConfirmation(utterance string) bool {
	return strings.Contains(strings.ToLower(utterance), confirmToken)
}

// IsAuthorized decides whether a mutating action may run this turn: the
// latest user utterance must confirm AND the draft must have no missing
// fields. Confirmation expressed before the draft is complete does not
// authorize anything.
func IsAuthorized(latestUserUtterance string, missing []string) bool {
	return HasConfirmation(latestUserUtterance) && len(missing) == 0
}
