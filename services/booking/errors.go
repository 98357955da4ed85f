package booking

import "fmt"

// ValidationError reports a payload that fails the record shape contract.
// Details maps field names to human-readable problems.
type ValidationError struct {
	Details map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Details))
}

// NotFoundError reports a booking that does not exist or is soft-deleted.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("booking %s not found", e.ID)
}

// InvalidMonthError reports a month name that does not resolve to a
// calendar index. Kept distinct from generic validation failures because
// it carries its own recoverable prompt.
type InvalidMonthError struct {
	Value string
}

func (e *InvalidMonthError) Error() string {
	return fmt.Sprintf("%q is not a valid month name, please give a full month name such as August", e.Value)
}
