package assistant

import (
	"context"

	"github.com/savinash9/happy-hotels/models"
)

// Actions the model may propose. Mutating actions pass through the
// confirmation gate; read actions run between completion rounds.
const (
	ActionCreateBooking = "create_booking"
	ActionUpdateBooking = "update_booking"
	ActionGetBooking    = "get_booking"
	ActionListBookings  = "list_bookings"
)

// ModelOutput is the structured reply expected from one completion round.
type ModelOutput struct {
	Message   string         `json:"message,omitempty"`
	Fields    map[string]any `json:"fields,omitempty"`
	Action    string         `json:"action,omitempty"`
	BookingID string         `json:"booking_id,omitempty"`
	Filter    map[string]any `json:"filter,omitempty"`
}

// CompletionClient is the language-model collaborator.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (*ModelOutput, error)
}

// RecordStore is the external collaborator owning durable booking records
// and their validation rules. Payloads and results travel as JSON field
// maps; the store's returned representation is the canonical shape.
type RecordStore interface {
	Create(ctx context.Context, payload map[string]any) (map[string]any, error)
	Get(ctx context.Context, id string) (map[string]any, error)
	Update(ctx context.Context, id string, patch map[string]any) (map[string]any, error)
	List(ctx context.Context, filter map[string]any) (map[string]any, error)
}

// TurnResult is everything one conversation turn produces.
type TurnResult struct {
	Reply string
	Draft models.BookingDraft
	Trace []models.TraceEntry
}

// AssistantService advances the booking conversation one turn at a time.
type AssistantService interface {
	AdvanceTurn(ctx context.Context, messages []models.ChatMessage, draft models.BookingDraft) (*TurnResult, error)
}

// DefaultAssistantService implements AssistantService.
type DefaultAssistantService struct {
	LLM   CompletionClient
	Store RecordStore
}

// NewDefaultAssistantService wires the assistant with its collaborators.
func NewDefaultAssistantService(llm CompletionClient, store RecordStore) *DefaultAssistantService {
	return &DefaultAssistantService{LLM: llm, Store: store}
}
