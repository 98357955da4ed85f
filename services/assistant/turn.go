package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/savinash9/happy-hotels/models"
	"github.com/savinash9/happy-hotels/utils"

	"go.uber.org/zap"
)

// maxModelRounds bounds the completion-then-tool-call loop so a model that
// keeps proposing lookups cannot chain forever.
const maxModelRounds = 2

const (
	askConfirmReply = `Everything is filled in. Say "confirm" to finalize the booking.`
	failureReply    = "Sorry, I couldn't complete that action right now. Your details are saved, please try again."
)

// AdvanceTurn runs one conversation exchange: it merges model-proposed
// field updates into the draft, computes what is still missing, and, when
// the draft is complete and the latest user message confirms, performs
// exactly one mutation against the record store. The turn's state is
// derived entirely from its inputs; nothing is retained between calls.
func (s *DefaultAssistantService) AdvanceTurn(ctx context.Context, messages []models.ChatMessage, draft models.BookingDraft) (*TurnResult, error) {
	logger := utils.GetLogger()

	if draft == nil {
		draft = models.BookingDraft{}
	} else {
		draft = draft.Clone()
	}
	latest := latestUserMessage(messages)
	trace := []models.TraceEntry{}

	out := &ModelOutput{}
	var lookup any
	for round := 0; round < maxModelRounds; round++ {
		prompt := buildPrompt(messages, draft, MissingFields(draft), lookup)
		result, err := s.LLM.Complete(ctx, prompt)
		if err != nil {
			// The completion call is an external collaborator; its failure
			// must not crash the turn.
			logger.Warn("completion call failed", zap.Error(err))
			return &TurnResult{Reply: failureReply, Draft: draft, Trace: trace}, nil
		}
		out = result

		if len(out.Fields) > 0 {
			draft = draft.Merge(out.Fields)
		}

		// Read actions get one extra completion round with the result in
		// context. Reads are not mutation attempts, so they stay out of
		// the action trace.
		if (out.Action == ActionGetBooking || out.Action == ActionListBookings) && round+1 < maxModelRounds {
			lookup = s.performRead(ctx, out)
			continue
		}
		break
	}

	missing := MissingFields(draft)

	if IsAuthorized(latest, missing) {
		return s.mutate(ctx, draft, trace), nil
	}

	if out.Action == ActionCreateBooking || out.Action == ActionUpdateBooking {
		// A mutation was proposed without authorization: suppress it and
		// explain, leaving the draft as merged so far.
		reply := askConfirmReply
		if len(missing) > 0 {
			reply = missingPrompt(missing)
		}
		return &TurnResult{Reply: reply, Draft: draft, Trace: trace}, nil
	}

	reply := out.Message
	if reply == "" {
		if len(missing) > 0 {
			reply = missingPrompt(missing)
		} else {
			reply = askConfirmReply
		}
	}
	return &TurnResult{Reply: reply, Draft: draft, Trace: trace}, nil
}

// mutate performs the single authorized mutation for this turn: an update
// when the draft already carries a persisted identifier, a create
// otherwise. On success the store's returned representation replaces the
// working draft; on failure the prior draft is kept so the user can retry
// without re-entering anything.
func (s *DefaultAssistantService) mutate(ctx context.Context, draft models.BookingDraft, trace []models.TraceEntry) *TurnResult {
	logger := utils.GetLogger()

	var (
		action string
		input  map[string]any
		result map[string]any
		err    error
	)
	if id := draft.ID(); id != "" {
		action = ActionUpdateBooking
		input = draft.Clone()
		delete(input, "id")
		result, err = s.Store.Update(ctx, id, input)
	} else {
		action = ActionCreateBooking
		input = draft.Clone()
		result, err = s.Store.Create(ctx, input)
	}

	if err != nil {
		logger.Warn("booking mutation failed", zap.String("action", action), zap.Error(err))
		trace = append(trace, models.TraceEntry{Action: action, Input: input, Error: err.Error()})
		return &TurnResult{Reply: failureReply, Draft: draft, Trace: trace}
	}

	trace = append(trace, models.TraceEntry{Action: action, Input: input, Result: result})
	updated := models.BookingDraft(result)
	reply := fmt.Sprintf("Your booking is confirmed! Reference: %s.", updated.ID())
	if action == ActionUpdateBooking {
		reply = fmt.Sprintf("Your booking %s has been updated.", updated.ID())
	}
	return &TurnResult{Reply: reply, Draft: updated, Trace: trace}
}

// performRead executes a model-proposed lookup. Failures are folded into
// the result so the next completion round can explain them.
func (s *DefaultAssistantService) performRead(ctx context.Context, out *ModelOutput) any {
	switch out.Action {
	case ActionGetBooking:
		result, err := s.Store.Get(ctx, out.BookingID)
		if err != nil {
			return map[string]any{"error": err.Error()}
		}
		return result
	case ActionListBookings:
		result, err := s.Store.List(ctx, out.Filter)
		if err != nil {
			return map[string]any{"error": err.Error()}
		}
		return result
	}
	return nil
}

// missingPrompt lists each missing field's label in catalog order.
func missingPrompt(missing []string) string {
	var b strings.Builder
	b.WriteString("I still need a few details to complete the booking:\n")
	for _, name := range missing {
		spec, ok := FieldByName(name)
		if !ok {
			continue
		}
		b.WriteString("- ")
		b.WriteString(spec.Label)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func latestUserMessage(messages []models.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return messages[i].Content
		}
	}
	return ""
}
