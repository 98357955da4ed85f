package models

// ChatMessage is one entry of the conversation history sent by the frontend.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload coming from the frontend into /api/assistant/chat.
// The frontend passes the whole history and the current draft each turn; the
// server keeps no conversation state of its own.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
	Draft    BookingDraft  `json:"draft,omitempty"`
}

// TraceEntry records one mutation attempt made during a turn, for display
// and debugging. Traces are never persisted.
type TraceEntry struct {
	Action string `json:"action"`
	Input  any    `json:"input,omitempty"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ChatResponse is what the assistant returns to the frontend.
type ChatResponse struct {
	Reply   string       `json:"reply"`
	Draft   BookingDraft `json:"draft,omitempty"`
	Actions []TraceEntry `json:"actions"`
}
