package handlers

import (
	"net/http"

	"github.com/savinash9/happy-hotels/models"
	"github.com/savinash9/happy-hotels/services/assistant"
	"github.com/savinash9/happy-hotels/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler serves the conversational surface.
type AssistantHandler struct {
	Service assistant.AssistantService
	Logger  *zap.Logger
}

// NewAssistantHandler returns a new AssistantHandler.
func NewAssistantHandler(svc assistant.AssistantService, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{Service: svc, Logger: logger}
}

// Chat handles POST /api/assistant/chat. The frontend sends the full
// message history and the current draft each turn; the response carries
// the reply, the updated draft and the trace of mutation attempts.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", map[string]any{"reason": err.Error()})
		return
	}
	if len(req.Messages) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "BAD_REQUEST", "messages must not be empty", nil)
		return
	}

	result, err := h.Service.AdvanceTurn(c.Request.Context(), req.Messages, req.Draft)
	if err != nil {
		h.Logger.Error("assistant turn failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "INTERNAL", "something went wrong", nil)
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{
		Reply:   result.Reply,
		Draft:   result.Draft,
		Actions: result.Trace,
	})
}
