package handler

import (
	"context"
	"encoding/json"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-twin/internal/app"
	"portfolio-twin/internal/transport/http/middleware"
	"portfolio-twin/internal/transport/http/response"
)

type ChatResponder interface {
	Chat(ctx context.Context, in app.ChatInput) (string, error)
}

type ChatHandler struct {
	chat ChatResponder
	log  *zap.Logger
}

// ChatRequest accepts history items of any JSON shape; they are advisory only.
type ChatRequest struct {
	Message string            `json:"message" binding:"required"`
	History []json.RawMessage `json:"history"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

func NewChatHandler(chat ChatResponder, log *zap.Logger) *ChatHandler {
	return &ChatHandler{chat: chat, log: log}
}

func (h *ChatHandler) Send(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Unprocessable(c, "invalid request payload: "+err.Error())
		return
	}

	reply, err := h.chat.Chat(c.Request.Context(), app.ChatInput{
		Message: req.Message,
		History: historyTexts(req.History),
	})
	if err != nil {
		h.log.Error("chat failed", zap.Error(err), zap.String("request_id", middleware.GetRequestID(c)))
		if app.IsInputError(err) {
			response.Unprocessable(c, err.Error())
			return
		}
		response.Internal(c, err)
		return
	}

	response.OK(c, ChatResponse{Response: reply})
}

func historyTexts(items []json.RawMessage) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, raw := range items {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			out = append(out, s)
			continue
		}
		out = append(out, string(raw))
	}
	return out
}
