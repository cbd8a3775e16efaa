package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-twin/internal/app"
	"portfolio-twin/internal/transport/http/middleware"
	"portfolio-twin/internal/transport/http/response"
)

type InquirySubmitter interface {
	SubmitInquiry(ctx context.Context, in app.ContactInput) (*app.ContactResult, error)
}

type ContactHandler struct {
	contact InquirySubmitter
	log     *zap.Logger
}

type ContactRequest struct {
	Name    *string `json:"name"`
	Email   string  `json:"email" binding:"required"`
	Subject string  `json:"subject" binding:"required"`
	Message string  `json:"message" binding:"required"`
}

func NewContactHandler(contact InquirySubmitter, log *zap.Logger) *ContactHandler {
	return &ContactHandler{contact: contact, log: log}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Unprocessable(c, "invalid request payload: "+err.Error())
		return
	}

	result, err := h.contact.SubmitInquiry(c.Request.Context(), app.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		h.log.Error("contact submission failed", zap.Error(err), zap.String("request_id", middleware.GetRequestID(c)))
		if app.IsInputError(err) {
			response.Unprocessable(c, err.Error())
			return
		}
		response.Internal(c, err)
		return
	}

	response.OK(c, result)
}
