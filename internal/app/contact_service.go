package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"portfolio-twin/internal/model"
)

const (
	contactStatusSuccess   = "success"
	contactRecordedMessage = "Inquiry recorded in database"
)

type InquiryStore interface {
	Create(ctx context.Context, inquiry *model.ContactInquiry) error
}

// Notifier reports whether a notification was handed off. It never fails the caller.
type Notifier interface {
	Notify(ctx context.Context, inquiry model.ContactInquiry) bool
}

type ContactInput struct {
	Name    *string
	Email   string
	Subject string
	Message string
}

type ContactResult struct {
	Status          string `json:"status"`
	Message         string `json:"message"`
	EmailDispatched bool   `json:"email_dispatched"`
}

type ContactService struct {
	store    InquiryStore
	notifier Notifier
	log      *zap.Logger
}

func NewContactService(store InquiryStore, notifier Notifier, log *zap.Logger) (*ContactService, error) {
	if store == nil {
		return nil, errors.New("app: inquiry store must not be nil")
	}
	if notifier == nil {
		return nil, errors.New("app: notifier must not be nil")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ContactService{store: store, notifier: notifier, log: log}, nil
}

// SubmitInquiry stores the inquiry, then attempts the notification. Only the store
// write can fail the call.
func (s *ContactService) SubmitInquiry(ctx context.Context, in ContactInput) (*ContactResult, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || strings.TrimSpace(in.Subject) == "" || strings.TrimSpace(in.Message) == "" {
		return nil, fmt.Errorf("%w: email, subject and message are required", ErrInvalidInput)
	}

	name := model.DefaultContactName
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		name = strings.TrimSpace(*in.Name)
	}

	inquiry := &model.ContactInquiry{
		Name:    &name,
		Email:   email,
		Subject: in.Subject,
		Message: in.Message,
	}
	if err := s.store.Create(ctx, inquiry); err != nil {
		s.log.Error("store contact inquiry failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	dispatched := s.notifier.Notify(ctx, *inquiry)
	s.log.Info("contact inquiry recorded",
		zap.Uint("inquiry_id", inquiry.ID),
		zap.Bool("email_dispatched", dispatched),
	)

	return &ContactResult{
		Status:          contactStatusSuccess,
		Message:         contactRecordedMessage,
		EmailDispatched: dispatched,
	}, nil
}
