package app

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"portfolio-twin/internal/model"
)

type ChatInput struct {
	Message string
	History []string
}

// ChatService runs one exchange: the user turn is committed before the model is
// called and the AI turn after it. A failed generation leaves the user turn in place.
type ChatService struct {
	recorder *TurnRecorder
	pipeline *TurnPipeline
	log      *zap.Logger
}

func NewChatService(recorder *TurnRecorder, pipeline *TurnPipeline, log *zap.Logger) (*ChatService, error) {
	if recorder == nil {
		return nil, errors.New("app: turn recorder must not be nil")
	}
	if pipeline == nil {
		return nil, errors.New("app: turn pipeline must not be nil")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ChatService{recorder: recorder, pipeline: pipeline, log: log}, nil
}

func (s *ChatService) Chat(ctx context.Context, in ChatInput) (string, error) {
	if strings.TrimSpace(in.Message) == "" {
		return "", ErrMessageEmpty
	}

	userTurn, err := s.recorder.RecordTurn(ctx, model.RoleUser, in.Message)
	if err != nil {
		s.log.Error("record user turn failed", zap.Error(err))
		return "", err
	}

	reply, err := s.pipeline.GenerateReply(ctx, in.Message, in.History)
	if err != nil {
		s.log.Warn("generation failed, user turn kept without reply",
			zap.Uint("user_turn_id", userTurn.ID),
			zap.Error(err),
		)
		return "", err
	}

	aiTurn, err := s.recorder.RecordTurn(ctx, model.RoleAI, reply)
	if err != nil {
		s.log.Error("record ai turn failed", zap.Uint("user_turn_id", userTurn.ID), zap.Error(err))
		return "", err
	}

	s.log.Info("chat turn recorded",
		zap.Uint("user_turn_id", userTurn.ID),
		zap.Uint("ai_turn_id", aiTurn.ID),
		zap.Int("reply_len", len(reply)),
	)
	return reply, nil
}
