package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"portfolio-twin/internal/ai"
	"portfolio-twin/internal/persona"
)

// Generator produces one completion for an ordered list of role-tagged messages.
type Generator interface {
	Complete(ctx context.Context, messages []ai.ChatMessage) (string, error)
}

// TurnPipeline wraps the caller's message in the persona priming context and asks
// the generator for a single reply.
type TurnPipeline struct {
	generator Generator
	persona   *persona.Persona
	log       *zap.Logger
}

func NewTurnPipeline(generator Generator, p *persona.Persona, log *zap.Logger) (*TurnPipeline, error) {
	if generator == nil {
		return nil, errors.New("app: generator must not be nil")
	}
	if p == nil {
		return nil, errors.New("app: persona must not be nil")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &TurnPipeline{generator: generator, persona: p, log: log}, nil
}

// PrimingContext returns the persona instruction, the model's acknowledgment and the
// user's message, in that order.
func (p *TurnPipeline) PrimingContext(userMessage string) []ai.ChatMessage {
	return []ai.ChatMessage{
		{Role: ai.RoleUser, Content: p.persona.Instruction},
		{Role: ai.RoleAssistant, Content: p.persona.Acknowledgment},
		{Role: ai.RoleUser, Content: userMessage},
	}
}

// GenerateReply returns the generated text untouched. history is accepted for API
// compatibility and does not reach the model.
func (p *TurnPipeline) GenerateReply(ctx context.Context, userMessage string, history []string) (string, error) {
	if strings.TrimSpace(userMessage) == "" {
		return "", ErrMessageEmpty
	}
	if len(history) > 0 {
		p.log.Debug("ignoring advisory chat history", zap.Int("history_items", len(history)))
	}

	reply, err := p.generator.Complete(ctx, p.PrimingContext(userMessage))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return reply, nil
}
