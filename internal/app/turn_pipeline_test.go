package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"portfolio-twin/internal/ai"
)

func TestNewTurnPipeline_ValidatesDependencies(t *testing.T) {
	_, err := NewTurnPipeline(nil, testPersona(), nil)
	require.Error(t, err)
	_, err = NewTurnPipeline(&fakeGenerator{}, nil, nil)
	require.Error(t, err)
}

func TestGenerateReply_BuildsThreeMessagePrimingContext(t *testing.T) {
	gen := &fakeGenerator{reply: "**Hello** from the twin"}
	p, err := NewTurnPipeline(gen, testPersona(), nil)
	require.NoError(t, err)

	reply, err := p.GenerateReply(context.Background(), "Tell me about NEEL", []string{`"earlier"`, `"turns"`})
	require.NoError(t, err)
	require.Equal(t, "**Hello** from the twin", reply, "reply is returned without sanitizing")
	require.Equal(t, 1, gen.calls)
	require.Equal(t, []ai.ChatMessage{
		{Role: ai.RoleUser, Content: "You are the digital twin. NEVER use bold markdown."},
		{Role: ai.RoleAssistant, Content: "Understood."},
		{Role: ai.RoleUser, Content: "Tell me about NEEL"},
	}, gen.captured)
}

func TestGenerateReply_RejectsBlankMessage(t *testing.T) {
	gen := &fakeGenerator{}
	p, err := NewTurnPipeline(gen, testPersona(), nil)
	require.NoError(t, err)

	_, err = p.GenerateReply(context.Background(), " \n\t", nil)
	require.ErrorIs(t, err, ErrMessageEmpty)
	require.Zero(t, gen.calls)
}

func TestGenerateReply_WrapsGeneratorFailure(t *testing.T) {
	gen := &fakeGenerator{err: &ai.StatusError{StatusCode: 429, Body: "quota"}}
	p, err := NewTurnPipeline(gen, testPersona(), nil)
	require.NoError(t, err)

	_, err = p.GenerateReply(context.Background(), "hi", nil)
	require.ErrorIs(t, err, ErrGeneration)
	require.Contains(t, err.Error(), "quota")
	require.Equal(t, 1, gen.calls, "no retry")

	gen.err = errors.New("dial tcp: connection refused")
	_, err = p.GenerateReply(context.Background(), "hi", nil)
	require.ErrorIs(t, err, ErrGeneration)
}
