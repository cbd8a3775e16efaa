package app

import (
	"context"
	"errors"
	"fmt"

	"portfolio-twin/internal/model"
)

type TurnStore interface {
	Create(ctx context.Context, turn *model.ChatTurn) error
}

// TurnRecorder appends chat turns one durable row at a time.
type TurnRecorder struct {
	store TurnStore
}

func NewTurnRecorder(store TurnStore) (*TurnRecorder, error) {
	if store == nil {
		return nil, errors.New("app: turn store must not be nil")
	}
	return &TurnRecorder{store: store}, nil
}

func (r *TurnRecorder) RecordTurn(ctx context.Context, role model.Role, content string) (*model.ChatTurn, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	turn := &model.ChatTurn{Role: role, Content: content}
	if err := r.store.Create(ctx, turn); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return turn, nil
}
