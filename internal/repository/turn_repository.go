package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"portfolio-twin/internal/model"
)

type TurnRepository struct {
	db *gorm.DB
}

func NewTurnRepository(db *gorm.DB) *TurnRepository {
	return &TurnRepository{db: db}
}

// Create appends one turn in its own transaction. gorm rolls the transaction back
// when the insert fails.
func (r *TurnRepository) Create(ctx context.Context, turn *model.ChatTurn) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(turn).Error
	})
	if err != nil {
		return fmt.Errorf("create chat turn failed: %w", err)
	}
	return nil
}
