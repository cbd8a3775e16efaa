package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"portfolio-twin/internal/model"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, inquiry *model.ContactInquiry) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(inquiry).Error
	})
	if err != nil {
		return fmt.Errorf("create contact inquiry failed: %w", err)
	}
	return nil
}
