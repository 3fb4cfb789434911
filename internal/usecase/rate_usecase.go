// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"mylot/internal/domain/entity"

	"github.com/google/uuid"
)

// RateInput carries the mutable fields of a per-draw weight document.
type RateInput struct {
	ResultID uuid.UUID
	Rates    []entity.NumberPick
}

// RateListOutput is one page of rate documents with pagination metadata.
type RateListOutput struct {
	Docs  []*entity.Rate
	Total int64
	Page  int
	Limit int
}

// RateUsecase defines business operations on per-draw weight documents.
type RateUsecase interface {
	List(ctx context.Context, query ListQuery) (*RateListOutput, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Rate, error)
	GetByResult(ctx context.Context, resultID uuid.UUID) (*entity.Rate, error)
	Create(ctx context.Context, input RateInput) (*entity.Rate, error)
	CreateBatch(ctx context.Context, inputs []RateInput) []BatchItemResult
	Update(ctx context.Context, id uuid.UUID, input RateInput) (*entity.Rate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
