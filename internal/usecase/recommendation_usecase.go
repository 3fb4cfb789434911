// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"mylot/internal/domain/entity"

	"github.com/google/uuid"
)

// RecommendationInput carries the mutable fields of a recommended ticket.
type RecommendationInput struct {
	ResultID  *uuid.UUID
	Condition []string
	Status    bool
	Award     int
	Nums      []entity.NumberPick
}

// RecommendationListOutput is one page of recommendations with pagination metadata.
type RecommendationListOutput struct {
	Docs  []*entity.Recommendation
	Total int64
	Page  int
	Limit int
}

// RecommendationUsecase defines business operations on recommended tickets.
// Mutations are owner-scoped like LotteryUsecase.
type RecommendationUsecase interface {
	List(ctx context.Context, query ListQuery) (*RecommendationListOutput, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Recommendation, error)
	Create(ctx context.Context, actor Actor, input RecommendationInput) (*entity.Recommendation, error)
	CreateBatch(ctx context.Context, actor Actor, inputs []RecommendationInput) []BatchItemResult
	Update(ctx context.Context, actor Actor, id uuid.UUID, input RecommendationInput) (*entity.Recommendation, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}
