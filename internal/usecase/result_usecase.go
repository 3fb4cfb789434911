// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"mylot/internal/domain/entity"

	"github.com/google/uuid"
)

// ResultInput carries the mutable fields of a draw result.
// Code is only honored on create; updates never change it.
type ResultInput struct {
	Code       string
	Budget     int64
	ResultDate time.Time
	Nums       []entity.NumberPick
	Award1     int64
	Award2     int64
	Award3     int64
	Award4     int64
}

// ResultListOutput is one page of results with pagination metadata.
type ResultListOutput struct {
	Docs  []*entity.Result
	Total int64
	Page  int
	Limit int
}

// LatestResultOutput is the newest draw plus how many tickets reference it.
type LatestResultOutput struct {
	Result      *entity.Result
	CurrentLots int64
}

// ResultUsecase defines business operations on draw results.
type ResultUsecase interface {
	List(ctx context.Context, query ListQuery) (*ResultListOutput, error)
	Latest(ctx context.Context) (*LatestResultOutput, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Result, error)
	Create(ctx context.Context, input ResultInput) (*entity.Result, error)
	CreateBatch(ctx context.Context, inputs []ResultInput) []BatchItemResult
	Update(ctx context.Context, id uuid.UUID, input ResultInput) (*entity.Result, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
