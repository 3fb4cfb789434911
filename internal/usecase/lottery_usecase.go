// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"mylot/internal/domain/entity"

	"github.com/google/uuid"
)

// LotteryInput carries the mutable fields of a played ticket.
type LotteryInput struct {
	ResultID  *uuid.UUID
	Condition []string
	Status    bool
	Award     int
	Nums      []entity.NumberPick
}

// LotteryListOutput is one page of tickets with pagination metadata.
type LotteryListOutput struct {
	Docs  []*entity.Lottery
	Total int64
	Page  int
	Limit int
}

// LotteryUsecase defines business operations on played tickets.
// Mutations are owner-scoped: the acting user must own the ticket or hold
// a content-managing role.
type LotteryUsecase interface {
	List(ctx context.Context, query ListQuery) (*LotteryListOutput, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Lottery, error)
	Create(ctx context.Context, actor Actor, input LotteryInput) (*entity.Lottery, error)
	CreateBatch(ctx context.Context, actor Actor, inputs []LotteryInput) []BatchItemResult
	Update(ctx context.Context, actor Actor, id uuid.UUID, input LotteryInput) (*entity.Lottery, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}
