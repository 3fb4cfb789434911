package impl

import (
	"context"
	"log/slog"

	deliverycontext "mylot/internal/delivery/context"
	"mylot/internal/domain/entity"
	domainerrors "mylot/internal/domain/errors"
	"mylot/internal/domain/repository"
	"mylot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// lotteryService implements the LotteryUsecase interface.
type lotteryService struct {
	lotteryRepo repository.LotteryRepository
	logger      *slog.Logger
}

// LotteryServiceParams holds dependencies for lotteryService, injected by Fx.
type LotteryServiceParams struct {
	fx.In

	LotteryRepo repository.LotteryRepository
	Logger      *slog.Logger
}

// NewLotteryService is the constructor for lotteryService.
func NewLotteryService(params LotteryServiceParams) usecase.LotteryUsecase {
	return &lotteryService{
		lotteryRepo: params.LotteryRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *lotteryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns one page of tickets, newest first.
func (srv *lotteryService) List(ctx context.Context, query usecase.ListQuery) (*usecase.LotteryListOutput, error) {
	query = query.Normalize()

	docs, total, err := srv.lotteryRepo.List(ctx, query.Pagination())
	if err != nil {
		srv.log(ctx).Error("Failed to list lotteries", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list lotteries")
	}

	return &usecase.LotteryListOutput{
		Docs:  docs,
		Total: total,
		Page:  query.Page,
		Limit: query.Limit,
	}, nil
}

// Get retrieves one ticket by ID.
func (srv *lotteryService) Get(ctx context.Context, id uuid.UUID) (*entity.Lottery, error) {
	lottery, err := srv.lotteryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLotteryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "lottery not found")
		}

		return nil, errors.Wrap(err, "failed to find lottery")
	}

	return lottery, nil
}

// Create persists one new ticket owned by the acting user.
func (srv *lotteryService) Create(ctx context.Context, actor usecase.Actor, input usecase.LotteryInput) (*entity.Lottery, error) {
	if !entity.ValidAwardTier(input.Award) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "award tier out of range")
	}

	lottery := &entity.Lottery{
		UserID:    actor.ID,
		ResultID:  input.ResultID,
		Condition: input.Condition,
		Status:    input.Status,
		Award:     input.Award,
		Nums:      input.Nums,
	}

	if err := srv.lotteryRepo.Create(ctx, lottery); err != nil {
		return nil, errors.Wrap(err, "failed to create lottery")
	}

	srv.log(ctx).Debug("Lottery created", slog.Any("lotteryID", lottery.ID), slog.Any("userID", actor.ID))

	return lottery, nil
}

// CreateBatch creates many tickets concurrently, reporting per-item outcomes.
func (srv *lotteryService) CreateBatch(ctx context.Context, actor usecase.Actor, inputs []usecase.LotteryInput) []usecase.BatchItemResult {
	return runBatch(ctx, inputs, func(ctx context.Context, input usecase.LotteryInput) (uuid.UUID, error) {
		lottery, err := srv.Create(ctx, actor, input)
		if err != nil {
			return uuid.Nil, err
		}

		return lottery.ID, nil
	})
}

// Update replaces the mutable fields of a ticket the actor may manage.
func (srv *lotteryService) Update(ctx context.Context, actor usecase.Actor, id uuid.UUID, input usecase.LotteryInput) (*entity.Lottery, error) {
	lottery, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.CanManage(lottery.UserID) {
		srv.log(ctx).Warn("Lottery update forbidden", slog.Any("lotteryID", id), slog.Any("actorID", actor.ID))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "not the ticket owner")
	}

	if !entity.ValidAwardTier(input.Award) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "award tier out of range")
	}

	lottery.ResultID = input.ResultID
	lottery.Condition = input.Condition
	lottery.Status = input.Status
	lottery.Award = input.Award
	lottery.Nums = input.Nums

	if err := srv.lotteryRepo.Update(ctx, lottery); err != nil {
		if errors.Is(err, repository.ErrLotteryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "lottery not found")
		}

		return nil, errors.Wrap(err, "failed to update lottery")
	}

	return lottery, nil
}

// Delete removes a ticket the actor may manage.
func (srv *lotteryService) Delete(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	lottery, err := srv.Get(ctx, id)
	if err != nil {
		return err
	}

	if !actor.CanManage(lottery.UserID) {
		srv.log(ctx).Warn("Lottery delete forbidden", slog.Any("lotteryID", id), slog.Any("actorID", actor.ID))

		return errors.Wrap(domainerrors.ErrForbidden, "not the ticket owner")
	}

	if err := srv.lotteryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrLotteryNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "lottery not found")
		}

		return errors.Wrap(err, "failed to delete lottery")
	}

	return nil
}
