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

// resultService implements the ResultUsecase interface.
type resultService struct {
	resultRepo  repository.ResultRepository
	lotteryRepo repository.LotteryRepository
	logger      *slog.Logger
}

// ResultServiceParams holds dependencies for resultService, injected by Fx.
type ResultServiceParams struct {
	fx.In

	ResultRepo  repository.ResultRepository
	LotteryRepo repository.LotteryRepository
	Logger      *slog.Logger
}

// NewResultService is the constructor for resultService.
func NewResultService(params ResultServiceParams) usecase.ResultUsecase {
	return &resultService{
		resultRepo:  params.ResultRepo,
		lotteryRepo: params.LotteryRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *resultService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns one page of results, newest draw first.
func (srv *resultService) List(ctx context.Context, query usecase.ListQuery) (*usecase.ResultListOutput, error) {
	query = query.Normalize()

	docs, total, err := srv.resultRepo.List(ctx, query.Pagination())
	if err != nil {
		srv.log(ctx).Error("Failed to list results", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list results")
	}

	return &usecase.ResultListOutput{
		Docs:  docs,
		Total: total,
		Page:  query.Page,
		Limit: query.Limit,
	}, nil
}

// Latest returns the newest draw plus how many tickets reference it.
func (srv *resultService) Latest(ctx context.Context) (*usecase.LatestResultOutput, error) {
	result, err := srv.resultRepo.FindLatest(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrResultNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "no results yet")
		}

		return nil, errors.Wrap(err, "failed to load latest result")
	}

	currentLots, err := srv.lotteryRepo.CountByResultID(ctx, result.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count current lotteries")
	}

	return &usecase.LatestResultOutput{
		Result:      result,
		CurrentLots: currentLots,
	}, nil
}

// Get retrieves one result by ID.
func (srv *resultService) Get(ctx context.Context, id uuid.UUID) (*entity.Result, error) {
	result, err := srv.resultRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrResultNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "result not found")
		}

		return nil, errors.Wrap(err, "failed to find result")
	}

	return result, nil
}

// Create persists one new result.
func (srv *resultService) Create(ctx context.Context, input usecase.ResultInput) (*entity.Result, error) {
	result := &entity.Result{
		Code:       input.Code,
		Budget:     input.Budget,
		ResultDate: input.ResultDate,
		Nums:       input.Nums,
		Award1:     input.Award1,
		Award2:     input.Award2,
		Award3:     input.Award3,
		Award4:     input.Award4,
	}

	if err := srv.resultRepo.Create(ctx, result); err != nil {
		if errors.Is(err, repository.ErrResultCodeTaken) {
			srv.log(ctx).Warn("Duplicate result code", slog.String("code", input.Code))

			return nil, errors.Wrap(domainerrors.ErrConflict, "result code already exists")
		}

		return nil, errors.Wrap(err, "failed to create result")
	}

	srv.log(ctx).Debug("Result created", slog.Any("resultID", result.ID), slog.String("code", result.Code))

	return result, nil
}

// CreateBatch creates many results concurrently, reporting per-item outcomes.
func (srv *resultService) CreateBatch(ctx context.Context, inputs []usecase.ResultInput) []usecase.BatchItemResult {
	return runBatch(ctx, inputs, func(ctx context.Context, input usecase.ResultInput) (uuid.UUID, error) {
		result, err := srv.Create(ctx, input)
		if err != nil {
			return uuid.Nil, err
		}

		return result.ID, nil
	})
}

// Update replaces the mutable fields of a result. The code is immutable.
func (srv *resultService) Update(ctx context.Context, id uuid.UUID, input usecase.ResultInput) (*entity.Result, error) {
	result, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result.Budget = input.Budget
	result.ResultDate = input.ResultDate
	result.Nums = input.Nums
	result.Award1 = input.Award1
	result.Award2 = input.Award2
	result.Award3 = input.Award3
	result.Award4 = input.Award4

	if err := srv.resultRepo.Update(ctx, result); err != nil {
		if errors.Is(err, repository.ErrResultNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "result not found")
		}

		return nil, errors.Wrap(err, "failed to update result")
	}

	return result, nil
}

// Delete removes a result.
func (srv *resultService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.resultRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrResultNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "result not found")
		}

		return errors.Wrap(err, "failed to delete result")
	}

	srv.log(ctx).Debug("Result deleted", slog.Any("resultID", id))

	return nil
}
