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

// rateService implements the RateUsecase interface.
type rateService struct {
	rateRepo repository.RateRepository
	logger   *slog.Logger
}

// RateServiceParams holds dependencies for rateService, injected by Fx.
type RateServiceParams struct {
	fx.In

	RateRepo repository.RateRepository
	Logger   *slog.Logger
}

// NewRateService is the constructor for rateService.
func NewRateService(params RateServiceParams) usecase.RateUsecase {
	return &rateService{
		rateRepo: params.RateRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *rateService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns one page of rate documents, newest first.
func (srv *rateService) List(ctx context.Context, query usecase.ListQuery) (*usecase.RateListOutput, error) {
	query = query.Normalize()

	docs, total, err := srv.rateRepo.List(ctx, query.Pagination())
	if err != nil {
		srv.log(ctx).Error("Failed to list rates", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list rates")
	}

	return &usecase.RateListOutput{
		Docs:  docs,
		Total: total,
		Page:  query.Page,
		Limit: query.Limit,
	}, nil
}

// Get retrieves one rate document by ID.
func (srv *rateService) Get(ctx context.Context, id uuid.UUID) (*entity.Rate, error) {
	rate, err := srv.rateRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRateNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "rate not found")
		}

		return nil, errors.Wrap(err, "failed to find rate")
	}

	return rate, nil
}

// GetByResult retrieves the rate document for a draw.
func (srv *rateService) GetByResult(ctx context.Context, resultID uuid.UUID) (*entity.Rate, error) {
	rate, err := srv.rateRepo.FindByResultID(ctx, resultID)
	if err != nil {
		if errors.Is(err, repository.ErrRateNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "rate not found")
		}

		return nil, errors.Wrap(err, "failed to find rate by result")
	}

	return rate, nil
}

// Create persists one new rate document.
func (srv *rateService) Create(ctx context.Context, input usecase.RateInput) (*entity.Rate, error) {
	rate := &entity.Rate{
		ResultID: input.ResultID,
		Rates:    input.Rates,
	}

	if err := srv.rateRepo.Create(ctx, rate); err != nil {
		return nil, errors.Wrap(err, "failed to create rate")
	}

	srv.log(ctx).Debug("Rate created", slog.Any("rateID", rate.ID), slog.Any("resultID", rate.ResultID))

	return rate, nil
}

// CreateBatch creates many rate documents concurrently, reporting per-item outcomes.
func (srv *rateService) CreateBatch(ctx context.Context, inputs []usecase.RateInput) []usecase.BatchItemResult {
	return runBatch(ctx, inputs, func(ctx context.Context, input usecase.RateInput) (uuid.UUID, error) {
		rate, err := srv.Create(ctx, input)
		if err != nil {
			return uuid.Nil, err
		}

		return rate.ID, nil
	})
}

// Update replaces the mutable fields of a rate document.
func (srv *rateService) Update(ctx context.Context, id uuid.UUID, input usecase.RateInput) (*entity.Rate, error) {
	rate, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	rate.ResultID = input.ResultID
	rate.Rates = input.Rates

	if err := srv.rateRepo.Update(ctx, rate); err != nil {
		if errors.Is(err, repository.ErrRateNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "rate not found")
		}

		return nil, errors.Wrap(err, "failed to update rate")
	}

	return rate, nil
}

// Delete removes a rate document.
func (srv *rateService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.rateRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRateNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "rate not found")
		}

		return errors.Wrap(err, "failed to delete rate")
	}

	srv.log(ctx).Debug("Rate deleted", slog.Any("rateID", id))

	return nil
}
