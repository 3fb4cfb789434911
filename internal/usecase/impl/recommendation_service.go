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

// recommendationService implements the RecommendationUsecase interface.
type recommendationService struct {
	recRepo repository.RecommendationRepository
	logger  *slog.Logger
}

// RecommendationServiceParams holds dependencies for recommendationService, injected by Fx.
type RecommendationServiceParams struct {
	fx.In

	RecRepo repository.RecommendationRepository
	Logger  *slog.Logger
}

// NewRecommendationService is the constructor for recommendationService.
func NewRecommendationService(params RecommendationServiceParams) usecase.RecommendationUsecase {
	return &recommendationService{
		recRepo: params.RecRepo,
		logger:  params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *recommendationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns one page of recommendations, newest first.
func (srv *recommendationService) List(ctx context.Context, query usecase.ListQuery) (*usecase.RecommendationListOutput, error) {
	query = query.Normalize()

	docs, total, err := srv.recRepo.List(ctx, query.Pagination())
	if err != nil {
		srv.log(ctx).Error("Failed to list recommendations", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list recommendations")
	}

	return &usecase.RecommendationListOutput{
		Docs:  docs,
		Total: total,
		Page:  query.Page,
		Limit: query.Limit,
	}, nil
}

// Get retrieves one recommendation by ID.
func (srv *recommendationService) Get(ctx context.Context, id uuid.UUID) (*entity.Recommendation, error) {
	rec, err := srv.recRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecommendationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "recommendation not found")
		}

		return nil, errors.Wrap(err, "failed to find recommendation")
	}

	return rec, nil
}

// Create persists one new recommendation owned by the acting user.
func (srv *recommendationService) Create(ctx context.Context, actor usecase.Actor, input usecase.RecommendationInput) (*entity.Recommendation, error) {
	if !entity.ValidAwardTier(input.Award) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "award tier out of range")
	}

	rec := &entity.Recommendation{
		UserID:    actor.ID,
		ResultID:  input.ResultID,
		Condition: input.Condition,
		Status:    input.Status,
		Award:     input.Award,
		Nums:      input.Nums,
	}

	if err := srv.recRepo.Create(ctx, rec); err != nil {
		return nil, errors.Wrap(err, "failed to create recommendation")
	}

	srv.log(ctx).Debug("Recommendation created", slog.Any("recommendationID", rec.ID), slog.Any("userID", actor.ID))

	return rec, nil
}

// CreateBatch creates many recommendations concurrently, reporting per-item outcomes.
func (srv *recommendationService) CreateBatch(ctx context.Context, actor usecase.Actor, inputs []usecase.RecommendationInput) []usecase.BatchItemResult {
	return runBatch(ctx, inputs, func(ctx context.Context, input usecase.RecommendationInput) (uuid.UUID, error) {
		rec, err := srv.Create(ctx, actor, input)
		if err != nil {
			return uuid.Nil, err
		}

		return rec.ID, nil
	})
}

// Update replaces the mutable fields of a recommendation the actor may manage.
func (srv *recommendationService) Update(ctx context.Context, actor usecase.Actor, id uuid.UUID, input usecase.RecommendationInput) (*entity.Recommendation, error) {
	rec, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.CanManage(rec.UserID) {
		srv.log(ctx).Warn("Recommendation update forbidden", slog.Any("recommendationID", id), slog.Any("actorID", actor.ID))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "not the recommendation owner")
	}

	if !entity.ValidAwardTier(input.Award) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "award tier out of range")
	}

	rec.ResultID = input.ResultID
	rec.Condition = input.Condition
	rec.Status = input.Status
	rec.Award = input.Award
	rec.Nums = input.Nums

	if err := srv.recRepo.Update(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrRecommendationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "recommendation not found")
		}

		return nil, errors.Wrap(err, "failed to update recommendation")
	}

	return rec, nil
}

// Delete removes a recommendation the actor may manage.
func (srv *recommendationService) Delete(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	rec, err := srv.Get(ctx, id)
	if err != nil {
		return err
	}

	if !actor.CanManage(rec.UserID) {
		srv.log(ctx).Warn("Recommendation delete forbidden", slog.Any("recommendationID", id), slog.Any("actorID", actor.ID))

		return errors.Wrap(domainerrors.ErrForbidden, "not the recommendation owner")
	}

	if err := srv.recRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecommendationNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "recommendation not found")
		}

		return errors.Wrap(err, "failed to delete recommendation")
	}

	return nil
}
