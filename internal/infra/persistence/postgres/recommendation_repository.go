// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"mylot/internal/domain/entity"
	domainerrors "mylot/internal/domain/errors"
	"mylot/internal/domain/repository"
	"mylot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recommendationRepository implements the repository.RecommendationRepository interface.
type recommendationRepository struct {
	db *gorm.DB
}

// NewRecommendationRepository is the constructor for recommendationRepository.
func NewRecommendationRepository(db *gorm.DB) repository.RecommendationRepository {
	return &recommendationRepository{
		db: db,
	}
}

// Create persists a new recommendation. Picks are normalized before the row is written.
func (repo *recommendationRepository) Create(ctx context.Context, rec *entity.Recommendation) error {
	entity.SortPicksByRateDesc(rec.Nums)
	recM := fromRecommendationDomain(rec)

	if err := repo.db.WithContext(ctx).Create(recM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("invalid user or result reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recommendation")
	}

	rec.ID = recM.ID
	rec.CreatedAt = recM.CreatedAt
	rec.UpdatedAt = recM.UpdatedAt

	return nil
}

// FindByID retrieves a single recommendation by its unique ID.
func (repo *recommendationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recommendation, error) {
	var recM model.RecommendationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecommendationNotFound
		}

		return nil, errors.Wrap(err, "failed to find recommendation by ID")
	}

	return toRecommendationDomain(&recM), nil
}

// FindByUser retrieves all recommendations owned by a user, newest first.
func (repo *recommendationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Recommendation, error) {
	var recModels []*model.RecommendationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recommendations by user")
	}

	recs := make([]*entity.Recommendation, 0, len(recModels))
	for _, recM := range recModels {
		recs = append(recs, toRecommendationDomain(recM))
	}

	return recs, nil
}

// List returns one page of recommendations, newest first, with the total count.
func (repo *recommendationRepository) List(ctx context.Context, page repository.Pagination) ([]*entity.Recommendation, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.RecommendationModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count recommendations")
	}

	var recModels []*model.RecommendationModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&recModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list recommendations")
	}

	recs := make([]*entity.Recommendation, 0, len(recModels))
	for _, recM := range recModels {
		recs = append(recs, toRecommendationDomain(recM))
	}

	return recs, total, nil
}

// Update replaces the mutable fields of a recommendation. Picks are normalized first.
func (repo *recommendationRepository) Update(ctx context.Context, rec *entity.Recommendation) error {
	entity.SortPicksByRateDesc(rec.Nums)
	recM := fromRecommendationDomain(rec)

	result := repo.db.WithContext(ctx).
		Model(&model.RecommendationModel{}).
		Where("id = ?", rec.ID).
		Select("result_id", "condition", "status", "award", "nums").
		Updates(recM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update recommendation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecommendationNotFound
	}

	return nil
}

// Delete removes a recommendation by its ID.
func (repo *recommendationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RecommendationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete recommendation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecommendationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRecommendationDomain converts a GORM RecommendationModel to a domain Recommendation entity.
func toRecommendationDomain(data *model.RecommendationModel) *entity.Recommendation {
	if data == nil {
		return nil
	}

	return &entity.Recommendation{
		ID:        data.ID,
		UserID:    data.UserID,
		ResultID:  data.ResultID,
		Condition: data.Condition,
		Status:    data.Status,
		Award:     data.Award,
		Nums:      data.Nums,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromRecommendationDomain converts a domain Recommendation entity to a GORM RecommendationModel.
func fromRecommendationDomain(data *entity.Recommendation) *model.RecommendationModel {
	if data == nil {
		return nil
	}

	return &model.RecommendationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ResultID:  data.ResultID,
		Condition: data.Condition,
		Status:    data.Status,
		Award:     data.Award,
		Nums:      data.Nums,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
