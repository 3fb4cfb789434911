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

// rateRepository implements the repository.RateRepository interface.
type rateRepository struct {
	db *gorm.DB
}

// NewRateRepository is the constructor for rateRepository.
func NewRateRepository(db *gorm.DB) repository.RateRepository {
	return &rateRepository{
		db: db,
	}
}

// Create persists a new rate document. Weights are normalized before the row is written.
func (repo *rateRepository) Create(ctx context.Context, rate *entity.Rate) error {
	entity.SortPicksByRateDesc(rate.Rates)
	rateM := fromRateDomain(rate)

	if err := repo.db.WithContext(ctx).Create(rateM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("invalid result reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rate")
	}

	rate.ID = rateM.ID
	rate.CreatedAt = rateM.CreatedAt
	rate.UpdatedAt = rateM.UpdatedAt

	return nil
}

// FindByID retrieves a single rate document by its unique ID.
func (repo *rateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rate, error) {
	var rateM model.RateModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&rateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRateNotFound
		}

		return nil, errors.Wrap(err, "failed to find rate by ID")
	}

	return toRateDomain(&rateM), nil
}

// FindByResultID retrieves the rate document for a draw.
func (repo *rateRepository) FindByResultID(ctx context.Context, resultID uuid.UUID) (*entity.Rate, error) {
	var rateM model.RateModel

	if err := repo.db.WithContext(ctx).
		Where("result_id = ?", resultID).
		Order("created_at DESC").
		First(&rateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRateNotFound
		}

		return nil, errors.Wrap(err, "failed to find rate by result")
	}

	return toRateDomain(&rateM), nil
}

// List returns one page of rate documents, newest first, with the total count.
func (repo *rateRepository) List(ctx context.Context, page repository.Pagination) ([]*entity.Rate, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.RateModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count rates")
	}

	var rateModels []*model.RateModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&rateModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list rates")
	}

	rates := make([]*entity.Rate, 0, len(rateModels))
	for _, rateM := range rateModels {
		rates = append(rates, toRateDomain(rateM))
	}

	return rates, total, nil
}

// Update replaces the mutable fields of a rate document. Weights are normalized first.
func (repo *rateRepository) Update(ctx context.Context, rate *entity.Rate) error {
	entity.SortPicksByRateDesc(rate.Rates)

	result := repo.db.WithContext(ctx).
		Model(&model.RateModel{}).
		Where("id = ?", rate.ID).
		Updates(map[string]any{
			"result_id": rate.ResultID,
			"rates":     model.PickList(rate.Rates),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update rate")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRateNotFound
	}

	return nil
}

// Delete removes a rate document by its ID.
func (repo *rateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RateModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete rate")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRateNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRateDomain converts a GORM RateModel to a domain Rate entity.
func toRateDomain(data *model.RateModel) *entity.Rate {
	if data == nil {
		return nil
	}

	return &entity.Rate{
		ID:        data.ID,
		ResultID:  data.ResultID,
		Rates:     data.Rates,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromRateDomain converts a domain Rate entity to a GORM RateModel.
func fromRateDomain(data *entity.Rate) *model.RateModel {
	if data == nil {
		return nil
	}

	return &model.RateModel{
		ID:        data.ID,
		ResultID:  data.ResultID,
		Rates:     data.Rates,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
