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

// resultRepository implements the repository.ResultRepository interface.
type resultRepository struct {
	db *gorm.DB
}

// NewResultRepository is the constructor for resultRepository.
func NewResultRepository(db *gorm.DB) repository.ResultRepository {
	return &resultRepository{
		db: db,
	}
}

// Create persists a new result. Picks are normalized before the row is written.
func (repo *resultRepository) Create(ctx context.Context, result *entity.Result) error {
	entity.SortPicksByRateDesc(result.Nums)
	resultM := fromResultDomain(result)

	if err := repo.db.WithContext(ctx).Create(resultM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrResultCodeTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create result")
	}

	result.ID = resultM.ID
	result.CreatedAt = resultM.CreatedAt
	result.UpdatedAt = resultM.UpdatedAt

	return nil
}

// FindByID retrieves a single result by its unique ID.
func (repo *resultRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Result, error) {
	var resultM model.ResultModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&resultM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResultNotFound
		}

		return nil, errors.Wrap(err, "failed to find result by ID")
	}

	return toResultDomain(&resultM), nil
}

// FindLatest retrieves the most recent result by draw date.
func (repo *resultRepository) FindLatest(ctx context.Context) (*entity.Result, error) {
	var resultM model.ResultModel

	if err := repo.db.WithContext(ctx).
		Order("result_date DESC").
		First(&resultM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResultNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest result")
	}

	return toResultDomain(&resultM), nil
}

// resultListColumns is the fixed projection served by the list endpoint.
var resultListColumns = []string{
	"id", "code", "budget", "result_date", "nums",
	"award1", "award2", "award3", "award4", "created_at",
}

// List returns one page of results, newest draw first, with the total count.
// Rows carry the list projection only, not every column.
func (repo *resultRepository) List(ctx context.Context, page repository.Pagination) ([]*entity.Result, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ResultModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count results")
	}

	var resultModels []*model.ResultModel
	if err := repo.db.WithContext(ctx).
		Select(resultListColumns).
		Order("result_date DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&resultModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list results")
	}

	results := make([]*entity.Result, 0, len(resultModels))
	for _, resultM := range resultModels {
		results = append(results, toResultDomain(resultM))
	}

	return results, total, nil
}

// Update replaces the mutable fields of a result. The code column is never touched.
func (repo *resultRepository) Update(ctx context.Context, result *entity.Result) error {
	entity.SortPicksByRateDesc(result.Nums)

	updates := map[string]any{
		"budget":      result.Budget,
		"result_date": result.ResultDate,
		"nums":        model.PickList(result.Nums),
		"award1":      result.Award1,
		"award2":      result.Award2,
		"award3":      result.Award3,
		"award4":      result.Award4,
	}

	updateResult := repo.db.WithContext(ctx).
		Model(&model.ResultModel{}).
		Where("id = ?", result.ID).
		Updates(updates)

	if updateResult.Error != nil {
		return errors.Wrap(updateResult.Error, "failed to update result")
	}

	if updateResult.RowsAffected == 0 {
		return repository.ErrResultNotFound
	}

	return nil
}

// Delete removes a result by its ID.
func (repo *resultRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ResultModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete result")
	}

	if result.RowsAffected == 0 {
		return repository.ErrResultNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toResultDomain converts a GORM ResultModel to a domain Result entity.
func toResultDomain(data *model.ResultModel) *entity.Result {
	if data == nil {
		return nil
	}

	return &entity.Result{
		ID:         data.ID,
		Code:       data.Code,
		Budget:     data.Budget,
		ResultDate: data.ResultDate,
		Nums:       data.Nums,
		Award1:     data.Award1,
		Award2:     data.Award2,
		Award3:     data.Award3,
		Award4:     data.Award4,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromResultDomain converts a domain Result entity to a GORM ResultModel.
func fromResultDomain(data *entity.Result) *model.ResultModel {
	if data == nil {
		return nil
	}

	return &model.ResultModel{
		ID:         data.ID,
		Code:       data.Code,
		Budget:     data.Budget,
		ResultDate: data.ResultDate,
		Nums:       data.Nums,
		Award1:     data.Award1,
		Award2:     data.Award2,
		Award3:     data.Award3,
		Award4:     data.Award4,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
