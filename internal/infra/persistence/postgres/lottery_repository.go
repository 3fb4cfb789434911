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

// lotteryRepository implements the repository.LotteryRepository interface.
type lotteryRepository struct {
	db *gorm.DB
}

// NewLotteryRepository is the constructor for lotteryRepository.
func NewLotteryRepository(db *gorm.DB) repository.LotteryRepository {
	return &lotteryRepository{
		db: db,
	}
}

// Create persists a new lottery ticket. Picks are normalized before the row is written.
func (repo *lotteryRepository) Create(ctx context.Context, lottery *entity.Lottery) error {
	entity.SortPicksByRateDesc(lottery.Nums)
	lotteryM := fromLotteryDomain(lottery)

	if err := repo.db.WithContext(ctx).Create(lotteryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("invalid user or result reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create lottery")
	}

	lottery.ID = lotteryM.ID
	lottery.CreatedAt = lotteryM.CreatedAt
	lottery.UpdatedAt = lotteryM.UpdatedAt

	return nil
}

// FindByID retrieves a single ticket by its unique ID.
func (repo *lotteryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lottery, error) {
	var lotteryM model.LotteryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&lotteryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLotteryNotFound
		}

		return nil, errors.Wrap(err, "failed to find lottery by ID")
	}

	return toLotteryDomain(&lotteryM), nil
}

// FindByUser retrieves all tickets owned by a user, newest first.
func (repo *lotteryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Lottery, error) {
	var lotteryModels []*model.LotteryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&lotteryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find lotteries by user")
	}

	lotteries := make([]*entity.Lottery, 0, len(lotteryModels))
	for _, lotteryM := range lotteryModels {
		lotteries = append(lotteries, toLotteryDomain(lotteryM))
	}

	return lotteries, nil
}

// List returns one page of tickets, newest first, with the total count.
func (repo *lotteryRepository) List(ctx context.Context, page repository.Pagination) ([]*entity.Lottery, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.LotteryModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count lotteries")
	}

	var lotteryModels []*model.LotteryModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&lotteryModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list lotteries")
	}

	lotteries := make([]*entity.Lottery, 0, len(lotteryModels))
	for _, lotteryM := range lotteryModels {
		lotteries = append(lotteries, toLotteryDomain(lotteryM))
	}

	return lotteries, total, nil
}

// CountByResultID returns how many tickets reference the given draw.
func (repo *lotteryRepository) CountByResultID(ctx context.Context, resultID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LotteryModel{}).
		Where("result_id = ?", resultID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count lotteries by result")
	}

	return count, nil
}

// Update replaces the mutable fields of a ticket. Picks are normalized first.
func (repo *lotteryRepository) Update(ctx context.Context, lottery *entity.Lottery) error {
	entity.SortPicksByRateDesc(lottery.Nums)
	lotteryM := fromLotteryDomain(lottery)

	result := repo.db.WithContext(ctx).
		Model(&model.LotteryModel{}).
		Where("id = ?", lottery.ID).
		Select("result_id", "condition", "status", "award", "nums").
		Updates(lotteryM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update lottery")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLotteryNotFound
	}

	return nil
}

// Delete removes a ticket by its ID.
func (repo *lotteryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LotteryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete lottery")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLotteryNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLotteryDomain converts a GORM LotteryModel to a domain Lottery entity.
func toLotteryDomain(data *model.LotteryModel) *entity.Lottery {
	if data == nil {
		return nil
	}

	return &entity.Lottery{
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

// fromLotteryDomain converts a domain Lottery entity to a GORM LotteryModel.
func fromLotteryDomain(data *entity.Lottery) *model.LotteryModel {
	if data == nil {
		return nil
	}

	return &model.LotteryModel{
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
