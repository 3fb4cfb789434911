package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mylot/internal/domain/entity"
	domainerrors "mylot/internal/domain/errors"
	mockRepo "mylot/internal/mocks/repository"
	"mylot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type lotteryServiceFixtures struct {
	service     usecase.LotteryUsecase
	lotteryRepo *mockRepo.MockLotteryRepository
}

func createTestLotteryService(t *testing.T) lotteryServiceFixtures {
	fixtures := lotteryServiceFixtures{
		lotteryRepo: mockRepo.NewMockLotteryRepository(t),
	}

	fixtures.service = NewLotteryService(LotteryServiceParams{
		LotteryRepo: fixtures.lotteryRepo,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return fixtures
}

func TestLotteryService_Create_StampsOwner(t *testing.T) {
	fx := createTestLotteryService(t)
	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleUser}

	fx.lotteryRepo.On("Create", ctx, mock.AnythingOfType("*entity.Lottery")).
		Run(func(args mock.Arguments) {
			assert.Equal(t, actor.ID, args.Get(1).(*entity.Lottery).UserID)
		}).
		Return(nil)

	lottery, err := fx.service.Create(ctx, actor, usecase.LotteryInput{Award: 2})

	require.NoError(t, err)
	assert.Equal(t, actor.ID, lottery.UserID)
}

func TestLotteryService_Create_RejectsBadAwardTier(t *testing.T) {
	fx := createTestLotteryService(t)
	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleUser}

	_, err := fx.service.Create(ctx, actor, usecase.LotteryInput{Award: 9})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestLotteryService_Update_OwnerOnly(t *testing.T) {
	fx := createTestLotteryService(t)
	ctx := context.Background()
	id := uuid.New()
	owner := uuid.New()

	fx.lotteryRepo.On("FindByID", ctx, id).Return(&entity.Lottery{ID: id, UserID: owner}, nil)

	stranger := usecase.Actor{ID: uuid.New(), Role: entity.RoleUser}
	_, err := fx.service.Update(ctx, stranger, id, usecase.LotteryInput{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestLotteryService_Update_AdminMayManageOthers(t *testing.T) {
	fx := createTestLotteryService(t)
	ctx := context.Background()
	id := uuid.New()
	owner := uuid.New()

	fx.lotteryRepo.On("FindByID", ctx, id).Return(&entity.Lottery{ID: id, UserID: owner}, nil)
	fx.lotteryRepo.On("Update", ctx, mock.AnythingOfType("*entity.Lottery")).Return(nil)

	admin := usecase.Actor{ID: uuid.New(), Role: entity.RoleAdmin}
	updated, err := fx.service.Update(ctx, admin, id, usecase.LotteryInput{Status: true, Award: 1})

	require.NoError(t, err)
	assert.True(t, updated.Status)
	// Ownership never changes on update.
	assert.Equal(t, owner, updated.UserID)
}

func TestLotteryService_CreateBatch_FailedItemDoesNotBlockSiblings(t *testing.T) {
	fx := createTestLotteryService(t)
	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleUser}

	fx.lotteryRepo.On("Create", ctx, mock.AnythingOfType("*entity.Lottery")).Return(nil)

	results := fx.service.CreateBatch(ctx, actor, []usecase.LotteryInput{
		{Award: 1},
		{Award: 9}, // invalid tier, never reaches the repository
		{Award: 2},
	})

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.True(t, errors.Is(results[1].Err, domainerrors.ErrValidationFailed))
	assert.NoError(t, results[2].Err)
}

func TestLotteryService_Delete_OwnerSucceeds(t *testing.T) {
	fx := createTestLotteryService(t)
	ctx := context.Background()
	id := uuid.New()
	owner := uuid.New()

	fx.lotteryRepo.On("FindByID", ctx, id).Return(&entity.Lottery{ID: id, UserID: owner}, nil)
	fx.lotteryRepo.On("Delete", ctx, id).Return(nil)

	err := fx.service.Delete(ctx, usecase.Actor{ID: owner, Role: entity.RoleUser}, id)

	assert.NoError(t, err)
}
