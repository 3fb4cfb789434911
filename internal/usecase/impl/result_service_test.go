package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mylot/internal/domain/entity"
	domainerrors "mylot/internal/domain/errors"
	"mylot/internal/domain/repository"
	mockRepo "mylot/internal/mocks/repository"
	"mylot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type resultServiceFixtures struct {
	service     usecase.ResultUsecase
	resultRepo  *mockRepo.MockResultRepository
	lotteryRepo *mockRepo.MockLotteryRepository
}

func createTestResultService(t *testing.T) resultServiceFixtures {
	fixtures := resultServiceFixtures{
		resultRepo:  mockRepo.NewMockResultRepository(t),
		lotteryRepo: mockRepo.NewMockLotteryRepository(t),
	}

	fixtures.service = NewResultService(ResultServiceParams{
		ResultRepo:  fixtures.resultRepo,
		LotteryRepo: fixtures.lotteryRepo,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return fixtures
}

func TestResultService_List_AppliesDefaults(t *testing.T) {
	fx := createTestResultService(t)
	ctx := context.Background()

	docs := []*entity.Result{{ID: uuid.New(), Code: "16042"}}
	fx.resultRepo.On("List", ctx, repository.Pagination{Page: 1, Limit: 10}).Return(docs, int64(37), nil)

	output, err := fx.service.List(ctx, usecase.ListQuery{})

	require.NoError(t, err)
	assert.Equal(t, docs, output.Docs)
	assert.Equal(t, int64(37), output.Total)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, 10, output.Limit)
}

func TestResultService_List_PassesPageWindow(t *testing.T) {
	fx := createTestResultService(t)
	ctx := context.Background()

	fx.resultRepo.On("List", ctx, repository.Pagination{Page: 3, Limit: 5}).Return([]*entity.Result{}, int64(0), nil)

	output, err := fx.service.List(ctx, usecase.ListQuery{Page: 3, Limit: 5})

	require.NoError(t, err)
	assert.Equal(t, 3, output.Page)
	assert.Equal(t, 5, output.Limit)
}

func TestResultService_Latest_CountsCurrentLots(t *testing.T) {
	fx := createTestResultService(t)
	ctx := context.Background()

	result := &entity.Result{ID: uuid.New(), Code: "16042", ResultDate: time.Now()}
	fx.resultRepo.On("FindLatest", ctx).Return(result, nil)
	fx.lotteryRepo.On("CountByResultID", ctx, result.ID).Return(int64(12), nil)

	output, err := fx.service.Latest(ctx)

	require.NoError(t, err)
	assert.Equal(t, result, output.Result)
	assert.Equal(t, int64(12), output.CurrentLots)
}

func TestResultService_Latest_NoResults(t *testing.T) {
	fx := createTestResultService(t)
	ctx := context.Background()

	fx.resultRepo.On("FindLatest", ctx).Return(nil, repository.ErrResultNotFound)

	_, err := fx.service.Latest(ctx)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestResultService_Create_DuplicateCode(t *testing.T) {
	fx := createTestResultService(t)
	ctx := context.Background()

	fx.resultRepo.On("Create", ctx, mock.AnythingOfType("*entity.Result")).Return(repository.ErrResultCodeTaken)

	_, err := fx.service.Create(ctx, usecase.ResultInput{Code: "16042"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestResultService_Update_KeepsCode(t *testing.T) {
	fx := createTestResultService(t)
	ctx := context.Background()
	id := uuid.New()

	existing := &entity.Result{ID: id, Code: "16042", Budget: 100}
	fx.resultRepo.On("FindByID", ctx, id).Return(existing, nil)
	fx.resultRepo.On("Update", ctx, mock.AnythingOfType("*entity.Result")).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(*entity.Result)
			assert.Equal(t, "16042", updated.Code)
			assert.Equal(t, int64(500), updated.Budget)
		}).
		Return(nil)

	updated, err := fx.service.Update(ctx, id, usecase.ResultInput{Code: "99999", Budget: 500})

	require.NoError(t, err)
	assert.Equal(t, "16042", updated.Code)
}

func TestResultService_CreateBatch_IndependentOutcomes(t *testing.T) {
	fx := createTestResultService(t)
	ctx := context.Background()

	fx.resultRepo.On("Create", ctx, mock.MatchedBy(func(r *entity.Result) bool { return r.Code == "1" })).Return(nil)
	fx.resultRepo.On("Create", ctx, mock.MatchedBy(func(r *entity.Result) bool { return r.Code == "2" })).Return(repository.ErrResultCodeTaken)
	fx.resultRepo.On("Create", ctx, mock.MatchedBy(func(r *entity.Result) bool { return r.Code == "3" })).Return(nil)

	results := fx.service.CreateBatch(ctx, []usecase.ResultInput{
		{Code: "1"}, {Code: "2"}, {Code: "3"},
	})

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.NoError(t, results[2].Err)
	assert.Equal(t, 0, results[0].Index)
	assert.Equal(t, 1, results[1].Index)
	assert.Equal(t, 2, results[2].Index)
}
