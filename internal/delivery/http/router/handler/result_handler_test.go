package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mylot/internal/domain/entity"
	mockUsecase "mylot/internal/mocks/usecase"
	"mylot/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestResultHandler(t *testing.T) (*ResultHandler, *mockUsecase.MockResultUsecase) {
	uc := mockUsecase.NewMockResultUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewResultHandler(uc, logger), uc
}

func TestResultHandler_List_ServesProjectedDocs(t *testing.T) {
	e := newTestEcho()
	h, uc := newTestResultHandler(t)
	e.GET("/api/result", h.List)

	docs := []*entity.Result{{
		ID:         uuid.New(),
		Code:       "16042",
		Budget:     100,
		ResultDate: time.Now(),
		Nums:       []entity.NumberPick{{Value: 3, Rate: 7}},
		Award1:     1000,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}}
	uc.On("List", mock.Anything, usecase.ListQuery{Page: 1, Limit: 10}).Return(&usecase.ResultListOutput{
		Docs:  docs,
		Total: 1,
		Page:  1,
		Limit: 10,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/result?page=1&limit=10", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Docs []map[string]any `json:"docs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Docs, 1)

	doc := page.Docs[0]
	assert.Equal(t, "16042", doc["code"])
	assert.Contains(t, doc, "budget")
	assert.Contains(t, doc, "resultDate")
	assert.Contains(t, doc, "nums")
	assert.Contains(t, doc, "award1")
	assert.Contains(t, doc, "createdAt")
	// The list projection never carries the update timestamp.
	assert.NotContains(t, doc, "updatedAt")
}

func TestResultHandler_List_LatestCarriesFullView(t *testing.T) {
	e := newTestEcho()
	h, uc := newTestResultHandler(t)
	e.GET("/api/result", h.List)

	result := &entity.Result{ID: uuid.New(), Code: "16043", UpdatedAt: time.Now()}
	uc.On("Latest", mock.Anything).Return(&usecase.LatestResultOutput{
		Result:      result,
		CurrentLots: 4,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/result?latest=true", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Result      map[string]any `json:"result"`
		CurrentLots int64          `json:"currentLots"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "16043", body.Result["code"])
	assert.Contains(t, body.Result, "updatedAt")
	assert.Equal(t, int64(4), body.CurrentLots)
}
