package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mylot/internal/domain/entity"
	mockUsecase "mylot/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLotteryHandler(t *testing.T) (*LotteryHandler, *mockUsecase.MockLotteryUsecase) {
	uc := mockUsecase.NewMockLotteryUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewLotteryHandler(uc, logger), uc
}

func TestLotteryHandler_Create_PartialTicket(t *testing.T) {
	e := newTestEcho()
	h, uc := newTestLotteryHandler(t)
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	e.POST("/api/lottery", h.Create, asUser(user))

	created := &entity.Lottery{
		ID:        uuid.New(),
		UserID:    user.ID,
		Nums:      []entity.NumberPick{{Value: 10, Rate: 9}, {Value: 5, Rate: 1}},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	uc.On("Create", mock.Anything, mock.AnythingOfType("usecase.Actor"), mock.AnythingOfType("usecase.LotteryInput")).
		Return(created, nil)

	// A ticket in play does not need all six numbers picked yet.
	body := `{"nums":[{"value":5,"rate":1},{"value":10,"rate":9}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/lottery", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ID.String())
}

func TestLotteryHandler_Create_TooManyPicks(t *testing.T) {
	e := newTestEcho()
	h, _ := newTestLotteryHandler(t)
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	e.POST("/api/lottery", h.Create, asUser(user))

	picks := make([]map[string]any, entity.MaxTicketPicks+1)
	for i := range picks {
		picks[i] = map[string]any{"value": i + 1, "rate": 1}
	}
	body, _ := json.Marshal(map[string]any{"nums": picks})

	req := httptest.NewRequest(http.MethodPost, "/api/lottery", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var fields []map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
	require.Len(t, fields, 1)
	assert.Equal(t, "nums", fields[0]["field"])
}

func TestLotteryHandler_Create_PickWithoutValue(t *testing.T) {
	e := newTestEcho()
	h, _ := newTestLotteryHandler(t)
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	e.POST("/api/lottery", h.Create, asUser(user))

	body := `{"nums":[{"value":0,"rate":3}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/lottery", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
