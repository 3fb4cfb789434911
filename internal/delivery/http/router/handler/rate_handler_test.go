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

	httpmiddleware "mylot/internal/delivery/http/middleware"
	"mylot/internal/delivery/http/validator"
	"mylot/internal/domain/entity"
	mockUsecase "mylot/internal/mocks/usecase"
	"mylot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestEcho builds an echo instance wired like the real server: project
// validator plus the domain error handler.
func newTestEcho() *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

// asUser simulates the auth middleware having resolved a session.
func asUser(user *entity.User) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(httpmiddleware.KeyUser, user)

			return next(c)
		}
	}
}

func newTestRateHandler(t *testing.T) (*RateHandler, *mockUsecase.MockRateUsecase) {
	uc := mockUsecase.NewMockRateUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRateHandler(uc, logger), uc
}

func completeTicketJSON(resultID uuid.UUID) string {
	picks := make([]entity.NumberPick, entity.MaxTicketPicks)
	for i := range picks {
		picks[i] = entity.NumberPick{Value: i + 1, Rate: 10 * (i + 1)}
	}

	body, _ := json.Marshal(map[string]any{
		"resultId": resultID.String(),
		"rates":    picks,
	})

	return string(body)
}

func TestRateHandler_Update_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	h, _ := newTestRateHandler(t)
	e.PUT("/api/rate", h.Update)

	req := httptest.NewRequest(http.MethodPut, "/api/rate", strings.NewReader(completeTicketJSON(uuid.New())))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Login first! You don't have permission to access this URL!", body["msg"])
}

func TestRateHandler_Create_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	h, _ := newTestRateHandler(t)
	e.POST("/api/rate", h.Create)

	req := httptest.NewRequest(http.MethodPost, "/api/rate", strings.NewReader(completeTicketJSON(uuid.New())))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Login first!")
}

func TestRateHandler_Create_Authenticated(t *testing.T) {
	e := newTestEcho()
	h, uc := newTestRateHandler(t)
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	e.POST("/api/rate", h.Create, asUser(user))

	resultID := uuid.New()
	created := &entity.Rate{
		ID:        uuid.New(),
		ResultID:  resultID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	uc.On("Create", mock.Anything, mock.AnythingOfType("usecase.RateInput")).Return(created, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/rate", strings.NewReader(completeTicketJSON(resultID)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ID.String())
}

func TestRateHandler_Create_ValidationFailureListsEveryField(t *testing.T) {
	e := newTestEcho()
	h, _ := newTestRateHandler(t)
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	e.POST("/api/rate", h.Create, asUser(user))

	req := httptest.NewRequest(http.MethodPost, "/api/rate", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var fields []map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
	require.Len(t, fields, 2)
	assert.Equal(t, "resultid", fields[0]["field"])
	assert.Equal(t, "rates", fields[1]["field"])
}

func TestRateHandler_List_ServesPageEnvelope(t *testing.T) {
	e := newTestEcho()
	h, uc := newTestRateHandler(t)
	e.GET("/api/rate", h.List)

	docs := []*entity.Rate{{ID: uuid.New(), ResultID: uuid.New()}}
	uc.On("List", mock.Anything, usecase.ListQuery{Page: 2, Limit: 5}).Return(&usecase.RateListOutput{
		Docs:  docs,
		Total: 12,
		Page:  2,
		Limit: 5,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/rate?page=2&limit=5", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Total int64 `json:"total"`
		Limit int   `json:"limit"`
		Page  int   `json:"page"`
		Pages int   `json:"pages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, int64(12), page.Total)
	assert.Equal(t, 5, page.Limit)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.Pages)
}

func TestRateHandler_Create_BatchReportsPerItemOutcomes(t *testing.T) {
	e := newTestEcho()
	h, uc := newTestRateHandler(t)
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	e.POST("/api/rate", h.Create, asUser(user))

	okID := uuid.New()
	first := completeTicketJSON(uuid.New())
	// Second item misses its rates array, failing validation before the usecase.
	second := `{"resultId":"` + uuid.New().String() + `"}`
	body := "[" + first + "," + second + "]"

	uc.On("CreateBatch", mock.Anything, mock.AnythingOfType("[]usecase.RateInput")).
		Return([]usecase.BatchItemResult{{Index: 0, ID: okID}})

	req := httptest.NewRequest(http.MethodPost, "/api/rate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var items []struct {
		Index int    `json:"index"`
		ID    string `json:"id"`
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, okID.String(), items[0].ID)
	assert.Empty(t, items[0].Error)
	assert.Empty(t, items[1].ID)
	assert.NotEmpty(t, items[1].Error)
}
