package handler

import (
	"log/slog"
	"net/http"
	"time"

	"mylot/internal/delivery/http/middleware"
	"mylot/internal/delivery/http/response"
	"mylot/internal/domain/entity"
	domainerrors "mylot/internal/domain/errors"
	"mylot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ResultHandler holds dependencies for draw result handlers.
type ResultHandler struct {
	uc     usecase.ResultUsecase
	logger *slog.Logger
}

// NewResultHandler is the constructor for ResultHandler, injected by Fx.
func NewResultHandler(uc usecase.ResultUsecase, logger *slog.Logger) *ResultHandler {
	return &ResultHandler{
		uc:     uc,
		logger: logger,
	}
}

type resultPayload struct {
	ID         string              `json:"id"`
	Code       string              `json:"code" validate:"required"`
	Budget     int64               `json:"budget" validate:"min=0"`
	ResultDate time.Time           `json:"resultDate" validate:"required"`
	Nums       []entity.NumberPick `json:"nums" validate:"ticket"`
	Award1     int64               `json:"award1" validate:"min=0"`
	Award2     int64               `json:"award2" validate:"min=0"`
	Award3     int64               `json:"award3" validate:"min=0"`
	Award4     int64               `json:"award4" validate:"min=0"`
}

func (p resultPayload) toInput() usecase.ResultInput {
	return usecase.ResultInput{
		Code:       p.Code,
		Budget:     p.Budget,
		ResultDate: p.ResultDate,
		Nums:       p.Nums,
		Award1:     p.Award1,
		Award2:     p.Award2,
		Award3:     p.Award3,
		Award4:     p.Award4,
	}
}

// resultView is the wire shape of one draw result.
type resultView struct {
	ID         string              `json:"id"`
	Code       string              `json:"code"`
	Budget     int64               `json:"budget"`
	ResultDate time.Time           `json:"resultDate"`
	Nums       []entity.NumberPick `json:"nums"`
	Award1     int64               `json:"award1"`
	Award2     int64               `json:"award2"`
	Award3     int64               `json:"award3"`
	Award4     int64               `json:"award4"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

func newResultView(result *entity.Result) resultView {
	return resultView{
		ID:         result.ID.String(),
		Code:       result.Code,
		Budget:     result.Budget,
		ResultDate: result.ResultDate,
		Nums:       result.Nums,
		Award1:     result.Award1,
		Award2:     result.Award2,
		Award3:     result.Award3,
		Award4:     result.Award4,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}
}

// resultListView is the projected wire shape served by the list endpoint:
// code, budget, draw date, picks, awards and creation time only.
type resultListView struct {
	ID         string              `json:"id"`
	Code       string              `json:"code"`
	Budget     int64               `json:"budget"`
	ResultDate time.Time           `json:"resultDate"`
	Nums       []entity.NumberPick `json:"nums"`
	Award1     int64               `json:"award1"`
	Award2     int64               `json:"award2"`
	Award3     int64               `json:"award3"`
	Award4     int64               `json:"award4"`
	CreatedAt  time.Time           `json:"createdAt"`
}

func newResultListViews(results []*entity.Result) []resultListView {
	views := make([]resultListView, 0, len(results))
	for _, result := range results {
		views = append(views, resultListView{
			ID:         result.ID.String(),
			Code:       result.Code,
			Budget:     result.Budget,
			ResultDate: result.ResultDate,
			Nums:       result.Nums,
			Award1:     result.Award1,
			Award2:     result.Award2,
			Award3:     result.Award3,
			Award4:     result.Award4,
			CreatedAt:  result.CreatedAt,
		})
	}

	return views
}

// List handles GET /api/result. With latest=true it serves the newest draw
// plus the count of tickets referencing it.
func (h *ResultHandler) List(c echo.Context) error {
	if c.QueryParam("latest") == "true" {
		output, err := h.uc.Latest(c.Request().Context())
		if err != nil {
			return errors.WithStack(err)
		}

		return response.JSON(c, http.StatusOK, map[string]any{
			"result":      newResultView(output.Result),
			"currentLots": output.CurrentLots,
		})
	}

	output, err := h.uc.List(c.Request().Context(), parseListQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.NewPage(newResultListViews(output.Docs), output.Total, output.Page, output.Limit))
}

// Create handles POST /api/result for a single document or an array.
func (h *ResultHandler) Create(c echo.Context) error {
	if middleware.CurrentUser(c) == nil {
		return response.LoginRequired(c)
	}

	payloads, isBatch, err := decodeOneOrMany[resultPayload](c)
	if err != nil {
		return response.BindingError(c)
	}

	if isBatch {
		items := runValidatedBatch(c, payloads, func(valid []resultPayload) []usecase.BatchItemResult {
			inputs := make([]usecase.ResultInput, 0, len(valid))
			for _, payload := range valid {
				inputs = append(inputs, payload.toInput())
			}

			return h.uc.CreateBatch(c.Request().Context(), inputs)
		})

		return response.JSON(c, http.StatusOK, items)
	}

	if err := c.Validate(payloads[0]); err != nil {
		return err
	}

	result, err := h.uc.Create(c.Request().Context(), payloads[0].toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, newResultView(result))
}

// Update handles PUT /api/result. The document ID rides in the body.
func (h *ResultHandler) Update(c echo.Context) error {
	if middleware.CurrentUser(c) == nil {
		return response.LoginRequired(c)
	}

	var payload resultPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(payload); err != nil {
		return err
	}

	id, err := uuid.Parse(payload.ID)
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("invalid result id"))
	}

	result, err := h.uc.Update(c.Request().Context(), id, payload.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, newResultView(result))
}

// Delete handles DELETE /api/result/:id.
func (h *ResultHandler) Delete(c echo.Context) error {
	if middleware.CurrentUser(c) == nil {
		return response.LoginRequired(c)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("invalid result id"))
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Msg(c, http.StatusOK, "Result has been deleted.")
}
