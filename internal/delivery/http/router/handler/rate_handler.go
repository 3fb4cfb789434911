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

// RateHandler holds dependencies for per-draw weight handlers.
type RateHandler struct {
	uc     usecase.RateUsecase
	logger *slog.Logger
}

// NewRateHandler is the constructor for RateHandler, injected by Fx.
func NewRateHandler(uc usecase.RateUsecase, logger *slog.Logger) *RateHandler {
	return &RateHandler{
		uc:     uc,
		logger: logger,
	}
}

type ratePayload struct {
	ID       string              `json:"id"`
	ResultID string              `json:"resultId" validate:"required,uuid"`
	Rates    []entity.NumberPick `json:"rates" validate:"required,min=1"`
}

func (p ratePayload) toInput() (usecase.RateInput, error) {
	resultID, err := uuid.Parse(p.ResultID)
	if err != nil {
		return usecase.RateInput{}, errors.Wrap(domainerrors.ErrValidationFailed, "invalid result id")
	}

	return usecase.RateInput{
		ResultID: resultID,
		Rates:    p.Rates,
	}, nil
}

// rateView is the wire shape of one per-draw weight document.
type rateView struct {
	ID        string              `json:"id"`
	ResultID  string              `json:"resultId"`
	Rates     []entity.NumberPick `json:"rates"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

func newRateView(rate *entity.Rate) rateView {
	return rateView{
		ID:        rate.ID.String(),
		ResultID:  rate.ResultID.String(),
		Rates:     rate.Rates,
		CreatedAt: rate.CreatedAt,
		UpdatedAt: rate.UpdatedAt,
	}
}

func newRateViews(rates []*entity.Rate) []rateView {
	views := make([]rateView, 0, len(rates))
	for _, rate := range rates {
		views = append(views, newRateView(rate))
	}

	return views
}

// List handles GET /api/rate. With resultId it serves the draw's document.
func (h *RateHandler) List(c echo.Context) error {
	if resultIDParam := c.QueryParam("resultId"); resultIDParam != "" {
		resultID, err := uuid.Parse(resultIDParam)
		if err != nil {
			return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("invalid result id"))
		}

		rate, err := h.uc.GetByResult(c.Request().Context(), resultID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.JSON(c, http.StatusOK, newRateView(rate))
	}

	output, err := h.uc.List(c.Request().Context(), parseListQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.NewPage(newRateViews(output.Docs), output.Total, output.Page, output.Limit))
}

// Create handles POST /api/rate for a single document or an array.
func (h *RateHandler) Create(c echo.Context) error {
	if middleware.CurrentUser(c) == nil {
		return response.LoginRequired(c)
	}

	payloads, isBatch, err := decodeOneOrMany[ratePayload](c)
	if err != nil {
		return response.BindingError(c)
	}

	if isBatch {
		items := runValidatedBatch(c, payloads, func(valid []ratePayload) []usecase.BatchItemResult {
			inputs := make([]usecase.RateInput, 0, len(valid))
			for _, payload := range valid {
				// The uuid rule already vetted ResultID.
				input, _ := payload.toInput()
				inputs = append(inputs, input)
			}

			return h.uc.CreateBatch(c.Request().Context(), inputs)
		})

		return response.JSON(c, http.StatusOK, items)
	}

	if err := c.Validate(payloads[0]); err != nil {
		return err
	}

	input, err := payloads[0].toInput()
	if err != nil {
		return errors.WithStack(err)
	}

	rate, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, newRateView(rate))
}

// Update handles PUT /api/rate. The document ID rides in the body.
func (h *RateHandler) Update(c echo.Context) error {
	if middleware.CurrentUser(c) == nil {
		return response.LoginRequired(c)
	}

	var payload ratePayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(payload); err != nil {
		return err
	}

	id, err := uuid.Parse(payload.ID)
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("invalid rate id"))
	}

	input, err := payload.toInput()
	if err != nil {
		return errors.WithStack(err)
	}

	rate, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, newRateView(rate))
}

// Delete handles DELETE /api/rate/:id.
func (h *RateHandler) Delete(c echo.Context) error {
	if middleware.CurrentUser(c) == nil {
		return response.LoginRequired(c)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("invalid rate id"))
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Msg(c, http.StatusOK, "Rate has been deleted.")
}
