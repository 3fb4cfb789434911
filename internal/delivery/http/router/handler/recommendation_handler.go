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

// RecommendationHandler holds dependencies for recommended ticket handlers.
type RecommendationHandler struct {
	uc     usecase.RecommendationUsecase
	logger *slog.Logger
}

// NewRecommendationHandler is the constructor for RecommendationHandler, injected by Fx.
func NewRecommendationHandler(uc usecase.RecommendationUsecase, logger *slog.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		uc:     uc,
		logger: logger,
	}
}

type recommendationPayload struct {
	ID        string              `json:"id"`
	ResultID  string              `json:"resultId" validate:"omitempty,uuid"`
	Condition []string            `json:"condition"`
	Status    bool                `json:"status"`
	Award     int                 `json:"award" validate:"min=0,max=4"`
	Nums      []entity.NumberPick `json:"nums" validate:"picks"`
}

func (p recommendationPayload) toInput() (usecase.RecommendationInput, error) {
	input := usecase.RecommendationInput{
		Condition: p.Condition,
		Status:    p.Status,
		Award:     p.Award,
		Nums:      p.Nums,
	}

	if p.ResultID != "" {
		resultID, err := uuid.Parse(p.ResultID)
		if err != nil {
			return input, errors.Wrap(domainerrors.ErrValidationFailed, "invalid result id")
		}
		input.ResultID = &resultID
	}

	return input, nil
}

// recommendationView is the wire shape of one recommended ticket.
type recommendationView struct {
	ID        string              `json:"id"`
	UserID    string              `json:"userId"`
	ResultID  string              `json:"resultId,omitempty"`
	Condition []string            `json:"condition"`
	Status    bool                `json:"status"`
	Award     int                 `json:"award"`
	Nums      []entity.NumberPick `json:"nums"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

func newRecommendationView(rec *entity.Recommendation) recommendationView {
	view := recommendationView{
		ID:        rec.ID.String(),
		UserID:    rec.UserID.String(),
		Condition: rec.Condition,
		Status:    rec.Status,
		Award:     rec.Award,
		Nums:      rec.Nums,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if rec.ResultID != nil {
		view.ResultID = rec.ResultID.String()
	}

	return view
}

func newRecommendationViews(recs []*entity.Recommendation) []recommendationView {
	views := make([]recommendationView, 0, len(recs))
	for _, rec := range recs {
		views = append(views, newRecommendationView(rec))
	}

	return views
}

// List handles GET /api/recommendation.
func (h *RecommendationHandler) List(c echo.Context) error {
	output, err := h.uc.List(c.Request().Context(), parseListQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.NewPage(newRecommendationViews(output.Docs), output.Total, output.Page, output.Limit))
}

// Create handles POST /api/recommendation for a single document or an array.
func (h *RecommendationHandler) Create(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.LoginRequired(c)
	}

	payloads, isBatch, err := decodeOneOrMany[recommendationPayload](c)
	if err != nil {
		return response.BindingError(c)
	}

	if isBatch {
		items := runValidatedBatch(c, payloads, func(valid []recommendationPayload) []usecase.BatchItemResult {
			inputs := make([]usecase.RecommendationInput, 0, len(valid))
			for _, payload := range valid {
				// The uuid rule already vetted ResultID.
				input, _ := payload.toInput()
				inputs = append(inputs, input)
			}

			return h.uc.CreateBatch(c.Request().Context(), actorFor(user), inputs)
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

	rec, err := h.uc.Create(c.Request().Context(), actorFor(user), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, newRecommendationView(rec))
}

// Update handles PUT /api/recommendation. The document ID rides in the body.
func (h *RecommendationHandler) Update(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.LoginRequired(c)
	}

	var payload recommendationPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(payload); err != nil {
		return err
	}

	id, err := uuid.Parse(payload.ID)
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("invalid recommendation id"))
	}

	input, err := payload.toInput()
	if err != nil {
		return errors.WithStack(err)
	}

	rec, err := h.uc.Update(c.Request().Context(), actorFor(user), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, newRecommendationView(rec))
}

// Delete handles DELETE /api/recommendation/:id.
func (h *RecommendationHandler) Delete(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.LoginRequired(c)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("invalid recommendation id"))
	}

	if err := h.uc.Delete(c.Request().Context(), actorFor(user), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Msg(c, http.StatusOK, "Recommendation has been deleted.")
}
