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

// LotteryHandler holds dependencies for played ticket handlers.
type LotteryHandler struct {
	uc     usecase.LotteryUsecase
	logger *slog.Logger
}

// NewLotteryHandler is the constructor for LotteryHandler, injected by Fx.
func NewLotteryHandler(uc usecase.LotteryUsecase, logger *slog.Logger) *LotteryHandler {
	return &LotteryHandler{
		uc:     uc,
		logger: logger,
	}
}

type lotteryPayload struct {
	ID        string              `json:"id"`
	ResultID  string              `json:"resultId" validate:"omitempty,uuid"`
	Condition []string            `json:"condition"`
	Status    bool                `json:"status"`
	Award     int                 `json:"award" validate:"min=0,max=4"`
	Nums      []entity.NumberPick `json:"nums" validate:"picks"`
}

func (p lotteryPayload) toInput() (usecase.LotteryInput, error) {
	input := usecase.LotteryInput{
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

// lotteryView is the wire shape of one played ticket.
type lotteryView struct {
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

func newLotteryView(lottery *entity.Lottery) lotteryView {
	view := lotteryView{
		ID:        lottery.ID.String(),
		UserID:    lottery.UserID.String(),
		Condition: lottery.Condition,
		Status:    lottery.Status,
		Award:     lottery.Award,
		Nums:      lottery.Nums,
		CreatedAt: lottery.CreatedAt,
		UpdatedAt: lottery.UpdatedAt,
	}
	if lottery.ResultID != nil {
		view.ResultID = lottery.ResultID.String()
	}

	return view
}

func newLotteryViews(lotteries []*entity.Lottery) []lotteryView {
	views := make([]lotteryView, 0, len(lotteries))
	for _, lottery := range lotteries {
		views = append(views, newLotteryView(lottery))
	}

	return views
}

// actorFor builds the usecase actor from the resolved identity.
func actorFor(user *entity.User) usecase.Actor {
	return usecase.Actor{ID: user.ID, Role: user.Role}
}

// List handles GET /api/lottery.
func (h *LotteryHandler) List(c echo.Context) error {
	output, err := h.uc.List(c.Request().Context(), parseListQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.NewPage(newLotteryViews(output.Docs), output.Total, output.Page, output.Limit))
}

// Create handles POST /api/lottery for a single document or an array.
func (h *LotteryHandler) Create(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.LoginRequired(c)
	}

	payloads, isBatch, err := decodeOneOrMany[lotteryPayload](c)
	if err != nil {
		return response.BindingError(c)
	}

	if isBatch {
		items := runValidatedBatch(c, payloads, func(valid []lotteryPayload) []usecase.BatchItemResult {
			inputs := make([]usecase.LotteryInput, 0, len(valid))
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

	lottery, err := h.uc.Create(c.Request().Context(), actorFor(user), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, newLotteryView(lottery))
}

// Update handles PUT /api/lottery. The document ID rides in the body.
func (h *LotteryHandler) Update(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.LoginRequired(c)
	}

	var payload lotteryPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(payload); err != nil {
		return err
	}

	id, err := uuid.Parse(payload.ID)
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("invalid lottery id"))
	}

	input, err := payload.toInput()
	if err != nil {
		return errors.WithStack(err)
	}

	lottery, err := h.uc.Update(c.Request().Context(), actorFor(user), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, newLotteryView(lottery))
}

// Delete handles DELETE /api/lottery/:id.
func (h *LotteryHandler) Delete(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.LoginRequired(c)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("invalid lottery id"))
	}

	if err := h.uc.Delete(c.Request().Context(), actorFor(user), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Msg(c, http.StatusOK, "Lottery has been deleted.")
}
