package handler

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/fintrack/finance-system/internal/api/metrics"
	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/ports"
)

// GoalHandler handles HTTP requests for savings goals.
type GoalHandler struct {
	service ports.GoalService
}

func NewGoalHandler(service ports.GoalService) *GoalHandler {
	return &GoalHandler{service: service}
}

func toGoalResponse(g domain.Goal) goalResponse {
	percent := g.ProgressPercent()
	if math.IsInf(percent, 0) || math.IsNaN(percent) {
		percent = 0
	}
	return goalResponse{
		ID:              g.ID,
		Name:            g.Name,
		Target:          g.Target.StringFixed(2),
		Current:         g.Current.StringFixed(2),
		ProgressPercent: percent,
	}
}

// Create adds a savings goal for the authenticated user.
//
// @Summary      Create a savings goal
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createGoalRequest  true  "Goal details"
// @Success      201   {object}  goalResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/goals [post]
func (h *GoalHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createGoalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.service.AddGoal(c.Request().Context(), ports.AddGoalInput{
		UserID: userID,
		Name:   req.Name,
		Target: decimal.NewFromFloat(req.Target),
	})
	if err != nil {
		if err == domain.ErrMissingField {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to create goal"})
	}

	metrics.GoalsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, toGoalResponse(*created))
}

// List returns the authenticated user's goals in insertion order.
//
// @Summary      List savings goals
// @Tags         goals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   goalResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/goals [get]
func (h *GoalHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	list, err := h.service.ListGoals(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to list goals"})
	}

	resp := make([]goalResponse, 0, len(list))
	for _, g := range list {
		resp = append(resp, toGoalResponse(g))
	}
	return c.JSON(http.StatusOK, resp)
}
