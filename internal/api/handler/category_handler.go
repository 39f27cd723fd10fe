package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/ports"
)

// CategoryHandler serves the fixed category set. The kind filter backs the
// category picker: income kinds see income + both, expense kinds see
// expense + both.
type CategoryHandler struct {
	service ports.TransactionService
}

func NewCategoryHandler(service ports.TransactionService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// List returns the seeded categories, optionally filtered by kind.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Param        kind  query     string  false  "income or expense; empty returns all"
// @Success      200   {array}   categoryResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	kind := domain.TransactionKind(c.QueryParam("kind"))
	if kind != "" && !kind.Valid() {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "kind must be income or expense"})
	}

	categories, err := h.service.ListCategories(c.Request().Context(), kind)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to list categories"})
	}

	resp := make([]categoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, categoryResponse{ID: cat.ID, Name: cat.Name, Kind: string(cat.Kind)})
	}
	return c.JSON(http.StatusOK, resp)
}
