package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/fintrack/finance-system/internal/api/metrics"
	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/ports"
)

// TransactionHandler handles HTTP requests for ledger operations.
type TransactionHandler struct {
	service ports.TransactionService
}

func NewTransactionHandler(service ports.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

func toTransactionResponse(tx domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		Kind:        string(tx.Kind),
		Category:    tx.Category,
		Amount:      tx.Amount.StringFixed(2),
		Description: tx.Description,
		Date:        tx.Date.Format(dateLayout),
	}
}

// Create records a new transaction for the authenticated user.
//
// @Summary      Record a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTransactionRequest  true  "Transaction details"
// @Success      201   {object}  transactionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/transactions [post]
func (h *TransactionHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createTransactionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "date must be formatted as YYYY-MM-DD"})
	}

	created, err := h.service.AddTransaction(c.Request().Context(), ports.AddTransactionInput{
		UserID:      userID,
		Kind:        domain.TransactionKind(req.Kind),
		CategoryID:  req.CategoryID,
		Amount:      decimal.NewFromFloat(req.Amount),
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		if err == domain.ErrMissingField {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to record transaction"})
	}

	metrics.TransactionsCreatedTotal.WithLabelValues(string(created.Kind), created.Category).Inc()
	metrics.TransactionAmount.WithLabelValues(string(created.Kind)).Observe(req.Amount)

	return c.JSON(http.StatusCreated, toTransactionResponse(*created))
}

// List returns the authenticated user's transactions, newest date first.
//
// @Summary      List transactions
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   transactionResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/transactions [get]
func (h *TransactionHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	list, err := h.service.ListTransactions(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to list transactions"})
	}

	resp := make([]transactionResponse, 0, len(list))
	for _, tx := range list {
		resp = append(resp, toTransactionResponse(tx))
	}
	return c.JSON(http.StatusOK, resp)
}

// Summary returns income, expense, and balance totals for the authenticated
// user.
//
// @Summary      Ledger summary
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  summaryResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/summary [get]
func (h *TransactionHandler) Summary(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	summary, err := h.service.Summarize(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to summarize"})
	}

	return c.JSON(http.StatusOK, summaryResponse{
		Income:  summary.Income.StringFixed(2),
		Expense: summary.Expense.StringFixed(2),
		Balance: summary.Balance.StringFixed(2),
	})
}

// Breakdown returns per-category sums of the given kind for the authenticated
// user, in first-seen category order.
//
// @Summary      Category breakdown
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        kind  query     string  false  "income or expense (default expense)"
// @Success      200   {array}   categoryAmountResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/breakdown [get]
func (h *TransactionHandler) Breakdown(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	kind := domain.TransactionKind(c.QueryParam("kind"))
	if kind == "" {
		kind = domain.KindExpense
	}
	if !kind.Valid() {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "kind must be income or expense"})
	}

	breakdown, err := h.service.CategoryBreakdown(c.Request().Context(), userID, kind)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to compute breakdown"})
	}

	resp := make([]categoryAmountResponse, 0, len(breakdown))
	for _, entry := range breakdown {
		resp = append(resp, categoryAmountResponse{Category: entry.Category, Amount: entry.Amount.StringFixed(2)})
	}
	return c.JSON(http.StatusOK, resp)
}
