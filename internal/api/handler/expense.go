// internal/api/handler/expense.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"spendtrack/internal/api/middleware"
	"spendtrack/internal/domain"
	"spendtrack/internal/service"
	"spendtrack/internal/util"
)

// ExpenseHandler handles HTTP requests for expense CRUD operations.
type ExpenseHandler struct {
	service service.ExpenseService
	logger  *slog.Logger
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(svc service.ExpenseService, logger *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		service: svc,
		logger:  logger,
	}
}

// ExpenseRequest represents the request body for creating or updating an
// expense. All fields are pointers so that partial updates can tell an
// absent field apart from a zero value. Any client-supplied owner field
// is simply not part of this shape and therefore ignored.
type ExpenseRequest struct {
	Title    *string          `json:"title"`
	Amount   *decimal.Decimal `json:"amount"`
	Category *string          `json:"category"`
	Date     *domain.Date     `json:"date"`
}

// expenseID extracts the {expenseID} URL parameter.
func expenseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "expenseID"), 10, 64)
}

// List handles listing the caller's expenses.
// GET /api/expenses
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	expenses, err := h.service.List(r.Context(), user.ID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, expenses)
}

// Create handles creating a new expense owned by the caller.
// POST /api/expenses
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		invalidBody(w, h.logger)
		return
	}

	// Pointer fields that stay nil would otherwise pass through as zero
	// values; report them as missing up front.
	fieldErrs := util.FieldErrors{}
	if req.Amount == nil {
		fieldErrs["amount"] = "this field is required"
	}
	if req.Date == nil {
		fieldErrs["date"] = "this field is required"
	}
	if len(fieldErrs) > 0 {
		respondWithError(w, h.logger, fieldErrs)
		return
	}

	input := service.CreateExpenseInput{
		Amount: *req.Amount,
		Date:   *req.Date,
	}
	if req.Title != nil {
		input.Title = *req.Title
	}
	if req.Category != nil {
		input.Category = *req.Category
	}

	expense, err := h.service.Create(r.Context(), user.ID, input)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusCreated, expense)
}

// Get handles retrieving a single expense owned by the caller.
// GET /api/expenses/{expenseID}
func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	id, err := expenseID(r)
	if err != nil {
		respondWithError(w, h.logger, util.ErrNotFound)
		return
	}

	expense, err := h.service.Get(r.Context(), user.ID, id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, expense)
}

// Update handles a full or partial update of an expense owned by the caller.
// PUT/PATCH /api/expenses/{expenseID}
func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	id, err := expenseID(r)
	if err != nil {
		respondWithError(w, h.logger, util.ErrNotFound)
		return
	}

	var req ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		invalidBody(w, h.logger)
		return
	}

	input := service.UpdateExpenseInput{
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     req.Date,
	}

	expense, err := h.service.Update(r.Context(), user.ID, id, input)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, expense)
}

// Delete handles the permanent removal of an expense owned by the caller.
// DELETE /api/expenses/{expenseID}
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	id, err := expenseID(r)
	if err != nil {
		respondWithError(w, h.logger, util.ErrNotFound)
		return
	}

	if err := h.service.Delete(r.Context(), user.ID, id); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
