package interfaces

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/finance/application"
	"github.com/spendwise/backend/internal/finance/domain"
)

type ExpenseServiceInterface interface {
	Create(ctx context.Context, userID string, req application.CreateExpenseRequest) (*domain.Expense, error)
	FindByID(ctx context.Context, userID string, id int64) (*domain.Expense, error)
	List(ctx context.Context, userID string, filter domain.ExpenseFilter, page domain.PageRequest) (domain.Page[domain.Expense], error)
	Update(ctx context.Context, userID string, id int64, req application.CreateExpenseRequest) (*domain.Expense, error)
	Delete(ctx context.Context, userID string, id int64) error
}

type ExpenseHandler struct {
	service      ExpenseServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewExpenseHandler(
	service ExpenseServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *ExpenseHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &ExpenseHandler{service: service, respondJSON: respondJSON, respondError: respondError}
}

type expensePayload struct {
	Description     string           `json:"description"`
	InputAmount     *decimal.Decimal `json:"input_amount"`
	AmountInPesos   *decimal.Decimal `json:"amount_in_pesos"`
	Date            string           `json:"date"`
	CategoryID      *int64           `json:"category_id"`
	PaymentMethodID *int64           `json:"payment_method_id"`
	CurrencyID      *int64           `json:"currency_id"`
	MicroExpense    bool             `json:"micro_expense"`
}

func (p expensePayload) toRequest() (application.CreateExpenseRequest, error) {
	date, err := time.Parse(dateLayout, p.Date)
	if err != nil {
		return application.CreateExpenseRequest{}, err
	}
	return application.CreateExpenseRequest{
		Description:     p.Description,
		InputAmount:     p.InputAmount,
		AmountInPesos:   p.AmountInPesos,
		Date:            date,
		CategoryID:      p.CategoryID,
		PaymentMethodID: p.PaymentMethodID,
		CurrencyID:      p.CurrencyID,
		MicroExpense:    p.MicroExpense,
	}, nil
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var payload expensePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req, err := payload.toRequest()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	expense, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Expense successfully created.",
		"data":    expense,
	})
}

func (h *ExpenseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid expense id")
		return
	}
	expense, err := h.service.FindByID(r.Context(), userID, id)
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   expense,
	})
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	filter := domain.ExpenseFilter{
		Description:        queryString(r, "description"),
		MinAmountInPesos:   queryDecimal(r, "min_amount_in_pesos"),
		MaxAmountInPesos:   queryDecimal(r, "max_amount_in_pesos"),
		MinAmountInDollars: queryDecimal(r, "min_amount_in_dollars"),
		MaxAmountInDollars: queryDecimal(r, "max_amount_in_dollars"),
		StartDate:          queryDate(r, "start_date"),
		EndDate:            queryDate(r, "end_date"),
		CategoryID:         queryInt64(r, "category_id"),
		PaymentMethodID:    queryInt64(r, "payment_method_id"),
		MicroExpense:       queryBool(r, "micro_expense"),
	}
	page, err := h.service.List(r.Context(), userID, filter, pageRequest(r))
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   page,
	})
}

func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid expense id")
		return
	}
	var payload expensePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req, err := payload.toRequest()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	expense, err := h.service.Update(r.Context(), userID, id, req)
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Expense successfully updated.",
		"data":    expense,
	})
}

func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid expense id")
		return
	}
	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Expense successfully deleted.",
	})
}
