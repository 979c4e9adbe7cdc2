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

type DebtServiceInterface interface {
	Create(ctx context.Context, userID string, req application.CreateDebtRequest) (*domain.Debt, error)
	FindByID(ctx context.Context, userID string, id int64) (*domain.Debt, error)
	List(ctx context.Context, userID string, filter domain.DebtFilter, page domain.PageRequest) (domain.Page[domain.Debt], error)
	Update(ctx context.Context, userID string, id int64, req application.CreateDebtRequest) (*domain.Debt, error)
	Cancel(ctx context.Context, userID string, id int64) (*domain.Debt, error)
	Delete(ctx context.Context, userID string, id int64) error
}

type DebtHandler struct {
	service      DebtServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewDebtHandler(
	service DebtServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *DebtHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &DebtHandler{service: service, respondJSON: respondJSON, respondError: respondError}
}

type debtPayload struct {
	Description     string          `json:"description"`
	AmountInPesos   decimal.Decimal `json:"amount_in_pesos"`
	AmountInDollars decimal.Decimal `json:"amount_in_dollars"`
	Date            string          `json:"date"`
	DueDate         *string         `json:"due_date"`
	Personal        bool            `json:"personal"`
	Creditor        string          `json:"creditor"`
	IssuingEntityID *int64          `json:"issuing_entity_id"`
	PaymentMethodID *int64          `json:"payment_method_id"`
}

func (p debtPayload) toRequest() (application.CreateDebtRequest, error) {
	date, err := time.Parse(dateLayout, p.Date)
	if err != nil {
		return application.CreateDebtRequest{}, err
	}
	var dueDate *time.Time
	if p.DueDate != nil {
		parsed, err := time.Parse(dateLayout, *p.DueDate)
		if err != nil {
			return application.CreateDebtRequest{}, err
		}
		dueDate = &parsed
	}
	return application.CreateDebtRequest{
		Description:     p.Description,
		AmountInPesos:   p.AmountInPesos,
		AmountInDollars: p.AmountInDollars,
		Date:            date,
		DueDate:         dueDate,
		Personal:        p.Personal,
		Creditor:        p.Creditor,
		IssuingEntityID: p.IssuingEntityID,
		PaymentMethodID: p.PaymentMethodID,
	}, nil
}

func (h *DebtHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var payload debtPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req, err := payload.toRequest()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	debt, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Debt successfully created.",
		"data":    debt,
	})
}

func (h *DebtHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid debt id")
		return
	}
	debt, err := h.service.FindByID(r.Context(), userID, id)
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   debt,
	})
}

func (h *DebtHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	filter := domain.DebtFilter{
		Description:      queryString(r, "description"),
		Cancelled:        queryBool(r, "cancelled"),
		Personal:         queryBool(r, "personal"),
		StartDate:        queryDate(r, "start_date"),
		EndDate:          queryDate(r, "end_date"),
		MinAmountInPesos: queryDecimal(r, "min_amount_in_pesos"),
		MaxAmountInPesos: queryDecimal(r, "max_amount_in_pesos"),
		PaymentMethodID:  queryInt64(r, "payment_method_id"),
		IssuingEntityID:  queryInt64(r, "issuing_entity_id"),
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

func (h *DebtHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid debt id")
		return
	}
	var payload debtPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req, err := payload.toRequest()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	debt, err := h.service.Update(r.Context(), userID, id, req)
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Debt successfully updated.",
		"data":    debt,
	})
}

func (h *DebtHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid debt id")
		return
	}
	debt, err := h.service.Cancel(r.Context(), userID, id)
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Debt successfully cancelled.",
		"data":    debt,
	})
}

func (h *DebtHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid debt id")
		return
	}
	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Debt successfully deleted.",
	})
}
