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

type IncomeServiceInterface interface {
	Create(ctx context.Context, userID string, req application.CreateIncomeRequest) (*domain.Income, error)
	FindByID(ctx context.Context, userID string, id int64) (*domain.Income, error)
	List(ctx context.Context, userID string, filter domain.IncomeFilter, page domain.PageRequest) (domain.Page[domain.Income], error)
	Update(ctx context.Context, userID string, id int64, req application.CreateIncomeRequest) (*domain.Income, error)
	Delete(ctx context.Context, userID string, id int64) error
}

type IncomeHandler struct {
	service      IncomeServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewIncomeHandler(
	service IncomeServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *IncomeHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &IncomeHandler{service: service, respondJSON: respondJSON, respondError: respondError}
}

type incomePayload struct {
	Description   string          `json:"description"`
	AmountInPesos decimal.Decimal `json:"amount_in_pesos"`
	SourceID      *int64          `json:"source_id"`
	Date          string          `json:"date"`
}

func (p incomePayload) toRequest() (application.CreateIncomeRequest, error) {
	date, err := time.Parse(dateLayout, p.Date)
	if err != nil {
		return application.CreateIncomeRequest{}, err
	}
	return application.CreateIncomeRequest{
		Description:   p.Description,
		AmountInPesos: p.AmountInPesos,
		SourceID:      p.SourceID,
		Date:          date,
	}, nil
}

func (h *IncomeHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var payload incomePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req, err := payload.toRequest()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	income, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Income successfully created.",
		"data":    income,
	})
}

func (h *IncomeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid income id")
		return
	}
	income, err := h.service.FindByID(r.Context(), userID, id)
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   income,
	})
}

func (h *IncomeHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	filter := domain.IncomeFilter{
		Description:        queryString(r, "description"),
		MinAmountInPesos:   queryDecimal(r, "min_amount_in_pesos"),
		MaxAmountInPesos:   queryDecimal(r, "max_amount_in_pesos"),
		MinAmountInDollars: queryDecimal(r, "min_amount_in_dollars"),
		MaxAmountInDollars: queryDecimal(r, "max_amount_in_dollars"),
		StartDate:          queryDate(r, "start_date"),
		EndDate:            queryDate(r, "end_date"),
		SourceID:           queryInt64(r, "source_id"),
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

func (h *IncomeHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid income id")
		return
	}
	var payload incomePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req, err := payload.toRequest()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	income, err := h.service.Update(r.Context(), userID, id, req)
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Income successfully updated.",
		"data":    income,
	})
}

func (h *IncomeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid income id")
		return
	}
	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Income successfully deleted.",
	})
}
