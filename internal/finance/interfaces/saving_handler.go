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

type SavingServiceInterface interface {
	Create(ctx context.Context, userID string, req application.CreateSavingRequest) (*domain.Saving, error)
	FindByID(ctx context.Context, userID string, id int64) (*domain.Saving, error)
	List(ctx context.Context, userID string, filter domain.SavingFilter, page domain.PageRequest) (domain.Page[domain.Saving], error)
	Update(ctx context.Context, userID string, id int64, req application.CreateSavingRequest) (*domain.Saving, error)
	Delete(ctx context.Context, userID string, id int64) error
}

type SavingHandler struct {
	service      SavingServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewSavingHandler(
	service SavingServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *SavingHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &SavingHandler{service: service, respondJSON: respondJSON, respondError: respondError}
}

type savingPayload struct {
	Description     string          `json:"description"`
	InputAmount     decimal.Decimal `json:"input_amount"`
	CurrencyID      int64           `json:"currency_id"`
	SavingsWalletID *int64          `json:"savings_wallet_id"`
	Date            string          `json:"date"`
}

func (p savingPayload) toRequest() (application.CreateSavingRequest, error) {
	date, err := time.Parse(dateLayout, p.Date)
	if err != nil {
		return application.CreateSavingRequest{}, err
	}
	return application.CreateSavingRequest{
		Description:     p.Description,
		InputAmount:     p.InputAmount,
		CurrencyID:      p.CurrencyID,
		SavingsWalletID: p.SavingsWalletID,
		Date:            date,
	}, nil
}

func (h *SavingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var payload savingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req, err := payload.toRequest()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	saving, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Saving successfully created.",
		"data":    saving,
	})
}

func (h *SavingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid saving id")
		return
	}
	saving, err := h.service.FindByID(r.Context(), userID, id)
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   saving,
	})
}

func (h *SavingHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	filter := domain.SavingFilter{
		Description:        queryString(r, "description"),
		MinAmountInPesos:   queryDecimal(r, "min_amount_in_pesos"),
		MaxAmountInPesos:   queryDecimal(r, "max_amount_in_pesos"),
		MinAmountInDollars: queryDecimal(r, "min_amount_in_dollars"),
		MaxAmountInDollars: queryDecimal(r, "max_amount_in_dollars"),
		StartDate:          queryDate(r, "start_date"),
		EndDate:            queryDate(r, "end_date"),
		CurrencyID:         queryInt64(r, "currency_id"),
		SavingsWalletID:    queryInt64(r, "savings_wallet_id"),
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

func (h *SavingHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid saving id")
		return
	}
	var payload savingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req, err := payload.toRequest()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	saving, err := h.service.Update(r.Context(), userID, id, req)
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Saving successfully updated.",
		"data":    saving,
	})
}

func (h *SavingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid saving id")
		return
	}
	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Saving successfully deleted.",
	})
}
