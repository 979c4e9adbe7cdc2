package interfaces

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/spendwise/backend/internal/finance/application"
	"github.com/spendwise/backend/internal/finance/domain"
)

type CurrencyServiceInterface interface {
	Create(ctx context.Context, userID string, req application.CurrencyRequest) (*domain.Currency, error)
	FindByID(ctx context.Context, userID string, id int64) (*domain.Currency, error)
	List(ctx context.Context, userID string, filter domain.CurrencyFilter, page domain.PageRequest) (domain.Page[domain.Currency], error)
	Update(ctx context.Context, userID string, id int64, req application.CurrencyRequest) (*domain.Currency, error)
	Delete(ctx context.Context, userID string, id int64) error
	Enable(ctx context.Context, userID string, id int64) error
	Disable(ctx context.Context, userID string, id int64) error
}

type CurrencyHandler struct {
	service      CurrencyServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewCurrencyHandler(
	service CurrencyServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *CurrencyHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &CurrencyHandler{service: service, respondJSON: respondJSON, respondError: respondError}
}

type currencyPayload struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

func (p currencyPayload) toRequest() application.CurrencyRequest {
	return application.CurrencyRequest{Name: p.Name, Symbol: p.Symbol}
}

func (h *CurrencyHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var payload currencyPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	currency, err := h.service.Create(r.Context(), userID, payload.toRequest())
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Currency successfully created.",
		"data":    currency,
	})
}

func (h *CurrencyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid currency id")
		return
	}
	currency, err := h.service.FindByID(r.Context(), userID, id)
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   currency,
	})
}

func (h *CurrencyHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	filter := domain.CurrencyFilter{
		Name:    queryString(r, "name"),
		Symbol:  queryString(r, "symbol"),
		Enabled: queryBool(r, "enabled"),
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

func (h *CurrencyHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid currency id")
		return
	}
	var payload currencyPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	currency, err := h.service.Update(r.Context(), userID, id, payload.toRequest())
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Currency successfully updated.",
		"data":    currency,
	})
}

func (h *CurrencyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid currency id")
		return
	}
	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Currency successfully deleted.",
	})
}

func (h *CurrencyHandler) Enable(w http.ResponseWriter, r *http.Request) {
	h.setEnabled(w, r, true, "Currency successfully enabled.")
}

func (h *CurrencyHandler) Disable(w http.ResponseWriter, r *http.Request) {
	h.setEnabled(w, r, false, "Currency successfully disabled.")
}

func (h *CurrencyHandler) setEnabled(w http.ResponseWriter, r *http.Request, enabled bool, message string) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid currency id")
		return
	}
	if enabled {
		err = h.service.Enable(r.Context(), userID, id)
	} else {
		err = h.service.Disable(r.Context(), userID, id)
	}
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": message,
	})
}
