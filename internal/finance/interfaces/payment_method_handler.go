package interfaces

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/spendwise/backend/internal/finance/application"
	"github.com/spendwise/backend/internal/finance/domain"
)

type PaymentMethodServiceInterface interface {
	Create(ctx context.Context, userID string, req application.PaymentMethodRequest) (*domain.PaymentMethod, error)
	FindByID(ctx context.Context, userID string, id int64) (*domain.PaymentMethod, error)
	List(ctx context.Context, userID string, filter domain.PaymentMethodFilter, page domain.PageRequest) (domain.Page[domain.PaymentMethod], error)
	Update(ctx context.Context, userID string, id int64, req application.PaymentMethodRequest) (*domain.PaymentMethod, error)
	Delete(ctx context.Context, userID string, id int64) error
	Enable(ctx context.Context, userID string, id int64) error
	Disable(ctx context.Context, userID string, id int64) error
}

type PaymentMethodHandler struct {
	service      PaymentMethodServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewPaymentMethodHandler(
	service PaymentMethodServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *PaymentMethodHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &PaymentMethodHandler{service: service, respondJSON: respondJSON, respondError: respondError}
}

type paymentMethodPayload struct {
	Name            string `json:"name"`
	Type            string `json:"type"`
	Brand           string `json:"brand"`
	Icon            string `json:"icon"`
	IssuingEntityID *int64 `json:"issuing_entity_id"`
}

func (p paymentMethodPayload) toRequest() application.PaymentMethodRequest {
	return application.PaymentMethodRequest{
		Name:            p.Name,
		Type:            p.Type,
		Brand:           p.Brand,
		Icon:            p.Icon,
		IssuingEntityID: p.IssuingEntityID,
	}
}

func (h *PaymentMethodHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var payload paymentMethodPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	method, err := h.service.Create(r.Context(), userID, payload.toRequest())
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Payment method successfully created.",
		"data":    method,
	})
}

func (h *PaymentMethodHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid payment method id")
		return
	}
	method, err := h.service.FindByID(r.Context(), userID, id)
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   method,
	})
}

func (h *PaymentMethodHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	filter := domain.PaymentMethodFilter{
		Name:            queryString(r, "name"),
		Enabled:         queryBool(r, "enabled"),
		Type:            queryString(r, "type"),
		IssuingEntityID: queryInt64(r, "issuing_entity_id"),
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

func (h *PaymentMethodHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid payment method id")
		return
	}
	var payload paymentMethodPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	method, err := h.service.Update(r.Context(), userID, id, payload.toRequest())
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Payment method successfully updated.",
		"data":    method,
	})
}

func (h *PaymentMethodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid payment method id")
		return
	}
	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Payment method successfully deleted.",
	})
}

func (h *PaymentMethodHandler) Enable(w http.ResponseWriter, r *http.Request) {
	h.setEnabled(w, r, true, "Payment method successfully enabled.")
}

func (h *PaymentMethodHandler) Disable(w http.ResponseWriter, r *http.Request) {
	h.setEnabled(w, r, false, "Payment method successfully disabled.")
}

func (h *PaymentMethodHandler) setEnabled(w http.ResponseWriter, r *http.Request, enabled bool, message string) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid payment method id")
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
