package interfaces

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/spendwise/backend/internal/finance/application"
	"github.com/spendwise/backend/internal/finance/domain"
)

type IssuingEntityServiceInterface interface {
	Create(ctx context.Context, userID string, req application.IssuingEntityRequest) (*domain.IssuingEntity, error)
	FindByID(ctx context.Context, userID string, id int64) (*domain.IssuingEntity, error)
	List(ctx context.Context, userID string, filter domain.IssuingEntityFilter, page domain.PageRequest) (domain.Page[domain.IssuingEntity], error)
	Update(ctx context.Context, userID string, id int64, req application.IssuingEntityRequest) (*domain.IssuingEntity, error)
	Delete(ctx context.Context, userID string, id int64) error
	Enable(ctx context.Context, userID string, id int64) error
	Disable(ctx context.Context, userID string, id int64) error
}

type IssuingEntityHandler struct {
	service      IssuingEntityServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewIssuingEntityHandler(
	service IssuingEntityServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *IssuingEntityHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &IssuingEntityHandler{service: service, respondJSON: respondJSON, respondError: respondError}
}

type issuingEntityPayload struct {
	Description string `json:"description"`
}

func (p issuingEntityPayload) toRequest() application.IssuingEntityRequest {
	return application.IssuingEntityRequest{Description: p.Description}
}

func (h *IssuingEntityHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var payload issuingEntityPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	entity, err := h.service.Create(r.Context(), userID, payload.toRequest())
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Issuing entity successfully created.",
		"data":    entity,
	})
}

func (h *IssuingEntityHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid issuing entity id")
		return
	}
	entity, err := h.service.FindByID(r.Context(), userID, id)
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   entity,
	})
}

func (h *IssuingEntityHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	filter := domain.IssuingEntityFilter{
		Description: queryString(r, "description"),
		Enabled:     queryBool(r, "enabled"),
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

func (h *IssuingEntityHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid issuing entity id")
		return
	}
	var payload issuingEntityPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	entity, err := h.service.Update(r.Context(), userID, id, payload.toRequest())
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Issuing entity successfully updated.",
		"data":    entity,
	})
}

func (h *IssuingEntityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid issuing entity id")
		return
	}
	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Issuing entity successfully deleted.",
	})
}

func (h *IssuingEntityHandler) Enable(w http.ResponseWriter, r *http.Request) {
	h.setEnabled(w, r, true, "Issuing entity successfully enabled.")
}

func (h *IssuingEntityHandler) Disable(w http.ResponseWriter, r *http.Request) {
	h.setEnabled(w, r, false, "Issuing entity successfully disabled.")
}

func (h *IssuingEntityHandler) setEnabled(w http.ResponseWriter, r *http.Request, enabled bool, message string) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid issuing entity id")
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
