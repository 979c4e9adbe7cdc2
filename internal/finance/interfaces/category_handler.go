package interfaces

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/spendwise/backend/internal/finance/application"
	"github.com/spendwise/backend/internal/finance/domain"
)

type CategoryServiceInterface interface {
	Create(ctx context.Context, userID string, req application.CategoryRequest) (*domain.Category, error)
	FindByID(ctx context.Context, userID string, id int64) (*domain.Category, error)
	List(ctx context.Context, userID string, filter domain.CategoryFilter, page domain.PageRequest) (domain.Page[domain.Category], error)
	Update(ctx context.Context, userID string, id int64, req application.CategoryRequest) (*domain.Category, error)
	Delete(ctx context.Context, userID string, id int64) error
	Enable(ctx context.Context, userID string, id int64) error
	Disable(ctx context.Context, userID string, id int64) error
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *CategoryHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &CategoryHandler{service: service, respondJSON: respondJSON, respondError: respondError}
}

type categoryPayload struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (p categoryPayload) toRequest() application.CategoryRequest {
	return application.CategoryRequest{Name: p.Name, Type: p.Type}
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var payload categoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	category, err := h.service.Create(r.Context(), userID, payload.toRequest())
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Category successfully created.",
		"data":    category,
	})
}

func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid category id")
		return
	}
	category, err := h.service.FindByID(r.Context(), userID, id)
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   category,
	})
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	filter := domain.CategoryFilter{
		Name:    queryString(r, "name"),
		Enabled: queryBool(r, "enabled"),
		Type:    queryString(r, "type"),
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

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid category id")
		return
	}
	var payload categoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	category, err := h.service.Update(r.Context(), userID, id, payload.toRequest())
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category successfully updated.",
		"data":    category,
	})
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid category id")
		return
	}
	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category successfully deleted.",
	})
}

func (h *CategoryHandler) Enable(w http.ResponseWriter, r *http.Request) {
	h.setEnabled(w, r, true, "Category successfully enabled.")
}

func (h *CategoryHandler) Disable(w http.ResponseWriter, r *http.Request) {
	h.setEnabled(w, r, false, "Category successfully disabled.")
}

func (h *CategoryHandler) setEnabled(w http.ResponseWriter, r *http.Request, enabled bool, message string) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid category id")
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
