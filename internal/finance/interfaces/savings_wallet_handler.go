package interfaces

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/spendwise/backend/internal/finance/application"
	"github.com/spendwise/backend/internal/finance/domain"
)

type SavingsWalletServiceInterface interface {
	Create(ctx context.Context, userID string, req application.SavingsWalletRequest) (*domain.SavingsWallet, error)
	FindByID(ctx context.Context, userID string, id int64) (*domain.SavingsWallet, error)
	List(ctx context.Context, userID string, filter domain.SavingsWalletFilter, page domain.PageRequest) (domain.Page[domain.SavingsWallet], error)
	Update(ctx context.Context, userID string, id int64, req application.SavingsWalletRequest) (*domain.SavingsWallet, error)
	Delete(ctx context.Context, userID string, id int64) error
	Enable(ctx context.Context, userID string, id int64) error
	Disable(ctx context.Context, userID string, id int64) error
}

type SavingsWalletHandler struct {
	service      SavingsWalletServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewSavingsWalletHandler(
	service SavingsWalletServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *SavingsWalletHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &SavingsWalletHandler{service: service, respondJSON: respondJSON, respondError: respondError}
}

type savingsWalletPayload struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Icon string `json:"icon"`
}

func (p savingsWalletPayload) toRequest() application.SavingsWalletRequest {
	return application.SavingsWalletRequest{Name: p.Name, Type: p.Type, Icon: p.Icon}
}

func (h *SavingsWalletHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var payload savingsWalletPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	wallet, err := h.service.Create(r.Context(), userID, payload.toRequest())
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Savings wallet successfully created.",
		"data":    wallet,
	})
}

func (h *SavingsWalletHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid savings wallet id")
		return
	}
	wallet, err := h.service.FindByID(r.Context(), userID, id)
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   wallet,
	})
}

func (h *SavingsWalletHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	filter := domain.SavingsWalletFilter{
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

func (h *SavingsWalletHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid savings wallet id")
		return
	}
	var payload savingsWalletPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	wallet, err := h.service.Update(r.Context(), userID, id, payload.toRequest())
	if err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Savings wallet successfully updated.",
		"data":    wallet,
	})
}

func (h *SavingsWalletHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid savings wallet id")
		return
	}
	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		respondServiceError(w, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Savings wallet successfully deleted.",
	})
}

func (h *SavingsWalletHandler) Enable(w http.ResponseWriter, r *http.Request) {
	h.setEnabled(w, r, true, "Savings wallet successfully enabled.")
}

func (h *SavingsWalletHandler) Disable(w http.ResponseWriter, r *http.Request) {
	h.setEnabled(w, r, false, "Savings wallet successfully disabled.")
}

func (h *SavingsWalletHandler) setEnabled(w http.ResponseWriter, r *http.Request, enabled bool, message string) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid savings wallet id")
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
