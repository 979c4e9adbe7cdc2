package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"
)

type Handler struct {
	service      Service
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewAuthHandler(
	service Service,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *Handler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &Handler{service: service, respondJSON: respondJSON, respondError: respondError}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type twoFactorPayload struct {
	SessionToken string `json:"session_token"`
	Code         string `json:"code"`
}

type twoFactorCodePayload struct {
	Code string `json:"code"`
}

func setRefreshCookie(w http.ResponseWriter, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Path:     "/api/auth",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		Expires:  time.Now().Add(defaultJWTRefreshDuration),
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		h.respondAuthError(w, err)
		return
	}

	if result.TwoFactorRequired {
		h.respondJSON(w, http.StatusOK, map[string]interface{}{
			"status":  "success",
			"message": "Two-factor code required.",
			"data": map[string]interface{}{
				"two_factor_required": true,
				"session_token":       result.SessionToken,
			},
		})
		return
	}

	setRefreshCookie(w, result.RefreshToken)
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Successfully logged in.",
		"data": map[string]interface{}{
			"access_token": result.AccessToken,
			"user":         result.User,
		},
	})
}

func (h *Handler) VerifyTwoFactor(w http.ResponseWriter, r *http.Request) {
	var payload twoFactorPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.VerifyTwoFactor(r.Context(), payload.SessionToken, payload.Code)
	if err != nil {
		h.respondAuthError(w, err)
		return
	}

	setRefreshCookie(w, result.RefreshToken)
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Successfully logged in.",
		"data": map[string]interface{}{
			"access_token": result.AccessToken,
			"user":         result.User,
		},
	})
}

func (h *Handler) SetupTwoFactor(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	otpURI, err := h.service.SetupTwoFactor(r.Context(), userID)
	if err != nil {
		h.respondAuthError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Scan the URI with your authenticator app and confirm with a code.",
		"data": map[string]interface{}{
			"otp_uri": otpURI,
		},
	})
}

func (h *Handler) ConfirmTwoFactor(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var payload twoFactorCodePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.ConfirmTwoFactor(r.Context(), userID, payload.Code); err != nil {
		h.respondAuthError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Two-factor authentication enabled.",
	})
}

func (h *Handler) DisableTwoFactor(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var payload twoFactorCodePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.DisableTwoFactor(r.Context(), userID, payload.Code); err != nil {
		h.respondAuthError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Two-factor authentication disabled.",
	})
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "Refresh token is required")
		return
	}

	accessToken, refreshToken, err := h.service.RefreshAccessToken(r.Context(), cookie.Value)
	if err != nil {
		h.respondAuthError(w, err)
		return
	}

	setRefreshCookie(w, refreshToken)
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Token successfully refreshed.",
		"data": map[string]interface{}{
			"access_token": accessToken,
		},
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.Logout(r.Context(), userID); err != nil {
		h.respondAuthError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/auth",
		HttpOnly: true,
		MaxAge:   -1,
	})
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Successfully logged out.",
	})
}

func (h *Handler) respondAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalid2FACode),
		errors.Is(err, ErrInvalidSessionToken),
		errors.Is(err, ErrExpiredSessionToken),
		errors.Is(err, ErrInvalidJWTRefreshToken):
		h.respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrUserNotVerified):
		h.respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrUser2FANotEnabled), errors.Is(err, ErrUser2FAAlreadyEnabled):
		h.respondError(w, http.StatusConflict, err.Error())
	default:
		log.Println("auth handler error:", err)
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
