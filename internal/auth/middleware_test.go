package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWTAccessTokenMiddleware_InjectsUserID(t *testing.T) {
	u := verifiedUser()
	users := &fakeUserService{user: u, password: "super-secret"}
	service := newTestAuthService(t, newFakeAuthRepository(), users)

	login, err := service.Login(context.Background(), "seba@example.com", "super-secret")
	assert.NoError(t, err)

	var seenUserID string
	handler := service.JWTAccessTokenMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID, _ = r.Context().Value("userID").(string)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/protected/profile", nil)
	req.Header.Set("Authorization", "Bearer "+login.AccessToken)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, u.ID, seenUserID)
}

func TestJWTAccessTokenMiddleware_MissingHeader(t *testing.T) {
	service := newTestAuthService(t, newFakeAuthRepository(), &fakeUserService{})

	handler := service.JWTAccessTokenMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/protected/profile", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAccessTokenMiddleware_MalformedHeader(t *testing.T) {
	service := newTestAuthService(t, newFakeAuthRepository(), &fakeUserService{})

	handler := service.JWTAccessTokenMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/protected/profile", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAccessTokenMiddleware_DeletedUserRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	jwtManager := NewJWTManager()
	token, err := jwtManager.GenerateAccessJWT("ghost-user", time.Minute)
	assert.NoError(t, err)

	service := NewAuthService(newFakeAuthRepository(), &fakeUserService{}, NewSessionManager(), jwtManager, Authenticator{})
	handler := service.JWTAccessTokenMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/protected/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTRefreshTokenMiddleware_ReadsCookie(t *testing.T) {
	u := verifiedUser()
	users := &fakeUserService{user: u, password: "super-secret"}
	service := newTestAuthService(t, newFakeAuthRepository(), users)

	login, err := service.Login(context.Background(), "seba@example.com", "super-secret")
	assert.NoError(t, err)

	var seenUserID string
	handler := service.JWTRefreshTokenMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID, _ = r.Context().Value("userID").(string)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPut, "/api/refresh/token", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: login.RefreshToken})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, u.ID, seenUserID)
}

func TestJWTRefreshTokenMiddleware_MissingCookie(t *testing.T) {
	service := newTestAuthService(t, newFakeAuthRepository(), &fakeUserService{})

	handler := service.JWTRefreshTokenMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodPut, "/api/refresh/token", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
