package auth

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/spendwise/backend/internal/user"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInternalError         = errors.New("internal Server Error")
	ErrUserNotVerified       = errors.New("user has not been verified")
	ErrUser2FANotEnabled     = errors.New("two factor auth is not enabled")
	ErrUser2FAAlreadyEnabled = errors.New("two factor auth already enabled")
	ErrInvalid2FACode        = errors.New("2fa code is invalid")
)

// LoginResult carries either a finished token pair or, when the account has
// a second factor, a short-lived session token for the 2FA step.
type LoginResult struct {
	User              *user.User
	AccessToken       string
	RefreshToken      string
	TwoFactorRequired bool
	SessionToken      string
}

type Service interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	VerifyTwoFactor(ctx context.Context, sessionToken, code string) (*LoginResult, error)
	SetupTwoFactor(ctx context.Context, userID string) (string, error)
	ConfirmTwoFactor(ctx context.Context, userID, code string) error
	DisableTwoFactor(ctx context.Context, userID, code string) error
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, userID string) error
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
	JWTRefreshTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	repo           Repository
	userService    user.Service
	sessionManager SessionManagerInterface
	jwtManager     JWTManagerInterface
	authenticator  Authenticator
}

func NewAuthService(repo Repository, userService user.Service, sessionManager SessionManagerInterface, jwtManager JWTManagerInterface, authenticator Authenticator) Service {
	return &service{
		repo:           repo,
		userService:    userService,
		sessionManager: sessionManager,
		jwtManager:     jwtManager,
		authenticator:  authenticator,
	}
}

func (s *service) issueTokens(u *user.User) (*LoginResult, error) {
	accessToken, err := s.jwtManager.GenerateAccessJWT(u.ID, defaultJWTDuration)
	if err != nil {
		log.Println("error during JWT generation:", err)
		return nil, ErrInternalError
	}
	refreshToken, err := s.jwtManager.GenerateRefreshJWT(u.ID, u.HashToken, defaultJWTRefreshDuration)
	if err != nil {
		log.Println("error during refresh token generation:", err)
		return nil, ErrInternalError
	}
	return &LoginResult{User: u, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	existingUser, err := s.userService.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, ErrInternalError
	}

	if !s.userService.CheckPassword(existingUser, password) {
		return nil, ErrInvalidCredentials
	}

	if !existingUser.Verified {
		if err := s.userService.ResendVerificationCode(ctx, existingUser.Email); err != nil && !errors.Is(err, user.ErrTooManyCodeRequests) {
			return nil, ErrInternalError
		}
		return nil, ErrUserNotVerified
	}

	if existingUser.TwoFactorEnabled {
		sessionToken, err := s.sessionManager.GenerateSessionToken(existingUser.ID, defaultSessionTokenDuration)
		if err != nil {
			return nil, ErrInternalError
		}
		return &LoginResult{User: existingUser, TwoFactorRequired: true, SessionToken: sessionToken}, nil
	}

	return s.issueTokens(existingUser)
}

func (s *service) VerifyTwoFactor(ctx context.Context, sessionToken, code string) (*LoginResult, error) {
	userID, err := s.sessionManager.VerifySessionToken(sessionToken)
	if err != nil {
		return nil, err
	}
	existingUser, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, ErrInternalError
	}
	if !existingUser.TwoFactorEnabled {
		return nil, ErrUser2FANotEnabled
	}

	secret, err := s.repo.GetTwoFactorSecret(ctx, userID)
	if err != nil {
		return nil, ErrInternalError
	}
	if !s.authenticator.VerifyCode(secret, code) {
		return nil, ErrInvalid2FACode
	}

	s.sessionManager.DeleteSessionToken(sessionToken)
	return s.issueTokens(existingUser)
}

func (s *service) SetupTwoFactor(ctx context.Context, userID string) (string, error) {
	existingUser, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		return "", ErrInternalError
	}
	if existingUser.TwoFactorEnabled {
		return "", ErrUser2FAAlreadyEnabled
	}

	otpURI, secret, err := s.authenticator.GenerateSecret(existingUser.Email)
	if err != nil {
		return "", ErrInternalError
	}
	if err := s.repo.SaveTwoFactorSecret(ctx, userID, secret); err != nil {
		return "", ErrInternalError
	}
	return otpURI, nil
}

func (s *service) ConfirmTwoFactor(ctx context.Context, userID, code string) error {
	existingUser, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		return ErrInternalError
	}
	if existingUser.TwoFactorEnabled {
		return ErrUser2FAAlreadyEnabled
	}

	secret, err := s.repo.GetTwoFactorSecret(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNoTwoFactorSecret) {
			return ErrUser2FANotEnabled
		}
		return ErrInternalError
	}
	if !s.authenticator.VerifyCode(secret, code) {
		return ErrInvalid2FACode
	}
	return s.repo.SetTwoFactorEnabled(ctx, userID, true)
}

func (s *service) DisableTwoFactor(ctx context.Context, userID, code string) error {
	existingUser, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		return ErrInternalError
	}
	if !existingUser.TwoFactorEnabled {
		return ErrUser2FANotEnabled
	}

	secret, err := s.repo.GetTwoFactorSecret(ctx, userID)
	if err != nil {
		return ErrInternalError
	}
	if !s.authenticator.VerifyCode(secret, code) {
		return ErrInvalid2FACode
	}

	if err := s.repo.SetTwoFactorEnabled(ctx, userID, false); err != nil {
		return ErrInternalError
	}
	return s.repo.DeleteTwoFactorSecret(ctx, userID)
}

func (s *service) RefreshAccessToken(ctx context.Context, refreshToken string) (string, string, error) {
	userID, err := s.jwtManager.ExtractUserIDFromRefreshToken(refreshToken)
	if err != nil {
		return "", "", ErrInvalidJWTRefreshToken
	}
	existingUser, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		return "", "", ErrInvalidJWTRefreshToken
	}
	if err := s.jwtManager.ValidateRefreshToken(refreshToken, existingUser.HashToken); err != nil {
		return "", "", ErrInvalidJWTRefreshToken
	}

	result, err := s.issueTokens(existingUser)
	if err != nil {
		return "", "", err
	}
	return result.AccessToken, result.RefreshToken, nil
}

// Logout rotates the user's hash token, which breaks the custom key inside
// every refresh token issued before the call.
func (s *service) Logout(ctx context.Context, userID string) error {
	return s.userService.RotateHashToken(ctx, userID)
}
