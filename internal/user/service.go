package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	emailService "github.com/spendwise/backend/internal/email"
)

const (
	bcryptCost            = 12
	verificationCodeTTL   = 10 * time.Minute
	resendCodeGracePeriod = 2 * time.Minute
)

var (
	ErrInvalidEmail            = errors.New("email address is invalid")
	ErrEmailTaken              = errors.New("email address is already registered")
	ErrPasswordTooShort        = errors.New("password must have at least 8 characters")
	ErrInvalidVerificationCode = errors.New("invalid verification code")
	ErrVerificationCodeExpired = errors.New("verification code expired")
	ErrTooManyCodeRequests     = errors.New("too many verification code requests")
	ErrAlreadyVerified         = errors.New("user is already verified")
)

type Service interface {
	Register(ctx context.Context, name, email, password string) (*User, error)
	ConfirmEmail(ctx context.Context, email, code string) error
	ResendVerificationCode(ctx context.Context, email string) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	CheckPassword(user *User, password string) bool
	RotateHashToken(ctx context.Context, userID string) error
}

type service struct {
	repo   Repository
	sender emailService.EmailSender
}

func NewUserService(repo Repository, sender emailService.EmailSender) Service {
	return &service{repo: repo, sender: sender}
}

func generateVerificationCode() (string, error) {
	code := make([]byte, 6)
	if _, err := rand.Read(code); err != nil {
		return "", fmt.Errorf("could not generate verification code: %w", err)
	}
	for i := range code {
		code[i] = '0' + (code[i] % 10)
	}
	return string(code), nil
}

func generateHashToken() (string, error) {
	token := make([]byte, 32)
	if _, err := rand.Read(token); err != nil {
		return "", fmt.Errorf("could not generate hash token: %w", err)
	}
	return hex.EncodeToString(token), nil
}

func (s *service) Register(ctx context.Context, name, email, password string) (*User, error) {
	if err := checkmail.ValidateFormat(email); err != nil {
		return nil, ErrInvalidEmail
	}
	if len(password) < 8 {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.repo.getUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}
	hashToken, err := generateHashToken()
	if err != nil {
		return nil, err
	}

	newUser := &User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: string(passwordHash),
		Verified:     false,
		HashToken:    hashToken,
	}
	if err := s.repo.createUser(ctx, newUser); err != nil {
		return nil, err
	}

	if err := s.sendVerificationCode(ctx, newUser); err != nil {
		return nil, err
	}
	return newUser, nil
}

func (s *service) sendVerificationCode(ctx context.Context, u *User) error {
	code, err := generateVerificationCode()
	if err != nil {
		return err
	}
	expiresAt := time.Now().UTC().Add(verificationCodeTTL)
	if err := s.repo.saveVerificationCode(ctx, u.ID, code, expiresAt); err != nil {
		return err
	}
	s.sender.QueueEmail(u.Email, emailService.RegistrationConfirmationData{
		UserName: u.Name,
		Code:     code,
	})
	return nil
}

func (s *service) ConfirmEmail(ctx context.Context, email, code string) error {
	u, err := s.repo.getUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if u.Verified {
		return ErrAlreadyVerified
	}

	storedCode, expiresAt, _, err := s.repo.getVerificationCode(ctx, u.ID)
	if err != nil {
		if errors.Is(err, ErrNoVerificationCode) {
			return ErrInvalidVerificationCode
		}
		return err
	}
	if storedCode != code {
		return ErrInvalidVerificationCode
	}
	if time.Now().UTC().After(expiresAt) {
		return ErrVerificationCodeExpired
	}

	if err := s.repo.setVerified(ctx, u.ID); err != nil {
		return err
	}
	return s.repo.deleteVerificationCode(ctx, u.ID)
}

func (s *service) ResendVerificationCode(ctx context.Context, email string) error {
	u, err := s.repo.getUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if u.Verified {
		return ErrAlreadyVerified
	}

	_, _, createdAt, err := s.repo.getVerificationCode(ctx, u.ID)
	if err == nil && time.Now().UTC().Sub(createdAt.UTC()) < resendCodeGracePeriod {
		return ErrTooManyCodeRequests
	}
	if err != nil && !errors.Is(err, ErrNoVerificationCode) {
		return err
	}
	return s.sendVerificationCode(ctx, u)
}

func (s *service) GetUserByID(ctx context.Context, id string) (*User, error) {
	return s.repo.getUserByID(ctx, id)
}

func (s *service) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.getUserByEmail(ctx, email)
}

func (s *service) CheckPassword(user *User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// RotateHashToken invalidates every refresh token issued so far for the user.
func (s *service) RotateHashToken(ctx context.Context, userID string) error {
	hashToken, err := generateHashToken()
	if err != nil {
		return err
	}
	return s.repo.updateHashToken(ctx, userID, hashToken)
}
