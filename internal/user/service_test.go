package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	emailService "github.com/spendwise/backend/internal/email"
)

type fakeRepository struct {
	users map[string]*User

	codes     map[string]string
	expiresAt map[string]time.Time
	createdAt map[string]time.Time
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		users:     make(map[string]*User),
		codes:     make(map[string]string),
		expiresAt: make(map[string]time.Time),
		createdAt: make(map[string]time.Time),
	}
}

func (r *fakeRepository) createUser(_ context.Context, user *User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeRepository) getUserByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *fakeRepository) getUserByID(_ context.Context, id string) (*User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, ErrUserNotFound
}

func (r *fakeRepository) setVerified(_ context.Context, userID string) error {
	u, ok := r.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	u.Verified = true
	return nil
}

func (r *fakeRepository) updateHashToken(_ context.Context, userID, hashToken string) error {
	u, ok := r.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	u.HashToken = hashToken
	return nil
}

func (r *fakeRepository) saveVerificationCode(_ context.Context, userID, code string, expiresAt time.Time) error {
	r.codes[userID] = code
	r.expiresAt[userID] = expiresAt
	r.createdAt[userID] = time.Now().UTC()
	return nil
}

func (r *fakeRepository) getVerificationCode(_ context.Context, userID string) (string, time.Time, time.Time, error) {
	code, ok := r.codes[userID]
	if !ok {
		return "", time.Time{}, time.Time{}, ErrNoVerificationCode
	}
	return code, r.expiresAt[userID], r.createdAt[userID], nil
}

func (r *fakeRepository) deleteVerificationCode(_ context.Context, userID string) error {
	delete(r.codes, userID)
	return nil
}

type fakeSender struct {
	recipients []string
	payloads   []emailService.EmailData
}

func (s *fakeSender) QueueEmail(recipient string, data emailService.EmailData) {
	s.recipients = append(s.recipients, recipient)
	s.payloads = append(s.payloads, data)
}

func TestRegister_CreatesUnverifiedUserAndQueuesEmail(t *testing.T) {
	repo := newFakeRepository()
	sender := &fakeSender{}
	service := NewUserService(repo, sender)

	u, err := service.Register(context.Background(), "Sebastian", "seba@example.com", "super-secret")

	assert.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.Verified)
	assert.NotEqual(t, "super-secret", u.PasswordHash)
	assert.NotEmpty(t, u.HashToken)
	assert.Equal(t, []string{"seba@example.com"}, sender.recipients)
	assert.Len(t, repo.codes[u.ID], 6)
}

func TestRegister_RejectsInvalidEmail(t *testing.T) {
	service := NewUserService(newFakeRepository(), &fakeSender{})

	_, err := service.Register(context.Background(), "Sebastian", "not-an-email", "super-secret")

	assert.True(t, errors.Is(err, ErrInvalidEmail))
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	service := NewUserService(newFakeRepository(), &fakeSender{})

	_, err := service.Register(context.Background(), "Sebastian", "seba@example.com", "short")

	assert.True(t, errors.Is(err, ErrPasswordTooShort))
}

func TestRegister_RejectsDuplicateEmail(t *testing.T) {
	repo := newFakeRepository()
	service := NewUserService(repo, &fakeSender{})

	_, err := service.Register(context.Background(), "Sebastian", "seba@example.com", "super-secret")
	assert.NoError(t, err)

	_, err = service.Register(context.Background(), "Impostor", "seba@example.com", "other-secret")
	assert.True(t, errors.Is(err, ErrEmailTaken))
}

func TestConfirmEmail_MarksUserVerified(t *testing.T) {
	repo := newFakeRepository()
	service := NewUserService(repo, &fakeSender{})

	u, err := service.Register(context.Background(), "Sebastian", "seba@example.com", "super-secret")
	assert.NoError(t, err)
	code := repo.codes[u.ID]

	err = service.ConfirmEmail(context.Background(), "seba@example.com", code)

	assert.NoError(t, err)
	assert.True(t, repo.users[u.ID].Verified)
	_, ok := repo.codes[u.ID]
	assert.False(t, ok, "code should be consumed")
}

func TestConfirmEmail_RejectsWrongCode(t *testing.T) {
	repo := newFakeRepository()
	service := NewUserService(repo, &fakeSender{})

	u, err := service.Register(context.Background(), "Sebastian", "seba@example.com", "super-secret")
	assert.NoError(t, err)

	// A 7-char code can never match the generated 6-digit one.
	err = service.ConfirmEmail(context.Background(), "seba@example.com", "0000000")

	assert.True(t, errors.Is(err, ErrInvalidVerificationCode))
	assert.False(t, repo.users[u.ID].Verified)
}

func TestConfirmEmail_RejectsExpiredCode(t *testing.T) {
	repo := newFakeRepository()
	service := NewUserService(repo, &fakeSender{})

	u, err := service.Register(context.Background(), "Sebastian", "seba@example.com", "super-secret")
	assert.NoError(t, err)
	repo.expiresAt[u.ID] = time.Now().UTC().Add(-time.Minute)

	err = service.ConfirmEmail(context.Background(), "seba@example.com", repo.codes[u.ID])

	assert.True(t, errors.Is(err, ErrVerificationCodeExpired))
}

func TestConfirmEmail_AlreadyVerified(t *testing.T) {
	repo := newFakeRepository()
	service := NewUserService(repo, &fakeSender{})

	u, err := service.Register(context.Background(), "Sebastian", "seba@example.com", "super-secret")
	assert.NoError(t, err)
	assert.NoError(t, service.ConfirmEmail(context.Background(), "seba@example.com", repo.codes[u.ID]))

	err = service.ConfirmEmail(context.Background(), "seba@example.com", "123456")

	assert.True(t, errors.Is(err, ErrAlreadyVerified))
}

func TestResendVerificationCode_ThrottledInsideGracePeriod(t *testing.T) {
	repo := newFakeRepository()
	sender := &fakeSender{}
	service := NewUserService(repo, sender)

	_, err := service.Register(context.Background(), "Sebastian", "seba@example.com", "super-secret")
	assert.NoError(t, err)

	err = service.ResendVerificationCode(context.Background(), "seba@example.com")

	assert.True(t, errors.Is(err, ErrTooManyCodeRequests))
	assert.Len(t, sender.recipients, 1)
}

func TestResendVerificationCode_AfterGracePeriod(t *testing.T) {
	repo := newFakeRepository()
	sender := &fakeSender{}
	service := NewUserService(repo, sender)

	u, err := service.Register(context.Background(), "Sebastian", "seba@example.com", "super-secret")
	assert.NoError(t, err)
	repo.createdAt[u.ID] = time.Now().UTC().Add(-5 * time.Minute)

	err = service.ResendVerificationCode(context.Background(), "seba@example.com")

	assert.NoError(t, err)
	assert.Len(t, sender.recipients, 2)
	assert.NotEmpty(t, repo.codes[u.ID])
}

func TestCheckPassword(t *testing.T) {
	repo := newFakeRepository()
	service := NewUserService(repo, &fakeSender{})

	u, err := service.Register(context.Background(), "Sebastian", "seba@example.com", "super-secret")
	assert.NoError(t, err)

	assert.True(t, service.CheckPassword(u, "super-secret"))
	assert.False(t, service.CheckPassword(u, "wrong-password"))
}

func TestRotateHashToken_ChangesToken(t *testing.T) {
	repo := newFakeRepository()
	service := NewUserService(repo, &fakeSender{})

	u, err := service.Register(context.Background(), "Sebastian", "seba@example.com", "super-secret")
	assert.NoError(t, err)
	before := u.HashToken

	assert.NoError(t, service.RotateHashToken(context.Background(), u.ID))
	assert.NotEqual(t, before, repo.users[u.ID].HashToken)
}
