package interfaces

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spendwise/backend/internal/finance/application"
	"github.com/spendwise/backend/internal/finance/domain"
	financeErrors "github.com/spendwise/backend/internal/finance/errors"
)

type mockDebtService struct {
	debt *domain.Debt
	page domain.Page[domain.Debt]
	err  error

	lastUserID  string
	lastID      int64
	lastReq     application.CreateDebtRequest
	cancelCalls int
}

func (m *mockDebtService) Create(_ context.Context, userID string, req application.CreateDebtRequest) (*domain.Debt, error) {
	m.lastUserID = userID
	m.lastReq = req
	return m.debt, m.err
}

func (m *mockDebtService) FindByID(_ context.Context, userID string, id int64) (*domain.Debt, error) {
	m.lastUserID = userID
	m.lastID = id
	return m.debt, m.err
}

func (m *mockDebtService) List(_ context.Context, userID string, filter domain.DebtFilter, page domain.PageRequest) (domain.Page[domain.Debt], error) {
	m.lastUserID = userID
	return m.page, m.err
}

func (m *mockDebtService) Update(_ context.Context, userID string, id int64, req application.CreateDebtRequest) (*domain.Debt, error) {
	m.lastUserID = userID
	m.lastID = id
	m.lastReq = req
	return m.debt, m.err
}

func (m *mockDebtService) Cancel(_ context.Context, userID string, id int64) (*domain.Debt, error) {
	m.lastUserID = userID
	m.lastID = id
	m.cancelCalls++
	return m.debt, m.err
}

func (m *mockDebtService) Delete(_ context.Context, userID string, id int64) error {
	m.lastUserID = userID
	m.lastID = id
	return m.err
}

func TestDebtHandler_Create_ParsesOptionalDueDate(t *testing.T) {
	service := &mockDebtService{debt: &domain.Debt{ID: 1}}
	handler := NewDebtHandler(service, respondJSON, respondError)

	payload := []byte(`{
		"description": "Prestamo",
		"amount_in_pesos": "500000",
		"amount_in_dollars": "400",
		"date": "2024-06-01",
		"due_date": "2024-12-01",
		"creditor": "Banco Nacion"
	}`)
	req := authenticatedRequest(http.MethodPost, "/api/protected/debts", payload)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotNil(t, service.lastReq.DueDate)
	assert.Equal(t, "2024-12-01", service.lastReq.DueDate.Format("2006-01-02"))
	assert.Equal(t, "Banco Nacion", service.lastReq.Creditor)
}

func TestDebtHandler_Create_DueDateOmitted(t *testing.T) {
	service := &mockDebtService{debt: &domain.Debt{ID: 1}}
	handler := NewDebtHandler(service, respondJSON, respondError)

	payload := []byte(`{"amount_in_pesos": "1000", "date": "2024-06-01"}`)
	req := authenticatedRequest(http.MethodPost, "/api/protected/debts", payload)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, service.lastReq.DueDate)
}

func TestDebtHandler_Create_InvalidDueDate(t *testing.T) {
	service := &mockDebtService{}
	handler := NewDebtHandler(service, respondJSON, respondError)

	payload := []byte(`{"date": "2024-06-01", "due_date": "soon"}`)
	req := authenticatedRequest(http.MethodPost, "/api/protected/debts", payload)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDebtHandler_Cancel_Success(t *testing.T) {
	service := &mockDebtService{debt: &domain.Debt{ID: 7, Cancelled: true}}
	handler := NewDebtHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodPut, "/api/protected/debts/7/cancel", nil)
	req.SetPathValue("id", "7")
	rec := httptest.NewRecorder()

	handler.Cancel(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Debt successfully cancelled.", body["message"])
	assert.Equal(t, 1, service.cancelCalls)
	assert.Equal(t, int64(7), service.lastID)
}

func TestDebtHandler_Cancel_NotFound(t *testing.T) {
	service := &mockDebtService{err: financeErrors.ErrRecordNotFound}
	handler := NewDebtHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodPut, "/api/protected/debts/99/cancel", nil)
	req.SetPathValue("id", "99")
	rec := httptest.NewRecorder()

	handler.Cancel(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
