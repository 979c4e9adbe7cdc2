package interfaces

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/spendwise/backend/internal/finance/application"
	"github.com/spendwise/backend/internal/finance/domain"
	financeErrors "github.com/spendwise/backend/internal/finance/errors"
)

type mockExpenseService struct {
	expense *domain.Expense
	page    domain.Page[domain.Expense]
	err     error

	lastUserID string
	lastID     int64
	lastReq    application.CreateExpenseRequest
	lastFilter domain.ExpenseFilter
	lastPage   domain.PageRequest
}

func (m *mockExpenseService) Create(_ context.Context, userID string, req application.CreateExpenseRequest) (*domain.Expense, error) {
	m.lastUserID = userID
	m.lastReq = req
	return m.expense, m.err
}

func (m *mockExpenseService) FindByID(_ context.Context, userID string, id int64) (*domain.Expense, error) {
	m.lastUserID = userID
	m.lastID = id
	return m.expense, m.err
}

func (m *mockExpenseService) List(_ context.Context, userID string, filter domain.ExpenseFilter, page domain.PageRequest) (domain.Page[domain.Expense], error) {
	m.lastUserID = userID
	m.lastFilter = filter
	m.lastPage = page
	return m.page, m.err
}

func (m *mockExpenseService) Update(_ context.Context, userID string, id int64, req application.CreateExpenseRequest) (*domain.Expense, error) {
	m.lastUserID = userID
	m.lastID = id
	m.lastReq = req
	return m.expense, m.err
}

func (m *mockExpenseService) Delete(_ context.Context, userID string, id int64) error {
	m.lastUserID = userID
	m.lastID = id
	return m.err
}

func authenticatedRequest(method, target string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(context.WithValue(req.Context(), "userID", "user-123"))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestExpenseHandler_Create_Success(t *testing.T) {
	service := &mockExpenseService{expense: &domain.Expense{ID: 1, Description: "Supermercado"}}
	handler := NewExpenseHandler(service, respondJSON, respondError)

	payload := []byte(`{
		"description": "Supermercado",
		"input_amount": "3000",
		"currency_id": 1,
		"date": "2024-06-10"
	}`)
	req := authenticatedRequest(http.MethodPost, "/api/protected/expenses", payload)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Expense successfully created.", body["message"])
	assert.Equal(t, "user-123", service.lastUserID)
	assert.Equal(t, "Supermercado", service.lastReq.Description)
	assert.True(t, service.lastReq.InputAmount.Equal(decimal.RequireFromString("3000")))
	assert.Equal(t, int64(1), *service.lastReq.CurrencyID)
	assert.Equal(t, "2024-06-10", service.lastReq.Date.Format("2006-01-02"))
}

func TestExpenseHandler_Create_MissingUserIsUnauthorized(t *testing.T) {
	service := &mockExpenseService{}
	handler := NewExpenseHandler(service, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodPost, "/api/protected/expenses", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "error", body["status"])
}

func TestExpenseHandler_Create_InvalidBody(t *testing.T) {
	service := &mockExpenseService{}
	handler := NewExpenseHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodPost, "/api/protected/expenses", []byte(`{not json`))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExpenseHandler_Create_InvalidDate(t *testing.T) {
	service := &mockExpenseService{}
	handler := NewExpenseHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodPost, "/api/protected/expenses", []byte(`{"date": "10/06/2024"}`))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid date, expected YYYY-MM-DD", body["message"])
}

func TestExpenseHandler_Create_ValidationErrorFromService(t *testing.T) {
	service := &mockExpenseService{err: financeErrors.NewValidationError("Amount is required")}
	handler := NewExpenseHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodPost, "/api/protected/expenses", []byte(`{"date": "2024-06-10"}`))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Amount is required", body["message"])
}

func TestExpenseHandler_GetByID_NotFound(t *testing.T) {
	service := &mockExpenseService{err: financeErrors.ErrRecordNotFound}
	handler := NewExpenseHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodGet, "/api/protected/expenses/42", nil)
	req.SetPathValue("id", "42")
	rec := httptest.NewRecorder()

	handler.GetByID(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, int64(42), service.lastID)
}

func TestExpenseHandler_GetByID_InvalidID(t *testing.T) {
	service := &mockExpenseService{}
	handler := NewExpenseHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodGet, "/api/protected/expenses/abc", nil)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()

	handler.GetByID(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExpenseHandler_List_TranslatesQueryParameters(t *testing.T) {
	service := &mockExpenseService{page: domain.Page[domain.Expense]{Content: []domain.Expense{}}}
	handler := NewExpenseHandler(service, respondJSON, respondError)

	target := "/api/protected/expenses?description=super&min_amount_in_pesos=100&micro_expense=true&category_id=3&page=2&size=10"
	req := authenticatedRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "super", *service.lastFilter.Description)
	assert.Equal(t, "100", service.lastFilter.MinAmountInPesos.String())
	assert.True(t, *service.lastFilter.MicroExpense)
	assert.Equal(t, int64(3), *service.lastFilter.CategoryID)
	assert.Nil(t, service.lastFilter.PaymentMethodID)
	assert.Equal(t, 2, service.lastPage.Number)
	assert.Equal(t, 10, service.lastPage.Size)
}

func TestExpenseHandler_List_IgnoresMalformedFilters(t *testing.T) {
	service := &mockExpenseService{}
	handler := NewExpenseHandler(service, respondJSON, respondError)

	target := "/api/protected/expenses?min_amount_in_pesos=abc&start_date=junk&micro_expense=maybe"
	req := authenticatedRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, service.lastFilter.MinAmountInPesos)
	assert.Nil(t, service.lastFilter.StartDate)
	assert.Nil(t, service.lastFilter.MicroExpense)
}

func TestExpenseHandler_Delete_Success(t *testing.T) {
	service := &mockExpenseService{}
	handler := NewExpenseHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodDelete, "/api/protected/expenses/7", nil)
	req.SetPathValue("id", "7")
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Expense successfully deleted.", body["message"])
	assert.Equal(t, int64(7), service.lastID)
}
