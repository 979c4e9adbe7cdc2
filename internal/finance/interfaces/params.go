package interfaces

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/exchange"
	"github.com/spendwise/backend/internal/finance/domain"
	financeErrors "github.com/spendwise/backend/internal/finance/errors"
)

const dateLayout = "2006-01-02"

func userIDFromContext(r *http.Request) (string, bool) {
	userID, ok := r.Context().Value("userID").(string)
	return userID, ok
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// Query-parameter helpers. Absent or unparsable values yield nil so the
// corresponding filter condition is simply omitted.

func queryString(r *http.Request, name string) *string {
	if v := r.URL.Query().Get(name); v != "" {
		return &v
	}
	return nil
}

func queryDecimal(r *http.Request, name string) *decimal.Decimal {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil
	}
	return &d
}

func queryDate(r *http.Request, name string) *time.Time {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil
	}
	return &t
}

func queryInt64(r *http.Request, name string) *int64 {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func queryBool(r *http.Request, name string) *bool {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

func pageRequest(r *http.Request) domain.PageRequest {
	page := domain.PageRequest{}
	if n := queryInt64(r, "page"); n != nil {
		page.Number = int(*n)
	}
	if n := queryInt64(r, "size"); n != nil {
		page.Size = int(*n)
	}
	return page
}

// respondServiceError maps service failures onto HTTP statuses: validation
// to 400, missing/foreign records to 404, quotation failures to 502/422.
func respondServiceError(w http.ResponseWriter, respondError func(http.ResponseWriter, int, string, ...[]string), err error) {
	switch {
	case financeErrors.IsValidationError(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, financeErrors.ErrRecordNotFound):
		respondError(w, http.StatusNotFound, "Record not found")
	case errors.Is(err, exchange.ErrUnknownCurrencyType), errors.Is(err, exchange.ErrNoQuoteForDate):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, exchange.ErrUpstreamUnavailable):
		respondError(w, http.StatusBadGateway, "Exchange rate service unavailable")
	default:
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
