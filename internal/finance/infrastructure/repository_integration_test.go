package infrastructure

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	database "github.com/spendwise/backend/internal/db"
	"github.com/spendwise/backend/internal/finance/domain"
	financeErrors "github.com/spendwise/backend/internal/finance/errors"
	"github.com/spendwise/backend/internal/finance/query"
)

const (
	ownerID    = "11111111-1111-1111-1111-111111111111"
	intruderID = "22222222-2222-2222-2222-222222222222"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("spendwise_test"),
		postgres.WithUsername("spendwise"),
		postgres.WithPassword("spendwise"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, database.RunMigrations(db))

	for _, id := range []string{ownerID, intruderID} {
		_, err = db.ExecContext(ctx,
			`INSERT INTO users (id, email, name, password_hash, verified, two_factor_enabled, hash_token, created_at, updated_at)
			 VALUES ($1, $2, 'Test User', 'x', TRUE, FALSE, 'x', NOW(), NOW())`,
			id, fmt.Sprintf("%s@example.com", id))
		require.NoError(t, err)
	}
	return db
}

func TestExpenseRepository_OwnershipIsolation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	expense := &domain.Expense{
		UserID:          ownerID,
		Description:     "Supermercado",
		AmountInPesos:   decimal.RequireFromString("3000"),
		AmountInDollars: decimal.RequireFromString("2"),
		Date:            time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, expense))
	require.NotZero(t, expense.ID)

	found, err := repo.FindByIDAndUser(ctx, expense.ID, ownerID)
	assert.NoError(t, err)
	assert.Equal(t, "Supermercado", found.Description)
	assert.True(t, found.AmountInPesos.Equal(decimal.RequireFromString("3000")))

	_, err = repo.FindByIDAndUser(ctx, expense.ID, intruderID)
	assert.ErrorIs(t, err, financeErrors.ErrRecordNotFound)

	err = repo.Delete(ctx, expense.ID, intruderID)
	assert.ErrorIs(t, err, financeErrors.ErrRecordNotFound)

	assert.NoError(t, repo.Delete(ctx, expense.ID, ownerID))
	_, err = repo.FindByIDAndUser(ctx, expense.ID, ownerID)
	assert.ErrorIs(t, err, financeErrors.ErrRecordNotFound)
}

func TestExpenseRepository_UpdatePreservesOwnerScope(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	expense := &domain.Expense{
		UserID:          ownerID,
		Description:     "Nafta",
		AmountInPesos:   decimal.RequireFromString("2000"),
		AmountInDollars: decimal.RequireFromString("2"),
		Date:            time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, expense))

	expense.Description = "Nafta premium"
	expense.UserID = intruderID
	err := repo.Save(ctx, expense)
	assert.ErrorIs(t, err, financeErrors.ErrRecordNotFound)

	expense.UserID = ownerID
	assert.NoError(t, repo.Save(ctx, expense))

	found, err := repo.FindByIDAndUser(ctx, expense.ID, ownerID)
	assert.NoError(t, err)
	assert.Equal(t, "Nafta premium", found.Description)
}

func TestExpenseRepository_FindAllFiltersAndPaginates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		expense := &domain.Expense{
			UserID:          ownerID,
			Description:     fmt.Sprintf("Gasto %d", i),
			AmountInPesos:   decimal.NewFromInt(int64(100 * (i + 1))),
			AmountInDollars: decimal.NewFromInt(int64(i + 1)),
			Date:            time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
		}
		require.NoError(t, repo.Save(ctx, expense))
	}
	foreign := &domain.Expense{
		UserID:          intruderID,
		Description:     "Gasto ajeno",
		AmountInPesos:   decimal.RequireFromString("100"),
		AmountInDollars: decimal.RequireFromString("1"),
		Date:            time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, foreign))

	page, err := repo.FindAll(ctx, query.OwnedBy(ownerID), domain.PageRequest{Number: 0, Size: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(25), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Content, 10)

	lastPage, err := repo.FindAll(ctx, query.OwnedBy(ownerID), domain.PageRequest{Number: 2, Size: 10})
	assert.NoError(t, err)
	assert.Len(t, lastPage.Content, 5)

	pred := query.OwnedBy(ownerID).
		Gte("amount_ars", decimal.RequireFromString("2000")).
		Lte("amount_ars", decimal.RequireFromString("2200"))
	filtered, err := repo.FindAll(ctx, pred, domain.PageRequest{Number: 0, Size: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), filtered.TotalElements)

	caseInsensitive, err := repo.FindAll(ctx,
		query.OwnedBy(ownerID).ContainsFold("description", "gasto 1"),
		domain.PageRequest{Number: 0, Size: 20})
	assert.NoError(t, err)
	// "Gasto 1" plus "Gasto 10".."Gasto 19"
	assert.Equal(t, int64(11), caseInsensitive.TotalElements)
}

func TestCurrencyRepository_SetEnabled(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCurrencyRepository(db)
	ctx := context.Background()

	currency := &domain.Currency{
		UserID:  ownerID,
		Name:    "Peso Argentino",
		Symbol:  "$",
		Enabled: true,
	}
	require.NoError(t, repo.Save(ctx, currency))

	assert.NoError(t, repo.SetEnabled(ctx, currency.ID, ownerID, false))
	found, err := repo.FindByIDAndUser(ctx, currency.ID, ownerID)
	assert.NoError(t, err)
	assert.False(t, found.Enabled)

	err = repo.SetEnabled(ctx, currency.ID, intruderID, true)
	assert.ErrorIs(t, err, financeErrors.ErrRecordNotFound)
}

func TestSavingRepository_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	currencies := NewCurrencyRepository(db)
	repo := NewSavingRepository(db)
	ctx := context.Background()

	currency := &domain.Currency{UserID: ownerID, Name: "Dolar", Symbol: "US$", Enabled: true}
	require.NoError(t, currencies.Save(ctx, currency))

	saving := &domain.Saving{
		UserID:          ownerID,
		Description:     "Colchon",
		CurrencyID:      currency.ID,
		AmountInPesos:   decimal.RequireFromString("120000"),
		AmountInDollars: decimal.RequireFromString("100"),
		Date:            time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, saving))

	found, err := repo.FindByIDAndUser(ctx, saving.ID, ownerID)
	assert.NoError(t, err)
	assert.Equal(t, currency.ID, found.CurrencyID)
	assert.True(t, found.AmountInDollars.Equal(decimal.RequireFromString("100")))
}
