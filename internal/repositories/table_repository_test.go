package repositories

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bank-dashboard/internal/schema"
	"bank-dashboard/migrations"
	apperrors "bank-dashboard/pkg/errors"
	"bank-dashboard/pkg/types"
)

var testPool *pgxpool.Pool

// TestMain поднимает схему в тестовой БД из TEST_DATABASE_URL.
// Без переменной интеграционные тесты пропускаются.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn != "" {
		var err error
		testPool, err = pgxpool.New(context.Background(), dsn)
		if err != nil {
			log.Fatalf("Не удалось подключиться к тестовой БД: %v", err)
		}
		if err := migrations.UpFromPool(context.Background(), testPool, zap.NewNop()); err != nil {
			log.Fatalf("Не удалось применить схему БД: %v", err)
		}
	}

	code := m.Run()
	if testPool != nil {
		testPool.Close()
	}
	os.Exit(code)
}

func requireDB(t *testing.T) {
	t.Helper()
	if testPool == nil {
		t.Skip("TEST_DATABASE_URL не задан")
	}
}

// cleanupTables очищает все таблицы схемы.
func cleanupTables(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `TRUNCATE TABLE
		"assist", "lockerbranch", "lockercustomer", "locker", "loan", "loantype",
		"rolepermission", "access", "transaction", "variablerateinvestment",
		"fixedrateinvestment", "bankaccount", "employeephone", "employeeemail",
		"employeenationalid", "employee", "rolename", "customernationalid",
		"customerphone", "customeremail", "customer", "rolestatus", "branchphone",
		"branchemail", "branchaddress", "branch" CASCADE`)
	require.NoError(t, err, "Не удалось очистить таблицы")
}

func TestTableRepository_Integration_BranchLifecycle(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	ctx := context.Background()
	repo := NewTableRepository(testPool, zap.NewNop())
	branch := schema.MustLookup("branch")
	key := map[string]any{"BranchID": int64(1)}

	err := repo.InsertRow(ctx, branch, map[string]any{"BranchID": int64(1), "Name": "Central", "Status": "Active"})
	require.NoError(t, err)

	rows, total, err := repo.ListRows(ctx, branch, types.Filter{})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, map[string]any{"BranchID": int64(1), "Name": "Central", "Status": "Active"}, rows[0])

	err = repo.UpdateRow(ctx, branch, key, map[string]any{"Status": "Inactive"})
	require.NoError(t, err)

	row, err := repo.FindRow(ctx, branch, key)
	require.NoError(t, err)
	assert.Equal(t, "Inactive", row["Status"])
	assert.Equal(t, "Central", row["Name"], "непереданные колонки не меняются")

	require.NoError(t, repo.DeleteRow(ctx, branch, key))

	_, err = repo.FindRow(ctx, branch, key)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = repo.DeleteRow(ctx, branch, key)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTableRepository_Integration_ConstraintErrors(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	ctx := context.Background()
	repo := NewTableRepository(testPool, zap.NewNop())
	branch := schema.MustLookup("branch")

	err := repo.InsertRow(ctx, branch, map[string]any{"BranchID": int64(1), "Name": "North", "Status": "Unknown"})
	var httpErr *apperrors.HttpError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)

	require.NoError(t, repo.InsertRow(ctx, branch, map[string]any{"BranchID": int64(1), "Name": "North", "Status": "Active"}))
	err = repo.InsertRow(ctx, branch, map[string]any{"BranchID": int64(1), "Name": "Copy", "Status": "Active"})
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusConflict, httpErr.Code)

	err = repo.InsertRow(ctx, schema.MustLookup("branchemail"), map[string]any{"Email": "a@b.com", "BranchID": int64(99)})
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusConflict, httpErr.Code)
}

func TestTableRepository_Integration_NormalizesTypes(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	ctx := context.Background()
	repo := NewTableRepository(testPool, zap.NewNop())

	_, err := testPool.Exec(ctx, `
		INSERT INTO "customer" VALUES (1, 'Ann', '1 Main St', 'Springfield', 'IL', '62701', '1990-05-17', 'F');
		INSERT INTO "rolename" VALUES (1, 'Teller');
		INSERT INTO "employee" VALUES (1, 'Bob', '2 Main St', 'Springfield', 'IL', '62701', '1985-01-01', 1, 'M');
		INSERT INTO "assist" VALUES (1, 1, '2024-03-01', '09:15:00', 'Consultation');
		INSERT INTO "loantype" VALUES ('Mortgage', 4.25, 'Monthly');
	`)
	require.NoError(t, err)

	row, err := repo.FindRow(ctx, schema.MustLookup("assist"), map[string]any{
		"CustomerID": int64(1), "EmpID": int64(1),
		"Date": time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "Time": "09:15:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", row["Date"])
	assert.Equal(t, "09:15:00", row["Time"])

	row, err = repo.FindRow(ctx, schema.MustLookup("loantype"), map[string]any{"Type": "Mortgage"})
	require.NoError(t, err)
	rate, ok := row["InterestRate"].(decimal.Decimal)
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.RequireFromString("4.25")))
}

func TestDashboardRepository_Integration_EmptyTables(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	ctx := context.Background()
	repo := NewDashboardRepository(testPool, zap.NewNop())

	portfolio, err := repo.GetInvestmentPortfolio(ctx)
	require.NoError(t, err)
	assert.Empty(t, portfolio)

	volume, err := repo.GetTransactionVolume(ctx)
	require.NoError(t, err)
	assert.Empty(t, volume)

	ages, err := repo.GetAgeDistribution(ctx)
	require.NoError(t, err)
	assert.Empty(t, ages)
}

func TestDashboardRepository_Integration_Aggregates(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	ctx := context.Background()
	repo := NewDashboardRepository(testPool, zap.NewNop())

	_, err := testPool.Exec(ctx, `
		INSERT INTO "branch" VALUES (1, 'Central', 'Active'), (2, 'North', 'Closed');
		INSERT INTO "bankaccount" VALUES
			(1, 'Checking', '2021-01-10', 100.50, 'Open', 1, '2021-02-01', NULL),
			(2, 'Savings',  '2022-03-15', 200.00, 'Open', 1, '2022-04-01', NULL),
			(3, 'Savings',  '2022-06-01', 50.00,  'Open', 2, '2022-07-01', NULL);
		INSERT INTO "loan" VALUES
			(1, 'Auto', 1000, '2023-01-01', '2025-01-01', 'Approved', NULL, NULL),
			(2, 'Auto', 500,  '2023-02-01', '2025-02-01', 'Paid', NULL, NULL);
	`)
	require.NoError(t, err)

	accounts, err := repo.GetAccountTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []AggregateRow{
		{Label: "Checking", Values: []float64{1}},
		{Label: "Savings", Values: []float64{2}},
	}, accounts)

	assets, err := repo.GetBranchAssets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []AggregateRow{
		{Label: "Central", Values: []float64{300.5}},
		{Label: "North", Values: []float64{50}},
	}, assets)

	loans, err := repo.GetLoanTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []AggregateRow{{Label: "Auto", Values: []float64{2, 1500}}}, loans)
}
