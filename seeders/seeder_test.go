package seeders

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bank-dashboard/internal/repositories"
	"bank-dashboard/internal/schema"
	"bank-dashboard/migrations"
	"bank-dashboard/pkg/validation"
)

// Запись в БД проверяется только при заданном TEST_DATABASE_URL.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL не задан")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, migrations.UpFromPool(ctx, pool, zap.NewNop()))

	quoted := make([]string, 0, len(schema.Names()))
	for _, name := range schema.Names() {
		quoted = append(quoted, `"`+name+`"`)
	}
	_, err = pool.Exec(ctx, "TRUNCATE "+strings.Join(quoted, ", ")+" CASCADE")
	require.NoError(t, err)
	return pool
}

func TestSeeder_WritesAllTables(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	ds := NewGenerator(9, asOf, DefaultSizes()).Generate()
	s := NewSeeder(repositories.NewTxManager(pool), validation.New(), zap.NewNop())
	require.NoError(t, s.Run(ctx, ds, nil))

	var customers, minID, maxID int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*), MIN("CustomerID"), MAX("CustomerID") FROM "customer"`).Scan(&customers, &minID, &maxID))
	assert.Equal(t, 50, customers)
	assert.Equal(t, 1, minID)
	assert.Equal(t, 50, maxID)

	var assists int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM "assist"`).Scan(&assists))
	assert.Equal(t, len(ds.Assists), assists)

	// повторный запуск упирается в первичные ключи
	err := s.Run(ctx, ds, []string{"branches"})
	assert.Error(t, err)
}
