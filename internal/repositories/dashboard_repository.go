package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	db "bank-dashboard/internal/infrastructure/bd"
)

// AggregateRow - одна точка графика: подпись и значения по каждой серии.
type AggregateRow struct {
	Label  string
	Values []float64
}

type DashboardRepositoryInterface interface {
	GetAccountTypes(ctx context.Context) ([]AggregateRow, error)
	GetAgeDistribution(ctx context.Context) ([]AggregateRow, error)
	GetCustomerGrowth(ctx context.Context) ([]AggregateRow, error)
	GetBranchAssets(ctx context.Context) ([]AggregateRow, error)
	GetLoanTypes(ctx context.Context) ([]AggregateRow, error)
	GetLoanStatuses(ctx context.Context) ([]AggregateRow, error)
	GetTransactionVolume(ctx context.Context) ([]AggregateRow, error)
	GetVariableReturns(ctx context.Context) ([]AggregateRow, error)
	GetFixedReturns(ctx context.Context) ([]AggregateRow, error)
	GetInvestmentPortfolio(ctx context.Context) ([]AggregateRow, error)
}

type DashboardRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewDashboardRepository(storage *pgxpool.Pool, logger *zap.Logger) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage, logger: logger}
}

// aggregate выполняет запрос вида SELECT <label>, <v1>, ... <vn> и сканирует все строки.
func (r *DashboardRepository) aggregate(ctx context.Context, b sq.SelectBuilder, series int) ([]AggregateRow, error) {
	query, args, err := b.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}
	return r.aggregateRaw(ctx, query, args, series)
}

func (r *DashboardRepository) aggregateRaw(ctx context.Context, query string, args []interface{}, series int) ([]AggregateRow, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("ошибка агрегирующего запроса", zap.String("sql", query), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	result := make([]AggregateRow, 0)
	for rows.Next() {
		row := AggregateRow{Values: make([]float64, series)}
		dest := make([]interface{}, 0, series+1)
		dest = append(dest, &row.Label)
		for i := range row.Values {
			dest = append(dest, &row.Values[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("ошибка сканирования агрегата: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// countBy - COUNT(*) по значению одной колонки.
func countBy(table, column string) sq.SelectBuilder {
	col := db.Ident(column)
	return sq.Select(col, "COUNT(*)::float8").
		From(db.Ident(table)).
		GroupBy(col).
		OrderBy(col)
}

// 1. Типы счетов
func (r *DashboardRepository) GetAccountTypes(ctx context.Context) ([]AggregateRow, error) {
	return r.aggregate(ctx, countBy("bankaccount", "Type"), 1)
}

// 2. Возраст клиентов в полных годах на сегодня
func (r *DashboardRepository) GetAgeDistribution(ctx context.Context) ([]AggregateRow, error) {
	ages := sq.Select(`date_part('year', age(CURRENT_DATE, "DateOfBirth"))::int AS age`).From(`"customer"`)
	b := sq.Select("age::text", "COUNT(*)::float8").
		FromSelect(ages, "a").
		GroupBy("age").
		OrderBy("age")
	return r.aggregate(ctx, b, 1)
}

// 3. Число клиентов, открывших счёт, по годам
func (r *DashboardRepository) GetCustomerGrowth(ctx context.Context) ([]AggregateRow, error) {
	b := sq.Select(`EXTRACT(YEAR FROM "SetupDate")::int::text AS setup_year`, `COUNT(DISTINCT "CustomerID")::float8`).
		From(`"bankaccount"`).
		GroupBy("setup_year").
		OrderBy("setup_year")
	return r.aggregate(ctx, b, 1)
}

// 4. Сумма остатков по отделениям
func (r *DashboardRepository) GetBranchAssets(ctx context.Context) ([]AggregateRow, error) {
	b := sq.Select(`b."Name"`, `SUM(ba."Balance")::float8`).
		From(`"bankaccount" ba`).
		Join(`"branch" b ON ba."BranchID" = b."BranchID"`).
		GroupBy(`b."Name"`).
		OrderBy(`b."Name"`)
	return r.aggregate(ctx, b, 1)
}

// 5. Кредиты по типам: количество и сумма
func (r *DashboardRepository) GetLoanTypes(ctx context.Context) ([]AggregateRow, error) {
	b := sq.Select(`"Type"`, "COUNT(*)::float8", `SUM("Amount")::float8`).
		From(`"loan"`).
		GroupBy(`"Type"`).
		OrderBy(`"Type"`)
	return r.aggregate(ctx, b, 2)
}

func (r *DashboardRepository) GetLoanStatuses(ctx context.Context) ([]AggregateRow, error) {
	return r.aggregate(ctx, countBy("loan", "Status"), 1)
}

// 7. Количество транзакций по месяцам
func (r *DashboardRepository) GetTransactionVolume(ctx context.Context) ([]AggregateRow, error) {
	b := sq.Select(`to_char("Date", 'YYYY-MM') AS tx_month`, "COUNT(*)::float8").
		From(`"transaction"`).
		GroupBy("tx_month").
		OrderBy("tx_month")
	return r.aggregate(ctx, b, 1)
}

func monthlyAverage(table, column string) sq.SelectBuilder {
	return sq.Select(`to_char("StartDate", 'YYYY-MM') AS start_month`, fmt.Sprintf("AVG(%s)::float8", db.Ident(column))).
		From(db.Ident(table)).
		GroupBy("start_month").
		OrderBy("start_month")
}

// 9. Средняя доходность по месяцам начала вложения
func (r *DashboardRepository) GetVariableReturns(ctx context.Context) ([]AggregateRow, error) {
	return r.aggregate(ctx, monthlyAverage("variablerateinvestment", "ReturnRate"), 1)
}

func (r *DashboardRepository) GetFixedReturns(ctx context.Context) ([]AggregateRow, error) {
	return r.aggregate(ctx, monthlyAverage("fixedrateinvestment", "InterestRate"), 1)
}

// 10. Структура портфеля. HAVING отбрасывает пустые таблицы, иначе SUM вернёт NULL.
func (r *DashboardRepository) GetInvestmentPortfolio(ctx context.Context) ([]AggregateRow, error) {
	const query = `
		SELECT 'Fixed Rate Investment', SUM("Amount")::float8
		FROM "fixedrateinvestment"
		HAVING COUNT(*) > 0
		UNION ALL
		SELECT 'Variable Rate Investment', SUM("Amount")::float8
		FROM "variablerateinvestment"
		HAVING COUNT(*) > 0
	`
	return r.aggregateRaw(ctx, query, nil, 1)
}
