package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	db "bank-dashboard/internal/infrastructure/bd"
	"bank-dashboard/internal/schema"
	apperrors "bank-dashboard/pkg/errors"
	"bank-dashboard/pkg/types"
	"bank-dashboard/pkg/validation"
)

// TableRepositoryInterface - обобщённый CRUD над любой таблицей из дескриптора.
// Каждая мутация - одна команда в режиме autocommit.
type TableRepositoryInterface interface {
	ListRows(ctx context.Context, t *schema.Table, filter types.Filter) ([]map[string]any, uint64, error)
	FindRow(ctx context.Context, t *schema.Table, key map[string]any) (map[string]any, error)
	InsertRow(ctx context.Context, t *schema.Table, values map[string]any) error
	UpdateRow(ctx context.Context, t *schema.Table, key map[string]any, values map[string]any) error
	DeleteRow(ctx context.Context, t *schema.Table, key map[string]any) error
}

type TableRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewTableRepository(storage *pgxpool.Pool, logger *zap.Logger) TableRepositoryInterface {
	return &TableRepository{storage: storage, logger: logger}
}

func (r *TableRepository) ListRows(ctx context.Context, t *schema.Table, filter types.Filter) ([]map[string]any, uint64, error) {
	var total uint64
	if filter.WithPagination {
		countSQL, countArgs, err := db.BuildCount(t, filter)
		if err != nil {
			return nil, 0, err
		}
		if err := r.storage.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
			return nil, 0, apperrors.FromDatabase(err)
		}
		if total == 0 {
			return []map[string]any{}, 0, nil
		}
	}

	query, args, err := db.BuildSelectAll(t, filter)
	if err != nil {
		return nil, 0, err
	}
	r.logger.Debug("ListRows", zap.String("table", t.Name), zap.String("sql", query))

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.FromDatabase(err)
	}
	defer rows.Close()

	result := make([]map[string]any, 0)
	for rows.Next() {
		row, err := scanRow(t, rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.FromDatabase(err)
	}

	if !filter.WithPagination {
		total = uint64(len(result))
	}
	return result, total, nil
}

func (r *TableRepository) FindRow(ctx context.Context, t *schema.Table, key map[string]any) (map[string]any, error) {
	query, args, err := db.BuildSelectOne(t, key)
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.FromDatabase(err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, apperrors.FromDatabase(err)
		}
		return nil, apperrors.ErrNotFound
	}
	return scanRow(t, rows)
}

func (r *TableRepository) InsertRow(ctx context.Context, t *schema.Table, values map[string]any) error {
	query, args, err := db.BuildInsert(t, values)
	if err != nil {
		return err
	}
	r.logger.Debug("InsertRow", zap.String("table", t.Name), zap.String("sql", query))
	if _, err := r.storage.Exec(ctx, query, args...); err != nil {
		return apperrors.FromDatabase(err)
	}
	return nil
}

func (r *TableRepository) UpdateRow(ctx context.Context, t *schema.Table, key map[string]any, values map[string]any) error {
	query, args, err := db.BuildUpdate(t, key, values)
	if err != nil {
		return err
	}
	r.logger.Debug("UpdateRow", zap.String("table", t.Name), zap.String("sql", query))
	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return apperrors.FromDatabase(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *TableRepository) DeleteRow(ctx context.Context, t *schema.Table, key map[string]any) error {
	query, args, err := db.BuildDelete(t, key)
	if err != nil {
		return err
	}
	r.logger.Debug("DeleteRow", zap.String("table", t.Name), zap.String("sql", query))
	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return apperrors.FromDatabase(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// scanRow читает строку в порядке колонок дескриптора.
func scanRow(t *schema.Table, rows pgx.Rows) (map[string]any, error) {
	values, err := rows.Values()
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования %s: %w", t.Name, err)
	}
	if len(values) != len(t.Columns) {
		return nil, fmt.Errorf("ошибка сканирования %s: ожидалось %d колонок, получено %d", t.Name, len(t.Columns), len(values))
	}
	row := make(map[string]any, len(values))
	for i, c := range t.Columns {
		v, err := normalize(c, values[i])
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования %s.%s: %w", t.Name, c.Name, err)
		}
		row[c.Name] = v
	}
	return row, nil
}

// normalize приводит значения pgx к виду, пригодному для JSON и для повторной
// передачи в форму: даты YYYY-MM-DD, время HH:MM:SS, деньги decimal.
func normalize(c schema.Column, v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case int16:
		return int64(val), nil
	case int32:
		return int64(val), nil
	case time.Time:
		if c.Type == schema.Date {
			return val.Format(validation.DateLayout), nil
		}
		return val, nil
	case pgtype.Time:
		if !val.Valid {
			return nil, nil
		}
		return formatClock(val.Microseconds), nil
	case pgtype.Numeric:
		if !val.Valid {
			return nil, nil
		}
		raw, err := val.Value()
		if err != nil {
			return nil, err
		}
		s, ok := raw.(string)
		if !ok {
			return nil, errors.New("неожиданное представление numeric")
		}
		return decimal.NewFromString(s)
	default:
		return val, nil
	}
}

func formatClock(us int64) string {
	secs := us / 1_000_000
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}
