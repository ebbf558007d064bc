package schema

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type rowQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Verify сверяет дескриптор с information_schema и возвращает колонки,
// которых нет в живой БД, в виде "table.Column".
func Verify(ctx context.Context, q rowQuerier) ([]string, error) {
	rows, err := q.Query(ctx, `
		SELECT table_name, column_name
		FROM information_schema.columns
		WHERE table_schema = current_schema()
	`)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать information_schema: %w", err)
	}
	defer rows.Close()

	live := make(map[string]struct{})
	for rows.Next() {
		var table, column string
		if err := rows.Scan(&table, &column); err != nil {
			return nil, err
		}
		live[table+"."+column] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var missing []string
	for _, t := range Catalog() {
		for _, c := range t.Columns {
			if _, ok := live[t.Name+"."+c.Name]; !ok {
				missing = append(missing, t.Name+"."+c.Name)
			}
		}
	}
	return missing, nil
}
