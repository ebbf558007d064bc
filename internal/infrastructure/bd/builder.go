// Package db собирает SQL для обобщённого CRUD по дескриптору схемы.
// В текст запроса попадают только идентификаторы из дескриптора, значения всегда
// передаются параметрами.
package db

import (
	"fmt"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"bank-dashboard/internal/schema"
	apperrors "bank-dashboard/pkg/errors"
	"bank-dashboard/pkg/types"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Ident экранирует имя таблицы или колонки: CamelCase-имена схемы требуют кавычек.
func Ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func columnList(t *schema.Table) []string {
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = Ident(c.Name)
	}
	return cols
}

func checkColumns[V any](t *schema.Table, values map[string]V) error {
	unknown := make([]string, 0)
	for name := range values {
		if _, ok := t.Column(name); !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%w: %s.%s", apperrors.ErrUnknownColumn, t.Name, strings.Join(unknown, ", "))
	}
	return nil
}

// keyWhere строит условие по всем колонкам первичного ключа в порядке их объявления.
func keyWhere(t *schema.Table, key map[string]any) (sq.And, error) {
	if err := checkColumns(t, key); err != nil {
		return nil, err
	}
	for name := range key {
		if !t.IsKey(name) {
			return nil, fmt.Errorf("%w: %s не входит в первичный ключ %s", apperrors.ErrUnknownColumn, name, t.Name)
		}
	}
	where := make(sq.And, 0, len(t.PrimaryKey))
	for _, k := range t.PrimaryKey {
		v, ok := key[k]
		if !ok || v == nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrEmptyKey, k)
		}
		where = append(where, sq.Eq{Ident(k): v})
	}
	return where, nil
}

func ApplyListParams(builder sq.SelectBuilder, t *schema.Table, filter types.Filter) (sq.SelectBuilder, error) {
	if err := checkColumns(t, filter.Filter); err != nil {
		return builder, err
	}
	if err := checkColumns(t, filter.Sort); err != nil {
		return builder, err
	}

	for _, c := range t.Columns {
		if val, ok := filter.Filter[c.Name]; ok {
			builder = builder.Where(sq.Eq{Ident(c.Name): val})
		}
	}

	sorted := false
	for _, c := range t.Columns {
		dir, ok := filter.Sort[c.Name]
		if !ok {
			continue
		}
		sqlDir := "ASC"
		if strings.ToLower(dir) == "desc" {
			sqlDir = "DESC"
		}
		builder = builder.OrderBy(fmt.Sprintf("%s %s", Ident(c.Name), sqlDir))
		sorted = true
	}

	if filter.WithPagination {
		// без явной сортировки страницы нестабильны
		if !sorted {
			for _, k := range t.PrimaryKey {
				builder = builder.OrderBy(Ident(k))
			}
		}
		if filter.Limit > 0 {
			builder = builder.Limit(uint64(filter.Limit))
		}
		if filter.Offset > 0 {
			builder = builder.Offset(uint64(filter.Offset))
		}
	}

	return builder, nil
}

// BuildSelectAll выбирает все колонки в порядке дескриптора.
func BuildSelectAll(t *schema.Table, filter types.Filter) (string, []interface{}, error) {
	builder, err := ApplyListParams(psql.Select(columnList(t)...).From(Ident(t.Name)), t, filter)
	if err != nil {
		return "", nil, err
	}
	return builder.ToSql()
}

func BuildCount(t *schema.Table, filter types.Filter) (string, []interface{}, error) {
	countFilter := types.Filter{Filter: filter.Filter}
	builder, err := ApplyListParams(psql.Select("COUNT(*)").From(Ident(t.Name)), t, countFilter)
	if err != nil {
		return "", nil, err
	}
	return builder.ToSql()
}

func BuildSelectOne(t *schema.Table, key map[string]any) (string, []interface{}, error) {
	where, err := keyWhere(t, key)
	if err != nil {
		return "", nil, err
	}
	return psql.Select(columnList(t)...).From(Ident(t.Name)).Where(where).ToSql()
}

func BuildInsert(t *schema.Table, values map[string]any) (string, []interface{}, error) {
	if len(values) == 0 {
		return "", nil, apperrors.ErrRequiredField
	}
	if err := checkColumns(t, values); err != nil {
		return "", nil, err
	}
	cols := make([]string, 0, len(values))
	args := make([]interface{}, 0, len(values))
	for _, c := range t.Columns {
		if v, ok := values[c.Name]; ok {
			cols = append(cols, Ident(c.Name))
			args = append(args, v)
		}
	}
	return psql.Insert(Ident(t.Name)).Columns(cols...).Values(args...).ToSql()
}

// BuildUpdate меняет только переданные колонки, строка адресуется полным первичным ключом.
func BuildUpdate(t *schema.Table, key map[string]any, values map[string]any) (string, []interface{}, error) {
	if len(values) == 0 {
		return "", nil, apperrors.ErrNothingToUpdate
	}
	if err := checkColumns(t, values); err != nil {
		return "", nil, err
	}
	where, err := keyWhere(t, key)
	if err != nil {
		return "", nil, err
	}
	builder := psql.Update(Ident(t.Name))
	for _, c := range t.Columns {
		if v, ok := values[c.Name]; ok {
			builder = builder.Set(Ident(c.Name), v)
		}
	}
	return builder.Where(where).ToSql()
}

func BuildDelete(t *schema.Table, key map[string]any) (string, []interface{}, error) {
	where, err := keyWhere(t, key)
	if err != nil {
		return "", nil, err
	}
	return psql.Delete(Ident(t.Name)).Where(where).ToSql()
}
