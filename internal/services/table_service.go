package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"bank-dashboard/internal/repositories"
	"bank-dashboard/internal/schema"
	apperrors "bank-dashboard/pkg/errors"
	"bank-dashboard/pkg/metrics"
	"bank-dashboard/pkg/types"
)

// ValueValidator проверяет одно значение по тегу validator/v10.
type ValueValidator interface {
	Var(value interface{}, tag string) error
}

type TableServiceInterface interface {
	ListTables() []schema.Table
	ListRows(ctx context.Context, table string, filter types.Filter) (*types.TableData, error)
	GetRow(ctx context.Context, table string, key map[string]string) (map[string]any, error)
	CreateRow(ctx context.Context, table string, values map[string]string) error
	UpdateRow(ctx context.Context, table string, key map[string]string, values map[string]string) (map[string]any, error)
	DeleteRow(ctx context.Context, table string, key map[string]string) error
}

type TableService struct {
	repo      repositories.TableRepositoryInterface
	validator ValueValidator
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

func NewTableService(
	repo repositories.TableRepositoryInterface,
	validator ValueValidator,
	m *metrics.Metrics,
	logger *zap.Logger,
) TableServiceInterface {
	return &TableService{repo: repo, validator: validator, metrics: m, logger: logger}
}

func (s *TableService) ListTables() []schema.Table {
	return schema.Catalog()
}

// lookup - проверка по списку разрешённых таблиц до построения любого SQL.
func lookup(table string) (*schema.Table, error) {
	t, ok := schema.Lookup(table)
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrTableNotAllowed, table)
	}
	return t, nil
}

func unknownColumns(t *schema.Table, values map[string]string) error {
	var unknown []string
	for name := range values {
		if _, ok := t.Column(name); !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return fmt.Errorf("%w: %s.%s", apperrors.ErrUnknownColumn, t.Name, strings.Join(unknown, ", "))
}

func (s *TableService) parseValue(c *schema.Column, raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	v, err := c.Parse(raw)
	if err != nil {
		return nil, err
	}
	if raw != "" && c.Rule != "" && s.validator != nil {
		if err := s.validator.Var(raw, c.Rule); err != nil {
			return nil, apperrors.NewInvalidInputError("Значение %q не подходит для %s", raw, c.Name)
		}
	}
	return v, nil
}

// parseKey требует все колонки первичного ключа и ничего кроме них.
func (s *TableService) parseKey(t *schema.Table, raw map[string]string) (map[string]any, error) {
	if err := unknownColumns(t, raw); err != nil {
		return nil, err
	}
	key := make(map[string]any, len(t.PrimaryKey))
	for name := range raw {
		if !t.IsKey(name) {
			return nil, fmt.Errorf("%w: %s не входит в первичный ключ %s", apperrors.ErrUnknownColumn, name, t.Name)
		}
	}
	for _, c := range t.KeyColumns() {
		value := strings.TrimSpace(raw[c.Name])
		if value == "" {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrEmptyKey, c.Name)
		}
		v, err := s.parseValue(&c, value)
		if err != nil {
			return nil, err
		}
		key[c.Name] = v
	}
	return key, nil
}

// parseFilter разбирает значения фильтра по типам колонок. Пустые значения игнорируются.
func (s *TableService) parseFilter(t *schema.Table, filter types.Filter) (types.Filter, error) {
	parsed := filter
	parsed.Filter = make(map[string]interface{}, len(filter.Filter))
	for name, raw := range filter.Filter {
		c, ok := t.Column(name)
		if !ok {
			return filter, fmt.Errorf("%w: %s.%s", apperrors.ErrUnknownColumn, t.Name, name)
		}
		str := strings.TrimSpace(fmt.Sprint(raw))
		if str == "" {
			continue
		}
		v, err := c.Parse(str)
		if err != nil {
			return filter, err
		}
		parsed.Filter[name] = v
	}
	return parsed, nil
}

func (s *TableService) ListRows(ctx context.Context, table string, filter types.Filter) (*types.TableData, error) {
	t, err := lookup(table)
	if err != nil {
		return nil, err
	}
	filter, err = s.parseFilter(t, filter)
	if err != nil {
		return nil, err
	}

	rows, total, err := s.repo.ListRows(ctx, t, filter)
	s.metrics.CRUD(t.Name, "read", err)
	if err != nil {
		s.logger.Error("не удалось прочитать таблицу", zap.String("table", t.Name), zap.Error(err))
		return nil, err
	}

	return &types.TableData{
		Table:      t.Name,
		Columns:    t.ColumnNames(),
		PrimaryKey: t.PrimaryKey,
		Rows:       rows,
		TotalCount: total,
	}, nil
}

// GetRow возвращает текущую строку: её значения служат значениями по умолчанию в форме правки.
func (s *TableService) GetRow(ctx context.Context, table string, rawKey map[string]string) (map[string]any, error) {
	t, err := lookup(table)
	if err != nil {
		return nil, err
	}
	key, err := s.parseKey(t, rawKey)
	if err != nil {
		return nil, err
	}
	return s.repo.FindRow(ctx, t, key)
}

func (s *TableService) CreateRow(ctx context.Context, table string, raw map[string]string) (err error) {
	t, err := lookup(table)
	if err != nil {
		return err
	}
	defer func() { s.metrics.CRUD(t.Name, "create", err) }()

	if err := unknownColumns(t, raw); err != nil {
		return err
	}

	var missing []string
	for _, c := range t.Columns {
		if !c.Nullable && strings.TrimSpace(raw[c.Name]) == "" {
			missing = append(missing, c.Name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrRequiredField, strings.Join(missing, ", "))
	}

	values := make(map[string]any, len(raw))
	for i := range t.Columns {
		c := &t.Columns[i]
		value, present := raw[c.Name]
		if !present {
			continue
		}
		v, err := s.parseValue(c, value)
		if err != nil {
			return err
		}
		values[c.Name] = v
	}

	if err := s.repo.InsertRow(ctx, t, values); err != nil {
		s.logger.Warn("запись не создана", zap.String("table", t.Name), zap.Error(err))
		return err
	}
	s.logger.Info("запись создана", zap.String("table", t.Name))
	return nil
}

// UpdateRow сначала читает строку по ключу: если её нет, UPDATE не выполняется.
// Меняются только переданные колонки. Возвращает строку после изменения.
func (s *TableService) UpdateRow(ctx context.Context, table string, rawKey map[string]string, raw map[string]string) (row map[string]any, err error) {
	t, err := lookup(table)
	if err != nil {
		return nil, err
	}
	defer func() { s.metrics.CRUD(t.Name, "update", err) }()

	key, err := s.parseKey(t, rawKey)
	if err != nil {
		return nil, err
	}
	if err := unknownColumns(t, raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, apperrors.ErrNothingToUpdate
	}

	if _, err := s.repo.FindRow(ctx, t, key); err != nil {
		return nil, err
	}

	values := make(map[string]any, len(raw))
	for i := range t.Columns {
		c := &t.Columns[i]
		value, present := raw[c.Name]
		if !present {
			continue
		}
		v, err := s.parseValue(c, value)
		if err != nil {
			return nil, err
		}
		values[c.Name] = v
	}

	if err := s.repo.UpdateRow(ctx, t, key, values); err != nil {
		s.logger.Warn("запись не обновлена", zap.String("table", t.Name), zap.Error(err))
		return nil, err
	}

	// ключ мог измениться вместе с остальными колонками
	newKey := make(map[string]any, len(key))
	for k, v := range key {
		newKey[k] = v
		if nv, ok := values[k]; ok {
			newKey[k] = nv
		}
	}
	s.logger.Info("запись обновлена", zap.String("table", t.Name))
	return s.repo.FindRow(ctx, t, newKey)
}

func (s *TableService) DeleteRow(ctx context.Context, table string, rawKey map[string]string) (err error) {
	t, err := lookup(table)
	if err != nil {
		return err
	}
	defer func() { s.metrics.CRUD(t.Name, "delete", err) }()

	key, err := s.parseKey(t, rawKey)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteRow(ctx, t, key); err != nil {
		s.logger.Warn("запись не удалена", zap.String("table", t.Name), zap.Error(err))
		return err
	}
	s.logger.Info("запись удалена", zap.String("table", t.Name))
	return nil
}
