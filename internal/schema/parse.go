package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	apperrors "bank-dashboard/pkg/errors"
	"bank-dashboard/pkg/validation"
)

const clockLayout = "15:04:05"

// Parse превращает строку из формы в значение для связанного параметра.
// Пустая строка даёт nil для nullable-колонки и ErrRequiredField для обязательной.
// Decimal и time передаются строкой в каноническом виде: pgx отправляет строки
// в текстовом формате, и приведение типа выполняет сама БД.
func (c *Column) Parse(raw string) (any, error) {
	if raw == "" {
		if c.Nullable {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s", apperrors.ErrRequiredField, c.Name)
	}

	if len(c.Enum) > 0 && !c.allows(raw) {
		return nil, apperrors.NewInvalidInputError("Недопустимое значение %q для %s. Разрешено: %s", raw, c.Name, strings.Join(c.Enum, ", "))
	}

	switch c.Type {
	case Integer:
		// все целые колонки схемы - INTEGER (int4)
		v, err := strconv.ParseInt(raw, 10, 32)
		if errors.Is(err, strconv.ErrRange) {
			return nil, apperrors.NewInvalidInputError("Значение %s вне диапазона INTEGER: %q", c.Name, raw)
		}
		if err != nil {
			return nil, apperrors.NewInvalidInputError("Колонка %s ожидает целое число, получено %q", c.Name, raw)
		}
		return v, nil
	case Decimal:
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("Колонка %s ожидает число, получено %q", c.Name, raw)
		}
		return d.String(), nil
	case Date:
		t, err := time.Parse(validation.DateLayout, raw)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("Неверный формат даты для %s. Используйте YYYY-MM-DD.", c.Name)
		}
		return t, nil
	case Time:
		t, err := parseClock(raw)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("Неверный формат времени для %s. Используйте HH:MM или HH:MM:SS.", c.Name)
		}
		return t.Format(clockLayout), nil
	default:
		if c.MaxLen > 0 && utf8.RuneCountInString(raw) > c.MaxLen {
			return nil, apperrors.NewInvalidInputError("Значение %s длиннее %d символов", c.Name, c.MaxLen)
		}
		return raw, nil
	}
}

func (c *Column) allows(v string) bool {
	for _, e := range c.Enum {
		if e == v {
			return true
		}
	}
	return false
}

func parseClock(raw string) (time.Time, error) {
	if t, err := time.Parse(clockLayout, raw); err == nil {
		return t, nil
	}
	return time.Parse("15:04", raw)
}
