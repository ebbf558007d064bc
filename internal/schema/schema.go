// Package schema - явное описание таблиц банковской схемы.
// Дескриптор загружается один раз при старте и используется для построения форм,
// предварительной проверки значений и генерации SQL.
package schema

import (
	"sort"
)

type ColumnType string

const (
	Integer ColumnType = "integer"
	Decimal ColumnType = "decimal"
	Date    ColumnType = "date"
	Time    ColumnType = "time"
	Varchar ColumnType = "varchar"
	Char    ColumnType = "char"
	Text    ColumnType = "text"
)

type Column struct {
	Name     string     `json:"name"`
	Type     ColumnType `json:"type"`
	Nullable bool       `json:"nullable"`
	MaxLen   int        `json:"max_len,omitempty"`
	Enum     []string   `json:"enum,omitempty"`
	// Rule - тег validator/v10, который сервис применяет к непустому значению.
	Rule string `json:"rule,omitempty"`
}

type Table struct {
	Name       string   `json:"name"`
	Columns    []Column `json:"columns"`
	PrimaryKey []string `json:"primary_key"`
}

func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

func (t *Table) IsKey(name string) bool {
	for _, k := range t.PrimaryKey {
		if k == name {
			return true
		}
	}
	return false
}

// KeyColumns возвращает колонки первичного ключа в порядке объявления ключа.
func (t *Table) KeyColumns() []Column {
	cols := make([]Column, 0, len(t.PrimaryKey))
	for _, k := range t.PrimaryKey {
		if c, ok := t.Column(k); ok {
			cols = append(cols, *c)
		}
	}
	return cols
}

var registry = func() map[string]*Table {
	m := make(map[string]*Table, len(catalog))
	for i := range catalog {
		m[catalog[i].Name] = &catalog[i]
	}
	return m
}()

// Lookup ищет таблицу в списке разрешённых.
func Lookup(name string) (*Table, bool) {
	t, ok := registry[name]
	return t, ok
}

func IsAllowed(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names - отсортированный список разрешённых таблиц.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Catalog возвращает все таблицы в алфавитном порядке.
func Catalog() []Table {
	out := make([]Table, 0, len(catalog))
	for _, name := range Names() {
		out = append(out, *registry[name])
	}
	return out
}

// MustLookup используется там, где имя таблицы задано в коде.
func MustLookup(name string) *Table {
	t, ok := Lookup(name)
	if !ok {
		panic("schema: неизвестная таблица " + name)
	}
	return t
}

func integer(name string) Column { return Column{Name: name, Type: Integer} }

func money(name string) Column { return Column{Name: name, Type: Decimal} }

func date(name string) Column { return Column{Name: name, Type: Date, Rule: "iso_date"} }

func clock(name string) Column { return Column{Name: name, Type: Time, Rule: "clock_time"} }

func text(name string) Column { return Column{Name: name, Type: Text} }

func varchar(name string, n int) Column { return Column{Name: name, Type: Varchar, MaxLen: n} }

func char(name string, n int) Column { return Column{Name: name, Type: Char, MaxLen: n} }

func (c Column) null() Column {
	c.Nullable = true
	return c
}

func (c Column) oneOf(values ...string) Column {
	c.Enum = values
	return c
}

func (c Column) rule(tag string) Column {
	c.Rule = tag
	return c
}
