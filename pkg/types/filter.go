package types

// Filter - параметры выборки строк таблицы.
// Ключи Filter и Sort - имена колонок из дескриптора схемы.
type Filter struct {
	Filter         map[string]interface{} `json:"filter,omitempty"`
	Sort           map[string]string      `json:"sort,omitempty"`
	Limit          int                    `json:"limit"`
	Offset         int                    `json:"offset"`
	Page           int                    `json:"page"`
	WithPagination bool                   `json:"with_pagination"`
}

// http://localhost:8080/api/crud/tables/loan/rows?filter[Status]=Approved&sort=-Amount&limit=20&page=2&withPagination=true
