package types

// TableData - содержимое таблицы вместе с описанием колонок для построения формы.
type TableData struct {
	Table      string           `json:"table"`
	Columns    []string         `json:"columns"`
	PrimaryKey []string         `json:"primary_key"`
	Rows       []map[string]any `json:"rows"`
	TotalCount uint64           `json:"total_count"`
}
