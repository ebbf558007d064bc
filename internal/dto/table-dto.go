package dto

import "bank-dashboard/internal/schema"

// RowDTO - тело POST: значения колонок в виде строк, как их вводят в форму.
type RowDTO struct {
	Values map[string]string `json:"values" validate:"required,min=1"`
}

// UpdateRowDTO - ключ строки (её прежние значения ключевых колонок) и новые значения.
type UpdateRowDTO struct {
	Key    map[string]string `json:"key" validate:"required,min=1"`
	Values map[string]string `json:"values" validate:"required,min=1"`
}

type TableListDTO struct {
	Tables []schema.Table `json:"tables"`
}
