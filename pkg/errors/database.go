package errors

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// Коды SQLSTATE, которые показываем пользователю как есть.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
	pgInvalidText         = "22P02"
	pgInvalidDatetime     = "22007"
	pgDatetimeOverflow    = "22008"
	pgNumericOverflow     = "22003"
	pgStringTooLong       = "22001"
)

// FromDatabase превращает ошибку ограничения БД в HttpError с исходным сообщением.
// Остальные ошибки возвращаются без изменений.
func FromDatabase(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	details := map[string]string{
		"code":       pgErr.Code,
		"constraint": pgErr.ConstraintName,
		"column":     pgErr.ColumnName,
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		return NewHttpError(http.StatusConflict, "Запись с таким ключом уже существует: "+pgErr.Message, err, details)
	case pgForeignKeyViolation:
		return NewHttpError(http.StatusConflict, "Нарушена ссылочная целостность: "+pgErr.Message, err, details)
	case pgCheckViolation:
		return NewHttpError(http.StatusBadRequest, "Значение не проходит ограничение CHECK: "+pgErr.Message, err, details)
	case pgNotNullViolation:
		return NewHttpError(http.StatusBadRequest, "Обязательное поле не заполнено: "+pgErr.Message, err, details)
	case pgInvalidText, pgInvalidDatetime, pgDatetimeOverflow, pgNumericOverflow, pgStringTooLong:
		return NewHttpError(http.StatusBadRequest, "Некорректное значение: "+pgErr.Message, err, details)
	}
	return NewHttpError(http.StatusInternalServerError, "Ошибка базы данных: "+pgErr.Message, err, details)
}
