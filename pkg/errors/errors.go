package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// JWT и токены
	ErrInvalidSigningMethod = fmt.Errorf("неверный метод подписи токена")
	ErrInvalidToken         = fmt.Errorf("недопустимый токен")
	ErrTokenExpired         = fmt.Errorf("срок действия токена истёк")

	// Авторизация
	ErrEmptyAuthHeader    = fmt.Errorf("заголовок авторизации отсутствует")
	ErrInvalidAuthHeader  = fmt.Errorf("неверный формат заголовка авторизации")
	ErrInvalidCredentials = fmt.Errorf("неверные учётные данные")

	// Таблицы и колонки
	ErrTableNotAllowed = fmt.Errorf("таблица не входит в список разрешённых")
	ErrUnknownColumn   = fmt.Errorf("неизвестная колонка")
	ErrRequiredField   = fmt.Errorf("все обязательные поля должны быть заполнены")
	ErrEmptyKey        = fmt.Errorf("не передан первичный ключ записи")
	ErrNothingToUpdate = fmt.Errorf("нет полей для обновления")

	// Общие
	ErrNotFound   = fmt.Errorf("запись не найдена")
	ErrBadRequest = fmt.Errorf("неверный запрос")
	ErrNoChart    = fmt.Errorf("визуализация не найдена")
)

// Кастомные типы ошибок
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HttpError - ошибка, которую можно отдать клиенту как есть.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

func NewBadRequestError(message string) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: message}
}

// StatusOf подбирает HTTP-код для известных ошибок.
func StatusOf(err error) int {
	var httpErr *HttpError
	var inputErr *InvalidInputError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.As(err, &inputErr):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrNoChart):
		return http.StatusNotFound
	case errors.Is(err, ErrTableNotAllowed),
		errors.Is(err, ErrUnknownColumn),
		errors.Is(err, ErrRequiredField),
		errors.Is(err, ErrEmptyKey),
		errors.Is(err, ErrNothingToUpdate),
		errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrEmptyAuthHeader),
		errors.Is(err, ErrInvalidAuthHeader),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrInvalidSigningMethod):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
