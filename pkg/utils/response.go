package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "bank-dashboard/pkg/errors"
	"bank-dashboard/pkg/types"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HTTPResponse{Status: true, Body: body, Message: message})
}

// PaginatedResponse добавляет к ответу сведения о странице.
func PaginatedResponse(ctx echo.Context, body interface{}, message string, total uint64, filter types.Filter) error {
	return ctx.JSON(http.StatusOK, &types.ResponsePagination{
		Status:     true,
		Body:       body,
		Message:    message,
		TotalCount: int(total),
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: TotalPages(total, filter.Limit),
	})
}

// ErrorResponse отдаёт любую ошибку в виде сообщения. Процесс при этом не падает:
// следующий запрос обрабатывается как обычно.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Warn("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
			)
		}
		return c.JSON(httpErr.Code, &HTTPResponse{Status: false, Message: httpErr.Message, Body: httpErr.Details})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		msgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("Поле '%s' не прошло проверку '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, &HTTPResponse{Status: false, Message: "Ошибка валидации: " + strings.Join(msgs, "; ")})
	}

	code := apperrors.StatusOf(err)
	if code >= http.StatusInternalServerError {
		logger.Error("Unexpected Error", zap.Error(err))
		return c.JSON(code, &HTTPResponse{Status: false, Message: "Внутренняя ошибка сервера"})
	}
	return c.JSON(code, &HTTPResponse{Status: false, Message: err.Error()})
}
