package utils

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
)

// ContextWithTimeout ограничивает время одного запроса к базе.
// Нулевой timeout оставляет контекст запроса как есть.
func ContextWithTimeout(ctx echo.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	reqCtx := ctx.Request().Context()
	if timeout <= 0 {
		return context.WithCancel(reqCtx)
	}
	return context.WithTimeout(reqCtx, timeout)
}
