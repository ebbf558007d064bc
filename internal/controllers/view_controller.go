package controllers

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"bank-dashboard/internal/dto"
	apperrors "bank-dashboard/pkg/errors"
	"bank-dashboard/pkg/utils"
)

type ViewController struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewViewController(pool *pgxpool.Pool, logger *zap.Logger) *ViewController {
	return &ViewController{pool: pool, logger: logger}
}

func (c *ViewController) Views(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, dto.Views, "Разделы дашборда", http.StatusOK)
}

// Health проверяет процесс и доступность базы.
func (c *ViewController) Health(ctx echo.Context) error {
	if c.pool != nil {
		if err := c.pool.Ping(ctx.Request().Context()); err != nil {
			return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusServiceUnavailable, "База данных недоступна", err, nil), c.logger)
		}
	}
	return utils.SuccessResponse(ctx, map[string]string{"status": "ok"}, "OK", http.StatusOK)
}
