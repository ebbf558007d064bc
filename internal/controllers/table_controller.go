package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"bank-dashboard/internal/dto"
	"bank-dashboard/internal/schema"
	"bank-dashboard/internal/services"
	apperrors "bank-dashboard/pkg/errors"
	"bank-dashboard/pkg/types"
	"bank-dashboard/pkg/utils"
)

type TableController struct {
	tableService services.TableServiceInterface
	timeout      time.Duration
	logger       *zap.Logger
}

func NewTableController(tableService services.TableServiceInterface, timeout time.Duration, logger *zap.Logger) *TableController {
	return &TableController{tableService: tableService, timeout: timeout, logger: logger}
}

func (c *TableController) ListTables(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, dto.TableListDTO{Tables: c.tableService.ListTables()}, "Список таблиц получен", http.StatusOK)
}

func (c *TableController) ListRows(ctx echo.Context) error {
	reqCtx, cancel := utils.ContextWithTimeout(ctx, c.timeout)
	defer cancel()

	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	data, err := c.tableService.ListRows(reqCtx, ctx.Param("table"), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if filter.WithPagination {
		return utils.PaginatedResponse(ctx, data, "Строки таблицы получены", data.TotalCount, filter)
	}
	return utils.SuccessResponse(ctx, data, "Строки таблицы получены", http.StatusOK)
}

// keyFromRequest берёт значения ключа из query-параметров по именам ключевых колонок.
func keyFromRequest(ctx echo.Context) (map[string]string, error) {
	t, ok := schema.Lookup(ctx.Param("table"))
	if !ok {
		return nil, apperrors.ErrTableNotAllowed
	}
	key := utils.KeyFromQuery(ctx.QueryParams(), t.PrimaryKey)
	if len(key) == 0 {
		return nil, apperrors.ErrEmptyKey
	}
	return key, nil
}

// GetRow отдаёт текущие значения строки, их форма редактирования подставляет по умолчанию.
func (c *TableController) GetRow(ctx echo.Context) error {
	reqCtx, cancel := utils.ContextWithTimeout(ctx, c.timeout)
	defer cancel()

	key, err := keyFromRequest(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	row, err := c.tableService.GetRow(reqCtx, ctx.Param("table"), key)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, row, "Строка найдена", http.StatusOK)
}

func (c *TableController) CreateRow(ctx echo.Context) error {
	reqCtx, cancel := utils.ContextWithTimeout(ctx, c.timeout)
	defer cancel()

	var payload dto.RowDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.tableService.CreateRow(reqCtx, ctx.Param("table"), payload.Values); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Запись успешно добавлена", http.StatusCreated)
}

func (c *TableController) UpdateRow(ctx echo.Context) error {
	reqCtx, cancel := utils.ContextWithTimeout(ctx, c.timeout)
	defer cancel()

	var payload dto.UpdateRowDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	row, err := c.tableService.UpdateRow(reqCtx, ctx.Param("table"), payload.Key, payload.Values)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, row, "Запись успешно обновлена", http.StatusOK)
}

func (c *TableController) DeleteRow(ctx echo.Context) error {
	reqCtx, cancel := utils.ContextWithTimeout(ctx, c.timeout)
	defer cancel()

	key, err := keyFromRequest(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.tableService.DeleteRow(reqCtx, ctx.Param("table"), key); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Запись успешно удалена", http.StatusOK)
}

func (c *TableController) ExportRows(ctx echo.Context) error {
	reqCtx, cancel := utils.ContextWithTimeout(ctx, c.timeout)
	defer cancel()

	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	filter.WithPagination = false

	data, err := c.tableService.ListRows(reqCtx, ctx.Param("table"), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	f, err := buildWorkbook(data.Table, data.Columns, tableRows(data))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	c.logger.Debug("Выгрузка таблицы в XLSX", zap.String("table", data.Table), zap.Int("rows", len(data.Rows)))
	return respondWithXLSX(ctx, data.Table, f)
}

func tableRows(data *types.TableData) [][]interface{} {
	out := make([][]interface{}, len(data.Rows))
	for i, row := range data.Rows {
		cells := make([]interface{}, len(data.Columns))
		for j, col := range data.Columns {
			cells[j] = cellValue(row[col])
		}
		out[i] = cells
	}
	return out
}
