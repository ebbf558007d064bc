package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"bank-dashboard/internal/services"
	"bank-dashboard/pkg/types"
	"bank-dashboard/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	branchMapService services.BranchMapServiceInterface
	timeout          time.Duration
	logger           *zap.Logger
}

func NewDashboardController(
	ds services.DashboardServiceInterface,
	bms services.BranchMapServiceInterface,
	timeout time.Duration,
	logger *zap.Logger,
) *DashboardController {
	return &DashboardController{
		dashboardService: ds,
		branchMapService: bms,
		timeout:          timeout,
		logger:           logger,
	}
}

func (ctrl *DashboardController) Catalog(c echo.Context) error {
	return utils.SuccessResponse(c, ctrl.dashboardService.Catalog(), "Список визуализаций получен", http.StatusOK)
}

// GetChart отдаёт данные графика. Для branch-map возвращается карта отделений;
// геокодирование идёт последовательно, поэтому таймаут запроса к ней не применяется.
func (ctrl *DashboardController) GetChart(c echo.Context) error {
	key := c.Param("key")
	if key == services.BranchMapKey {
		refresh, _ := strconv.ParseBool(c.QueryParam("refresh"))
		result, err := ctrl.branchMapService.GetBranchMap(c.Request().Context(), refresh)
		if err != nil {
			return utils.ErrorResponse(c, err, ctrl.logger)
		}
		return utils.SuccessResponse(c, result, "Карта отделений построена", http.StatusOK)
	}

	reqCtx, cancel := utils.ContextWithTimeout(c, ctrl.timeout)
	defer cancel()

	chart, err := ctrl.dashboardService.GetChart(reqCtx, key)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	msg := "Данные визуализации получены"
	if chart.Empty() {
		msg = "Нет данных для визуализации"
	}
	return utils.SuccessResponse(c, chart, msg, http.StatusOK)
}

func (ctrl *DashboardController) ExportChart(c echo.Context) error {
	key := c.Param("key")
	var (
		headers []string
		rows    [][]interface{}
		title   = key
	)

	if key == services.BranchMapKey {
		result, err := ctrl.branchMapService.GetBranchMap(c.Request().Context(), false)
		if err != nil {
			return utils.ErrorResponse(c, err, ctrl.logger)
		}
		headers, rows = mapRows(result)
		title = "Geographical Distribution"
	} else {
		reqCtx, cancel := utils.ContextWithTimeout(c, ctrl.timeout)
		defer cancel()

		chart, err := ctrl.dashboardService.GetChart(reqCtx, key)
		if err != nil {
			return utils.ErrorResponse(c, err, ctrl.logger)
		}
		headers, rows = chartRows(chart)
		title = chart.Title
	}

	f, err := buildWorkbook(title, headers, rows)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return respondWithXLSX(c, key, f)
}

func chartRows(chart *types.Chart) ([]string, [][]interface{}) {
	label := chart.XLabel
	if label == "" {
		label = "Label"
	}
	headers := []string{label}
	for _, s := range chart.Series {
		headers = append(headers, s.Name)
	}

	rows := make([][]interface{}, len(chart.Labels))
	for i, l := range chart.Labels {
		row := []interface{}{l}
		for _, s := range chart.Series {
			row = append(row, s.Data[i])
		}
		rows[i] = row
	}
	return headers, rows
}

func mapRows(m *types.BranchMap) ([]string, [][]interface{}) {
	headers := []string{"BranchID", "Branch", "Address", "ZipCode", "Lat", "Lon"}
	rows := make([][]interface{}, len(m.Points))
	for i, p := range m.Points {
		rows[i] = []interface{}{p.BranchID, p.BranchName, p.FullAddress, p.ZipCode, p.Lat, p.Lon}
	}
	return headers, rows
}
