package services

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"bank-dashboard/internal/repositories"
	apperrors "bank-dashboard/pkg/errors"
	"bank-dashboard/pkg/metrics"
	"bank-dashboard/pkg/types"
)

const BranchMapKey = "branch-map"

type chartDef struct {
	info   types.ChartInfo
	xLabel string
	yLabel string
	series []string
	fetch  func(ctx context.Context) ([]repositories.AggregateRow, error)
}

type DashboardServiceInterface interface {
	Catalog() []types.ChartInfo
	GetChart(ctx context.Context, key string) (*types.Chart, error)
}

type DashboardService struct {
	repo    repositories.DashboardRepositoryInterface
	charts  []chartDef
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewDashboardService(repo repositories.DashboardRepositoryInterface, m *metrics.Metrics, logger *zap.Logger) DashboardServiceInterface {
	s := &DashboardService{repo: repo, metrics: m, logger: logger}
	s.charts = []chartDef{
		{
			info:   types.ChartInfo{Key: "account-types", Title: "Account Types Distribution", Kind: types.ChartPie},
			series: []string{"Account Types"},
			fetch:  repo.GetAccountTypes,
		},
		{
			info:   types.ChartInfo{Key: "age-distribution", Title: "Age Distribution", Kind: types.ChartBar},
			xLabel: "Age", yLabel: "Number of Customers",
			series: []string{"Number of Customers"},
			fetch:  repo.GetAgeDistribution,
		},
		{
			info:   types.ChartInfo{Key: "customer-growth", Title: "Customer Growth Over Time", Kind: types.ChartLine},
			xLabel: "Year", yLabel: "New Customers",
			series: []string{"New Customers"},
			fetch:  repo.GetCustomerGrowth,
		},
		{
			info:   types.ChartInfo{Key: "branch-assets", Title: "Branch Assets Comparison", Kind: types.ChartBar},
			xLabel: "Branch", yLabel: "Total Balance",
			series: []string{"Total Balance"},
			fetch:  repo.GetBranchAssets,
		},
		{
			info:   types.ChartInfo{Key: "loan-types", Title: "Loan Distribution by Type", Kind: types.ChartBar},
			xLabel: "Loan Type", yLabel: "Number of Loans",
			series: []string{"Number of Loans", "Total Amount"},
			fetch:  repo.GetLoanTypes,
		},
		{
			info:   types.ChartInfo{Key: "loan-status", Title: "Loan Status Breakdown", Kind: types.ChartPie},
			series: []string{"Loan Status"},
			fetch:  repo.GetLoanStatuses,
		},
		{
			info:   types.ChartInfo{Key: "transaction-volume", Title: "Transaction Volume Over Time", Kind: types.ChartLine},
			xLabel: "Month", yLabel: "Number of Transactions",
			series: []string{"Number of Transactions"},
			fetch:  repo.GetTransactionVolume,
		},
		{
			info: types.ChartInfo{Key: BranchMapKey, Title: "Geographical Distribution", Kind: types.ChartMap},
		},
		{
			info:   types.ChartInfo{Key: "investment-returns", Title: "Investment Returns", Kind: types.ChartLine},
			xLabel: "Period", yLabel: "Rate (%)",
			series: []string{"Average Return Rate", "Average Interest Rate"},
			fetch:  s.investmentReturns,
		},
		{
			info:   types.ChartInfo{Key: "investment-portfolio", Title: "Investment Portfolio Composition", Kind: types.ChartBar},
			xLabel: "Investment Type", yLabel: "Total Amount",
			series: []string{"Total Amount"},
			fetch:  repo.GetInvestmentPortfolio,
		},
	}
	return s
}

// Catalog - все визуализации в порядке меню.
func (s *DashboardService) Catalog() []types.ChartInfo {
	out := make([]types.ChartInfo, len(s.charts))
	for i, c := range s.charts {
		out[i] = c.info
	}
	return out
}

// GetChart строит график по ключу. Карта отделений строится отдельным сервисом.
func (s *DashboardService) GetChart(ctx context.Context, key string) (*types.Chart, error) {
	var def *chartDef
	for i := range s.charts {
		if s.charts[i].info.Key == key && s.charts[i].fetch != nil {
			def = &s.charts[i]
			break
		}
	}
	if def == nil {
		return nil, apperrors.ErrNoChart
	}

	rows, err := def.fetch(ctx)
	s.metrics.Chart(key, err)
	if err != nil {
		s.logger.Error("ошибка построения визуализации", zap.String("chart", key), zap.Error(err))
		return nil, err
	}
	return toChart(def, rows), nil
}

func toChart(def *chartDef, rows []repositories.AggregateRow) *types.Chart {
	chart := &types.Chart{
		Key:    def.info.Key,
		Title:  def.info.Title,
		Kind:   def.info.Kind,
		XLabel: def.xLabel,
		YLabel: def.yLabel,
		Labels: make([]string, len(rows)),
		Series: make([]types.Series, len(def.series)),
	}
	for i, name := range def.series {
		chart.Series[i] = types.Series{Name: name, Data: make([]float64, len(rows))}
	}
	for r, row := range rows {
		chart.Labels[r] = row.Label
		for i := range chart.Series {
			if i < len(row.Values) {
				chart.Series[i].Data[r] = row.Values[i]
			}
		}
	}
	return chart
}

// investmentReturns объединяет помесячные средние ставки двух таблиц по периоду.
// Период, которого нет в одной из таблиц, получает 0.
func (s *DashboardService) investmentReturns(ctx context.Context) ([]repositories.AggregateRow, error) {
	variable, err := s.repo.GetVariableReturns(ctx)
	if err != nil {
		return nil, err
	}
	fixed, err := s.repo.GetFixedReturns(ctx)
	if err != nil {
		return nil, err
	}
	return mergeByLabel(variable, fixed), nil
}

func mergeByLabel(left, right []repositories.AggregateRow) []repositories.AggregateRow {
	merged := make(map[string][]float64, len(left)+len(right))
	for _, row := range left {
		merged[row.Label] = []float64{first(row.Values), 0}
	}
	for _, row := range right {
		v, ok := merged[row.Label]
		if !ok {
			v = []float64{0, 0}
		}
		v[1] = first(row.Values)
		merged[row.Label] = v
	}

	labels := make([]string, 0, len(merged))
	for label := range merged {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	out := make([]repositories.AggregateRow, len(labels))
	for i, label := range labels {
		out[i] = repositories.AggregateRow{Label: label, Values: merged[label]}
	}
	return out
}

func first(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return values[0]
}
