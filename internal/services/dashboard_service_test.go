package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bank-dashboard/internal/repositories"
	apperrors "bank-dashboard/pkg/errors"
	"bank-dashboard/pkg/metrics"
	"bank-dashboard/pkg/types"
)

type fakeDashboardRepo struct {
	rows map[string][]repositories.AggregateRow
	err  error
}

func (f *fakeDashboardRepo) get(name string) ([]repositories.AggregateRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[name], nil
}

func (f *fakeDashboardRepo) GetAccountTypes(context.Context) ([]repositories.AggregateRow, error) {
	return f.get("account-types")
}
func (f *fakeDashboardRepo) GetAgeDistribution(context.Context) ([]repositories.AggregateRow, error) {
	return f.get("age-distribution")
}
func (f *fakeDashboardRepo) GetCustomerGrowth(context.Context) ([]repositories.AggregateRow, error) {
	return f.get("customer-growth")
}
func (f *fakeDashboardRepo) GetBranchAssets(context.Context) ([]repositories.AggregateRow, error) {
	return f.get("branch-assets")
}
func (f *fakeDashboardRepo) GetLoanTypes(context.Context) ([]repositories.AggregateRow, error) {
	return f.get("loan-types")
}
func (f *fakeDashboardRepo) GetLoanStatuses(context.Context) ([]repositories.AggregateRow, error) {
	return f.get("loan-status")
}
func (f *fakeDashboardRepo) GetTransactionVolume(context.Context) ([]repositories.AggregateRow, error) {
	return f.get("transaction-volume")
}
func (f *fakeDashboardRepo) GetVariableReturns(context.Context) ([]repositories.AggregateRow, error) {
	return f.get("variable")
}
func (f *fakeDashboardRepo) GetFixedReturns(context.Context) ([]repositories.AggregateRow, error) {
	return f.get("fixed")
}
func (f *fakeDashboardRepo) GetInvestmentPortfolio(context.Context) ([]repositories.AggregateRow, error) {
	return f.get("investment-portfolio")
}

func TestDashboardService_Catalog(t *testing.T) {
	svc := NewDashboardService(&fakeDashboardRepo{}, nil, zap.NewNop())

	catalog := svc.Catalog()
	require.Len(t, catalog, 10)
	assert.Equal(t, "account-types", catalog[0].Key)
	assert.Equal(t, types.ChartPie, catalog[0].Kind)
	assert.Equal(t, BranchMapKey, catalog[7].Key)
	assert.Equal(t, types.ChartMap, catalog[7].Kind)
	assert.Equal(t, "investment-portfolio", catalog[9].Key)
}

func TestDashboardService_EmptyTablesGiveEmptyCharts(t *testing.T) {
	svc := NewDashboardService(&fakeDashboardRepo{}, nil, zap.NewNop())

	for _, info := range svc.Catalog() {
		if info.Key == BranchMapKey {
			continue
		}
		chart, err := svc.GetChart(context.Background(), info.Key)
		require.NoError(t, err, info.Key)
		assert.True(t, chart.Empty(), info.Key)
		for _, s := range chart.Series {
			assert.Empty(t, s.Data, info.Key)
		}
	}
}

func TestDashboardService_LoanTypesHasTwoSeries(t *testing.T) {
	repo := &fakeDashboardRepo{rows: map[string][]repositories.AggregateRow{
		"loan-types": {
			{Label: "Auto", Values: []float64{2, 1500}},
			{Label: "Home", Values: []float64{1, 250000}},
		},
	}}
	svc := NewDashboardService(repo, nil, zap.NewNop())

	chart, err := svc.GetChart(context.Background(), "loan-types")
	require.NoError(t, err)

	assert.Equal(t, []string{"Auto", "Home"}, chart.Labels)
	require.Len(t, chart.Series, 2)
	assert.Equal(t, "Number of Loans", chart.Series[0].Name)
	assert.Equal(t, []float64{2, 1}, chart.Series[0].Data)
	assert.Equal(t, "Total Amount", chart.Series[1].Name)
	assert.Equal(t, []float64{1500, 250000}, chart.Series[1].Data)
	assert.Equal(t, "Loan Type", chart.XLabel)
}

func TestDashboardService_InvestmentReturnsOuterMerge(t *testing.T) {
	repo := &fakeDashboardRepo{rows: map[string][]repositories.AggregateRow{
		"variable": {
			{Label: "2023-01", Values: []float64{5}},
			{Label: "2023-03", Values: []float64{7.5}},
		},
		"fixed": {
			{Label: "2023-02", Values: []float64{3}},
			{Label: "2023-03", Values: []float64{4}},
		},
	}}
	svc := NewDashboardService(repo, nil, zap.NewNop())

	chart, err := svc.GetChart(context.Background(), "investment-returns")
	require.NoError(t, err)

	assert.Equal(t, []string{"2023-01", "2023-02", "2023-03"}, chart.Labels)
	assert.Equal(t, "Average Return Rate", chart.Series[0].Name)
	assert.Equal(t, []float64{5, 0, 7.5}, chart.Series[0].Data)
	assert.Equal(t, "Average Interest Rate", chart.Series[1].Name)
	assert.Equal(t, []float64{0, 3, 4}, chart.Series[1].Data)
	assert.Equal(t, "Rate (%)", chart.YLabel)
}

func TestDashboardService_UnknownChart(t *testing.T) {
	svc := NewDashboardService(&fakeDashboardRepo{}, nil, zap.NewNop())

	_, err := svc.GetChart(context.Background(), "no-such-chart")
	assert.ErrorIs(t, err, apperrors.ErrNoChart)

	// карта строится BranchMapService
	_, err = svc.GetChart(context.Background(), BranchMapKey)
	assert.ErrorIs(t, err, apperrors.ErrNoChart)
}

func TestDashboardService_RepositoryErrorIsCounted(t *testing.T) {
	m := metrics.New()
	repo := &fakeDashboardRepo{err: errors.New("connection refused")}
	svc := NewDashboardService(repo, m, zap.NewNop())

	_, err := svc.GetChart(context.Background(), "loan-status")
	require.Error(t, err)

	families, gatherErr := m.Registry.Gather()
	require.NoError(t, gatherErr)
	found := false
	for _, f := range families {
		if f.GetName() == "bankdash_chart_renders_total" {
			found = true
		}
	}
	assert.True(t, found)
}
