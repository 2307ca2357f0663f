package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-tracker-api/internal/config"
	"github.com/vfg2006/campaign-tracker-api/internal/domain"
)

func testTheme() config.Theme {
	return config.Theme{
		Title:           "Marketing Campaign Tracker",
		Subtitle:        "Track performance",
		CurrencySymbol:  "₦",
		Locale:          "en",
		PrimaryColor:    "#0A2540",
		AccentColor:     "#00B4D8",
		PiePalette:      []string{"#66c2a5", "#fc8d62"},
		ShowCTR:         true,
		ShowImpressions: true,
	}
}

func exampleRecords() []domain.CampaignRecord {
	return []domain.CampaignRecord{
		{Name: "Social Media Blast", Spend: 24500, Revenue: 78200, Impressions: 100000, Clicks: 12500},
		{Name: "Google Ads", Spend: 32000, Revenue: 98000, Impressions: 150000, Clicks: 12750},
	}
}

func kpiByKey(t *testing.T, view *View, key string) KPI {
	t.Helper()
	for _, kpi := range view.KPIs {
		if kpi.Key == key {
			return kpi
		}
	}
	t.Fatalf("kpi %s não encontrado", key)
	return KPI{}
}

func TestBuild_KPIs(t *testing.T) {
	view := Build(exampleRecords(), nil, testTheme())

	require.Len(t, view.KPIs, 5)
	assert.Equal(t, "Marketing Campaign Tracker", view.Title)

	tests := []struct {
		key     string
		value   float64
		display string
	}{
		{KPITotalSpend, 56500, "₦56,500"},
		{KPITotalRevenue, 176200, "₦176,200"},
		{KPIOverallROI, 211.9, "211.9%"},
		{KPITotalImpressions, 250000, "250,000"},
		{KPIAverageCTR, 10.5, "10.50%"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			kpi := kpiByKey(t, view, tt.key)
			require.NotNil(t, kpi.Value)
			assert.Equal(t, tt.value, *kpi.Value)
			assert.Equal(t, tt.display, kpi.Display)
			assert.Empty(t, kpi.Error)
		})
	}
}

func TestBuild_NotAvailable(t *testing.T) {
	t.Run("entrada vazia", func(t *testing.T) {
		view := Build(nil, nil, testTheme())

		for _, kpi := range view.KPIs {
			assert.Nil(t, kpi.Value, kpi.Key)
			assert.Equal(t, NotAvailable, kpi.Display, kpi.Key)
			assert.NotEmpty(t, kpi.Error, kpi.Key)
		}
		assert.Empty(t, view.Campaigns)
	})

	t.Run("spend total zero mantém os totais", func(t *testing.T) {
		records := []domain.CampaignRecord{
			{Name: "Orgânico", Spend: 0, Revenue: 1200, Impressions: 1000, Clicks: 10},
		}
		view := Build(records, nil, testTheme())

		spend := kpiByKey(t, view, KPITotalSpend)
		require.NotNil(t, spend.Value)
		assert.Equal(t, "₦0", spend.Display)

		revenue := kpiByKey(t, view, KPITotalRevenue)
		assert.Equal(t, "₦1,200", revenue.Display)

		roi := kpiByKey(t, view, KPIOverallROI)
		assert.Nil(t, roi.Value)
		assert.Equal(t, NotAvailable, roi.Display)
		assert.Contains(t, roi.Error, "division by zero")

		ctr := kpiByKey(t, view, KPIAverageCTR)
		require.NotNil(t, ctr.Value)
		assert.Equal(t, 1.0, *ctr.Value)
		assert.Equal(t, "1.00%", ctr.Display)
		assert.Empty(t, ctr.Error)

		require.Len(t, view.Campaigns, 1)
		assert.Nil(t, view.Campaigns[0].ROIPercent)
		require.NotNil(t, view.Campaigns[0].CTRPercent)
		assert.Equal(t, 1.0, *view.Campaigns[0].CTRPercent)
	})

	t.Run("nenhuma campanha com impressões", func(t *testing.T) {
		records := []domain.CampaignRecord{
			{Name: "Sem entrega", Spend: 100, Revenue: 150, Impressions: 0, Clicks: 0},
		}
		view := Build(records, nil, testTheme())

		roi := kpiByKey(t, view, KPIOverallROI)
		require.NotNil(t, roi.Value)
		assert.Equal(t, "50.0%", roi.Display)

		ctr := kpiByKey(t, view, KPIAverageCTR)
		assert.Nil(t, ctr.Value)
		assert.Equal(t, NotAvailable, ctr.Display)
	})

	t.Run("uma campanha sem impressões deixa só o CTR médio indefinido", func(t *testing.T) {
		records := append(exampleRecords(), domain.CampaignRecord{Name: "Sem entrega", Spend: 500, Revenue: 0})
		view := Build(records, nil, testTheme())

		roi := kpiByKey(t, view, KPIOverallROI)
		require.NotNil(t, roi.Value)
		assert.Empty(t, roi.Error)

		ctr := kpiByKey(t, view, KPIAverageCTR)
		assert.Nil(t, ctr.Value)
		assert.Equal(t, NotAvailable, ctr.Display)
		assert.Equal(t, `average_ctr: division by zero (campaign "Sem entrega")`, ctr.Error)
	})

	t.Run("ROI e CTR indefinidos ao mesmo tempo", func(t *testing.T) {
		records := []domain.CampaignRecord{{Name: "Vazia", Spend: 0, Revenue: 0, Impressions: 0, Clicks: 0}}
		view := Build(records, nil, testTheme())

		roi := kpiByKey(t, view, KPIOverallROI)
		assert.Equal(t, NotAvailable, roi.Display)
		assert.Equal(t, "overall_roi: division by zero", roi.Error)

		ctr := kpiByKey(t, view, KPIAverageCTR)
		assert.Equal(t, NotAvailable, ctr.Display)
		assert.Equal(t, `average_ctr: division by zero (campaign "Vazia")`, ctr.Error)

		spend := kpiByKey(t, view, KPITotalSpend)
		require.NotNil(t, spend.Value)
		assert.Equal(t, "₦0", spend.Display)
	})
}

func TestBuild_ThemeSwitches(t *testing.T) {
	theme := testTheme()
	theme.ShowCTR = false
	theme.ShowImpressions = false

	view := Build(exampleRecords(), nil, theme)

	keys := make([]string, 0, len(view.KPIs))
	for _, kpi := range view.KPIs {
		keys = append(keys, kpi.Key)
	}
	assert.Equal(t, []string{KPITotalSpend, KPITotalRevenue, KPIOverallROI}, keys)

	for _, chart := range view.Charts {
		assert.NotEqual(t, ChartPie, chart.Kind)
	}
}

func TestBuild_Charts(t *testing.T) {
	trend := []domain.DailyRevenuePoint{
		{Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), TotalRevenue: 4800},
		{Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), TotalRevenue: 9900},
	}

	view := Build(exampleRecords(), trend, testTheme())
	require.Len(t, view.Charts, 3)

	bar := view.Charts[0]
	assert.Equal(t, ChartBar, bar.Kind)
	assert.Equal(t, "group", bar.BarMode)
	assert.Equal(t, []string{"Social Media Blast", "Google Ads"}, bar.Labels)
	require.Len(t, bar.Series, 2)
	assert.Equal(t, "#0A2540", bar.Series[0].Color)
	assert.Equal(t, []float64{24500, 32000}, bar.Series[0].Values)
	assert.Equal(t, "#00B4D8", bar.Series[1].Color)
	assert.Equal(t, []float64{78200, 98000}, bar.Series[1].Values)

	line := view.Charts[1]
	assert.Equal(t, ChartLine, line.Kind)
	assert.Equal(t, []string{"2025-01-01", "2025-01-02"}, line.Labels)
	assert.Equal(t, []float64{4800, 9900}, line.Series[0].Values)

	pie := view.Charts[2]
	assert.Equal(t, ChartPie, pie.Kind)
	assert.Equal(t, []string{"#66c2a5", "#fc8d62"}, pie.Palette)
	assert.Equal(t, []float64{100000, 150000}, pie.Series[0].Values)
}

func TestBuild_NoTrend(t *testing.T) {
	view := Build(exampleRecords(), nil, testTheme())

	for _, chart := range view.Charts {
		assert.NotEqual(t, ChartLine, chart.Kind)
	}
}

func TestFormatter(t *testing.T) {
	f := NewFormatter("not a locale!!", "$")

	assert.Equal(t, "$1,234,568", f.Money(1234567.5))
	assert.Equal(t, "3,000", f.Count(3000))
	assert.Equal(t, "-75.0%", f.Percent(-75, 1))
	assert.Equal(t, "33.33%", f.Percent(33.33, 2))
}
