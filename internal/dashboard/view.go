// Package dashboard monta a visão consumida pelo painel de campanhas: cards de KPI,
// tabela de campanhas e as séries dos gráficos. Nenhum desenho acontece aqui.
package dashboard

import (
	"time"

	"github.com/vfg2006/campaign-tracker-api/internal/config"
	"github.com/vfg2006/campaign-tracker-api/internal/domain"
)

// Chaves dos cards de KPI
const (
	KPITotalSpend       = "total_spend"
	KPITotalRevenue     = "total_revenue"
	KPIOverallROI       = "overall_roi"
	KPITotalImpressions = "total_impressions"
	KPIAverageCTR       = "average_ctr"
)

// Tipos de gráfico
const (
	ChartBar  = "bar"
	ChartLine = "line"
	ChartPie  = "pie"
)

type KPI struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Value   *float64 `json:"value"`
	Display string   `json:"display"`
	Error   string   `json:"error,omitempty"`
}

type Series struct {
	Name   string    `json:"name"`
	Color  string    `json:"color,omitempty"`
	Values []float64 `json:"values"`
}

type Chart struct {
	Kind    string   `json:"kind"`
	Title   string   `json:"title"`
	Labels  []string `json:"labels"`
	Series  []Series `json:"series"`
	Palette []string `json:"palette,omitempty"`
	BarMode string   `json:"bar_mode,omitempty"`
}

type Theme struct {
	PrimaryColor   string   `json:"primary_color"`
	AccentColor    string   `json:"accent_color"`
	PiePalette     []string `json:"pie_palette"`
	CurrencySymbol string   `json:"currency_symbol"`
	Locale         string   `json:"locale"`
}

type View struct {
	Title       string               `json:"title"`
	Subtitle    string               `json:"subtitle"`
	Theme       Theme                `json:"theme"`
	KPIs        []KPI                `json:"kpis"`
	Campaigns   []domain.CampaignRow `json:"campaigns"`
	Charts      []Chart              `json:"charts"`
	GeneratedAt time.Time            `json:"generated_at"`
}

// Build monta a visão completa. Erros do cálculo viram "N/A" no card
// correspondente e nunca interrompem a montagem.
func Build(records []domain.CampaignRecord, trend []domain.DailyRevenuePoint, theme config.Theme) *View {
	formatter := NewFormatter(theme.Locale, theme.CurrencySymbol)

	view := &View{
		Title:    theme.Title,
		Subtitle: theme.Subtitle,
		Theme: Theme{
			PrimaryColor:   theme.PrimaryColor,
			AccentColor:    theme.AccentColor,
			PiePalette:     theme.PiePalette,
			CurrencySymbol: theme.CurrencySymbol,
			Locale:         theme.Locale,
		},
		Campaigns:   domain.BuildCampaignRows(records),
		GeneratedAt: time.Now().UTC(),
	}

	summary, err := domain.ComputePortfolioSummary(records)
	view.KPIs = buildKPIs(summary, err, formatter, theme)

	view.Charts = append(view.Charts, spendRevenueChart(records, theme))
	if len(trend) > 0 {
		view.Charts = append(view.Charts, dailyRevenueChart(trend, theme))
	}
	if theme.ShowImpressions {
		view.Charts = append(view.Charts, impressionsChart(records, theme))
	}

	return view
}

func buildKPIs(summary domain.PortfolioSummary, summaryErr error, f *Formatter, theme config.Theme) []KPI {
	// Com entrada vazia nenhum total é confiável
	totalsErr := domain.FindMetricError(summaryErr, domain.MetricPortfolio)

	kpis := []KPI{
		moneyKPI(KPITotalSpend, "Total Spend", summary.TotalSpend, totalsErr, f),
		moneyKPI(KPITotalRevenue, "Total Revenue", summary.TotalRevenue, totalsErr, f),
	}

	roiErr := firstError(totalsErr, domain.FindMetricError(summaryErr, domain.MetricOverallROI))
	kpis = append(kpis, percentKPI(KPIOverallROI, "Overall ROI", summary.OverallROIPercent, 1, roiErr, f))

	if theme.ShowImpressions {
		kpi := KPI{Key: KPITotalImpressions, Label: "Total Impressions", Display: NotAvailable}
		if totalsErr == nil {
			value := float64(summary.TotalImpressions)
			kpi.Value = &value
			kpi.Display = f.Count(summary.TotalImpressions)
		} else {
			kpi.Error = totalsErr.Error()
		}
		kpis = append(kpis, kpi)
	}

	if theme.ShowCTR {
		ctrErr := firstError(totalsErr, domain.FindMetricError(summaryErr, domain.MetricAverageCTR))
		kpis = append(kpis, percentKPI(KPIAverageCTR, "Avg CTR", summary.AverageCTRPercent, 2, ctrErr, f))
	}

	return kpis
}

func moneyKPI(key, label string, value float64, err error, f *Formatter) KPI {
	if err != nil {
		return KPI{Key: key, Label: label, Display: NotAvailable, Error: err.Error()}
	}
	return KPI{Key: key, Label: label, Value: &value, Display: f.Money(value)}
}

func percentKPI(key, label string, value float64, places int, err error, f *Formatter) KPI {
	if err != nil {
		return KPI{Key: key, Label: label, Display: NotAvailable, Error: err.Error()}
	}
	return KPI{Key: key, Label: label, Value: &value, Display: f.Percent(value, places)}
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func spendRevenueChart(records []domain.CampaignRecord, theme config.Theme) Chart {
	labels := make([]string, 0, len(records))
	spend := make([]float64, 0, len(records))
	revenue := make([]float64, 0, len(records))

	for _, record := range records {
		labels = append(labels, record.Name)
		spend = append(spend, record.Spend)
		revenue = append(revenue, record.Revenue)
	}

	return Chart{
		Kind:    ChartBar,
		Title:   "Spend vs Revenue by Campaign",
		Labels:  labels,
		BarMode: "group",
		Series: []Series{
			{Name: "Spend", Color: theme.PrimaryColor, Values: spend},
			{Name: "Revenue", Color: theme.AccentColor, Values: revenue},
		},
	}
}

func dailyRevenueChart(trend []domain.DailyRevenuePoint, theme config.Theme) Chart {
	labels := make([]string, 0, len(trend))
	values := make([]float64, 0, len(trend))

	for _, point := range trend {
		labels = append(labels, point.Date.Format(time.DateOnly))
		values = append(values, point.TotalRevenue)
	}

	return Chart{
		Kind:   ChartLine,
		Title:  "Daily Revenue Performance",
		Labels: labels,
		Series: []Series{
			{Name: "Total Revenue", Color: theme.AccentColor, Values: values},
		},
	}
}

func impressionsChart(records []domain.CampaignRecord, theme config.Theme) Chart {
	labels := make([]string, 0, len(records))
	values := make([]float64, 0, len(records))

	for _, record := range records {
		labels = append(labels, record.Name)
		values = append(values, float64(record.Impressions))
	}

	return Chart{
		Kind:    ChartPie,
		Title:   "Impressions Share by Campaign",
		Labels:  labels,
		Palette: theme.PiePalette,
		Series: []Series{
			{Name: "Impressions", Values: values},
		},
	}
}
