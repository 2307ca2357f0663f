package domain

import "time"

// CampaignRecord é uma linha de desempenho observado de uma campanha
type CampaignRecord struct {
	Name        string  `json:"name" validate:"required"`
	Spend       float64 `json:"spend" validate:"gte=0"`
	Revenue     float64 `json:"revenue" validate:"gte=0"`
	Impressions int64   `json:"impressions" validate:"gte=0"`
	Clicks      int64   `json:"clicks" validate:"gte=0"`
}

// ClicksExceedImpressions indica um registro fora da convenção clicks <= impressions.
// Não é um erro: o registro continua sendo calculado normalmente.
func (r CampaignRecord) ClicksExceedImpressions() bool {
	return r.Clicks > r.Impressions
}

// DerivedCampaignMetrics são as métricas calculadas a partir de um CampaignRecord
type DerivedCampaignMetrics struct {
	ROIPercent float64 `json:"roi_percent"`
	CTRPercent float64 `json:"ctr_percent"`
}

// PortfolioSummary agrega um conjunto de campanhas
type PortfolioSummary struct {
	TotalSpend        float64 `json:"total_spend"`
	TotalRevenue      float64 `json:"total_revenue"`
	OverallROIPercent float64 `json:"overall_roi_percent"`
	TotalImpressions  int64   `json:"total_impressions"`
	AverageCTRPercent float64 `json:"average_ctr_percent"`
	CampaignCount     int     `json:"campaign_count"`
	// Campanhas com CTR definido
	CTRSampleSize int `json:"ctr_sample_size"`
}

// CampaignRow é a visão tabular de uma campanha. ROI e CTR ficam nil quando
// não podem ser calculados, para que a camada de apresentação mostre "N/A".
type CampaignRow struct {
	CampaignRecord
	ROIPercent              *float64 `json:"roi_percent"`
	CTRPercent              *float64 `json:"ctr_percent"`
	ClicksExceedImpressions bool     `json:"clicks_exceed_impressions,omitempty"`
}

type CampaignMetricsResponse struct {
	Campaign CampaignRecord         `json:"campaign"`
	Metrics  DerivedCampaignMetrics `json:"metrics"`
}

// DailyRevenuePoint é um ponto da tendência de receita diária acumulada
type DailyRevenuePoint struct {
	Date         time.Time `json:"date"`
	TotalRevenue float64   `json:"total_revenue"`
}
