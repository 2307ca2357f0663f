// Package datasource define as fontes de registros de campanha. O cálculo de
// métricas não conhece a origem dos dados: mock, arquivo, feed HTTP ou Postgres.
package datasource

import (
	"bytes"
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-tracker-api/internal/domain"
)

//go:generate mockgen -source=datasource.go -destination=mocks/mock_datasource.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CampaignSource fornece os registros de campanha a cada chamada
type CampaignSource interface {
	Name() string
	ListCampaigns(ctx context.Context) ([]domain.CampaignRecord, error)
}

// TrendSource é implementada pelas fontes que também fornecem a receita diária acumulada
type TrendSource interface {
	DailyRevenue(ctx context.Context) ([]domain.DailyRevenuePoint, error)
}

// Document é o formato JSON aceito pelas fontes static e feed
type Document struct {
	Campaigns    []domain.CampaignRecord `json:"campaigns"`
	DailyRevenue []DailyRevenueEntry     `json:"daily_revenue,omitempty"`
}

type DailyRevenueEntry struct {
	Date         string  `json:"date"`
	TotalRevenue float64 `json:"total_revenue"`
}

// DecodeDocument aceita tanto um objeto Document quanto um array simples de campanhas
func DecodeDocument(data []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty campaign document")
	}

	if trimmed[0] == '[' {
		var campaigns []domain.CampaignRecord
		if err := json.Unmarshal(trimmed, &campaigns); err != nil {
			return nil, errors.Wrap(err, "decode campaign array")
		}
		return &Document{Campaigns: campaigns}, nil
	}

	doc := &Document{}
	if err := json.Unmarshal(trimmed, doc); err != nil {
		return nil, errors.Wrap(err, "decode campaign document")
	}

	return doc, nil
}

// Trend converte as entradas de receita diária, mantendo a ordem do documento
func (d *Document) Trend() ([]domain.DailyRevenuePoint, error) {
	points := make([]domain.DailyRevenuePoint, 0, len(d.DailyRevenue))

	for i, entry := range d.DailyRevenue {
		date, err := time.Parse(time.DateOnly, entry.Date)
		if err != nil {
			return nil, errors.Wrapf(err, "daily_revenue[%d]: invalid date %q", i, entry.Date)
		}
		points = append(points, domain.DailyRevenuePoint{Date: date, TotalRevenue: entry.TotalRevenue})
	}

	return points, nil
}
