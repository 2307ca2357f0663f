package campaigning

import (
	"context"

	"github.com/vfg2006/campaign-tracker-api/internal/dashboard"
	"github.com/vfg2006/campaign-tracker-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_campaigner.go -package=mocks

// Campaigner expõe as operações de leitura de campanhas e métricas
type Campaigner interface {
	// ListCampaigns devolve todas as campanhas com ROI/CTR nil quando indefinidos
	ListCampaigns(ctx context.Context) ([]domain.CampaignRow, error)

	// GetCampaign calcula as métricas de uma campanha pelo nome
	GetCampaign(ctx context.Context, name string) (*domain.CampaignMetricsResponse, error)

	// GetPortfolioSummary agrega todas as campanhas da fonte
	GetPortfolioSummary(ctx context.Context) (*domain.PortfolioSummary, error)

	// GetDashboard monta a visão completa do painel
	GetDashboard(ctx context.Context) (*dashboard.View, error)
}

var _ Campaigner = (*Service)(nil)
