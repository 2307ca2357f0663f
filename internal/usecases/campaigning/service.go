package campaigning

import (
	"context"
	"strings"

	"github.com/vfg2006/campaign-tracker-api/infrastructure/datasource"
	"github.com/vfg2006/campaign-tracker-api/internal/config"
	"github.com/vfg2006/campaign-tracker-api/internal/dashboard"
	"github.com/vfg2006/campaign-tracker-api/internal/domain"
	"github.com/vfg2006/campaign-tracker-api/pkg/log"
	"github.com/vfg2006/campaign-tracker-api/pkg/telemetry"
)

// Service lê a fonte a cada chamada; nada é mantido em cache entre requisições
type Service struct {
	source datasource.CampaignSource
	trend  datasource.TrendSource
	theme  config.Theme
}

// NewService cria o serviço. Se a fonte também fornecer a receita diária,
// ela alimenta o gráfico de tendência do dashboard.
func NewService(source datasource.CampaignSource, theme config.Theme) *Service {
	s := &Service{
		source: source,
		theme:  theme,
	}

	if trend, ok := source.(datasource.TrendSource); ok {
		s.trend = trend
	}

	return s
}

// WithTrend substitui a fonte da tendência diária
func (s *Service) WithTrend(trend datasource.TrendSource) *Service {
	s.trend = trend
	return s
}

func (s *Service) ListCampaigns(ctx context.Context) ([]domain.CampaignRow, error) {
	records, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	return domain.BuildCampaignRows(records), nil
}

func (s *Service) GetCampaign(ctx context.Context, name string) (*domain.CampaignMetricsResponse, error) {
	records, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	for _, record := range records {
		if record.Name != name {
			continue
		}

		metrics, err := domain.ComputeCampaignMetrics(record)
		telemetry.ObserveCalculation(telemetry.OperationCampaignMetrics, err)
		if err != nil {
			log.ForContext(ctx).WithFields(log.Fields{
				"campaign": record.Name,
				"error":    err,
			}).Warn("Métricas indefinidas para a campanha")
			return nil, err
		}

		return &domain.CampaignMetricsResponse{
			Campaign: record,
			Metrics:  metrics,
		}, nil
	}

	return nil, domain.ErrCampaignNotFound
}

func (s *Service) GetPortfolioSummary(ctx context.Context) (*domain.PortfolioSummary, error) {
	records, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	summary, err := domain.ComputePortfolioSummary(records)
	telemetry.ObserveCalculation(telemetry.OperationPortfolioSummary, err)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"campaigns": len(records),
			"error":     err,
		}).Warn("Resumo do portfólio indefinido")
		return nil, err
	}

	return &summary, nil
}

func (s *Service) GetDashboard(ctx context.Context) (*dashboard.View, error) {
	records, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	var trend []domain.DailyRevenuePoint
	if s.trend != nil {
		trend, err = s.trend.DailyRevenue(ctx)
		if err != nil {
			// Sem a tendência o painel continua útil
			log.ForContext(ctx).WithError(err).Warn("Falha ao carregar receita diária, gráfico omitido")
			trend = nil
		}
	}

	view := dashboard.Build(records, trend, s.theme)
	telemetry.ObserveCalculation(telemetry.OperationDashboard, nil)

	return view, nil
}

func (s *Service) loadRecords(ctx context.Context) ([]domain.CampaignRecord, error) {
	logger := log.ForContext(ctx).WithField("source", s.source.Name())

	records, err := s.source.ListCampaigns(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao carregar campanhas da fonte")
		telemetry.SourceErrors.WithLabelValues(s.source.Name()).Inc()
		return nil, &SourceError{Source: s.source.Name(), Err: err}
	}

	if err := domain.ValidateRecords(records); err != nil {
		logger.WithError(err).Error("Registro de campanha inválido")
		return nil, err
	}

	for _, record := range records {
		if record.ClicksExceedImpressions() {
			logger.WithFields(log.Fields{
				"campaign":    record.Name,
				"clicks":      record.Clicks,
				"impressions": record.Impressions,
			}).Warn("Campanha com mais clicks que impressões")
		}
	}

	logger.Debugf("%d campanhas carregadas", len(records))

	return records, nil
}
