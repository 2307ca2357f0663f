package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-tracker-api/infrastructure/datasource"
	"github.com/vfg2006/campaign-tracker-api/infrastructure/datasource/feed"
	"github.com/vfg2006/campaign-tracker-api/infrastructure/datasource/mock"
	pgsource "github.com/vfg2006/campaign-tracker-api/infrastructure/datasource/postgres"
	"github.com/vfg2006/campaign-tracker-api/infrastructure/datasource/static"
	"github.com/vfg2006/campaign-tracker-api/internal/api"
	"github.com/vfg2006/campaign-tracker-api/internal/config"
	"github.com/vfg2006/campaign-tracker-api/internal/scheduler"
	"github.com/vfg2006/campaign-tracker-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-tracker-api/pkg/log"
	"github.com/vfg2006/campaign-tracker-api/pkg/utils"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, closeSource, err := newCampaignSource(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar a fonte de campanhas")
	}
	defer closeSource()

	logrus.WithField("source", source.Name()).Info("Fonte de campanhas configurada")

	campaignService := campaigning.NewService(source, cfg.Theme)

	kpiReportService := scheduler.NewKPIReportService(campaignService, cfg)
	if err := kpiReportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório de KPIs")
	} else {
		logrus.Info("Agendador do relatório de KPIs iniciado com sucesso")
	}

	server, err := api.New(cfg, campaignService, kpiReportService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// newCampaignSource escolhe a fonte de campanhas pela configuração CAMPAIGN_SOURCE
func newCampaignSource(ctx context.Context, cfg *config.Config) (datasource.CampaignSource, func(), error) {
	noop := func() {}

	switch cfg.Source.Kind {
	case config.SourceMock:
		fallback := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		trendStart, err := utils.ParseDateOr(cfg.Mock.TrendStart, fallback)
		if err != nil {
			return nil, noop, fmt.Errorf("MOCK_TREND_START inválido: %w", err)
		}
		return mock.New(cfg.Mock.Seed, trendStart, cfg.Mock.TrendDays), noop, nil

	case config.SourceStatic:
		return static.New(cfg.Static.Path), noop, nil

	case config.SourceFeed:
		return feed.NewClient(cfg.Feed.URL, cfg.Feed.Timeout), noop, nil

	case config.SourcePostgres:
		conn := pgconn(ctx, cfg.Database)
		return pgsource.New(conn, cfg.Database.Table), func() { conn.Close() }, nil
	}

	return nil, noop, fmt.Errorf("fonte de campanhas desconhecida: %q", cfg.Source.Kind)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
