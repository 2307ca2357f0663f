package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-tracker-api/internal/config"
	"github.com/vfg2006/campaign-tracker-api/internal/domain"
	"github.com/vfg2006/campaign-tracker-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-tracker-api/pkg/log"
	"github.com/vfg2006/campaign-tracker-api/pkg/telemetry"
	"github.com/vfg2006/campaign-tracker-api/pkg/utils"
)

// Origem de uma execução do relatório
const (
	TriggerCron   = "cron"
	TriggerManual = "manual"
)

// ErrReportRunning indica que já existe um relatório em execução
var ErrReportRunning = errors.New("kpi report already running")

// KPIReportConfig representa a configuração do agendador do relatório de KPIs
type KPIReportConfig struct {
	CronSchedule string
	Enabled      bool
}

// KPIReport é o resultado de uma execução do relatório
type KPIReport struct {
	RunID       string                   `json:"run_id"`
	Trigger     string                   `json:"trigger"`
	StartedAt   time.Time                `json:"started_at"`
	CompletedAt time.Time                `json:"completed_at"`
	Summary     *domain.PortfolioSummary `json:"summary,omitempty"`
	Error       string                   `json:"error,omitempty"`
}

// KPIReportService calcula periodicamente o resumo do portfólio e registra o resultado no log
type KPIReportService struct {
	scheduler   *gocron.Scheduler
	config      KPIReportConfig
	campaigns   campaigning.Campaigner
	running     bool
	mutex       sync.Mutex
	lastStarted time.Time
	lastDone    time.Time
	lastReport  *KPIReport
}

// NewKPIReportService cria uma nova instância do serviço de relatório de KPIs
func NewKPIReportService(campaigns campaigning.Campaigner, appConfig *config.Config) *KPIReportService {
	reportConfig := KPIReportConfig{
		CronSchedule: appConfig.KPIReport.CronSchedule,
		Enabled:      appConfig.KPIReport.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reportConfig.CronSchedule,
		"enabled":       reportConfig.Enabled,
	}).Info("Configuração do agendador de relatório de KPIs carregada")

	return &KPIReportService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    reportConfig,
		campaigns: campaigns,
	}
}

// Start inicia o agendador
func (s *KPIReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Relatório de KPIs desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do relatório de KPIs")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Run(ctx, TriggerCron); err != nil && !errors.Is(err, ErrReportRunning) {
			logrus.WithError(err).Error("Relatório de KPIs agendado falhou")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório de KPIs: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do relatório de KPIs")
		s.scheduler.Stop()
	}()

	return nil
}

// Run executa o relatório de forma síncrona. Apenas uma execução por vez.
func (s *KPIReportService) Run(ctx context.Context, trigger string) (*KPIReport, error) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Relatório de KPIs já em andamento, ignorando")
		return nil, ErrReportRunning
	}
	startedAt := time.Now()
	s.running = true
	s.lastStarted = startedAt
	s.mutex.Unlock()

	report := &KPIReport{Trigger: trigger, StartedAt: startedAt}

	defer func() {
		s.mutex.Lock()
		s.running = false
		s.lastDone = report.CompletedAt
		s.lastReport = report
		s.mutex.Unlock()
	}()

	runID, err := utils.GenerateRunID()
	if err != nil {
		report.CompletedAt = time.Now()
		report.Error = err.Error()
		return report, fmt.Errorf("erro ao gerar ID da execução: %w", err)
	}
	report.RunID = runID

	ctx, _ = log.WithCorrelationID(ctx, runID)
	logger := log.ForContext(ctx).WithFields(log.Fields{"run_id": runID, "trigger": trigger})
	logger.Info("Iniciando relatório de KPIs")

	summary, err := s.campaigns.GetPortfolioSummary(ctx)
	report.CompletedAt = time.Now()
	duration := report.CompletedAt.Sub(report.StartedAt)

	if err != nil {
		report.Error = err.Error()
		telemetry.KPIReportRuns.WithLabelValues(trigger, telemetry.Outcome(err)).Inc()
		logger.WithError(err).Warn("Relatório de KPIs sem resumo do portfólio")
		return report, err
	}

	report.Summary = summary
	telemetry.KPIReportRuns.WithLabelValues(trigger, telemetry.OutcomeOK).Inc()

	logger.WithFields(log.Fields{
		"duration":            duration.String(),
		"campaigns":           summary.CampaignCount,
		"total_spend":         summary.TotalSpend,
		"total_revenue":       summary.TotalRevenue,
		"overall_roi_percent": summary.OverallROIPercent,
		"average_ctr_percent": summary.AverageCTRPercent,
	}).Info("Relatório de KPIs concluído")
	logger.Debugf("Resumo do portfólio: %s", utils.PrettyJson(summary))

	return report, nil
}

// TriggerManualSync inicia manualmente o relatório em background
func (s *KPIReportService) TriggerManualSync() error {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Relatório de KPIs já em andamento, ignorando solicitação manual")
		return ErrReportRunning
	}
	s.mutex.Unlock()

	logrus.Info("Iniciando relatório manual de KPIs")
	go func() {
		if _, err := s.Run(context.Background(), TriggerManual); err != nil && !errors.Is(err, ErrReportRunning) {
			logrus.WithError(err).Error("Relatório manual de KPIs falhou")
		}
	}()

	return nil
}

// GetStatus retorna o status atual do relatório
func (s *KPIReportService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"running":           s.running,
		"cron":              s.config.CronSchedule,
		"enabled":           s.config.Enabled,
		"last_started_at":   s.lastStarted,
		"last_completed_at": s.lastDone,
		"last_report":       s.lastReport,
	}
}
