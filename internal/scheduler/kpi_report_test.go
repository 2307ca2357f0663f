package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-tracker-api/internal/config"
	"github.com/vfg2006/campaign-tracker-api/internal/domain"
	"github.com/vfg2006/campaign-tracker-api/internal/usecases/campaigning/mocks"
	"github.com/vfg2006/campaign-tracker-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func testConfig(enabled bool) *config.Config {
	return &config.Config{
		KPIReport: config.KPIReport{CronSchedule: "0 * * * *", Enabled: enabled},
	}
}

func TestKPIReportService_Run(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		setup    func(m *mocks.MockCampaigner)
		wantErr  error
		validate func(t *testing.T, report *KPIReport)
	}{
		{
			name: "resumo calculado",
			setup: func(m *mocks.MockCampaigner) {
				m.EXPECT().GetPortfolioSummary(gomock.Any()).Return(&domain.PortfolioSummary{
					TotalSpend:        56500,
					TotalRevenue:      176200,
					OverallROIPercent: 211.9,
					TotalImpressions:  250000,
					AverageCTRPercent: 10.5,
					CampaignCount:     2,
					CTRSampleSize:     2,
				}, nil)
			},
			validate: func(t *testing.T, report *KPIReport) {
				require.NotNil(t, report.Summary)
				assert.Equal(t, 211.9, report.Summary.OverallROIPercent)
				assert.Empty(t, report.Error)
			},
		},
		{
			name: "erro do cálculo fica registrado",
			setup: func(m *mocks.MockCampaigner) {
				m.EXPECT().GetPortfolioSummary(gomock.Any()).
					Return(nil, &domain.MetricError{Err: domain.ErrEmptyInput, Metric: domain.MetricPortfolio})
			},
			wantErr: domain.ErrEmptyInput,
			validate: func(t *testing.T, report *KPIReport) {
				assert.Nil(t, report.Summary)
				assert.Contains(t, report.Error, "empty input")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campaigns := mocks.NewMockCampaigner(ctrl)
			tt.setup(campaigns)

			service := NewKPIReportService(campaigns, testConfig(false))
			report, err := service.Run(context.Background(), TriggerManual)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			require.NotNil(t, report)
			assert.Len(t, report.RunID, 10)
			assert.Equal(t, TriggerManual, report.Trigger)
			assert.False(t, report.CompletedAt.Before(report.StartedAt))
			tt.validate(t, report)

			status := service.GetStatus()
			assert.Equal(t, false, status["running"])
			assert.Equal(t, report, status["last_report"])
		})
	}
}

func TestKPIReportService_SingleInFlight(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	release := make(chan struct{})
	started := make(chan struct{})

	campaigns := mocks.NewMockCampaigner(ctrl)
	campaigns.EXPECT().GetPortfolioSummary(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (*domain.PortfolioSummary, error) {
			close(started)
			<-release
			return &domain.PortfolioSummary{CampaignCount: 1}, nil
		})

	service := NewKPIReportService(campaigns, testConfig(false))

	done := make(chan error, 1)
	go func() {
		_, err := service.Run(context.Background(), TriggerCron)
		done <- err
	}()

	<-started
	assert.Equal(t, true, service.GetStatus()["running"])

	_, err := service.Run(context.Background(), TriggerManual)
	assert.ErrorIs(t, err, ErrReportRunning)
	assert.ErrorIs(t, service.TriggerManualSync(), ErrReportRunning)

	close(release)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("relatório não terminou")
	}
}

func TestKPIReportService_TriggerManualSync(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	called := make(chan struct{})
	campaigns := mocks.NewMockCampaigner(ctrl)
	campaigns.EXPECT().GetPortfolioSummary(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (*domain.PortfolioSummary, error) {
			assert.NotEmpty(t, log.GetCorrelationID(ctx))
			close(called)
			return nil, errors.New("source down")
		})

	service := NewKPIReportService(campaigns, testConfig(false))
	require.NoError(t, service.TriggerManualSync())

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("relatório manual não executou")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["running"] == false && service.GetStatus()["last_report"] != (*KPIReport)(nil)
	}, 2*time.Second, 10*time.Millisecond)
}

func TestKPIReportService_StartDisabled(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewKPIReportService(mocks.NewMockCampaigner(ctrl), testConfig(false))
	assert.NoError(t, service.Start(context.Background()))
}

func TestKPIReportService_StartInvalidCron(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig(true)
	cfg.KPIReport.CronSchedule = "not a cron"

	service := NewKPIReportService(mocks.NewMockCampaigner(ctrl), cfg)
	assert.Error(t, service.Start(context.Background()))
}
