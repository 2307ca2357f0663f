package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-tracker-api/internal/scheduler"
	"github.com/vfg2006/campaign-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-tracker-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeKPIReport = "kpi-report"
)

// CronJob é implementado pelos serviços agendados que aceitam execução manual
type CronJob interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	KPIReportService CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		var job CronJob
		switch cronType {
		case CronJobTypeKPIReport:
			job = services.KPIReportService
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: kpi-report", nil)
			return
		}

		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de relatório de KPIs não disponível", nil)
			return
		}

		if err := job.TriggerManualSync(); err != nil {
			if errors.Is(err, scheduler.ErrReportRunning) {
				apiErrors.WriteError(w, apiErrors.ErrJobRunning, "Cron job já em execução", map[string]string{"type": cronType})
				return
			}
			log.ForContext(r.Context()).WithError(err).Error("Erro ao iniciar cron job")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("Cron job iniciada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.KPIReportService != nil {
			status[CronJobTypeKPIReport] = services.KPIReportService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
