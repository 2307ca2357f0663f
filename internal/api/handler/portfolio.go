package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-tracker-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-tracker-api/pkg/log"
)

// GetPortfolioSummary retorna os totais e as razões agregadas do portfólio
func GetPortfolioSummary(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.GetPortfolioSummary(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao calcular resumo do portfólio")
			apiErrors.WriteFromError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	}
}

// GetDashboard retorna a visão completa do painel
func GetDashboard(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := service.GetDashboard(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao montar dashboard")
			apiErrors.WriteFromError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	}
}
