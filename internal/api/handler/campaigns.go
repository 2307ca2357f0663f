package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-tracker-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-tracker-api/pkg/log"
)

// ListCampaigns retorna todas as campanhas com ROI e CTR. Métricas indefinidas vêm como null.
func ListCampaigns(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.ListCampaigns(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar campanhas")
			apiErrors.WriteFromError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, rows)
	}
}

// GetCampaignMetrics retorna ROI e CTR de uma campanha
func GetCampaignMetrics(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(httprouter.ParamsFromContext(r.Context()).ByName("name"))
		if name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome da campanha não informado", nil)
			return
		}

		result, err := service.GetCampaign(r.Context(), name)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"campaign": name,
				"error":    err,
			}).Warn("Erro ao calcular métricas da campanha")
			apiErrors.WriteFromError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}
