package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/campaign-tracker-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de cálculo de métricas
	ErrDivisionByZero = "METRIC_001" // Denominador zero (spend, impressions ou spend total)
	ErrEmptyInput     = "METRIC_002" // Agregação sem campanhas

	// Erros de campanha
	ErrCampaignNotFound = "CMP_001" // Campanha não encontrada na fonte

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidRecord       = "VAL_004" // Registro de campanha inválido vindo da fonte
	ErrRouteNotFound       = "VAL_005" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_006" // Método não suportado pela rota

	// Erros do servidor
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrExternalService = "SRV_003" // Falha na fonte de campanhas
	ErrTooManyRequests = "SRV_004" // Limite de requisições excedido
	ErrJobRunning      = "SRV_005" // Job agendado já em execução
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrDivisionByZero:      http.StatusUnprocessableEntity,
	ErrEmptyInput:          http.StatusUnprocessableEntity,
	ErrCampaignNotFound:    http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidRecord:       http.StatusUnprocessableEntity,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrTooManyRequests:     http.StatusTooManyRequests,
	ErrJobRunning:          http.StatusConflict,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor devolve o status HTTP de um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError classifica um erro Go em um erro de API. Erros sem classificação
// conhecida são tratados como falha da fonte de campanhas.
func FromError(err error) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	apiErr := APIError{Message: err.Error()}

	var metricErr *domain.MetricError
	var recordErr *domain.RecordError

	switch {
	case errors.Is(err, domain.ErrDivisionByZero):
		apiErr.Code = ErrDivisionByZero
		if errors.As(err, &metricErr) {
			apiErr.Details = map[string]string{"metric": metricErr.Metric, "campaign": metricErr.Campaign}
		}
	case errors.Is(err, domain.ErrEmptyInput):
		apiErr.Code = ErrEmptyInput
	case errors.Is(err, domain.ErrInvalidRecord):
		apiErr.Code = ErrInvalidRecord
		if errors.As(err, &recordErr) {
			apiErr.Details = map[string]any{"index": recordErr.Index, "name": recordErr.Name, "field": recordErr.Field}
		}
	case errors.Is(err, domain.ErrCampaignNotFound):
		apiErr.Code = ErrCampaignNotFound
	default:
		apiErr.Code = ErrExternalService
	}

	return apiErr
}

// WriteFromError classifica err e escreve a resposta correspondente
func WriteFromError(w http.ResponseWriter, err error) {
	apiErr := FromError(err)
	WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}
