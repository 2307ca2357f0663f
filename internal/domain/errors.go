package domain

import (
	"errors"
	"fmt"
)

// Métricas que podem falhar no cálculo
const (
	MetricROI        = "roi"
	MetricCTR        = "ctr"
	MetricOverallROI = "overall_roi"
	MetricAverageCTR = "average_ctr"
	MetricPortfolio  = "portfolio"
)

var (
	// ErrDivisionByZero indica que o denominador de uma razão é zero
	ErrDivisionByZero = errors.New("division by zero")
	// ErrEmptyInput indica uma agregação sobre nenhum registro
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidRecord indica um registro de campanha estruturalmente inválido
	ErrInvalidRecord = errors.New("invalid campaign record")
	// ErrCampaignNotFound indica que a campanha pedida não existe na fonte
	ErrCampaignNotFound = errors.New("campaign not found")
)

// MetricError identifica qual métrica falhou e para qual campanha
type MetricError struct {
	Err      error
	Metric   string
	Campaign string
}

func (e *MetricError) Error() string {
	if e.Campaign != "" {
		return fmt.Sprintf("%s: %s (campaign %q)", e.Metric, e.Err.Error(), e.Campaign)
	}
	return fmt.Sprintf("%s: %s", e.Metric, e.Err.Error())
}

func (e *MetricError) Unwrap() error {
	return e.Err
}

// RecordError descreve o registro e o campo que falharam na validação
type RecordError struct {
	Index  int
	Name   string
	Field  string
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s: record %d (%q) field %s: %s", ErrInvalidRecord.Error(), e.Index, e.Name, e.Field, e.Reason)
}

func (e *RecordError) Unwrap() error {
	return ErrInvalidRecord
}
