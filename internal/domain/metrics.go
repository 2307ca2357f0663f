package domain

import (
	"errors"

	"github.com/vfg2006/campaign-tracker-api/pkg/utils"
)

// ComputeROI calcula (revenue - spend) / spend * 100 com uma casa decimal
func ComputeROI(record CampaignRecord) (float64, error) {
	if record.Spend == 0 {
		return 0, &MetricError{Err: ErrDivisionByZero, Metric: MetricROI, Campaign: record.Name}
	}

	return utils.RoundWithOneDecimalPlace(roi(record.Revenue, record.Spend)), nil
}

// ComputeCTR calcula clicks / impressions * 100 com duas casas decimais
func ComputeCTR(record CampaignRecord) (float64, error) {
	if record.Impressions == 0 {
		return 0, &MetricError{Err: ErrDivisionByZero, Metric: MetricCTR, Campaign: record.Name}
	}

	return utils.RoundWithTwoDecimalPlace(float64(record.Clicks) / float64(record.Impressions) * 100), nil
}

// ComputeCampaignMetrics calcula ROI e CTR de uma campanha. Falha com
// ErrDivisionByZero se spend ou impressions forem zero.
func ComputeCampaignMetrics(record CampaignRecord) (DerivedCampaignMetrics, error) {
	roiPercent, err := ComputeROI(record)
	if err != nil {
		return DerivedCampaignMetrics{}, err
	}

	ctrPercent, err := ComputeCTR(record)
	if err != nil {
		return DerivedCampaignMetrics{}, err
	}

	return DerivedCampaignMetrics{
		ROIPercent: roiPercent,
		CTRPercent: ctrPercent,
	}, nil
}

// ComputePortfolioSummary agrega as campanhas.
//
// Os totais são somas sem arredondamento; apenas as razões finais são arredondadas.
// O CTR médio é a média dos CTRs de cada campanha (média das razões). Uma campanha
// sem impressões deixa o CTR médio indefinido e o erro nomeia essa campanha.
//
// ROI agregado e CTR médio falham de forma independente: o erro devolvido junta
// (errors.Join) um MetricError por razão indefinida, e o resumo ainda traz os
// totais e a razão que foi calculada.
func ComputePortfolioSummary(records []CampaignRecord) (PortfolioSummary, error) {
	summary := PortfolioSummary{CampaignCount: len(records)}

	if len(records) == 0 {
		return summary, &MetricError{Err: ErrEmptyInput, Metric: MetricPortfolio}
	}

	var ctrErr error
	ctrSum := 0.0
	for _, record := range records {
		summary.TotalSpend += record.Spend
		summary.TotalRevenue += record.Revenue
		summary.TotalImpressions += record.Impressions

		ctrPercent, err := ComputeCTR(record)
		if err != nil {
			if ctrErr == nil {
				ctrErr = &MetricError{Err: ErrDivisionByZero, Metric: MetricAverageCTR, Campaign: record.Name}
			}
			continue
		}
		ctrSum += ctrPercent
		summary.CTRSampleSize++
	}

	var errs []error

	if summary.TotalSpend == 0 {
		errs = append(errs, &MetricError{Err: ErrDivisionByZero, Metric: MetricOverallROI})
	} else {
		summary.OverallROIPercent = utils.RoundWithOneDecimalPlace(roi(summary.TotalRevenue, summary.TotalSpend))
	}

	if ctrErr != nil {
		errs = append(errs, ctrErr)
	} else {
		summary.AverageCTRPercent = utils.RoundWithTwoDecimalPlace(ctrSum / float64(summary.CTRSampleSize))
	}

	return summary, errors.Join(errs...)
}

// FindMetricError devolve o MetricError da métrica informada dentro de err,
// percorrendo também erros combinados com errors.Join. Devolve nil se não houver.
func FindMetricError(err error, metric string) error {
	var metricErr *MetricError
	if errors.As(err, &metricErr) && metricErr.Metric == metric {
		return metricErr
	}

	switch wrapped := err.(type) {
	case interface{ Unwrap() []error }:
		for _, inner := range wrapped.Unwrap() {
			if found := FindMetricError(inner, metric); found != nil {
				return found
			}
		}
	case interface{ Unwrap() error }:
		return FindMetricError(wrapped.Unwrap(), metric)
	}

	return nil
}

// BuildCampaignRows monta a visão tabular, deixando nil as métricas indefinidas
func BuildCampaignRows(records []CampaignRecord) []CampaignRow {
	rows := make([]CampaignRow, 0, len(records))

	for _, record := range records {
		row := CampaignRow{
			CampaignRecord:          record,
			ClicksExceedImpressions: record.ClicksExceedImpressions(),
		}

		if roiPercent, err := ComputeROI(record); err == nil {
			row.ROIPercent = &roiPercent
		}

		if ctrPercent, err := ComputeCTR(record); err == nil {
			row.CTRPercent = &ctrPercent
		}

		rows = append(rows, row)
	}

	return rows
}

func roi(revenue, spend float64) float64 {
	return (revenue - spend) / spend * 100
}
