package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRecords verifica os campos de cada registro e a unicidade dos nomes.
// clicks > impressions não é tratado como erro.
func ValidateRecords(records []CampaignRecord) error {
	seen := make(map[string]int, len(records))

	for i, record := range records {
		if err := validateRecord(i, record); err != nil {
			return err
		}

		name := strings.TrimSpace(record.Name)
		if first, ok := seen[name]; ok {
			return &RecordError{
				Index:  i,
				Name:   record.Name,
				Field:  "Name",
				Reason: fmt.Sprintf("duplicated name, first seen at record %d", first),
			}
		}
		seen[name] = i
	}

	return nil
}

func validateRecord(index int, record CampaignRecord) error {
	if strings.TrimSpace(record.Name) == "" {
		return &RecordError{Index: index, Name: record.Name, Field: "Name", Reason: "required"}
	}

	amounts := []struct {
		field string
		value float64
	}{
		{"Spend", record.Spend},
		{"Revenue", record.Revenue},
	}
	for _, amount := range amounts {
		if math.IsNaN(amount.value) || math.IsInf(amount.value, 0) {
			return &RecordError{Index: index, Name: record.Name, Field: amount.field, Reason: "must be a finite number"}
		}
	}

	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fieldErr := validationErrors[0]
		reason := fieldErr.Tag()
		if fieldErr.Param() != "" {
			reason = fmt.Sprintf("%s=%s", fieldErr.Tag(), fieldErr.Param())
		}
		return &RecordError{Index: index, Name: record.Name, Field: fieldErr.Field(), Reason: reason}
	}

	return &RecordError{Index: index, Name: record.Name, Field: "-", Reason: err.Error()}
}
