package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round arredonda f para a quantidade de casas informada: escala o valor binário
// por 10^places e arredonda o empate para o par. 206.25 vira 206.2; 2.675 vira
// 2.68 porque 2.675*100 dá exatamente 267.5 em float64.
func Round(f float64, places int32) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}

	scaled := f * math.Pow10(int(places))
	if math.IsInf(scaled, 0) {
		return f
	}

	// A representação mais curta identifica o binário escalado, então o
	// empate visto pelo decimal é exatamente o empate do float.
	rounded, _ := decimal.NewFromFloat(scaled).RoundBank(0).Shift(-places).Float64()
	return rounded
}

func RoundWithOneDecimalPlace(f float64) float64 {
	return Round(f, 1)
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	return Round(f, 2)
}
