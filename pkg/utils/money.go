package utils

import "github.com/montanaflynn/stats"

// RoundMoney arredonda para centavos, metade para cima
func RoundMoney(value float64) float64 {
	rounded, err := stats.Round(value, 2)
	if err != nil {
		return value
	}
	return rounded
}
