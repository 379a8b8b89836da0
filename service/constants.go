package service

import (
	"math"
	"time"

	"taxburden/domain"
)

const (
	MonthsPerYear = 12

	MaxMonthlyIncome = 1_000_000_000.0 // 1.000 millones por mes
	MaxSavingsRate   = 0.9             // la parte ahorrada nunca supera el 90%
	SpendTotal       = 100             // las cuatro categorías de gasto suman 100
	MaxScore         = 10.0            // escalas de encuesta 0..10

	DefaultSubmissionWindow = 30 * time.Second

	// ActionUpdateFairness lets the submit endpoint carry a fairness score.
	ActionUpdateFairness = "update_fairness"
)

// DefaultTaxRates returns the 2026 tables. Each call returns fresh slices.
func DefaultTaxRates() domain.TaxRates {
	return domain.TaxRates{
		Year: 2026,
		WageBrackets: []domain.Bracket{
			{UpTo: 190_000, Rate: 0.15},
			{UpTo: 400_000, Rate: 0.20},
			{UpTo: 1_500_000, Rate: 0.27},
			{UpTo: 5_300_000, Rate: 0.35},
			{UpTo: math.Inf(1), Rate: 0.40},
		},
		OtherBrackets: []domain.Bracket{
			{UpTo: 190_000, Rate: 0.15},
			{UpTo: 400_000, Rate: 0.20},
			{UpTo: 1_000_000, Rate: 0.27},
			{UpTo: 5_300_000, Rate: 0.35},
			{UpTo: math.Inf(1), Rate: 0.40},
		},
		Payroll: domain.PayrollRates{
			SocialSecurity: 0.14,
			Unemployment:   0.01,
			Stamp:          0.00759, // 200.000 -> 1.518
		},
		Indirect: domain.CategoryRates{
			Food:          0.06,
			Rent:          0.00, // alquiler residencial exento
			Transport:     0.10,
			TransportCar:  0.22,
			Other:         0.14,
			Smoking:       0.03,
			Alcohol:       0.02,
			MaxEffective:  0.80,
			BandLowFactor: 0.90,
			BandUpFactor:  1.15,
		},
		Legacy: domain.LegacyRates{
			Food:         0.08,
			Rent:         0.02,
			Transport:    0.18,
			Other:        0.12,
			CarSurcharge: 0.03,
			Smoking:      0.025,
			Alcohol:      0.02,
			BandBelow:    0.03,
			BandAbove:    0.05,
			MinShare:     0.05,
			MaxShare:     0.80,
		},
		MaxTotalPct: 95,
	}
}
