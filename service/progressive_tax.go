package service

import (
	"math"

	"taxburden/domain"
)

// ProgressiveBracketTax returns the marginal tax owed on income under table.
// Brackets must be ordered by UpTo; income above the last bound is untaxed, so
// tables end with an unbounded bracket. Negative or NaN income owes nothing.
func ProgressiveBracketTax(income float64, table []domain.Bracket) float64 {
	if math.IsNaN(income) {
		return 0
	}
	remaining := math.Max(0, income)
	lastLimit := 0.0
	tax := 0.0

	for _, b := range table {
		slice := math.Min(remaining, b.UpTo-lastLimit)
		if slice > 0 {
			tax += slice * b.Rate
			remaining -= slice
			lastLimit = b.UpTo
		}
		if remaining <= 0 {
			break
		}
	}
	return tax
}
